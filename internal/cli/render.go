package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// renderTable formats registrations as an aligned text table. Rows arrive
// already ordered most recent first.
func renderTable(regs []domain.Registration) string {
	headers := []string{"WAKTU", "PERUSAHAAN", "NPWP", "PESERTA", "KOTA"}

	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, []string{
			orDash(r.Timestamp),
			orDash(r.Company.CompanyName),
			orDash(r.Company.NPWP),
			orDash(r.Participant.FullName),
			orDash(r.Company.City),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(formatRow(headers, widths)))
	b.WriteByte('\n')
	b.WriteString(faintStyle.Render(strings.Repeat("-", rowWidth(widths))))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(formatRow(row, widths))
	}
	return b.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func rowWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + 2*(len(widths)-1)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
