package cli

import (
	"strings"
	"testing"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
)

func TestRenderTableShowsRowsInGivenOrder(t *testing.T) {
	regs := []domain.Registration{
		{
			Timestamp:   "2024-02-01T00:00:00Z",
			Company:     domain.CompanyProfile{CompanyName: "PT Baru", NPWP: "456", City: "Jakarta"},
			Participant: domain.Participant{FullName: "Budi"},
		},
		{
			Timestamp:   "2024-01-01T00:00:00Z",
			Company:     domain.CompanyProfile{CompanyName: "Acme", NPWP: "123"},
			Participant: domain.Participant{FullName: "Jane"},
		},
	}

	out := renderTable(regs)

	iBaru := strings.Index(out, "PT Baru")
	iAcme := strings.Index(out, "Acme")
	if iBaru < 0 || iAcme < 0 {
		t.Fatalf("company names missing:\n%s", out)
	}
	if iBaru > iAcme {
		t.Errorf("row order changed by rendering:\n%s", out)
	}
	for _, want := range []string{"WAKTU", "PERUSAHAAN", "Budi", "Jane", "Jakarta"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTableDashesEmptyFields(t *testing.T) {
	out := renderTable([]domain.Registration{{}})
	if !strings.Contains(out, "-") {
		t.Errorf("expected dashes for empty fields:\n%s", out)
	}
}

func TestOrDash(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"   ", "-"},
		{"x", "x"},
	}
	for _, c := range cases {
		if got := orDash(c.in); got != c.want {
			t.Errorf("orDash(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
