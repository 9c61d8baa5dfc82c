package ports

import "github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"

// FormLoader reads a registration form document from a source (e.g., a YAML
// file) into the domain shape.
type FormLoader interface {
	LoadForm(path string) (domain.Registration, error)
}
