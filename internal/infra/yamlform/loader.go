// Package yamlform reads a registration form document from a YAML file.
package yamlform

import (
	"os"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.FormLoader = (*Loader)(nil)

// LoadForm reads and maps one registration form file. Field values are not
// validated here: the data-access layer passes absent fields through empty,
// exactly as the backend expects.
func (l *Loader) LoadForm(path string) (domain.Registration, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Registration{}, &domain.OpError{
			Op:   "yamlform.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yf yamlForm
	if err := yaml.Unmarshal(b, &yf); err != nil {
		return domain.Registration{}, &domain.OpError{
			Op:   "yamlform.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return mapForm(yf), nil
}

type yamlForm struct {
	Company struct {
		NPWP         string `yaml:"npwp"`
		Name         string `yaml:"name"`
		BusinessType string `yaml:"business_type"`
		Address      string `yaml:"address"`
		City         string `yaml:"city"`
		PostalCode   string `yaml:"postal_code"`
	} `yaml:"company"`

	Participant struct {
		FullName string `yaml:"full_name"`
		Position string `yaml:"position"`
		Email    string `yaml:"email"`
		Phone    string `yaml:"phone"`
	} `yaml:"participant"`
}

func mapForm(yf yamlForm) domain.Registration {
	return domain.Registration{
		Company: domain.CompanyProfile{
			NPWP:         yf.Company.NPWP,
			CompanyName:  yf.Company.Name,
			BusinessType: yf.Company.BusinessType,
			Address:      yf.Company.Address,
			City:         yf.Company.City,
			PostalCode:   yf.Company.PostalCode,
		},
		Participant: domain.Participant{
			FullName: yf.Participant.FullName,
			Position: yf.Participant.Position,
			Email:    yf.Participant.Email,
			Phone:    yf.Participant.Phone,
		},
	}
}
