package usecase

import (
	"context"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

// SubmitRegistration loads a form document and delivers it to the backend.
//
// Identity fields (registrationId, timestamp) are left empty on purpose: the
// backend script assigns them when it appends the row.
type SubmitRegistration struct {
	forms   ports.FormLoader
	gateway ports.RegistrationGateway
}

func NewSubmitRegistration(fl ports.FormLoader, gw ports.RegistrationGateway) *SubmitRegistration {
	return &SubmitRegistration{
		forms:   fl,
		gateway: gw,
	}
}

func (uc *SubmitRegistration) Execute(ctx context.Context, formPath string) (domain.SubmitReceipt, error) {
	reg, err := uc.forms.LoadForm(formPath)
	if err != nil {
		return domain.SubmitReceipt{}, err
	}
	return uc.gateway.SubmitRegistration(ctx, reg)
}
