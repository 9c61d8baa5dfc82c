package usecase

import (
	"context"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

// ListRegistrations fetches all registrations, most recent first.
type ListRegistrations struct {
	gateway ports.RegistrationGateway
}

func NewListRegistrations(gw ports.RegistrationGateway) *ListRegistrations {
	return &ListRegistrations{gateway: gw}
}

func (uc *ListRegistrations) Execute(ctx context.Context) ([]domain.Registration, error) {
	return uc.gateway.FetchRegistrations(ctx)
}
