package ports

import (
	"context"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
)

// RegistrationGateway is the data-access surface over the backend endpoint.
type RegistrationGateway interface {
	// FetchRegistrations returns all registrations, most recent first.
	FetchRegistrations(ctx context.Context) ([]domain.Registration, error)
	// SubmitRegistration delivers one new registration. The receipt proves
	// transport acceptance only; the backend's opaque-response mode makes
	// server-side persistence unverifiable.
	SubmitRegistration(ctx context.Context, reg domain.Registration) (domain.SubmitReceipt, error)
}
