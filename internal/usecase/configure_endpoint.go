package usecase

import (
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

// ConfigureEndpoint stores the backend URL in the durable settings slot.
// The URL is not validated; it overwrites any previous value.
type ConfigureEndpoint struct {
	store ports.SettingsStore
}

func NewConfigureEndpoint(store ports.SettingsStore) *ConfigureEndpoint {
	return &ConfigureEndpoint{store: store}
}

func (uc *ConfigureEndpoint) Execute(url string) error {
	return uc.store.Set(domain.SettingsKeyEndpointURL, url)
}
