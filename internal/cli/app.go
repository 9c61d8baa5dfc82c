package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/endpoint"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/httpclient"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/logger"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/settingstore"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/sheetapi"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/infra/yamlform"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

// appCtx wires the adapters behind their ports for the commands.
type appCtx struct {
	store    ports.SettingsStore
	resolver ports.EndpointResolver
	gateway  ports.RegistrationGateway
	forms    ports.FormLoader
}

func loadApp() (*appCtx, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	store := settingstore.NewJSONStore(dir)
	resolver := endpoint.NewResolver(store, logger.L())

	client := httpclient.New(httpclient.DefaultConfig())
	gateway := sheetapi.New(resolver, client, sheetapi.WithLogger(logger.L()))

	return &appCtx{
		store:    store,
		resolver: resolver,
		gateway:  gateway,
		forms:    yamlform.NewLoader(),
	}, nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "bimtek"), nil
}
