// Package endpoint resolves the backend URL from an ordered chain of
// configuration sources: the build-time-injected value first, the durable
// settings store second. First non-empty value wins.
package endpoint

import (
	"log/slog"
	"strings"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/buildinfo"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

// BuildTimeSource exposes the -ldflags-injected endpoint URL.
type BuildTimeSource struct{}

func (BuildTimeSource) Name() string   { return "buildinfo" }
func (BuildTimeSource) Lookup() string { return buildinfo.EndpointURL }

// StoreSource reads the endpoint slot from the settings store. Lookup hits
// the store on every call; resolution is never cached.
type StoreSource struct {
	Store ports.SettingsStore
	Log   *slog.Logger
}

func (s StoreSource) Name() string { return "settings" }

func (s StoreSource) Lookup() string {
	v, err := s.Store.Get(domain.SettingsKeyEndpointURL)
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("endpoint.settings_read_failed", "err", err)
		}
		return ""
	}
	return v
}

// Resolver walks its sources in order and returns the first non-empty URL.
type Resolver struct {
	sources []ports.EndpointSource
	log     *slog.Logger
}

type Option func(*Resolver)

// WithSources replaces the default source chain (useful for tests).
func WithSources(sources ...ports.EndpointSource) Option {
	return func(r *Resolver) { r.sources = sources }
}

func NewResolver(store ports.SettingsStore, log *slog.Logger, opts ...Option) *Resolver {
	r := &Resolver{
		sources: []ports.EndpointSource{
			BuildTimeSource{},
			StoreSource{Store: store, Log: log},
		},
		log: log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.EndpointResolver = (*Resolver)(nil)

// Resolve returns the configured backend URL, or "" when no source has one.
// It never fails; an empty result is a state callers must handle.
func (r *Resolver) Resolve() string {
	for _, src := range r.sources {
		if url := strings.TrimSpace(src.Lookup()); url != "" {
			return url
		}
	}
	if r.log != nil {
		r.log.Warn("endpoint.not_configured",
			"hint", "set a backend URL with `bimtek endpoint set <url>`")
	}
	return ""
}
