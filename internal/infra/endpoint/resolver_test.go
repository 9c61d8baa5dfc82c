package endpoint

import (
	"testing"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/buildinfo"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
)

type mapStore struct {
	values map[string]string
	gets   int
}

func (m *mapStore) Get(key string) (string, error) {
	m.gets++
	return m.values[key], nil
}

func (m *mapStore) Set(key, value string) error {
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}

func withBuildTimeURL(t *testing.T, url string) {
	t.Helper()
	prev := buildinfo.EndpointURL
	buildinfo.EndpointURL = url
	t.Cleanup(func() { buildinfo.EndpointURL = prev })
}

func TestResolveBuildTimeValueWins(t *testing.T) {
	withBuildTimeURL(t, "https://baked-in.example/exec")
	store := &mapStore{values: map[string]string{domain.SettingsKeyEndpointURL: "https://stored.example/exec"}}

	r := NewResolver(store, nil)

	if got := r.Resolve(); got != "https://baked-in.example/exec" {
		t.Errorf("expected build-time value to win, got %q", got)
	}
}

func TestResolveFallsBackToStore(t *testing.T) {
	withBuildTimeURL(t, "")
	store := &mapStore{values: map[string]string{domain.SettingsKeyEndpointURL: "https://stored.example/exec"}}

	r := NewResolver(store, nil)

	if got := r.Resolve(); got != "https://stored.example/exec" {
		t.Errorf("expected stored value, got %q", got)
	}
}

func TestResolveNothingConfiguredReturnsEmpty(t *testing.T) {
	withBuildTimeURL(t, "")
	r := NewResolver(&mapStore{}, nil)

	if got := r.Resolve(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestResolveIgnoresWhitespaceOnlyValues(t *testing.T) {
	withBuildTimeURL(t, "   ")
	store := &mapStore{values: map[string]string{domain.SettingsKeyEndpointURL: "https://stored.example/exec"}}

	r := NewResolver(store, nil)

	if got := r.Resolve(); got != "https://stored.example/exec" {
		t.Errorf("whitespace-only build value must not win, got %q", got)
	}
}

func TestResolveReadsStoreEveryCall(t *testing.T) {
	withBuildTimeURL(t, "")
	store := &mapStore{}
	r := NewResolver(store, nil)

	if got := r.Resolve(); got != "" {
		t.Fatalf("expected empty before Set, got %q", got)
	}

	if err := store.Set(domain.SettingsKeyEndpointURL, "https://late.example"); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve(); got != "https://late.example" {
		t.Errorf("expected fresh read after Set, got %q", got)
	}
	if store.gets < 2 {
		t.Errorf("expected the store to be consulted per call, gets=%d", store.gets)
	}
}
