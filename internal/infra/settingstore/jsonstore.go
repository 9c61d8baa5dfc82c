package settingstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

const defaultFileName = "settings.json"

// JSONStore persists client settings as a single JSON object on disk. It is
// the durable local key-value slot of the application: one flat map of
// string keys to string values, re-read on every Get so that concurrent
// writers follow last-writer-wins without any in-process cache going stale.
type JSONStore struct {
	dir      string
	fileName string
}

type Option func(*JSONStore)

// WithFileName overrides the settings file name (useful for tests).
func WithFileName(name string) Option {
	return func(s *JSONStore) { s.fileName = name }
}

func NewJSONStore(dir string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir:      dir,
		fileName: defaultFileName,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.SettingsStore = (*JSONStore)(nil)

// Get returns the value stored under key, or "" when the key (or the whole
// settings file) does not exist yet.
func (s *JSONStore) Get(key string) (string, error) {
	values, err := s.load()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set overwrites the value under key unconditionally.
func (s *JSONStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "settingstore.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	path := s.path()
	b, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "settingstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "settingstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "settingstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (s *JSONStore) path() string {
	return filepath.Join(s.dir, s.fileName)
}

func (s *JSONStore) load() (map[string]string, error) {
	path := s.path()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, &domain.OpError{
			Op:   "settingstore.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	values := map[string]string{}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, &domain.OpError{
			Op:   "settingstore.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return values, nil
}
