package ports

// SettingsStore is a durable key-value slot for client-side settings, the
// moral equivalent of browser local storage.
type SettingsStore interface {
	// Get returns the stored value, or "" when the key has never been set.
	Get(key string) (string, error)
	// Set overwrites any previous value unconditionally.
	Set(key, value string) error
}
