package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	// ErrEndpointNotConfigured carries the instructive message shown to
	// users when no backend URL is resolvable from any source.
	ErrEndpointNotConfigured = errors.New("endpoint URL is not configured: run `bimtek endpoint set <url>` or rebuild with -ldflags \"-X .../buildinfo.EndpointURL=<url>\"")

	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	// KindNotConfigured: an operation needed the endpoint and none was set.
	KindNotConfigured ErrorKind = "not_configured"
	// KindNetwork: transport failure or a non-success status on a fetch.
	KindNetwork ErrorKind = "network"
	// KindApplication: the backend answered but flagged success=false.
	KindApplication ErrorKind = "application"
	// KindSubmission: a submission POST came back with a readable
	// non-success status.
	KindSubmission ErrorKind = "submission"

	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path or URL
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
