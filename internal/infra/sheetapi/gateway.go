// Package sheetapi talks to the spreadsheet-backed registration script. The
// script is an opaque external collaborator: one URL, GET returns every
// registration inside a success envelope, POST appends one registration and
// answers in a mode whose body carries no readable acknowledgement.
package sheetapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/domain"
	"github.com/biropbjntb/aplikasi-pendaftaran-bimtek/internal/ports"
)

// envelope is the script's GET response contract.
type envelope struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Data    []domain.FlatRegistration `json:"data"`
}

// Gateway implements ports.RegistrationGateway over a single HTTP endpoint.
// The endpoint is re-resolved on every call; nothing is cached or retried.
type Gateway struct {
	client   *http.Client
	resolver ports.EndpointResolver
	log      *slog.Logger
	now      func() time.Time
}

type Option func(*Gateway)

// WithLogger attaches a logger for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(g *Gateway) { g.log = log }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(g *Gateway) { g.now = now }
}

func New(resolver ports.EndpointResolver, client *http.Client, opts ...Option) *Gateway {
	g := &Gateway{
		client:   client,
		resolver: resolver,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ ports.RegistrationGateway = (*Gateway)(nil)

// FetchRegistrations retrieves all registrations from the backend, reshapes
// each flat wire record into the nested domain form, and orders the result
// most recent first. All-or-nothing: any failure yields no records.
func (g *Gateway) FetchRegistrations(ctx context.Context) ([]domain.Registration, error) {
	url := g.resolver.Resolve()
	if url == "" {
		return nil, &domain.OpError{
			Op:   "sheetapi.fetch",
			Kind: domain.KindNotConfigured,
			Err:  domain.ErrEndpointNotConfigured,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sheetapi.fetch",
			Kind: domain.KindInvalidConfig,
			Path: url,
			Err:  err,
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "sheetapi.fetch",
			Kind: domain.KindNetwork,
			Path: url,
			Err:  err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.OpError{
			Op:   "sheetapi.fetch",
			Kind: domain.KindNetwork,
			Path: url,
			Err:  fmt.Errorf("backend returned %s", resp.Status),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &domain.OpError{
			Op:   "sheetapi.fetch",
			Kind: domain.KindApplication,
			Path: url,
			Err:  fmt.Errorf("malformed response: %w", err),
		}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "backend reported failure without a message"
		}
		return nil, &domain.OpError{
			Op:   "sheetapi.fetch",
			Kind: domain.KindApplication,
			Path: url,
			Err:  errors.New(msg),
		}
	}

	regs := make([]domain.Registration, 0, len(env.Data))
	for _, flat := range env.Data {
		regs = append(regs, domain.Nest(flat))
	}
	domain.SortMostRecentFirst(regs)

	if g.log != nil {
		g.log.Debug("sheetapi.fetched", "count", len(regs))
	}
	return regs, nil
}

// SubmitRegistration posts one registration in its flat wire shape. The
// response body is drained and never interpreted: the script answers in an
// opaque-response mode, so only the status line is trusted. A nil error
// means the transport accepted the request, not that the record was
// persisted server-side.
func (g *Gateway) SubmitRegistration(ctx context.Context, reg domain.Registration) (domain.SubmitReceipt, error) {
	url := g.resolver.Resolve()
	if url == "" {
		return domain.SubmitReceipt{}, &domain.OpError{
			Op:   "sheetapi.submit",
			Kind: domain.KindNotConfigured,
			Err:  domain.ErrEndpointNotConfigured,
		}
	}

	payload, err := json.Marshal(reg.Flatten())
	if err != nil {
		return domain.SubmitReceipt{}, &domain.OpError{
			Op:   "sheetapi.submit",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.SubmitReceipt{}, &domain.OpError{
			Op:   "sheetapi.submit",
			Kind: domain.KindInvalidConfig,
			Path: url,
			Err:  err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return domain.SubmitReceipt{}, &domain.OpError{
			Op:   "sheetapi.submit",
			Kind: domain.KindNetwork,
			Path: url,
			Err:  err,
		}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return domain.SubmitReceipt{}, &domain.OpError{
			Op:   "sheetapi.submit",
			Kind: domain.KindSubmission,
			Path: url,
			Err:  fmt.Errorf("backend returned status %d", resp.StatusCode),
		}
	}

	if g.log != nil {
		g.log.Info("sheetapi.submitted", "status", resp.StatusCode)
	}
	return domain.SubmitReceipt{
		SubmittedAt: g.now().UTC(),
		StatusCode:  resp.StatusCode,
	}, nil
}
