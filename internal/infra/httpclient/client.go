// Package httpclient builds the shared *http.Client used by the gateway.
package httpclient

import (
	"net"
	"net/http"
	"time"
)

type Config struct {
	// Total timeout for an entire request. Zero disables the client-side
	// cap; callers bound latency with a context deadline instead.
	Timeout time.Duration

	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns int
}

func DefaultConfig() Config {
	return Config{
		Timeout:         0,
		DialTimeout:     5 * time.Second,
		KeepAlive:       30 * time.Second,
		TLSHandshake:    5 * time.Second,
		ResponseHeader:  15 * time.Second,
		IdleConnTimeout: 90 * time.Second,
		MaxIdleConns:    10,
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:    cfg.MaxIdleConns,
		IdleConnTimeout: cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
	}
}
