package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"
)

// ReadinessChecker reports whether the upstream archive site is reachable.
type ReadinessChecker struct {
	address string
	timeout time.Duration
}

func NewReadinessChecker(baseURL string, timeout time.Duration) (*ReadinessChecker, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("base URL has no host: %s", baseURL)
	}

	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}

	return &ReadinessChecker{
		address: net.JoinHostPort(u.Hostname(), port),
		timeout: timeout,
	}, nil
}

// Check opens and closes a TCP connection to the upstream host.
func (c *ReadinessChecker) Check(ctx context.Context) error {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.address)
	if err != nil {
		slog.Warn("Upstream not ready", "address", c.address, "error", err)
		return fmt.Errorf("failed to connect to %s: %w", c.address, err)
	}
	_ = conn.Close()
	return nil
}
