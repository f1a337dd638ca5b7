package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// Transport errors
var (
	// ErrConnectionRefused is returned when the API host cannot be reached
	ErrConnectionRefused = errors.New("connection refused")

	// ErrTimeout is returned when no response arrives within the request timeout
	ErrTimeout = errors.New("request timed out")

	// ErrMissingToken is returned for an authenticated call without a token
	ErrMissingToken = errors.New("missing bearer token")
)

// classify maps a transport error onto ErrTimeout or ErrConnectionRefused,
// keeping the cause in the chain. A timeout before any connection was
// established counts as a connection failure.
func classify(err error, connected bool) error {
	if err == nil {
		return nil
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return fmt.Errorf("%w: %w", ErrConnectionRefused, err)
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return fmt.Errorf("%w: %w", ErrConnectionRefused, err)
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.ENETUNREACH) {
		return fmt.Errorf("%w: %w", ErrConnectionRefused, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		if !connected {
			return fmt.Errorf("%w: connect timeout: %w", ErrConnectionRefused, err)
		}
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	return err
}
