package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds lint and database tests that take a context.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test finishes. The
// timeout defaults to DefaultTimeout and shrinks to fit the -timeout
// deadline of the run, leaving a second for cleanup.
func Context(tb testing.TB, timeout time.Duration) context.Context {
	tb.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	// Deadline is only available on *testing.T.
	if t, ok := tb.(*testing.T); ok {
		if deadline, ok := t.Deadline(); ok {
			remaining := time.Until(deadline) - time.Second
			if remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	tb.Cleanup(cancel)
	return ctx
}
