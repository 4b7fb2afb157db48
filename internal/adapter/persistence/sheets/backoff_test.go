package sheets

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cotizador/internal/usecase/interfaces"
)

func newTestBackoff(maxRetries int) (*Backoff, *[]time.Duration) {
	slept := &[]time.Duration{}
	b := NewBackoff(maxRetries, time.Second, 32*time.Second)
	b.jitter = func() time.Duration { return 0 }
	b.sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
	return b, slept
}

func TestBackoff_Delay(t *testing.T) {
	b, _ := newTestBackoff(5)
	cases := map[int]time.Duration{
		0:  time.Second,
		1:  2 * time.Second,
		4:  16 * time.Second,
		5:  32 * time.Second,
		9:  32 * time.Second,
		70: 32 * time.Second,
	}
	for attempt, want := range cases {
		if got := b.Delay(attempt); got != want {
			t.Fatalf("Delay(%d) = %s, want %s", attempt, got, want)
		}
	}

	b.jitter = func() time.Duration { return 300 * time.Millisecond }
	if got := b.Delay(5); got != 32*time.Second+300*time.Millisecond {
		t.Fatalf("jitter must be added after the cap, got %s", got)
	}
}

func TestBackoff_Execute(t *testing.T) {
	rateLimited := &interfaces.RemoteStatusError{StatusCode: http.StatusTooManyRequests, Message: "quota"}

	t.Run("retries rate limits then succeeds", func(t *testing.T) {
		b, slept := newTestBackoff(5)
		calls := 0
		err := b.Execute(context.Background(), "op", func(context.Context) error {
			calls++
			if calls < 3 {
				return rateLimited
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 || len(*slept) != 2 || (*slept)[1] != 2*time.Second {
			t.Fatalf("unexpected calls=%d slept=%v", calls, *slept)
		}
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		b, slept := newTestBackoff(5)
		calls := 0
		err := b.Execute(context.Background(), "op", func(context.Context) error {
			calls++
			return &interfaces.RemoteStatusError{StatusCode: http.StatusServiceUnavailable}
		})
		if !interfaces.IsRateLimited(err) {
			t.Fatalf("expected wrapped rate limit error, got %v", err)
		}
		if calls != 5 || len(*slept) != 4 {
			t.Fatalf("unexpected calls=%d sleeps=%d", calls, len(*slept))
		}
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		b, slept := newTestBackoff(5)
		calls := 0
		boom := &interfaces.RemoteStatusError{StatusCode: http.StatusForbidden}
		err := b.Execute(context.Background(), "op", func(context.Context) error {
			calls++
			return boom
		})
		if !errors.Is(err, boom) || calls != 1 || len(*slept) != 0 {
			t.Fatalf("unexpected err=%v calls=%d", err, calls)
		}
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		b := NewBackoff(3, time.Hour, time.Hour)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := b.Execute(ctx, "op", func(context.Context) error { return rateLimited })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
