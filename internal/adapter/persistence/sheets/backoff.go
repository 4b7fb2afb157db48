package sheets

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"cotizador/internal/usecase/interfaces"
)

// Backoff retries rate-limited remote calls. The delay before retry n
// (0-based) is min(2^n * BaseDelay, MaxDelay) plus up to one second of jitter.
// Errors that are not rate limits are returned at once.
type Backoff struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration

	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() time.Duration
}

func NewBackoff(maxRetries int, base, max time.Duration) *Backoff {
	return &Backoff{
		MaxRetries: maxRetries,
		BaseDelay:  base,
		MaxDelay:   max,
		sleep:      sleepContext,
		jitter:     func() time.Duration { return time.Duration(rand.Int63n(int64(time.Second))) },
	}
}

// Delay returns the wait before retrying after the given failed attempt.
func (b *Backoff) Delay(attempt int) time.Duration {
	d := b.MaxDelay
	if attempt < 32 {
		if exp := b.BaseDelay << attempt; exp > 0 && exp < b.MaxDelay {
			d = exp
		}
	}
	return d + b.jitter()
}

// Execute runs fn up to MaxRetries times.
func (b *Backoff) Execute(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	attempts := b.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if !interfaces.IsRateLimited(err) {
			return err
		}
		if attempt == attempts-1 {
			break
		}
		delay := b.Delay(attempt)
		log.Printf("[sheets][backoff] rate limited op=%s attempt=%d/%d delay=%s", op, attempt+1, attempts, delay)
		if serr := b.sleep(ctx, delay); serr != nil {
			return serr
		}
	}
	return fmt.Errorf("%s: rate limit retries exhausted: %w", op, err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
