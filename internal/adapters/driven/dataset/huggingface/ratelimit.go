package huggingface

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle rate in requests per
	// second. The datasets server is a shared free service.
	ProactiveRate = 5.0

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// DefaultBackoff is the wait applied after a 429 without a
	// Retry-After header.
	DefaultBackoff = 10 * time.Second
)

// RateLimiter throttles dataset server requests. It combines a
// proactive token bucket with reactive backoff from 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	bucket  *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter(requestsPerSecond float64) *RateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = ProactiveRate
	}
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	// 1. Check token bucket (proactive throttling)
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	// 2. Honour any backoff recorded from a 429 (reactive)
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return nil
}

// UpdateFromResponse records backoff state from a 429 response.
// Other responses leave the limiter untouched.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return
	}

	backoff := DefaultBackoff
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds > 0 {
			backoff = time.Duration(seconds) * time.Second
		}
	}

	r.mu.Lock()
	r.retryAt = time.Now().Add(backoff)
	r.mu.Unlock()
}

// RetryAt returns when the next request is allowed after a 429.
// The zero time means no backoff is pending.
func (r *RateLimiter) RetryAt() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt
}
