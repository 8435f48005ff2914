// Package retrylimit provides an adaptive rate limiter for building
// resilient HTTP clients. The limit increases on success and decreases on
// errors that indicate overload (429 or 5xx).
//
// Example usage:
//
//	lim := retrylimit.NewAdaptiveLimiter(2, 1, 10, 1, 0.5)
//	if err := lim.Wait(ctx); err != nil {
//	    return err
//	}
//	err := doRequest()
//	lim.Observe(err)
package retrylimit

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// HTTPError is implemented by errors that carry an HTTP status code.
// Errors without it are treated as client-side failures and do not
// reduce the limit.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError is a minimal HTTPError for callers that only have a code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return http.StatusText(e.Code)
}

func (e *StatusError) StatusCode() int { return e.Code }

// AdaptiveLimiter manages a rate limit that adjusts automatically based
// on the outcome of requests. Thread-safe.
type AdaptiveLimiter struct {
	mu        sync.RWMutex
	limiter   *rate.Limiter
	minLimit  rate.Limit
	maxLimit  rate.Limit
	stepUp    rate.Limit
	stepDown  float64
	lastError time.Time
}

// NewAdaptiveLimiter creates an AdaptiveLimiter with the given configuration.
//
// Parameters:
//   - initial: starting requests per second
//   - min: minimum allowed rate
//   - max: maximum allowed rate
//   - stepUp: increment on success
//   - stepDown: multiplier applied on failure (e.g., 0.5 to halve)
func NewAdaptiveLimiter(initial, min, max rate.Limit, stepUp rate.Limit, stepDown float64) *AdaptiveLimiter {
	if initial < 1 {
		initial = 1
	}
	if min < 1 {
		min = 1
	}
	burst := int(initial)
	if burst < 1 {
		burst = 1
	}
	return &AdaptiveLimiter{
		limiter:  rate.NewLimiter(initial, burst),
		minLimit: min,
		maxLimit: max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or the context is canceled.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return a.limiter.Wait(ctx)
}

// Observe adjusts the limit based on a request outcome: nil speeds up,
// overload errors (429/5xx) slow down, anything else is neutral.
func (a *AdaptiveLimiter) Observe(err error) {
	if err == nil {
		a.success()
		return
	}
	if isOverload(err) {
		a.rateLimited()
	}
}

// CurrentLimit returns the current requests per second.
func (a *AdaptiveLimiter) CurrentLimit() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return float64(a.limiter.Limit())
}

// success increases the rate after a successful request.
func (a *AdaptiveLimiter) success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastError) > 10*time.Second {
		a.adjustLimit(a.limiter.Limit() + a.stepUp)
	}
}

// rateLimited reduces the rate after a response indicating overload.
func (a *AdaptiveLimiter) rateLimited() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = time.Now()
	a.adjustLimit(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// adjustLimit sets the limiter to a new rate, respecting min/max boundaries.
func (a *AdaptiveLimiter) adjustLimit(newLimit rate.Limit) {
	oldLimit := a.limiter.Limit()

	if newLimit > a.maxLimit {
		newLimit = a.maxLimit
	} else if newLimit < a.minLimit {
		newLimit = a.minLimit
	}

	if newLimit != oldLimit {
		a.limiter.SetLimit(newLimit)
		burst := int(newLimit)
		if burst < 1 {
			burst = 1
		}
		a.limiter.SetBurst(burst)
	}
}

// isOverload returns true if err carries a 429 or 5xx status code.
func isOverload(err error) bool {
	httpErr, ok := err.(HTTPError)
	if !ok {
		return false
	}
	code := httpErr.StatusCode()
	return code == http.StatusTooManyRequests || (code >= 500 && code < 600)
}
