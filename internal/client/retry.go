package client

import (
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/failsafehttp"
	"github.com/failsafe-go/failsafe-go/retrypolicy"

	"github.com/Belphemur/ShowSearch/internal/config"
)

// isRetryable reports whether an attempt failed in a way another attempt may fix:
// transport errors, rate limiting and server-side failures.
func isRetryable(resp *http.Response, err error) bool {
	if err != nil {
		return true
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError
}

// newRetryPolicy builds the retry policy for directory calls, or returns nil
// when retries are disabled. Exhausted retries hand back the last response or
// error untouched so callers see the real failure.
func newRetryPolicy(cfg *config.Config) retrypolicy.RetryPolicy[*http.Response] {
	if cfg.Retry.MaxRetries <= 0 {
		return nil
	}
	logger := config.GetLogger()

	delay := parseDurationOr(cfg.Retry.Delay, 500*time.Millisecond, "retry.delay")
	maxDelay := parseDurationOr(cfg.Retry.MaxDelay, 5*time.Second, "retry.max_delay")
	if maxDelay <= delay {
		maxDelay = delay * 2
	}

	return retrypolicy.NewBuilder[*http.Response]().
		HandleIf(isRetryable).
		WithMaxRetries(cfg.Retry.MaxRetries).
		WithBackoff(delay, maxDelay).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[*http.Response]) {
			event := logger.Warn().Int("attempt", e.Attempts())
			if err := e.LastError(); err != nil {
				event = event.Err(err)
			} else if resp := e.LastResult(); resp != nil {
				event = event.Int("status", resp.StatusCode)
			}
			event.Msg("Retrying directory request")
		}).
		Build()
}

// withRetries wraps next with the retry policy when one is configured.
func withRetries(next http.RoundTripper, policy retrypolicy.RetryPolicy[*http.Response]) http.RoundTripper {
	if policy == nil {
		return next
	}
	return failsafehttp.NewRoundTripper(next, policy)
}

func parseDurationOr(value string, fallback time.Duration, key string) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		logger := config.GetLogger()
		logger.Warn().Err(err).Str(key, value).Dur("default", fallback).Msg("Invalid duration, using default")
		return fallback
	}
	return d
}
