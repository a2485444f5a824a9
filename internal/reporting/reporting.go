// Package reporting forwards command failures to Sentry when a DSN is configured.
package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/config"
)

// flushTimeout bounds how long shutdown waits for queued events.
const flushTimeout = 2 * time.Second

// Init configures the global Sentry client. It returns a flush function to
// call before the process exits; both are no-ops without a DSN.
func Init(cfg *config.Config) (func(), error) {
	if cfg.Sentry.DSN == "" {
		return func() {}, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		AttachStacktrace: true,
		ServerName:       "showsearch",
	})
	if err != nil {
		return func() {}, err
	}

	logger := config.GetLogger()
	logger.Debug().Str("environment", cfg.Sentry.Environment).Msg("Sentry error reporting enabled")
	return func() { sentry.Flush(flushTimeout) }, nil
}

// Capture reports err with the given tags. Cancellations and 404s from the
// directory are expected outcomes and are not reported.
func Capture(err error, tags map[string]string) {
	if err == nil || errors.Is(err, context.Canceled) || apperrors.IsNotFound(err) {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)

		var remote *apperrors.ErrRemoteCall
		if errors.As(err, &remote) {
			scope.SetContext("remote_call", sentry.Context{
				"url":         remote.URL,
				"status_code": remote.StatusCode,
			})
		}

		sentry.CaptureException(err)
	})
}
