package main

import (
	"github.com/getsentry/sentry-go"
)

// initSentry configures the global sentry client used by every job.
func initSentry(dsn string) error {
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
}
