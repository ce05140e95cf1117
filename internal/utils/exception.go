package utils

import (
	"github.com/Messiiiejejj/ForexDiscordBot/pkg/errlvl"
	"github.com/getsentry/sentry-go"
)

type sentryHub interface {
	CaptureException(exception error) *sentry.EventID
	WithScope(callback func(scope *sentry.Scope))
}

// CaptureSentryException captures an exception under the given name.
// The default exception type in Sentry is the Go error type (usually
// errors.*something*), which makes grouping useless - the name rewrites it.
func CaptureSentryException(name string, hub sentryHub, err error) {
	level := sentryLevel(errlvl.Of(err))
	hub.WithScope(func(scope *sentry.Scope) {
		scope.AddEventProcessor(func(e *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			// NOTE: the top element of the stack is the last one in the slice.
			e.Exception[len(e.Exception)-1].Type = name
			e.Level = level
			return e
		})
		hub.CaptureException(err)
	})
}

func sentryLevel(s errlvl.Severity) sentry.Level {
	switch s {
	case errlvl.Fatal:
		return sentry.LevelFatal
	case errlvl.Error:
		return sentry.LevelError
	case errlvl.Warn:
		return sentry.LevelWarning
	case errlvl.Info:
		return sentry.LevelInfo
	case errlvl.Debug:
		return sentry.LevelDebug
	default:
		return sentry.LevelError
	}
}
