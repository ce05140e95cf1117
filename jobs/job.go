package jobs

import (
	"context"

	"github.com/Messiiiejejj/ForexDiscordBot/archivist/models"
	"github.com/Messiiiejejj/ForexDiscordBot/publisher"
	"github.com/getsentry/sentry-go"
)

// JobFunc is a type for job function that will be executed by the scheduler.
type JobFunc func()

// NewsPublisher delivers a formatted message to the announcement channel.
type NewsPublisher interface {
	Publish(msg *publisher.Message) error
}

// SettingsSource provides the current bot settings. Settings are read on
// every tick so runtime changes take effect without a restart.
type SettingsSource interface {
	Get(ctx context.Context) (*models.Settings, error)
}

// jobHub returns a sentry hub bound to the context, cloning the current
// one if the context carries none.
func jobHub(ctx context.Context) (*sentry.Hub, context.Context) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		ctx = sentry.SetHubOnContext(ctx, hub)
	}
	return hub, ctx
}
