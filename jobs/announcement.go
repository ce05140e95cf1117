package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Messiiiejejj/ForexDiscordBot/internal/utils"
	"github.com/Messiiiejejj/ForexDiscordBot/scavenger/ffcalendar"
	"github.com/avast/retry-go"
	"github.com/getsentry/sentry-go"
)

// AnnouncementJob fires the daily news broadcast. The scheduler drives it
// once a minute; the job itself decides whether the configured local
// trigger time has been reached for a day it has not yet fired on.
type AnnouncementJob struct {
	calendar  *ffcalendar.Calendar // calendar scavenger that will fetch the news
	publisher NewsPublisher        // publisher that will broadcast to the channel
	settings  SettingsSource       // current bot settings, read every tick
	mention   string               // attention prefix for announcements (e.g. "@everyone")
	logger    *slog.Logger

	mu        sync.Mutex
	lastFired string // local calendar date ("2006-01-02") of the last firing attempt
}

func NewAnnouncementJob(
	calendar *ffcalendar.Calendar,
	publisher NewsPublisher,
	settings SettingsSource,
	mention string,
) *AnnouncementJob {
	return &AnnouncementJob{
		calendar:  calendar,
		publisher: publisher,
		settings:  settings,
		mention:   mention,
		logger:    slog.Default(),
	}
}

// Tick returns the job function executed by the scheduler every minute.
// A tick under incomplete or unparseable configuration is a no-op; the
// periodic driver must survive indefinitely many such ticks.
func (j *AnnouncementJob) Tick() JobFunc {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		tx := sentry.StartTransaction(ctx, "RunAnnouncementTick")
		tx.Op = "job-announcement"

		hub, ctx := jobHub(ctx)
		defer func() {
			tx.Finish()
			hub.Flush(2 * time.Second)
		}()

		span := tx.StartChild("Settings.Get")
		set, err := j.settings.Get(ctx)
		span.Finish()
		if err != nil {
			j.logger.Error("[announcement] error loading settings", "error", err)
			utils.CaptureSentryException("jobAnnouncementSettingsError", hub, err)
			return
		}

		fire, localDate := shouldFire(time.Now(), set.ScheduleTime, set.Timezone, set.ChannelID, j.lastFiredDate())
		if !fire {
			return
		}

		// Mark the attempt before broadcasting: at most one firing per
		// local calendar day, independent of the outcome.
		j.setLastFired(localDate)
		j.logger.Info("[announcement] sending daily news", "date", localDate)

		span = tx.StartChild("Calendar.QueryNews")
		res := j.calendar.QueryNews(ctx, 0, set.Timezone, set.Currencies())
		span.Finish()

		msg := NewsMessage(res, true)
		msg.Text = withMention(j.mention, msg.Text)

		span = tx.StartChild("Publisher.Publish")
		err = retry.Do(func() error {
			return j.publisher.Publish(msg)
		},
			retry.Attempts(3),
			retry.Delay(10*time.Second),
		)
		span.Finish()
		if err != nil {
			j.logger.Error("[announcement] error publishing daily news", "error", err)
			utils.CaptureSentryException("jobAnnouncementPublishError", hub, err)
			return
		}

		hub.AddBreadcrumb(&sentry.Breadcrumb{
			Category: "successful",
			Message:  "Daily announcement published",
			Level:    sentry.LevelInfo,
		}, nil)
	}
}

func (j *AnnouncementJob) lastFiredDate() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastFired
}

func (j *AnnouncementJob) setLastFired(date string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.lastFired = date
}

// shouldFire decides whether the announcement should fire at the given
// instant. It fires once the local time passes the configured trigger on
// a local date that has not fired yet; with an empty lastFired the first
// qualifying tick after process start fires immediately (startup
// catch-up). Incomplete or unparseable configuration never fires.
func shouldFire(now time.Time, scheduleTime, timezone, channelID, lastFired string) (fire bool, localDate string) {
	if channelID == "" || scheduleTime == "" || timezone == "" {
		return false, ""
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return false, ""
	}

	st, err := time.Parse("15:04", scheduleTime)
	if err != nil {
		return false, ""
	}

	nowLocal := now.In(loc)
	trigger := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), st.Hour(), st.Minute(), 0, 0, loc)
	localDate = nowLocal.Format(time.DateOnly)

	if nowLocal.Before(trigger) || localDate == lastFired {
		return false, ""
	}

	return true, localDate
}

func withMention(mention, text string) string {
	switch {
	case mention == "":
		return text
	case text == "":
		return mention
	default:
		return mention + " " + text
	}
}
