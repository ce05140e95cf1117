package jobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Messiiiejejj/ForexDiscordBot/archivist/models"
	"github.com/Messiiiejejj/ForexDiscordBot/publisher"
	"github.com/Messiiiejejj/ForexDiscordBot/scavenger/ffcalendar"
	"github.com/stretchr/testify/mock"
)

func Test_shouldFire(t *testing.T) {
	type args struct {
		now          time.Time
		scheduleTime string
		timezone     string
		channelID    string
		lastFired    string
	}
	tests := []struct {
		name     string
		args     args
		wantFire bool
		wantDate string
	}{
		{
			name: "before trigger time",
			args: args{
				now:          time.Date(2024, time.March, 11, 7, 59, 0, 0, time.UTC),
				scheduleTime: "08:00",
				timezone:     "UTC",
				channelID:    "123",
			},
			wantFire: false,
		},
		{
			name: "at trigger time",
			args: args{
				now:          time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC),
				scheduleTime: "08:00",
				timezone:     "UTC",
				channelID:    "123",
			},
			wantFire: true,
			wantDate: "2024-03-11",
		},
		{
			name: "already fired today",
			args: args{
				now:          time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC),
				scheduleTime: "08:00",
				timezone:     "UTC",
				channelID:    "123",
				lastFired:    "2024-03-11",
			},
			wantFire: false,
		},
		{
			name: "startup catch-up fires late in the day",
			args: args{
				now:          time.Date(2024, time.March, 11, 23, 59, 0, 0, time.UTC),
				scheduleTime: "08:00",
				timezone:     "UTC",
				channelID:    "123",
			},
			wantFire: true,
			wantDate: "2024-03-11",
		},
		{
			name: "local date differs from UTC date",
			args: args{
				// 23:30 UTC is already 00:30 the next day in Zurich (CET+1).
				now:          time.Date(2024, time.January, 10, 23, 30, 0, 0, time.UTC),
				scheduleTime: "00:00",
				timezone:     "Europe/Zurich",
				channelID:    "123",
				lastFired:    "2024-01-10",
			},
			wantFire: true,
			wantDate: "2024-01-11",
		},
		{
			name: "missing channel is a no-op",
			args: args{
				now:          time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC),
				scheduleTime: "08:00",
				timezone:     "UTC",
			},
			wantFire: false,
		},
		{
			name: "unparseable schedule time is a no-op",
			args: args{
				now:          time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC),
				scheduleTime: "8 o'clock",
				timezone:     "UTC",
				channelID:    "123",
			},
			wantFire: false,
		},
		{
			name: "unknown timezone is a no-op",
			args: args{
				now:          time.Date(2024, time.March, 11, 9, 0, 0, 0, time.UTC),
				scheduleTime: "08:00",
				timezone:     "Not/AZone",
				channelID:    "123",
			},
			wantFire: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fire, date := shouldFire(tt.args.now, tt.args.scheduleTime, tt.args.timezone, tt.args.channelID, tt.args.lastFired)
			if fire != tt.wantFire {
				t.Errorf("shouldFire() fire = %v, want %v", fire, tt.wantFire)
			}
			if date != tt.wantDate {
				t.Errorf("shouldFire() date = %v, want %v", date, tt.wantDate)
			}
		})
	}
}

// Simulate 1440 one-minute ticks spanning a day boundary: exactly one
// firing, at the first tick past the trigger time of the new day.
func Test_shouldFire_oncePerDay(t *testing.T) {
	lastFired := "2024-03-10"
	start := time.Date(2024, time.March, 10, 20, 0, 0, 0, time.UTC)

	var firings []time.Time
	for i := 0; i < 1440; i++ {
		now := start.Add(time.Duration(i) * time.Minute)
		fire, date := shouldFire(now, "08:00", "UTC", "123", lastFired)
		if fire {
			firings = append(firings, now)
			lastFired = date
		}
	}

	if len(firings) != 1 {
		t.Fatalf("got %d firings, want exactly 1 (at %v)", len(firings), firings)
	}
	want := time.Date(2024, time.March, 11, 8, 0, 0, 0, time.UTC)
	if !firings[0].Equal(want) {
		t.Errorf("fired at %v, want %v", firings[0], want)
	}
}

func Test_withMention(t *testing.T) {
	tests := []struct {
		name    string
		mention string
		text    string
		want    string
	}{
		{name: "both set", mention: "@everyone", text: "No news", want: "@everyone No news"},
		{name: "embed message has no text", mention: "@everyone", text: "", want: "@everyone"},
		{name: "no mention configured", mention: "", text: "No news", want: "No news"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := withMention(tt.mention, tt.text); got != tt.want {
				t.Errorf("withMention() = %q, want %q", got, tt.want)
			}
		})
	}
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(msg *publisher.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MockSettings struct {
	mock.Mock
}

func (m *MockSettings) Get(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(*models.Settings), args.Error(1)
}

func TestAnnouncementJob_Tick(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	calendar := ffcalendar.NewCalendar()
	calendar.BaseURL = srv.URL

	settings := &MockSettings{}
	settings.On("Get", mock.Anything).Return(&models.Settings{
		ChannelID:    "123",
		ScheduleTime: "00:00",
		Timezone:     "UTC",
	}, nil)

	pub := &MockPublisher{}
	pub.On("Publish", mock.Anything).Return(nil)

	job := NewAnnouncementJob(calendar, pub, settings, "@everyone")

	// Any real instant is past a 00:00 trigger; the first tick fires.
	job.Tick()()

	pub.AssertNumberOfCalls(t, "Publish", 1)
	msg := pub.Calls[0].Arguments.Get(0).(*publisher.Message)
	if want := "@everyone " + FetchFailedMessage; msg.Text != want {
		t.Errorf("published text = %q, want %q", msg.Text, want)
	}

	// The second tick on the same day must not fire again, even though
	// the broadcast reported a fetch failure.
	job.Tick()()
	pub.AssertNumberOfCalls(t, "Publish", 1)
}
