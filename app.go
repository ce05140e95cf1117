package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Messiiiejejj/ForexDiscordBot/archivist"
	"github.com/Messiiiejejj/ForexDiscordBot/archivist/models"
	"github.com/Messiiiejejj/ForexDiscordBot/jobs"
	"github.com/Messiiiejejj/ForexDiscordBot/publisher"
	"github.com/Messiiiejejj/ForexDiscordBot/scavenger/ffcalendar"
	"github.com/go-co-op/gocron/v2"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg       *Config
	calendar  *ffcalendar.Calendar
	publisher *publisher.DiscordPublisher
	archivist *archivist.Archivist
	logger    *slog.Logger
}

func NewApp(cfg *Config) (*App, error) {
	pub, err := publisher.NewDiscordPublisher(cfg.env.AnnouncementChannelID, cfg.env.DiscordBotToken)
	if err != nil {
		return nil, err
	}

	arch, err := archivist.NewArchivist(cfg.env.PostgresDSN)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:       cfg,
		calendar:  ffcalendar.NewCalendar(),
		publisher: pub,
		archivist: arch,
		logger:    slog.Default(),
	}, nil
}

func (a *App) start() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	set, err := a.seedSettings(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("announcement schedule",
		"time", set.ScheduleTime,
		"timezone", set.Timezone,
		"channel", set.ChannelID,
	)

	a.publisher.Session.AddHandler(a.onMessage)
	if err := a.publisher.Open(); err != nil {
		return err
	}
	defer func() {
		_ = a.publisher.Close()
	}()

	job := jobs.NewAnnouncementJob(
		a.calendar,
		a.publisher,
		a.archivist.Entities.Settings,
		a.cfg.env.AnnouncementMention,
	)

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	_, err = s.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(job.Tick()),
	)
	if err != nil {
		return err
	}
	s.Start()
	defer func() {
		_ = s.Shutdown()
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.serveKeepAlive(gctx)
	})

	a.logger.Info("Started ForexDiscordBot successfully")
	return g.Wait()
}

// seedSettings creates the persisted settings row from the environment on
// first start and returns the effective settings either way.
func (a *App) seedSettings(ctx context.Context) (*models.Settings, error) {
	seedCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	excluded, err := json.Marshal(a.cfg.excludedCurrencies)
	if err != nil {
		return nil, err
	}

	return a.archivist.Entities.Settings.Seed(seedCtx, &models.Settings{
		ChannelID:          a.cfg.env.AnnouncementChannelID,
		ScheduleTime:       a.cfg.env.AnnouncementTime,
		Timezone:           a.cfg.env.AnnouncementTimezone,
		ExcludedCurrencies: excluded,
	})
}
