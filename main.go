package main

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func main() {
	env, err := loadEnv()
	if err != nil {
		panic(err)
	}

	if err := initSentry(env.SentryDSN); err != nil {
		panic(err)
	}
	defer sentry.Flush(2 * time.Second)

	app, err := NewApp(NewConfig(env))
	if err != nil {
		sentry.CaptureException(err)
		panic(err)
	}

	if err := app.start(); err != nil {
		sentry.CaptureException(err)
		slog.Error("ForexDiscordBot stopped", "error", err)
	}
}

// loadEnv reads the environment into an Env struct and validates it.
func loadEnv() (*Env, error) {
	v := viper.New()
	v.AutomaticEnv()

	keys := []string{
		"DISCORD_BOT_TOKEN",
		"ANNOUNCEMENT_CHANNEL_ID",
		"POSTGRES_DSN",
		"SENTRY_DSN",
		"ANNOUNCEMENT_TIME",
		"ANNOUNCEMENT_TIMEZONE",
		"ANNOUNCEMENT_MENTION",
		"EXCLUDED_CURRENCIES",
		"PORT",
	}
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&env); err != nil {
		return nil, err
	}

	return &env, nil
}
