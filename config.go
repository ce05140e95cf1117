package main

import "strings"

// Env is a structure that holds all the environment variables that are used in the app.
type Env struct {
	DiscordBotToken       string `mapstructure:"DISCORD_BOT_TOKEN" validate:"required"`
	AnnouncementChannelID string `mapstructure:"ANNOUNCEMENT_CHANNEL_ID" validate:"required"`
	PostgresDSN           string `mapstructure:"POSTGRES_DSN" validate:"required"`
	SentryDSN             string `mapstructure:"SENTRY_DSN" validate:"required"`
	AnnouncementTime      string `mapstructure:"ANNOUNCEMENT_TIME"`
	AnnouncementTimezone  string `mapstructure:"ANNOUNCEMENT_TIMEZONE"`
	AnnouncementMention   string `mapstructure:"ANNOUNCEMENT_MENTION"`
	ExcludedCurrencies    string `mapstructure:"EXCLUDED_CURRENCIES"`
	Port                  string `mapstructure:"PORT"`
}

type Config struct {
	env                *Env     // Holds all the environment variables that are used in the app
	excludedCurrencies []string // Currencies whose events are never announced
}

// NewConfig creates a new Config object with the given Env on top of
// DefaultConfig, normalizing the optional values.
func NewConfig(env *Env) *Config {
	c := DefaultConfig()
	c.env.DiscordBotToken = env.DiscordBotToken
	c.env.AnnouncementChannelID = env.AnnouncementChannelID
	c.env.PostgresDSN = env.PostgresDSN
	c.env.SentryDSN = env.SentryDSN

	if env.AnnouncementTime != "" {
		c.env.AnnouncementTime = env.AnnouncementTime
	}
	if env.AnnouncementTimezone != "" {
		c.env.AnnouncementTimezone = env.AnnouncementTimezone
	}
	if env.AnnouncementMention != "" {
		c.env.AnnouncementMention = env.AnnouncementMention
	}
	if env.Port != "" {
		c.env.Port = env.Port
	}
	if env.ExcludedCurrencies != "" {
		c.excludedCurrencies = splitCurrencies(env.ExcludedCurrencies)
	}

	return c
}

// DefaultConfig creates a new Config object with default values.
func DefaultConfig() *Config {
	return &Config{
		env: &Env{
			AnnouncementTime:     "00:00",
			AnnouncementTimezone: "Europe/Zurich",
			AnnouncementMention:  "@everyone",
			Port:                 "10000",
		},
		excludedCurrencies: []string{"AUD", "CAD", "CHF", "CNY", "NZD"},
	}
}

func splitCurrencies(csv string) []string {
	var codes []string
	for _, c := range strings.Split(csv, ",") {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			codes = append(codes, c)
		}
	}
	return codes
}
