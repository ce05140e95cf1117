package models

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SettingsDB struct {
	Conn *gorm.DB
}

func NewSettingsDB(db *gorm.DB) *SettingsDB {
	return &SettingsDB{Conn: db.Table("settings")}
}

// Settings is the single persisted bot configuration row. The schedule
// time is mutable at runtime via the admin command; everything else is
// seeded from the environment on first start.
type Settings struct {
	ID                 uuid.UUID      `gorm:"primaryKey;type:uuid;not null;" json:"id"`
	ChannelID          string         `gorm:"size:64;not null" json:"channel_id"`     // announcement channel id
	ScheduleTime       string         `gorm:"size:5;not null" json:"schedule_time"`   // daily announcement time, "HH:MM"
	Timezone           string         `gorm:"size:64;not null" json:"timezone"`       // IANA zone name for schedule and queries
	ExcludedCurrencies datatypes.JSON `gorm:"" json:"excluded_currencies"`            // JSON array of 3-letter codes
	CreatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at,omitempty"`
	UpdatedAt          time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at,omitempty"`
}

func (s *Settings) Validate() error {
	if s.ChannelID == "" {
		return ErrChannelIDEmpty
	}

	if len(s.ChannelID) > 64 {
		return ErrChannelIDTooLong
	}

	if _, err := time.Parse("15:04", s.ScheduleTime); err != nil {
		return ErrBadScheduleTime
	}

	if _, err := time.LoadLocation(s.Timezone); err != nil || s.Timezone == "" {
		return ErrBadTimezone
	}

	return nil
}

// Currencies decodes the excluded currencies column. A missing or broken
// column yields an empty set rather than an error: exclusion is a filter,
// not a precondition.
func (s *Settings) Currencies() []string {
	if len(s.ExcludedCurrencies) == 0 {
		return nil
	}

	var codes []string
	if err := json.Unmarshal(s.ExcludedCurrencies, &codes); err != nil {
		return nil
	}
	return codes
}

func (s *Settings) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	return s.Validate()
}

// Get returns the settings row, or ErrSettingsNotFound if the bot was
// never seeded.
func (db *SettingsDB) Get(ctx context.Context) (*Settings, error) {
	var s Settings
	res := db.Conn.WithContext(ctx).First(&s)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, res.Error
	}

	return &s, nil
}

// Seed creates the settings row if none exists yet and returns the
// effective row either way.
func (db *SettingsDB) Seed(ctx context.Context, s *Settings) (*Settings, error) {
	existing, err := db.Get(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrSettingsNotFound) {
		return nil, err
	}

	res := db.Conn.WithContext(ctx).Create(s)
	if res.Error != nil {
		return nil, res.Error
	}

	return s, nil
}

// UpdateScheduleTime persists a new "HH:MM" announcement time.
func (db *SettingsDB) UpdateScheduleTime(ctx context.Context, id uuid.UUID, scheduleTime string) error {
	if _, err := time.Parse("15:04", scheduleTime); err != nil {
		return ErrBadScheduleTime
	}

	res := db.Conn.WithContext(ctx).Where("id = ?", id).Update("schedule_time", scheduleTime)
	if res.Error != nil {
		return res.Error
	}

	return nil
}
