package models

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gorm.io/datatypes"
)

func TestSettings_Validate(t *testing.T) {
	valid := Settings{
		ChannelID:    "123456789",
		ScheduleTime: "08:00",
		Timezone:     "Europe/Zurich",
	}

	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr error
	}{
		{
			name:   "valid settings",
			mutate: func(*Settings) {},
		},
		{
			name:    "empty channel id",
			mutate:  func(s *Settings) { s.ChannelID = "" },
			wantErr: ErrChannelIDEmpty,
		},
		{
			name:    "channel id too long",
			mutate:  func(s *Settings) { s.ChannelID = strings.Repeat("9", 65) },
			wantErr: ErrChannelIDTooLong,
		},
		{
			name:    "schedule time not HH:MM",
			mutate:  func(s *Settings) { s.ScheduleTime = "8am" },
			wantErr: ErrBadScheduleTime,
		},
		{
			name:    "schedule time out of range",
			mutate:  func(s *Settings) { s.ScheduleTime = "25:00" },
			wantErr: ErrBadScheduleTime,
		},
		{
			name:    "unknown timezone",
			mutate:  func(s *Settings) { s.Timezone = "Not/AZone" },
			wantErr: ErrBadTimezone,
		},
		{
			name:    "empty timezone",
			mutate:  func(s *Settings) { s.Timezone = "" },
			wantErr: ErrBadTimezone,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSettings_Currencies(t *testing.T) {
	tests := []struct {
		name string
		raw  datatypes.JSON
		want []string
	}{
		{
			name: "decodes the stored array",
			raw:  datatypes.JSON(`["AUD","CAD","CHF","CNY","NZD"]`),
			want: []string{"AUD", "CAD", "CHF", "CNY", "NZD"},
		},
		{
			name: "empty column yields no exclusions",
			raw:  nil,
		},
		{
			name: "broken column yields no exclusions",
			raw:  datatypes.JSON(`{"not": "an array"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{ExcludedCurrencies: tt.raw}
			if got := s.Currencies(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Currencies() = %v, want %v", got, tt.want)
			}
		})
	}
}
