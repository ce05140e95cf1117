package utils

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateToken(t *testing.T) {
	zurich, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		token   string
		loc     *time.Location
		want    time.Time
		wantErr bool
	}{
		{
			name:  "six digit token",
			token: "050925",
			loc:   time.UTC,
			want:  time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "eight digit token",
			token: "05092025",
			loc:   zurich,
			want:  time.Date(2025, time.September, 5, 0, 0, 0, 0, zurich),
		},
		{
			name:  "leading zeroes",
			token: "010126",
			loc:   time.UTC,
			want:  time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "wrong length",
			token:   "0509202",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "non-digit characters",
			token:   "05/09/25",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "month out of range",
			token:   "051325",
			loc:     time.UTC,
			wantErr: true,
		},
		{
			name:    "empty token",
			token:   "",
			loc:     time.UTC,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateToken(tt.token, tt.loc)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateToken) {
					t.Errorf("ParseDateToken() error = %v, want ErrInvalidDateToken", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateToken() error = %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDateToken() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	zurich, err := time.LoadLocation("Europe/Zurich")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day ignores time of day",
			from: time.Date(2025, time.September, 5, 23, 59, 0, 0, time.UTC),
			to:   time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "next day",
			from: time.Date(2025, time.September, 5, 12, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.September, 6, 0, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "past date is negative",
			from: time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
			want: -4,
		},
		{
			name: "across a DST transition",
			// 2025-03-30 is the 23-hour spring-forward day in Zurich.
			from: time.Date(2025, time.March, 29, 12, 0, 0, 0, zurich),
			to:   time.Date(2025, time.March, 31, 12, 0, 0, 0, zurich),
			want: 2,
		},
		{
			name: "across a year boundary",
			from: time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}
