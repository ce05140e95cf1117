package models

import "errors"

var (
	ErrChannelIDEmpty   = errors.New("channel id is empty")
	ErrChannelIDTooLong = errors.New("channel id is too long")
	ErrBadScheduleTime  = errors.New("schedule time is not in HH:MM format")
	ErrBadTimezone      = errors.New("timezone is not a valid IANA zone name")
	ErrSettingsNotFound = errors.New("settings row not found")
)
