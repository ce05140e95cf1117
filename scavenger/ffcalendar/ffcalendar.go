package ffcalendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Calendar is the scavenger for the ForexFactory economic calendar.
// It fetches the calendar page for a given day, parses the rows and
// classifies them into news events.
type Calendar struct {
	BaseURL string // calendar host, overridable for tests
	client  *fetchClient
	logger  *slog.Logger
}

// NewCalendar creates a Calendar with a long-lived fetch session.
// The session (cookie jar included) is reused for every query so that
// anti-bot challenge cookies survive between requests.
func NewCalendar() *Calendar {
	return &Calendar{
		BaseURL: ForexFactoryURL,
		client:  newFetchClient(),
		logger:  slog.Default(),
	}
}

const (
	ForexFactoryURL = "https://www.forexfactory.com"

	allDayTime  = "All Day"
	noValue     = "N/A"
	bankHoliday = "Bank Holiday"
)

// Impact is the market impact level of a calendar event.
type Impact string

const (
	ImpactHigh    Impact = "High"    // High impact event
	ImpactMedium  Impact = "Medium"  // Medium impact event
	ImpactHoliday Impact = "Holiday" // Bank holiday
	ImpactUnknown Impact = "Unknown" // Unclassified, never part of query results
)

// RawRow is a single scraped calendar table row before classification.
type RawRow struct {
	Time        string // event time cell, may be empty
	Currency    string // 3-letter currency code
	ImpactToken string // suffix of the impact icon class (e.g. "high"), may be empty
	EventName   string // event title
	Forecast    string // forecasted value, may be empty
	Previous    string // previous value, may be empty
}

// NewsEvent is a qualifying calendar event ready for publishing.
type NewsEvent struct {
	Time      string // event time or "All Day"
	Currency  string // 3-letter currency code
	Impact    Impact // High, Medium or Holiday
	EventName string // event title
	Forecast  string // forecasted value or "N/A"
	Previous  string // previous value or "N/A"
}

// QueryResult is the outcome of a single calendar query.
// Events == nil with Failed == false means the page loaded but carried
// no qualifying events (common for weekends and far-future dates).
type QueryResult struct {
	DisplayDate string       // human readable date of the query, "Error" on failure
	Events      []*NewsEvent // qualifying events in page order, nil if none
	Failed      bool         // true if the fetch or parse failed
}

// QueryNews fetches and classifies the calendar for today+dayOffset in the
// given IANA timezone. It never returns an error: any failure along the
// fetch/parse path is normalized into a failed QueryResult.
func (c *Calendar) QueryNews(ctx context.Context, dayOffset int, timezone string, excluded []string) *QueryResult {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		c.logger.Error("[ffcalendar] invalid timezone", "timezone", timezone, "error", err)
		return failedResult()
	}

	target := time.Now().In(loc).AddDate(0, 0, dayOffset)
	displayDate := target.Format("Monday, Jan 02, 2006")
	url := c.BaseURL + "/calendar?day=" + urlDateToken(target)

	markup, err := c.client.fetch(ctx, url, c.BaseURL)
	if err != nil {
		c.logger.Error("[ffcalendar] fetch failed", "url", url, "error", err)
		return failedResult()
	}

	rows, err := parseRows(markup)
	if err != nil {
		c.logger.Error("[ffcalendar] parse failed", "url", url, "error", err)
		return failedResult()
	}

	events := classifyRows(rows, excluded)
	if len(events) == 0 {
		// Structurally empty page is a valid "no news" state, not a failure.
		return &QueryResult{DisplayDate: displayDate}
	}

	return &QueryResult{DisplayDate: displayDate, Events: events}
}

func failedResult() *QueryResult {
	return &QueryResult{DisplayDate: "Error", Failed: true}
}

// urlDateToken formats a date the way the calendar URL expects it:
// lowercased 3-letter month, day without zero padding, dot, 4-digit year.
// E.g. "jan5.2025".
func urlDateToken(t time.Time) string {
	return fmt.Sprintf("%s%d.%d", strings.ToLower(t.Format("Jan")), t.Day(), t.Year())
}

// classifyRows applies the inclusion rules to raw rows, preserving the
// input order. The function is pure: classifying the same rows twice
// yields the same events.
func classifyRows(rows []*RawRow, excluded []string) []*NewsEvent {
	var events []*NewsEvent
	for _, r := range rows {
		if lo.Contains(excluded, r.Currency) {
			continue
		}

		isHoliday := strings.Contains(r.EventName, bankHoliday) || strings.Contains(r.ImpactToken, "holiday")
		isHigh := strings.Contains(r.ImpactToken, "high")
		isMedium := strings.Contains(r.ImpactToken, "medium")

		if !isHoliday && !isHigh && !isMedium {
			continue
		}

		var impact Impact
		switch {
		// Bank holidays are holiday-class even if the page marker is
		// absent or inconsistent.
		case strings.Contains(r.EventName, bankHoliday):
			impact = ImpactHoliday
		case isHigh:
			impact = ImpactHigh
		case isMedium:
			impact = ImpactMedium
		default:
			impact = ImpactHoliday
		}

		events = append(events, &NewsEvent{
			Time:      valueOr(r.Time, allDayTime),
			Currency:  r.Currency,
			Impact:    impact,
			EventName: r.EventName,
			Forecast:  valueOr(r.Forecast, noValue),
			Previous:  valueOr(r.Previous, noValue),
		})
	}

	return events
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
