package jobs

import (
	"fmt"

	"github.com/Messiiiejejj/ForexDiscordBot/publisher"
	"github.com/Messiiiejejj/ForexDiscordBot/scavenger/ffcalendar"
)

// User-visible message texts.
const (
	NoNewsMessage             = "No high/medium impact news found for the selected currencies on this day."
	NoNewsAnnouncementMessage = "No high/medium impact news found for today."
	FetchFailedMessage        = "Sorry, I couldn't fetch the news. The website might be down or blocking requests."

	newsFooter = "Data sourced from ForexFactory.com"
	embedColor = 0x3498db
)

// NewsMessage renders a calendar query result into a destination-agnostic
// message. Announcements and manual queries differ only in the "no news"
// wording.
func NewsMessage(res *ffcalendar.QueryResult, isAnnouncement bool) *publisher.Message {
	if res.Failed {
		return &publisher.Message{Text: FetchFailedMessage}
	}

	if len(res.Events) == 0 {
		if isAnnouncement {
			return &publisher.Message{Text: NoNewsAnnouncementMessage}
		}
		return &publisher.Message{Text: NoNewsMessage}
	}

	fields := make([]publisher.MessageField, len(res.Events))
	for i, e := range res.Events {
		fields[i] = publisher.MessageField{
			Name:  fmt.Sprintf("%s - %s %s", e.Time, e.Currency, impactGlyph(e.Impact)),
			Value: fmt.Sprintf("Event: %s\nForecast: %s | Previous: %s", e.EventName, e.Forecast, e.Previous),
		}
	}

	return &publisher.Message{
		Title:  fmt.Sprintf("Forex Factory News for %s", res.DisplayDate),
		Color:  embedColor,
		Footer: newsFooter,
		Fields: fields,
	}
}

// impactGlyph maps an impact level to its colored marker. The black
// default is unreachable through the classifier filter but kept as a
// guard against future impact levels.
func impactGlyph(impact ffcalendar.Impact) string {
	switch impact {
	case ffcalendar.ImpactHigh:
		return "🔴"
	case ffcalendar.ImpactMedium:
		return "🟠"
	case ffcalendar.ImpactHoliday:
		return "⚪️"
	default:
		return "⚫️"
	}
}
