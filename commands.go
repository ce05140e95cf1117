package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Messiiiejejj/ForexDiscordBot/internal/utils"
	"github.com/Messiiiejejj/ForexDiscordBot/jobs"
	"github.com/Messiiiejejj/ForexDiscordBot/publisher"
	"github.com/bwmarrin/discordgo"
)

const (
	searchingMessage      = "Searching for news..."
	invalidDateMessage    = "Invalid date. Please use `!newsddmmyy` or `!newsddmmyyyy`."
	invalidTimeMessage    = "Invalid time format. Please use `!setnewstime HH:MM` (24-hour)."
	notAdminMessage       = "You need administrator permissions to change the announcement time."
	timeUpdatedMessageFmt = "Daily announcement time set to %s (%s)."
)

// onMessage dispatches the chat commands: !newstoday, !newstomorrow,
// !news<ddmmyy|ddmmyyyy> and the admin-gated !setnewstime HH:MM.
func (a *App) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	switch {
	case content == "!newstoday":
		a.reply(m.ChannelID, searchingMessage)
		a.replyWithNews(ctx, m.ChannelID, 0)
	case content == "!newstomorrow":
		a.reply(m.ChannelID, searchingMessage)
		a.replyWithNews(ctx, m.ChannelID, 1)
	case strings.HasPrefix(content, "!setnewstime"):
		arg := strings.TrimSpace(strings.TrimPrefix(content, "!setnewstime"))
		a.handleSetTime(ctx, s, m, arg)
	case strings.HasPrefix(content, "!news") && isDigits(strings.TrimPrefix(content, "!news")):
		a.handleNewsForDate(ctx, m.ChannelID, strings.TrimPrefix(content, "!news"))
	}
}

// replyWithNews runs a calendar query for today+offset and sends the
// formatted result to the requesting channel.
func (a *App) replyWithNews(ctx context.Context, channelID string, offset int) {
	set, err := a.archivist.Entities.Settings.Get(ctx)
	if err != nil {
		a.logger.Error("[commands] error loading settings", "error", err)
		a.reply(channelID, jobs.FetchFailedMessage)
		return
	}

	res := a.calendar.QueryNews(ctx, offset, set.Timezone, set.Currencies())
	msg := jobs.NewsMessage(res, false)
	if err := a.publisher.PublishTo(channelID, msg); err != nil {
		a.logger.Error("[commands] error sending news", "channel", channelID, "error", err)
	}
}

// handleNewsForDate resolves a raw date token into a day offset relative
// to today in the configured timezone.
func (a *App) handleNewsForDate(ctx context.Context, channelID, token string) {
	set, err := a.archivist.Entities.Settings.Get(ctx)
	if err != nil {
		a.logger.Error("[commands] error loading settings", "error", err)
		a.reply(channelID, jobs.FetchFailedMessage)
		return
	}

	loc, err := time.LoadLocation(set.Timezone)
	if err != nil {
		a.logger.Error("[commands] invalid configured timezone", "timezone", set.Timezone, "error", err)
		a.reply(channelID, jobs.FetchFailedMessage)
		return
	}

	target, err := utils.ParseDateToken(token, loc)
	if err != nil {
		a.reply(channelID, invalidDateMessage)
		return
	}

	a.reply(channelID, fmt.Sprintf("Searching for news for %s...", target.Format("Monday, Jan 02, 2006")))
	a.replyWithNews(ctx, channelID, utils.DaysBetween(time.Now().In(loc), target))
}

// handleSetTime updates the persisted announcement time. Administrator
// permission on the channel is required; validation failures change no state.
func (a *App) handleSetTime(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate, arg string) {
	perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
	if err != nil || perms&discordgo.PermissionAdministrator == 0 {
		a.reply(m.ChannelID, notAdminMessage)
		return
	}

	if _, err := time.Parse("15:04", arg); err != nil {
		a.reply(m.ChannelID, invalidTimeMessage)
		return
	}

	set, err := a.archivist.Entities.Settings.Get(ctx)
	if err != nil {
		a.logger.Error("[commands] error loading settings", "error", err)
		return
	}

	if err := a.archivist.Entities.Settings.UpdateScheduleTime(ctx, set.ID, arg); err != nil {
		a.logger.Error("[commands] error updating schedule time", "error", err)
		return
	}

	a.reply(m.ChannelID, fmt.Sprintf(timeUpdatedMessageFmt, arg, set.Timezone))
}

func (a *App) reply(channelID, text string) {
	if err := a.publisher.PublishTo(channelID, &publisher.Message{Text: text}); err != nil {
		a.logger.Error("[commands] error sending reply", "channel", channelID, "error", err)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
