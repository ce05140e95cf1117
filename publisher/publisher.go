package publisher

import (
	"github.com/bwmarrin/discordgo"
)

// DiscordPublisher delivers messages to a Discord channel.
type DiscordPublisher struct {
	ChannelID string // announcement channel id
	Session   *discordgo.Session
}

// NewDiscordPublisher creates a publisher with an authenticated (but not
// yet connected) Discord session.
func NewDiscordPublisher(channelID, token string) (*DiscordPublisher, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return &DiscordPublisher{
		ChannelID: channelID,
		Session:   s,
	}, nil
}

// Open starts the gateway connection. Must be called before publishing.
func (p *DiscordPublisher) Open() error {
	return p.Session.Open()
}

// Close tears down the gateway connection.
func (p *DiscordPublisher) Close() error {
	return p.Session.Close()
}

// Publish sends the message to the configured announcement channel.
func (p *DiscordPublisher) Publish(msg *Message) error {
	return p.PublishTo(p.ChannelID, msg)
}

// PublishTo sends the message to an arbitrary channel (command replies).
func (p *DiscordPublisher) PublishTo(channelID string, msg *Message) error {
	if !msg.HasFields() {
		_, err := p.Session.ChannelMessageSend(channelID, msg.Text)
		if err != nil {
			return NewPublishErr(channelID, err)
		}
		return nil
	}

	_, err := p.Session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: msg.Text,
		Embed:   msg.ToEmbed(),
	})
	if err != nil {
		return NewPublishErr(channelID, err)
	}
	return nil
}
