package publisher

import (
	"github.com/bwmarrin/discordgo"
)

// Message is a destination-agnostic structured message. Either Text alone
// is set (plain notice) or Title/Fields/Footer describe a rich card; Text
// may accompany a card as a mention prefix.
type Message struct {
	Text   string // plain content, also used as mention prefix for cards
	Title  string
	Color  int
	Footer string
	Fields []MessageField // ordered, one per event
}

// MessageField is a single labeled section of a structured message.
type MessageField struct {
	Name  string
	Value string
}

// HasFields reports whether the message carries a structured card.
func (m *Message) HasFields() bool {
	return len(m.Fields) > 0
}

// ToEmbed renders the structured part of the message as a Discord embed.
func (m *Message) ToEmbed() *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, len(m.Fields))
	for i, f := range m.Fields {
		fields[i] = &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: false,
		}
	}

	embed := &discordgo.MessageEmbed{
		Title:  m.Title,
		Color:  m.Color,
		Fields: fields,
	}
	if m.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: m.Footer}
	}

	return embed
}
