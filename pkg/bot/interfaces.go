package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"wingman/pkg/gpt"
)

// Session interface abstracts discordgo.Session for testing
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEdit(channelID, messageID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) (err error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// DiscordSession adapts discordgo.Session to the Session interface
type DiscordSession struct {
	*discordgo.Session
}

// Generator is the language-model boundary. Complete is the stateless
// one-shot variant; Chat carries a prior transcript for roleplay.
type Generator interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Chat(ctx context.Context, system string, history []gpt.Message, user string) (string, error)
}
