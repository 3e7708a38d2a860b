package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"wingman/pkg/session"
)

// SlashCommands defines all available slash commands
var SlashCommands = []*discordgo.ApplicationCommand{
	{
		Name:        "start",
		Description: "Main menu",
	},
	{
		Name:        "profile",
		Description: "Generate a dating profile 😎",
	},
	{
		Name:        "opener",
		Description: "Craft a first message 🥰",
	},
	{
		Name:        "message",
		Description: "Reply to a chat on your behalf 😈",
	},
	{
		Name:        "date",
		Description: "Practice chatting with a celebrity 🔥",
	},
	{
		Name:        "gpt",
		Description: "Ask ChatGPT anything 🧠",
	},
}

type modeEntry struct {
	messageKey string
	enter      func(h *Handler, ctx context.Context, s Session, channelID string)
}

// Each command responds with its intro text, then runs the mode entry:
// state switch, illustration, and any follow-up (first question, buttons).
var modeCommands = map[string]modeEntry{
	"start":   {messageKey: "main", enter: (*Handler).enterMain},
	"gpt":     {messageKey: "gpt", enter: (*Handler).enterGPT},
	"profile": {messageKey: "profile", enter: (*Handler).enterProfile},
	"opener":  {messageKey: "opener", enter: (*Handler).enterOpener},
	"message": {messageKey: "message", enter: (*Handler).enterRelay},
	"date":    {messageKey: "date", enter: (*Handler).enterDate},
}

// InteractionCreate handles slash commands and button presses
func (h *Handler) InteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.HandleInteraction(&DiscordSession{s}, i)
}

func (h *Handler) HandleInteraction(s Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(s, i)
	case discordgo.InteractionMessageComponent:
		h.handleButton(s, i)
	}
}

func (h *Handler) handleCommand(s Session, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name

	entry, ok := modeCommands[name]
	if !ok {
		log.Printf("bot: unknown slash command: %s", name)
		h.respond(s, i, unknownNotice)
		return
	}

	// Mode entry resets conversation state, so it must not interleave with
	// an in-flight turn that would write the pre-reset state back.
	if !h.acquire(i.ChannelID) {
		h.respond(s, i, busyNotice)
		return
	}
	defer h.release(i.ChannelID)

	h.respond(s, i, h.templates.Message(entry.messageKey))
	entry.enter(h, context.Background(), s, i.ChannelID)
}

func (h *Handler) respond(s Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		log.Printf("bot: error responding to interaction: %v", err)
	}
}

func (h *Handler) enterMain(ctx context.Context, s Session, channelID string) {
	state := h.getState(ctx, channelID)
	state.Mode = session.ModeMain
	h.putState(ctx, channelID, state)
	h.sendPhoto(s, channelID, "main")
}

func (h *Handler) enterGPT(ctx context.Context, s Session, channelID string) {
	state := h.getState(ctx, channelID)
	state.Mode = session.ModeGPT
	h.putState(ctx, channelID, state)
	h.sendPhoto(s, channelID, "gpt")
}

func (h *Handler) enterProfile(ctx context.Context, s Session, channelID string) {
	h.enterForm(ctx, s, channelID, profileForm, "profile")
}

func (h *Handler) enterOpener(ctx context.Context, s Session, channelID string) {
	h.enterForm(ctx, s, channelID, openerForm, "opener")
}

func (h *Handler) enterForm(ctx context.Context, s Session, channelID string, f *Form, photoKey string) {
	state := h.getState(ctx, channelID)
	state.EnterForm(f.Mode)
	h.putState(ctx, channelID, state)

	h.sendPhoto(s, channelID, photoKey)
	h.send(s, channelID, f.Fields[0].Question)
}

func (h *Handler) enterRelay(ctx context.Context, s Session, channelID string) {
	state := h.getState(ctx, channelID)
	state.EnterRelay()
	h.putState(ctx, channelID, state)

	h.sendPhoto(s, channelID, "message")
	h.sendButtons(s, channelID, "When you're done forwarding, pick an action:", relayButtons)
}

func (h *Handler) enterDate(ctx context.Context, s Session, channelID string) {
	state := h.getState(ctx, channelID)
	state.Mode = session.ModeDate
	h.putState(ctx, channelID, state)

	h.sendPhoto(s, channelID, "date")
	h.sendButtons(s, channelID, "Pick your partner:", personaButtons)
}

// RegisterSlashCommands registers the mode-entry commands with Discord.
// An empty guildID registers them globally; a specific guild propagates
// faster during development.
func RegisterSlashCommands(s *discordgo.Session, guildID string) ([]*discordgo.ApplicationCommand, error) {
	registered := make([]*discordgo.ApplicationCommand, 0, len(SlashCommands))

	for _, cmd := range SlashCommands {
		created, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return nil, fmt.Errorf("failed to register /%s: %w", cmd.Name, err)
		}
		log.Printf("Registered /%s", cmd.Name)
		registered = append(registered, created)
	}

	return registered, nil
}

// UnregisterSlashCommands removes the commands registered at startup.
func UnregisterSlashCommands(s *discordgo.Session, guildID string, commands []*discordgo.ApplicationCommand) error {
	for _, cmd := range commands {
		if err := s.ApplicationCommandDelete(s.State.User.ID, guildID, cmd.ID); err != nil {
			return fmt.Errorf("failed to remove /%s: %w", cmd.Name, err)
		}
		log.Printf("Removed /%s", cmd.Name)
	}

	return nil
}
