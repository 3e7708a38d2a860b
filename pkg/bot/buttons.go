package bot

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type buttonDef struct {
	ID    string
	Label string
}

// Button custom IDs are namespaced by prefix: date_* selects a roleplay
// persona, message_* triggers a relay synthesis, hello_* are generic acks.
var personaButtons = []buttonDef{
	{ID: "date_grande", Label: "Ariana Grande"},
	{ID: "date_robbie", Label: "Margot Robbie"},
	{ID: "date_zendaya", Label: "Zendaya"},
	{ID: "date_gosling", Label: "Ryan Gosling"},
	{ID: "date_hardy", Label: "Tom Hardy"},
}

var relayButtons = []buttonDef{
	{ID: "message_next", Label: "Next message"},
	{ID: "message_date", Label: "Ask her out"},
}

func (h *Handler) sendButtons(s Session, channelID, content string, defs []buttonDef) {
	buttons := make([]discordgo.MessageComponent, 0, len(defs))
	for _, def := range defs {
		buttons = append(buttons, discordgo.Button{
			Label:    def.Label,
			Style:    discordgo.SecondaryButton,
			CustomID: def.ID,
		})
	}

	_, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		},
	})
	if err != nil {
		log.Printf("bot: error sending buttons: %v", err)
	}
}

func (h *Handler) handleButton(s Session, i *discordgo.InteractionCreate) {
	id := i.MessageComponentData().CustomID
	channelID := i.ChannelID
	ctx := context.Background()

	// Ack the press; replies go out as regular channel messages
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		log.Printf("bot: error acking button: %v", err)
	}

	switch {
	case strings.HasPrefix(id, "date_"):
		h.selectPersona(ctx, s, channelID, id)
	case strings.HasPrefix(id, "message_"):
		h.relaySynthesis(ctx, s, channelID, id)
	case strings.HasPrefix(id, "hello_"):
		switch id {
		case "hello_start":
			h.send(s, channelID, "Process started.")
		case "hello_stop":
			h.send(s, channelID, "Process stopped.")
		default:
			h.send(s, channelID, unknownNotice)
		}
	default:
		h.send(s, channelID, unknownNotice)
	}
}

func (h *Handler) selectPersona(ctx context.Context, s Session, channelID, id string) {
	if !h.templates.HasPrompt(id) {
		h.send(s, channelID, unknownNotice)
		return
	}

	// Switching persona resets the transcript; don't let it race a
	// roleplay turn that is still writing to it.
	if !h.acquire(channelID) {
		h.send(s, channelID, busyNotice)
		return
	}
	defer h.release(channelID)

	h.sendPhoto(s, channelID, id)
	h.send(s, channelID, "Great choice! Get them to say yes to a date within five messages.")

	state := h.getState(ctx, channelID)
	state.SetPersona(id)
	h.putState(ctx, channelID, state)
}

// relaySynthesis joins the accumulated log into one block and asks for the
// reply chosen by the button.
func (h *Handler) relaySynthesis(ctx context.Context, s Session, channelID, id string) {
	if id != "message_next" && id != "message_date" {
		h.send(s, channelID, unknownNotice)
		return
	}

	if !h.acquire(channelID) {
		h.send(s, channelID, busyNotice)
		return
	}
	defer h.release(channelID)

	state := h.getState(ctx, channelID)
	if len(state.MessageLog) == 0 {
		h.send(s, channelID, "No messages to work with yet. Forward me the conversation first.")
		return
	}

	payload := strings.Join(state.MessageLog, "\n\n")

	notice, err := s.ChannelMessageSend(channelID, "Thinking over the options...")
	if err != nil {
		log.Printf("bot: error sending interim notice: %v", err)
	}

	answer, err := h.gen.Complete(ctx, h.templates.Prompt(id), payload)
	if err != nil {
		log.Printf("bot: relay synthesis failed: %v", err)
		h.finishNotice(s, channelID, notice, errorNotice)
		return
	}
	h.finishNotice(s, channelID, notice, answer)
}
