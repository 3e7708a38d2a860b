package bot

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"wingman/pkg/gpt"
	"wingman/pkg/session"
	"wingman/pkg/templates"
)

const (
	errorNotice     = "Something went wrong. Please try again."
	busyNotice      = "Hold on, I'm still working on your last message..."
	emptyTextNotice = "Please type some text."
	unknownNotice   = "Unknown command."
)

type Handler struct {
	gen       Generator
	store     session.Store
	templates *templates.Store
	assetsDir string
	botID     string

	// busy serializes handling per conversation: a second inbound message
	// while a completion call is in flight for the same channel is rejected
	// instead of interleaving with the form state.
	busy   map[string]bool
	busyMu sync.Mutex
}

func NewHandler(gen Generator, store session.Store, tpl *templates.Store, assetsDir string) *Handler {
	return &Handler{
		gen:       gen,
		store:     store,
		templates: tpl,
		assetsDir: assetsDir,
		busy:      make(map[string]bool),
	}
}

func (h *Handler) SetBotID(id string) {
	h.botID = id
}

func (h *Handler) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.HandleMessage(&DiscordSession{s}, m)
}

func (h *Handler) HandleMessage(s Session, m *discordgo.MessageCreate) {
	// Ignore own messages and other bots
	if m.Author == nil || m.Author.ID == h.botID || m.Author.Bot {
		return
	}

	channelID := m.ChannelID
	if !h.acquire(channelID) {
		s.ChannelMessageSend(channelID, busyNotice)
		return
	}
	defer h.release(channelID)

	ctx := context.Background()
	state := h.getState(ctx, channelID)

	switch state.Mode {
	case session.ModeGPT:
		h.gptDialog(ctx, s, channelID, m.Content)
	case session.ModeDate:
		h.dateDialog(ctx, s, channelID, state, m.Content)
	case session.ModeMessage:
		h.relayAppend(ctx, s, channelID, state, m.Content)
	case session.ModeProfile:
		h.formDialog(ctx, s, channelID, state, profileForm, m.Content)
	case session.ModeOpener:
		h.formDialog(ctx, s, channelID, state, openerForm, m.Content)
	case session.ModeNone, session.ModeMain:
		h.echo(s, channelID, m.Content)
	default:
		h.echo(s, channelID, m.Content)
	}
}

// echo is the default handler when no mode is active: acknowledge, repeat
// the input, no completion call.
func (h *Handler) echo(s Session, channelID, text string) {
	h.send(s, channelID, "*Hey!*")
	h.send(s, channelID, "You said: "+text)
	h.sendPhoto(s, channelID, "avatar_main")
}

// gptDialog handles a single-turn question: one completion call, one reply.
func (h *Handler) gptDialog(ctx context.Context, s Session, channelID, text string) {
	if strings.TrimSpace(text) == "" {
		h.send(s, channelID, emptyTextNotice)
		return
	}

	s.ChannelTyping(channelID)

	answer, err := h.gen.Complete(ctx, h.templates.Prompt("gpt"), text)
	if err != nil {
		log.Printf("bot: gpt dialog failed: %v", err)
		h.send(s, channelID, errorNotice)
		return
	}
	h.send(s, channelID, answer)
}

// dateDialog runs one roleplay turn against the selected persona. The
// transcript is extended only after the call succeeds, so a failed turn can
// simply be resent.
func (h *Handler) dateDialog(ctx context.Context, s Session, channelID string, state *session.State, text string) {
	if state.Persona == "" {
		h.send(s, channelID, "Pick a partner first — use /date.")
		return
	}

	notice, err := s.ChannelMessageSend(channelID, "She's typing...")
	if err != nil {
		log.Printf("bot: error sending interim notice: %v", err)
	}

	answer, err := h.gen.Chat(ctx, h.templates.Prompt(state.Persona), state.History, text)
	if err != nil {
		log.Printf("bot: roleplay turn failed: %v", err)
		h.finishNotice(s, channelID, notice, errorNotice)
		return
	}

	state.History = append(state.History,
		gpt.Message{Role: "user", Content: text},
		gpt.Message{Role: "assistant", Content: answer},
	)
	h.putState(ctx, channelID, state)
	h.finishNotice(s, channelID, notice, answer)
}

// relayAppend silently accumulates a forwarded message; synthesis happens
// when a relay button is pressed.
func (h *Handler) relayAppend(ctx context.Context, s Session, channelID string, state *session.State, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	state.MessageLog = append(state.MessageLog, text)
	h.putState(ctx, channelID, state)
}

// formDialog advances a questionnaire by one answer. Intermediate answers
// are persisted as they arrive; the final answer is persisted only after the
// synthesis call succeeds, so a failure leaves the form one step short and
// the user can resend the last answer.
func (h *Handler) formDialog(ctx context.Context, s Session, channelID string, state *session.State, f *Form, text string) {
	if state.Step >= len(f.Fields) {
		h.send(s, channelID, "That's everything I needed. Run the command again to start over.")
		return
	}

	field := f.Fields[state.Step]

	if state.Step < len(f.Fields)-1 {
		state.Answers[field.Key] = text
		state.Step++
		h.putState(ctx, channelID, state)
		h.send(s, channelID, f.Fields[state.Step].Question)
		return
	}

	// Final answer: synthesize before committing it
	answers := make(map[string]string, len(f.Fields))
	for k, v := range state.Answers {
		answers[k] = v
	}
	answers[field.Key] = text

	notice, err := s.ChannelMessageSend(channelID, f.Working)
	if err != nil {
		log.Printf("bot: error sending interim notice: %v", err)
	}

	answer, err := h.gen.Complete(ctx, h.templates.Prompt(f.PromptKey), f.Serialize(answers))
	if err != nil {
		log.Printf("bot: %s synthesis failed: %v", f.Mode, err)
		h.finishNotice(s, channelID, notice, errorNotice)
		return
	}

	state.Answers[field.Key] = text
	state.Step++
	h.putState(ctx, channelID, state)
	h.finishNotice(s, channelID, notice, answer)
}

func (h *Handler) getState(ctx context.Context, channelID string) *session.State {
	state, err := h.store.Get(ctx, channelID)
	if err != nil {
		log.Printf("bot: error loading session %s: %v", channelID, err)
	}
	if state == nil {
		state = session.NewState()
	}
	return state
}

func (h *Handler) putState(ctx context.Context, channelID string, state *session.State) {
	if err := h.store.Put(ctx, channelID, state); err != nil {
		log.Printf("bot: error saving session %s: %v", channelID, err)
	}
}

func (h *Handler) acquire(channelID string) bool {
	h.busyMu.Lock()
	defer h.busyMu.Unlock()
	if h.busy[channelID] {
		return false
	}
	h.busy[channelID] = true
	return true
}

func (h *Handler) release(channelID string) {
	h.busyMu.Lock()
	defer h.busyMu.Unlock()
	delete(h.busy, channelID)
}

func (h *Handler) send(s Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("bot: error sending message: %v", err)
	}
}

// finishNotice turns an interim notice into the final text, falling back to
// a plain send if the notice never went out or the edit fails.
func (h *Handler) finishNotice(s Session, channelID string, notice *discordgo.Message, content string) {
	if notice != nil {
		_, err := s.ChannelMessageEdit(channelID, notice.ID, content)
		if err == nil {
			return
		}
		log.Printf("bot: error editing notice: %v", err)
	}
	h.send(s, channelID, content)
}

// sendPhoto attaches the illustration registered under key, if present in
// the assets directory. Missing illustrations are skipped silently.
func (h *Handler) sendPhoto(s Session, channelID, key string) {
	if h.assetsDir == "" {
		return
	}
	for _, ext := range []string{".jpg", ".png"} {
		path := filepath.Join(h.assetsDir, key+ext)
		file, err := os.Open(path)
		if err != nil {
			continue
		}
		_, err = s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Files: []*discordgo.File{{Name: key + ext, Reader: file}},
		})
		file.Close()
		if err != nil {
			log.Printf("bot: error sending photo %s: %v", key, err)
		}
		return
	}
}
