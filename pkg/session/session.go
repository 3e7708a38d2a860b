// Package session holds per-conversation dialog state, keyed by the Discord
// channel the conversation happens in.
package session

import (
	"context"
	"time"

	"wingman/pkg/gpt"
)

// Mode selects which handler receives the next inbound message for a
// conversation. It persists across turns until another mode-entry command.
type Mode string

const (
	ModeNone    Mode = ""
	ModeMain    Mode = "main"
	ModeGPT     Mode = "gpt"
	ModeProfile Mode = "profile"
	ModeOpener  Mode = "opener"
	ModeMessage Mode = "message"
	ModeDate    Mode = "date"
)

// State is the dialog state of one conversation.
type State struct {
	Mode Mode `json:"mode"`
	// Step counts answers collected so far in a form mode.
	Step    int               `json:"step"`
	Answers map[string]string `json:"answers,omitempty"`
	// MessageLog accumulates forwarded texts in message-relay mode.
	MessageLog []string `json:"message_log,omitempty"`
	// Persona is the prompt key of the selected roleplay partner.
	Persona string        `json:"persona,omitempty"`
	History []gpt.Message `json:"history,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewState() *State {
	return &State{Answers: make(map[string]string)}
}

// EnterForm switches to a form mode and discards any partial answers from a
// prior session, complete or not.
func (s *State) EnterForm(mode Mode) {
	s.Mode = mode
	s.Step = 0
	s.Answers = make(map[string]string)
}

// EnterRelay switches to message-relay mode with an empty log.
func (s *State) EnterRelay() {
	s.Mode = ModeMessage
	s.MessageLog = nil
}

// SetPersona selects a roleplay partner and starts the transcript over.
func (s *State) SetPersona(promptKey string) {
	s.Mode = ModeDate
	s.Persona = promptKey
	s.History = nil
}

func (s *State) Clone() *State {
	clone := *s
	if s.Answers != nil {
		clone.Answers = make(map[string]string, len(s.Answers))
		for k, v := range s.Answers {
			clone.Answers[k] = v
		}
	}
	clone.MessageLog = append([]string(nil), s.MessageLog...)
	clone.History = append([]gpt.Message(nil), s.History...)
	return &clone
}

// Store persists conversation state. Get returns (nil, nil) for a
// conversation that has no state yet; callers create it lazily.
type Store interface {
	Get(ctx context.Context, id string) (*State, error)
	Put(ctx context.Context, id string, state *State) error
	Delete(ctx context.Context, id string) error
}
