package bot

import (
	"strings"

	"wingman/pkg/session"
)

// Field is one question of a form and the key its answer is stored under.
type Field struct {
	Key      string
	Question string
}

// Form is a fixed ordered questionnaire. The first question is asked at mode
// entry; each inbound message answers the current question and triggers the
// next one, and the final answer triggers a single synthesis call.
type Form struct {
	Mode session.Mode
	// PromptKey selects the system prompt used for synthesis.
	PromptKey string
	// Working is the interim notice shown while synthesis is in flight.
	Working string
	Fields  []Field
}

var profileForm = &Form{
	Mode:      session.ModeProfile,
	PromptKey: "profile",
	Working:   "Writing your profile, give me a couple of seconds...",
	Fields: []Field{
		{Key: "age", Question: "How old are you?"},
		{Key: "occupation", Question: "What do you do for a living?"},
		{Key: "hobby", Question: "Any hobbies? What are they?"},
		{Key: "annoys", Question: "What do you NOT like in people?"},
		{Key: "goals", Question: "What are you looking for?"},
	},
}

var openerForm = &Form{
	Mode:      session.ModeOpener,
	PromptKey: "opener",
	Working:   "Writing the first message, give me a couple of seconds...",
	Fields: []Field{
		{Key: "name", Question: "Her name?"},
		{Key: "age", Question: "How old is she?"},
		{Key: "handsome", Question: "Rate her looks: 1 to 10!"},
		{Key: "occupation", Question: "What does she do for a living?"},
		{Key: "goals", Question: "What kind of relationship are you after?"},
	},
}

// Serialize renders collected answers as "key: value" lines in schedule
// order, the payload handed to the language model.
func (f *Form) Serialize(answers map[string]string) string {
	lines := make([]string, 0, len(f.Fields))
	for _, field := range f.Fields {
		if value, ok := answers[field.Key]; ok {
			lines = append(lines, field.Key+": "+value)
		}
	}
	return strings.Join(lines, "\n")
}
