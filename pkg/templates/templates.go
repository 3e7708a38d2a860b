// Package templates is a keyed lookup for user-facing message texts and LLM
// system prompts. Defaults are compiled in; a templates directory with
// messages/<key>.txt and prompts/<key>.txt files overrides them per key.
package templates

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

type Store struct {
	messages map[string]string
	prompts  map[string]string
}

func NewStore() *Store {
	messages := make(map[string]string, len(defaultMessages))
	for k, v := range defaultMessages {
		messages[k] = v
	}
	prompts := make(map[string]string, len(defaultPrompts))
	for k, v := range defaultPrompts {
		prompts[k] = v
	}
	return &Store{messages: messages, prompts: prompts}
}

// LoadDir overlays texts from dir/messages and dir/prompts. A missing
// directory is not an error; the compiled-in defaults remain in effect.
func (st *Store) LoadDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := loadInto(filepath.Join(dir, "messages"), st.messages); err != nil {
		return err
	}
	return loadInto(filepath.Join(dir, "prompts"), st.prompts)
}

func loadInto(dir string, dest map[string]string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		key := strings.TrimSuffix(entry.Name(), ".txt")
		dest[key] = strings.TrimSpace(string(data))
	}
	return nil
}

// Message returns the user-facing text for key.
func (st *Store) Message(key string) string {
	if text, ok := st.messages[key]; ok {
		return text
	}
	log.Printf("templates: unknown message key %q", key)
	return key
}

// Prompt returns the LLM system prompt for key.
func (st *Store) Prompt(key string) string {
	if text, ok := st.prompts[key]; ok {
		return text
	}
	log.Printf("templates: unknown prompt key %q", key)
	return key
}

// HasPrompt reports whether a prompt is registered under key.
func (st *Store) HasPrompt(key string) bool {
	_, ok := st.prompts[key]
	return ok
}
