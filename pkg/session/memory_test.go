package session

import (
	"context"
	"testing"
	"time"

	"wingman/pkg/gpt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	s := NewMemoryStore(0, 0)
	state, err := s.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	s := NewMemoryStore(0, 0)
	ctx := context.Background()

	state := NewState()
	state.Mode = ModeProfile
	state.Step = 2
	state.Answers["age"] = "30"
	state.Answers["occupation"] = "engineer"
	require.NoError(t, s.Put(ctx, "chan1", state))

	got, err := s.Get(ctx, "chan1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ModeProfile, got.Mode)
	assert.Equal(t, 2, got.Step)
	assert.Equal(t, "30", got.Answers["age"])
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore(0, 0)
	ctx := context.Background()

	state := NewState()
	state.Answers["age"] = "30"
	require.NoError(t, s.Put(ctx, "chan1", state))

	// Mutating the returned state must not leak into the store until Put
	got, err := s.Get(ctx, "chan1")
	require.NoError(t, err)
	got.Answers["age"] = "99"
	got.Step = 5

	again, err := s.Get(ctx, "chan1")
	require.NoError(t, err)
	assert.Equal(t, "30", again.Answers["age"])
	assert.Equal(t, 0, again.Step)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore(0, 0)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "chan1", NewState()))
	require.NoError(t, s.Delete(ctx, "chan1"))

	got, err := s.Get(ctx, "chan1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_EvictIdle(t *testing.T) {
	s := NewMemoryStore(time.Hour, 0)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "stale", NewState()))
	require.NoError(t, s.Put(ctx, "fresh", NewState()))

	// Only "stale" has been idle past the TTL
	s.mu.Lock()
	s.states["stale"].UpdatedAt = time.Now().Add(-2 * time.Hour)
	s.mu.Unlock()

	s.evictIdle(time.Now())

	stale, err := s.Get(ctx, "stale")
	require.NoError(t, err)
	assert.Nil(t, stale)

	fresh, err := s.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.NotNil(t, fresh)
}

func TestState_EnterFormResets(t *testing.T) {
	state := NewState()
	state.Mode = ModeProfile
	state.Step = 2
	state.Answers["age"] = "30"
	state.Answers["occupation"] = "engineer"

	// Re-entry mid-sequence discards partial answers
	state.EnterForm(ModeProfile)
	assert.Equal(t, ModeProfile, state.Mode)
	assert.Equal(t, 0, state.Step)
	assert.Empty(t, state.Answers)
}

func TestState_EnterRelayClearsLog(t *testing.T) {
	state := NewState()
	state.MessageLog = []string{"a", "b"}

	state.EnterRelay()
	assert.Equal(t, ModeMessage, state.Mode)
	assert.Empty(t, state.MessageLog)
}

func TestState_SetPersonaResetsTranscript(t *testing.T) {
	state := NewState()
	state.SetPersona("date_robbie")
	require.Equal(t, ModeDate, state.Mode)
	require.Equal(t, "date_robbie", state.Persona)

	state.History = append(state.History, gpt.Message{Role: "user", Content: "hi"})

	state.SetPersona("date_hardy")
	assert.Equal(t, "date_hardy", state.Persona)
	assert.Empty(t, state.History)
}
