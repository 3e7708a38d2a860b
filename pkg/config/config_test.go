package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Provide a path that definitely doesn't exist
	config, err := LoadConfig("non_existent_config.yml")
	require.NoError(t, err)

	// Verify default values
	assert.Equal(t, "gpt-4o-mini", config.Model.Name)
	assert.Equal(t, 0.7, config.Model.Temperature)
	assert.Equal(t, 1.0, config.Model.TopP)
	assert.Equal(t, 1024, config.Model.MaxTokens)
	assert.Equal(t, 60, config.Request.TimeoutSeconds)
	assert.Equal(t, 1, config.Request.Retries)
	assert.Equal(t, 24.0, config.Session.TTLHours)
	assert.Equal(t, 5.0, config.Session.SweepMinutes)
	assert.Equal(t, "templates", config.Paths.Templates)
	assert.Equal(t, "assets", config.Paths.Assets)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	// Create a temporary config file
	content := []byte(`
model:
  name: gpt-4o
  temperature: 0.9
  top_p: 0.95
  max_tokens: 2048
request:
  timeout_seconds: 30
  retries: 2
session:
  ttl_hours: 12
  sweep_minutes: 1
paths:
  templates: tpl
  assets: img
`)
	tmpfile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Load the config
	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	// Verify loaded values
	assert.Equal(t, "gpt-4o", config.Model.Name)
	assert.Equal(t, 0.9, config.Model.Temperature)
	assert.Equal(t, 0.95, config.Model.TopP)
	assert.Equal(t, 2048, config.Model.MaxTokens)
	assert.Equal(t, 30, config.Request.TimeoutSeconds)
	assert.Equal(t, 2, config.Request.Retries)
	assert.Equal(t, 12.0, config.Session.TTLHours)
	assert.Equal(t, 1.0, config.Session.SweepMinutes)
	assert.Equal(t, "tpl", config.Paths.Templates)
	assert.Equal(t, "img", config.Paths.Assets)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	// Missing sections keep their defaults
	content := []byte(`
model:
  name: gpt-4o
`)
	tmpfile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", config.Model.Name)
	assert.Equal(t, 60, config.Request.TimeoutSeconds)
	assert.Equal(t, 24.0, config.Session.TTLHours)
}
