package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SetsPromptPrefix(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "> ", cfg.PromptPrefix)
	assert.NotEmpty(t, cfg.HistoryFile)
}

func TestLoad_EnvOverridesTakePrecedence(t *testing.T) {
	require.NoError(t, os.Setenv("PYLOX_PROMPT", "lox> "))
	t.Cleanup(func() { os.Unsetenv("PYLOX_PROMPT") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "lox> ", cfg.PromptPrefix)
}
