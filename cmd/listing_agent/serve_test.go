package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetServeFlags() {
	servePort = 0
	serveConfigFile = ""
}

func TestRunServe_MissingAPIKey(t *testing.T) {
	resetServeFlags()
	t.Setenv("GEMINI_API_KEY", "")

	err := runServe(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestRunServe_BadConfigFile(t *testing.T) {
	resetServeFlags()
	serveConfigFile = "/nonexistent/config.json"

	err := runServe(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestRunServe_InvalidConfig(t *testing.T) {
	resetServeFlags()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model":"gpt-5"}`), 0644))
	serveConfigFile = path

	err := runServe(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model")
}
