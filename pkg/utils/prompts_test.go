package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPrompt(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.md")
		require.NoError(t, os.WriteFile(path, []byte("  You are a helpful assistant.\n"), 0644))

		content, err := LoadPrompt(path)
		require.NoError(t, err)
		assert.Equal(t, "You are a helpful assistant.", content)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPrompt(filepath.Join(t.TempDir(), "nope.md"))
		assert.Error(t, err)
	})
}

func TestLoadPromptWithFallback(t *testing.T) {
	t.Run("existing file wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prompt.md")
		require.NoError(t, os.WriteFile(path, []byte("from file"), 0644))

		assert.Equal(t, "from file", LoadPromptWithFallback(path, "fallback"))
	})

	t.Run("missing file falls back", func(t *testing.T) {
		assert.Equal(t, "fallback", LoadPromptWithFallback("does-not-exist.md", "fallback"))
	})
}
