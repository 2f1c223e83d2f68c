package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverridesOnlyGivenKeys(t *testing.T) {
	t.Cleanup(Reset)

	err := Apply([]byte(`
player:
  jump_multiplier: 12
camera:
  climb_score: 250
`))
	require.NoError(t, err)

	assert.Equal(t, 12.0, Player.JumpMultiplier)
	assert.Equal(t, 250, Camera.ClimbScore)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.25, Player.AdjustedJumpTime)
	assert.Equal(t, 0.75, Camera.TransitionTime)
	assert.Equal(t, PlayerBody, Player.Color)
}

func TestApplyRejectsInvalidDocument(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "player: [unclosed"},
		{"zero fixed delta", "timing:\n  fixed_delta: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Player
			assert.Error(t, Apply([]byte(tt.doc)))
			assert.Equal(t, before, Player)
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("enemy:\n  speed: 50\n"), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.Equal(t, 50.0, Enemy.Speed)
}

func TestLoadMissingCustomPath(t *testing.T) {
	t.Cleanup(Reset)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
