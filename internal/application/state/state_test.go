package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScene_String(t *testing.T) {
	tests := []struct {
		scene    Scene
		expected string
	}{
		{SceneStartup, "Startup"},
		{SceneClickToStart, "ClickToStart"},
		{SceneMainMenu, "MainMenu"},
		{SceneGame, "Game"},
		{SceneScore, "Score"},
		{SceneCredits, "Credits"},
		{Scene(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scene.String())
		})
	}
}

func TestSceneConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Scene(0), SceneStartup)
	assert.Equal(t, Scene(1), SceneClickToStart)
	assert.Equal(t, Scene(2), SceneMainMenu)
	assert.Equal(t, Scene(3), SceneGame)
	assert.Equal(t, Scene(4), SceneScore)
	assert.Equal(t, Scene(5), SceneCredits)
}
