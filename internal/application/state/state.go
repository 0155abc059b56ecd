// Package state holds the flow and round state of the game: the Scene
// enum, the memorization Round, and the playback interval timer.
package state

// Scene identifies a top-level screen of the game. Exactly one scene is
// current at any time.
type Scene int

const (
	SceneStartup Scene = iota
	SceneClickToStart
	SceneMainMenu
	SceneGame
	SceneScore
	SceneCredits
)

// String returns the string representation of the scene
func (s Scene) String() string {
	switch s {
	case SceneStartup:
		return "Startup"
	case SceneClickToStart:
		return "ClickToStart"
	case SceneMainMenu:
		return "MainMenu"
	case SceneGame:
		return "Game"
	case SceneScore:
		return "Score"
	case SceneCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}
