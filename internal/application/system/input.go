// Package system implements the per-frame systems of the game: input
// snapshotting, pointer hover tracking, the pattern engine, and
// scene-change activation. The frame pipeline runs them in a fixed order.
package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the input state for one frame. Released and Quit are edge
// events, true only on the frame they occurred.
type Input struct {
	CursorX  int
	CursorY  int
	Released bool
	Quit     bool
}

// ReadInput reads the current input state
func ReadInput() Input {
	cx, cy := ebiten.CursorPosition()
	return Input{
		CursorX:  cx,
		CursorY:  cy,
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		Quit:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
