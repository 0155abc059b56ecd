package director

import (
	"fmt"
	"log"

	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/application/state"
	"github.com/smolyneaux/simon/internal/domain/geometry"
)

// Text scales for the basicfont face, sized to roughly match the original
// 40/60/80 point labels.
const (
	textSmall   = 3.0
	textButton  = 4.0
	textHeading = 6.0
)

// setupFor returns the setup routine for a scene, or nil when the scene has
// none. Startup intentionally has no content; it exists only as the state
// the game transitions out of on the first frame.
func (d *Director) setupFor(scene state.Scene) func() {
	switch scene {
	case state.SceneClickToStart:
		return d.setupClickToStart
	case state.SceneMainMenu:
		return d.setupMainMenu
	case state.SceneGame:
		return d.setupGame
	case state.SceneScore:
		return d.setupScore
	case state.SceneCredits:
		return d.setupCredits
	default:
		return nil
	}
}

func (d *Director) spawn(nodes ...*node.Node) {
	d.arena = append(d.arena, nodes...)
}

func (d *Director) setupClickToStart() {
	textColor := d.cfg.Palette.Text.RGBA()

	// One control covering everything: any click advances.
	d.spawn(node.Control(0, 0, 99999, 99999, state.SceneMainMenu))
	d.spawn(node.Label(0, 0, "Click anywhere to begin", textButton, textColor))
}

func (d *Director) setupMainMenu() {
	pal := d.cfg.Palette
	textColor := pal.Text.RGBA()

	d.spawn(node.Button(0, 0, 275, 60, "Start Game", textButton,
		pal.StartButton.Base.RGBA(), pal.StartButton.Hover.RGBA(), textColor,
		state.SceneGame)...)
	d.spawn(node.Button(0, -80, 180, 60, "Credits", textButton,
		pal.CreditsButton.Base.RGBA(), pal.CreditsButton.Hover.RGBA(), textColor,
		state.SceneCredits)...)

	w := float64(d.cfg.Screen.Width)
	h := float64(d.cfg.Screen.Height)
	highScore := node.Label(-w/2+10, -h/2, fmt.Sprintf("High Score: %d", d.highScore),
		textHeading, textColor)
	highScore.Anchor = node.AnchorBottomLeft
	d.spawn(highScore)
}

func (d *Director) setupGame() {
	d.timer.Reset()
	d.round = state.NewRound(d.rng, d.cfg.Gameplay.PatternLength, d.cfg.Gameplay.SymbolCount)

	w := float64(d.cfg.Screen.Width)
	h := float64(d.cfg.Screen.Height)
	center := geometry.V(0, 0)
	tl := geometry.V(-w/2, h/2)
	tr := geometry.V(w/2, h/2)
	bl := geometry.V(-w/2, -h/2)
	br := geometry.V(w/2, -h/2)

	// The four pads split the screen into quadrant triangles meeting at
	// the center: top, right, bottom, left.
	quadrants := [4][3]geometry.Vec2{
		{center, tl, tr},
		{center, tr, br},
		{center, bl, br},
		{center, tl, bl},
	}
	for sym, q := range quadrants {
		pad := d.cfg.Palette.Pads[sym]
		d.spawn(node.Pad(sym, q[0], q[1], q[2], pad.Base.RGBA(), pad.Hover.RGBA()))
	}

	prompt := node.Label(0, 0, "Memorize", textHeading, d.cfg.Palette.Text.RGBA())
	prompt.Prompt = true
	d.spawn(prompt)
}

func (d *Director) setupScore() {
	pal := d.cfg.Palette
	textColor := pal.Text.RGBA()
	score := uint8(d.round.Score())

	d.spawn(node.Label(0, 0, fmt.Sprintf("Score: %d", score), textHeading, textColor))

	if score > d.highScore {
		d.oldHighScore = d.highScore
		d.highScore = score
		if err := d.scores.Save(score); err != nil {
			log.Printf("failed to save high score: %v", err)
		}
		d.spawn(node.Label(0, 80, "NEW HIGH SCORE!", textHeading, textColor))
		d.spawn(node.Label(0, -80, fmt.Sprintf("Old High Score: %d", d.oldHighScore),
			textHeading, textColor))
	} else {
		d.spawn(node.Label(0, -80, fmt.Sprintf("High Score: %d", d.highScore),
			textHeading, textColor))
	}

	d.spawn(node.Button(0, -240, 500, 60, "Click to return", textButton,
		pal.ReturnButton.Base.RGBA(), pal.ReturnButton.Hover.RGBA(), textColor,
		state.SceneMainMenu)...)
}

func (d *Director) setupCredits() {
	textColor := d.cfg.Palette.Text.RGBA()

	d.spawn(node.Control(0, 0, 99999, 99999, state.SceneMainMenu))
	d.spawn(node.Label(0, 0, "A color memory game", textHeading, textColor))
	d.spawn(node.Label(0, -80, "Built with Ebitengine", textSmall, textColor))
	d.spawn(node.Label(0, -220, "Click to Return", textButton, textColor))
}
