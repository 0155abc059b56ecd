// Package director owns the scene flow and the frame pipeline. It holds
// the current and requested scene, the per-scene node arena, and the round
// state, and runs the per-frame systems in a fixed order.
package director

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/application/state"
	"github.com/smolyneaux/simon/internal/application/system"
	"github.com/smolyneaux/simon/internal/infrastructure/config"
	"github.com/smolyneaux/simon/internal/render"
)

// ScoreStore persists the best score between runs.
type ScoreStore interface {
	// Load returns the stored high score, 0 when absent or unreadable.
	Load() uint8
	// Save stores a new high score.
	Save(score uint8) error
}

// Director implements ebiten.Game and manages scene transitions.
type Director struct {
	cfg *config.Config

	current   state.Scene
	requested state.Scene
	arena     []*node.Node

	round state.Round
	timer state.IntervalTimer
	rng   *rand.Rand

	highScore    uint8
	oldHighScore uint8
	scores       ScoreStore

	pointer *system.PointerSystem
	pattern *system.PatternSystem
	changer system.SceneChangeSystem

	dt float64
}

// New creates a Director. The high score is read once, up front; the first
// frame transitions from the empty Startup scene to ClickToStart.
func New(cfg *config.Config, scores ScoreStore, cues system.CuePlayer) *Director {
	return &Director{
		cfg:       cfg,
		current:   state.SceneStartup,
		requested: state.SceneClickToStart,
		timer:     state.NewIntervalTimer(cfg.Gameplay.PlaybackInterval),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		highScore: scores.Load(),
		scores:    scores,
		pointer:   system.NewPointerSystem(cfg.Screen.Width, cfg.Screen.Height),
		pattern:   system.NewPatternSystem(cues),
		dt:        1.0 / 60.0, // Default to 60 FPS
	}
}

// Update runs one frame of game logic.
// Implements ebiten.Game interface.
func (d *Director) Update() error {
	return d.Step(system.ReadInput(), d.dt)
}

// Step runs one pass of the frame pipeline against the given input
// snapshot. The stage order is fixed: later stages depend on writes made
// earlier in the same pass, and the pending scene transition is applied
// exactly once, after every gameplay stage.
func (d *Director) Step(in system.Input, dt float64) error {
	pos, ok := d.pointer.WorldPosition(in)
	d.pointer.UpdateHover(d.arena, pos, ok)
	d.pointer.ForceUnhoverDisabled(d.arena)
	d.pointer.ApplyHoverColors(d.arena)

	d.pattern.TickPlayback(&d.round, &d.timer, dt, d.arena)
	if d.pattern.HandlePress(&d.round, &d.timer, d.arena, in.Released) {
		d.requested = state.SceneScore
	}

	if scene, ok := d.changer.Activate(d.arena, in.Released); ok {
		log.Printf("requesting switch to %s", scene)
		d.requested = scene
	}

	d.applyTransition()

	if in.Quit {
		return ebiten.Termination
	}
	return nil
}

// applyTransition tears down the outgoing scene and builds the requested
// one. Requesting the scene that is already current is a no-op.
func (d *Director) applyTransition() {
	if d.requested == d.current {
		return
	}
	scene := d.requested
	d.current = scene

	log.Printf("switching to %s", scene)
	d.arena = d.arena[:0]

	if setup := d.setupFor(scene); setup != nil {
		setup()
	} else {
		log.Printf("scene %s has no setup routine", scene)
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (d *Director) Draw(screen *ebiten.Image) {
	render.Draw(screen, d.arena, d.cfg)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (d *Director) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.cfg.Screen.Width, d.cfg.Screen.Height
}

// SetRand replaces the pattern RNG.
// Useful for deterministic tests.
func (d *Director) SetRand(rng *rand.Rand) {
	d.rng = rng
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (d *Director) SetDT(dt float64) {
	d.dt = dt
}
