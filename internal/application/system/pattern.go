package system

import (
	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/application/state"
)

// CuePlayer triggers the audio cue for a pattern symbol.
type CuePlayer interface {
	// Play plays the cue for one symbol in [0,4).
	Play(symbol int)
	// PlayAll plays all four cues at once, the failure chord.
	PlayAll()
}

// PatternSystem drives the two phases of a round: demonstrating the
// pattern on the playback timer, and judging player presses against it.
type PatternSystem struct {
	cues CuePlayer
}

// NewPatternSystem creates a pattern system that emits cues to the player.
func NewPatternSystem(cues CuePlayer) *PatternSystem {
	return &PatternSystem{cues: cues}
}

// TickPlayback advances the playback phase by one frame. Each time the
// interval elapses it either cues the next pattern symbol or, once the
// current prefix has been fully demonstrated, hands control to the player:
// pads are enabled, the prompt is hidden, and the round turns interactive.
func (s *PatternSystem) TickPlayback(r *state.Round, timer *state.IntervalTimer, dt float64, nodes []*node.Node) {
	if r.Interactive || len(r.Pattern) == 0 {
		return
	}
	if !timer.Tick(dt) {
		return
	}

	if r.Idx > r.MaxIdx {
		r.EnterInput()
		for _, n := range nodes {
			if n.Pad >= 0 {
				n.HoverDisabled = false
				n.Color = n.BaseColor
			}
			if n.Prompt {
				n.Hidden = true
			}
		}
		return
	}

	sym := int(r.Expected())
	s.cues.Play(sym)
	for _, n := range nodes {
		if n.Pad < 0 {
			continue
		}
		if n.Pad == sym {
			n.Color = n.HoverColor
		} else {
			n.Color = n.BaseColor
		}
	}
	r.Idx++
}

// HandlePress judges a pointer release during the input phase. The first
// hovered pad in arena order counts as the press; no hovered pad is a
// no-op. A correct press either extends the prefix cursor or, when the
// whole prefix was reproduced, advances difficulty and restarts playback.
// A wrong press plays the failure chord and reports the round as over.
func (s *PatternSystem) HandlePress(r *state.Round, timer *state.IntervalTimer, nodes []*node.Node, released bool) (gameOver bool) {
	if !r.Interactive || !released {
		return false
	}

	pressed := -1
	for _, n := range nodes {
		if n.Pad >= 0 && n.Hover.Hovered {
			pressed = n.Pad
			break
		}
	}
	if pressed < 0 {
		return false
	}

	if uint8(pressed) != r.Expected() {
		s.cues.PlayAll()
		return true
	}

	s.cues.Play(pressed)
	if r.Idx == r.MaxIdx {
		r.AdvanceDifficulty()
		timer.Reset()
		for _, n := range nodes {
			if n.Pad >= 0 {
				n.HoverDisabled = true
			}
			if n.Prompt {
				n.Hidden = false
			}
		}
	} else {
		r.Idx++
	}
	return false
}
