package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/application/state"
	"github.com/smolyneaux/simon/internal/domain/geometry"
)

// fakeCues records every cue trigger.
type fakeCues struct {
	played []int
	chords int
}

func (f *fakeCues) Play(symbol int) { f.played = append(f.played, symbol) }
func (f *fakeCues) PlayAll()        { f.chords++ }

func padBase(sym int) color.RGBA {
	return color.RGBA{uint8(50 * sym), 100, 100, 255}
}

func padHover(sym int) color.RGBA {
	return color.RGBA{uint8(50 * sym), 200, 200, 255}
}

// gameNodes builds the four pads plus the prompt label like the Game scene
// setup does.
func gameNodes() []*node.Node {
	nodes := make([]*node.Node, 0, 5)
	for sym := 0; sym < 4; sym++ {
		nodes = append(nodes, node.Pad(sym,
			geometry.V(0, 0), geometry.V(10, float64(sym)+1), geometry.V(-10, float64(sym)+1),
			padBase(sym), padHover(sym)))
	}
	prompt := node.Label(0, 0, "Memorize", 4, color.RGBA{A: 255})
	prompt.Prompt = true
	nodes = append(nodes, prompt)
	return nodes
}

func hoverPad(nodes []*node.Node, sym int) {
	for _, n := range nodes {
		n.Hover.Hovered = n.Pad == sym
	}
}

func TestTickPlayback_CuesPrefixThenGoesInteractive(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{2, 0, 1}, MaxIdx: 1}
	timer := state.NewIntervalTimer(1.0)

	// First interval: cue pattern[0].
	ps.TickPlayback(&r, &timer, 1.0, nodes)
	assert.Equal(t, []int{2}, cues.played)
	assert.Equal(t, padHover(2), nodes[2].Color, "cued pad highlights")
	assert.Equal(t, padBase(0), nodes[0].Color, "other pads revert")

	// Second interval: cue pattern[1].
	ps.TickPlayback(&r, &timer, 1.0, nodes)
	assert.Equal(t, []int{2, 0}, cues.played)

	// Third interval: prefix of length MaxIdx+1 demonstrated, hand over.
	ps.TickPlayback(&r, &timer, 1.0, nodes)
	assert.True(t, r.Interactive)
	assert.Equal(t, 0, r.Idx)
	for _, n := range nodes {
		if n.Pad >= 0 {
			assert.False(t, n.HoverDisabled, "pads enabled for input")
		}
		if n.Prompt {
			assert.True(t, n.Hidden, "prompt hidden for input")
		}
	}
	// No extra cue for the handover interval.
	assert.Equal(t, []int{2, 0}, cues.played)
}

func TestTickPlayback_CadenceUsesAccumulatedDelta(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{1, 1, 1}, MaxIdx: 2}
	timer := state.NewIntervalTimer(1.0)

	// 60 frames at 1/60s equal one interval.
	for i := 0; i < 60; i++ {
		ps.TickPlayback(&r, &timer, 1.0/60.0, nodes)
	}
	assert.Len(t, cues.played, 1)
}

func TestTickPlayback_InteractiveIsIdle(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{1}, Interactive: true}
	timer := state.NewIntervalTimer(1.0)

	ps.TickPlayback(&r, &timer, 5.0, nodes)
	assert.Empty(t, cues.played)
	assert.Equal(t, 0, r.Idx)
}

func TestTickPlayback_EmptyPatternIsIdle(t *testing.T) {
	// Before the first Game entry the round has no pattern yet.
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	r := state.Round{}
	timer := state.NewIntervalTimer(1.0)

	ps.TickPlayback(&r, &timer, 2.0, nil)
	assert.Empty(t, cues.played)
	assert.False(t, r.Interactive)
}

func TestHandlePress_CorrectPrefixAdvancesDifficulty(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{3, 1, 0, 2}, Interactive: true}
	timer := state.NewIntervalTimer(1.0)
	timer.Tick(0.4)

	// Reproduce prefixes of growing length, starting at MaxIdx 0.
	for round := 0; round < 3; round++ {
		require.True(t, r.Interactive)
		prefix := r.MaxIdx + 1
		for i := 0; i < prefix; i++ {
			hoverPad(nodes, int(r.Pattern[i]))
			over := ps.HandlePress(&r, &timer, nodes, true)
			require.False(t, over)
		}

		assert.Equal(t, round+1, r.MaxIdx, "difficulty advances by exactly one")
		assert.Equal(t, 0, r.Idx)
		assert.False(t, r.Interactive)
		assert.Equal(t, 0.0, timer.Elapsed(), "playback timer restarts from zero")
		for _, n := range nodes {
			if n.Pad >= 0 {
				assert.True(t, n.HoverDisabled, "pads re-disabled for playback")
			}
			if n.Prompt {
				assert.False(t, n.Hidden, "prompt shown again")
			}
		}

		// Simulate the next playback phase completing.
		r.Idx = r.MaxIdx + 1
		ps.TickPlayback(&r, &timer, 1.0, nodes)
		timer.Tick(0.4)
	}
}

func TestHandlePress_WrongPressEndsRound(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{0, 1, 2, 3}, Interactive: true, MaxIdx: 2, Idx: 1}
	timer := state.NewIntervalTimer(1.0)

	// pattern[1] == 1; press pad 3.
	hoverPad(nodes, 3)
	over := ps.HandlePress(&r, &timer, nodes, true)

	assert.True(t, over)
	assert.Equal(t, 2, r.MaxIdx, "score unchanged by the losing press")
	assert.Equal(t, 1, cues.chords, "all four cues fire together")
	assert.Empty(t, cues.played)
}

func TestHandlePress_MidPrefixAdvancesCursorOnly(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{0, 1, 2}, Interactive: true, MaxIdx: 2, Idx: 0}
	timer := state.NewIntervalTimer(1.0)

	hoverPad(nodes, 0)
	over := ps.HandlePress(&r, &timer, nodes, true)

	assert.False(t, over)
	assert.Equal(t, 1, r.Idx)
	assert.True(t, r.Interactive)
	assert.Equal(t, []int{0}, cues.played)
}

func TestHandlePress_NoHoveredPadIsNoop(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{0}, Interactive: true}
	timer := state.NewIntervalTimer(1.0)

	hoverPad(nodes, -1)
	over := ps.HandlePress(&r, &timer, nodes, true)

	assert.False(t, over)
	assert.Equal(t, 0, r.Idx)
	assert.Empty(t, cues.played)
	assert.Zero(t, cues.chords)
}

func TestHandlePress_IgnoredOutsideInputPhase(t *testing.T) {
	cues := &fakeCues{}
	ps := NewPatternSystem(cues)
	nodes := gameNodes()
	r := state.Round{Pattern: []uint8{0}}
	timer := state.NewIntervalTimer(1.0)

	hoverPad(nodes, 0)
	assert.False(t, ps.HandlePress(&r, &timer, nodes, true), "playback phase")

	r.Interactive = true
	assert.False(t, ps.HandlePress(&r, &timer, nodes, false), "no release edge")
	assert.Empty(t, cues.played)
}
