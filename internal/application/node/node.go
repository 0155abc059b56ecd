// Package node defines the scene-owned entity: a positioned thing that may
// carry a hoverable shape, a fill, a text label, a pattern-pad symbol, or a
// scene-change target. Every node belongs to exactly one scene and is
// destroyed with it on transition.
package node

import (
	"image/color"

	"github.com/smolyneaux/simon/internal/application/state"
	"github.com/smolyneaux/simon/internal/domain/entity"
	"github.com/smolyneaux/simon/internal/domain/geometry"
)

// Anchor positions a label relative to its transform.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorBottomLeft
)

// Node is one scene entity. Zero-value fields mean the node does not
// participate in that concern: a nil Shape is never hit-tested, an empty
// Text is not drawn, Pad < 0 means not a pattern pad, a nil Target means
// the node changes no scene.
type Node struct {
	Transform geometry.Transform

	// Hit-testing
	Shape         *entity.Shape
	Hover         entity.HoverState
	HoverDisabled bool

	// Fill presentation
	Filled      bool
	Color       color.RGBA // current fill, swapped by hover and playback cues
	BaseColor   color.RGBA
	HoverColor  color.RGBA
	SwapOnHover bool

	// Text presentation
	Text      string
	TextScale float64
	TextColor color.RGBA
	Anchor    Anchor
	Hidden    bool

	// Roles
	Pad    int // pattern symbol in [0,4), or -1
	Target *state.Scene
	Prompt bool // the "Memorize" prompt label
}

// Rect creates a filled rectangle with hover color swapping.
func Rect(x, y, w, h float64, base, hover color.RGBA) *Node {
	shape := entity.RectShape(w, h)
	return &Node{
		Transform:   geometry.At(x, y),
		Shape:       &shape,
		Filled:      true,
		Color:       base,
		BaseColor:   base,
		HoverColor:  hover,
		SwapOnHover: true,
		Pad:         -1,
	}
}

// Label creates a text label at the given world position.
func Label(x, y float64, text string, scale float64, clr color.RGBA) *Node {
	return &Node{
		Transform: geometry.At(x, y),
		Text:      text,
		TextScale: scale,
		TextColor: clr,
		Pad:       -1,
	}
}

// Pad creates one of the four triangular input pads. Pads start
// hover-disabled; the pattern engine enables them for the input phase.
func Pad(symbol int, a, b, c geometry.Vec2, base, hover color.RGBA) *Node {
	shape := entity.TriangleShape(a, b, c)
	return &Node{
		Transform:     geometry.At(0, 0),
		Shape:         &shape,
		HoverDisabled: true,
		Filled:        true,
		Color:         base,
		BaseColor:     base,
		HoverColor:    hover,
		SwapOnHover:   true,
		Pad:           symbol,
	}
}

// Control creates an invisible hoverable region that requests the target
// scene when activated.
func Control(x, y, w, h float64, target state.Scene) *Node {
	shape := entity.RectShape(w, h)
	return &Node{
		Transform: geometry.At(x, y),
		Shape:     &shape,
		Pad:       -1,
		Target:    &target,
	}
}

// Button creates a scene-change button: a filled rectangle that highlights
// on hover, plus a label carrying the scene target over the same region.
// Two nodes, like the original's rectangle/text split, so the rectangle can
// sit under the text.
func Button(x, y, w, h float64, text string, scale float64, base, hover, textColor color.RGBA, target state.Scene) []*Node {
	action := Control(x, y, w, h, target)
	action.Text = text
	action.TextScale = scale
	action.TextColor = textColor
	return []*Node{
		Rect(x, y, w, h, base, hover),
		action,
	}
}
