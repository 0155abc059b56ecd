package system

import (
	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/domain/entity"
	"github.com/smolyneaux/simon/internal/domain/geometry"
)

// PointerSystem projects the cursor into world space and recomputes the
// hover state of every shaped node once per frame.
type PointerSystem struct {
	screenW int
	screenH int
}

// NewPointerSystem creates a pointer system for the given screen size.
func NewPointerSystem(screenW, screenH int) *PointerSystem {
	return &PointerSystem{screenW: screenW, screenH: screenH}
}

// WorldPosition converts the cursor position to the world frame: origin at
// the screen center, y up. ok is false when the cursor is outside the
// playable surface, which is a normal state, not an error.
func (s *PointerSystem) WorldPosition(in Input) (pos geometry.Vec2, ok bool) {
	if in.CursorX < 0 || in.CursorX >= s.screenW || in.CursorY < 0 || in.CursorY >= s.screenH {
		return geometry.Vec2{}, false
	}
	return geometry.V(
		float64(in.CursorX)-float64(s.screenW)/2,
		float64(s.screenH)/2-float64(in.CursorY),
	), true
}

// UpdateHover recomputes the hover state of every shaped, non-disabled node
// from the pointer position. Without a position every shape is unhovered.
// Disabled nodes are left to ForceUnhoverDisabled.
func (s *PointerSystem) UpdateHover(nodes []*node.Node, pos geometry.Vec2, ok bool) {
	for _, n := range nodes {
		if n.Shape == nil || n.HoverDisabled {
			continue
		}
		hovered := false
		if ok {
			hovered = n.Shape.Contains(n.Transform.ToLocal(pos))
		}
		n.Hover = entity.NextHoverState(n.Hover, hovered)
	}
}

// ForceUnhoverDisabled forces hover-disabled nodes unhovered, bypassing
// geometry, so no input registers on them while the pattern is playing back.
func (s *PointerSystem) ForceUnhoverDisabled(nodes []*node.Node) {
	for _, n := range nodes {
		if n.Shape == nil || !n.HoverDisabled {
			continue
		}
		n.Hover = entity.NextHoverState(n.Hover, false)
	}
}

// ApplyHoverColors swaps node fills on the hover edge flags. Presentation
// only; it consumes the tracker output and writes nothing else.
func (s *PointerSystem) ApplyHoverColors(nodes []*node.Node) {
	for _, n := range nodes {
		if !n.SwapOnHover {
			continue
		}
		if n.Hover.JustHovered {
			n.Color = n.HoverColor
		} else if n.Hover.JustUnhovered {
			n.Color = n.BaseColor
		}
	}
}
