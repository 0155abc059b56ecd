package entity

// HoverState holds the current hover flag for a shape plus the two
// edge-triggered flags, which are valid for exactly one frame.
type HoverState struct {
	Hovered       bool
	JustHovered   bool
	JustUnhovered bool
}

// NextHoverState computes the hover state for the coming frame from the
// previous state and the freshly computed overlap result. The edge flags
// are derived solely from the transition of Hovered between consecutive
// frames, so they are never both true, and both are false when Hovered
// is unchanged.
func NextHoverState(prev HoverState, hovered bool) HoverState {
	next := HoverState{Hovered: hovered}
	if prev.Hovered != hovered {
		if hovered {
			next.JustHovered = true
		} else {
			next.JustUnhovered = true
		}
	}
	return next
}
