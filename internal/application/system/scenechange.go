package system

import (
	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/application/state"
)

// SceneChangeSystem turns pointer releases over scene-change controls into
// scene requests.
type SceneChangeSystem struct{}

// Activate scans the arena on a pointer release for a hovered node carrying
// a scene target. Nodes are scanned in arena order, so when controls
// overlap the earliest spawned one wins.
func (SceneChangeSystem) Activate(nodes []*node.Node, released bool) (state.Scene, bool) {
	if !released {
		return 0, false
	}
	for _, n := range nodes {
		if n.Target != nil && n.Hover.Hovered {
			return *n.Target, true
		}
	}
	return 0, false
}
