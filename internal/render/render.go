// Package render draws the scene arena: filled shapes via the vector
// package and labels via text/v2 over a bitmap face. Rendering is a pure
// consumer of node state; it writes nothing back.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/smolyneaux/simon/internal/application/node"
	"github.com/smolyneaux/simon/internal/domain/entity"
	"github.com/smolyneaux/simon/internal/domain/geometry"
	"github.com/smolyneaux/simon/internal/infrastructure/config"
)

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	// Lazily created so importing this package stays side-effect free
	// for headless tests.
	whiteSubImage *ebiten.Image
)

func fillSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Draw renders the arena onto the screen. Fills go under labels.
func Draw(screen *ebiten.Image, nodes []*node.Node, cfg *config.Config) {
	screen.Fill(cfg.Palette.Background.RGBA())

	w := float64(cfg.Screen.Width)
	h := float64(cfg.Screen.Height)

	for _, n := range nodes {
		if n.Hidden || !n.Filled || n.Shape == nil {
			continue
		}
		drawShape(screen, n, w, h)
	}
	for _, n := range nodes {
		if n.Hidden || n.Text == "" {
			continue
		}
		drawLabel(screen, n, w, h)
	}
}

// toScreen maps the world frame (center origin, y up) onto screen pixels.
func toScreen(world geometry.Vec2, w, h float64) (float32, float32) {
	return float32(world.X + w/2), float32(h/2 - world.Y)
}

func drawShape(screen *ebiten.Image, n *node.Node, w, h float64) {
	switch n.Shape.Kind {
	case entity.ShapeRect:
		cx, cy := toScreen(n.Transform.Translation, w, h)
		half := n.Shape.Half
		vector.DrawFilledRect(screen,
			cx-float32(half.X), cy-float32(half.Y),
			float32(2*half.X), float32(2*half.Y),
			n.Color, true)

	case entity.ShapeTriangle:
		ax, ay := toScreen(n.Transform.ToWorld(n.Shape.A), w, h)
		bx, by := toScreen(n.Transform.ToWorld(n.Shape.B), w, h)
		cx, cy := toScreen(n.Transform.ToWorld(n.Shape.C), w, h)

		var path vector.Path
		path.MoveTo(ax, ay)
		path.LineTo(bx, by)
		path.LineTo(cx, cy)
		path.Close()

		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].SrcX = 1
			vs[i].SrcY = 1
			vs[i].ColorR = float32(n.Color.R) / 255
			vs[i].ColorG = float32(n.Color.G) / 255
			vs[i].ColorB = float32(n.Color.B) / 255
			vs[i].ColorA = float32(n.Color.A) / 255
		}
		screen.DrawTriangles(vs, is, fillSource(), &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}
}

func drawLabel(screen *ebiten.Image, n *node.Node, w, h float64) {
	sx, sy := toScreen(n.Transform.Translation, w, h)

	scale := n.TextScale
	if scale == 0 {
		scale = 1
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(sx), float64(sy))
	op.ColorScale.ScaleWithColor(n.TextColor)

	switch n.Anchor {
	case node.AnchorBottomLeft:
		op.PrimaryAlign = text.AlignStart
		op.SecondaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}

	text.Draw(screen, n.Text, face, op)
}
