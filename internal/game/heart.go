package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// A 1x1 interior sub-image keeps sampling away from the texture edge.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// drawHeart fills a heart glyph centered on (x, y); size is the overall
// width. The outline is two cubic lobes meeting at the bottom point.
func drawHeart(dst *ebiten.Image, x, y, size float64, clr color.RGBA) {
	s := float32(size)
	cx, cy := float32(x), float32(y)

	var p vector.Path
	p.MoveTo(cx, cy+0.40*s)
	p.CubicTo(cx-0.10*s, cy+0.18*s, cx-0.50*s, cy+0.04*s, cx-0.50*s, cy-0.22*s)
	p.CubicTo(cx-0.50*s, cy-0.52*s, cx-0.12*s, cy-0.54*s, cx, cy-0.28*s)
	p.CubicTo(cx+0.12*s, cy-0.54*s, cx+0.50*s, cy-0.52*s, cx+0.50*s, cy-0.22*s)
	p.CubicTo(cx+0.50*s, cy+0.04*s, cx+0.10*s, cy+0.18*s, cx, cy+0.40*s)
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)

	// Premultiplied vertex colors over the white source pixel.
	a := float32(clr.A) / 255
	r := float32(clr.R) / 255 * a
	g := float32(clr.G) / 255 * a
	b := float32(clr.B) / 255 * a
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
