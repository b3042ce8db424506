package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heartfall/internal/theme"
)

// button is a cursor hit-tested rectangle with hover/pressed visuals. A
// click fires on release while still inside the rectangle.
type button struct {
	x, y, w, h int
	label      string
	visible    bool

	hovered bool
	pressed bool
}

func (b *button) place(x, y, w, h int) {
	b.x, b.y, b.w, b.h = x, y, w, h
}

func (b *button) contains(mx, my int) bool {
	return mx >= b.x && mx <= b.x+b.w && my >= b.y && my <= b.y+b.h
}

// handle updates hover/pressed state and reports whether the button was
// clicked this frame.
func (b *button) handle(mx, my int) bool {
	if !b.visible {
		b.hovered = false
		b.pressed = false
		return false
	}
	b.hovered = b.contains(mx, my)

	if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		b.pressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		clicked := b.pressed && b.hovered
		b.pressed = false
		return clicked
	}
	return false
}

func (b *button) draw(screen *ebiten.Image, pal theme.Palette) {
	if !b.visible {
		return
	}

	bg := pal.Button
	if b.pressed {
		bg = pal.ButtonPressed
	} else if b.hovered {
		bg = pal.ButtonHover
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bg, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, pal.ButtonBorder, false)

	// Approximate glyph width keeps the label roughly centered.
	textWidth := len(b.label) * glyphW
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-12)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
