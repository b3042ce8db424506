// Package game is the single-threaded controller of the experience: all
// component state mutates inside Update, and Draw only reads it.
package game

import (
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/heartfall/internal/config"
	"github.com/iburimskiy/heartfall/internal/theme"
)

// Layout metrics.
const (
	margin     = 24
	introY     = 28
	countdownY = 64

	buttonW = 150
	buttonH = 36
	panelH  = 110

	glyphW = 6 // DebugPrint glyph advance
)

// heartScale converts a particle size into the drawn glyph width; the pulse
// on top of it follows the music level.
const heartScale = 3.0

type Game struct {
	cfg   *config.Config
	store *theme.Store

	mode    theme.Mode
	palette theme.Palette

	typing        *typingEffect
	clock         *countdown
	countdownText string
	reasons       *carousel
	field         *Field
	music         *musicPlayer

	beginBtn   *button
	advanceBtn *button
	themeBtn   *button
	musicBtn   *button

	width, height int
	prevKey       map[ebiten.Key]bool
}

func New(cfg *config.Config, store *theme.Store) (*Game, error) {
	target, err := cfg.Target()
	if err != nil {
		return nil, err
	}

	mode := store.Load()
	g := &Game{
		cfg:     cfg,
		store:   store,
		mode:    mode,
		palette: theme.PaletteFor(mode),
		typing:  newTypingEffect(cfg.Intro, cfg.TypingDelay()),
		clock:   newCountdown(target),
		reasons: newCarousel(cfg.Reasons, cfg.FinalMessage),
		music:   newMusicPlayer(),
		width:   cfg.Width,
		height:  cfg.Height,
		prevKey: map[ebiten.Key]bool{},
	}

	if cfg.Particles > 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		g.field = NewField(cfg.Particles, float64(cfg.Width), float64(cfg.Height), rng)
	} else {
		slog.Warn("particle animation disabled", "particles", cfg.Particles)
	}

	g.beginBtn = &button{label: "Begin", visible: true}
	g.advanceBtn = &button{label: advanceLabel}
	g.themeBtn = &button{label: "Theme", visible: true}
	g.musicBtn = &button{label: "Music", visible: true}

	if cfg.MusicPath != "" {
		if err := g.music.play(cfg.MusicPath); err != nil {
			slog.Warn("background music unavailable", "path", cfg.MusicPath, "error", err)
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyT) {
		g.toggleTheme()
	}
	if justPressed(ebiten.KeyM) {
		if err := g.music.openDialog(); err != nil {
			slog.Warn("opening music", "error", err)
		}
	}
	if justPressed(ebiten.KeySpace) {
		g.music.togglePause()
	}

	g.layoutButtons()
	mx, my := ebiten.CursorPosition()
	if g.beginBtn.handle(mx, my) {
		g.reasons.start()
		g.beginBtn.visible = false
		g.advanceBtn.visible = true
	}
	if g.advanceBtn.handle(mx, my) {
		g.reasons.advance()
	}
	g.advanceBtn.label = g.reasons.label
	if g.themeBtn.handle(mx, my) {
		g.toggleTheme()
	}
	if g.musicBtn.handle(mx, my) {
		if err := g.music.openDialog(); err != nil {
			slog.Warn("opening music", "error", err)
		}
	}

	now := time.Now()
	g.typing.update(now)
	g.countdownText = g.clock.render(now)
	if g.field != nil {
		g.field.Tick()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawHearts(screen)
	g.drawIntro(screen)
	ebitenutil.DebugPrintAt(screen, g.countdownText, margin, countdownY)
	g.drawReasons(screen)
	for _, b := range []*button{g.beginBtn, g.advanceBtn, g.themeBtn, g.musicBtn} {
		b.draw(screen, g.palette)
	}
	g.drawOverlay(screen)
}

// Layout reports the logical size; a change regenerates the particle pool
// against the new bounds.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		if g.field != nil {
			g.field.Reset(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) toggleTheme() {
	g.mode = g.mode.Flipped()
	g.palette = theme.PaletteFor(g.mode)
	if err := g.store.Save(g.mode); err != nil {
		slog.Warn("saving theme preference", "error", err)
	}
}

func (g *Game) layoutButtons() {
	g.themeBtn.place(g.width-margin-buttonW, margin, buttonW, buttonH)
	g.musicBtn.place(g.width-margin-buttonW, margin+buttonH+8, buttonW, buttonH)

	centerX := (g.width - buttonW) / 2
	g.beginBtn.place(centerX, g.height-margin-buttonH, buttonW, buttonH)
	g.advanceBtn.place(centerX, g.height-margin-buttonH, buttonW, buttonH)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	if g.height <= 0 {
		return
	}
	for y := 0; y < g.height; y++ {
		t := float64(y) / float64(g.height)
		clr := lerpRGB(g.palette.BackgroundTop, g.palette.BackgroundBottom, t)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), 1, clr, false)
	}
}

func (g *Game) drawHearts(screen *ebiten.Image) {
	if g.field == nil {
		return
	}
	pulse := 1 + 0.3*g.music.level()
	r, gc, b := hsvToRgb(g.palette.HeartHue, 0.65, 0.95)
	for _, p := range g.field.Particles() {
		clr := color.RGBA{R: r, G: gc, B: b, A: uint8(p.Opacity * 255)}
		drawHeart(screen, p.X, p.Y, p.Size*heartScale*pulse, clr)
	}
}

func (g *Game) drawIntro(screen *ebiten.Image) {
	txt := g.typing.text()
	// Doubled print thickens the glyphs against the gradient.
	ebitenutil.DebugPrintAt(screen, txt, margin+1, introY)
	ebitenutil.DebugPrintAt(screen, txt, margin, introY)
}

func (g *Game) drawReasons(screen *ebiten.Image) {
	if !g.reasons.active() && !g.reasons.exhausted() {
		return
	}

	x := margin
	w := g.width - 2*margin
	y := (g.height - panelH) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), panelH, g.palette.Panel, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), panelH, 2, g.palette.PanelBorder, false)

	msg := g.reasons.message
	tx := x + (w-len(msg)*glyphW)/2
	ebitenutil.DebugPrintAt(screen, msg, tx, y+panelH/2-8)

	counter := g.reasons.counter
	ebitenutil.DebugPrintAt(screen, counter, x+w-len(counter)*glyphW-10, y+panelH-20)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	if !g.reasons.overlay {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), g.palette.Overlay, false)

	msg := g.reasons.final
	tx := (g.width - len(msg)*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, msg, tx, g.height/2)
}
