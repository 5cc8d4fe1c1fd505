// Package game hosts the breathing exercise inside an ebiten window.
package game

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/breathing-bubble/internal/breath"
	"github.com/iburimskiy/breathing-bubble/internal/canvas"
	"github.com/iburimskiy/breathing-bubble/internal/particle"
	"github.com/iburimskiy/breathing-bubble/internal/render"
	"github.com/iburimskiy/breathing-bubble/internal/session"
	"github.com/iburimskiy/breathing-bubble/internal/sprite"
)

type Game struct {
	log     zerolog.Logger
	clock   session.Clock
	session *session.Session
	field   *particle.Field

	// drawing: gradients are cached as textures, everything else is drawn
	// on the screen directly
	drawer  *ebitenDrawer
	surface *sprite.Surface[*ebiten.Image]

	// surface size: Layout records it, Update applies it once per tick
	pendingW, pendingH int
	width, height      int

	// input
	button   button
	events   []pointerEvent
	touchIDs []ebiten.TouchID

	debug  bool
	closed bool
}

func New(log zerolog.Logger, debug bool) (*Game, error) {
	fonts, err := canvas.NewFonts()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newGame(log, session.NewSystemClock(), rng, fonts, debug), nil
}

func newGame(log zerolog.Logger, clock session.Clock, rng *rand.Rand, fonts *canvas.Fonts, debug bool) *Game {
	drawer := newEbitenDrawer(fonts)
	return &Game{
		log:     log,
		clock:   clock,
		session: session.New(breath.DefaultCycle(), log),
		field:   particle.NewField(rng),
		drawer:  drawer,
		surface: sprite.NewSurface[*ebiten.Image](drawer),
		debug:   debug,
	}
}

// Update: input, timing and score (60 TPS)
func (g *Game) Update() error {
	if quitRequested() {
		return g.quit()
	}

	g.applySize()
	now := g.clock.Now()
	cursor, events := g.pollInput()
	g.handlePointer(now, cursor, events)
	g.session.Tick(now)
	return nil
}

// Draw: rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.width, g.height
	if g.closed || w <= 0 || h <= 0 {
		return
	}

	g.drawer.dst = screen
	defer func() { g.drawer.dst = nil }()

	g.surface.Resize(w, h)
	f := g.session.Frame()
	render.Frame(g.surface, f, g.field)
	drawHUD(g.surface, g.session.Snapshot(), f, g.button)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  sprites %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.surface.Len()), 8, 8)
	}
}

// Layout follows the window so the surface is resizable.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.pendingW, g.pendingH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close releases the cached textures. It is safe to call more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.surface.Release()
	g.log.Debug().Int("rasterized", g.surface.Misses()).Msg("game closed")
}

// quit closes the game and ends the run loop.
func (g *Game) quit() error {
	g.Close()
	return ebiten.Termination
}

func (g *Game) applySize() {
	if g.pendingW == g.width && g.pendingH == g.height {
		return
	}
	g.width, g.height = g.pendingW, g.pendingH
	g.log.Debug().Int("width", g.width).Int("height", g.height).Msg("surface resized")
	if g.field.Resize(g.width, g.height) {
		g.log.Debug().Int("count", g.field.Len()).Msg("particles seeded")
	}
}

// handlePointer applies press edges to the session and the button.
func (g *Game) handlePointer(now time.Duration, cursor image.Point, events []pointerEvent) {
	r := buttonRect(g.width, g.height)
	g.button.hovered = cursor.In(r)

	for _, e := range events {
		if e.down {
			g.session.PressBegin(now)
			if e.pos.In(r) {
				g.button.pressed = true
			}
			continue
		}

		g.session.PressEnd()
		if g.button.pressed && e.pos.In(r) {
			g.toggle()
		}
		g.button.pressed = false
	}
}

func (g *Game) toggle() {
	if g.session.Active() {
		g.session.Reset()
		return
	}
	g.session.Start()
}

