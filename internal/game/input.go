package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointerEvent is one press edge from the mouse or a touch.
type pointerEvent struct {
	pos  image.Point
	down bool
}

// pollInput collects this tick's press edges. Presses are taken at window
// scope, the button only decides what a release on top of it means.
func (g *Game) pollInput() (image.Point, []pointerEvent) {
	events := g.events[:0]

	mx, my := ebiten.CursorPosition()
	cursor := image.Pt(mx, my)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{pos: cursor, down: true})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{pos: cursor, down: false})
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, pointerEvent{pos: image.Pt(x, y), down: true})
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, pointerEvent{pos: image.Pt(x, y), down: false})
	}

	g.events = events
	return cursor, events
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}
