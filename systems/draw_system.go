package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-quadgen/config"
	"ebiten-quadgen/generation"
)

// Painter receives draw instructions as they are pulled from a generator
type Painter interface {
	Paint(d generation.DrawInstruction)
}

// PaintRect converts an instruction into a pixel rectangle on a canvas scaled by cellSize.
// White rooms lose one cell on the right and bottom edge so neighbouring strokes stay visible.
// ok is false for the zero-area end marker.
func PaintRect(d generation.DrawInstruction, cellSize int) (x, y, w, h float32, ok bool) {
	if d.IsEnd() {
		return 0, 0, 0, 0, false
	}
	shrink := int(d.Color)
	x = float32(d.OriginX * cellSize)
	y = float32(d.OriginY * cellSize)
	w = float32((d.W - shrink) * cellSize)
	h = float32((d.H - shrink) * cellSize)
	return x, y, w, h, w > 0 && h > 0
}

// FillColor returns the fill color for a draw color
func FillColor(c generation.DrawColor) color.Color {
	if c == generation.Black {
		return color.Black
	}
	return color.White
}

// DrawSystem paints instructions onto an offscreen canvas that persists between frames
type DrawSystem struct {
	canvas *ebiten.Image
	width  int
	height int
}

// NewDrawSystem creates a painter sized for the given world
func NewDrawSystem(worldWidth, worldHeight int) *DrawSystem {
	w, h := config.CanvasSize(generation.BackgroundSize(worldWidth, worldHeight))
	return &DrawSystem{width: w, height: h}
}

func (s *DrawSystem) ensureCanvas() {
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(s.width, s.height)
	}
}

// Paint implements Painter
func (s *DrawSystem) Paint(d generation.DrawInstruction) {
	x, y, w, h, ok := PaintRect(d, config.CellSize)
	if !ok {
		return
	}
	s.ensureCanvas()

	vector.DrawFilledRect(s.canvas, x, y, w, h, FillColor(d.Color), false)
	vector.StrokeRect(s.canvas, x, y, w, h, 1, color.Black, false)
}

// Reset clears the canvas for a new generation pass
func (s *DrawSystem) Reset() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
}

// Size returns the canvas size in pixels
func (s *DrawSystem) Size() (int, int) {
	return s.width, s.height
}

// Draw copies the canvas to the screen
func (s *DrawSystem) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	screen.DrawImage(s.canvas, nil)
}
