package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// BaseScreen provides common functionality for all screens
type BaseScreen struct {
	// Logical screen dimensions
	width  int
	height int
}

// NewBaseScreen creates a base screen with a fixed logical size
func NewBaseScreen(width, height int) *BaseScreen {
	return &BaseScreen{width: width, height: height}
}

// Update implements the Screen interface
func (s *BaseScreen) Update() error {
	return nil
}

// Draw implements the Screen interface
func (s *BaseScreen) Draw(screen *ebiten.Image) {
	// Base screen does nothing by default
}

// Layout implements the Screen interface
func (s *BaseScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.width, s.height
}

// GetWidth returns the screen width
func (s *BaseScreen) GetWidth() int {
	return s.width
}

// GetHeight returns the screen height
func (s *BaseScreen) GetHeight() int {
	return s.height
}

// drawColoredText prints debug text tinted with clr
func drawColoredText(dst *ebiten.Image, text string, x, y int, clr color.Color) {
	bounds := dst.Bounds()
	line := ebiten.NewImage(bounds.Dx(), 16)
	ebitenutil.DebugPrintAt(line, text, x, 0)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleWithColor(clr)
	op.GeoM.Translate(0, float64(y))
	dst.DrawImage(line, op)
	line.Deallocate()
}
