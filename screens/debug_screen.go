package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-quadgen/systems"
)

// DebugScreen shows the diagnostic log in a modal window
type DebugScreen struct {
	scrollOffset int
	width        int
	height       int
	background   color.Color
	textColor    color.Color
}

// NewDebugScreen creates a debug window sized to fit the given screen
func NewDebugScreen(screenWidth, screenHeight int) *DebugScreen {
	return &DebugScreen{
		scrollOffset: 0,
		width:        screenWidth - 20,
		height:       screenHeight - 40,
		background:   color.RGBA{0, 0, 0, 230},
		textColor:    color.White,
	}
}

// Update handles input for the debug screen
func (s *DebugScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.scrollUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.scrollDown(len(systems.GetDebugLog().Snapshot()))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return ErrCloseScreen
	}

	return nil
}

// scrollUp moves the view up by one line
func (s *DebugScreen) scrollUp() {
	if s.scrollOffset > 0 {
		s.scrollOffset--
	}
}

// scrollDown moves the view down by one line
func (s *DebugScreen) scrollDown(total int) {
	if s.scrollOffset < total-1 {
		s.scrollOffset++
	}
}

// visibleRange returns the slice bounds of messages that fit in maxLines
func visibleRange(offset, total, maxLines int) (start, end int) {
	start = offset
	if start > total-maxLines {
		start = total - maxLines
	}
	if start < 0 {
		start = 0
	}
	end = min(start+maxLines, total)
	return start, end
}

// Draw renders the debug screen
func (s *DebugScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	defer modal.Deallocate()
	modal.Fill(s.background)

	// Draw frame
	frameWidth := 2.0
	ebitenutil.DrawRect(modal, 0, 0, frameWidth, float64(s.height), color.White)                           // Left
	ebitenutil.DrawRect(modal, float64(s.width)-frameWidth, 0, frameWidth, float64(s.height), color.White) // Right
	ebitenutil.DrawRect(modal, 0, 0, float64(s.width), frameWidth, color.White)                            // Top
	ebitenutil.DrawRect(modal, 0, float64(s.height)-frameWidth, float64(s.width), frameWidth, color.White) // Bottom

	title := "DEBUG LOG"
	drawColoredText(modal, title, (s.width-len(title)*6)/2, 6, s.textColor)

	messages := systems.GetDebugLog().Snapshot()
	startY := 26
	lineHeight := 16
	maxLines := (s.height - startY - 20) / lineHeight

	start, end := visibleRange(s.scrollOffset, len(messages), maxLines)
	for i, msg := range messages[start:end] {
		drawColoredText(modal, msg.Text, 8, startY+i*lineHeight, msg.GetColor())
	}

	// Draw scroll indicator if needed
	if len(messages) > maxLines {
		trackHeight := float64(s.height - startY - 20)
		scrollBarHeight := float64(maxLines) / float64(len(messages)) * trackHeight
		scrollBarY := float64(startY) + float64(start)/float64(len(messages))*trackHeight
		ebitenutil.DrawRect(modal, float64(s.width-8), scrollBarY, 4, scrollBarHeight, color.White)
	}

	drawColoredText(modal, "Up/Down: Scroll  ESC/F1: Close", 8, s.height-18, s.textColor)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}

// Layout implements the Screen interface
func (s *DebugScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
