package screens

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HelpText lists the map screen key bindings
const HelpText = "R      regenerate\n" +
	"Space  reveal all rooms\n" +
	"M      mute sound\n" +
	"F1     debug log\n" +
	"H      this help\n" +
	"Esc    back"

// ModalScreen represents a popup window that appears on top of other screens
type ModalScreen struct {
	title      string
	content    string
	width      int
	height     int
	background color.Color
	textColor  color.Color
}

// NewModalScreen creates a new modal screen
func NewModalScreen(title, content string, width, height int) *ModalScreen {
	return &ModalScreen{
		title:      title,
		content:    content,
		width:      width,
		height:     height,
		background: color.RGBA{0, 0, 0, 200}, // Semi-transparent black
		textColor:  color.White,
	}
}

// Draw implements the Screen interface
func (s *ModalScreen) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	x := (bounds.Dx() - s.width) / 2
	y := (bounds.Dy() - s.height) / 2

	modal := ebiten.NewImage(s.width, s.height)
	defer modal.Deallocate()
	modal.Fill(s.background)

	// Draw border
	ebitenutil.DrawRect(modal, 0, 0, float64(s.width), 1, s.textColor)
	ebitenutil.DrawRect(modal, 0, float64(s.height-1), float64(s.width), 1, s.textColor)
	ebitenutil.DrawRect(modal, 0, 0, 1, float64(s.height), s.textColor)
	ebitenutil.DrawRect(modal, float64(s.width-1), 0, 1, float64(s.height), s.textColor)

	titleX := (s.width - len(s.title)*6) / 2 // Approximate text width
	ebitenutil.DebugPrintAt(modal, s.title, titleX, 8)
	ebitenutil.DebugPrintAt(modal, s.content, 10, 30)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(modal, op)
}

// Update closes the modal on any dismiss key
func (s *ModalScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyH) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return ErrCloseScreen
	}
	return nil
}

// Layout implements the Screen interface
func (s *ModalScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
