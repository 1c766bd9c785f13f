package screens

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-quadgen/config"
	"ebiten-quadgen/generation"
)

// StartScreen shows the generation parameters and a small menu
type StartScreen struct {
	*BaseScreen
	opts           config.Generation
	selectedOption int
	options        []string
	titleColor     color.Color
	optionColor    color.Color
	selectedColor  color.Color
}

// NewStartScreen creates a new start screen
func NewStartScreen(opts config.Generation) *StartScreen {
	w, h := config.GetScreenDimensions(generation.BackgroundSize(opts.WorldWidth, opts.WorldHeight))
	return &StartScreen{
		BaseScreen:     NewBaseScreen(w, h),
		opts:           opts,
		selectedOption: 0,
		options: []string{
			"Generate",
			"Quit",
		},
		titleColor:    color.RGBA{255, 230, 150, 255}, // Gold
		optionColor:   color.RGBA{200, 200, 200, 255}, // Light Gray
		selectedColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// Update handles input for the start screen
func (s *StartScreen) Update() error {
	// Handle arrow key navigation
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.selectedOption = (s.selectedOption - 1 + len(s.options)) % len(s.options)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.selectedOption = (s.selectedOption + 1) % len(s.options)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}

	// Handle selection
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		switch s.selectedOption {
		case 0: // Generate
			return ErrStart
		case 1: // Quit
			return ErrQuit
		}
	}

	return nil
}

// parameterLines describes the configured pass
func (s *StartScreen) parameterLines() []string {
	aspect := "any"
	if s.opts.MaxAspectRatio > 0 {
		aspect = fmt.Sprintf("%.2f", s.opts.MaxAspectRatio)
	}
	seed := "random"
	if s.opts.Seed != 0 {
		seed = fmt.Sprintf("%d", s.opts.Seed)
	}
	return []string{
		fmt.Sprintf("World   %d x %d", s.opts.WorldWidth, s.opts.WorldHeight),
		fmt.Sprintf("Rooms   %d", s.opts.TargetRoomCount),
		fmt.Sprintf("Size    %d..%d", s.opts.MinRoomDim, s.opts.MaxRoomDim),
		fmt.Sprintf("Aspect  %s", aspect),
		fmt.Sprintf("Seed    %s", seed),
	}
}

// Draw renders the start screen
func (s *StartScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	centerX := s.GetWidth() / 2
	y := 24

	title := "QUADRANT DUNGEON"
	drawColoredText(screen, title, centerX-len(title)*3, y, s.titleColor)
	y += 32

	for _, line := range s.parameterLines() {
		drawColoredText(screen, line, centerX-60, y, s.optionColor)
		y += 16
	}
	y += 24

	for i, option := range s.options {
		textColor := s.optionColor
		label := "  " + option
		if i == s.selectedOption {
			textColor = s.selectedColor
			label = "> " + option
		}
		drawColoredText(screen, label, centerX-len(label)*3, y, textColor)
		y += 24
	}
}
