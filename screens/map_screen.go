package screens

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-quadgen/systems"
)

// MapScreen reveals a generated map one room at a time
type MapScreen struct {
	*BaseScreen
	stepper     *systems.StepperSystem
	drawSystem  *systems.DrawSystem
	audioSystem *systems.AudioSystem
	overlays    *ScreenStack
	pass        int
	lastErr     error
}

// NewMapScreen creates a map screen; audioSystem may be nil
func NewMapScreen(stepper *systems.StepperSystem, drawSystem *systems.DrawSystem, audioSystem *systems.AudioSystem, width, height int) *MapScreen {
	return &MapScreen{
		BaseScreen:  NewBaseScreen(width, height),
		stepper:     stepper,
		drawSystem:  drawSystem,
		audioSystem: audioSystem,
		overlays:    NewScreenStack(),
	}
}

// Regenerate clears the canvas and starts a new generation pass
func (s *MapScreen) Regenerate() error {
	s.drawSystem.Reset()
	s.pass++
	if err := s.stepper.Start(); err != nil {
		s.lastErr = err
		systems.GetMessageLog().Add("Error: " + err.Error())
		return err
	}
	s.lastErr = nil
	return nil
}

// Update handles input and advances the stepper
func (s *MapScreen) Update() error {
	// Toggle debug message window with F1 key
	if s.overlays.Len() == 0 && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.overlays.Push(NewDebugScreen(s.GetWidth(), s.GetHeight()))
		return nil
	}
	if s.overlays.Len() == 0 && inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.overlays.Push(NewModalScreen("HELP", HelpText, 200, 120))
		return nil
	}

	// Modal input first; the map keeps revealing underneath
	if s.overlays.Len() > 0 {
		if err := s.overlays.Update(); err != nil {
			return err
		}
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ErrCloseScreen
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			// Errors are shown in the status bar
			_ = s.Regenerate()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.stepper.Flush()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.audioSystem != nil {
			s.audioSystem.ToggleMute()
		}
	}

	s.stepper.Update()
	return nil
}

// statusLine summarizes the current pass
func (s *MapScreen) statusLine() string {
	if s.lastErr != nil {
		return "error: " + s.lastErr.Error()
	}
	state := "drawing"
	if s.stepper.Done() {
		state = "done"
	}
	line := fmt.Sprintf("pass %d  rooms %d  left %d  %s", s.pass, s.stepper.Drawn(), s.stepper.Remaining(), state)
	if s.audioSystem != nil {
		if s.audioSystem.IsMuted() {
			line += "  muted"
		} else {
			line += "  sound"
		}
	}
	return line + "  [H]elp"
}

// messageLine shows the newest diagnostic
func messageLine(ml *systems.MessageLog) string {
	recent := ml.RecentMessages(1)
	if len(recent) == 0 {
		return ""
	}
	// Panic reports carry a stack trace; keep the first line
	msg, _, _ := strings.Cut(recent[0], "\n")
	return msg
}

// Draw draws the canvas, the message and status lines, and any overlay
func (s *MapScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s.drawSystem.Draw(screen)

	_, canvasHeight := s.drawSystem.Size()
	ebitenutil.DebugPrintAt(screen, messageLine(systems.GetMessageLog()), 4, canvasHeight+1)
	ebitenutil.DebugPrintAt(screen, s.statusLine(), 4, canvasHeight+17)

	if s.overlays.Len() > 0 {
		s.overlays.Draw(screen)
	}
}
