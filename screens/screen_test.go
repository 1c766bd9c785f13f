package screens

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-quadgen/config"
	"ebiten-quadgen/generation"
	"ebiten-quadgen/systems"
)

type stubScreen struct {
	updates int
	err     error
	w, h    int
}

func (s *stubScreen) Update() error {
	s.updates++
	return s.err
}

func (s *stubScreen) Draw(screen *ebiten.Image) {}

func (s *stubScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.w, s.h
}

func TestScreenStack_PushPopPeek(t *testing.T) {
	stack := NewScreenStack()
	if stack.Peek() != nil || stack.Pop() != nil {
		t.Fatal("empty stack should return nil")
	}

	a := &stubScreen{w: 1, h: 1}
	b := &stubScreen{w: 2, h: 2}
	stack.Push(a)
	stack.Push(b)

	if stack.Len() != 2 || stack.Peek() != b {
		t.Fatalf("expected b on top of 2 screens, got len %d", stack.Len())
	}
	if w, h := stack.Layout(100, 100); w != 2 || h != 2 {
		t.Errorf("layout should come from the top screen, got %dx%d", w, h)
	}
	if stack.Pop() != b || stack.Peek() != a {
		t.Fatal("pop should expose a")
	}
}

func TestScreenStack_UpdateOnlyTop(t *testing.T) {
	stack := NewScreenStack()
	bottom := &stubScreen{}
	top := &stubScreen{}
	stack.Push(bottom)
	stack.Push(top)

	if err := stack.Update(); err != nil {
		t.Fatal(err)
	}
	if top.updates != 1 || bottom.updates != 0 {
		t.Errorf("expected only the top screen updated, got top=%d bottom=%d", top.updates, bottom.updates)
	}
}

func TestScreenStack_CloseSignalPops(t *testing.T) {
	stack := NewScreenStack()
	base := &stubScreen{}
	closing := &stubScreen{err: ErrCloseScreen}
	stack.Push(base)
	stack.Push(closing)

	if err := stack.Update(); err != nil {
		t.Fatalf("close signal should be consumed, got %v", err)
	}
	if stack.Peek() != base {
		t.Fatal("closing screen should have been popped")
	}

	base.err = ErrQuit
	if err := stack.Update(); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit to propagate, got %v", err)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		offset, total, maxLines int
		start, end              int
	}{
		{0, 5, 10, 0, 5},
		{0, 30, 10, 0, 10},
		{25, 30, 10, 20, 30},
		{3, 30, 10, 3, 13},
		{0, 0, 10, 0, 0},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.offset, tt.total, tt.maxLines)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.offset, tt.total, tt.maxLines, start, end, tt.start, tt.end)
		}
	}
}

func TestMessageLine_NewestFirstLineOnly(t *testing.T) {
	ml := systems.NewMessageLog()
	if got := messageLine(ml); got != "" {
		t.Errorf("expected empty line for empty log, got %q", got)
	}

	ml.Add("Seed 4")
	ml.Add("panic in NextDraw: boom\ngoroutine 1 [running]:")
	if got := messageLine(ml); got != "panic in NextDraw: boom" {
		t.Errorf("unexpected message line %q", got)
	}
}

func TestMapScreen_StatusLine(t *testing.T) {
	opts := config.DefaultGeneration()
	opts.TargetRoomCount = 3
	gen, err := generation.NewGenerator(opts, rand.New(rand.NewSource(3)), nil)
	if err != nil {
		t.Fatal(err)
	}
	// No painters: the canvas image is never created
	stepper := systems.NewStepperSystem(gen, 1)
	audio := &systems.AudioSystem{}
	s := NewMapScreen(stepper, systems.NewDrawSystem(opts.WorldWidth, opts.WorldHeight), audio, 393, 427)

	if err := s.Regenerate(); err != nil {
		t.Fatal(err)
	}
	line := s.statusLine()
	if !strings.HasPrefix(line, "pass 1  rooms 0  left 3  drawing") || !strings.Contains(line, "sound") {
		t.Errorf("unexpected status %q", line)
	}

	stepper.Flush()
	audio.ToggleMute()
	line = s.statusLine()
	if !strings.Contains(line, "rooms 3  left 0  done") || !strings.Contains(line, "muted") {
		t.Errorf("unexpected status after flush %q", line)
	}
}
