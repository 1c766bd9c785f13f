package systems

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"strings"
	"testing"

	"ebiten-quadgen/config"
	"ebiten-quadgen/ecs"
	"ebiten-quadgen/generation"
)

type recordingPainter struct {
	got []generation.DrawInstruction
}

func (r *recordingPainter) Paint(d generation.DrawInstruction) {
	r.got = append(r.got, d)
}

func newGenerator(t *testing.T, rooms int) *generation.Generator {
	t.Helper()
	opts := config.DefaultGeneration()
	opts.TargetRoomCount = rooms
	g, err := generation.NewGenerator(opts, rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMessageLog_TruncatesAndOrders(t *testing.T) {
	ml := NewMessageLog()
	ml.MaxMessages = 3

	for _, m := range []string{"a", "b", "c", "d"} {
		ml.Add(m)
	}
	if ml.Len() != 3 {
		t.Fatalf("expected 3 messages, got %d", ml.Len())
	}

	recent := ml.RecentMessages(10)
	want := []string{"d", "c", "b"}
	for i := range want {
		if recent[i] != want[i] {
			t.Errorf("recent[%d] = %q, want %q", i, recent[i], want[i])
		}
	}
}

func TestMessageLog_Echo(t *testing.T) {
	var buf bytes.Buffer
	ml := NewMessageLog()
	ml.SetEcho(&buf)
	ml.Addf("Generated %d rooms", 8)
	ml.SetEcho(nil)
	ml.Add("silent")

	if buf.String() != "Generated 8 rooms\n" {
		t.Errorf("unexpected echo output %q", buf.String())
	}
}

func TestMessageLog_FeedsDebugLog(t *testing.T) {
	ml := NewMessageLog()
	ml.Add("Quadrant pool exhausted: placed 16 of 40 rooms")

	msgs := GetDebugLog().Snapshot()
	if len(msgs) == 0 {
		t.Fatal("expected message mirrored to the debug log")
	}
	last := msgs[len(msgs)-1]
	if last.Type != MessageTypeAlert {
		t.Errorf("expected alert type, got %v", last.Type)
	}
}

func TestClassifyMessage(t *testing.T) {
	tests := []struct {
		text string
		want MessageType
	}{
		{"Generated 8 rooms from 16 quadrants", MessageTypeGeneration},
		{"Quadrant pool exhausted: placed 1 of 2 rooms", MessageTypeAlert},
		{"Error: invalid random range", MessageTypeError},
		{"panic in NextDraw: boom", MessageTypeError},
		{"No rooms left to draw", MessageTypeNormal},
	}
	for _, tt := range tests {
		if got := ClassifyMessage(tt.text); got != tt.want {
			t.Errorf("ClassifyMessage(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
	if (ColoredMessage{Type: MessageTypeError}).GetColor() == (ColoredMessage{}).GetColor() {
		t.Error("error messages should not share the default color")
	}
}

func TestPaintRect(t *testing.T) {
	tests := []struct {
		name       string
		d          generation.DrawInstruction
		x, y, w, h float32
		ok         bool
	}{
		{"background", generation.DrawInstruction{Color: generation.Black, H: 131, W: 131}, 0, 0, 393, 393, true},
		{"room shrinks one cell", generation.DrawInstruction{Color: generation.White, OriginX: 10, OriginY: 20, H: 9, W: 12}, 30, 60, 33, 24, true},
		{"end marker", generation.EndOfRooms, 0, 0, 0, 0, false},
		{"single cell room", generation.DrawInstruction{Color: generation.White, OriginX: 1, OriginY: 1, H: 1, W: 1}, 3, 3, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h, ok := PaintRect(tt.d, config.CellSize)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("rect = (%v, %v, %v, %v), want (%v, %v, %v, %v)", x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestStepper_PacesRooms(t *testing.T) {
	rec := &recordingPainter{}
	s := NewStepperSystem(newGenerator(t, 3), 4, rec)

	if !s.Done() {
		t.Fatal("stepper should be idle before Start")
	}
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if len(rec.got) != 1 || rec.got[0].Color != generation.Black {
		t.Fatalf("expected background first, got %+v", rec.got)
	}

	for i := 0; i < 3; i++ {
		s.Update()
	}
	if len(rec.got) != 1 {
		t.Fatalf("room painted before interval elapsed: %d instructions", len(rec.got))
	}
	s.Update()
	if len(rec.got) != 2 || s.Drawn() != 1 {
		t.Fatalf("expected one room after interval, got %d instructions", len(rec.got))
	}

	for i := 0; i < 40; i++ {
		s.Update()
	}
	if !s.Done() {
		t.Fatal("stepper should finish after the end marker")
	}
	if s.Drawn() != 3 || len(rec.got) != 4 {
		t.Fatalf("expected background + 3 rooms, got %d rooms and %d instructions", s.Drawn(), len(rec.got))
	}
	for _, d := range rec.got {
		if d.IsEnd() {
			t.Fatal("end marker should not reach painters")
		}
	}
}

func TestStepper_FlushAndRestart(t *testing.T) {
	rec := &recordingPainter{}
	s := NewStepperSystem(newGenerator(t, 5), DefaultStepInterval, rec)

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Flush()
	if !s.Done() || s.Drawn() != 5 || s.Remaining() != 0 {
		t.Fatalf("flush should drain all rooms: done=%v drawn=%d remaining=%d", s.Done(), s.Drawn(), s.Remaining())
	}

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.Done() || s.Drawn() != 0 || s.Remaining() != 5 {
		t.Fatalf("restart should begin a fresh pass: done=%v drawn=%d remaining=%d", s.Done(), s.Drawn(), s.Remaining())
	}
}

func TestStepper_EmitsPassEvents(t *testing.T) {
	s := NewStepperSystem(newGenerator(t, 4), 1)

	var started, finished int
	var indexes []int
	s.Events().Subscribe(EventPassStarted, func(e ecs.Event) {
		started = e.(PassStartedEvent).Rooms
	})
	s.Events().Subscribe(EventRoomDrawn, func(e ecs.Event) {
		indexes = append(indexes, e.(RoomDrawnEvent).Index)
	})
	s.Events().Subscribe(EventPassFinished, func(e ecs.Event) {
		finished = e.(PassFinishedEvent).Drawn
	})

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	s.Flush()

	if started != 4 || finished != 4 {
		t.Errorf("expected start and finish to report 4 rooms, got %d and %d", started, finished)
	}
	if len(indexes) != 4 || indexes[0] != 1 || indexes[3] != 4 {
		t.Errorf("unexpected room indexes %v", indexes)
	}
}

func TestDrawSystem_SizeIncludesPadding(t *testing.T) {
	w, h := NewDrawSystem(128, 64).Size()
	if w != 131*config.CellSize || h != 67*config.CellSize {
		t.Errorf("expected canvas %dx%d, got %dx%d", 131*config.CellSize, 67*config.CellSize, w, h)
	}
}

func TestSynthBlip(t *testing.T) {
	buf := SynthBlip(44100, 880, 0.06)
	frames := int(44100 * 0.06)
	if len(buf) != frames*4 {
		t.Fatalf("expected %d bytes, got %d", frames*4, len(buf))
	}

	left := int16(binary.LittleEndian.Uint16(buf[0:]))
	right := int16(binary.LittleEndian.Uint16(buf[2:]))
	if left == 0 || left != right {
		t.Errorf("expected equal non-zero stereo samples, got %d/%d", left, right)
	}

	tail := int16(binary.LittleEndian.Uint16(buf[len(buf)-4:]))
	if tail > 200 || tail < -200 {
		t.Errorf("expected fade out near zero, got %d", tail)
	}
}

func TestFillColor(t *testing.T) {
	r, g, b, _ := FillColor(generation.Black).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Error("black should fill black")
	}
	r, _, _, _ = FillColor(generation.White).RGBA()
	if r == 0 {
		t.Error("white should fill white")
	}
	if !strings.Contains(generation.White.String(), "white") {
		t.Error("unexpected color name")
	}
}
