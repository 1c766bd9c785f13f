package systems

import (
	"ebiten-quadgen/ecs"
	"ebiten-quadgen/generation"
)

// DefaultStepInterval paces room reveals at 400ms with 60 ticks per second
const DefaultStepInterval = 24

// StepperSystem drives the pull protocol: one Initialize, then one NextDraw
// every interval ticks until the generator reports the end of its rooms.
type StepperSystem struct {
	gen      *generation.Generator
	painters []Painter
	events   *ecs.EventManager
	interval int
	ticks    int
	drawn    int
	done     bool
}

// NewStepperSystem creates a stepper feeding every painter
func NewStepperSystem(gen *generation.Generator, interval int, painters ...Painter) *StepperSystem {
	if interval < 1 {
		interval = 1
	}
	return &StepperSystem{
		gen:      gen,
		painters: painters,
		events:   ecs.NewEventManager(),
		interval: interval,
		done:     true,
	}
}

// Start runs a generation pass and paints its background
func (s *StepperSystem) Start() error {
	bg, err := s.gen.Initialize()
	if err != nil {
		s.done = true
		return err
	}

	s.ticks = 0
	s.drawn = 0
	s.done = false
	s.paint(bg)
	s.events.Emit(PassStartedEvent{Background: bg, Rooms: s.gen.Remaining()})
	return nil
}

// Events returns the manager carrying pass and room events
func (s *StepperSystem) Events() *ecs.EventManager {
	return s.events
}

// Update advances one tick and pulls the next room when the interval elapses
func (s *StepperSystem) Update() {
	if s.done {
		return
	}
	s.ticks++
	if s.ticks < s.interval {
		return
	}
	s.ticks = 0
	s.step()
}

// Flush pulls every remaining room at once
func (s *StepperSystem) Flush() {
	for !s.done {
		s.step()
	}
}

func (s *StepperSystem) step() {
	d := s.gen.NextDraw()
	if d.IsEnd() {
		s.done = true
		s.events.Emit(PassFinishedEvent{Drawn: s.drawn})
		return
	}
	s.drawn++
	s.paint(d)
	s.events.Emit(RoomDrawnEvent{Room: d, Index: s.drawn})
}

func (s *StepperSystem) paint(d generation.DrawInstruction) {
	for _, p := range s.painters {
		p.Paint(d)
	}
}

// Done reports whether the end marker has been reached
func (s *StepperSystem) Done() bool {
	return s.done
}

// Drawn returns the number of rooms painted in the current pass
func (s *StepperSystem) Drawn() int {
	return s.drawn
}

// Remaining returns the number of rooms not yet pulled
func (s *StepperSystem) Remaining() int {
	return s.gen.Remaining()
}
