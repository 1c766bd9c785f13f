package systems

import (
	"ebiten-quadgen/ecs"
	"ebiten-quadgen/generation"
)

// Event type constants
const (
	EventPassStarted  ecs.EventType = "pass_started"
	EventRoomDrawn    ecs.EventType = "room_drawn"
	EventPassFinished ecs.EventType = "pass_finished"
)

// PassStartedEvent is emitted after a generation pass paints its background
type PassStartedEvent struct {
	Background generation.DrawInstruction
	Rooms      int // Rooms waiting to be drawn
}

// Type returns the event type
func (e PassStartedEvent) Type() ecs.EventType {
	return EventPassStarted
}

// RoomDrawnEvent is emitted for every room handed to the painters
type RoomDrawnEvent struct {
	Room  generation.DrawInstruction
	Index int // 1-based position within the pass
}

// Type returns the event type
func (e RoomDrawnEvent) Type() ecs.EventType {
	return EventRoomDrawn
}

// PassFinishedEvent is emitted once the end marker is reached
type PassFinishedEvent struct {
	Drawn int
}

// Type returns the event type
func (e PassFinishedEvent) Type() ecs.EventType {
	return EventPassFinished
}
