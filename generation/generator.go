package generation

import (
	"fmt"
	"runtime/debug"

	"ebiten-quadgen/config"
)

// Generator owns one session's room list and hands rooms out one at a time.
// It is not safe for concurrent use.
type Generator struct {
	stats      PartitionStats
	rng        Uniform01
	rooms      []Room
	logMessage func(string) // Function for logging messages
}

// NewGenerator creates an empty generator.
// Every public operation reports panics to logFunc before re-panicking.
func NewGenerator(opts config.Generation, rng Uniform01, logFunc func(string)) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("generator needs an entropy source")
	}
	if logFunc == nil {
		logFunc = func(string) {}
	}

	return &Generator{
		stats:      NewPartitionStats(opts),
		rng:        rng,
		logMessage: logFunc,
	}, nil
}

// Initialize runs one generation pass, replacing any rooms left from an earlier pass,
// and returns the background instruction covering the whole world.
// Fewer rooms than requested are placed when the quadrant pool runs out.
func (g *Generator) Initialize() (DrawInstruction, error) {
	defer g.reportPanic("Initialize")

	g.rooms = nil

	quads := g.stats.ComputeQuadrants()
	leafCount := len(quads)
	rooms := make([]Room, 0, min(g.stats.NumRooms, leafCount))

	for len(rooms) < g.stats.NumRooms {
		if len(quads) == 0 {
			g.logMessage(fmt.Sprintf("Quadrant pool exhausted: placed %d of %d rooms", len(rooms), g.stats.NumRooms))
			break
		}

		// Pick without replacement; order of the remaining pool is not kept
		i, err := RandomRange(g.rng, 0, len(quads))
		if err != nil {
			g.logMessage("Error: " + err.Error())
			return DrawInstruction{}, err
		}
		q := quads[i]
		last := len(quads) - 1
		quads[i] = quads[last]
		quads = quads[:last]

		room, err := q.GenerateRoom(g.stats, g.rng)
		if err != nil {
			g.logMessage("Error: " + err.Error())
			return DrawInstruction{}, err
		}
		rooms = append(rooms, room)
	}

	g.rooms = rooms
	g.logMessage(fmt.Sprintf("Generated %d rooms from %d quadrants", len(rooms), leafCount))

	w, h := BackgroundSize(g.stats.MapW, g.stats.MapH)
	return DrawInstruction{
		Color:   Black,
		OriginX: 0,
		OriginY: 0,
		H:       h,
		W:       w,
	}, nil
}

// NextDraw removes one room and returns it as a white instruction.
// Once the list is empty it returns EndOfRooms on every call.
func (g *Generator) NextDraw() DrawInstruction {
	defer g.reportPanic("NextDraw")

	if len(g.rooms) == 0 {
		g.logMessage("No rooms left to draw")
		return EndOfRooms
	}

	last := len(g.rooms) - 1
	room := g.rooms[last]
	g.rooms = g.rooms[:last]
	g.logMessage(fmt.Sprintf("Room %dx%d at (%d,%d), %d left", room.Width, room.Height, room.X, room.Y, last))

	return roomInstruction(room)
}

// Remaining returns the number of rooms still waiting to be drawn
func (g *Generator) Remaining() int {
	return len(g.rooms)
}

// Rooms returns a copy of the rooms waiting to be drawn
func (g *Generator) Rooms() []Room {
	out := make([]Room, len(g.rooms))
	copy(out, g.rooms)
	return out
}

func (g *Generator) reportPanic(op string) {
	if r := recover(); r != nil {
		g.logMessage(fmt.Sprintf("panic in %s: %v\n%s", op, r, debug.Stack()))
		panic(r)
	}
}
