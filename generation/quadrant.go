package generation

import (
	"fmt"
	"math"
)

// Quadrant is one rectangular region of the world produced by recursive halving
type Quadrant struct {
	X, Y, Width, Height int
}

// Room is a rectangle placed inside exactly one leaf quadrant
type Room struct {
	X, Y, Width, Height int
}

// Split returns the four quarters of q in top-left, top-right, bottom-left,
// bottom-right order, or nil once either half would drop below the max room size.
func (q Quadrant) Split(stats PartitionStats) []Quadrant {
	halfW := q.Width / 2
	halfH := q.Height / 2
	if stats.MaxSize > halfW || stats.MaxSize > halfH {
		return nil
	}

	return []Quadrant{
		{X: q.X, Y: q.Y, Width: halfW, Height: halfH},
		{X: q.X + halfW, Y: q.Y, Width: halfW, Height: halfH},
		{X: q.X, Y: q.Y + halfH, Width: halfW, Height: halfH},
		{X: q.X + halfW, Y: q.Y + halfH, Width: halfW, Height: halfH},
	}
}

// Contains reports whether r lies entirely inside q
func (q Quadrant) Contains(r Room) bool {
	return r.X >= q.X && r.Y >= q.Y &&
		r.X+r.Width <= q.X+q.Width &&
		r.Y+r.Height <= q.Y+q.Height
}

// GenerateRoom places a randomly sized room inside q.
// Height follows the vertical axis and width the horizontal one.
func (q Quadrant) GenerateRoom(stats PartitionStats, src Uniform01) (Room, error) {
	// RandomRange never reaches its upper bound unless both bounds match,
	// so MaxSize+1 keeps sides at or below MaxSize.
	h, err := RandomRange(src, stats.MinSize, min(q.Height, stats.MaxSize+1))
	if err != nil {
		return Room{}, fmt.Errorf("room height in %+v: %w", q, err)
	}

	wLo, wHi := stats.MinSize, min(q.Width, stats.MaxSize+1)
	if stats.MaxAspect >= 1 {
		lo := max(wLo, int(math.Ceil(float64(h)/stats.MaxAspect)))
		hi := min(wHi, int(math.Floor(float64(h)*stats.MaxAspect))+1)
		if lo < hi {
			wLo, wHi = lo, hi
		}
	}
	w, err := RandomRange(src, wLo, wHi)
	if err != nil {
		return Room{}, fmt.Errorf("room width in %+v: %w", q, err)
	}

	x, err := RandomRange(src, q.X, q.X+(q.Width-w))
	if err != nil {
		return Room{}, fmt.Errorf("room x in %+v: %w", q, err)
	}
	y, err := RandomRange(src, q.Y, q.Y+(q.Height-h))
	if err != nil {
		return Room{}, fmt.Errorf("room y in %+v: %w", q, err)
	}

	return Room{X: x, Y: y, Width: w, Height: h}, nil
}
