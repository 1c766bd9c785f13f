package generation

import "ebiten-quadgen/config"

// PartitionStats holds the parameters of a single generation pass
type PartitionStats struct {
	MinSize   int
	MaxSize   int
	MapW      int
	MapH      int
	NumRooms  int
	MaxAspect float64 // 0 disables the aspect constraint
}

// NewPartitionStats builds stats from generation options
func NewPartitionStats(opts config.Generation) PartitionStats {
	return PartitionStats{
		MinSize:   opts.MinRoomDim,
		MaxSize:   opts.MaxRoomDim,
		MapW:      opts.WorldWidth,
		MapH:      opts.WorldHeight,
		NumRooms:  opts.TargetRoomCount,
		MaxAspect: opts.MaxAspectRatio,
	}
}

// Root returns the quadrant covering the whole world
func (s PartitionStats) Root() Quadrant {
	return Quadrant{X: 0, Y: 0, Width: s.MapW, Height: s.MapH}
}

// ComputeQuadrants halves the world until no quadrant can be split any further
// and returns those leaves. The result depends only on world size and MaxSize.
func (s PartitionStats) ComputeQuadrants() []Quadrant {
	quads := []Quadrant{s.Root()}
	for {
		next := make([]Quadrant, 0, len(quads)*4)
		for _, q := range quads {
			next = append(next, q.Split(s)...)
		}
		if len(next) == 0 || len(next) == len(quads) {
			return quads
		}
		quads = next
	}
}
