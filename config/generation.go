package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalidConfig is returned when generation options break their constraints
var ErrInvalidConfig = errors.New("invalid generation config")

// Generation holds the caller-supplied map generation parameters
type Generation struct {
	WorldWidth      int     `json:"worldWidth"`      // Map width in cells
	WorldHeight     int     `json:"worldHeight"`     // Map height in cells
	MinRoomDim      int     `json:"minRoomDim"`      // Smallest room side
	MaxRoomDim      int     `json:"maxRoomDim"`      // Largest room side, also the split threshold
	TargetRoomCount int     `json:"targetRoomCount"` // Rooms to place per pass
	MaxAspectRatio  float64 `json:"maxAspectRatio"`  // Longest/shortest room side, 0 = unlimited
	Seed            int64   `json:"seed"`            // 0 picks a time based seed
}

// DefaultGeneration returns the stock 128x128 map with eight rooms
func DefaultGeneration() Generation {
	return Generation{
		WorldWidth:      128,
		WorldHeight:     128,
		MinRoomDim:      9,
		MaxRoomDim:      31,
		TargetRoomCount: 8,
	}
}

// Validate checks the option constraints
func (g Generation) Validate() error {
	if g.WorldWidth <= 0 || g.WorldHeight <= 0 {
		return fmt.Errorf("%w: world size %dx%d must be positive", ErrInvalidConfig, g.WorldWidth, g.WorldHeight)
	}
	if g.MinRoomDim <= 0 || g.MaxRoomDim <= 0 {
		return fmt.Errorf("%w: room dimensions %d..%d must be positive", ErrInvalidConfig, g.MinRoomDim, g.MaxRoomDim)
	}
	if g.MinRoomDim > g.MaxRoomDim {
		return fmt.Errorf("%w: minRoomDim %d exceeds maxRoomDim %d", ErrInvalidConfig, g.MinRoomDim, g.MaxRoomDim)
	}
	if g.MaxRoomDim > min(g.WorldWidth, g.WorldHeight) {
		return fmt.Errorf("%w: maxRoomDim %d does not fit a %dx%d world", ErrInvalidConfig, g.MaxRoomDim, g.WorldWidth, g.WorldHeight)
	}
	if g.TargetRoomCount <= 0 {
		return fmt.Errorf("%w: targetRoomCount %d must be positive", ErrInvalidConfig, g.TargetRoomCount)
	}
	if g.MaxAspectRatio != 0 && g.MaxAspectRatio < 1 {
		return fmt.Errorf("%w: maxAspectRatio %.2f must be 0 or at least 1", ErrInvalidConfig, g.MaxAspectRatio)
	}
	return nil
}

// SeedOrNow returns the configured seed, or the current time when unset
func (g Generation) SeedOrNow() int64 {
	if g.Seed != 0 {
		return g.Seed
	}
	return time.Now().UnixNano()
}

// LoadGeneration reads options from a JSON file.
// Fields missing from the file keep their default values.
func LoadGeneration(path string) (Generation, error) {
	cfg := DefaultGeneration()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read generation config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse generation config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
