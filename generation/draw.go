package generation

// BackgroundPadding is added to each world dimension for the background rectangle
const BackgroundPadding = 3

// BackgroundSize returns the background rectangle size in cells for a world
func BackgroundSize(worldWidth, worldHeight int) (width, height int) {
	return worldWidth + BackgroundPadding, worldHeight + BackgroundPadding
}

// DrawColor is the paint color of a draw instruction
type DrawColor uint8

const (
	Black DrawColor = 0
	White DrawColor = 1
)

// String returns the color name
func (c DrawColor) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// DrawInstruction describes one rectangle paint operation
type DrawInstruction struct {
	Color   DrawColor `json:"color"`
	OriginX int       `json:"originX"`
	OriginY int       `json:"originY"`
	H       int       `json:"h"`
	W       int       `json:"w"`
}

// EndOfRooms is returned by NextDraw once every room has been handed out
var EndOfRooms = DrawInstruction{Color: White}

// IsEnd reports whether the instruction has zero area, i.e. marks the end of the room sequence
func (d DrawInstruction) IsEnd() bool {
	return d.W == 0 || d.H == 0
}

func roomInstruction(r Room) DrawInstruction {
	return DrawInstruction{
		Color:   White,
		OriginX: r.X,
		OriginY: r.Y,
		H:       r.Height,
		W:       r.Width,
	}
}
