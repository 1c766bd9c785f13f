package config

// Screen layout configuration
const (
	// CellSize is the number of pixels painted per map cell
	CellSize = 3

	// StatusBarHeight is the pixel height of the message and status lines under the map
	StatusBarHeight = 34

	// WindowScale enlarges the window relative to the logical canvas
	WindowScale = 2
)

// CanvasSize returns the logical canvas size in pixels for a background of the given size in cells
func CanvasSize(cellsWide, cellsHigh int) (width, height int) {
	return cellsWide * CellSize, cellsHigh * CellSize
}

// GetScreenDimensions returns the full logical screen size (canvas plus status bar)
func GetScreenDimensions(cellsWide, cellsHigh int) (width, height int) {
	w, h := CanvasSize(cellsWide, cellsHigh)
	return w, h + StatusBarHeight
}

// GetWindowSize returns the recommended window size
func GetWindowSize(cellsWide, cellsHigh int) (width, height int) {
	w, h := GetScreenDimensions(cellsWide, cellsHigh)
	return w * WindowScale, h * WindowScale
}
