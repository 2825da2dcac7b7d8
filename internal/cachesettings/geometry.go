package cachesettings

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  int
	Height int
}

// Geometry is window geometry ready to hand to the window.
type Geometry struct {
	Width     int
	Height    int
	Maximized bool
}

// Sanitize clamps stored window settings. For each dimension the sentinel 0
// yields the default, a value below the minimum yields the minimum, anything
// else is kept. Maximized passes through.
func Sanitize(stored WindowSettings, defaults, minimum Size) Geometry {
	return Geometry{
		Width:     sanitizeDimension(stored.Width, defaults.Width, minimum.Width),
		Height:    sanitizeDimension(stored.Height, defaults.Height, minimum.Height),
		Maximized: stored.Maximized,
	}
}

func sanitizeDimension(stored, def, minimum int) int {
	switch {
	case stored == 0:
		return def
	case stored < minimum:
		return minimum
	default:
		return stored
	}
}
