package skyline

// Building is an axis-aligned rectangle on the baseline.
// Callers must guarantee Left < Right and Height > 0.
type Building struct {
	Left   float64
	Right  float64
	Height float64
}

// KeyPoint marks the x where the outline changes to Height.
type KeyPoint struct {
	X      float64
	Height float64
}
