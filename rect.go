package main

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}
