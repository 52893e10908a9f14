package gui

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorTransparent = Color{}
)

// premultiplied returns the components scaled by alpha, as ebiten's ColorScale
// expects.
func (c Color) premultiplied() (r, g, b, a float32) {
	a = float32(c.A)
	return float32(c.R) * a, float32(c.G) * a, float32(c.B) * a, a
}
