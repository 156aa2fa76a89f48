package csscolors

import (
	"fmt"
	"strconv"
)

// RGB represents how much red, green, and blue should be added to
// create a color. Each channel is an 8-bit value in [0, 255].
//
// RGB is a plain value type: copy it freely and compare with ==.
// See the CSS Color spec for the rgb() notation it renders to:
// https://www.w3.org/TR/css-color-3/#rgb-color
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB color with an alpha specification. The alpha channel
// is a fraction, nominally in [0.0, 1.0]; values outside that range
// are stored and rendered as-is.
//
// Like RGB, RGBA is a plain value type with == equality. Alpha
// compares exactly, with no tolerance.
type RGBA struct {
	R, G, B uint8
	A       float32
}

// NewRGB builds an opaque color from three 8-bit channel values.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// NewRGBA builds a translucent color from three 8-bit channel values
// and an alpha fraction. The alpha is not range-checked.
func NewRGBA(r, g, b uint8, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// String renders the color in CSS rgb() function notation,
// e.g. "rgb(250, 128, 114)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ToCSS renders the color as a valid CSS color value.
//
//	salmon := csscolors.RGB{R: 250, G: 128, B: 114}
//	salmon.ToCSS() // "rgb(250, 128, 114)"
func (c RGB) ToCSS() string {
	return c.String()
}

// ToRGBA converts the color to an RGBA with an alpha of 1.0.
func (c RGB) ToRGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 1.0}
}

// String renders the color in CSS rgba() function notation,
// e.g. "rgba(250, 128, 114, 0.5)". The alpha component uses the
// shortest decimal form that round-trips to the stored float32, so an
// alpha of 1.0 renders as "1".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)",
		c.R, c.G, c.B, strconv.FormatFloat(float64(c.A), 'g', -1, 32))
}

// ToCSS renders the color as a valid CSS color value.
//
//	salmon := csscolors.RGBA{R: 250, G: 128, B: 114, A: 1.0}
//	salmon.ToCSS() // "rgba(250, 128, 114, 1)"
func (c RGBA) ToCSS() string {
	return c.String()
}

// ToRGB converts the color to an RGB, discarding the alpha channel.
func (c RGBA) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}
