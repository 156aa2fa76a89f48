package csscolors

import "image/color"

// RGBA implements the color.Color interface: alpha-premultiplied
// channels widened to 16 bits by byte doubling.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// RGBA implements the color.Color interface. The alpha fraction is
// clamped to [0, 1] for premultiplication only; the stored value is
// not modified.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	f := c.A
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	r = uint32(float32(r) * f)
	g = uint32(float32(g) * f)
	b = uint32(float32(b) * f)
	a = uint32(f * 0xffff)
	return
}

// FromColor adapts any standard library color into an RGBA value,
// un-premultiplying the channels. A fully transparent input maps to
// zero channels with an alpha of 0.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: uint8((uint64(r)*255 + uint64(a)/2) / uint64(a)),
		G: uint8((uint64(g)*255 + uint64(a)/2) / uint64(a)),
		B: uint8((uint64(b)*255 + uint64(a)/2) / uint64(a)),
		A: float32(a) / 0xffff,
	}
}
