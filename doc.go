// Package csscolors provides simple color value types that render to
// CSS color-function notation.
//
// # Overview
//
// csscolors defines two small value types: RGB, an opaque color with
// three 8-bit channels, and RGBA, the same channels plus a
// floating-point alpha fraction. Both render themselves as valid CSS
// rgb()/rgba() color values and convert to one another. There is no
// parsing, no color-space math, and no validation beyond what the
// channel types themselves enforce.
//
// # Quick Start
//
//	import "github.com/csscolors/csscolors"
//
//	salmon := csscolors.NewRGB(250, 128, 114)
//	salmon.ToCSS() // "rgb(250, 128, 114)"
//
//	lightSalmon := csscolors.NewRGBA(250, 128, 114, 0.5)
//	lightSalmon.ToCSS() // "rgba(250, 128, 114, 0.5)"
//
//	// Conversions between the two forms:
//	salmon.ToRGBA()     // alpha defaults to 1.0
//	lightSalmon.ToRGB() // alpha is discarded
//
// # Value Semantics
//
// RGB and RGBA are plain structs: copy them freely, compare them with
// ==, use them as map keys. Nothing mutates in place, so values are
// safe to share across goroutines without synchronization.
//
// Both types also satisfy the standard library color.Color interface,
// so they can be passed anywhere an image/color value is expected;
// FromColor adapts in the other direction.
package csscolors
