// Package contrast computes the relative luminance of sRGB colors and the
// WCAG 2 contrast ratio between two of them.
//
// Channel type and float precision are type parameters:
//
//	white := contrast.White[uint8]()
//	black := contrast.Black[uint8]()
//	ratio := contrast.Contrast[float32](white, black) // ~21
//
// Every function is pure and safe for concurrent use.
package contrast
