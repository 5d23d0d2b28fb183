package contrast

import "golang.org/x/exp/constraints"

// Channel is the set of channel representations a Color can use. The
// maximum value of the type is the full-intensity channel value.
type Channel interface {
	constraints.Unsigned
}

// Float is the working precision of luminance and contrast results.
type Float interface {
	constraints.Float
}

// Color is an sRGB color with three channels of the same type.
type Color[T Channel] struct {
	R T
	G T
	B T
}

func RGB[T Channel](r, g, b T) Color[T] {
	return Color[T]{R: r, G: g, B: b}
}

func Black[T Channel]() Color[T] {
	return Color[T]{}
}

func White[T Channel]() Color[T] {
	m := maxValue[T]()
	return Color[T]{R: m, G: m, B: m}
}
