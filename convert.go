package contrast

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrUnrepresentableMax reports a channel type whose maximum value has no
// exact representation in the requested float type.
var ErrUnrepresentableMax = errors.New("channel max value not representable in float type")

const (
	float32Mantissa = 24
	float64Mantissa = 53
)

func maxValue[T Channel]() T {
	return ^T(0)
}

// mantissaBits returns the significand width of F, including the implicit bit.
func mantissaBits[F Float]() int {
	v := uint64(1) << float32Mantissa
	if F(v+1) == F(v) {
		return float32Mantissa
	}
	return float64Mantissa
}

// CheckChannel reports whether colors with channel type T can be evaluated
// at precision F. Luminance, Contrast and the helpers built on them panic
// with the same error when it is non-nil.
func CheckChannel[T Channel, F Float]() error {
	m := uint64(maxValue[T]())
	significant := bits.Len64(m) - bits.TrailingZeros64(m)
	if significant > mantissaBits[F]() {
		return fmt.Errorf("%w: %T max %d needs %d bits, %T has %d",
			ErrUnrepresentableMax, T(0), m, significant, F(0), mantissaBits[F]())
	}
	return nil
}

// channelScale converts max(T) to F, panicking on a lossy conversion.
func channelScale[F Float, T Channel]() F {
	if err := CheckChannel[T, F](); err != nil {
		panic(err)
	}
	return F(maxValue[T]())
}
