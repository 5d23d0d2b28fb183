package contrast

// ITU-R BT.709 luma weights.
const (
	weightRed   = 0.2126
	weightGreen = 0.7152
	weightBlue  = 0.0722
)

// Luminance returns the WCAG relative luminance of c in [0,1].
//
// It panics if the maximum of T is not exactly representable in F, see
// CheckChannel.
func Luminance[F Float, T Channel](c Color[T]) F {
	return luminance(c, channelScale[F, T]())
}

func luminance[F Float, T Channel](c Color[T], scale F) F {
	// explicit conversions keep each product rounded (no FMA)
	r := F(F(weightRed) * linearChannel(c.R, scale))
	g := F(F(weightGreen) * linearChannel(c.G, scale))
	b := F(F(weightBlue) * linearChannel(c.B, scale))
	return r + g + b
}
