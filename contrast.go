package contrast

// ambientOffset is the flare term WCAG adds to both luminances.
const ambientOffset = 0.05

// Contrast returns the WCAG 2 contrast ratio between a and b, in [1,21].
// The result does not depend on argument order.
//
// Both colors share the channel type T; convert one of them first when
// comparing colors of different depths.
func Contrast[F Float, T Channel](a, b Color[T]) F {
	scale := channelScale[F, T]()
	return ratio(luminance(a, scale), luminance(b, scale))
}

func ratio[F Float](la, lb F) F {
	la += F(ambientOffset)
	lb += F(ambientOffset)
	if la > lb {
		return la / lb
	}
	return lb / la
}
