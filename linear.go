package contrast

import "math"

// sRGB transfer curve as used by WCAG 2.
const (
	linearThreshold = 0.03928
	linearSlope     = 12.92
	gammaOffset     = 0.055
	gammaScale      = 1.055
	gammaExponent   = 2.4
)

// linearChannel maps a gamma-encoded channel value to linear light in [0,1].
func linearChannel[F Float, T Channel](v T, scale F) F {
	relative := F(v) / scale
	if relative < F(linearThreshold) {
		return relative / F(linearSlope)
	}
	base := (relative + F(gammaOffset)) / F(gammaScale)
	return F(math.Pow(float64(base), gammaExponent))
}
