package contrast

// Minimum contrast ratios from WCAG 2.1 success criteria 1.4.3, 1.4.6 and
// 1.4.11. Large text is 18pt, or 14pt bold.
const (
	RatioAA       = 4.5
	RatioAALarge  = 3.0
	RatioAAA      = 7.0
	RatioAAALarge = 4.5
	RatioNonText  = 3.0
)

// Meets reports whether fg on bg reaches minRatio.
func Meets[F Float, T Channel](fg, bg Color[T], minRatio F) bool {
	return Contrast[F](fg, bg) >= minRatio
}

// AutoTextColor picks black or white text for bg. Black is preferred when it
// alone passes AA or when it contrasts at least as much as white.
func AutoTextColor[F Float, T Channel](bg Color[T]) Color[T] {
	black, white := Black[T](), White[T]()
	crBlack := Contrast[F](black, bg)
	crWhite := Contrast[F](white, bg)
	if crBlack >= F(RatioAA) || crBlack >= crWhite {
		return black
	}
	return white
}

// EnsureContrast returns fg when it reaches minRatio against bg and the
// AutoTextColor of bg otherwise. A non-positive minRatio means RatioAA.
// The fallback is returned even if it misses minRatio too.
func EnsureContrast[F Float, T Channel](fg, bg Color[T], minRatio F) Color[T] {
	if minRatio <= 0 {
		minRatio = RatioAA
	}
	if Meets(fg, bg, minRatio) {
		return fg
	}
	return AutoTextColor[F](bg)
}
