package ell2

// NewUncheckedCurveParams skips every precondition check. Tests use it to
// reach code paths that well-formed parameters never take.
func NewUncheckedCurveParams[E any](f Field[E], a, b, z E) *CurveParams[E] {
	return newCurveParams(f, a, b, z)
}
