// Package ell2 implements the Elligator 2 direct map from a field element to
// a point on a Montgomery curve v^2 = u^3 + A*u^2 + B*u.
//
// The map is generic over the field implementation. Callers build a
// CurveParams once and then call DirectMap for every representative:
//
//	p := curve25519.Params()
//	u, v := ell2.DirectMap(p, r)
//
// For well-formed parameters the map is total: every field element maps to a
// point on the curve. A failed inversion or square root inside the map is a
// broken invariant and panics with *InvariantError.
package ell2

// candidate returns w = -A / (1 + Z*r^2).
//
// When q = 3 mod 4 the non-residue Z can make 1 + Z*r^2 vanish for
// r^2 = -1/Z. Those two inputs are mapped like r = 0. For q = 1 mod 4 the
// case cannot occur.
func (p *CurveParams[E]) candidate(r E) E {
	f := p.f
	t := f.Mul(p.z, f.Square(r))
	t = f.Select(f.Zero(), t, f.Equal(t, p.minusOne))
	d := mustInvert(f, "direct map", f.Add(f.One(), t))
	return f.Mul(f.Neg(p.a), d)
}

// DirectMap maps r to the affine coordinates (u, v) of a curve point:
//
//	w = -A / (1 + Z*r^2)
//	e = Legendre(w^3 + A*w^2 + B*w)
//	u = e*w - (1 - e)*A/2
//	v = -e * sqrt(u^3 + A*u^2 + B*u)
//
// where sqrt is the root in [0, (q-1)/2]. The classification e is used
// arithmetically, so the control flow does not depend on it.
func DirectMap[E any](p *CurveParams[E], r E) (u, v E) {
	f := p.f
	w := p.candidate(r)
	e := Legendre(p, p.rhs(w))

	u = f.Sub(f.Mul(e, w), f.Mul(f.Sub(f.One(), e), p.halfA))
	y := mustSqrt(f, "direct map", p.rhs(u))
	v = f.Neg(f.Mul(e, y))
	return u, v
}

// DirectMapVartime computes the same point as DirectMap by branching on the
// quadratic character of w^3 + A*w^2 + B*w. Its running time depends on
// which branch is taken; prefer DirectMap for secret inputs.
func DirectMapVartime[E any](p *CurveParams[E], r E) (u, v E) {
	f := p.f
	w := p.candidate(r)
	fw := p.rhs(w)

	switch Classify(p, fw) {
	case Zero:
		return f.Neg(p.halfA), f.Zero()
	case Residue:
		return w, f.Neg(mustSqrt(f, "direct map", fw))
	default:
		u = f.Sub(f.Neg(w), p.a)
		return u, mustSqrt(f, "direct map", p.rhs(u))
	}
}
