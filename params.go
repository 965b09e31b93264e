package ell2

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("process", "ell2")

// CurveParams describes the Montgomery curve v^2 = u^3 + A*u^2 + B*u over a
// prime field together with the Elligator 2 non-residue Z.
//
// A CurveParams is immutable once built and may be shared freely between
// goroutines. Elements returned by its accessors are shared with it and must
// not be modified.
type CurveParams[E any] struct {
	f Field[E]

	q   *big.Int
	exp *big.Int // (q-1)/2

	a, b, z E

	halfA    E // A/2
	minusOne E
}

// NewCurveParams builds the parameter set for the curve
// v^2 = u^3 + a*u^2 + b*u over f with non-residue z.
//
// The characteristic is taken from f, so it always matches the field type.
// The Elligator 2 preconditions are checked: q is an odd prime, a and b are
// nonzero, and both z and a^2 - 4b are non-residues. Any failure is reported
// as an error wrapping ErrInvalidParams.
func NewCurveParams[E any](f Field[E], a, b, z E) (*CurveParams[E], error) {
	q := f.Modulus()
	if q.Sign() <= 0 || q.Bit(0) == 0 || !q.ProbablyPrime(32) {
		err := errors.Wrapf(ErrInvalidParams, "modulus %v is not an odd prime", q)
		log.WithError(err).Debug("curve parameters rejected")
		return nil, err
	}

	p := newCurveParams(f, a, b, z)
	if err := p.validate(); err != nil {
		log.WithError(err).Debug("curve parameters rejected")
		return nil, err
	}

	log.WithField("modulus_bits", q.BitLen()).Debug("curve parameters built")
	return p, nil
}

// MustCurveParams is like NewCurveParams but panics on invalid parameters.
// It is meant for package level curve presets.
func MustCurveParams[E any](f Field[E], a, b, z E) *CurveParams[E] {
	p, err := NewCurveParams(f, a, b, z)
	if err != nil {
		panic(err)
	}
	return p
}

// newCurveParams derives the constants without checking any precondition.
// q must be odd.
func newCurveParams[E any](f Field[E], a, b, z E) *CurveParams[E] {
	q := f.Modulus()
	exp := new(big.Int).Sub(q, big.NewInt(1))
	exp.Rsh(exp, 1)

	two := f.FromUint64(2)
	return &CurveParams[E]{
		f:        f,
		q:        q,
		exp:      exp,
		a:        a,
		b:        b,
		z:        z,
		halfA:    f.Mul(a, mustInvert(f, "curve params", two)),
		minusOne: f.Neg(f.One()),
	}
}

func (p *CurveParams[E]) validate() error {
	f := p.f
	if f.IsZero(p.a) == 1 {
		return errors.Wrap(ErrInvalidParams, "A is zero")
	}
	if f.IsZero(p.b) == 1 {
		return errors.Wrap(ErrInvalidParams, "B is zero")
	}
	if c := Classify(p, p.z); c != NonResidue {
		return errors.Wrapf(ErrInvalidParams, "Z is %v, want a non-residue", c)
	}
	// A^2 - 4B must be a non-residue, otherwise the cubic has further
	// roots and the map loses its guarantees.
	disc := f.Sub(f.Square(p.a), f.Mul(f.FromUint64(4), p.b))
	if c := Classify(p, disc); c != NonResidue {
		return errors.Wrapf(ErrInvalidParams, "A^2-4B is %v, want a non-residue", c)
	}
	return nil
}

// Field returns the field the curve is defined over.
func (p *CurveParams[E]) Field() Field[E] { return p.f }

// Modulus returns a copy of the field characteristic q.
func (p *CurveParams[E]) Modulus() *big.Int { return new(big.Int).Set(p.q) }

// A returns the u^2 coefficient.
func (p *CurveParams[E]) A() E { return p.a }

// B returns the u coefficient.
func (p *CurveParams[E]) B() E { return p.b }

// Z returns the non-residue used by the map.
func (p *CurveParams[E]) Z() E { return p.z }

// rhs evaluates u^3 + A*u^2 + B*u as u*((u + A)*u + B).
func (p *CurveParams[E]) rhs(u E) E {
	f := p.f
	t := f.Mul(f.Add(u, p.a), u)
	return f.Mul(f.Add(t, p.b), u)
}

// OnCurve reports whether v^2 = u^3 + A*u^2 + B*u.
func (p *CurveParams[E]) OnCurve(u, v E) bool {
	return p.f.Equal(p.f.Square(v), p.rhs(u)) == 1
}
