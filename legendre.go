package ell2

import (
	"github.com/pkg/errors"
)

// QuadraticCharacter classifies a field element by its Legendre symbol.
type QuadraticCharacter int

const (
	Zero QuadraticCharacter = iota
	Residue
	NonResidue
)

func (c QuadraticCharacter) String() string {
	switch c {
	case Zero:
		return "zero"
	case Residue:
		return "residue"
	case NonResidue:
		return "non-residue"
	default:
		return "invalid"
	}
}

var errBadLegendre = errors.New("Legendre symbol outside {-1, 0, 1}")

// Legendre returns x^((q-1)/2), which is exactly 1 for a nonzero square,
// -1 for a non-square and 0 for zero.
//
// The exponent is public, so the square-and-multiply below only branches on
// its bits and never on x.
func Legendre[E any](p *CurveParams[E], x E) E {
	f := p.f
	r := f.One()
	for i := p.exp.BitLen() - 1; i >= 0; i-- {
		r = f.Square(r)
		if p.exp.Bit(i) == 1 {
			r = f.Mul(r, x)
		}
	}
	return r
}

// Classify is Legendre folded into a QuadraticCharacter. It panics with an
// *InvariantError if the symbol is not one of -1, 0, 1, which can only
// happen when q is not prime.
func Classify[E any](p *CurveParams[E], x E) QuadraticCharacter {
	f := p.f
	e := Legendre(p, x)
	switch {
	case f.IsZero(e) == 1:
		return Zero
	case f.Equal(e, f.One()) == 1:
		return Residue
	case f.Equal(e, p.minusOne) == 1:
		return NonResidue
	}
	panic(&InvariantError{Op: "legendre", Err: errBadLegendre})
}
