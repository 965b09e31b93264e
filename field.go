package ell2

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	// ErrNotInvertible is returned by Field.Invert for the zero element.
	ErrNotInvertible = errors.New("ell2: element is not invertible")

	// ErrNotASquare is returned by Field.Sqrt for a quadratic non-residue.
	ErrNotASquare = errors.New("ell2: element is not a square")

	// ErrInvalidEncoding is returned by Field.SetBytes for input of the wrong
	// length or a non-canonical value.
	ErrInvalidEncoding = errors.New("ell2: invalid field element encoding")

	// ErrInvalidParams is wrapped by every error NewCurveParams returns.
	ErrInvalidParams = errors.New("ell2: invalid curve parameters")
)

// Field is the prime field arithmetic the map consumes. Implementations are
// thin adapters over an existing field library (see the curve25519,
// curve448 and secp256k1 packages).
//
// Every method returns a fresh, fully reduced element and never modifies its
// arguments. Flags and predicates use 1 for true and 0 for false so they can
// be fed into Select without branching.
type Field[E any] interface {
	Zero() E
	One() E
	FromUint64(x uint64) E

	Add(a, b E) E
	Sub(a, b E) E
	Neg(a E) E
	Mul(a, b E) E
	Square(a E) E

	// Invert returns 1/a, or ErrNotInvertible when a is zero.
	Invert(a E) (E, error)

	// Sqrt returns the square root of a lying in [0, (q-1)/2], or
	// ErrNotASquare when a is a non-residue.
	Sqrt(a E) (E, error)

	Equal(a, b E) int
	IsZero(a E) int

	// Select returns a if cond == 1 and b if cond == 0.
	Select(a, b E, cond int) E

	// Modulus returns the characteristic q. The caller owns the result.
	Modulus() *big.Int

	// Size is the length of the canonical encoding in bytes.
	Size() int
	Bytes(a E) []byte
	SetBytes(b []byte) (E, error)
}

// InvariantError is the panic value raised when an inverse or square root
// that must exist for well-formed parameters does not. It is never returned
// as an error: reaching it means the CurveParams were built around the
// validating constructor or the Field implementation is broken.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return "ell2: " + e.Op + ": " + e.Err.Error()
}

func (e *InvariantError) Unwrap() error { return e.Err }

func mustInvert[E any](f Field[E], op string, a E) E {
	x, err := f.Invert(a)
	if err != nil {
		panic(&InvariantError{Op: op, Err: err})
	}
	return x
}

func mustSqrt[E any](f Field[E], op string, a E) E {
	x, err := f.Sqrt(a)
	if err != nil {
		panic(&InvariantError{Op: op, Err: err})
	}
	return x
}
