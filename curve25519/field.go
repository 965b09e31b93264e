// Package curve25519 provides the field GF(2^255 - 19) for the Elligator 2
// map and the Curve25519 parameters v^2 = u^3 + 486662*u^2 + u with Z = 2.
//
// Field wraps filippo.io/edwards25519/field. CirclField wraps
// github.com/cloudflare/circl/math/fp25519 and exists mostly to cross-check
// the first one; both use the 32-byte little-endian encoding.
package curve25519

import (
	"bytes"
	"encoding/binary"
	"math/big"

	"filippo.io/edwards25519/field"
	"github.com/pkg/errors"

	"ell2.mleku.dev"
	"ell2.mleku.dev/internal/ct"
)

// Size is the length of an encoded field element.
const Size = 32

// Curve constants.
const (
	A = 486662
	B = 1
	Z = 2
)

var (
	feZero = new(field.Element).Zero()
	feOne  = new(field.Element).One()
)

// Modulus returns 2^255 - 19.
func Modulus() *big.Int {
	q := new(big.Int).Lsh(big.NewInt(1), 255)
	return q.Sub(q, big.NewInt(19))
}

// Field implements ell2.Field[*field.Element].
type Field struct{}

var _ ell2.Field[*field.Element] = Field{}

func (Field) Zero() *field.Element { return new(field.Element).Zero() }
func (Field) One() *field.Element  { return new(field.Element).One() }

func (Field) FromUint64(x uint64) *field.Element {
	var b [Size]byte
	binary.LittleEndian.PutUint64(b[:], x)
	fe, err := new(field.Element).SetBytes(b[:])
	if err != nil {
		panic("curve25519: " + err.Error())
	}
	return fe
}

func (Field) Add(a, b *field.Element) *field.Element {
	return new(field.Element).Add(a, b)
}

func (Field) Sub(a, b *field.Element) *field.Element {
	return new(field.Element).Subtract(a, b)
}

func (Field) Neg(a *field.Element) *field.Element {
	return new(field.Element).Negate(a)
}

func (Field) Mul(a, b *field.Element) *field.Element {
	return new(field.Element).Multiply(a, b)
}

func (Field) Square(a *field.Element) *field.Element {
	return new(field.Element).Square(a)
}

func (Field) Invert(a *field.Element) (*field.Element, error) {
	if a.Equal(feZero) == 1 {
		return nil, ell2.ErrNotInvertible
	}
	return new(field.Element).Invert(a), nil
}

// Sqrt returns the root in [0, (q-1)/2]. SqrtRatio hands back the even root,
// which is not always the smaller one.
func (Field) Sqrt(a *field.Element) (*field.Element, error) {
	r, wasSquare := new(field.Element).SqrtRatio(a, feOne)
	if wasSquare == 0 {
		return nil, ell2.ErrNotASquare
	}
	neg := new(field.Element).Negate(r)
	return new(field.Element).Select(neg, r, ct.GreaterLE(r.Bytes(), neg.Bytes())), nil
}

func (Field) Equal(a, b *field.Element) int { return a.Equal(b) }
func (Field) IsZero(a *field.Element) int   { return a.Equal(feZero) }

func (Field) Select(a, b *field.Element, cond int) *field.Element {
	return new(field.Element).Select(a, b, cond)
}

func (Field) Modulus() *big.Int { return Modulus() }
func (Field) Size() int         { return Size }

func (Field) Bytes(a *field.Element) []byte { return a.Bytes() }

// SetBytes decodes a canonical little-endian element. Unlike the underlying
// library it rejects values >= q and a set top bit.
func (Field) SetBytes(b []byte) (*field.Element, error) {
	if len(b) != Size {
		return nil, errors.Wrapf(ell2.ErrInvalidEncoding, "curve25519: got %d bytes, want %d", len(b), Size)
	}
	fe, err := new(field.Element).SetBytes(b)
	if err != nil {
		return nil, errors.Wrap(ell2.ErrInvalidEncoding, err.Error())
	}
	if !bytes.Equal(fe.Bytes(), b) {
		return nil, errors.Wrap(ell2.ErrInvalidEncoding, "curve25519: non-canonical element")
	}
	return fe, nil
}
