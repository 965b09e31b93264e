// Package secp256k1 exposes the secp256k1 base field
// GF(2^256 - 2^32 - 977) to the Elligator 2 map, backed by the btcec
// FieldVal. There is no standard Montgomery curve over this field; callers
// pick their own A, B and Z and build the parameters with ell2.NewCurveParams.
//
// Encodings are 32-byte big-endian, as in btcec.
package secp256k1

import (
	"crypto/subtle"
	"encoding/binary"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"

	"ell2.mleku.dev"
	"ell2.mleku.dev/internal/ct"
)

// Size is the length of an encoded field element.
const Size = 32

// Modulus returns 2^256 - 2^32 - 977.
func Modulus() *big.Int {
	q := new(big.Int).Lsh(big.NewInt(1), 256)
	q.Sub(q, new(big.Int).Lsh(big.NewInt(1), 32))
	return q.Sub(q, big.NewInt(977))
}

// Field implements ell2.Field[*btcec.FieldVal].
//
// FieldVal tracks a magnitude and only compares normalized values, so every
// result is normalized before it is returned. Inputs are therefore always of
// magnitude 1.
type Field struct{}

var _ ell2.Field[*btcec.FieldVal] = Field{}

func (Field) Zero() *btcec.FieldVal { return new(btcec.FieldVal) }
func (Field) One() *btcec.FieldVal  { return new(btcec.FieldVal).SetInt(1) }

func (Field) FromUint64(x uint64) *btcec.FieldVal {
	var b [Size]byte
	binary.BigEndian.PutUint64(b[Size-8:], x)
	f := new(btcec.FieldVal)
	f.SetBytes(&b)
	return f.Normalize()
}

func (Field) Add(a, b *btcec.FieldVal) *btcec.FieldVal {
	return new(btcec.FieldVal).Add2(a, b).Normalize()
}

func (Field) Sub(a, b *btcec.FieldVal) *btcec.FieldVal {
	return new(btcec.FieldVal).NegateVal(b, 1).Add(a).Normalize()
}

func (Field) Neg(a *btcec.FieldVal) *btcec.FieldVal {
	return new(btcec.FieldVal).NegateVal(a, 1).Normalize()
}

func (Field) Mul(a, b *btcec.FieldVal) *btcec.FieldVal {
	return new(btcec.FieldVal).Mul2(a, b).Normalize()
}

func (Field) Square(a *btcec.FieldVal) *btcec.FieldVal {
	return new(btcec.FieldVal).SquareVal(a).Normalize()
}

func (Field) Invert(a *btcec.FieldVal) (*btcec.FieldVal, error) {
	if a.IsZero() {
		return nil, ell2.ErrNotInvertible
	}
	return new(btcec.FieldVal).Set(a).Inverse().Normalize(), nil
}

// Sqrt returns the root in [0, (q-1)/2].
func (f Field) Sqrt(a *btcec.FieldVal) (*btcec.FieldVal, error) {
	r := new(btcec.FieldVal)
	if !r.SquareRootVal(a) {
		return nil, ell2.ErrNotASquare
	}
	r.Normalize()
	neg := f.Neg(r)
	return f.Select(neg, r, ct.GreaterBE(r.Bytes()[:], neg.Bytes()[:])), nil
}

// Equal and IsZero compare normalized encodings in constant time.
func (Field) Equal(a, b *btcec.FieldVal) int {
	return subtle.ConstantTimeCompare(a.Bytes()[:], b.Bytes()[:])
}

func (Field) IsZero(a *btcec.FieldVal) int {
	var zero [Size]byte
	return subtle.ConstantTimeCompare(a.Bytes()[:], zero[:])
}

// Select copies through the big-endian encoding; FieldVal has no
// conditional move of its own.
func (Field) Select(a, b *btcec.FieldVal, cond int) *btcec.FieldVal {
	out := *b.Bytes()
	subtle.ConstantTimeCopy(cond, out[:], a.Bytes()[:])
	f := new(btcec.FieldVal)
	f.SetBytes(&out)
	return f
}

func (Field) Modulus() *big.Int { return Modulus() }
func (Field) Size() int         { return Size }

func (Field) Bytes(a *btcec.FieldVal) []byte {
	b := a.Bytes()
	return b[:]
}

// SetBytes decodes a canonical big-endian element.
func (Field) SetBytes(b []byte) (*btcec.FieldVal, error) {
	if len(b) != Size {
		return nil, errors.Wrapf(ell2.ErrInvalidEncoding, "secp256k1: got %d bytes, want %d", len(b), Size)
	}
	f := new(btcec.FieldVal)
	if f.SetByteSlice(b) {
		return nil, errors.Wrap(ell2.ErrInvalidEncoding, "secp256k1: element overflows the field")
	}
	return f, nil
}
