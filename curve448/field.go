// Package curve448 provides GF(2^448 - 2^224 - 1) on top of
// github.com/cloudflare/circl/math/fp448 and the Curve448 parameters
// v^2 = u^3 + 156326*u^2 + u with Z = -1.
//
// Because q = 3 mod 4, the inputs r = 1 and r = -1 make 1 + Z*r^2 vanish;
// the map sends them to the image of r = 0.
package curve448

import (
	"crypto/subtle"
	"encoding/binary"
	"math/big"

	"github.com/cloudflare/circl/math/fp448"
	"github.com/pkg/errors"

	"ell2.mleku.dev"
	"ell2.mleku.dev/internal/ct"
)

// Size is the length of an encoded field element.
const Size = fp448.Size

// Curve constants. Z is -1.
const (
	A = 156326
	B = 1
)

// Modulus returns 2^448 - 2^224 - 1.
func Modulus() *big.Int {
	q := new(big.Int).Lsh(big.NewInt(1), 448)
	q.Sub(q, new(big.Int).Lsh(big.NewInt(1), 224))
	return q.Sub(q, big.NewInt(1))
}

// Field implements ell2.Field[fp448.Elt]. Elements are kept reduced.
type Field struct{}

var _ ell2.Field[fp448.Elt] = Field{}

func one() fp448.Elt {
	var x fp448.Elt
	fp448.SetOne(&x)
	return x
}

func (Field) Zero() fp448.Elt { return fp448.Elt{} }
func (Field) One() fp448.Elt  { return one() }

func (Field) FromUint64(x uint64) fp448.Elt {
	var z fp448.Elt
	binary.LittleEndian.PutUint64(z[:8], x)
	return z
}

func (Field) Add(a, b fp448.Elt) fp448.Elt {
	var z fp448.Elt
	fp448.Add(&z, &a, &b)
	fp448.Modp(&z)
	return z
}

func (Field) Sub(a, b fp448.Elt) fp448.Elt {
	var z fp448.Elt
	fp448.Sub(&z, &a, &b)
	fp448.Modp(&z)
	return z
}

func (f Field) Neg(a fp448.Elt) fp448.Elt { return f.Sub(fp448.Elt{}, a) }

func (Field) Mul(a, b fp448.Elt) fp448.Elt {
	var z fp448.Elt
	fp448.Mul(&z, &a, &b)
	fp448.Modp(&z)
	return z
}

func (Field) Square(a fp448.Elt) fp448.Elt {
	var z fp448.Elt
	fp448.Sqr(&z, &a)
	fp448.Modp(&z)
	return z
}

func (f Field) Invert(a fp448.Elt) (fp448.Elt, error) {
	if f.IsZero(a) == 1 {
		return fp448.Elt{}, ell2.ErrNotInvertible
	}
	var z fp448.Elt
	fp448.Inv(&z, &a)
	fp448.Modp(&z)
	return z, nil
}

// Sqrt returns the root in [0, (q-1)/2].
func (f Field) Sqrt(a fp448.Elt) (fp448.Elt, error) {
	if f.IsZero(a) == 1 {
		return fp448.Elt{}, nil
	}
	var r fp448.Elt
	o := one()
	if !fp448.InvSqrt(&r, &a, &o) {
		return fp448.Elt{}, ell2.ErrNotASquare
	}
	fp448.Modp(&r)
	neg := f.Neg(r)
	return f.Select(neg, r, ct.GreaterLE(r[:], neg[:])), nil
}

func (Field) Equal(a, b fp448.Elt) int {
	return subtle.ConstantTimeCompare(a[:], b[:])
}

func (f Field) IsZero(a fp448.Elt) int { return f.Equal(a, fp448.Elt{}) }

func (Field) Select(a, b fp448.Elt, cond int) fp448.Elt {
	z := b
	fp448.Cmov(&z, &a, uint(cond))
	return z
}

func (Field) Modulus() *big.Int { return Modulus() }
func (Field) Size() int         { return Size }

func (Field) Bytes(a fp448.Elt) []byte {
	b := make([]byte, Size)
	if err := fp448.ToBytes(b, &a); err != nil {
		panic("curve448: " + err.Error())
	}
	return b
}

// SetBytes decodes a canonical 56-byte little-endian element.
func (Field) SetBytes(b []byte) (fp448.Elt, error) {
	if len(b) != Size {
		return fp448.Elt{}, errors.Wrapf(ell2.ErrInvalidEncoding, "curve448: got %d bytes, want %d", len(b), Size)
	}
	var z fp448.Elt
	copy(z[:], b)
	r := z
	fp448.Modp(&r)
	if r != z {
		return fp448.Elt{}, errors.Wrap(ell2.ErrInvalidEncoding, "curve448: non-canonical element")
	}
	return z, nil
}
