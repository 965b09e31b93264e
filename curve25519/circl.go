package curve25519

import (
	"crypto/subtle"
	"encoding/binary"
	"math/big"

	"github.com/cloudflare/circl/math/fp25519"
	"github.com/pkg/errors"

	"ell2.mleku.dev"
	"ell2.mleku.dev/internal/ct"
)

// CirclField implements ell2.Field[fp25519.Elt]. Elements are kept reduced
// after every operation so equality is a byte comparison.
type CirclField struct{}

var _ ell2.Field[fp25519.Elt] = CirclField{}

func circlOne() fp25519.Elt {
	var x fp25519.Elt
	fp25519.SetOne(&x)
	return x
}

func (CirclField) Zero() fp25519.Elt { return fp25519.Elt{} }
func (CirclField) One() fp25519.Elt  { return circlOne() }

func (CirclField) FromUint64(x uint64) fp25519.Elt {
	var z fp25519.Elt
	binary.LittleEndian.PutUint64(z[:8], x)
	return z
}

func (CirclField) Add(a, b fp25519.Elt) fp25519.Elt {
	var z fp25519.Elt
	fp25519.Add(&z, &a, &b)
	fp25519.Modp(&z)
	return z
}

func (CirclField) Sub(a, b fp25519.Elt) fp25519.Elt {
	var z fp25519.Elt
	fp25519.Sub(&z, &a, &b)
	fp25519.Modp(&z)
	return z
}

func (f CirclField) Neg(a fp25519.Elt) fp25519.Elt {
	return f.Sub(fp25519.Elt{}, a)
}

func (CirclField) Mul(a, b fp25519.Elt) fp25519.Elt {
	var z fp25519.Elt
	fp25519.Mul(&z, &a, &b)
	fp25519.Modp(&z)
	return z
}

func (CirclField) Square(a fp25519.Elt) fp25519.Elt {
	var z fp25519.Elt
	fp25519.Sqr(&z, &a)
	fp25519.Modp(&z)
	return z
}

func (f CirclField) Invert(a fp25519.Elt) (fp25519.Elt, error) {
	if f.IsZero(a) == 1 {
		return fp25519.Elt{}, ell2.ErrNotInvertible
	}
	var z fp25519.Elt
	fp25519.Inv(&z, &a)
	fp25519.Modp(&z)
	return z, nil
}

// Sqrt returns the root in [0, (q-1)/2].
func (f CirclField) Sqrt(a fp25519.Elt) (fp25519.Elt, error) {
	if f.IsZero(a) == 1 {
		return fp25519.Elt{}, nil
	}
	var r fp25519.Elt
	one := circlOne()
	if !fp25519.InvSqrt(&r, &a, &one) {
		return fp25519.Elt{}, ell2.ErrNotASquare
	}
	fp25519.Modp(&r)
	neg := f.Neg(r)
	return f.Select(neg, r, ct.GreaterLE(r[:], neg[:])), nil
}

func (CirclField) Equal(a, b fp25519.Elt) int {
	return subtle.ConstantTimeCompare(a[:], b[:])
}

func (f CirclField) IsZero(a fp25519.Elt) int { return f.Equal(a, fp25519.Elt{}) }

func (CirclField) Select(a, b fp25519.Elt, cond int) fp25519.Elt {
	z := b
	fp25519.Cmov(&z, &a, uint(cond))
	return z
}

func (CirclField) Modulus() *big.Int { return Modulus() }
func (CirclField) Size() int         { return Size }

func (CirclField) Bytes(a fp25519.Elt) []byte {
	b := make([]byte, Size)
	if err := fp25519.ToBytes(b, &a); err != nil {
		panic("curve25519: " + err.Error())
	}
	return b
}

// SetBytes decodes a canonical little-endian element.
func (CirclField) SetBytes(b []byte) (fp25519.Elt, error) {
	if len(b) != Size {
		return fp25519.Elt{}, errors.Wrapf(ell2.ErrInvalidEncoding, "curve25519: got %d bytes, want %d", len(b), Size)
	}
	var z fp25519.Elt
	copy(z[:], b)
	r := z
	fp25519.Modp(&r)
	if r != z {
		return fp25519.Elt{}, errors.Wrap(ell2.ErrInvalidEncoding, "curve25519: non-canonical element")
	}
	return z, nil
}
