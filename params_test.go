package ell2_test

import (
	"math/big"
	"testing"

	"filippo.io/edwards25519/field"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"ell2.mleku.dev"
	"ell2.mleku.dev/curve25519"
)

func TestNewCurveParams(t *testing.T) {
	var f curve25519.Field
	a := f.FromUint64(curve25519.A)

	testCases := []struct {
		name    string
		a, b, z *field.Element
		ok      bool
	}{
		{"curve25519", a, f.One(), f.FromUint64(2), true},
		{"z_square", a, f.One(), f.FromUint64(4), false},
		{"z_zero", a, f.One(), f.Zero(), false},
		{"a_zero", f.Zero(), f.One(), f.FromUint64(2), false},
		{"b_zero", a, f.Zero(), f.FromUint64(2), false},
		// A^2 - 4B = 0.
		{"singular", f.FromUint64(2), f.One(), f.FromUint64(2), false},
		// A^2 - 4B = 5, a square mod 2^255 - 19.
		{"discriminant_square", f.FromUint64(3), f.One(), f.FromUint64(2), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ell2.NewCurveParams[*field.Element](f, tc.a, tc.b, tc.z)
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, p)
				return
			}
			require.Error(t, err)
			require.Nil(t, p)
			require.True(t, errors.Is(err, ell2.ErrInvalidParams), "error %v does not wrap ErrInvalidParams", err)
		})
	}
}

// composite is GF(2^255 - 19) with a lying modulus.
type composite struct{ curve25519.Field }

func (composite) Modulus() *big.Int { return big.NewInt(15) }

// evenField reports an even characteristic.
type evenField struct{ curve25519.Field }

func (evenField) Modulus() *big.Int { return big.NewInt(1 << 16) }

func TestNewCurveParamsModulus(t *testing.T) {
	for _, f := range []ell2.Field[*field.Element]{composite{}, evenField{}} {
		_, err := ell2.NewCurveParams(f, f.FromUint64(curve25519.A), f.One(), f.FromUint64(2))
		require.ErrorIs(t, err, ell2.ErrInvalidParams)
	}
}

func TestMustCurveParams(t *testing.T) {
	var f curve25519.Field
	require.Panics(t, func() {
		ell2.MustCurveParams[*field.Element](f, f.Zero(), f.One(), f.FromUint64(2))
	})
	require.NotPanics(t, func() {
		ell2.MustCurveParams[*field.Element](f, f.FromUint64(curve25519.A), f.One(), f.FromUint64(2))
	})
}

func TestCurveParamsAccessors(t *testing.T) {
	p := curve25519.Params()
	f := p.Field()

	q := p.Modulus()
	q.SetInt64(0)
	require.Equal(t, 0, p.Modulus().Cmp(curve25519.Modulus()), "Modulus must return a copy")

	require.Equal(t, f.Bytes(f.FromUint64(curve25519.A)), f.Bytes(p.A()))
	require.Equal(t, f.Bytes(f.FromUint64(curve25519.B)), f.Bytes(p.B()))
	require.Equal(t, f.Bytes(f.FromUint64(curve25519.Z)), f.Bytes(p.Z()))

	// (0, 0) is the 2-torsion point, (1, 0) is not on the curve.
	require.True(t, p.OnCurve(f.Zero(), f.Zero()))
	require.False(t, p.OnCurve(f.One(), f.Zero()))
}
