package curve25519

import (
	"sync"

	"filippo.io/edwards25519/field"
	"github.com/cloudflare/circl/math/fp25519"

	"ell2.mleku.dev"
)

// Params returns the Curve25519 parameters over Field.
var Params = sync.OnceValue(func() *ell2.CurveParams[*field.Element] {
	var f Field
	return ell2.MustCurveParams[*field.Element](f, f.FromUint64(A), f.FromUint64(B), f.FromUint64(Z))
})

// CirclParams returns the Curve25519 parameters over CirclField.
var CirclParams = sync.OnceValue(func() *ell2.CurveParams[fp25519.Elt] {
	var f CirclField
	return ell2.MustCurveParams[fp25519.Elt](f, f.FromUint64(A), f.FromUint64(B), f.FromUint64(Z))
})
