package curve448

import (
	"sync"

	"github.com/cloudflare/circl/math/fp448"

	"ell2.mleku.dev"
)

// Params returns the Curve448 parameters.
var Params = sync.OnceValue(func() *ell2.CurveParams[fp448.Elt] {
	var f Field
	return ell2.MustCurveParams[fp448.Elt](f, f.FromUint64(A), f.FromUint64(B), f.Neg(f.One()))
})
