// Package testutils holds helpers shared by the tests of the field adapters
// and the map itself.
package testutils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"ell2.mleku.dev"
)

// Vector is one known answer of the direct map. R, U and V are hex encodings
// in the byte order of the field they belong to.
type Vector struct {
	Name    string
	R, U, V string
}

// MustElement decodes hex into an element of f or fails the test.
func MustElement[E any](t testing.TB, f ell2.Field[E], x string) E {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(x, " ", ""))
	if err != nil {
		t.Fatalf("failed to parse hex %q: %v", x, err)
	}
	e, err := f.SetBytes(b)
	if err != nil {
		t.Fatalf("failed to decode field element %q: %v", x, err)
	}
	return e
}

// CheckVectors runs every vector through both formulations of the map.
func CheckVectors[E any](t *testing.T, p *ell2.CurveParams[E], vectors []Vector) {
	t.Helper()
	f := p.Field()
	maps := []struct {
		name string
		fn   func(*ell2.CurveParams[E], E) (E, E)
	}{
		{"blend", ell2.DirectMap[E]},
		{"vartime", ell2.DirectMapVartime[E]},
	}

	for _, vec := range vectors {
		r := MustElement(t, f, vec.R)
		for _, m := range maps {
			t.Run(vec.Name+"/"+m.name, func(t *testing.T) {
				u, v := m.fn(p, r)
				if got := hex.EncodeToString(f.Bytes(u)); got != vec.U {
					t.Errorf("u = %s, want %s", got, vec.U)
				}
				if got := hex.EncodeToString(f.Bytes(v)); got != vec.V {
					t.Errorf("v = %s, want %s", got, vec.V)
				}
				if !p.OnCurve(u, v) {
					t.Errorf("(%x, %x) is not on the curve", f.Bytes(u), f.Bytes(v))
				}
			})
		}
	}
}

// RecoverInvariant runs fn and returns the *ell2.InvariantError it panicked
// with, or nil if it returned normally. Any other panic value is re-raised.
func RecoverInvariant(fn func()) (ie *ell2.InvariantError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err, ok := r.(error)
		if !ok || !errors.As(err, &ie) {
			panic(r)
		}
	}()
	fn()
	return nil
}
