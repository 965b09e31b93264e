package curve448

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"ell2.mleku.dev"
	"ell2.mleku.dev/internal/testutils"
)

const (
	minusOneHex   = "fefffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	minusHalfAHex = "accefefffffffffffffffffffffffffffffffffffffffffffffffffffeffffffffffffffffffffffffffffffffffffffffffffffffffffff"
)

var (
	zeroHex = strings.Repeat("00", Size)
	oneHex  = "01" + strings.Repeat("00", Size-1)
)

var vectors = []testutils.Vector{
	{
		Name: "non_residue_1",
		R:    "2cbea5e0f8fe839a63a0cdaf9fb69bc3e1a6f0264a6364882aa0c42358c734003fc15e92b40cf70c1a66f883e90fdcc649f6f24993644281",
		U:    "7bdb169ec25358af36bd68cac534a47b99c9a590bcf9e926a9863aef526f5cd52de16a4ab658356973a08c218b9dfd802bd6b08dca6b0551",
		V:    "6ad58f7dfd1eec2322151ad8cd92813f0a8c2dd9fdff3d37afe14e5984806aa445e45dd31242efb3507b365628bb1118af5cdf095fd7b453",
	},
	{
		Name: "residue_1",
		R:    "04e8873531205053244390155bafd2c6d62ff44f612de697727d05a3cf0296920b0f74b5f1c06bddd451b22a385b42dfa7ce09529882f467",
		U:    "cd70921ae44fa31bd44c613bbe7545e0acc02b5e26eec01e9e9a0b9bde223620a3d0cbb542325e3370fbdc65d06b954bffc52b14dd68beeb",
		V:    "cc8888e798361aac21d50f6e8926539605477fec49e5286bf416159ef5d955e4771cf078b60184f26a3b2cf6e70e811469bf487e12815eeb",
	},
	{
		Name: "non_residue_2",
		R:    "e7fe0548d1de5b2c7e210940889eab75d27634ed0dfdbbf948698bc3da065801b333a5f2f39fb7f7355752f666fa84da2c41a32266789449",
		U:    "839b88d99f90f2094140f25bd4f10cedb726515809c278b3fd944dc3328c8deb941078aebfb6d178847e6f229d793d2ae995948d9e971797",
		V:    "76b343ef737098297896f6b6f585d8197d1da96f73f22ce3103ac7c1784ec181878b361b2ec0e900e9406ff1fe39839820fab236e0e5332e",
	},
	{
		Name: "residue_2",
		R:    "2c1a2ed572d9e34ae73d433993cebfd05b80780f2b9631dca5dd47b4581351f0629457919d20d07fc45c586edac94ec0ee4984633a2c9e6e",
		U:    "ac454e612ee606a24bdd735a832ea6bbb9feeaea5d56e16e33b0228523afee5a196ae0b6cf542732e3faec1ca3495e5f40afa4b11551fc9d",
		V:    "a51c702da76fbd78f3d12c0911811f4f02eb81f0d306d7f634eab3059918123f29ec382252a1969c5389920bfc0479e84ebce54a935c64c7",
	},
	{
		Name: "zero",
		R:    zeroHex,
		U:    zeroHex,
		V:    zeroHex,
	},
	{
		// Z*r^2 = -1, mapped like r = 0.
		Name: "one",
		R:    oneHex,
		U:    zeroHex,
		V:    zeroHex,
	},
	{
		Name: "minus_one",
		R:    minusOneHex,
		U:    zeroHex,
		V:    zeroHex,
	},
}

func TestDirectMapVectors(t *testing.T) {
	for _, vec := range vectors {
		for _, h := range []string{vec.R, vec.U, vec.V} {
			if len(h) != 2*Size {
				t.Fatalf("vector %s: %d hex digits, want %d", vec.Name, len(h), 2*Size)
			}
		}
	}
	testutils.CheckVectors(t, Params(), vectors)
}

func TestParams(t *testing.T) {
	p := Params()
	f := p.Field()
	if got := hex.EncodeToString(f.Bytes(p.Z())); got != minusOneHex {
		t.Errorf("Z = %s, want -1", got)
	}
	inv2, err := f.Invert(f.FromUint64(2))
	if err != nil {
		t.Fatal(err)
	}
	if got := hex.EncodeToString(f.Bytes(f.Neg(f.Mul(p.A(), inv2)))); got != minusHalfAHex {
		t.Errorf("-A/2 = %s, want %s", got, minusHalfAHex)
	}
	if ell2.Classify(p, p.Z()) != ell2.NonResidue {
		t.Error("-1 should be a non-residue")
	}
}

func TestSetBytes(t *testing.T) {
	q := Modulus().Bytes()
	qLE := make([]byte, Size)
	for i := range q {
		qLE[len(q)-1-i] = q[i]
	}
	ff := make([]byte, Size)
	for i := range ff {
		ff[i] = 0xff
	}

	testCases := []struct {
		name string
		in   []byte
		ok   bool
	}{
		{"zero", make([]byte, Size), true},
		{"minus_one", mustHex(minusOneHex), true},
		{"short", make([]byte, Size-1), false},
		{"long", make([]byte, Size+1), false},
		{"modulus", qLE, false},
		{"all_ones", ff, false},
	}

	var f Field
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := f.SetBytes(tc.in)
			if !tc.ok {
				if !errors.Is(err, ell2.ErrInvalidEncoding) {
					t.Errorf("SetBytes error = %v, want ErrInvalidEncoding", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SetBytes: %v", err)
			}
			if got := f.Bytes(x); hex.EncodeToString(got) != hex.EncodeToString(tc.in) {
				t.Errorf("round trip = %x, want %x", got, tc.in)
			}
		})
	}
}

func TestFieldInvertSqrt(t *testing.T) {
	var f Field
	if _, err := f.Invert(f.Zero()); !errors.Is(err, ell2.ErrNotInvertible) {
		t.Errorf("Invert(0) error = %v, want ErrNotInvertible", err)
	}
	if _, err := f.Sqrt(f.Neg(f.One())); !errors.Is(err, ell2.ErrNotASquare) {
		t.Errorf("Sqrt(-1) error = %v, want ErrNotASquare", err)
	}
	r, err := f.Sqrt(f.FromUint64(9))
	if err != nil {
		t.Fatalf("Sqrt(9): %v", err)
	}
	if f.Equal(r, f.FromUint64(3)) != 1 {
		t.Errorf("Sqrt(9) = %x, want 3", f.Bytes(r))
	}
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
