// Package sample produces reproducible field elements for tests and
// benchmarks. Elements are drawn from a SHA-256 counter stream keyed by a
// label, so a failing case can be replayed from its label and index alone.
package sample

import (
	"encoding/binary"

	sha256simd "github.com/minio/sha256-simd"

	"ell2.mleku.dev"
)

// Stream is a deterministic byte stream: block i is SHA-256(label || i).
type Stream struct {
	label []byte
	ctr   uint64
	buf   []byte
}

// New returns the stream for label.
func New(label string) *Stream {
	return &Stream{label: []byte(label)}
}

// Read fills p from the stream. It never fails.
func (s *Stream) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if len(s.buf) == 0 {
			s.refill()
		}
		c := copy(p, s.buf)
		s.buf = s.buf[c:]
		p = p[c:]
	}
	return n, nil
}

func (s *Stream) refill() {
	h := sha256simd.New()
	h.Write(s.label)
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], s.ctr)
	h.Write(ctr[:])
	s.ctr++
	s.buf = h.Sum(nil)
}

// Element draws canonical encodings from s until one decodes in f.
func Element[E any](f ell2.Field[E], s *Stream) E {
	b := make([]byte, f.Size())
	for {
		s.Read(b)
		if x, err := f.SetBytes(b); err == nil {
			return x
		}
	}
}

// Elements returns n elements of f drawn from the stream for label.
func Elements[E any](f ell2.Field[E], label string, n int) []E {
	s := New(label)
	out := make([]E, n)
	for i := range out {
		out[i] = Element(f, s)
	}
	return out
}
