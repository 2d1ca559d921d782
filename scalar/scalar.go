// Package scalar implements the field primitives and authenticated-share
// algebra that the dealer's generators build on.
package scalar

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/renproject/secp256k1"
)

// ByteLen is the fixed-width big-endian encoding length of a Scalar, as
// required by spec.md §6.1 ("field lengths must match exactly between
// dealer and clients").
const ByteLen = 32

// Scalar is an element of the scalar field of secp256k1, the prime-order
// group this dealer generates correlated randomness over.
type Scalar struct {
	secp256k1.Fn
}

// Random draws a uniform Scalar using rng as its source of entropy. Callers
// in the hot path pass crypto/rand.Reader; tests may substitute a
// deterministic reader.
func Random(rng io.Reader) (Scalar, error) {
	var buf [ByteLen]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return Scalar{}, fmt.Errorf("scalar: reading randomness: %w", err)
	}
	var s Scalar
	s.SetB32(buf[:])
	return s, nil
}

// MustRandom is like Random but panics on entropy-source failure, for callers
// that treat rand.Reader failure as an impossible condition (spec.md §7,
// Internal errors). Nothing in this module calls it.
func MustRandom(rng io.Reader) Scalar {
	s, err := Random(rng)
	if err != nil {
		panic(err)
	}
	return s
}

// FromUint16 embeds a small non-negative integer as a Scalar. Used to embed
// the two possible bit values, 0 and 1, into the field.
func FromUint16(v uint16) Scalar {
	return Scalar{secp256k1.NewFnFromU16(v)}
}

// Add sets s = a + b and returns s.
func (s *Scalar) Add(a, b Scalar) Scalar {
	s.Fn.Add(&a.Fn, &b.Fn)
	return *s
}

// Sub sets s = a - b and returns s.
func (s *Scalar) Sub(a, b Scalar) Scalar {
	s.Fn.Sub(&a.Fn, &b.Fn)
	return *s
}

// Mul sets s = a * b and returns s.
func (s *Scalar) Mul(a, b Scalar) Scalar {
	s.Fn.Mul(&a.Fn, &b.Fn)
	return *s
}

// Inverse sets s = a^-1 and returns s. Undefined when a is zero; callers
// must check IsZero first (see generate.Inverses, OQ1).
func (s *Scalar) Inverse(a Scalar) Scalar {
	s.Fn.Inverse(&a.Fn)
	return *s
}

// IsZero reports whether s is the additive identity.
func (s Scalar) IsZero() bool {
	return s.Fn.IsZero()
}

// Eq reports whether s and other represent the same field element.
func (s Scalar) Eq(other Scalar) bool {
	return s.Fn.Eq(&other.Fn)
}

// Bytes returns the fixed-width big-endian encoding of s.
func (s Scalar) Bytes() [ByteLen]byte {
	var buf [ByteLen]byte
	s.Fn.PutB32(buf[:])
	return buf
}

// SetBytes sets s from a fixed-width big-endian encoding.
func (s *Scalar) SetBytes(buf []byte) error {
	if len(buf) != ByteLen {
		return fmt.Errorf("scalar: want %d bytes, got %d", ByteLen, len(buf))
	}
	s.Fn.SetB32(buf)
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the scalar as a lowercase
// hex string of its fixed-width big-endian representation.
func (s Scalar) MarshalJSON() ([]byte, error) {
	buf := s.Bytes()
	return json.Marshal(hex.EncodeToString(buf[:]))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("scalar: %w", err)
	}
	buf, err := hex.DecodeString(str)
	if err != nil {
		return fmt.Errorf("scalar: invalid hex: %w", err)
	}
	if len(buf) != ByteLen {
		return fmt.Errorf("scalar: want %d bytes, got %d", ByteLen, len(buf))
	}
	s.Fn.SetB32(buf)
	return nil
}
