package wire

import (
	"fmt"

	"github.com/google/uuid"
)

// RequestId is the 128-bit identifier a pair of parties agree upon before
// contacting the dealer (spec.md §3). Establishing this agreement is out of
// scope for the dealer itself.
type RequestId uuid.UUID

// ParseRequestId parses a canonical UUID string (as carried in the HTTP
// path, spec.md §6.2).
func ParseRequestId(s string) (RequestId, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RequestId{}, fmt.Errorf("wire: invalid request id: %w", err)
	}
	return RequestId(id), nil
}

// String implements fmt.Stringer.
func (r RequestId) String() string {
	return uuid.UUID(r).String()
}

// LittleEndianBytes returns the little-endian 16-byte representation of the
// request id, used as the prefix of the signed payload (spec.md §6.3).
func (r RequestId) LittleEndianBytes() [16]byte {
	var out [16]byte
	src := uuid.UUID(r) // big-endian per RFC 4122
	for i := 0; i < 16; i++ {
		out[i] = src[15-i]
	}
	return out
}
