package wire

import (
	"github.com/renproject/surge"
)

// MaxRequestSize is the maximum total number of primitives a single
// DealerRequest may ask for, spec.md §3.
const MaxRequestSize = 1_500_000

// DealerRequest is the body a party submits to request offline-phase
// material. Omitted counts default to zero (spec.md §3).
type DealerRequest struct {
	NRandomBits    uint32 `json:"n_random_bits"`
	NRandomValues  uint32 `json:"n_random_values"`
	NInputMasks    uint32 `json:"n_input_masks"`
	NInversePairs  uint32 `json:"n_inverse_pairs"`
	NTriples       uint32 `json:"n_triples"`
	FirstPartyKey  []byte `json:"first_party_key"`
	SecondPartyKey []byte `json:"second_party_key"`
}

// TotalValues returns the sum of all requested primitive counts, the
// quantity spec.md §3's invariant "total <= MAX_REQUEST_SIZE" is checked
// against.
func (r DealerRequest) TotalValues() uint64 {
	return uint64(r.NRandomBits) + uint64(r.NRandomValues) + uint64(r.NInputMasks) +
		uint64(r.NInversePairs) + uint64(r.NTriples)
}

// KeyFor returns the verifying key that pid should have signed its request
// under (spec.md §6.3).
func (r DealerRequest) KeyFor(pid PartyId) []byte {
	if pid == Party0 {
		return r.FirstPartyKey
	}
	return r.SecondPartyKey
}

// Equal reports whether r and other describe the same request, on the
// decoded semantic value rather than raw bytes (spec.md §9, OQ4).
func (r DealerRequest) Equal(other DealerRequest) bool {
	a, errA := r.CanonicalBytes()
	b, errB := other.CanonicalBytes()
	if errA != nil || errB != nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CanonicalBytes returns the deterministic binary encoding of r used both as
// the coherence check between two parties' submissions (spec.md §4.3, I7)
// and as the payload the dealer re-derives to verify a submitted signature
// against (spec.md §6.3).
func (r DealerRequest) CanonicalBytes() ([]byte, error) {
	size := r.SizeHint()
	buf := make([]byte, 0, size)
	buf, _, err := r.Marshal(buf, size)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// SizeHint implements the surge.SizeHinter interface.
func (r DealerRequest) SizeHint() int {
	return surge.SizeHint(r.NRandomBits) +
		surge.SizeHint(r.NRandomValues) +
		surge.SizeHint(r.NInputMasks) +
		surge.SizeHint(r.NInversePairs) +
		surge.SizeHint(r.NTriples) +
		surge.SizeHint(r.FirstPartyKey) +
		surge.SizeHint(r.SecondPartyKey)
}

// Marshal implements the surge.Marshaler interface.
func (r DealerRequest) Marshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.Marshal(r.NRandomBits, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Marshal(r.NRandomValues, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Marshal(r.NInputMasks, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Marshal(r.NInversePairs, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Marshal(r.NTriples, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Marshal(r.FirstPartyKey, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return surge.Marshal(r.SecondPartyKey, buf, rem)
}

// Unmarshal implements the surge.Unmarshaler interface.
func (r *DealerRequest) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	buf, rem, err := surge.Unmarshal(&r.NRandomBits, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&r.NRandomValues, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&r.NInputMasks, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&r.NInversePairs, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&r.NTriples, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	buf, rem, err = surge.Unmarshal(&r.FirstPartyKey, buf, rem)
	if err != nil {
		return buf, rem, err
	}
	return surge.Unmarshal(&r.SecondPartyKey, buf, rem)
}
