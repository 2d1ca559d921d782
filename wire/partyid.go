package wire

import "fmt"

// PartyId identifies one of the two parties in a dealer request. No other
// value is legal (spec.md §3).
type PartyId uint8

// The two legal party identities.
const (
	Party0 = PartyId(iota)
	Party1
	numParties
)

// String implements fmt.Stringer.
func (p PartyId) String() string {
	switch p {
	case Party0:
		return "PARTY0"
	case Party1:
		return "PARTY1"
	default:
		return fmt.Sprintf("PartyId(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the two legal party identities
// (spec.md §4.4, check 2).
func (p PartyId) Valid() bool {
	return p < numParties
}

// ParsePartyId parses the X-Party-Id header value ("0" or "1") into a
// PartyId. Any other value is rejected.
func ParsePartyId(s string) (PartyId, error) {
	switch s {
	case "0":
		return Party0, nil
	case "1":
		return Party1, nil
	default:
		return 0, fmt.Errorf("wire: invalid party id %q", s)
	}
}

// Other returns the counterparty's PartyId.
func (p PartyId) Other() PartyId {
	if p == Party0 {
		return Party1
	}
	return Party0
}
