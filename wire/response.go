package wire

import "github.com/renproject/dealer/scalar"

// DealerResponse is the material the dealer hands to one party of a
// completed pairing (spec.md §3).
type DealerResponse struct {
	MacKeyShare scalar.Scalar        `json:"mac_key_share"`
	RandomBits  []scalar.ScalarShare `json:"random_bits"`
	RandomValues []scalar.ScalarShare `json:"random_values"`

	// InputMasks holds the cleartext of this party's own masks, shares of
	// those same masks, and shares of the counterparty's masks, in that
	// order (spec.md §3, invariant I6).
	InputMasks InputMasks `json:"input_masks"`

	// InversePairs holds parallel share vectors r and r^-1 (spec.md §3,
	// invariant I4).
	InversePairs InversePairs `json:"inverse_pairs"`

	// BeaverTriples holds parallel share vectors a, b, c with a*b=c
	// (spec.md §3, invariant I5).
	BeaverTriples BeaverTriples `json:"beaver_triples"`
}

// InputMasks is the triple (cleartext, own shares, counterparty shares)
// described by spec.md §3.
type InputMasks struct {
	Cleartext           []scalar.Scalar      `json:"cleartext"`
	OwnShares           []scalar.ScalarShare `json:"own_shares"`
	CounterpartyShares  []scalar.ScalarShare `json:"counterparty_shares"`
}

// InversePairs is the parallel pair (r, r^-1) described by spec.md §3.
type InversePairs struct {
	R    []scalar.ScalarShare `json:"r"`
	RInv []scalar.ScalarShare `json:"r_inv"`
}

// BeaverTriples is the parallel triple (a, b, c) described by spec.md §3.
type BeaverTriples struct {
	A []scalar.ScalarShare `json:"a"`
	B []scalar.ScalarShare `json:"b"`
	C []scalar.ScalarShare `json:"c"`
}

// NewDealerResponse returns a DealerResponse with every vector allocated as
// empty (not nil), so that an all-zero-counts request (spec.md §8, B2)
// serializes with `[]` rather than `null`.
func NewDealerResponse(macKeyShare scalar.Scalar) DealerResponse {
	return DealerResponse{
		MacKeyShare:  macKeyShare,
		RandomBits:   []scalar.ScalarShare{},
		RandomValues: []scalar.ScalarShare{},
		InputMasks: InputMasks{
			Cleartext:          []scalar.Scalar{},
			OwnShares:          []scalar.ScalarShare{},
			CounterpartyShares: []scalar.ScalarShare{},
		},
		InversePairs: InversePairs{
			R:    []scalar.ScalarShare{},
			RInv: []scalar.ScalarShare{},
		},
		BeaverTriples: BeaverTriples{
			A: []scalar.ScalarShare{},
			B: []scalar.ScalarShare{},
			C: []scalar.ScalarShare{},
		},
	}
}
