// Package generate implements the five correlated-randomness primitive
// generators of the SPDZ offline phase (spec.md §4.2). Every generator is a
// pure function of (n, mac key, rng): none touches the pairing engine's lock
// or the open-requests map.
package generate

import (
	"fmt"
	"io"

	"github.com/renproject/dealer/scalar"
	"github.com/renproject/dealer/wire"
)

// Run executes the five generators in the fixed order bits, values, masks,
// inverse pairs, triples under the caller-supplied macKey, and returns the
// two parties' complete response fragments (spec.md §4.3). macKeyShareA and
// macKeyShareB are folded into the returned responses' MacKeyShare field;
// callers (the pairing engine) are responsible for sampling them such that
// macKeyShareA + macKeyShareB == macKey.
func Run(req wire.DealerRequest, macKey, macKeyShareA, macKeyShareB scalar.Scalar, rng io.Reader) (a, b wire.DealerResponse, err error) {
	a = wire.NewDealerResponse(macKeyShareA)
	b = wire.NewDealerResponse(macKeyShareB)

	a.RandomBits, b.RandomBits, err = Bits(int(req.NRandomBits), macKey, rng)
	if err != nil {
		return wire.DealerResponse{}, wire.DealerResponse{}, fmt.Errorf("generate: random bits: %w", err)
	}

	a.RandomValues, b.RandomValues, err = Values(int(req.NRandomValues), macKey, rng)
	if err != nil {
		return wire.DealerResponse{}, wire.DealerResponse{}, fmt.Errorf("generate: random values: %w", err)
	}

	a.InputMasks, b.InputMasks, err = Masks(int(req.NInputMasks), macKey, rng)
	if err != nil {
		return wire.DealerResponse{}, wire.DealerResponse{}, fmt.Errorf("generate: input masks: %w", err)
	}

	a.InversePairs, b.InversePairs, err = Inverses(int(req.NInversePairs), macKey, rng)
	if err != nil {
		return wire.DealerResponse{}, wire.DealerResponse{}, fmt.Errorf("generate: inverse pairs: %w", err)
	}

	a.BeaverTriples, b.BeaverTriples, err = Triples(int(req.NTriples), macKey, rng)
	if err != nil {
		return wire.DealerResponse{}, wire.DealerResponse{}, fmt.Errorf("generate: triples: %w", err)
	}

	return a, b, nil
}
