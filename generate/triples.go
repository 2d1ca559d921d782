package generate

import (
	"io"

	"github.com/renproject/dealer/scalar"
	"github.com/renproject/dealer/wire"
)

// Triples draws n Beaver triples (a, b, c) with a*b=c and returns the two
// parties' authenticated share vectors for all three (spec.md §4.2,
// invariant I5).
func Triples(n int, macKey scalar.Scalar, rng io.Reader) (a, b wire.BeaverTriples, err error) {
	aVals, err := randomScalars(n, rng)
	if err != nil {
		return wire.BeaverTriples{}, wire.BeaverTriples{}, err
	}
	bVals, err := randomScalars(n, rng)
	if err != nil {
		return wire.BeaverTriples{}, wire.BeaverTriples{}, err
	}
	cVals := make([]scalar.Scalar, n)
	for i := range cVals {
		cVals[i].Mul(aVals[i], bVals[i])
	}

	aSharesA, aSharesB, err := scalar.BuildAuthenticatedShares(macKey, aVals, rng)
	if err != nil {
		return wire.BeaverTriples{}, wire.BeaverTriples{}, err
	}
	bSharesA, bSharesB, err := scalar.BuildAuthenticatedShares(macKey, bVals, rng)
	if err != nil {
		return wire.BeaverTriples{}, wire.BeaverTriples{}, err
	}
	cSharesA, cSharesB, err := scalar.BuildAuthenticatedShares(macKey, cVals, rng)
	if err != nil {
		return wire.BeaverTriples{}, wire.BeaverTriples{}, err
	}

	a = wire.BeaverTriples{A: aSharesA, B: bSharesA, C: cSharesA}
	b = wire.BeaverTriples{A: aSharesB, B: bSharesB, C: cSharesB}
	return a, b, nil
}
