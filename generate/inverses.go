package generate

import (
	"io"

	"github.com/renproject/dealer/scalar"
	"github.com/renproject/dealer/wire"
)

// maxZeroResamples bounds the reject-and-resample loop in Inverses. Drawing
// zero from a ~2^256 field is negligible; hitting this bound indicates a
// broken RNG, not bad luck, so it is treated as an impossible-by-construction
// condition (spec.md §7, §9 OQ1).
const maxZeroResamples = 256

// Inverses draws n uniform nonzero scalars r and their field inverses r^-1,
// and returns the two parties' authenticated share vectors for both
// (spec.md §4.2, invariant I4).
//
// Resolves OQ1: r is resampled on the negligible-probability event that it
// is drawn as zero, rather than risking a panic on Scalar.Inverse.
func Inverses(n int, macKey scalar.Scalar, rng io.Reader) (a, b wire.InversePairs, err error) {
	r := make([]scalar.Scalar, n)
	rInv := make([]scalar.Scalar, n)
	for i := range r {
		v, err := nonzeroScalar(rng)
		if err != nil {
			return wire.InversePairs{}, wire.InversePairs{}, err
		}
		var inv scalar.Scalar
		inv.Inverse(v)
		r[i] = v
		rInv[i] = inv
	}

	rSharesA, rSharesB, err := scalar.BuildAuthenticatedShares(macKey, r, rng)
	if err != nil {
		return wire.InversePairs{}, wire.InversePairs{}, err
	}
	invSharesA, invSharesB, err := scalar.BuildAuthenticatedShares(macKey, rInv, rng)
	if err != nil {
		return wire.InversePairs{}, wire.InversePairs{}, err
	}

	a = wire.InversePairs{R: rSharesA, RInv: invSharesA}
	b = wire.InversePairs{R: rSharesB, RInv: invSharesB}
	return a, b, nil
}

func nonzeroScalar(rng io.Reader) (scalar.Scalar, error) {
	for attempt := 0; attempt < maxZeroResamples; attempt++ {
		v, err := scalar.Random(rng)
		if err != nil {
			return scalar.Scalar{}, err
		}
		if !v.IsZero() {
			return v, nil
		}
	}
	panic("generate: drew zero from the scalar field on every one of maxZeroResamples tries; RNG is broken")
}
