package generate

import (
	"io"

	"github.com/renproject/dealer/scalar"
)

// Values draws n uniform scalars and returns the two parties' authenticated
// share vectors (spec.md §4.2).
func Values(n int, macKey scalar.Scalar, rng io.Reader) (a, b []scalar.ScalarShare, err error) {
	values, err := randomScalars(n, rng)
	if err != nil {
		return nil, nil, err
	}
	return scalar.BuildAuthenticatedShares(macKey, values, rng)
}

// randomScalars draws n independent uniform Scalars from rng.
func randomScalars(n int, rng io.Reader) ([]scalar.Scalar, error) {
	out := make([]scalar.Scalar, n)
	for i := range out {
		s, err := scalar.Random(rng)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
