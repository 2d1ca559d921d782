package generate

import (
	"io"

	"github.com/renproject/dealer/scalar"
)

// Bits draws n uniform random bits, embeds each as a Scalar in {0, 1}, and
// returns the two parties' authenticated share vectors (spec.md §4.2,
// invariant I3).
func Bits(n int, macKey scalar.Scalar, rng io.Reader) (a, b []scalar.ScalarShare, err error) {
	bits := make([]scalar.Scalar, n)
	for i := range bits {
		coin := make([]byte, 1)
		if _, err := io.ReadFull(rng, coin); err != nil {
			return nil, nil, err
		}
		bits[i] = scalar.FromUint16(uint16(coin[0] & 1))
	}
	return scalar.BuildAuthenticatedShares(macKey, bits, rng)
}
