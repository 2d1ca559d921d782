package scalar

import (
	"fmt"
	"io"
)

// BuildAuthenticatedShares splits values into two vectors of authenticated
// shares that sum to values under the given mac key (spec.md §4.1):
//
//	macs[i]    = values[i] * macKey
//	a[i]       = (vRand[i], mRand[i])
//	b[i]       = (values[i] - vRand[i], macs[i] - mRand[i])
//
// Both output vectors have the same length as values. Every draw is made
// from rng, which callers should point at a cryptographically secure source.
func BuildAuthenticatedShares(macKey Scalar, values []Scalar, rng io.Reader) (a, b []ScalarShare, err error) {
	n := len(values)
	a = make([]ScalarShare, n)
	b = make([]ScalarShare, n)
	for i, v := range values {
		var mac Scalar
		mac.Mul(v, macKey)

		vRand, err := Random(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("scalar: building share %d: %w", i, err)
		}
		mRand, err := Random(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("scalar: building share %d: %w", i, err)
		}

		a[i] = ScalarShare{Share: vRand, MacShare: mRand}

		var vOther, mOther Scalar
		vOther.Sub(v, vRand)
		mOther.Sub(mac, mRand)
		b[i] = ScalarShare{Share: vOther, MacShare: mOther}
	}
	return a, b, nil
}
