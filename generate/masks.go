package generate

import (
	"io"

	"github.com/renproject/dealer/scalar"
	"github.com/renproject/dealer/wire"
)

// Masks draws two independent vectors of input masks, one per party, and
// delivers to each party the cleartext of its own masks plus shares of both
// sides (spec.md §4.2, invariant I6). a is the fragment for the party that
// will blind its inputs with maskA; b is the fragment for the party that
// will blind its inputs with maskB.
func Masks(n int, macKey scalar.Scalar, rng io.Reader) (a, b wire.InputMasks, err error) {
	maskA, err := randomScalars(n, rng)
	if err != nil {
		return wire.InputMasks{}, wire.InputMasks{}, err
	}
	maskB, err := randomScalars(n, rng)
	if err != nil {
		return wire.InputMasks{}, wire.InputMasks{}, err
	}

	aSharesOfA, bSharesOfA, err := scalar.BuildAuthenticatedShares(macKey, maskA, rng)
	if err != nil {
		return wire.InputMasks{}, wire.InputMasks{}, err
	}
	aSharesOfB, bSharesOfB, err := scalar.BuildAuthenticatedShares(macKey, maskB, rng)
	if err != nil {
		return wire.InputMasks{}, wire.InputMasks{}, err
	}

	a = wire.InputMasks{
		Cleartext:          maskA,
		OwnShares:          aSharesOfA,
		CounterpartyShares: aSharesOfB,
	}
	b = wire.InputMasks{
		Cleartext:          maskB,
		OwnShares:          bSharesOfB,
		CounterpartyShares: bSharesOfA,
	}
	return a, b, nil
}
