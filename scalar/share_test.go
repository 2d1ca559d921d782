package scalar_test

import (
	"crypto/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/renproject/dealer/scalar"
)

var _ = Describe("ScalarShare", func() {
	Specify("a value shared via BuildAuthenticatedShares opens and authenticates (I1)", func() {
		macKey, err := Random(rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		n := 16
		values := make([]Scalar, n)
		for i := range values {
			values[i], err = Random(rand.Reader)
			Expect(err).NotTo(HaveOccurred())
		}

		a, b, err := BuildAuthenticatedShares(macKey, values, rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(HaveLen(n))
		Expect(b).To(HaveLen(n))

		for i := range values {
			value, tag := Open(a[i], b[i])
			Expect(value.Eq(values[i])).To(BeTrue())
			Expect(Valid(value, tag, macKey)).To(BeTrue())
		}
	})

	Specify("individual shares are not equal to the plaintext (I2, sanity)", func() {
		macKey, err := Random(rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		value, err := Random(rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		a, _, err := BuildAuthenticatedShares(macKey, []Scalar{value}, rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		Expect(a[0].Share.Eq(value)).To(BeFalse())
	})
})
