package scalar

// ScalarShare is one party's half of a MAC-authenticated additive secret
// share: a pair of field elements (share, mac share). Two parties' shares
// open to a plaintext v = s1 + s2 with authentication tag t = m1 + m2,
// valid iff t = v * mac_key (spec.md §3, invariant I1).
type ScalarShare struct {
	Share    Scalar `json:"share"`
	MacShare Scalar `json:"mac_share"`
}

// Add returns the componentwise sum of s and other.
func (s ScalarShare) Add(other ScalarShare) ScalarShare {
	var out ScalarShare
	out.Share.Add(s.Share, other.Share)
	out.MacShare.Add(s.MacShare, other.MacShare)
	return out
}

// Open combines two parties' shares into the plaintext value and its MAC tag.
func Open(a, b ScalarShare) (value, tag Scalar) {
	sum := a.Add(b)
	return sum.Share, sum.MacShare
}

// Valid reports whether the opened (value, tag) pair is authenticated under
// macKey, i.e. tag == value * macKey (spec.md §3, invariant I1).
func Valid(value, tag, macKey Scalar) bool {
	var want Scalar
	want.Mul(value, macKey)
	return want.Eq(tag)
}
