// Package admission implements the three ordered checks a submitted request
// must pass before it reaches the pairing engine (spec.md §4.4): a size
// cap, a party-ID domain check, and ECDSA signature verification.
package admission

import (
	"crypto/sha256"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/renproject/dealer/wire"
)

// Submission is the raw material a transport layer collects before calling
// Admit: the claimed request ID and party, the decoded body, and the
// signature presented for it.
type Submission struct {
	RequestID    wire.RequestId
	PartyID      wire.PartyId
	Request      wire.DealerRequest
	SignatureDER []byte
}

// Admit runs the three checks of spec.md §4.4 in order, short-circuiting on
// the first failure. A nil error means s is safe to hand to the pairing
// engine as a Job.
func Admit(s Submission) error {
	if s.Request.TotalValues() > wire.MaxRequestSize {
		return wire.NewBadRequest("request size too large")
	}

	if !s.PartyID.Valid() {
		return wire.NewBadRequest("invalid party ID")
	}

	if err := verifySignature(s); err != nil {
		return wire.NewUnauthorized("invalid signature")
	}

	return nil
}

// verifySignature checks s.SignatureDER against sha256(rid || canonical
// body), using the SEC1-encoded public key the request itself names for
// s.PartyID (spec.md §6.3).
func verifySignature(s Submission) error {
	keyBytes := s.Request.KeyFor(s.PartyID)
	pubKey, err := secp256k1.ParsePubKey(keyBytes)
	if err != nil {
		return fmt.Errorf("admission: parsing public key: %w", err)
	}

	sig, err := ecdsa.ParseDERSignature(s.SignatureDER)
	if err != nil {
		return fmt.Errorf("admission: parsing signature: %w", err)
	}

	body, err := s.Request.CanonicalBytes()
	if err != nil {
		return fmt.Errorf("admission: encoding canonical body: %w", err)
	}

	ridBytes := s.RequestID.LittleEndianBytes()
	digest := sha256.Sum256(append(ridBytes[:], body...))

	if !sig.Verify(digest[:], pubKey) {
		return fmt.Errorf("admission: signature does not verify")
	}
	return nil
}
