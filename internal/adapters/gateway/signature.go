package gateway

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Signer derives the gateway signature: a sha256 hex digest over the profile
// field tuple concatenated without separators, with the shared key appended.
type Signer struct {
	secret string
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: secret}
}

func (s *Signer) Sign(fields ...string) string {
	digest := sha256.Sum256([]byte(strings.Join(fields, "") + s.secret))
	return hex.EncodeToString(digest[:])
}

func (s *Signer) Verify(candidate string, fields ...string) bool {
	expected := s.Sign(fields...)
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(candidate)), []byte(expected)) == 1
}

// Profile names a gateway integration variant. Variants differ only in which
// fields enter the signature, so the reconciliation flow stays shared.
type Profile string

const (
	// ProfileSelfwork signs the payment request over the full line-item tuple
	// and the callback over order id and amount.
	ProfileSelfwork Profile = "selfwork"
	// ProfileSelfworkLegacy signs both directions over order id and amount only.
	ProfileSelfworkLegacy Profile = "selfwork-legacy"
)

func (p Profile) Valid() bool {
	return p == ProfileSelfwork || p == ProfileSelfworkLegacy
}

func (p Profile) RequestFields(r *PaymentRequest) []string {
	if p == ProfileSelfworkLegacy {
		return []string{r.OrderID, r.Amount()}
	}
	return []string{r.OrderID, r.Amount(), r.ItemName, r.ItemQuantity(), r.ItemAmount()}
}

func (p Profile) CallbackFields(orderID, amount string) []string {
	return []string{orderID, amount}
}
