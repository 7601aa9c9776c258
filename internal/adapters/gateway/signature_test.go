package gateway

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignerSign(t *testing.T) {
	signer := NewSigner("api_key")

	digest := signer.Sign("order_1", "300000", "Модуль A1", "1", "300000")

	raw := sha256.Sum256([]byte("order_1" + "300000" + "Модуль A1" + "1" + "300000" + "api_key"))
	assert.Equal(t, hex.EncodeToString(raw[:]), digest)
	// deterministic
	assert.Equal(t, digest, signer.Sign("order_1", "300000", "Модуль A1", "1", "300000"))
}

func TestSignerFieldSensitivity(t *testing.T) {
	signer := NewSigner("api_key")
	base := []string{"order_1", "300000", "Модуль A1", "1", "300000"}
	digest := signer.Sign(base...)

	for i := range base {
		changed := make([]string, len(base))
		copy(changed, base)
		changed[i] = changed[i] + "x"
		assert.NotEqual(t, digest, signer.Sign(changed...), "field %d must affect digest", i)
	}

	assert.NotEqual(t, digest, NewSigner("other_key").Sign(base...))
}

func TestSignerVerify(t *testing.T) {
	signer := NewSigner("api_key")
	digest := signer.Sign("order_1", "250000")

	assert.True(t, signer.Verify(digest, "order_1", "250000"))
	assert.True(t, signer.Verify(digest, "order_1", "250000"), "verify must be repeatable")
	assert.False(t, signer.Verify(digest, "order_2", "250000"))
	assert.False(t, signer.Verify("deadbeef", "order_1", "250000"))
}

func TestProfileFields(t *testing.T) {
	req := &PaymentRequest{
		OrderID:       "order_1",
		ItemName:      "Модуль A1",
		AmountKop:     300000,
		ItemAmountKop: 300000,
		Quantity:      1,
	}

	assert.Equal(t,
		[]string{"order_1", "300000", "Модуль A1", "1", "300000"},
		ProfileSelfwork.RequestFields(req),
	)
	assert.Equal(t,
		[]string{"order_1", "300000"},
		ProfileSelfworkLegacy.RequestFields(req),
	)
	assert.Equal(t,
		[]string{"order_1", "300000"},
		ProfileSelfwork.CallbackFields("order_1", "300000"),
	)

	assert.True(t, ProfileSelfwork.Valid())
	assert.True(t, ProfileSelfworkLegacy.Valid())
	assert.False(t, Profile("unknown").Valid())
}
