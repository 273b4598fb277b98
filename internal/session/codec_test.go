package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dailydiet/internal/session"
)

func TestPlainCodec_RoundTrip(t *testing.T) {
	codec := session.NewPlainCodec()

	value, err := codec.Issue("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", value)

	userID, err := codec.Decode(value)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestPlainCodec_EmptyValueFails(t *testing.T) {
	codec := session.NewPlainCodec()

	_, err := codec.Decode("")
	assert.Error(t, err)
}

func TestSignedCodec_RoundTrip(t *testing.T) {
	codec := session.NewSignedCodec("test-secret")

	value, err := codec.Issue("user-1")
	assert.NoError(t, err)
	assert.NotEqual(t, "user-1", value, "signed cookie must not be the raw id")

	userID, err := codec.Decode(value)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSignedCodec_RejectsTamperedToken(t *testing.T) {
	codec := session.NewSignedCodec("test-secret")

	value, err := codec.Issue("user-1")
	assert.NoError(t, err)

	_, err = codec.Decode(value + "x")
	assert.Error(t, err)
}

func TestSignedCodec_RejectsWrongSecret(t *testing.T) {
	issuer := session.NewSignedCodec("secret-a")
	verifier := session.NewSignedCodec("secret-b")

	value, err := issuer.Issue("user-1")
	assert.NoError(t, err)

	_, err = verifier.Decode(value)
	assert.Error(t, err)
}

func TestSignedCodec_RejectsRawUserID(t *testing.T) {
	codec := session.NewSignedCodec("test-secret")

	_, err := codec.Decode("user-1")
	assert.Error(t, err)
}
