package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivelog/drivelog-api/internal/password"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := password.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$v=19$"))
	assert.True(t, password.Verify("secret123", encoded))
	assert.False(t, password.Verify("wrong-password", encoded))
}

func TestHash_Salted(t *testing.T) {
	// Same password must not produce the same encoded hash.
	a, err := password.Hash("secret123")
	require.NoError(t, err)
	b, err := password.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, password.Verify("secret123", a))
	assert.True(t, password.Verify("secret123", b))
}

func TestVerify_EmbeddedParams(t *testing.T) {
	// Verification reads parameters from the string, so hashes produced
	// with different cost settings stay verifiable.
	encoded := "$argon2id$v=19$m=32768,t=2,p=2$c29tZXNhbHRzb21lc2FsdA$WhAGItB1M1JI9JKR9lLqEmA0v6t2bsqJvwNm2Fj0lyk"
	// The stored key was not derived from this password, mismatch only.
	assert.False(t, password.Verify("secret123", encoded))
}

func TestVerify_FailsClosed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not a phc string", encoded: "plaintext"},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{name: "unsupported version", encoded: "$argon2id$v=18$m=65536,t=3,p=4$c2FsdA$aGFzaA"},
		{name: "malformed params", encoded: "$argon2id$v=19$nonsense$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=65536,t=3,p=4$!!!$aGFzaA"},
		{name: "bad key encoding", encoded: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, password.Verify("secret123", tt.encoded))
		})
	}
}
