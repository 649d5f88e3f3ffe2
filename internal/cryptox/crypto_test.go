package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelVerifier(t *testing.T) {
	v := SentinelVerifier{}

	assert.True(t, v.Verify("password"))
	for _, bad := range []string{"", "wrong", "Password", "password ", "passwor"} {
		assert.False(t, v.Verify(bad), "candidate %q", bad)
	}
}

func TestArgon2Verifier_MatchesSentinelBehavior(t *testing.T) {
	v, err := NewArgon2Verifier(SentinelPassword)
	require.NoError(t, err)

	assert.True(t, v.Verify("password"))
	assert.False(t, v.Verify("wrong"))
	assert.False(t, v.Verify(""))
}

func TestNewArgon2Verifier_FreshSalt(t *testing.T) {
	a, err := NewArgon2Verifier("x")
	require.NoError(t, err)
	b, err := NewArgon2Verifier("x")
	require.NoError(t, err)

	assert.Len(t, a.salt, saltSize)
	assert.NotEqual(t, a.salt, b.salt)
	assert.NotEqual(t, a.verifier, b.verifier)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("salty")
	k1 := DeriveKey([]byte("pass"), salt)
	k2 := DeriveKey([]byte("pass"), salt)
	k3 := DeriveKey([]byte("pass"), []byte("other"))

	assert.Len(t, k1, 32)
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.Len(t, MakeVerifier(k1), 32)
}
