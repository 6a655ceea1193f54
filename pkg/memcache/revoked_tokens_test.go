package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokeAndCheck(t *testing.T) {
	s := NewRevokedTokens()

	assert.False(t, s.IsRevoked("tok"))

	s.Revoke("tok", time.Minute)
	assert.True(t, s.IsRevoked("tok"))
	assert.False(t, s.IsRevoked("other"))
}

func TestRevokeIgnoresNonPositiveTTL(t *testing.T) {
	s := NewRevokedTokens()

	s.Revoke("tok", 0)
	assert.False(t, s.IsRevoked("tok"))

	s.Revoke("tok", -time.Second)
	assert.False(t, s.IsRevoked("tok"))
}

func TestRevocationExpires(t *testing.T) {
	s := NewRevokedTokens()

	s.Revoke("tok", 10*time.Millisecond)
	assert.True(t, s.IsRevoked("tok"))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, s.IsRevoked("tok"))
}
