package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "1"}).SignedString([]byte("k"))
	require.NoError(t, err)

	assert.False(t, TokenExpired("opaque-token", now))
	assert.False(t, TokenExpired("", now))
	assert.False(t, TokenExpired(noExp, now))
	assert.False(t, TokenExpired(signed(t, now.Add(time.Second)), now))
	assert.True(t, TokenExpired(signed(t, now), now))
	assert.True(t, TokenExpired(signed(t, now.Add(-time.Hour)), now))
}
