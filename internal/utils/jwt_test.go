package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken_RoundTrip(t *testing.T) {
	at, err := NewAccessToken("test-secret", 42, "admin", 15)
	require.NoError(t, err)
	require.NotEmpty(t, at.Token)

	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"])
	assert.Equal(t, "admin", claims["role"])
	assert.InDelta(t, time.Now().Add(15*time.Minute).Unix(), claims["exp"], 5)
}

func TestNewAccessToken_RejectsWrongSecret(t *testing.T) {
	at, err := NewAccessToken("right-secret", 1, "member", 15)
	require.NoError(t, err)

	_, err = jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("wrong-secret"), nil
	})
	assert.Error(t, err)
}

func TestNewRefreshToken_UniqueAndLong(t *testing.T) {
	a, err := NewRefreshToken(7)
	require.NoError(t, err)
	b, err := NewRefreshToken(7)
	require.NoError(t, err)

	assert.Len(t, a.Raw, 96)
	assert.NotEqual(t, a.Raw, b.Raw)
	assert.WithinDuration(t, time.Now().UTC().Add(7*24*time.Hour), a.Exp, time.Minute)
}

func TestNewResetToken_Expiry(t *testing.T) {
	rt, err := NewResetToken(30)
	require.NoError(t, err)
	assert.Len(t, rt.Raw, 64)
	assert.WithinDuration(t, time.Now().UTC().Add(30*time.Minute), rt.Exp, time.Minute)
}

func TestHashTokenRaw(t *testing.T) {
	h1 := HashTokenRaw("some-token")
	h2 := HashTokenRaw("some-token")
	h3 := HashTokenRaw("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64) // sha256 hex
}
