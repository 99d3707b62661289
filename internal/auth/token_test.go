package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, expiresAt, err := tm.GenerateToken("john")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
	assert.WithinDuration(t, time.Now().Add(time.Minute), expiresAt, 2*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "john", claims.Subject)
}

func TestGenerateToken_ExpiryIsIssuedAtPlusTTL(t *testing.T) {
	ttl := 300000 * time.Millisecond
	tm := NewTokenManager("test-secret", ttl)

	token, expiresAt, err := tm.GenerateToken("john")
	require.NoError(t, err)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, claims.IssuedAt.Add(ttl), claims.ExpiresAt.Time)
	assert.Equal(t, claims.ExpiresAt.Time, expiresAt)
}

func TestParseToken_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", 10*time.Millisecond)

	token, _, err := tm.GenerateToken("john")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // jwt timestamps have second precision

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_TamperedClaims(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	token, _, err := tm.GenerateToken("john")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(decoded, &payload))
	payload["sub"] = "mallory"
	altered, err := json.Marshal(payload)
	require.NoError(t, err)

	parts[1] = base64.RawURLEncoding.EncodeToString(altered)
	_, err = tm.ParseToken(strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestParseToken_Malformed(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Minute)

	_, err := tm.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_WrongKey(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Minute)
	verifier := NewTokenManager("secret-two", time.Minute)

	token, _, err := issuer.GenerateToken("john")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenSignature)
}
