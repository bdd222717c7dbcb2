package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieToken_RoundTrip(t *testing.T) {
	token, err := GenerateCookieToken("secret", "sid-1", "STUDENT", time.Hour)
	require.NoError(t, err)

	claims, err := ParseCookieToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SID)
	assert.Equal(t, "STUDENT", claims.Role)
}

func TestCookieToken_WrongSecret(t *testing.T) {
	token, err := GenerateCookieToken("secret", "sid-1", "STUDENT", time.Hour)
	require.NoError(t, err)

	_, err = ParseCookieToken("other-secret", token)
	assert.Error(t, err)
}

func TestCookieToken_Tampered(t *testing.T) {
	token, err := GenerateCookieToken("secret", "sid-1", "STUDENT", time.Hour)
	require.NoError(t, err)

	_, err = ParseCookieToken("secret", token+"x")
	assert.Error(t, err)
}

func TestCookieToken_Expired(t *testing.T) {
	token, err := GenerateCookieToken("secret", "sid-1", "STUDENT", -time.Minute)
	require.NoError(t, err)

	_, err = ParseCookieToken("secret", token)
	assert.Error(t, err)
}
