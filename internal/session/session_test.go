package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCredential_AuthorizationHeader(t *testing.T) {
	t.Run("bearer", func(t *testing.T) {
		c := BearerCredential("tok")
		assert.Equal(t, "Bearer tok", c.AuthorizationHeader())
		assert.False(t, c.IsZero())
	})

	t.Run("basic", func(t *testing.T) {
		c := BasicCredential("user@example.com", "pw")
		assert.Equal(t, "Basic dXNlckBleGFtcGxlLmNvbTpwdw==", c.AuthorizationHeader())
	})

	t.Run("zero attaches nothing", func(t *testing.T) {
		var c Credential
		assert.Equal(t, "", c.AuthorizationHeader())
		assert.True(t, c.IsZero())
	})
}

func TestHasRole(t *testing.T) {
	student := &Session{Role: "STUDENT"}

	t.Run("matching role grants", func(t *testing.T) {
		assert.True(t, HasRole(student, "STUDENT"))
		assert.True(t, HasRole(student, "LIBRARIAN", "STUDENT"))
	})

	t.Run("wrong role denies", func(t *testing.T) {
		assert.False(t, HasRole(student, "ADMIN"))
	})

	t.Run("missing role denies even with a credential", func(t *testing.T) {
		withCred := &Session{Credential: BearerCredential("tok")}
		assert.False(t, HasRole(withCred, "STUDENT", "LIBRARIAN", "ADMIN"))
	})

	t.Run("nil session denies", func(t *testing.T) {
		assert.False(t, HasRole(nil, "STUDENT"))
	})

	t.Run("empty allowed set denies", func(t *testing.T) {
		assert.False(t, HasRole(student))
	})
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	live := &Session{ExpiresAt: now.Add(time.Hour)}
	dead := &Session{ExpiresAt: now.Add(-time.Hour)}

	assert.False(t, live.Expired(now))
	assert.True(t, dead.Expired(now))
}
