package session

import (
	"encoding/base64"
	"time"
)

// Credential is what gets attached to outbound backend requests: either
// a bearer token from the token login flow or a Basic pair from the
// admin flow. The zero value means "not logged in" and attaches nothing.
type Credential struct {
	Bearer    string
	BasicUser string
	BasicPass string
}

func BearerCredential(token string) Credential {
	return Credential{Bearer: token}
}

func BasicCredential(user, pass string) Credential {
	return Credential{BasicUser: user, BasicPass: pass}
}

func (c Credential) IsZero() bool {
	return c.Bearer == "" && c.BasicUser == ""
}

// AuthorizationHeader returns the Authorization header value for this
// credential, or "" when no credential is held.
func (c Credential) AuthorizationHeader() string {
	switch {
	case c.Bearer != "":
		return "Bearer " + c.Bearer
	case c.BasicUser != "":
		raw := c.BasicUser + ":" + c.BasicPass
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
	default:
		return ""
	}
}

// Session is the portal's server-side record of a logged-in user. It is
// the only state the portal owns; every domain entity stays with the
// backend.
type Session struct {
	ID         string
	UserID     int64
	Email      string
	Name       string
	Role       string
	Credential Credential
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// HasRole is the single authorization predicate used by every route
// guard. A nil session, an empty role, or a role outside the allowed
// set all deny; a credential without a recognized role never grants
// access.
func HasRole(s *Session, allowed ...string) bool {
	if s == nil || s.Role == "" {
		return false
	}
	for _, role := range allowed {
		if s.Role == role {
			return true
		}
	}
	return false
}
