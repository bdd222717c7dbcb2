package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const CookieName = "lms_session"

// Manager ties the durable store to the browser cookie. Login persists
// first, then sets the cookie, so a crash between the two only costs a
// re-login. No network call happens here; callers authenticate against
// the backend first and hand the result in.
type Manager struct {
	store  *Store
	secret string
	ttl    time.Duration
	secure bool
}

func NewManager(store *Store, secret string, ttl time.Duration, secureCookies bool) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl, secure: secureCookies}
}

type Identity struct {
	UserID int64
	Email  string
	Name   string
	Role   string
}

// Login creates and persists a session for the identity and credential,
// then sets the signed session cookie on the response.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, id Identity, cred Credential) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:         uuid.New().String(),
		UserID:     id.UserID,
		Email:      id.Email,
		Name:       id.Name,
		Role:       id.Role,
		Credential: cred,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.ttl),
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	token, err := GenerateCookieToken(m.secret, sess.ID, sess.Role, m.ttl)
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// Logout deletes the stored session and expires the cookie. Safe to
// call without a valid session.
func (m *Manager) Logout(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if claims := m.claimsFrom(r); claims != nil {
		_ = m.store.Delete(ctx, claims.SID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current resolves the request's session. Any failure along the way
// (missing cookie, bad signature, expired token, purged row) yields
// nil, never an error: a broken session is just an absent one.
func (m *Manager) Current(ctx context.Context, r *http.Request) *Session {
	claims := m.claimsFrom(r)
	if claims == nil {
		return nil
	}
	sess, err := m.store.Get(ctx, claims.SID)
	if err != nil {
		return nil
	}
	return sess
}

func (m *Manager) claimsFrom(r *http.Request) *CookieClaims {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	claims, err := ParseCookieToken(m.secret, cookie.Value)
	if err != nil {
		return nil
	}
	return claims
}
