package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewManager(store, "test-secret", time.Hour, false)
}

func requestWithCookies(recorder *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range recorder.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestManager_LoginThenCurrent(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	created, err := m.Login(ctx, w, Identity{UserID: 101, Email: "asha@example.com", Name: "Asha", Role: "STUDENT"},
		BearerCredential("tok"))
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	got := m.Current(ctx, requestWithCookies(w))
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "STUDENT", got.Role)
	assert.Equal(t, "Bearer tok", got.Credential.AuthorizationHeader())
}

func TestManager_CurrentWithoutCookie(t *testing.T) {
	m := newTestManager(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, m.Current(context.Background(), r))
}

func TestManager_CurrentWithForgedCookie(t *testing.T) {
	m := newTestManager(t)

	forged, err := GenerateCookieToken("attacker-secret", "sid-x", "ADMIN", time.Hour)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: forged})
	assert.Nil(t, m.Current(context.Background(), r))
}

func TestManager_Logout(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	loginRec := httptest.NewRecorder()
	_, err := m.Login(ctx, loginRec, Identity{UserID: 101, Email: "asha@example.com", Role: "STUDENT"},
		BearerCredential("tok"))
	require.NoError(t, err)

	logoutRec := httptest.NewRecorder()
	m.Logout(ctx, logoutRec, requestWithCookies(loginRec))

	cleared := logoutRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)

	// The stored session is gone, so even the old cookie resolves nothing.
	assert.Nil(t, m.Current(ctx, requestWithCookies(loginRec)))
}
