package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"lmsportal/internal/session"
)

// stubResolver returns a fixed session for every request.
type stubResolver struct {
	sess *session.Session
}

func (s stubResolver) Current(ctx context.Context, r *http.Request) *session.Session {
	return s.sess
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("page"))
	})
}

func serve(t *testing.T, resolver SessionResolver, guard func(http.Handler) http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	handler := WithSession(resolver)(guard(okHandler()))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Run("anonymous redirects to login", func(t *testing.T) {
		w := serve(t, stubResolver{}, RequireAuth, "/student")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("logged in passes", func(t *testing.T) {
		w := serve(t, stubResolver{sess: &session.Session{Role: "STUDENT"}}, RequireAuth, "/student")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	t.Run("anonymous redirects to login", func(t *testing.T) {
		w := serve(t, stubResolver{}, RequireRole("ADMIN"), "/admin")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		w := serve(t, stubResolver{sess: &session.Session{Role: "STUDENT"}}, RequireRole("ADMIN"), "/admin")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role is denied even with a credential", func(t *testing.T) {
		sess := &session.Session{Credential: session.BearerCredential("tok")}
		w := serve(t, stubResolver{sess: sess}, RequireRole("STUDENT", "LIBRARIAN", "ADMIN"), "/student")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("matching role passes", func(t *testing.T) {
		w := serve(t, stubResolver{sess: &session.Session{Role: "LIBRARIAN"}}, RequireRole("LIBRARIAN", "ADMIN"), "/librarian")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "page", w.Body.String())
	})

	t.Run("admin allowed on librarian tree", func(t *testing.T) {
		w := serve(t, stubResolver{sess: &session.Session{Role: "ADMIN"}}, RequireRole("LIBRARIAN", "ADMIN"), "/librarian")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireAuthJSON(t *testing.T) {
	t.Run("anonymous gets a 401 body, not a redirect", func(t *testing.T) {
		w := serve(t, stubResolver{}, RequireAuthJSON, "/fragments/pending-returns")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
		assert.Empty(t, w.Header().Get("Location"))
	})

	t.Run("logged in passes", func(t *testing.T) {
		w := serve(t, stubResolver{sess: &session.Session{Role: "LIBRARIAN"}}, RequireAuthJSON, "/fragments/pending-returns")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWithSession_PopulatesContext(t *testing.T) {
	sess := &session.Session{ID: "sid-1", Role: "STUDENT"}
	var got *session.Session
	handler := WithSession(stubResolver{sess: sess})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = SessionFrom(r)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, sess, got)
}
