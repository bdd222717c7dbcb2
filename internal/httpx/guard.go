package httpx

import (
	"context"
	"net/http"

	"lmsportal/internal/session"
)

// SessionResolver decouples the guards from the concrete session
// manager so handler tests can stub it.
type SessionResolver interface {
	Current(ctx context.Context, r *http.Request) *session.Session
}

const loginPath = "/login"

// WithSession resolves the request's session, if any, onto the context.
// It never blocks a request by itself; the role guards do that.
func WithSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s := resolver.Current(r.Context(), r); s != nil {
				r = r.WithContext(ContextWithSession(r.Context(), s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth gates a page tree on any logged-in session, redirecting
// anonymous requests to the login page. The check is synchronous: the
// session was resolved by WithSession, so there is no pending state.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r) == nil {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a page tree on the session holding one of the
// allowed roles. A session with a missing or unrecognized role is
// denied, same as no session: a credential without a role never grants
// access.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFrom(r)
			if s == nil {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			if !session.HasRole(s, roles...) {
				// Logged in but not allowed here: forbid rather than
				// bouncing through login again.
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuthJSON is the fragment-endpoint variant: a 401 body instead
// of a redirect, since the caller is a poller, not a navigation.
func RequireAuthJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r) == nil {
			JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "login required", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
