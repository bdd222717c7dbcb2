package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/session"
	"lmsportal/internal/testutil"
)

func newAuthHandler(t *testing.T, ctrl *gomock.Controller) (*AuthHandler, *MockAuthService, *session.Manager) {
	t.Helper()
	store, err := session.OpenStore(filepath.Join(t.TempDir(), "sessions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	sessions := session.NewManager(store, "test-secret", time.Hour, false)

	svc := NewMockAuthService(ctrl)
	return NewAuthHandler(svc, sessions, testRenderer(t)), svc, sessions
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, svc, sessions := newAuthHandler(t, ctrl)

	t.Run("success sets the session cookie and routes by role", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), api.LoginRequest{Email: "asha@example.com", Password: "Passw0rd!"}).
			Return(&api.LoginResponse{
				Token: "jwt-token",
				User:  entity.UserSummary{ID: 101, Email: "asha@example.com", Name: "Asha", Role: entity.RoleStudent},
			}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/login", url.Values{
			"email": {"asha@example.com"}, "password": {"Passw0rd!"},
		})

		h.Login(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/student", w.Header().Get("Location"))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)

		// The stored session carries the bearer credential.
		follow := httptest.NewRequest(http.MethodGet, "/student", nil)
		follow.AddCookie(cookies[0])
		sess := sessions.Current(follow.Context(), follow)
		require.NotNil(t, sess)
		assert.Equal(t, "Bearer jwt-token", sess.Credential.AuthorizationHeader())
	})

	t.Run("librarian lands on the desk", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&api.LoginResponse{
				Token: "jwt-token",
				User:  entity.UserSummary{ID: 55, Email: "ravi@example.com", Role: entity.RoleLibrarian},
			}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/login", url.Values{
			"email": {"ravi@example.com"}, "password": {"Passw0rd!"},
		})

		h.Login(w, r)

		assert.Equal(t, "/librarian", w.Header().Get("Location"))
	})

	t.Run("unknown role refuses the session entirely", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(&api.LoginResponse{
				Token: "jwt-token",
				User:  entity.UserSummary{ID: 9, Email: "odd@example.com", Role: ""},
			}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/login", url.Values{
			"email": {"odd@example.com"}, "password": {"Passw0rd!"},
		})

		h.Login(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Contains(t, w.Body.String(), "no role assigned")
	})

	t.Run("bad credentials show the backend message", func(t *testing.T) {
		svc.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(nil, &api.Error{StatusCode: 401, Message: "Invalid email or password"})

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/login", url.Values{
			"email": {"asha@example.com"}, "password": {"wrong"},
		})

		h.Login(w, r)

		assert.Contains(t, w.Body.String(), "Invalid email or password")
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid form never reaches the backend", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/login", url.Values{"email": {"not-an-email"}})

		h.Login(w, r)

		assert.Contains(t, w.Body.String(), "valid email address")
	})
}

func TestAuthHandler_AdminLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, svc, _ := newAuthHandler(t, ctrl)

	t.Run("verifies the basic pair and requires the admin role", func(t *testing.T) {
		svc.EXPECT().Me(gomock.Any(), session.BasicCredential("root@example.com", "secret")).
			Return(&entity.UserSummary{ID: 1, Email: "root@example.com", Role: entity.RoleAdmin}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/admin/login", url.Values{
			"email": {"root@example.com"}, "password": {"secret"},
		})

		h.AdminLogin(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
		require.Len(t, w.Result().Cookies(), 1)
	})

	t.Run("non-admin account is refused", func(t *testing.T) {
		svc.EXPECT().Me(gomock.Any(), gomock.Any()).
			Return(&entity.UserSummary{ID: 101, Email: "asha@example.com", Role: entity.RoleStudent}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/admin/login", url.Values{
			"email": {"asha@example.com"}, "password": {"Passw0rd!"},
		})

		h.AdminLogin(w, r)

		assert.Contains(t, w.Body.String(), "administrators only")
		assert.Empty(t, w.Result().Cookies())
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, _, _ := newAuthHandler(t, ctrl)

	w := httptest.NewRecorder()
	h.Logout(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, w.Result().Cookies(), 1)
	assert.Equal(t, -1, w.Result().Cookies()[0].MaxAge)
}

func TestAuthHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h, svc, _ := newAuthHandler(t, ctrl)

	t.Run("weak password is rejected locally", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/register", url.Values{
			"name": {"Asha"}, "email": {"asha@example.com"},
			"role": {"STUDENT"}, "password": {"short"},
		})

		h.Register(w, r)

		assert.Contains(t, w.Body.String(), "at least 8 characters")
	})

	t.Run("success points at the approval wait", func(t *testing.T) {
		svc.EXPECT().Register(gomock.Any(), gomock.Any(), "", gomock.Nil()).
			Return(&entity.UserSummary{ID: 9, Status: entity.UserPending}, nil)

		w := httptest.NewRecorder()
		r := testutil.NewFormRequest("/register", url.Values{
			"name": {"Asha"}, "email": {"asha@example.com"},
			"role": {"STUDENT"}, "password": {"Passw0rd1"},
		})

		h.Register(w, r)

		loc, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/login", loc.Path)
		assert.Contains(t, loc.Query().Get("notice"), "approves your account")
	})
}
