package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
	"lmsportal/internal/testutil"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func withSession(r *http.Request, userID int64, email, role string) *http.Request {
	sess := testutil.NewSession(userID, email, role)
	return r.WithContext(httpx.ContextWithSession(r.Context(), sess))
}

func TestAdminHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewMockAdminService(ctrl)
	handler := NewAdminHandler(svc, testRenderer(t))

	t.Run("renders pending users and panels", func(t *testing.T) {
		svc.EXPECT().ListPendingUsers(gomock.Any(), gomock.Any()).
			Return([]entity.Member{{ID: 9, Name: "New User", Email: "new@example.com", Role: "STUDENT", Status: entity.UserPending}}, nil)
		svc.EXPECT().ListMembers(gomock.Any(), gomock.Any()).
			Return([]entity.Member{{Status: entity.UserApproved}, {Status: entity.UserPending}}, nil)
		svc.EXPECT().ListBorrowRecords(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]entity.BorrowRecord{}, nil)

		w := httptest.NewRecorder()
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), 1, "admin@example.com", entity.RoleAdmin)

		handler.Dashboard(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "New User")
		assert.Contains(t, w.Body.String(), "Members by Status")
	})

	t.Run("empty queue shows the empty state", func(t *testing.T) {
		svc.EXPECT().ListPendingUsers(gomock.Any(), gomock.Any()).Return(nil, nil)
		svc.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(nil, nil)
		svc.EXPECT().ListBorrowRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), 1, "admin@example.com", entity.RoleAdmin)

		handler.Dashboard(w, r)

		assert.Contains(t, w.Body.String(), "No registrations waiting for review.")
	})

	t.Run("backend error surfaces its message", func(t *testing.T) {
		svc.EXPECT().ListPendingUsers(gomock.Any(), gomock.Any()).
			Return(nil, &api.Error{StatusCode: 502, Message: "upstream unavailable"})

		w := httptest.NewRecorder()
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin", nil), 1, "admin@example.com", entity.RoleAdmin)

		handler.Dashboard(w, r)

		assert.Contains(t, w.Body.String(), "upstream unavailable")
	})
}

func TestAdminHandler_ApproveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewMockAdminService(ctrl)
	handler := NewAdminHandler(svc, testRenderer(t))

	t.Run("success redirects with a notice", func(t *testing.T) {
		svc.EXPECT().ApproveUser(gomock.Any(), gomock.Any(), int64(9)).Return(nil)

		w := httptest.NewRecorder()
		r := withSession(testutil.NewFormRequest("/admin/users/approve", url.Values{"id": {"9"}}),
			1, "admin@example.com", entity.RoleAdmin)

		handler.ApproveUser(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		loc, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "/admin", loc.Path)
		assert.Equal(t, "User approved.", loc.Query().Get("notice"))
	})

	t.Run("backend error rides back in the query string", func(t *testing.T) {
		svc.EXPECT().ApproveUser(gomock.Any(), gomock.Any(), int64(9)).
			Return(&api.Error{StatusCode: 409, Message: "User already processed"})

		w := httptest.NewRecorder()
		r := withSession(testutil.NewFormRequest("/admin/users/approve", url.Values{"id": {"9"}}),
			1, "admin@example.com", entity.RoleAdmin)

		handler.ApproveUser(w, r)

		loc, err := url.Parse(w.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "User already processed", loc.Query().Get("error"))
		assert.Empty(t, loc.Query().Get("notice"))
	})

	t.Run("bad id never reaches the backend", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withSession(testutil.NewFormRequest("/admin/users/approve", url.Values{"id": {"abc"}}),
			1, "admin@example.com", entity.RoleAdmin)

		handler.ApproveUser(w, r)

		assert.Equal(t, http.StatusSeeOther, w.Code)
	})
}

func TestAdminHandler_MemberDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewMockAdminService(ctrl)
	handler := NewAdminHandler(svc, testRenderer(t))

	t.Run("shows the member and their borrow history", func(t *testing.T) {
		svc.EXPECT().GetMember(gomock.Any(), gomock.Any(), int64(9)).
			Return(&entity.Member{ID: 9, Name: "Asha Verma", Email: "asha@example.com",
				Role: "STUDENT", Status: entity.UserApproved, ActiveBorrows: 1, TotalBorrows: 4}, nil)
		svc.EXPECT().MemberBorrowHistory(gomock.Any(), gomock.Any(), int64(9)).
			Return([]entity.BorrowRecord{{ID: 3, BookTitle: "Coraline", Status: entity.BorrowReturned}}, nil)

		w := httptest.NewRecorder()
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin/members/detail?id=9", nil),
			1, "admin@example.com", entity.RoleAdmin)

		handler.MemberDetail(w, r)

		body := w.Body.String()
		assert.Contains(t, body, "Asha Verma")
		assert.Contains(t, body, "1 active / 4 total")
		assert.Contains(t, body, "Coraline")
	})

	t.Run("history failure still shows the member", func(t *testing.T) {
		svc.EXPECT().GetMember(gomock.Any(), gomock.Any(), int64(9)).
			Return(&entity.Member{ID: 9, Name: "Asha Verma", Email: "asha@example.com"}, nil)
		svc.EXPECT().MemberBorrowHistory(gomock.Any(), gomock.Any(), int64(9)).
			Return(nil, &api.Error{StatusCode: 502})

		w := httptest.NewRecorder()
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin/members/detail?id=9", nil),
			1, "admin@example.com", entity.RoleAdmin)

		handler.MemberDetail(w, r)

		assert.Contains(t, w.Body.String(), "Asha Verma")
		assert.Contains(t, w.Body.String(), "No borrows on record.")
	})

	t.Run("bad id is a 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := withSession(httptest.NewRequest(http.MethodGet, "/admin/members/detail?id=abc", nil),
			1, "admin@example.com", entity.RoleAdmin)

		handler.MemberDetail(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminHandler_Members(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewMockAdminService(ctrl)
	handler := NewAdminHandler(svc, testRenderer(t))

	members := make([]entity.Member, 25)
	for i := range members {
		members[i] = entity.Member{ID: int64(i + 1), Email: "m@example.com", Role: "STUDENT", Status: entity.UserApproved}
	}
	svc.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Return(members, nil)

	w := httptest.NewRecorder()
	r := withSession(httptest.NewRequest(http.MethodGet, "/admin/members?page=99", nil),
		1, "admin@example.com", entity.RoleAdmin)

	handler.Members(w, r)

	// Page 99 clamps to the last page of 25 members at 20 per page.
	assert.Contains(t, w.Body.String(), "Page 2 of 2")
}
