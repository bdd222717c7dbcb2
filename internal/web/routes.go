package web

import (
	"net/http"

	"lmsportal/internal/entity"
	"lmsportal/internal/httpx"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Admin     *AdminHandler
	Student   *StudentHandler
	Librarian *LibrarianHandler
	Reports   *ReportHandler
}

// NewRouter wires the portal's routes behind the middleware chain.
// Each role tree is gated by its own guard; a session whose role does
// not match gets a 403, and a session with no recognized role gets
// nothing at all.
func NewRouter(h Handlers, sessions httpx.SessionResolver, loginLimit *httpx.RateLimit) http.Handler {
	mux := http.NewServeMux()

	// Public pages.
	mux.HandleFunc("GET /", h.Auth.ShowLanding)
	mux.HandleFunc("GET /login", h.Auth.ShowLogin)
	mux.Handle("POST /login", loginLimit.Middleware(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("GET /admin/login", h.Auth.ShowAdminLogin)
	mux.Handle("POST /admin/login", loginLimit.Middleware(http.HandlerFunc(h.Auth.AdminLogin)))
	mux.HandleFunc("GET /register", h.Auth.ShowRegister)
	mux.Handle("POST /register", loginLimit.Middleware(http.HandlerFunc(h.Auth.Register)))
	mux.HandleFunc("GET /forgot-password", h.Auth.ShowForgotPassword)
	mux.HandleFunc("POST /forgot-password", h.Auth.ForgotPassword)
	mux.HandleFunc("GET /reset-password", h.Auth.ShowResetPassword)
	mux.HandleFunc("POST /reset-password", h.Auth.ResetPassword)
	mux.HandleFunc("POST /logout", h.Auth.Logout)

	// Student tree.
	student := http.NewServeMux()
	student.HandleFunc("GET /student", h.Student.Home)
	student.HandleFunc("POST /student/issue-requests", h.Student.RequestIssue)
	student.HandleFunc("GET /student/borrows", h.Student.Borrows)
	student.HandleFunc("GET /student/requests", h.Student.Requests)
	student.HandleFunc("POST /student/requests/cancel", h.Student.CancelIssueRequest)
	student.HandleFunc("POST /student/acquisitions", h.Student.CreateAcquisition)
	student.HandleFunc("POST /student/memberships", h.Student.CreateMembership)
	student.HandleFunc("GET /student/penalties", h.Student.Penalties)
	student.HandleFunc("POST /student/penalties/pay", h.Student.PayPenalty)
	student.HandleFunc("GET /student/waitlist", h.Student.Waitlist)
	student.HandleFunc("POST /student/waitlist/join", h.Student.JoinWaitlist)
	student.HandleFunc("POST /student/waitlist/leave", h.Student.LeaveWaitlist)
	student.HandleFunc("POST /student/subscription/activate", h.Student.ActivateSubscription)
	student.HandleFunc("POST /student/subscription/extend", h.Student.ExtendSubscription)
	mux.Handle("/student/", httpx.RequireRole(entity.RoleStudent)(student))
	mux.Handle("/student", httpx.RequireRole(entity.RoleStudent)(student))

	// Librarian tree. Admins can work the desk too.
	librarian := http.NewServeMux()
	librarian.HandleFunc("GET /librarian", h.Librarian.Dashboard)
	librarian.HandleFunc("POST /librarian/issue-requests/approve", h.Librarian.ApproveIssueRequest)
	librarian.HandleFunc("POST /librarian/issue-requests/reject", h.Librarian.RejectIssueRequest)
	librarian.HandleFunc("POST /librarian/issue-requests/bulk-approve", h.Librarian.BulkApprove)
	librarian.HandleFunc("POST /librarian/issue", h.Librarian.IssueDirect)
	librarian.HandleFunc("POST /librarian/acquisitions/approve", h.Librarian.ApproveAcquisition)
	librarian.HandleFunc("POST /librarian/acquisitions/reject", h.Librarian.RejectAcquisition)
	librarian.HandleFunc("POST /librarian/memberships/approve", h.Librarian.ApproveMembership)
	librarian.HandleFunc("POST /librarian/memberships/reject", h.Librarian.RejectMembership)
	librarian.HandleFunc("GET /librarian/returns", h.Librarian.Returns)
	librarian.HandleFunc("POST /librarian/returns", h.Librarian.ProcessReturn)
	librarian.HandleFunc("GET /librarian/penalties", h.Librarian.Penalties)
	librarian.HandleFunc("POST /librarian/penalties/compute", h.Librarian.ComputePenalty)
	librarian.HandleFunc("POST /librarian/penalties/reconcile", h.Librarian.ReconcilePenalties)
	librarian.HandleFunc("GET /librarian/books", h.Librarian.Books)
	librarian.HandleFunc("GET /librarian/books/form", h.Librarian.BookForm)
	librarian.HandleFunc("POST /librarian/books", h.Librarian.SaveBook)
	librarian.HandleFunc("POST /librarian/books/delete", h.Librarian.DeleteBook)
	librarian.HandleFunc("GET /librarian/waitlist", h.Librarian.BookQueue)
	librarianGuard := httpx.RequireRole(entity.RoleLibrarian, entity.RoleAdmin)
	mux.Handle("/librarian/", librarianGuard(librarian))
	mux.Handle("/librarian", librarianGuard(librarian))

	// The returns page polls this; JSON guard instead of a redirect.
	mux.Handle("GET /fragments/pending-returns",
		httpx.RequireAuthJSON(librarianGuard(http.HandlerFunc(h.Librarian.PendingReturnsCount))))

	// Admin tree.
	admin := http.NewServeMux()
	admin.HandleFunc("GET /admin", h.Admin.Dashboard)
	admin.HandleFunc("POST /admin/users/approve", h.Admin.ApproveUser)
	admin.HandleFunc("POST /admin/users/reject", h.Admin.RejectUser)
	admin.HandleFunc("GET /admin/members", h.Admin.Members)
	admin.HandleFunc("GET /admin/members/detail", h.Admin.MemberDetail)
	admin.HandleFunc("POST /admin/members/suspend", h.Admin.SuspendMember)
	admin.HandleFunc("GET /admin/reports", h.Reports.Reports)
	admin.HandleFunc("GET /admin/reports/download", h.Reports.Download)
	adminGuard := httpx.RequireRole(entity.RoleAdmin)
	mux.Handle("/admin/", adminGuard(admin))
	mux.Handle("/admin", adminGuard(admin))

	// Recovery sits inside AccessLog so it sees the wrapped writer and
	// can tell whether the handler already started the response.
	var handler http.Handler = mux
	handler = httpx.RequestSizeLimit(10 << 20)(handler)
	handler = httpx.Recovery(handler)
	handler = httpx.AccessLog(handler)
	handler = httpx.WithSession(sessions)(handler)
	handler = httpx.SecurityHeaders(handler)
	handler = httpx.RequestID(handler)
	return handler
}
