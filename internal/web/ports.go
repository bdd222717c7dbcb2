package web

import (
	"context"
	"io"

	"lmsportal/internal/api"
	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// The handlers depend on narrow slices of the API client so tests can
// mock exactly the calls a view makes. *api.Client satisfies all of
// them.

type AuthService interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Me(ctx context.Context, cred session.Credential) (*entity.UserSummary, error)
	Register(ctx context.Context, req api.RegisterRequest, idProofName string, idProof io.Reader) (*entity.UserSummary, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AdminService interface {
	ListPendingUsers(ctx context.Context, cred session.Credential) ([]entity.Member, error)
	ApproveUser(ctx context.Context, cred session.Credential, id int64) error
	RejectUser(ctx context.Context, cred session.Credential, id int64, reason string) error
	ListMembers(ctx context.Context, cred session.Credential) ([]entity.Member, error)
	GetMember(ctx context.Context, cred session.Credential, id int64) (*entity.Member, error)
	MemberBorrowHistory(ctx context.Context, cred session.Credential, id int64) ([]entity.BorrowRecord, error)
	SuspendMember(ctx context.Context, cred session.Credential, id int64) error
	ListBorrowRecords(ctx context.Context, cred session.Credential, filter api.BorrowFilter) ([]entity.BorrowRecord, error)
}

type CatalogService interface {
	SearchBooks(ctx context.Context, cred session.Credential, filter api.BookFilter) ([]entity.Book, error)
	GetBook(ctx context.Context, cred session.Credential, id int64) (*entity.Book, error)
	CreateBook(ctx context.Context, cred session.Credential, in api.BookInput) (*entity.Book, error)
	UpdateBook(ctx context.Context, cred session.Credential, id int64, in api.BookInput) (*entity.Book, error)
	DeleteBook(ctx context.Context, cred session.Credential, id int64) error
	BookWaitlist(ctx context.Context, cred session.Credential, bookID int64) ([]entity.WaitlistEntry, error)
}

type CirculationService interface {
	CreateIssueRequest(ctx context.Context, cred session.Credential, bookID int64) (*entity.IssueRequest, error)
	MyIssueRequests(ctx context.Context, cred session.Credential) ([]entity.IssueRequest, error)
	ListIssueRequests(ctx context.Context, cred session.Credential, status string, page, size int) ([]entity.IssueRequest, error)
	ApproveIssueRequest(ctx context.Context, cred session.Credential, id int64, expectedDueDate string) error
	RejectIssueRequest(ctx context.Context, cred session.Credential, id int64, reason string) error
	CancelIssueRequest(ctx context.Context, cred session.Credential, id int64) error
	BulkApproveIssueRequests(ctx context.Context, cred session.Credential, ids []int64) error
	IssueBook(ctx context.Context, cred session.Credential, studentID, bookID int64, dueDate string) (*entity.BorrowRecord, error)
	MonthlyRequestCount(ctx context.Context, cred session.Credential) (*entity.MonthlyQuota, error)
	ListBorrowRecords(ctx context.Context, cred session.Credential, filter api.BorrowFilter) ([]entity.BorrowRecord, error)
	PendingReturns(ctx context.Context, cred session.Credential, overdueOnly bool) ([]entity.BorrowRecord, error)
	MyBorrowHistory(ctx context.Context, cred session.Credential) ([]entity.BorrowRecord, error)
	ProcessReturn(ctx context.Context, cred session.Credential, borrowRecordID int64, damaged, lost bool) error
}

type RequestService interface {
	CreateAcquisitionRequest(ctx context.Context, cred session.Credential, in api.AcquisitionInput) (*entity.AcquisitionRequest, error)
	MyAcquisitionRequests(ctx context.Context, cred session.Credential) ([]entity.AcquisitionRequest, error)
	ListAcquisitionRequests(ctx context.Context, cred session.Credential, status string) ([]entity.AcquisitionRequest, error)
	ApproveAcquisitionRequest(ctx context.Context, cred session.Credential, id int64) error
	RejectAcquisitionRequest(ctx context.Context, cred session.Credential, id int64, reason string) error
	CreateMembershipRequest(ctx context.Context, cred session.Credential, pkg string) (*entity.MembershipRequest, error)
	MyMembershipRequests(ctx context.Context, cred session.Credential) ([]entity.MembershipRequest, error)
	ListMembershipRequests(ctx context.Context, cred session.Credential, status string) ([]entity.MembershipRequest, error)
	ApproveMembershipRequest(ctx context.Context, cred session.Credential, id int64) error
	RejectMembershipRequest(ctx context.Context, cred session.Credential, id int64, reason string) error
}

type PenaltyService interface {
	PendingPenalties(ctx context.Context, cred session.Credential) ([]entity.Penalty, error)
	MemberPenalties(ctx context.Context, cred session.Credential, memberID int64) ([]entity.Penalty, error)
	PayPenalty(ctx context.Context, cred session.Credential, borrowRecordID int64, amount float64) error
	ComputePenalty(ctx context.Context, cred session.Credential, borrowRecordID int64) (*entity.Penalty, error)
	ReconcilePenalties(ctx context.Context, cred session.Credential) error
	SubscriptionStatus(ctx context.Context, cred session.Credential) (*entity.Subscription, error)
	SubscriptionPackages(ctx context.Context, cred session.Credential) ([]entity.SubscriptionPackage, error)
	ActivateSubscription(ctx context.Context, cred session.Credential, pkg string) error
	ExtendSubscription(ctx context.Context, cred session.Credential, pkg string) error
}

type WaitlistService interface {
	JoinWaitlist(ctx context.Context, cred session.Credential, bookID int64) (*entity.WaitlistEntry, error)
	LeaveWaitlist(ctx context.Context, cred session.Credential, bookID int64) error
	MyWaitlist(ctx context.Context, cred session.Credential) ([]entity.WaitlistEntry, error)
	WaitlistPosition(ctx context.Context, cred session.Credential, bookID int64) (*entity.WaitlistEntry, error)
}

type ReportService interface {
	DownloadReport(ctx context.Context, cred session.Credential, reportType, format string) (*api.Blob, error)
	PopularBooks(ctx context.Context, cred session.Credential) ([]entity.Book, error)
}
