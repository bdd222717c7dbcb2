package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// CreateIssueRequest asks to borrow a book; lands PENDING for a
// librarian to decide.
func (c *Client) CreateIssueRequest(ctx context.Context, cred session.Credential, bookID int64) (*entity.IssueRequest, error) {
	var out entity.IssueRequest
	if err := c.post(ctx, cred, "/api/issue-requests", map[string]int64{"bookId": bookID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyIssueRequests(ctx context.Context, cred session.Credential) ([]entity.IssueRequest, error) {
	var out []entity.IssueRequest
	if err := c.get(ctx, cred, "/api/issue-requests/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListIssueRequests is the staff listing, optionally filtered by status
// and paged server-side.
func (c *Client) ListIssueRequests(ctx context.Context, cred session.Credential, status string, page, size int) ([]entity.IssueRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
	var out []entity.IssueRequest
	if err := c.get(ctx, cred, "/api/issue-requests", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApproveIssueRequest approves a request; expectedDueDate (ISO date) is
// optional and defaults server-side.
func (c *Client) ApproveIssueRequest(ctx context.Context, cred session.Credential, id int64, expectedDueDate string) error {
	var body any
	if expectedDueDate != "" {
		body = map[string]string{"expectedDueDate": expectedDueDate}
	}
	return c.patch(ctx, cred, fmt.Sprintf("/api/issue-requests/%d/approve", id), body, nil)
}

func (c *Client) RejectIssueRequest(ctx context.Context, cred session.Credential, id int64, reason string) error {
	return c.patch(ctx, cred, fmt.Sprintf("/api/issue-requests/%d/reject", id), map[string]string{"rejectReason": reason}, nil)
}

func (c *Client) CancelIssueRequest(ctx context.Context, cred session.Credential, id int64) error {
	return c.patch(ctx, cred, fmt.Sprintf("/api/issue-requests/%d/cancel", id), nil, nil)
}

func (c *Client) BulkApproveIssueRequests(ctx context.Context, cred session.Credential, ids []int64) error {
	return c.post(ctx, cred, "/api/issue-requests/bulk-approve", map[string][]int64{"requestIds": ids}, nil)
}

// MonthlyRequestCount returns the caller's issue-request quota usage
// for the current month.
func (c *Client) MonthlyRequestCount(ctx context.Context, cred session.Credential) (*entity.MonthlyQuota, error) {
	var out entity.MonthlyQuota
	if err := c.get(ctx, cred, "/api/issue-requests/monthly-count", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BorrowFilter narrows staff borrow-record listings.
type BorrowFilter struct {
	Status    string
	Overdue   bool
	StudentID int64
	BookID    int64
}

func (f BorrowFilter) query() url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Overdue {
		q.Set("overdue", "true")
	}
	if f.StudentID != 0 {
		q.Set("studentId", strconv.FormatInt(f.StudentID, 10))
	}
	if f.BookID != 0 {
		q.Set("bookId", strconv.FormatInt(f.BookID, 10))
	}
	return q
}

func (c *Client) ListBorrowRecords(ctx context.Context, cred session.Credential, filter BorrowFilter) ([]entity.BorrowRecord, error) {
	var out []entity.BorrowRecord
	if err := c.get(ctx, cred, "/api/borrow", filter.query(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PendingReturns lists open loans awaiting return processing.
func (c *Client) PendingReturns(ctx context.Context, cred session.Credential, overdueOnly bool) ([]entity.BorrowRecord, error) {
	q := url.Values{}
	if overdueOnly {
		q.Set("overdue", "true")
	}
	var out []entity.BorrowRecord
	if err := c.get(ctx, cred, "/api/borrow/pending-returns", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MyBorrowHistory(ctx context.Context, cred session.Credential) ([]entity.BorrowRecord, error) {
	var out []entity.BorrowRecord
	if err := c.get(ctx, cred, "/api/borrows/my", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// IssueBook issues directly to a student, skipping the request queue.
func (c *Client) IssueBook(ctx context.Context, cred session.Credential, studentID, bookID int64, dueDate string) (*entity.BorrowRecord, error) {
	body := map[string]any{"studentId": studentID, "bookId": bookID}
	if dueDate != "" {
		body["dueDate"] = dueDate
	}
	var out entity.BorrowRecord
	if err := c.post(ctx, cred, "/api/borrow", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessReturn closes a borrow record. Damaged/lost flags feed the
// backend's penalty computation.
func (c *Client) ProcessReturn(ctx context.Context, cred session.Credential, borrowRecordID int64, damaged, lost bool) error {
	body := map[string]any{"borrowRecordId": borrowRecordID}
	if damaged {
		body["damaged"] = true
	}
	if lost {
		body["lost"] = true
	}
	return c.post(ctx, cred, "/api/return", body, nil)
}
