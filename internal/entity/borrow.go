package entity

import "time"

// Borrow record statuses reported by the backend.
const (
	BorrowIssued       = "ISSUED"
	BorrowBorrowed     = "BORROWED"
	BorrowReturned     = "RETURNED"
	BorrowLateReturned = "LATE_RETURNED"
	BorrowOverdue      = "OVERDUE"
	BorrowLost         = "LOST"
	BorrowDamaged      = "DAMAGED"
)

// Issue request statuses.
const (
	RequestPending   = "PENDING"
	RequestApproved  = "APPROVED"
	RequestRejected  = "REJECTED"
	RequestCancelled = "CANCELLED"
)

// BorrowRecord is the flat shape the backend returns: book and student
// fields are denormalized onto the record rather than nested.
type BorrowRecord struct {
	ID            int64      `json:"id"`
	StudentID     int64      `json:"studentId,omitempty"`
	StudentName   string     `json:"studentName,omitempty"`
	BookID        int64      `json:"bookId"`
	BookTitle     string     `json:"bookTitle"`
	BookAuthor    string     `json:"bookAuthor,omitempty"`
	BookISBN      string     `json:"bookIsbn,omitempty"`
	BorrowedAt    time.Time  `json:"borrowedAt"`
	DueDate       time.Time  `json:"dueDate"`
	ReturnedAt    *time.Time `json:"returnedAt,omitempty"`
	Status        string     `json:"status"`
	IsOverdue     bool       `json:"isOverdue,omitempty"`
	PenaltyAmount float64    `json:"penaltyAmount,omitempty"`
	PenaltyType   string     `json:"penaltyType,omitempty"`
	PenaltyStatus string     `json:"penaltyStatus,omitempty"`
}

type IssueRequest struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	BookID         int64      `json:"bookId"`
	Status         string     `json:"status"`
	Reason         string     `json:"reason,omitempty"`
	StudentName    string     `json:"studentName"`
	BookTitle      string     `json:"bookTitle"`
	BookAuthor     string     `json:"bookAuthor"`
	RequestedAt    time.Time  `json:"requestedAt"`
	ProcessedAt    *time.Time `json:"processedAt,omitempty"`
	ProcessedBy    string     `json:"processedByName,omitempty"`
	IssuedRecordID int64      `json:"issuedRecordId,omitempty"`
}

// MonthlyQuota is the per-student issue-request budget for the current
// month, enforced server-side and displayed here.
type MonthlyQuota struct {
	MonthlyRequests int `json:"monthlyRequests"`
	Limit           int `json:"limit"`
	Remaining       int `json:"remaining"`
}
