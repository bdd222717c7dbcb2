package entity

import "time"

// Penalty kinds and settlement states.
const (
	PenaltyNone   = "NONE"
	PenaltyLate   = "LATE"
	PenaltyDamage = "DAMAGE"
	PenaltyLost   = "LOST"

	PenaltyPending = "PENDING"
	PenaltyPaid    = "PAID"
)

// Penalty is keyed by the borrow record it was computed for; payment
// calls reference BorrowRecordID, not a penalty id.
type Penalty struct {
	BorrowRecordID int64     `json:"borrowRecordId"`
	StudentID      int64     `json:"studentId"`
	StudentName    string    `json:"studentName"`
	BookID         int64     `json:"bookId"`
	BookTitle      string    `json:"bookTitle"`
	BorrowedAt     time.Time `json:"borrowedAt"`
	DueDate        time.Time `json:"dueDate"`
	Amount         float64   `json:"penaltyAmount"`
	Type           string    `json:"penaltyType"`
	Status         string    `json:"penaltyStatus"`
}

// Subscription packages offered by the backend.
const (
	PackageOneMonth  = "ONE_MONTH"
	PackageSixMonths = "SIX_MONTHS"
	PackageOneYear   = "ONE_YEAR"
)

type Subscription struct {
	Package   string     `json:"package,omitempty"`
	Start     *time.Time `json:"subscriptionStart,omitempty"`
	End       *time.Time `json:"subscriptionEnd,omitempty"`
	IsPremium bool       `json:"isPremium"`
}

type SubscriptionPackage struct {
	Name           string  `json:"name"`
	DurationMonths int     `json:"durationMonths"`
	Price          float64 `json:"price"`
}
