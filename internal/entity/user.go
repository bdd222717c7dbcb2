package entity

import "time"

// Roles as the backend reports them.
const (
	RoleAdmin     = "ADMIN"
	RoleLibrarian = "LIBRARIAN"
	RoleStudent   = "STUDENT"
)

// Account statuses. Registration creates a PENDING user that an admin
// approves or rejects.
const (
	UserPending   = "PENDING"
	UserApproved  = "APPROVED"
	UserRejected  = "REJECTED"
	UserSuspended = "SUSPENDED"
)

type UserSummary struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name,omitempty"`
	Role              string `json:"role,omitempty"`
	Status            string `json:"status,omitempty"`
	FirstLogin        bool   `json:"firstLogin,omitempty"`
	MembershipType    string `json:"membershipType,omitempty"`
	SubscriptionPlan  string `json:"subscriptionPackage,omitempty"`
	SubscriptionStart string `json:"subscriptionStart,omitempty"`
	SubscriptionEnd   string `json:"subscriptionEnd,omitempty"`
	IsPremium         bool   `json:"isPremium,omitempty"`
}

// Member is the staff-facing view of a user, carrying the aggregate
// fields the backend denormalizes for reports.
type Member struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name,omitempty"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	IDProofPath      string    `json:"idProofPath,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	MembershipType   string    `json:"membershipType,omitempty"`
	TotalBorrows     int       `json:"totalBorrows,omitempty"`
	ActiveBorrows    int       `json:"activeBorrows,omitempty"`
	OutstandingFines float64   `json:"outstandingFines,omitempty"`
}
