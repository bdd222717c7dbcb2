package entity

import "time"

// AcquisitionRequest asks the library to purchase a title it does not
// hold. Created by students, decided by staff.
type AcquisitionRequest struct {
	ID            int64      `json:"id"`
	RequesterID   int64      `json:"requesterId"`
	RequesterName string     `json:"requesterName,omitempty"`
	BookName      string     `json:"bookName"`
	Author        string     `json:"author,omitempty"`
	Publisher     string     `json:"publisher,omitempty"`
	Version       string     `json:"version,omitempty"`
	Genre         string     `json:"genre,omitempty"`
	Justification string     `json:"justification,omitempty"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	ReviewedAt    *time.Time `json:"reviewedAt,omitempty"`
}

// MembershipRequest asks for a paid subscription package.
type MembershipRequest struct {
	ID              int64      `json:"id"`
	StudentID       int64      `json:"studentId"`
	StudentName     string     `json:"studentName"`
	Package         string     `json:"requestedPackage"`
	DurationMonths  int        `json:"packageDurationMonths"`
	Price           float64    `json:"packagePrice"`
	Status          string     `json:"status"`
	ReviewedBy      int64      `json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
