package entity

import "time"

// WaitlistEntry is a student's place in the queue for a fully
// checked-out book. Priority scoring happens server-side.
type WaitlistEntry struct {
	ID                 int64     `json:"id"`
	BookID             int64     `json:"bookId"`
	BookTitle          string    `json:"bookTitle"`
	BookAuthor         string    `json:"bookAuthor"`
	StudentID          int64     `json:"studentId"`
	StudentName        string    `json:"studentName"`
	StudentEmail       string    `json:"studentEmail,omitempty"`
	JoinedAt           time.Time `json:"joinedAt"`
	PriorityScore      float64   `json:"priorityScore"`
	QueuePosition      int       `json:"queuePosition"`
	EstimatedWaitDays  int       `json:"estimatedWaitDays,omitempty"`
	PriorityReason     string    `json:"priorityReason,omitempty"`
	EstimatedAvailable string    `json:"estimatedAvailableDate,omitempty"`
	IsActive           bool      `json:"isActive"`
}
