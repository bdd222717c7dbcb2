package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// TestStudent is a fixture student account.
var TestStudent = entity.Member{
	ID:        101,
	Name:      "Asha Verma",
	Email:     "asha@example.com",
	Role:      entity.RoleStudent,
	Status:    entity.UserApproved,
	CreatedAt: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
}

// TestLibrarian is a fixture librarian account.
var TestLibrarian = entity.Member{
	ID:        55,
	Name:      "Ravi Nair",
	Email:     "ravi@example.com",
	Role:      entity.RoleLibrarian,
	Status:    entity.UserApproved,
	CreatedAt: time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC),
}

// TestBook is a fixture catalog entry.
var TestBook = entity.Book{
	ID:              7,
	Title:           "The Pragmatic Programmer",
	Author:          "Hunt and Thomas",
	ISBN:            "9780135957059",
	Genre:           "Software",
	TotalCopies:     3,
	AvailableCopies: 2,
	AccessLevel:     entity.AccessNormal,
}

// NewSession builds an in-memory session for a role with a bearer
// credential, the shape handlers see after the guard resolves it.
func NewSession(userID int64, email, role string) *session.Session {
	now := time.Now()
	return &session.Session{
		ID:         "test-session-id",
		UserID:     userID,
		Email:      email,
		Name:       "Test User",
		Role:       role,
		Credential: session.BearerCredential("test-bearer-token"),
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
}

// NewFormRequest creates a POST request carrying url-encoded form
// values, the way browser form submissions arrive.
func NewFormRequest(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}
