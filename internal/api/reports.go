package api

import (
	"context"
	"fmt"
	"net/url"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// Report formats accepted by the backend.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
)

// DownloadReport fetches a report as a binary blob; content type and
// filename come back from the backend untouched.
func (c *Client) DownloadReport(ctx context.Context, cred session.Credential, reportType, format string) (*Blob, error) {
	if format == "" {
		format = FormatCSV
	}
	q := url.Values{}
	q.Set("type", reportType)
	q.Set("format", format)
	return c.getBlob(ctx, cred, "/api/reports/download", q)
}

// Recommendations returns suggested titles for a user.
func (c *Client) Recommendations(ctx context.Context, cred session.Credential, userID int64) ([]entity.Book, error) {
	var out []entity.Book
	if err := c.get(ctx, cred, fmt.Sprintf("/api/recommendations/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PopularBooks(ctx context.Context, cred session.Credential) ([]entity.Book, error) {
	var out []entity.Book
	if err := c.get(ctx, cred, "/api/recommendations/analytics/popular-books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
