package api

import (
	"context"
	"fmt"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

func (c *Client) JoinWaitlist(ctx context.Context, cred session.Credential, bookID int64) (*entity.WaitlistEntry, error) {
	var out entity.WaitlistEntry
	if err := c.post(ctx, cred, fmt.Sprintf("/api/waitlist/join/%d", bookID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LeaveWaitlist(ctx context.Context, cred session.Credential, bookID int64) error {
	return c.delete(ctx, cred, fmt.Sprintf("/api/waitlist/leave/%d", bookID), nil)
}

func (c *Client) MyWaitlist(ctx context.Context, cred session.Credential) ([]entity.WaitlistEntry, error) {
	var out []entity.WaitlistEntry
	if err := c.get(ctx, cred, "/api/waitlist/my-waitlist", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// WaitlistPosition returns the caller's place in one book's queue.
func (c *Client) WaitlistPosition(ctx context.Context, cred session.Credential, bookID int64) (*entity.WaitlistEntry, error) {
	var out entity.WaitlistEntry
	if err := c.get(ctx, cred, fmt.Sprintf("/api/waitlist/position/%d", bookID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
