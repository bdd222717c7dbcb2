package api

import (
	"context"
	"fmt"
	"net/url"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// ListPendingUsers returns registrations awaiting an admin decision.
func (c *Client) ListPendingUsers(ctx context.Context, cred session.Credential) ([]entity.Member, error) {
	var out []entity.Member
	if err := c.get(ctx, cred, "/api/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveUser(ctx context.Context, cred session.Credential, id int64) error {
	return c.post(ctx, cred, fmt.Sprintf("/api/admin/approve/%d", id), nil, nil)
}

// RejectUser rejects a pending registration; reason is optional.
func (c *Client) RejectUser(ctx context.Context, cred session.Credential, id int64, reason string) error {
	path := fmt.Sprintf("/api/admin/reject/%d", id)
	if reason != "" {
		path += "?reason=" + url.QueryEscape(reason)
	}
	return c.post(ctx, cred, path, nil, nil)
}

// ListMembers returns all library members for staff views.
func (c *Client) ListMembers(ctx context.Context, cred session.Credential) ([]entity.Member, error) {
	var out []entity.Member
	if err := c.get(ctx, cred, "/api/members", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMember(ctx context.Context, cred session.Credential, id int64) (*entity.Member, error) {
	var out entity.Member
	if err := c.get(ctx, cred, fmt.Sprintf("/api/members/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SuspendMember(ctx context.Context, cred session.Credential, id int64) error {
	return c.patch(ctx, cred, fmt.Sprintf("/api/members/%d/suspend", id), nil, nil)
}

func (c *Client) MemberBorrowHistory(ctx context.Context, cred session.Credential, id int64) ([]entity.BorrowRecord, error) {
	var out []entity.BorrowRecord
	if err := c.get(ctx, cred, fmt.Sprintf("/api/members/%d/history", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
