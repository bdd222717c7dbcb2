package api

import (
	"context"
	"fmt"
	"net/url"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

// AcquisitionInput asks the library to purchase a new title.
type AcquisitionInput struct {
	BookName      string `json:"bookName" validate:"required,max=200"`
	Author        string `json:"author,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	Version       string `json:"version,omitempty"`
	Genre         string `json:"genre,omitempty"`
	Justification string `json:"justification,omitempty" validate:"max=1000"`
}

func (c *Client) CreateAcquisitionRequest(ctx context.Context, cred session.Credential, in AcquisitionInput) (*entity.AcquisitionRequest, error) {
	var out entity.AcquisitionRequest
	if err := c.post(ctx, cred, "/api/acquisition-requests", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyAcquisitionRequests(ctx context.Context, cred session.Credential) ([]entity.AcquisitionRequest, error) {
	var out []entity.AcquisitionRequest
	if err := c.get(ctx, cred, "/api/acquisition-requests/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAcquisitionRequests(ctx context.Context, cred session.Credential, status string) ([]entity.AcquisitionRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []entity.AcquisitionRequest
	if err := c.get(ctx, cred, "/api/acquisition-requests", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveAcquisitionRequest(ctx context.Context, cred session.Credential, id int64) error {
	return c.patch(ctx, cred, fmt.Sprintf("/api/acquisition-requests/%d/approve", id), nil, nil)
}

func (c *Client) RejectAcquisitionRequest(ctx context.Context, cred session.Credential, id int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return c.patch(ctx, cred, fmt.Sprintf("/api/acquisition-requests/%d/reject", id), body, nil)
}

// CreateMembershipRequest asks for a subscription package upgrade.
func (c *Client) CreateMembershipRequest(ctx context.Context, cred session.Credential, pkg string) (*entity.MembershipRequest, error) {
	var body any
	if pkg != "" {
		body = map[string]string{"requestedPackage": pkg}
	}
	var out entity.MembershipRequest
	if err := c.post(ctx, cred, "/api/membership-requests", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyMembershipRequests(ctx context.Context, cred session.Credential) ([]entity.MembershipRequest, error) {
	var out []entity.MembershipRequest
	if err := c.get(ctx, cred, "/api/membership-requests/mine", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMembershipRequests(ctx context.Context, cred session.Credential, status string) ([]entity.MembershipRequest, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var out []entity.MembershipRequest
	if err := c.get(ctx, cred, "/api/membership-requests", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveMembershipRequest(ctx context.Context, cred session.Credential, id int64) error {
	return c.patch(ctx, cred, fmt.Sprintf("/api/membership-requests/%d/approve", id), nil, nil)
}

func (c *Client) RejectMembershipRequest(ctx context.Context, cred session.Credential, id int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"reason": reason}
	}
	return c.patch(ctx, cred, fmt.Sprintf("/api/membership-requests/%d/reject", id), body, nil)
}
