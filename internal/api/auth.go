package api

import (
	"context"
	"io"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  entity.UserSummary `json:"user"`
}

// Login validates credentials against the backend. Called before any
// session exists, so it carries no credential.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var out LoginResponse
	if err := c.post(ctx, session.Credential{}, "/api/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account behind cred. The admin flow uses it to verify
// a Basic credential before a session is created.
func (c *Client) Me(ctx context.Context, cred session.Credential) (*entity.UserSummary, error) {
	var out entity.UserSummary
	if err := c.get(ctx, cred, "/api/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Role     string
	Password string
}

// Register creates a PENDING account. When idProof is non-nil the
// request goes up as multipart with the file attached; otherwise as
// plain JSON.
func (c *Client) Register(ctx context.Context, req RegisterRequest, idProofName string, idProof io.Reader) (*entity.UserSummary, error) {
	var out entity.UserSummary
	if idProof == nil {
		body := map[string]string{
			"name":     req.Name,
			"email":    req.Email,
			"phone":    req.Phone,
			"role":     req.Role,
			"password": req.Password,
		}
		if err := c.post(ctx, session.Credential{}, "/api/auth/register", body, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}

	fields := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"phone":    req.Phone,
		"role":     req.Role,
		"password": req.Password,
	}
	if err := c.postMultipart(ctx, session.Credential{}, "/api/auth/register", fields, "idProof", idProofName, idProof, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.post(ctx, session.Credential{}, "/api/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return c.post(ctx, session.Credential{}, "/api/auth/reset-password", body, nil)
}
