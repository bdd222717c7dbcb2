package api

import (
	"context"
	"fmt"

	"lmsportal/internal/entity"
	"lmsportal/internal/session"
)

func (c *Client) PendingPenalties(ctx context.Context, cred session.Credential) ([]entity.Penalty, error) {
	var out []entity.Penalty
	if err := c.get(ctx, cred, "/api/penalties/pending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MemberPenalties(ctx context.Context, cred session.Credential, memberID int64) ([]entity.Penalty, error) {
	var out []entity.Penalty
	if err := c.get(ctx, cred, fmt.Sprintf("/api/members/%d/penalties", memberID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PayPenalty settles the penalty on a borrow record.
func (c *Client) PayPenalty(ctx context.Context, cred session.Credential, borrowRecordID int64, amount float64) error {
	return c.post(ctx, cred, fmt.Sprintf("/api/borrow/%d/pay", borrowRecordID), map[string]float64{"amount": amount}, nil)
}

// ComputePenalty asks the backend to (re)compute the penalty for one
// record; the formula lives entirely server-side.
func (c *Client) ComputePenalty(ctx context.Context, cred session.Credential, borrowRecordID int64) (*entity.Penalty, error) {
	var out entity.Penalty
	if err := c.post(ctx, cred, fmt.Sprintf("/api/borrow/%d/penalty/compute", borrowRecordID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReconcilePenalties recomputes penalties across all open records.
func (c *Client) ReconcilePenalties(ctx context.Context, cred session.Credential) error {
	return c.post(ctx, cred, "/api/borrow/reconcile", nil, nil)
}

func (c *Client) SubscriptionStatus(ctx context.Context, cred session.Credential) (*entity.Subscription, error) {
	var out entity.Subscription
	if err := c.get(ctx, cred, "/api/subscriptions/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubscriptionPackages(ctx context.Context, cred session.Credential) ([]entity.SubscriptionPackage, error) {
	var out []entity.SubscriptionPackage
	if err := c.get(ctx, cred, "/api/subscriptions/packages", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ActivateSubscription(ctx context.Context, cred session.Credential, pkg string) error {
	return c.post(ctx, cred, "/api/subscriptions/activate", map[string]string{"package": pkg}, nil)
}

func (c *Client) ExtendSubscription(ctx context.Context, cred session.Credential, pkg string) error {
	return c.post(ctx, cred, "/api/subscriptions/extend", map[string]string{"package": pkg}, nil)
}
