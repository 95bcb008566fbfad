package api

import (
	"context"
	"fmt"
)

type InviteInput struct {
	GroupID string `json:"group_id"`
	Email   string `json:"email"`
}

func (in InviteInput) Validate() error {
	if err := requireUUID("invite group id", in.GroupID); err != nil {
		return err
	}
	if err := validateEmail(in.Email); err != nil {
		return fmt.Errorf("invite: %w", err)
	}
	return nil
}

func (c *Client) CreateInvite(ctx context.Context, in InviteInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	_, err := c.post(ctx, "/invites", in, "invite:create")
	return err
}
