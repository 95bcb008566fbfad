package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"unicode/utf8"

	"huddle/internal/domain"
)

const (
	minPasswordLen    = 6
	minDisplayNameLen = 2
	maxDisplayNameLen = 40
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if len(in.Password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}

type SignupInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Timezone    string `json:"timezone,omitempty"`
}

func (in SignupInput) Validate() error {
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if len(in.Password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	if n := utf8.RuneCountInString(in.DisplayName); n < minDisplayNameLen || n > maxDisplayNameLen {
		return fmt.Errorf("display name must be %d-%d characters", minDisplayNameLen, maxDisplayNameLen)
	}
	return nil
}

// AuthResult is the session material both auth endpoints return: signup
// implies immediate login.
type AuthResult struct {
	Token string
	User  domain.UserProfile
}

func (c *Client) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	if err := in.Validate(); err != nil {
		return AuthResult{}, err
	}

	raw, err := c.post(ctx, "/auth/login", in, "auth:login")
	if err != nil {
		return AuthResult{}, err
	}

	return decodeAuthResult(raw)
}

func (c *Client) Signup(ctx context.Context, in SignupInput) (AuthResult, error) {
	if err := in.Validate(); err != nil {
		return AuthResult{}, err
	}

	raw, err := c.post(ctx, "/auth/signup", in, "auth:signup")
	if err != nil {
		return AuthResult{}, err
	}

	return decodeAuthResult(raw)
}

// decodeAuthResult fails fast on an unexpected server shape: a session
// must never be installed from a payload we cannot fully validate.
func decodeAuthResult(raw json.RawMessage) (AuthResult, error) {
	var payload struct {
		Token string `json:"token"`
		User  struct {
			ID          string  `json:"id"`
			Email       string  `json:"email"`
			DisplayName *string `json:"displayName"`
			Timezone    *string `json:"timezone"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return AuthResult{}, fmt.Errorf("decode auth response: %w", err)
	}

	if payload.Token == "" {
		return AuthResult{}, errors.New("auth response is missing a token")
	}
	if err := requireUUID("user id", payload.User.ID); err != nil {
		return AuthResult{}, err
	}
	if err := validateEmail(payload.User.Email); err != nil {
		return AuthResult{}, fmt.Errorf("auth response user: %w", err)
	}

	return AuthResult{
		Token: payload.Token,
		User: domain.UserProfile{
			ID:          payload.User.ID,
			Email:       payload.User.Email,
			DisplayName: stringOrEmpty(payload.User.DisplayName),
			Timezone:    stringOrEmpty(payload.User.Timezone),
		},
	}, nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}
