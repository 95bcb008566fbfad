package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"huddle/internal/adapters/api"
	"huddle/internal/domain"
	"huddle/internal/ports"
)

const (
	tokenKey   = "huddle/session/token"
	profileKey = "huddle/session/profile"
)

// AuthClient is the slice of the request gateway the session service
// drives: the auth endpoints plus the installed-credential switch.
type AuthClient interface {
	Login(ctx context.Context, in api.LoginInput) (api.AuthResult, error)
	Signup(ctx context.Context, in api.SignupInput) (api.AuthResult, error)
	SetToken(token string)
	ClearToken()
}

// SessionService is the single source of truth for who is logged in. The
// gateway credential and the in-memory token always change in the same
// locked step, so no request can observe one without the other.
type SessionService struct {
	store  ports.SecretStore
	client AuthClient

	mu      sync.RWMutex
	token   string
	user    *domain.UserProfile
	loading bool
}

func NewSessionService(store ports.SecretStore, client AuthClient) *SessionService {
	return &SessionService{
		store:   store,
		client:  client,
		loading: true,
	}
}

// Loading reports whether the initial Restore has not completed yet.
func (s *SessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Authenticated reports whether a session is installed.
func (s *SessionService) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Current returns the installed token and a copy of the profile; the
// profile is nil exactly when the token is empty.
func (s *SessionService) Current() (string, *domain.UserProfile) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return s.token, nil
	}
	user := *s.user
	return s.token, &user
}

// Restore loads a persisted session at process start. A missing secret
// means no session and is not an error; a token without a readable
// profile drops the session rather than violating the token/user pairing.
// The loading flag clears no matter how restoration ends.
func (s *SessionService) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.store.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil
		}
		return fmt.Errorf("restore session token: %w", err)
	}

	profileJSON, err := s.store.Get(ctx, profileKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil
		}
		return fmt.Errorf("restore session profile: %w", err)
	}

	var user domain.UserProfile
	if err := json.Unmarshal([]byte(profileJSON), &user); err != nil {
		return fmt.Errorf("decode persisted profile: %w", err)
	}

	s.install(token, &user)
	return nil
}

// Login authenticates and, only once both secrets are durably written,
// installs the session. Any failure leaves state and storage as they were.
func (s *SessionService) Login(ctx context.Context, in api.LoginInput) (*domain.UserProfile, error) {
	result, err := s.client.Login(ctx, in)
	if err != nil {
		return nil, err
	}

	return s.adopt(ctx, result)
}

// Signup creates an account; the server returns a usable session token,
// so signup implies immediate login.
func (s *SessionService) Signup(ctx context.Context, in api.SignupInput) (*domain.UserProfile, error) {
	result, err := s.client.Signup(ctx, in)
	if err != nil {
		return nil, err
	}

	return s.adopt(ctx, result)
}

// Logout clears the session everywhere. It succeeds when nothing was
// persisted; secret deletion is idempotent.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.client.ClearToken()
	s.mu.Unlock()

	if err := s.store.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}
	if err := s.store.Delete(ctx, profileKey); err != nil {
		return fmt.Errorf("delete session profile: %w", err)
	}

	return nil
}

func (s *SessionService) adopt(ctx context.Context, result api.AuthResult) (*domain.UserProfile, error) {
	profileJSON, err := json.Marshal(result.User)
	if err != nil {
		return nil, fmt.Errorf("encode session profile: %w", err)
	}

	prevToken, prevUser := s.Current()

	if err := s.store.Put(ctx, tokenKey, result.Token); err != nil {
		return nil, fmt.Errorf("persist session token: %w", err)
	}
	if err := s.store.Put(ctx, profileKey, string(profileJSON)); err != nil {
		s.unpersist(ctx, prevToken, prevUser)
		return nil, fmt.Errorf("persist session profile: %w", err)
	}

	user := result.User
	s.install(result.Token, &user)

	out := user
	return &out, nil
}

// install is the one place the gateway credential and the in-memory pair
// change, always together.
func (s *SessionService) install(token string, user *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.client.SetToken(token)
}

// unpersist undoes a half-written session, restoring the previous secrets
// when there was a previous session. Best effort: the caller already has
// a more useful error to report.
func (s *SessionService) unpersist(ctx context.Context, prevToken string, prevUser *domain.UserProfile) {
	if prevToken == "" || prevUser == nil {
		_ = s.store.Delete(ctx, tokenKey)
		_ = s.store.Delete(ctx, profileKey)
		return
	}

	if prevJSON, err := json.Marshal(prevUser); err == nil {
		_ = s.store.Put(ctx, tokenKey, prevToken)
		_ = s.store.Put(ctx, profileKey, string(prevJSON))
	}
}
