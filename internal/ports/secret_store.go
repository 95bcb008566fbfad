package ports

import "context"

// SecretStore is the durable secure storage the session layer persists the
// auth token and cached profile into. Missing keys surface as errors that
// match domain.ErrSecretNotFound via errors.Is; Delete is idempotent.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
