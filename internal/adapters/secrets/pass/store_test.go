package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huddle/internal/domain"
)

type call struct {
	stdin string
	args  []string
}

func fakeRun(t *testing.T, calls *[]call, stdout, stderr string, err error) runFunc {
	t.Helper()
	return func(_ context.Context, stdin string, args ...string) (string, string, error) {
		*calls = append(*calls, call{stdin: stdin, args: args})
		return stdout, stderr, err
	}
}

func TestGetTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	var calls []call
	store := &Store{run: fakeRun(t, &calls, "tok-abc\n", "", nil)}

	got, err := store.Get(context.Background(), "huddle/session/token")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", got)
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"show", "huddle/session/token"}, calls[0].args)
}

func TestGetMissingEntryMatchesSentinel(t *testing.T) {
	t.Parallel()

	var calls []call
	store := &Store{run: fakeRun(t, &calls, "", "Error: huddle/session/token is not in the password store.", errors.New("exit status 1"))}

	_, err := store.Get(context.Background(), "huddle/session/token")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestPutPipesValueWithTrailingNewline(t *testing.T) {
	t.Parallel()

	var calls []call
	store := &Store{run: fakeRun(t, &calls, "", "", nil)}

	require.NoError(t, store.Put(context.Background(), "huddle/session/token", "tok-abc"))
	require.Len(t, calls, 1)
	assert.Equal(t, "tok-abc\n", calls[0].stdin)
	assert.Equal(t, []string{"insert", "-m", "-f", "huddle/session/token"}, calls[0].args)
}

func TestDeleteMissingEntryIsNotAnError(t *testing.T) {
	t.Parallel()

	var calls []call
	store := &Store{run: fakeRun(t, &calls, "", "Error: x is not in the password store.", errors.New("exit status 1"))}

	assert.NoError(t, store.Delete(context.Background(), "x"))
}

func TestErrorsCarryStderr(t *testing.T) {
	t.Parallel()

	var calls []call
	store := &Store{run: fakeRun(t, &calls, "", "gpg: decryption failed", errors.New("exit status 2"))}

	err := store.Put(context.Background(), "k", "v")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpg: decryption failed")
}
