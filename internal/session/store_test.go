package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ticketflow/ticketflow/internal/persistence"
)

// brokenStorage fails every call once broken is set.
type brokenStorage struct {
	*persistence.Memory
	broken bool
}

var errUnavailable = errors.New("storage unavailable")

func (b *brokenStorage) Get(ctx context.Context, key string) (string, error) {
	if b.broken {
		return "", errUnavailable
	}
	return b.Memory.Get(ctx, key)
}

func (b *brokenStorage) Set(ctx context.Context, key, value string) error {
	if b.broken {
		return errUnavailable
	}
	return b.Memory.Set(ctx, key, value)
}

func (b *brokenStorage) Delete(ctx context.Context, key string) error {
	if b.broken {
		return errUnavailable
	}
	return b.Memory.Delete(ctx, key)
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(persistence.NewMemory(), nil)

	_, ok := store.Load(ctx)
	assert.False(t, ok)

	store.Save(ctx, "mock_session_token_1")
	token, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "mock_session_token_1", token)

	store.Clear(ctx)
	_, ok = store.Load(ctx)
	assert.False(t, ok)
}

func TestTokenSurvivesNewStore(t *testing.T) {
	ctx := context.Background()
	backing := persistence.NewMemory()
	NewStore(backing, nil).Save(ctx, "tok")

	raw, err := backing.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.Equal(t, `"tok"`, raw, "token is stored as a JSON string")

	token, ok := NewStore(backing, nil).Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", token)
}

func TestLoadTreatsMalformedAsAbsent(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"not-json", "42", "null", `""`, `{"a":1}`} {
		backing := persistence.NewMemory()
		require.NoError(t, backing.Set(ctx, TokenKey, raw))
		_, ok := NewStore(backing, nil).Load(ctx)
		assert.False(t, ok, "raw value %q", raw)
	}
}

func TestCredentialRecordAndVerify(t *testing.T) {
	ctx := context.Background()
	backing := persistence.NewMemory()
	store := NewStore(backing, nil)

	assert.False(t, store.VerifyCredential(ctx, "a@b.com", "secret1"), "no record yet")

	store.RecordCredential(ctx, "a@b.com", "secret1")
	assert.True(t, store.VerifyCredential(ctx, "a@b.com", "secret1"))
	assert.False(t, store.VerifyCredential(ctx, "a@b.com", "secret2"))
	assert.False(t, store.VerifyCredential(ctx, "c@d.com", "secret1"))

	raw, err := backing.Get(ctx, UserDataKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret1"}`, raw)

	store.RecordCredential(ctx, "c@d.com", "hunter22")
	assert.False(t, store.VerifyCredential(ctx, "a@b.com", "secret1"), "single slot is overwritten")
	assert.True(t, store.VerifyCredential(ctx, "c@d.com", "hunter22"))
}

func TestVerifyCredentialMalformedRecord(t *testing.T) {
	ctx := context.Background()
	backing := persistence.NewMemory()
	require.NoError(t, backing.Set(ctx, UserDataKey, "{broken"))
	assert.False(t, NewStore(backing, nil).VerifyCredential(ctx, "a@b.com", "secret1"))
}

func TestLastEmail(t *testing.T) {
	ctx := context.Background()
	backing := persistence.NewMemory()
	store := NewStore(backing, nil)

	_, ok := store.LastEmail(ctx)
	assert.False(t, ok)

	store.RecordLastEmail(ctx, "a@b.com")
	email, ok := store.LastEmail(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", email)

	raw, err := backing.Get(ctx, LastEmailKey)
	require.NoError(t, err)
	assert.Equal(t, `"a@b.com"`, raw)
}

func TestWriteFailureKeepsInMemoryValue(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.ErrorLevel)
	backing := &brokenStorage{Memory: persistence.NewMemory(), broken: true}
	store := NewStore(backing, zap.New(core))

	store.Save(ctx, "tok")
	store.RecordLastEmail(ctx, "a@b.com")
	store.RecordCredential(ctx, "a@b.com", "secret1")

	token, ok := store.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok", token)

	email, ok := store.LastEmail(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", email)

	assert.True(t, store.VerifyCredential(ctx, "a@b.com", "secret1"))
	assert.Equal(t, 3, logs.FilterMessage("failed to write storage key").Len())
	assert.NotZero(t, logs.FilterMessage("failed to read storage key").Len())

	store.Clear(ctx)
	_, ok = store.Load(ctx)
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("failed to delete storage key").Len())
}
