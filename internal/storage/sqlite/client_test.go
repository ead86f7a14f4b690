package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsguard/backend/internal/storage"
)

var _ storage.KV = (*Client)(nil)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, c.InitSchema())
	t.Cleanup(func() { c.Close() })
	return c
}

type contact struct {
	Name  string `json:"name"`
	Phone string `json:"phoneNumber"`
}

func TestGetMissingKey(t *testing.T) {
	c := newTestClient(t)

	var got []contact
	ok, err := c.Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSetGetRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	in := []contact{{"Ana", "5551234567"}, {"Ben", "5559876543"}}
	require.NoError(t, c.Set(ctx, storage.KeyEmergencyContacts, in))

	var out []contact
	ok, err := c.Get(ctx, storage.KeyEmergencyContacts, &out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestSetOverwrites(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, storage.KeyUserName, "first"))
	require.NoError(t, c.Set(ctx, storage.KeyUserName, "second"))

	var name string
	_, err := c.Get(ctx, storage.KeyUserName, &name)
	require.NoError(t, err)
	assert.Equal(t, "second", name)
}

func TestRemove(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, storage.KeyUserName, "Ana"))
	require.NoError(t, c.Remove(ctx, storage.KeyUserName))
	require.NoError(t, c.Remove(ctx, "never-set"))

	var name string
	ok, err := c.Get(ctx, storage.KeyUserName, &name)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetDecodeError(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "a string"))

	var n int
	_, err := c.Get(ctx, "k", &n)
	assert.Error(t, err)
}
