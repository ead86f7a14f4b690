package contacts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/internal/storage/sqlite"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := sqlite.NewClient(filepath.Join(t.TempDir(), "contacts.db"))
	require.NoError(t, err)
	require.NoError(t, db.InitSchema())
	t.Cleanup(func() { db.Close() })
	return NewService(db)
}

func TestListEmpty(t *testing.T) {
	s := newTestService(t)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestReplaceFormatsAndStores(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	saved, err := s.Replace(ctx, []models.EmergencyContact{
		{Name: " Ana ", PhoneNumber: "555.123.4567"},
		{Name: "Ben", PhoneNumber: "1-555-987-6543", Email: "ben@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", saved[0].Name)
	assert.Equal(t, "(555) 123-4567", saved[0].PhoneNumber)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, list)
}

func TestReplaceRejectsInvalid(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	_, err := s.Replace(ctx, []models.EmergencyContact{{Name: "Ana", PhoneNumber: "123"}})
	assert.ErrorIs(t, err, ErrInvalidContact)

	_, err = s.Replace(ctx, []models.EmergencyContact{{Name: " ", PhoneNumber: "5551234567"}})
	assert.ErrorIs(t, err, ErrInvalidContact)

	many := make([]models.EmergencyContact, MaxContacts+1)
	_, err = s.Replace(ctx, many)
	assert.ErrorIs(t, err, ErrInvalidContact)
}

func TestUserNameDefaultAndOverride(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	name, err := s.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName, name)

	require.NoError(t, s.SetUserName(ctx, "Maria"))
	name, err = s.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maria", name)

	require.NoError(t, s.SetUserName(ctx, ""))
	name, err = s.UserName(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserName, name)
}
