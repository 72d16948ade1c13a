// File: /repositories/user_repository_test.go
package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSetProUnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	assert.ErrorIs(t, repo.SetPro("no-such-user"), gorm.ErrRecordNotFound)

	alice := createTestUser(t, db, "alice")
	require.NoError(t, repo.SetPro(alice.ID))

	reloaded, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsPro)
}

func TestClaimFirebaseUIDStealsFromPreviousHolder(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	require.NoError(t, repo.ClaimFirebaseUID(alice.ID, "device-1"))
	require.NoError(t, repo.ClaimFirebaseUID(bob.ID, "device-1"))

	reloadedAlice, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Nil(t, reloadedAlice.FirebaseUID)

	reloadedBob, err := repo.GetByID(bob.ID)
	require.NoError(t, err)
	require.NotNil(t, reloadedBob.FirebaseUID)
	assert.Equal(t, "device-1", *reloadedBob.FirebaseUID)
}

func TestUpdateFieldsPartial(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	alice := createTestUser(t, db, "alice")

	require.NoError(t, repo.UpdateFields(alice.ID, map[string]interface{}{"bio": "I teach Go"}))
	require.NoError(t, repo.UpdateFields(alice.ID, nil))

	reloaded, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "I teach Go", reloaded.Bio)
	assert.Equal(t, "alice", reloaded.Username)
}
