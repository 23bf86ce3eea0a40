package repository

import (
	"testing"

	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Username: "ada", Email: "ada@quill.dev", Password: "hash"}
	require.NoError(t, repo.Create(testCtx(), user))
	assert.NotZero(t, user.ID)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "ada")

	err := repo.Create(testCtx(), &models.User{Username: "ada", Email: "other@quill.dev", Password: "hash"})
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUserRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	user := createTestUser(t, db, "ada")

	got, err := repo.GetByID(testCtx(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", got.Username)

	_, err = repo.GetByID(testCtx(), 999)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "ada")

	got, err := repo.GetByUsername(testCtx(), "ada")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada@quill.dev", got.Email)

	// Missing users are a nil result, not an error.
	got, err = repo.GetByUsername(testCtx(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	createTestUser(t, db, "ada")

	got, err := repo.GetByEmail(testCtx(), "ada@quill.dev")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ada", got.Username)

	got, err = repo.GetByEmail(testCtx(), "ghost@quill.dev")
	require.NoError(t, err)
	assert.Nil(t, got)
}
