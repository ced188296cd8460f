package tags

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zwrk/workout-api/internal/database"
	"github.com/zwrk/workout-api/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, uint) {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "tags.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	owner := entities.User{FirstName: "Test", LastName: "User", Email: "owner@example.com"}
	require.NoError(t, db.DB.Create(&owner).Error)

	return NewRepository(db.DB), db.DB, owner.ID
}

func strPtr(s string) *string { return &s }

func TestRepository_CreateAndGet(t *testing.T) {
	repo, _, ownerID := setupTestDB(t)
	ctx := context.Background()

	tag := &entities.Tag{UserID: ownerID, Name: "Chest", Description: strPtr(strings.Repeat("x", 1000))}
	require.NoError(t, repo.Create(ctx, tag))
	assert.NotZero(t, tag.ID)

	got, err := repo.GetByID(ctx, tag.ID)
	require.NoError(t, err)
	assert.Equal(t, "Chest", got.Name)
	assert.Empty(t, got.ExerciseTags)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Create(ctx, &entities.Tag{UserID: 999, Name: "Orphan"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestRepository_GetByID_PreloadsExercises(t *testing.T) {
	repo, db, ownerID := setupTestDB(t)
	ctx := context.Background()

	tag := &entities.Tag{UserID: ownerID, Name: "Chest"}
	require.NoError(t, repo.Create(ctx, tag))
	bench := entities.Exercise{UserID: ownerID, Name: "Bench Press"}
	fly := entities.Exercise{UserID: ownerID, Name: "Cable Fly"}
	require.NoError(t, db.Create(&bench).Error)
	require.NoError(t, db.Create(&fly).Error)
	require.NoError(t, db.Create(&entities.ExerciseTag{ExerciseID: fly.ID, TagID: tag.ID}).Error)
	require.NoError(t, db.Create(&entities.ExerciseTag{ExerciseID: bench.ID, TagID: tag.ID}).Error)

	got, err := repo.GetByID(ctx, tag.ID)
	require.NoError(t, err)
	require.Len(t, got.ExerciseTags, 2)
	assert.Equal(t, "Cable Fly", got.ExerciseTags[0].Exercise.Name)
	assert.Equal(t, "Bench Press", got.ExerciseTags[1].Exercise.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Len(t, list[0].ExerciseTags, 2)
}

func TestRepository_Update(t *testing.T) {
	repo, _, ownerID := setupTestDB(t)
	ctx := context.Background()

	tag := &entities.Tag{UserID: ownerID, Name: "Chest"}
	require.NoError(t, repo.Create(ctx, tag))

	updated, err := repo.Update(ctx, tag.ID, Patch{Name: strPtr("Pecs")})
	require.NoError(t, err)
	assert.Equal(t, "Pecs", updated.Name)

	described, err := repo.Update(ctx, tag.ID, Patch{Description: nullable.NewNullableWithValue("Upper body push")})
	require.NoError(t, err)
	require.NotNil(t, described.Description)

	cleared, err := repo.Update(ctx, tag.ID, Patch{Description: nullable.NewNullNullable[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, "Pecs", cleared.Name)

	_, err = repo.Update(ctx, 999, Patch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Delete_RemovesLinks(t *testing.T) {
	repo, db, ownerID := setupTestDB(t)
	ctx := context.Background()

	tag := &entities.Tag{UserID: ownerID, Name: "Chest"}
	require.NoError(t, repo.Create(ctx, tag))
	exercise := entities.Exercise{UserID: ownerID, Name: "Bench Press"}
	require.NoError(t, db.Create(&exercise).Error)
	require.NoError(t, db.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: tag.ID}).Error)

	require.NoError(t, repo.Delete(ctx, tag.ID))
	assert.ErrorIs(t, repo.Delete(ctx, tag.ID), ErrNotFound)

	var links, exercises int64
	require.NoError(t, db.Model(&entities.ExerciseTag{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.Exercise{}).Count(&exercises).Error)
	assert.Zero(t, links)
	assert.Equal(t, int64(1), exercises)
}
