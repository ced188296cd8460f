package exercises

import (
	"context"
	"path/filepath"
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
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "exercises.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	owner := entities.User{FirstName: "Test", LastName: "User", Email: "owner@example.com"}
	require.NoError(t, db.DB.Create(&owner).Error)

	return NewRepository(db.DB), db.DB, owner.ID
}

func strPtr(s string) *string { return &s }

func TestRepository_Create(t *testing.T) {
	repo, _, ownerID := setupTestDB(t)
	ctx := context.Background()

	exercise := &entities.Exercise{UserID: ownerID, Name: "Bench Press", Description: strPtr("Flat barbell")}
	require.NoError(t, repo.Create(ctx, exercise))
	assert.NotZero(t, exercise.ID)

	err := repo.Create(ctx, &entities.Exercise{UserID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestRepository_GetByID_PreloadsTagsInLinkOrder(t *testing.T) {
	repo, db, ownerID := setupTestDB(t)
	ctx := context.Background()

	exercise := &entities.Exercise{UserID: ownerID, Name: "Bench Press"}
	require.NoError(t, repo.Create(ctx, exercise))

	// Tag ids ascend, link order is the reverse.
	chest := entities.Tag{UserID: ownerID, Name: "Chest"}
	push := entities.Tag{UserID: ownerID, Name: "Push"}
	require.NoError(t, db.Create(&chest).Error)
	require.NoError(t, db.Create(&push).Error)
	require.NoError(t, db.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: push.ID}).Error)
	require.NoError(t, db.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: chest.ID}).Error)

	got, err := repo.GetByID(ctx, exercise.ID)
	require.NoError(t, err)
	require.Len(t, got.ExerciseTags, 2)
	require.NotNil(t, got.ExerciseTags[0].Tag)
	assert.Equal(t, "Push", got.ExerciseTags[0].Tag.Name)
	assert.Equal(t, "Chest", got.ExerciseTags[1].Tag.Name)

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, _, ownerID := setupTestDB(t)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	require.NoError(t, repo.Create(ctx, &entities.Exercise{UserID: ownerID, Name: "Squat"}))
	require.NoError(t, repo.Create(ctx, &entities.Exercise{UserID: ownerID, Name: "Deadlift"}))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Squat", list[0].Name)
	assert.Empty(t, list[0].ExerciseTags)
}

func TestRepository_Update(t *testing.T) {
	repo, _, ownerID := setupTestDB(t)
	ctx := context.Background()

	exercise := &entities.Exercise{UserID: ownerID, Name: "Squat"}
	require.NoError(t, repo.Create(ctx, exercise))

	updated, err := repo.Update(ctx, exercise.ID, Patch{Description: nullable.NewNullableWithValue("Low bar")})
	require.NoError(t, err)
	assert.Equal(t, "Squat", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Low bar", *updated.Description)

	unchanged, err := repo.Update(ctx, exercise.ID, Patch{})
	require.NoError(t, err)
	assert.Equal(t, updated.UpdatedAt.Unix(), unchanged.UpdatedAt.Unix())
	require.NotNil(t, unchanged.Description)

	cleared, err := repo.Update(ctx, exercise.ID, Patch{Description: nullable.NewNullNullable[string]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Description)
	assert.Equal(t, "Squat", cleared.Name)

	_, err = repo.Update(ctx, 999, Patch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_Delete_CascadesToSetsAndLinks(t *testing.T) {
	repo, db, ownerID := setupTestDB(t)
	ctx := context.Background()

	exercise := &entities.Exercise{UserID: ownerID, Name: "Bench Press"}
	require.NoError(t, repo.Create(ctx, exercise))
	tag := entities.Tag{UserID: ownerID, Name: "Chest"}
	require.NoError(t, db.Create(&tag).Error)
	require.NoError(t, db.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: tag.ID}).Error)
	require.NoError(t, db.Create(&entities.Set{ExerciseID: exercise.ID, Reps: 8}).Error)

	require.NoError(t, repo.Delete(ctx, exercise.ID))
	assert.ErrorIs(t, repo.Delete(ctx, exercise.ID), ErrNotFound)

	var links, sets, tags int64
	require.NoError(t, db.Model(&entities.ExerciseTag{}).Count(&links).Error)
	require.NoError(t, db.Model(&entities.Set{}).Count(&sets).Error)
	require.NoError(t, db.Model(&entities.Tag{}).Count(&tags).Error)
	assert.Zero(t, links)
	assert.Zero(t, sets)
	assert.Equal(t, int64(1), tags, "tag itself survives")
}
