package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zwrk/workout-api/internal/config"
	"github.com/zwrk/workout-api/internal/entities"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "./workout.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", SQLiteDSN("./workout.db"))
	assert.Equal(t, "file.db?cache=shared&_foreign_keys=on&_busy_timeout=5000&_txlock=immediate", SQLiteDSN("file.db?cache=shared"))
}

func TestOpen_RejectsBadConfig(t *testing.T) {
	_, err := Open(config.Database{Driver: "mysql", Path: "x.db"})
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = Open(config.Database{Driver: config.DriverPostgres})
	assert.ErrorContains(t, err, "DATABASE_DSN")

	_, err = Open(config.Database{Driver: config.DriverSQLite})
	assert.Error(t, err)
}

func TestOpen_MigratesTables(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"users", "exercises", "tags", "exercises_tags", "sets", "audit_events"} {
		assert.True(t, db.DB.Migrator().HasTable(table), table)
	}
	assert.Equal(t, config.DriverSQLite, db.Driver())
}

func TestSeedOwner(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SeedOwner(1, zap.NewNop()))
	require.NoError(t, db.SeedOwner(1, nil))

	var count int64
	require.NoError(t, db.DB.Model(&entities.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var owner entities.User
	require.NoError(t, db.DB.First(&owner, 1).Error)
	assert.Equal(t, "owner+1@zwrk.local", owner.Email)
}

func TestConstraints(t *testing.T) {
	db := setupTestDB(t)

	user := entities.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, db.DB.Create(&user).Error)

	t.Run("duplicate email is translated", func(t *testing.T) {
		dup := entities.User{FirstName: "A", LastName: "L", Email: "ada@example.com"}
		err := db.DB.Create(&dup).Error
		assert.True(t, IsDuplicateKey(err), "got %v", err)
	})

	t.Run("dangling owner is rejected", func(t *testing.T) {
		orphan := entities.Exercise{UserID: 999, Name: "Ghost"}
		err := db.DB.Create(&orphan).Error
		assert.True(t, IsForeignKeyViolation(err), "got %v", err)
	})

	t.Run("exercise tag pair is unique", func(t *testing.T) {
		exercise := entities.Exercise{UserID: user.ID, Name: "Squat"}
		tag := entities.Tag{UserID: user.ID, Name: "Legs"}
		require.NoError(t, db.DB.Create(&exercise).Error)
		require.NoError(t, db.DB.Create(&tag).Error)

		require.NoError(t, db.DB.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: tag.ID}).Error)
		err := db.DB.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: tag.ID}).Error
		assert.True(t, IsDuplicateKey(err), "got %v", err)
	})
}

func TestCascadeDelete(t *testing.T) {
	db := setupTestDB(t)

	user := entities.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	require.NoError(t, db.DB.Create(&user).Error)
	exercise := entities.Exercise{UserID: user.ID, Name: "Bench Press"}
	require.NoError(t, db.DB.Create(&exercise).Error)
	tag := entities.Tag{UserID: user.ID, Name: "Chest"}
	require.NoError(t, db.DB.Create(&tag).Error)
	require.NoError(t, db.DB.Create(&entities.ExerciseTag{ExerciseID: exercise.ID, TagID: tag.ID}).Error)
	require.NoError(t, db.DB.Create(&entities.Set{ExerciseID: exercise.ID, Reps: 5}).Error)

	require.NoError(t, db.DB.Delete(&entities.User{}, user.ID).Error)

	for _, model := range []any{&entities.Exercise{}, &entities.Tag{}, &entities.ExerciseTag{}, &entities.Set{}} {
		var count int64
		require.NoError(t, db.DB.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T rows left behind", model)
	}
}

func TestIsHelpers_Nil(t *testing.T) {
	assert.False(t, IsDuplicateKey(nil))
	assert.False(t, IsForeignKeyViolation(nil))
	assert.False(t, IsNotFound(nil))
}
