package database

import "gorm.io/gorm"

// WithExerciseTags preloads an exercise's tags through its join rows, in the
// order the links were made.
func WithExerciseTags(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ExerciseTags", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercises_tags.id ASC")
		}).
		Preload("ExerciseTags.Tag")
}

// WithTagExercises is the tag-side counterpart of WithExerciseTags.
func WithTagExercises(db *gorm.DB) *gorm.DB {
	return db.
		Preload("ExerciseTags", func(db *gorm.DB) *gorm.DB {
			return db.Order("exercises_tags.id ASC")
		}).
		Preload("ExerciseTags.Exercise")
}
