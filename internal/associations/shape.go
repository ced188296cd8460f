package associations

import "github.com/zwrk/workout-api/internal/entities"

// ExerciseWithTags is the client view of an exercise.
type ExerciseWithTags struct {
	entities.Exercise
	Tags []entities.Tag `json:"tags"`
}

// TagWithExercises is the client view of a tag.
type TagWithExercises struct {
	entities.Tag
	Exercises []entities.Exercise `json:"exercises"`
}

// ShapeExercise flattens preloaded join rows into a tags list.
func ShapeExercise(exercise entities.Exercise) ExerciseWithTags {
	tags := make([]entities.Tag, 0, len(exercise.ExerciseTags))
	for _, link := range exercise.ExerciseTags {
		if link.Tag == nil {
			continue
		}
		tag := *link.Tag
		tag.ExerciseTags = nil
		tags = append(tags, tag)
	}
	exercise.ExerciseTags = nil
	exercise.Sets = nil
	return ExerciseWithTags{Exercise: exercise, Tags: tags}
}

func ShapeExercises(exercises []entities.Exercise) []ExerciseWithTags {
	shaped := make([]ExerciseWithTags, 0, len(exercises))
	for _, exercise := range exercises {
		shaped = append(shaped, ShapeExercise(exercise))
	}
	return shaped
}

// ShapeTag flattens preloaded join rows into an exercises list.
func ShapeTag(tag entities.Tag) TagWithExercises {
	exercises := make([]entities.Exercise, 0, len(tag.ExerciseTags))
	for _, link := range tag.ExerciseTags {
		if link.Exercise == nil {
			continue
		}
		exercise := *link.Exercise
		exercise.ExerciseTags = nil
		exercise.Sets = nil
		exercises = append(exercises, exercise)
	}
	tag.ExerciseTags = nil
	return TagWithExercises{Tag: tag, Exercises: exercises}
}

func ShapeTags(tags []entities.Tag) []TagWithExercises {
	shaped := make([]TagWithExercises, 0, len(tags))
	for _, tag := range tags {
		shaped = append(shaped, ShapeTag(tag))
	}
	return shaped
}
