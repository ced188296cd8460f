package associations

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwrk/workout-api/internal/entities"
)

func TestShapeExercise(t *testing.T) {
	exercise := entities.Exercise{
		ID:   1,
		Name: "Bench Press",
		ExerciseTags: []entities.ExerciseTag{
			{ID: 5, ExerciseID: 1, TagID: 9, Tag: &entities.Tag{ID: 9, Name: "Push"}},
			{ID: 6, ExerciseID: 1, TagID: 3, Tag: &entities.Tag{ID: 3, Name: "Chest"}},
			{ID: 7, ExerciseID: 1, TagID: 4},
		},
	}

	shaped := ShapeExercise(exercise)

	require.Len(t, shaped.Tags, 2)
	assert.Equal(t, "Push", shaped.Tags[0].Name)
	assert.Equal(t, "Chest", shaped.Tags[1].Name)
	assert.Nil(t, shaped.ExerciseTags)
}

func TestShapeExercise_JSON(t *testing.T) {
	shaped := ShapeExercise(entities.Exercise{ID: 1, UserID: 2, Name: "Squat"})

	raw, err := json.Marshal(shaped)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, []any{}, body["tags"])
	assert.Equal(t, "Squat", body["name"])
	assert.EqualValues(t, 2, body["userId"])
	assert.Nil(t, body["description"])
	assert.NotContains(t, body, "ExerciseTags")
	assert.NotContains(t, body, "exerciseTags")
}

func TestShapeTag(t *testing.T) {
	tag := entities.Tag{
		ID:   3,
		Name: "Chest",
		ExerciseTags: []entities.ExerciseTag{
			{ID: 1, ExerciseID: 8, TagID: 3, Exercise: &entities.Exercise{ID: 8, Name: "Cable Fly"}},
			{ID: 2, ExerciseID: 1, TagID: 3, Exercise: &entities.Exercise{ID: 1, Name: "Bench Press"}},
		},
	}

	shaped := ShapeTag(tag)

	require.Len(t, shaped.Exercises, 2)
	assert.Equal(t, "Cable Fly", shaped.Exercises[0].Name)

	raw, err := json.Marshal(ShapeTag(entities.Tag{ID: 4, Name: "Legs"}))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"exercises":[]`)
}

func TestShapeLists(t *testing.T) {
	assert.NotNil(t, ShapeExercises(nil))
	assert.Empty(t, ShapeExercises(nil))
	assert.NotNil(t, ShapeTags(nil))
	assert.Len(t, ShapeTags([]entities.Tag{{ID: 1}, {ID: 2}}), 2)
}
