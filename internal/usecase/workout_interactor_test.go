package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/GoFitLab/FitCoach/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWorkout(t *testing.T) {
	store := &fakeWorkoutStorage{}
	uc := NewWorkoutUseCase(store, discardLogger())
	userID := uuid.New()

	workout, err := uc.AddWorkout(context.Background(), userID, domain.NewWorkoutInput{
		ExerciseName: "Bench Press",
		Sets:         4,
		Reps:         10,
		Weight:       80,
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, workout.ID)
	assert.Equal(t, userID, workout.UserID)
	assert.Equal(t, "Bench Press", workout.ExerciseName)
	assert.False(t, workout.CreatedAt.IsZero())
	assert.Len(t, store.workouts, 1)
}

func TestAddWorkoutValidation(t *testing.T) {
	uc := NewWorkoutUseCase(&fakeWorkoutStorage{}, discardLogger())
	userID := uuid.New()

	cases := []struct {
		name  string
		input domain.NewWorkoutInput
	}{
		{"empty exercise name", domain.NewWorkoutInput{ExerciseName: "  ", Sets: 3, Reps: 10, Weight: 50}},
		{"zero sets", domain.NewWorkoutInput{ExerciseName: "Squat", Sets: 0, Reps: 10, Weight: 50}},
		{"negative reps", domain.NewWorkoutInput{ExerciseName: "Squat", Sets: 3, Reps: -1, Weight: 50}},
		{"negative weight", domain.NewWorkoutInput{ExerciseName: "Squat", Sets: 3, Reps: 10, Weight: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.AddWorkout(context.Background(), userID, tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

// Вес 0 допустим: упражнения с собственным весом.
func TestAddWorkoutBodyweight(t *testing.T) {
	uc := NewWorkoutUseCase(&fakeWorkoutStorage{}, discardLogger())

	_, err := uc.AddWorkout(context.Background(), uuid.New(), domain.NewWorkoutInput{
		ExerciseName: "Pull Up",
		Sets:         3,
		Reps:         8,
		Weight:       0,
	})
	assert.NoError(t, err)
}

func TestListWorkoutsNewestFirstAndOwnerScoped(t *testing.T) {
	store := &fakeWorkoutStorage{}
	uc := NewWorkoutUseCase(store, discardLogger())

	owner := uuid.New()
	stranger := uuid.New()
	base := time.Now().Add(-time.Hour)

	seed := []domain.Workout{
		{ID: uuid.New(), UserID: owner, ExerciseName: "Squat", Sets: 5, Reps: 5, Weight: 100, CreatedAt: base},
		{ID: uuid.New(), UserID: owner, ExerciseName: "Deadlift", Sets: 3, Reps: 5, Weight: 140, CreatedAt: base.Add(10 * time.Minute)},
		{ID: uuid.New(), UserID: stranger, ExerciseName: "Curl", Sets: 3, Reps: 12, Weight: 15, CreatedAt: base.Add(20 * time.Minute)},
	}
	for i := range seed {
		require.NoError(t, store.SaveWorkout(context.Background(), &seed[i]))
	}

	// свежая запись через usecase должна оказаться первой
	added, err := uc.AddWorkout(context.Background(), owner, domain.NewWorkoutInput{
		ExerciseName: "Overhead Press", Sets: 4, Reps: 8, Weight: 45,
	})
	require.NoError(t, err)

	listed, err := uc.ListWorkouts(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, listed, 3)

	assert.Equal(t, added.ID, listed[0].ID)
	assert.Equal(t, "Deadlift", listed[1].ExerciseName)
	assert.Equal(t, "Squat", listed[2].ExerciseName)

	for _, w := range listed {
		assert.Equal(t, owner, w.UserID, "чужие записи не должны попадать в выдачу")
	}
}
