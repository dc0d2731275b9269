package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workout представляет одну записанную тренировку (упражнение + подходы),
// соответствует таблице workouts в бд
type Workout struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `json:"userId" gorm:"type:uuid;column:user_id"`
	ExerciseName string    `json:"exerciseName" gorm:"column:exercise_name"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	CreatedAt    time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Workout) TableName() string {
	return "workouts"
}

// NewWorkoutInput — входные данные для записи тренировки.
// Числовые поля валидируются на уровне usecase.
type NewWorkoutInput struct {
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	Weight       float64 `json:"weight"`
}
