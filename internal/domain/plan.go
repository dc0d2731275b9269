package domain

// ExercisePrescription — одно упражнение в плане, сгенерированном AI-моделью.
// Reps — текстовый диапазон повторений, например "8-12".
type ExercisePrescription struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// DayPlan — один день плана с фокусом (например "Push Day") и упражнениями.
type DayPlan struct {
	Day       int                    `json:"day"`
	Focus     string                 `json:"focus"`
	Exercises []ExercisePrescription `json:"exercises"`
}

// RecommendationPlan — многодневный план тренировок от внешней модели.
// Не персистится: создается заново на каждый запрос.
type RecommendationPlan struct {
	Plan []DayPlan `json:"plan"`
}
