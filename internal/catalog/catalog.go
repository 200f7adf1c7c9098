// Package catalog holds the fixed per-category exercise lists. The first
// entry of each list is the default exercise for a newly added draft set.
package catalog

import "github.com/claude/liftlog/internal/models"

var pushExercises = []string{
	"Barbell Bench Press",
	"Overhead Press",
	"Incline Dumbbell Press",
	"Dumbbell Shoulder Press",
	"Cable Fly",
	"Lateral Raise",
	"Tricep Pushdown",
	"Overhead Tricep Extension",
}

var pullExercises = []string{
	"Deadlift",
	"Pull-Up",
	"Barbell Row",
	"Lat Pulldown",
	"Seated Cable Row",
	"Face Pull",
	"Barbell Curl",
	"Hammer Curl",
}

var legsExercises = []string{
	"Barbell Back Squat",
	"Romanian Deadlift",
	"Leg Press",
	"Bulgarian Split Squat",
	"Leg Extension",
	"Leg Curl",
	"Standing Calf Raise",
	"Hip Thrust",
}

var byType = map[models.WorkoutType][]string{
	models.TypePush: pushExercises,
	models.TypePull: pullExercises,
	models.TypeLegs: legsExercises,
}

// Exercises returns the catalog for a category. The slice is shared; callers
// must not mutate it.
func Exercises(t models.WorkoutType) []string {
	return byType[t]
}

// DefaultExercise returns the first catalog entry for a category, or an
// empty string for an unknown category.
func DefaultExercise(t models.WorkoutType) string {
	list := byType[t]
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

// All returns the full catalog keyed by category, for the catalog endpoint.
func All() map[models.WorkoutType][]string {
	return byType
}
