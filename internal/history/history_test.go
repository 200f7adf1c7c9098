package history

import (
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
)

var day = time.Date(2024, 2, 6, 18, 0, 0, 0, time.UTC)

func session(id string, t models.WorkoutType, date time.Time, sets ...models.ExerciseSet) models.WorkoutSession {
	return models.WorkoutSession{ID: id, Type: t, Date: date, Sets: sets}
}

func set(exercise string, weight float64, reps int, ts time.Time) models.ExerciseSet {
	return models.ExerciseSet{
		ID:        models.NewID(),
		Exercise:  exercise,
		Weight:    weight,
		Reps:      reps,
		Timestamp: models.UnixMillis(ts),
	}
}

// TestLastWorkoutPicksMaxDate verifies the most recent session of the
// selected category wins regardless of storage position.
func TestLastWorkoutPicksMaxDate(t *testing.T) {
	sessions := []models.WorkoutSession{
		session("old-push", models.TypePush, day),
		session("new-push", models.TypePush, day.AddDate(0, 0, 2)),
		session("pull", models.TypePull, day.AddDate(0, 0, 3)),
	}

	got := LastWorkout(sessions, models.TypePush)
	if got == nil || got.ID != "new-push" {
		t.Fatalf("got %+v, want session new-push", got)
	}
}

// TestLastWorkoutNone verifies a category with no sessions returns nil.
func TestLastWorkoutNone(t *testing.T) {
	sessions := []models.WorkoutSession{session("push", models.TypePush, day)}
	if got := LastWorkout(sessions, models.TypeLegs); got != nil {
		t.Errorf("got %+v, want nil", got)
	}
}

// TestLastWorkoutDateTie pins the tie policy: storage is newest-first and
// the first maximal date seen is kept, so the later-inserted session wins.
func TestLastWorkoutDateTie(t *testing.T) {
	sessions := []models.WorkoutSession{
		session("inserted-later", models.TypePush, day),
		session("inserted-earlier", models.TypePush, day),
	}

	got := LastWorkout(sessions, models.TypePush)
	if got == nil || got.ID != "inserted-later" {
		t.Fatalf("got %+v, want inserted-later", got)
	}
}

// TestBestSetsPriorityOrder verifies the strict lexicographic priority:
// weight first, then reps, then timestamp.
func TestBestSetsPriorityOrder(t *testing.T) {
	sessions := []models.WorkoutSession{
		session("a", models.TypePush, day,
			set("Barbell Bench Press", 100, 5, day),
			set("Overhead Press", 60, 8, day),
		),
		session("b", models.TypePush, day.AddDate(0, 0, 1),
			set("Barbell Bench Press", 95, 12, day.AddDate(0, 0, 1)), // lighter, loses despite reps
			set("Overhead Press", 60, 10, day.AddDate(0, 0, 1)),      // same weight, more reps, wins
		),
	}

	best := BestSets(sessions, models.TypePush)
	if len(best) != 2 {
		t.Fatalf("got %d best sets, want 2", len(best))
	}
	// Sorted by exercise name: Barbell Bench Press, Overhead Press.
	if best[0].Weight != 100 || best[0].Reps != 5 {
		t.Errorf("bench best = %+v, want 100x5", best[0].ExerciseSet)
	}
	if best[1].Weight != 60 || best[1].Reps != 10 {
		t.Errorf("ohp best = %+v, want 60x10", best[1].ExerciseSet)
	}
}

// TestBestSetsTimestampTieBreak verifies that with equal weight and reps the
// more recent timestamp wins, and a set equal on all three keeps the
// earlier-seen candidate.
func TestBestSetsTimestampTieBreak(t *testing.T) {
	early := set("Deadlift", 180, 3, day)
	late := set("Deadlift", 180, 3, day.Add(time.Hour))
	sessions := []models.WorkoutSession{
		session("a", models.TypePull, day, early, late),
	}

	best := BestSets(sessions, models.TypePull)
	if len(best) != 1 {
		t.Fatalf("got %d best sets, want 1", len(best))
	}
	if best[0].ID != late.ID {
		t.Errorf("best = %s, want the later-timestamped set", best[0].ID)
	}

	// Exact duplicate of the current candidate must not replace it.
	dup := late
	dup.ID = "duplicate"
	sessions[0].Sets = append(sessions[0].Sets, dup)
	best = BestSets(sessions, models.TypePull)
	if best[0].ID != late.ID {
		t.Errorf("best = %s, want earlier-seen candidate kept on full tie", best[0].ID)
	}
}

// TestBestSetsDeterministicAcrossOrder verifies the unique maximum is
// selected regardless of input ordering.
func TestBestSetsDeterministicAcrossOrder(t *testing.T) {
	s1 := set("Barbell Row", 80, 8, day)
	s2 := set("Barbell Row", 90, 6, day.Add(time.Minute))
	s3 := set("Barbell Row", 85, 10, day.Add(2*time.Minute))

	orders := [][]models.ExerciseSet{
		{s1, s2, s3}, {s3, s2, s1}, {s2, s1, s3},
	}
	for _, sets := range orders {
		sessions := []models.WorkoutSession{session("a", models.TypePull, day, sets...)}
		best := BestSets(sessions, models.TypePull)
		if len(best) != 1 || best[0].ID != s2.ID {
			t.Errorf("order %v: best = %+v, want the 90kg set", sets, best)
		}
	}
}

// TestBestSetsIgnoresOtherCategories verifies sets from other categories
// never leak into the result.
func TestBestSetsIgnoresOtherCategories(t *testing.T) {
	sessions := []models.WorkoutSession{
		session("push", models.TypePush, day, set("Barbell Bench Press", 100, 5, day)),
		session("pull", models.TypePull, day, set("Deadlift", 200, 1, day)),
	}
	best := BestSets(sessions, models.TypePush)
	if len(best) != 1 || best[0].Exercise != "Barbell Bench Press" {
		t.Errorf("got %+v, want only Barbell Bench Press", best)
	}
}

// TestOneRepMax pins the Epley estimates, including the half-up rounding.
func TestOneRepMax(t *testing.T) {
	tests := []struct {
		weight float64
		reps   int
		want   int
	}{
		{100, 10, 133}, // 133.33 rounds down
		{50, 0, 50},    // zero reps is the weight itself
		{100, 5, 117},  // 116.67 rounds up
		{0, 10, 0},
		{105, 10, 140}, // exactly 140.0
		{70, 5, 82},    // 81.67 rounds up
	}
	for _, tt := range tests {
		if got := OneRepMax(tt.weight, tt.reps); got != tt.want {
			t.Errorf("OneRepMax(%v, %d) = %d, want %d", tt.weight, tt.reps, got, tt.want)
		}
	}
}

// TestBestSetsCarryOneRepMax verifies the estimate rides along with each
// best set.
func TestBestSetsCarryOneRepMax(t *testing.T) {
	sessions := []models.WorkoutSession{
		session("a", models.TypePush, day, set("Barbell Bench Press", 100, 5, day)),
	}
	best := BestSets(sessions, models.TypePush)
	if len(best) != 1 || best[0].OneRepMax != 117 {
		t.Errorf("got %+v, want one_rep_max 117", best)
	}
}
