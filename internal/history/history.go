// Package history computes derived views over the stored session list.
// Every query is a pure function: callers re-run them after each mutation
// instead of subscribing to change notifications.
package history

import (
	"math"
	"sort"

	"github.com/claude/liftlog/internal/models"
)

// BestSet pairs an exercise's strongest recorded set with its estimated
// one-rep max. The estimate is derived on query, never stored.
type BestSet struct {
	models.ExerciseSet
	OneRepMax int `json:"one_rep_max"`
}

// LastWorkout returns the most recent session of the given category, or nil
// if none exists. The scan keeps the first maximal date seen; storage order
// is newest-first, so on an exact date tie the later-inserted session wins.
func LastWorkout(sessions []models.WorkoutSession, t models.WorkoutType) *models.WorkoutSession {
	var last *models.WorkoutSession
	for i := range sessions {
		s := &sessions[i]
		if s.Type != t {
			continue
		}
		if last == nil || s.Date.After(last.Date) {
			last = s
		}
	}
	if last == nil {
		return nil
	}
	out := *last
	return &out
}

// BestSets returns the strongest set per exercise across all sessions of
// the given category, sorted by exercise name for stable presentation.
// A candidate is replaced only by a strict win on (weight, reps, timestamp)
// in that priority order; a set equal on all three keeps the earlier one.
func BestSets(sessions []models.WorkoutSession, t models.WorkoutType) []BestSet {
	best := make(map[string]models.ExerciseSet)
	for _, s := range sessions {
		if s.Type != t {
			continue
		}
		for _, set := range s.Sets {
			cur, ok := best[set.Exercise]
			if !ok || beats(set, cur) {
				best[set.Exercise] = set
			}
		}
	}

	out := make([]BestSet, 0, len(best))
	for _, set := range best {
		out = append(out, BestSet{
			ExerciseSet: set,
			OneRepMax:   OneRepMax(set.Weight, set.Reps),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Exercise < out[j].Exercise
	})
	return out
}

// beats reports whether a strictly wins over b under the lexicographic
// priority (weight desc, reps desc, timestamp desc).
func beats(a, b models.ExerciseSet) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	if a.Reps != b.Reps {
		return a.Reps > b.Reps
	}
	return a.Timestamp.Time().After(b.Timestamp.Time())
}

// OneRepMax estimates a one-rep max from a weight/reps pair using the Epley
// formula, rounded to the nearest integer with halves rounding up.
func OneRepMax(weight float64, reps int) int {
	return int(math.Round(weight * (1 + float64(reps)/30)))
}
