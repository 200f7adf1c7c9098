// Package draft holds the in-progress set list being built before a save.
// Draft entries are freely created, patched and removed; none of them
// outlive the save that commits them.
package draft

import (
	"github.com/claude/liftlog/internal/catalog"
	"github.com/claude/liftlog/internal/models"
)

// SetInput carries the optional fields of a new draft set. Unset fields
// fall back to defaults: the category's first catalog exercise, zero
// weight and reps, empty notes.
type SetInput struct {
	Exercise string  `json:"exercise,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

// SetPatch carries a partial update; only present (non-nil) fields are
// applied.
type SetPatch struct {
	Exercise *string  `json:"exercise,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Reps     *int     `json:"reps,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// Builder is the ordered, mutable pre-save set list. Not safe for
// concurrent use; the owning controller serializes access.
type Builder struct {
	sets []models.ExerciseSet
}

// NewBuilder returns an empty draft.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSet appends a new set with a fresh id and current timestamp, filling
// unspecified fields from the category's defaults. Returns the created set.
func (b *Builder) AddSet(t models.WorkoutType, in SetInput) models.ExerciseSet {
	exercise := in.Exercise
	if exercise == "" {
		exercise = catalog.DefaultExercise(t)
	}
	set := models.ExerciseSet{
		ID:        models.NewID(),
		Exercise:  exercise,
		Weight:    in.Weight,
		Reps:      in.Reps,
		Notes:     in.Notes,
		Timestamp: models.Now(),
	}
	b.sets = append(b.sets, set)
	return set
}

// UpdateSet applies the patch to the matching entry. Reports whether a set
// with the id existed; an unknown id is a no-op.
func (b *Builder) UpdateSet(id string, patch SetPatch) bool {
	for i := range b.sets {
		if b.sets[i].ID != id {
			continue
		}
		if patch.Exercise != nil {
			b.sets[i].Exercise = *patch.Exercise
		}
		if patch.Weight != nil {
			b.sets[i].Weight = *patch.Weight
		}
		if patch.Reps != nil {
			b.sets[i].Reps = *patch.Reps
		}
		if patch.Notes != nil {
			b.sets[i].Notes = *patch.Notes
		}
		return true
	}
	return false
}

// RemoveSet deletes the matching entry. Reports whether a set with the id
// existed; an unknown id is a no-op.
func (b *Builder) RemoveSet(id string) bool {
	for i := range b.sets {
		if b.sets[i].ID == id {
			b.sets = append(b.sets[:i], b.sets[i+1:]...)
			return true
		}
	}
	return false
}

// Sets returns a copy of the draft in entry order.
func (b *Builder) Sets() []models.ExerciseSet {
	out := make([]models.ExerciseSet, len(b.sets))
	copy(out, b.sets)
	return out
}

// Len returns the number of draft entries.
func (b *Builder) Len() int {
	return len(b.sets)
}

// Clear empties the draft after a successful save.
func (b *Builder) Clear() {
	b.sets = nil
}
