package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// WorkoutType is the fixed category of a workout session.
type WorkoutType string

const (
	TypePush WorkoutType = "Push"
	TypePull WorkoutType = "Pull"
	TypeLegs WorkoutType = "Legs"
)

// WorkoutTypes lists all valid categories in display order.
var WorkoutTypes = []WorkoutType{TypePush, TypePull, TypeLegs}

// ParseWorkoutType validates a category string.
func ParseWorkoutType(s string) (WorkoutType, error) {
	switch WorkoutType(s) {
	case TypePush, TypePull, TypeLegs:
		return WorkoutType(s), nil
	}
	return "", fmt.Errorf("unknown workout type %q", s)
}

// UnixMillis is a time.Time that serializes as an epoch-milliseconds integer.
type UnixMillis time.Time

// Now returns the current time as UnixMillis.
func Now() UnixMillis {
	return UnixMillis(time.Now())
}

// Time returns the underlying time.Time.
func (m UnixMillis) Time() time.Time {
	return time.Time(m)
}

// MarshalJSON implements json.Marshaler.
func (m UnixMillis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(time.Time(m).UnixMilli(), 10)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *UnixMillis) UnmarshalJSON(data []byte) error {
	ms, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing epoch milliseconds: %w", err)
	}
	*m = UnixMillis(time.UnixMilli(ms))
	return nil
}

// ExerciseSet is one performed set. The id is assigned at creation and never
// changes; the timestamp only breaks ties in best-set selection.
type ExerciseSet struct {
	ID        string     `json:"id"`
	Exercise  string     `json:"exercise"`
	Weight    float64    `json:"weight"`
	Reps      int        `json:"reps"`
	Notes     string     `json:"notes,omitempty"`
	Timestamp UnixMillis `json:"timestamp"`
}

// WorkoutSession is one saved workout. Sets keep entry order and are never
// mutated after save; edits happen only on the pre-save draft.
type WorkoutSession struct {
	ID   string        `json:"id"`
	Type WorkoutType   `json:"type"`
	Date time.Time     `json:"date"`
	Sets []ExerciseSet `json:"sets"`
}

// NewID returns a fresh unique identifier for sessions and sets.
func NewID() string {
	return uuid.NewString()
}

// DecodeSessions parses a persisted session array. Malformed content is
// treated as no data, never an error.
func DecodeSessions(data []byte) []WorkoutSession {
	if len(data) == 0 {
		return nil
	}
	var sessions []WorkoutSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil
	}
	return sessions
}

// EncodeSessions serializes the full session list for storage.
func EncodeSessions(sessions []WorkoutSession) ([]byte, error) {
	if sessions == nil {
		sessions = []WorkoutSession{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, fmt.Errorf("encoding sessions: %w", err)
	}
	return data, nil
}
