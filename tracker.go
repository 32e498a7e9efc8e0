package selftrack

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrRejected is returned by mutations when the input is invalid. The state is left untouched.
var ErrRejected = errors.New("rejected")

// ErrCorrupt is returned when a persisted aggregate cannot be decoded.
var ErrCorrupt = errors.New("corrupt portfolio data")

// Persister saves the whole aggregate.
type Persister interface {
	Save(ctx context.Context, s AppState) error
}

// Store is a Persister that can also load the aggregate back.
// Load returns nil and no error when nothing has been persisted yet.
type Store interface {
	Persister
	Load(ctx context.Context) (*AppState, error)
}

// Quarantiner is implemented by stores that can set a corrupt value aside before it gets overwritten.
type Quarantiner interface {
	Quarantine(ctx context.Context) error
}

// Container is the state management contract: one read accessor, and
// mutations that each replace the aggregate with a modified copy and persist it.
type Container interface {
	State() AppState
	UpdateProfile(ctx context.Context, u ProfileUpdate) error
	AddAchievement(ctx context.Context, a Achievement) (Achievement, error)
	RemoveAchievement(ctx context.Context, id string) (bool, error)
	AddAcademicRecord(ctx context.Context, gpa string) (AcademicRecord, error)
	AddExperience(ctx context.Context, e Experience) (Experience, error)
	RemoveExperience(ctx context.Context, id string) (bool, error)
	AddHobby(ctx context.Context, h Hobby) (Hobby, error)
	RemoveHobby(ctx context.Context, id string) (bool, error)
	Reset(ctx context.Context) error
	Restore(ctx context.Context, s AppState) error
}

// Tracker is the in-memory Container. It is safe for concurrent use.
type Tracker struct {
	mu    sync.Mutex
	state AppState
	store Persister
	newID func() string
}

var _ Container = (*Tracker)(nil)

// NewTracker creates a Tracker starting from state. Every successful mutation is saved into store, if not nil.
func NewTracker(state AppState, store Persister) *Tracker {
	return &Tracker{
		state: state.Clone(),
		store: store,
		newID: newID,
	}
}

// Boot creates a Tracker from the aggregate persisted in store, or from the
// seed data if there is none.
//
// A corrupt aggregate is not fatal: it is quarantined (if the store supports
// it) and the seed data is used instead.
func Boot(ctx context.Context, store Store) (*Tracker, error) {
	s, err := store.Load(ctx)
	switch {
	case errors.Is(err, ErrCorrupt):
		log.Printf("warning: %v, starting from the seed data instead", err)
		if q, ok := store.(Quarantiner); ok {
			if err := q.Quarantine(ctx); err != nil {
				return nil, fmt.Errorf("could not quarantine corrupt portfolio: %w", err)
			}
		}
		return NewTracker(Seed(), store), nil
	case err != nil:
		return nil, fmt.Errorf("could not load portfolio: %w", err)
	case s == nil:
		log.Println("no portfolio found, starting from the seed data")
		return NewTracker(Seed(), store), nil
	default:
		return NewTracker(*s, store), nil
	}
}

// newID returns a time ordered unique id.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// State returns a copy of the current aggregate.
func (t *Tracker) State() AppState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// mutate applies f to a copy of the state, swaps it in and persists it.
// If f fails nothing changes and nothing is persisted.
func (t *Tracker) mutate(ctx context.Context, f func(s *AppState) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := t.state.Clone()
	if err := f(&next); err != nil {
		return err
	}
	t.state = next

	if t.store == nil {
		return nil
	}
	if err := t.store.Save(ctx, next); err != nil {
		return fmt.Errorf("could not persist portfolio: %w", err)
	}
	return nil
}

// UpdateProfile merges u into the profile.
func (t *Tracker) UpdateProfile(ctx context.Context, u ProfileUpdate) error {
	return t.mutate(ctx, func(s *AppState) error {
		s.Profile = u.apply(s.Profile)
		return nil
	})
}

// AddAchievement prepends a to the achievements, with a fresh ID.
// Title and issuer are required.
func (t *Tracker) AddAchievement(ctx context.Context, a Achievement) (Achievement, error) {
	if blank(a.Title) || blank(a.Issuer) {
		return Achievement{}, fmt.Errorf("%w: achievement title and issuer are required", ErrRejected)
	}
	if !a.Category.Valid() {
		return Achievement{}, fmt.Errorf("%w: invalid achievement category %d", ErrRejected, int(a.Category))
	}
	a.ID = t.newID()
	err := t.mutate(ctx, func(s *AppState) error {
		s.Achievements = slices.Insert(s.Achievements, 0, a)
		return nil
	})
	return a, err
}

// RemoveAchievement removes the achievement with this id. It reports whether one was found.
func (t *Tracker) RemoveAchievement(ctx context.Context, id string) (bool, error) {
	var found bool
	err := t.mutate(ctx, func(s *AppState) error {
		n := len(s.Achievements)
		s.Achievements = slices.DeleteFunc(s.Achievements, func(a Achievement) bool { return a.ID == id })
		found = len(s.Achievements) < n
		return nil
	})
	return found, err
}

// AddAcademicRecord appends a new semester with the GPA parsed from input.
// The semester is numbered after the existing ones.
func (t *Tracker) AddAcademicRecord(ctx context.Context, input string) (AcademicRecord, error) {
	gpa, err := ParseGPA(input)
	if err != nil {
		return AcademicRecord{}, fmt.Errorf("%w: %v", ErrRejected, err)
	}
	var rec AcademicRecord
	err = t.mutate(ctx, func(s *AppState) error {
		rec = AcademicRecord{
			Semester: fmt.Sprintf("Sem %d", len(s.Academics)+1),
			GPA:      float64(gpa),
		}
		s.Academics = append(s.Academics, rec)
		return nil
	})
	return rec, err
}

// AddExperience prepends e to the experiences, with a fresh ID.
// Role and organization are required.
func (t *Tracker) AddExperience(ctx context.Context, e Experience) (Experience, error) {
	if blank(e.Role) || blank(e.Organization) {
		return Experience{}, fmt.Errorf("%w: experience role and organization are required", ErrRejected)
	}
	if !e.Type.Valid() {
		return Experience{}, fmt.Errorf("%w: invalid experience type %d", ErrRejected, int(e.Type))
	}
	e.ID = t.newID()
	err := t.mutate(ctx, func(s *AppState) error {
		s.Experiences = slices.Insert(s.Experiences, 0, e)
		return nil
	})
	return e, err
}

// RemoveExperience removes the experience with this id. It reports whether one was found.
func (t *Tracker) RemoveExperience(ctx context.Context, id string) (bool, error) {
	var found bool
	err := t.mutate(ctx, func(s *AppState) error {
		n := len(s.Experiences)
		s.Experiences = slices.DeleteFunc(s.Experiences, func(e Experience) bool { return e.ID == id })
		found = len(s.Experiences) < n
		return nil
	})
	return found, err
}

// AddHobby appends h to the hobbies, with a fresh ID.
func (t *Tracker) AddHobby(ctx context.Context, h Hobby) (Hobby, error) {
	if blank(h.Name) {
		return Hobby{}, fmt.Errorf("%w: hobby name is required", ErrRejected)
	}
	h.ID = t.newID()
	err := t.mutate(ctx, func(s *AppState) error {
		s.Hobbies = append(s.Hobbies, h)
		return nil
	})
	return h, err
}

// RemoveHobby removes the hobby with this id. It reports whether one was found.
func (t *Tracker) RemoveHobby(ctx context.Context, id string) (bool, error) {
	var found bool
	err := t.mutate(ctx, func(s *AppState) error {
		n := len(s.Hobbies)
		s.Hobbies = slices.DeleteFunc(s.Hobbies, func(h Hobby) bool { return h.ID == id })
		found = len(s.Hobbies) < n
		return nil
	})
	return found, err
}

// Reset replaces the whole portfolio with the seed data.
func (t *Tracker) Reset(ctx context.Context) error {
	return t.mutate(ctx, func(s *AppState) error {
		*s = Seed().Clone()
		return nil
	})
}

// Restore replaces the whole portfolio with a copy of s, typically a backup.
// s must be a valid aggregate in its persisted form, otherwise nothing changes.
func (t *Tracker) Restore(ctx context.Context, s AppState) error {
	data, err := MarshalState(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	if err := ValidateJSON(data); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return t.mutate(ctx, func(next *AppState) error {
		*next = s.Clone()
		return nil
	})
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
