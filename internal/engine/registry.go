package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/models"
)

// Registry owns a collection of habits and applies every mutation to it.
// Each entry mutation synchronously recomputes the owning habit's streak and
// ratchets its longest streak before the mutation returns, so reads never
// observe a stale cache.
//
// A Registry is an explicitly constructed instance: there is no package-level
// store, and multiple isolated registries can coexist (tests rely on this).
// It is not safe for concurrent use; a single logical actor mutates at a time.
type Registry struct {
	habits []models.Habit
	now    func() time.Time
	loc    *time.Location
	calc   Calculator
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock injects the time source used to derive "today". Tests use this
// to pin the reference day.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithLocation sets the timezone whose day boundary defines "today".
func WithLocation(loc *time.Location) Option {
	return func(r *Registry) { r.loc = loc }
}

// WithFreezeProtection enables the freeze-protection strategy: an unused
// freeze stands in for a missed past day during the streak scan.
func WithFreezeProtection(enabled bool) Option {
	return func(r *Registry) { r.calc.FreezesProtect = enabled }
}

// New creates an empty registry. habits may be nil or a previously persisted
// collection; the registry takes ownership of the slice.
func New(habits []models.Habit, opts ...Option) *Registry {
	r := &Registry{
		habits: habits,
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Today returns the current day key in the registry's timezone.
func (r *Registry) Today() string {
	return dates.KeyFor(r.now().In(r.loc))
}

// HabitDraft holds the caller-supplied fields of a new habit. The registry
// does not validate them; see the validation package.
type HabitDraft struct {
	Name             string
	Category         models.Category
	Unit             string
	Target           float64
	Color            string
	FreezesAvailable int
}

// EntryDraft holds the caller-supplied fields of a new entry. An empty Day
// means today.
type EntryDraft struct {
	Day   string
	Value float64
	Note  string
}

// HabitStatus pairs a habit with its entry for today, if any.
type HabitStatus struct {
	Habit models.Habit
	Entry *models.HabitEntry
}

// AddHabit creates a habit from the draft with a fresh id, empty ledger and
// zeroed streak state, and returns it.
func (r *Registry) AddHabit(draft HabitDraft) models.Habit {
	freezes := draft.FreezesAvailable
	if freezes == 0 {
		freezes = constants.DefaultFreezes
	}
	habit := models.Habit{
		ID:               uuid.New().String(),
		Name:             draft.Name,
		Category:         draft.Category,
		Unit:             draft.Unit,
		Target:           draft.Target,
		Color:            draft.Color,
		FreezesAvailable: freezes,
		Entries:          []models.HabitEntry{},
		CreatedAt:        r.now(),
	}
	r.habits = append(r.habits, habit)
	return habit
}

// RemoveHabit removes the habit and its entire ledger. Unknown ids are a
// no-op.
func (r *Registry) RemoveHabit(id string) {
	for i := range r.habits {
		if r.habits[i].ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return
		}
	}
}

// Habit returns a copy of the habit with the given id.
func (r *Registry) Habit(id string) (models.Habit, bool) {
	if h := r.find(id); h != nil {
		return *h, true
	}
	return models.Habit{}, false
}

// HabitByName returns a copy of the habit with the given name.
func (r *Registry) HabitByName(name string) (models.Habit, bool) {
	for i := range r.habits {
		if r.habits[i].Name == name {
			return r.habits[i], true
		}
	}
	return models.Habit{}, false
}

// Habits returns the habit collection.
func (r *Registry) Habits() []models.Habit {
	return r.habits
}

// HabitsByCategory returns the habits tagged with the given category.
func (r *Registry) HabitsByCategory(category models.Category) []models.Habit {
	var out []models.Habit
	for _, h := range r.habits {
		if h.Category == category {
			out = append(out, h)
		}
	}
	return out
}

// AddEntry logs an entry against the habit's ledger and recomputes its
// streak. An empty draft day defaults to today. Returns false, and mutates
// nothing, when the habit id is unknown.
func (r *Registry) AddEntry(habitID string, draft EntryDraft) (models.HabitEntry, bool) {
	habit := r.find(habitID)
	if habit == nil {
		return models.HabitEntry{}, false
	}

	day := draft.Day
	if day == "" {
		day = r.Today()
	}
	entry := models.HabitEntry{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		Day:       day,
		Value:     draft.Value,
		Note:      draft.Note,
		CreatedAt: r.now(),
	}
	NewLedger(habit).Add(entry)
	r.recompute(habit)
	return entry, true
}

// RemoveEntry removes an entry from the habit's ledger and recomputes its
// streak. Unknown habit or entry ids are a no-op.
func (r *Registry) RemoveEntry(habitID, entryID string) {
	habit := r.find(habitID)
	if habit == nil {
		return
	}
	if NewLedger(habit).Remove(entryID) {
		r.recompute(habit)
	}
}

// UpdateEntry merges the non-nil fields of upd into an entry and recomputes
// the habit's streak. Unknown habit or entry ids are a no-op.
func (r *Registry) UpdateEntry(habitID, entryID string, upd EntryUpdate) {
	habit := r.find(habitID)
	if habit == nil {
		return
	}
	if NewLedger(habit).Update(entryID, upd) {
		r.recompute(habit)
	}
}

// UseFreeze consumes one freeze from the habit's budget. It returns true and
// increments FreezesUsed only while the budget has headroom; otherwise it
// returns false and mutates nothing. Callers must branch on the result to
// report the outcome.
func (r *Registry) UseFreeze(habitID string) bool {
	habit := r.find(habitID)
	if habit == nil || habit.FreezesUsed >= habit.FreezesAvailable {
		return false
	}
	habit.FreezesUsed++
	if r.calc.FreezesProtect {
		r.recompute(habit)
	}
	return true
}

// TodayStatus returns one pairing per habit with its entry for today, if it
// has one.
func (r *Registry) TodayStatus() []HabitStatus {
	today := r.Today()
	statuses := make([]HabitStatus, 0, len(r.habits))
	for _, h := range r.habits {
		status := HabitStatus{Habit: h}
		if entry, ok := entryOn(h.Entries, today); ok {
			e := entry
			status.Entry = &e
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// WeeklySeries returns the habit's trailing 7-day series ending today.
// Unknown ids return an empty result, never an error.
func (r *Registry) WeeklySeries(habitID string) []Point {
	return r.series(habitID, constants.WeeklyWindowDays)
}

// MonthlySeries returns the habit's trailing 30-day series ending today.
func (r *Registry) MonthlySeries(habitID string) []Point {
	return r.series(habitID, constants.MonthlyWindowDays)
}

func (r *Registry) series(habitID string, windowDays int) []Point {
	habit := r.find(habitID)
	if habit == nil {
		return nil
	}
	return Series(habit.Entries, windowDays, r.Today())
}

func (r *Registry) find(id string) *models.Habit {
	for i := range r.habits {
		if r.habits[i].ID == id {
			return &r.habits[i]
		}
	}
	return nil
}

// recompute refreshes the habit's streak cache from its ledger and ratchets
// the longest streak. This is the single recompute path every mutator goes
// through.
func (r *Registry) recompute(habit *models.Habit) {
	habit.Streak = r.calc.CurrentStreak(habit.Entries, habit.Target, r.Today(), habit.FreezesRemaining())
	if habit.Streak > habit.LongestStreak {
		habit.LongestStreak = habit.Streak
	}
}
