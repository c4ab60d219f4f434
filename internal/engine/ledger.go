package engine

import "github.com/habitflow/habitflow/internal/models"

// EntryUpdate is a partial update to an entry. Nil fields are left unchanged.
type EntryUpdate struct {
	Day   *string
	Value *float64
	Note  *string
}

// Ledger provides entry-level operations over one habit's entry collection.
// It is a thin view onto the habit; no entry is ever created or deleted by
// any other component.
type Ledger struct {
	habit *models.Habit
}

// NewLedger returns the ledger for the given habit.
func NewLedger(h *models.Habit) Ledger {
	return Ledger{habit: h}
}

// Add appends an entry. If an entry already exists for the same day it is
// replaced, so at most one entry per (habit, day) survives an add.
func (l Ledger) Add(entry models.HabitEntry) {
	for i, e := range l.habit.Entries {
		if e.Day == entry.Day {
			l.habit.Entries[i] = entry
			return
		}
	}
	l.habit.Entries = append(l.habit.Entries, entry)
}

// Remove deletes the entry with the given id. Removing an unknown id is a
// no-op, not an error.
func (l Ledger) Remove(entryID string) bool {
	for i, e := range l.habit.Entries {
		if e.ID == entryID {
			l.habit.Entries = append(l.habit.Entries[:i], l.habit.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// Update merges the non-nil fields of upd into the entry with the given id.
// Updating an unknown id is a no-op, not an error.
func (l Ledger) Update(entryID string, upd EntryUpdate) bool {
	for i := range l.habit.Entries {
		if l.habit.Entries[i].ID != entryID {
			continue
		}
		if upd.Day != nil {
			l.habit.Entries[i].Day = *upd.Day
		}
		if upd.Value != nil {
			l.habit.Entries[i].Value = *upd.Value
		}
		if upd.Note != nil {
			l.habit.Entries[i].Note = *upd.Note
		}
		return true
	}
	return false
}

// EntryOn returns the first entry logged for the given day key.
func (l Ledger) EntryOn(day string) (models.HabitEntry, bool) {
	return entryOn(l.habit.Entries, day)
}

// OnOrAfter returns all entries dated on or after the given day key.
// Day keys sort lexicographically in date order.
func (l Ledger) OnOrAfter(day string) []models.HabitEntry {
	var out []models.HabitEntry
	for _, e := range l.habit.Entries {
		if e.Day >= day {
			out = append(out, e)
		}
	}
	return out
}

func entryOn(entries []models.HabitEntry, day string) (models.HabitEntry, bool) {
	for _, e := range entries {
		if e.Day == day {
			return e, true
		}
	}
	return models.HabitEntry{}, false
}
