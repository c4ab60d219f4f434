package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/habitflow/habitflow/internal/models"
)

// SaveHabit upserts the habit row and rewrites its entry ledger. The engine
// recomputes streak caches before the save, so the persisted row is always
// consistent with its entries.
func (s *Store) SaveHabit(habit models.Habit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO habits (id, name, category, unit, target, color, streak,
			longest_streak, freezes_used, freezes_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			category = excluded.category,
			unit = excluded.unit,
			target = excluded.target,
			color = excluded.color,
			streak = excluded.streak,
			longest_streak = excluded.longest_streak,
			freezes_used = excluded.freezes_used,
			freezes_available = excluded.freezes_available`,
		habit.ID, habit.Name, string(habit.Category), habit.Unit, habit.Target,
		habit.Color, habit.Streak, habit.LongestStreak, habit.FreezesUsed,
		habit.FreezesAvailable, habit.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	// Rewrite the ledger wholesale: entry mutations arrive as a full habit
	// snapshot, so removed entries must disappear from the table too.
	if _, err := tx.Exec("DELETE FROM habit_entries WHERE habit_id = ?", habit.ID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO habit_entries (id, habit_id, day, value, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range habit.Entries {
		if _, err := stmt.Exec(e.ID, habit.ID, e.Day, e.Value, e.Note,
			e.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	return s.getHabit("id = ?", id)
}

func (s *Store) GetHabitByName(name string) (models.Habit, error) {
	return s.getHabit("name = ?", name)
}

func (s *Store) getHabit(where string, arg any) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, category, unit, target, color, streak,
			longest_streak, freezes_used, freezes_available, created_at
		FROM habits WHERE `+where, arg)

	habit, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, fmt.Errorf("habit not found")
		}
		return models.Habit{}, err
	}

	habit.Entries, err = s.entriesForHabit(habit.ID)
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

func (s *Store) GetAllHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, unit, target, color, streak,
			longest_streak, freezes_used, freezes_available, created_at
		FROM habits ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		habit, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		habits[i].Entries, err = s.entriesForHabit(habits[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return habits, nil
}

func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_entries WHERE habit_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM habits WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) entriesForHabit(habitID string) ([]models.HabitEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, habit_id, day, value, note, created_at
		FROM habit_entries WHERE habit_id = ?
		ORDER BY day`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.HabitEntry{}
	for rows.Next() {
		var e models.HabitEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.HabitID, &e.Day, &e.Value, &e.Note, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (models.Habit, error) {
	var h models.Habit
	var category, createdAt string

	err := row.Scan(&h.ID, &h.Name, &category, &h.Unit, &h.Target, &h.Color,
		&h.Streak, &h.LongestStreak, &h.FreezesUsed, &h.FreezesAvailable, &createdAt)
	if err != nil {
		return models.Habit{}, err
	}

	h.Category = models.Category(category)
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
	}
	return h, nil
}
