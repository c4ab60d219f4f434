package storage

import "github.com/habitflow/habitflow/internal/models"

// Provider is the persistence collaborator for the habit engine. Habits are
// loaded with their full entry ledgers and streak caches, handed to the
// engine, and written back after every mutating call. The engine itself
// performs no I/O.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	SaveHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	DeleteHabit(id string) error

	// Utils
	GetConfigPath() string
}
