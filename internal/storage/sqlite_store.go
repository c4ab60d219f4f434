package storage

import (
	"database/sql"

	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage/sqlite"
)

// SQLiteStore adapts sqlite.Store to the Provider interface.
type SQLiteStore struct {
	store *sqlite.Store
}

// NewSQLiteStore creates a new SQLite store
func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{store: sqlite.NewStore(path)}
}

// Lifecycle methods
func (s *SQLiteStore) Init() error  { return s.store.Init() }
func (s *SQLiteStore) Load() error  { return s.store.Load() }
func (s *SQLiteStore) Close() error { return s.store.Close() }

// GetDB returns the underlying database connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB { return s.store.GetDB() }

func (s *SQLiteStore) GetConfigPath() string { return s.store.GetConfigPath() }

// Settings methods
func (s *SQLiteStore) GetSettings() (models.Settings, error)      { return s.store.GetSettings() }
func (s *SQLiteStore) SaveSettings(settings models.Settings) error { return s.store.SaveSettings(settings) }

// Habit methods
func (s *SQLiteStore) SaveHabit(habit models.Habit) error            { return s.store.SaveHabit(habit) }
func (s *SQLiteStore) GetHabit(id string) (models.Habit, error)      { return s.store.GetHabit(id) }
func (s *SQLiteStore) GetHabitByName(name string) (models.Habit, error) { return s.store.GetHabitByName(name) }
func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error)         { return s.store.GetAllHabits() }
func (s *SQLiteStore) DeleteHabit(id string) error                   { return s.store.DeleteHabit(id) }
