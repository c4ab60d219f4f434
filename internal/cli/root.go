package cli

import (
	"fmt"
	"strconv"

	"github.com/habitflow/habitflow/internal/backup"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/engine"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// OpenRegistry loads all habits plus settings from the store and builds a
// registry configured with the stored timezone and freeze strategy.
func (c *Context) OpenRegistry() (*engine.Registry, models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	loc, err := dates.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("invalid timezone in settings: %w", err)
	}

	habits, err := c.Store.GetAllHabits()
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to load habits: %w", err)
	}

	reg := engine.New(habits,
		engine.WithLocation(loc),
		engine.WithFreezeProtection(settings.FreezesProtectStreaks),
	)
	return reg, settings, nil
}

// ResolveHabit finds a habit by name and returns a friendly error when it
// does not exist.
func ResolveHabit(reg *engine.Registry, name string) (models.Habit, error) {
	habit, ok := reg.HabitByName(name)
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return habit, nil
}

// FormatValue renders an entry value without trailing zeros (45, 7.5, 12500).
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
