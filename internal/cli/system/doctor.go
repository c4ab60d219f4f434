package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/habitflow/habitflow/internal/backup"
	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/migration"
	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: schema version valid (SQLite only)
	if storageReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: timezone setting resolves
	if storageReachable {
		if err := checkTimezone(ctx); err != nil {
			fmt.Printf("❌ Timezone setting: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone setting: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timezone setting: SKIPPED (storage not reachable)\n")
	}

	// Check 5: habit integrity
	if storageReachable {
		if err := checkHabitIntegrity(ctx); err != nil {
			fmt.Printf("❌ Habit integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Habit integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Habit integrity: SKIPPED (storage not reachable)\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store doesn't have a schema version
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	migrationFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	return migration.NewRunner(db, migrationFS).ValidateVersion()
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found, consider running 'habitflow backup create'")
	}

	newest := backups[0].Timestamp
	if time.Since(newest) > 7*24*time.Hour {
		return fmt.Errorf("most recent backup is from %s, consider creating a fresh one",
			newest.Format("2006-01-02"))
	}
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !dates.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("timezone %q does not resolve", settings.Timezone)
	}
	if _, err := dates.TodayInTimezone(settings.Timezone); err != nil {
		return fmt.Errorf("failed to derive today in %q: %w", settings.Timezone, err)
	}
	return nil
}

func checkHabitIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	for _, habit := range habits {
		if !habit.Category.Valid() {
			return fmt.Errorf("habit %q has unknown category %q", habit.Name, habit.Category)
		}
		if habit.Target <= 0 {
			return fmt.Errorf("habit %q has non-positive target %v", habit.Name, habit.Target)
		}
		if habit.FreezesUsed > habit.FreezesAvailable {
			return fmt.Errorf("habit %q has used more freezes (%d) than available (%d)",
				habit.Name, habit.FreezesUsed, habit.FreezesAvailable)
		}
		if habit.LongestStreak < habit.Streak {
			return fmt.Errorf("habit %q has longest streak %d below current streak %d",
				habit.Name, habit.LongestStreak, habit.Streak)
		}

		seen := make(map[string]bool, len(habit.Entries))
		for _, entry := range habit.Entries {
			if !dates.Valid(entry.Day) {
				return fmt.Errorf("habit %q has entry with invalid day %q", habit.Name, entry.Day)
			}
			if seen[entry.Day] {
				return fmt.Errorf("habit %q has duplicate entries for %s", habit.Name, entry.Day)
			}
			seen[entry.Day] = true
			if entry.HabitID != habit.ID {
				return fmt.Errorf("habit %q has entry %s pointing at habit %s",
					habit.Name, entry.ID, entry.HabitID)
			}
		}
	}

	return nil
}
