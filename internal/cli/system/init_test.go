package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/storage"
)

func setupTestContext(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := storage.NewSQLiteStore(dbPath)
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}, dbPath
}

func TestInitCmd(t *testing.T) {
	ctx, dbPath := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("InitCmd.Run() error: %v", err)
	}

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file not created: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after init error: %v", err)
	}
	if settings.Timezone == "" {
		t.Error("init did not apply default settings")
	}
}

func TestInitCmdSeed(t *testing.T) {
	ctx, _ := setupTestContext(t)

	cmd := &InitCmd{Seed: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("InitCmd.Run() error: %v", err)
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}
	if len(habits) != len(starterHabits) {
		t.Fatalf("seeded %d habits, want %d", len(habits), len(starterHabits))
	}

	byName := make(map[string]int)
	for _, h := range habits {
		byName[h.Name] = len(h.Entries)

		// Seeded entries end today, so the streak recompute must see them.
		if h.Streak == 0 {
			t.Errorf("seeded habit %q has zero streak", h.Name)
		}
		if h.LongestStreak < h.Streak {
			t.Errorf("seeded habit %q has longest streak %d below streak %d",
				h.Name, h.LongestStreak, h.Streak)
		}
	}

	if got := byName["Walking"]; got != 7 {
		t.Errorf("Walking has %d entries, want 7", got)
	}
	if got := byName["Savings Goal"]; got != 2 {
		t.Errorf("Savings Goal has %d entries, want 2", got)
	}
}

func TestInitCmdForceResets(t *testing.T) {
	ctx, _ := setupTestContext(t)

	if err := (&InitCmd{Seed: true}).Run(ctx); err != nil {
		t.Fatalf("first init error: %v", err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced re-init error: %v", err)
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		t.Fatalf("GetAllHabits() error: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("forced re-init kept %d habits, want 0", len(habits))
	}
}
