package habits

import (
	"path/filepath"
	"testing"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "test.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return &cli.Context{Store: store}
}

func addHabit(t *testing.T, ctx *cli.Context, name string) {
	t.Helper()
	cmd := &HabitAddCmd{Name: name, Category: "exercise", Target: 30, Freezes: 3}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("HabitAddCmd.Run() error: %v", err)
	}
}

func TestHabitAddCmd(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	habit, err := ctx.Store.GetHabitByName("Exercise")
	if err != nil {
		t.Fatalf("GetHabitByName() error: %v", err)
	}
	if habit.Category != "exercise" || habit.Target != 30 {
		t.Errorf("saved habit = %+v, want exercise category and target 30", habit)
	}
	// Unit and color fall back to the category defaults.
	if habit.Unit != "minutes" {
		t.Errorf("Unit = %q, want category default minutes", habit.Unit)
	}
	if habit.Color == "" {
		t.Error("Color not defaulted from category")
	}
}

func TestHabitAddCmdUsesDefaultFreezesSetting(t *testing.T) {
	ctx := setupTestContext(t)

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	settings.DefaultFreezes = 5
	if err := ctx.Store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	cmd := &HabitAddCmd{Name: "Exercise", Category: "exercise", Target: 30}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("HabitAddCmd.Run() error: %v", err)
	}

	habit, err := ctx.Store.GetHabitByName("Exercise")
	if err != nil {
		t.Fatal(err)
	}
	if habit.FreezesAvailable != 5 {
		t.Errorf("FreezesAvailable = %d, want default_freezes setting 5", habit.FreezesAvailable)
	}

	// An explicit flag still wins over the setting.
	explicit := &HabitAddCmd{Name: "Sleep", Category: "sleep", Target: 8, Freezes: 2}
	if err := explicit.Run(ctx); err != nil {
		t.Fatalf("HabitAddCmd.Run() with explicit freezes error: %v", err)
	}
	sleep, err := ctx.Store.GetHabitByName("Sleep")
	if err != nil {
		t.Fatal(err)
	}
	if sleep.FreezesAvailable != 2 {
		t.Errorf("FreezesAvailable = %d, want explicit flag value 2", sleep.FreezesAvailable)
	}
}

func TestHabitAddCmdDuplicateName(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	cmd := &HabitAddCmd{Name: "Exercise", Category: "exercise", Target: 30}
	if err := cmd.Run(ctx); err == nil {
		t.Error("adding duplicate habit name = nil, want error")
	}
}

func TestHabitAddCmdInvalidTarget(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &HabitAddCmd{Name: "Exercise", Category: "exercise", Target: 0}
	if err := cmd.Run(ctx); err == nil {
		t.Error("adding habit with zero target = nil, want error")
	}
}

func TestLogCmdBuildsStreak(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		t.Fatal(err)
	}
	today := reg.Today()
	yesterday, err := dates.AddDays(today, -1)
	if err != nil {
		t.Fatal(err)
	}

	for _, day := range []string{yesterday, today} {
		cmd := &LogCmd{Name: "Exercise", Value: 45, Date: day}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("LogCmd.Run() for %s error: %v", day, err)
		}
	}

	habit, err := ctx.Store.GetHabitByName("Exercise")
	if err != nil {
		t.Fatal(err)
	}
	if habit.Streak != 2 {
		t.Errorf("Streak after two qualifying days = %d, want 2", habit.Streak)
	}
	if len(habit.Entries) != 2 {
		t.Errorf("ledger has %d entries, want 2", len(habit.Entries))
	}
}

func TestLogCmdUnknownHabit(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &LogCmd{Name: "Nope", Value: 10}
	if err := cmd.Run(ctx); err == nil {
		t.Error("logging against unknown habit = nil, want error")
	}
}

func TestEntryRemoveCmd(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	log := &LogCmd{Name: "Exercise", Value: 45}
	if err := log.Run(ctx); err != nil {
		t.Fatal(err)
	}

	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		t.Fatal(err)
	}
	today := reg.Today()

	cmd := &EntryRemoveCmd{Name: "Exercise", Date: today}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("EntryRemoveCmd.Run() error: %v", err)
	}

	habit, err := ctx.Store.GetHabitByName("Exercise")
	if err != nil {
		t.Fatal(err)
	}
	if len(habit.Entries) != 0 {
		t.Errorf("ledger has %d entries after remove, want 0", len(habit.Entries))
	}
	if habit.Streak != 0 {
		t.Errorf("Streak after removing only entry = %d, want 0", habit.Streak)
	}

	// Removing again reports a friendly error.
	if err := cmd.Run(ctx); err == nil {
		t.Error("removing missing entry = nil, want error")
	}
}

func TestEntryUpdateCmd(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	log := &LogCmd{Name: "Exercise", Value: 45}
	if err := log.Run(ctx); err != nil {
		t.Fatal(err)
	}

	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		t.Fatal(err)
	}
	today := reg.Today()

	newValue := 10.0
	cmd := &EntryUpdateCmd{Name: "Exercise", Date: today, Value: &newValue}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("EntryUpdateCmd.Run() error: %v", err)
	}

	habit, err := ctx.Store.GetHabitByName("Exercise")
	if err != nil {
		t.Fatal(err)
	}
	if habit.Entries[0].Value != 10 {
		t.Errorf("entry value = %v, want 10", habit.Entries[0].Value)
	}

	noFields := &EntryUpdateCmd{Name: "Exercise", Date: today}
	if err := noFields.Run(ctx); err == nil {
		t.Error("update with no fields = nil, want error")
	}
}

func TestHabitRemoveCmd(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	cmd := &HabitRemoveCmd{Name: "Exercise"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("HabitRemoveCmd.Run() error: %v", err)
	}

	if _, err := ctx.Store.GetHabitByName("Exercise"); err == nil {
		t.Error("habit still present after remove")
	}
}

func TestFreezeCmdExhaustsBudget(t *testing.T) {
	ctx := setupTestContext(t)
	addHabit(t, ctx, "Exercise")

	cmd := &FreezeCmd{Name: "Exercise"}
	for i := 0; i < 3; i++ {
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("FreezeCmd.Run() #%d error: %v", i+1, err)
		}
	}
	if err := cmd.Run(ctx); err == nil {
		t.Error("fourth freeze = nil, want budget exhausted error")
	}

	habit, err := ctx.Store.GetHabitByName("Exercise")
	if err != nil {
		t.Fatal(err)
	}
	if habit.FreezesUsed != 3 {
		t.Errorf("FreezesUsed = %d, want 3", habit.FreezesUsed)
	}
}
