package settings

import (
	"path/filepath"
	"testing"

	"github.com/habitflow/habitflow/internal/cli"
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

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func TestSettingsCmdUpdate(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{
		Timezone:       strPtr("America/New_York"),
		DefaultFreezes: intPtr(5),
		FreezeProtect:  boolPtr(true),
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("SettingsCmd.Run() error: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error: %v", err)
	}
	if settings.Timezone != "America/New_York" {
		t.Errorf("Timezone = %q, want America/New_York", settings.Timezone)
	}
	if settings.DefaultFreezes != 5 {
		t.Errorf("DefaultFreezes = %d, want 5", settings.DefaultFreezes)
	}
	if !settings.FreezesProtectStreaks {
		t.Error("FreezesProtectStreaks = false, want true")
	}
}

func TestSettingsCmdRejectsBadTimezone(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{Timezone: strPtr("Mars/Olympus_Mons")}
	if err := cmd.Run(ctx); err == nil {
		t.Error("SettingsCmd.Run() with bad timezone = nil, want error")
	}
}

func TestSettingsCmdRejectsNegativeFreezes(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{DefaultFreezes: intPtr(-1)}
	if err := cmd.Run(ctx); err == nil {
		t.Error("SettingsCmd.Run() with negative freezes = nil, want error")
	}
}

func TestSettingsCmdList(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &SettingsCmd{List: true}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("SettingsCmd.Run() list error: %v", err)
	}
}
