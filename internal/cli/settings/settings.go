package settings

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/dates"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone       *string `help:"IANA timezone for day boundaries (e.g. America/New_York, or Local)."`
	DefaultFreezes *int    `help:"Freeze budget assigned to new habits."`
	FreezeProtect  *bool   `help:"Let unused freezes bridge missed days in streaks."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:         %s\n", settings.Timezone)
		fmt.Printf("  Default Freezes:  %d\n", settings.DefaultFreezes)
		fmt.Printf("  Freeze Protect:   %v\n", settings.FreezesProtectStreaks)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !dates.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("unknown timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.DefaultFreezes != nil {
		if *c.DefaultFreezes < 0 {
			return fmt.Errorf("default freezes must not be negative")
		}
		settings.DefaultFreezes = *c.DefaultFreezes
		updated = true
	}
	if c.FreezeProtect != nil {
		settings.FreezesProtectStreaks = *c.FreezeProtect
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
