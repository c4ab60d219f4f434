package habits

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/engine"
	"github.com/habitflow/habitflow/internal/validation"
)

type LogCmd struct {
	Name  string  `arg:"" help:"Habit name."`
	Value float64 `arg:"" help:"Value to log (minutes, steps, hours...)."`
	Date  string  `short:"d" help:"Day in YYYY-MM-DD format (default: today)." default:""`
	Note  string  `short:"n" help:"Optional note for this entry." default:""`
}

func (c *LogCmd) Run(ctx *cli.Context) error {
	if err := validation.ValidateEntryDraft(c.Date, c.Value); err != nil {
		return err
	}

	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habit, err := cli.ResolveHabit(reg, c.Name)
	if err != nil {
		return err
	}

	entry, ok := reg.AddEntry(habit.ID, engine.EntryDraft{
		Day:   c.Date,
		Value: c.Value,
		Note:  c.Note,
	})
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	updated, _ := reg.Habit(habit.ID)
	if err := ctx.Store.SaveHabit(updated); err != nil {
		return err
	}

	qualifier := ""
	if entry.Value >= habit.Target {
		qualifier = " ✓"
	}
	fmt.Printf("Logged %s %s for %q on %s%s (streak: %d)\n",
		cli.FormatValue(entry.Value), updated.Unit, updated.Name, entry.Day, qualifier, updated.Streak)
	return nil
}

type EntryRemoveCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `arg:"" help:"Day of the entry to remove (YYYY-MM-DD)."`
}

func (c *EntryRemoveCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habit, err := cli.ResolveHabit(reg, c.Name)
	if err != nil {
		return err
	}

	entry, ok := entryForDay(habit, c.Date)
	if !ok {
		return fmt.Errorf("no entry for %q on %s", c.Name, c.Date)
	}

	reg.RemoveEntry(habit.ID, entry.ID)
	updated, _ := reg.Habit(habit.ID)
	if err := ctx.Store.SaveHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Removed entry for %q on %s (streak: %d)\n", updated.Name, c.Date, updated.Streak)
	return nil
}

type EntryUpdateCmd struct {
	Name  string   `arg:"" help:"Habit name."`
	Date  string   `arg:"" help:"Day of the entry to update (YYYY-MM-DD)."`
	Value *float64 `short:"v" help:"New value."`
	Note  *string  `short:"n" help:"New note."`
}

func (c *EntryUpdateCmd) Run(ctx *cli.Context) error {
	if c.Value == nil && c.Note == nil {
		return fmt.Errorf("nothing to update: pass --value and/or --note")
	}
	if c.Value != nil && *c.Value < 0 {
		return fmt.Errorf("value must not be negative")
	}

	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habit, err := cli.ResolveHabit(reg, c.Name)
	if err != nil {
		return err
	}

	entry, ok := entryForDay(habit, c.Date)
	if !ok {
		return fmt.Errorf("no entry for %q on %s", c.Name, c.Date)
	}

	reg.UpdateEntry(habit.ID, entry.ID, engine.EntryUpdate{Value: c.Value, Note: c.Note})
	updated, _ := reg.Habit(habit.ID)
	if err := ctx.Store.SaveHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Updated entry for %q on %s (streak: %d)\n", updated.Name, c.Date, updated.Streak)
	return nil
}
