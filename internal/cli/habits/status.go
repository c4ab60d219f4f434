package habits

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/models"
)

func entryForDay(habit models.Habit, day string) (models.HabitEntry, bool) {
	for _, e := range habit.Entries {
		if e.Day == day {
			return e, true
		}
	}
	return models.HabitEntry{}, false
}

type StreakCmd struct {
	Name string `arg:"" optional:"" help:"Habit name. Omit to show all habits."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habits := reg.Habits()
	if c.Name != "" {
		habit, err := cli.ResolveHabit(reg, c.Name)
		if err != nil {
			return err
		}
		habits = []models.Habit{habit}
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		freezes := habit.FreezesAvailable - habit.FreezesUsed
		fmt.Printf("%-24s %3d day streak  (best %d, %d freezes left)\n",
			habit.Name, habit.Streak, habit.LongestStreak, freezes)
	}
	return nil
}

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	statuses := reg.TodayStatus()
	if len(statuses) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Printf("Today (%s):\n", reg.Today())
	for _, status := range statuses {
		habit := status.Habit
		switch {
		case status.Entry != nil && status.Entry.Value >= habit.Target:
			fmt.Printf("  %s %s: %s/%s %s\n", doneStyle.Render("✓"), habit.Name,
				cli.FormatValue(status.Entry.Value), cli.FormatValue(habit.Target), habit.Unit)
		case status.Entry != nil:
			fmt.Printf("  %s %s: %s/%s %s\n", pendingStyle.Render("·"), habit.Name,
				cli.FormatValue(status.Entry.Value), cli.FormatValue(habit.Target), habit.Unit)
		default:
			fmt.Printf("  %s %s: not logged (target %s %s)\n", pendingStyle.Render("·"),
				habit.Name, cli.FormatValue(habit.Target), habit.Unit)
		}
	}
	return nil
}

type FreezeCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *FreezeCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habit, err := cli.ResolveHabit(reg, c.Name)
	if err != nil {
		return err
	}

	if !reg.UseFreeze(habit.ID) {
		return fmt.Errorf("no freezes left for %q (%d/%d used)",
			habit.Name, habit.FreezesUsed, habit.FreezesAvailable)
	}

	updated, _ := reg.Habit(habit.ID)
	if err := ctx.Store.SaveHabit(updated); err != nil {
		return err
	}

	fmt.Printf("Used a freeze for %q (%d/%d used)\n",
		updated.Name, updated.FreezesUsed, updated.FreezesAvailable)
	return nil
}
