package habits

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/engine"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/validation"
)

type HabitAddCmd struct {
	Name     string  `arg:"" optional:"" help:"Habit name. Omit to fill in interactively."`
	Category string  `short:"c" help:"Category (exercise|steps|skills|savings|sleep|prayer|meditation|stress|custom)." default:"custom"`
	Unit     string  `short:"u" help:"Unit of measurement (defaults to the category's unit)."`
	Target   float64 `short:"t" help:"Daily target value. A day counts toward the streak when its entry meets this."`
	Color    string  `help:"Hex color for display (defaults to the category's color)."`
	Freezes  int     `help:"Streak freezes available for this habit (default: the default_freezes setting)."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	if c.Name == "" {
		if err := c.promptForm(); err != nil {
			return err
		}
	}

	category := models.Category(c.Category)
	if c.Unit == "" {
		c.Unit = models.CategoryConfig[category].DefaultUnit
	}
	if c.Color == "" {
		c.Color = models.CategoryConfig[category].Color
	}

	if err := validation.ValidateHabitDraft(c.Name, category, c.Unit, c.Target); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	reg, appSettings, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	// The stored default_freezes setting governs new habits unless the flag
	// was given explicitly.
	freezes := c.Freezes
	if freezes == 0 {
		freezes = appSettings.DefaultFreezes
	}

	habit := reg.AddHabit(engine.HabitDraft{
		Name:             c.Name,
		Category:         category,
		Unit:             c.Unit,
		Target:           c.Target,
		Color:            c.Color,
		FreezesAvailable: freezes,
	})
	if err := ctx.Store.SaveHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, target %s %s/day)\n",
		habit.Name, category, cli.FormatValue(habit.Target), habit.Unit)
	return nil
}

func (c *HabitAddCmd) promptForm() error {
	var targetStr string
	if c.Target > 0 {
		targetStr = cli.FormatValue(c.Target)
	}

	options := make([]huh.Option[string], 0, len(models.Categories()))
	for _, cat := range models.Categories() {
		options = append(options, huh.NewOption(models.CategoryConfig[cat].Label, string(cat)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&c.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&c.Category),
			huh.NewInput().
				Title("Daily target").
				Placeholder("30").
				Value(&targetStr).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("target must be a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Unit").
				Description("Leave empty to use the category default.").
				Value(&c.Unit),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	c.Target, _ = strconv.ParseFloat(targetStr, 64)
	return nil
}

type HabitListCmd struct {
	Category string `short:"c" help:"Only list habits in this category."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habits := reg.Habits()
	if c.Category != "" {
		category := models.Category(c.Category)
		if !category.Valid() {
			return fmt.Errorf("unknown category: %s", c.Category)
		}
		habits = reg.HabitsByCategory(category)
	}

	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	for _, habit := range habits {
		nameStyle := lipgloss.NewStyle().Bold(true)
		if habit.Color != "" {
			nameStyle = nameStyle.Foreground(lipgloss.Color(habit.Color))
		}

		fmt.Printf("%s  %s\n", nameStyle.Render(habit.Name),
			dimStyle.Render(fmt.Sprintf("[%s] target %s %s/day, %d day streak (best %d)",
				habit.Category, cli.FormatValue(habit.Target), habit.Unit, habit.Streak, habit.LongestStreak)))
	}
	return nil
}

type HabitRemoveCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitRemoveCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habit, err := cli.ResolveHabit(reg, c.Name)
	if err != nil {
		return err
	}

	ctx.PerformAutomaticBackup()

	reg.RemoveHabit(habit.ID)
	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Removed habit %q and its %d entries.\n", habit.Name, len(habit.Entries))
	return nil
}
