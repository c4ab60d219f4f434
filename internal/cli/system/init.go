package system

import (
	"fmt"
	"os"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/engine"
	"github.com/habitflow/habitflow/internal/models"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
	Seed  bool `help:"Seed the store with a starter set of habits and sample entries."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			// Close first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitflow storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Seed {
		count, err := c.seed(ctx)
		if err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		fmt.Printf("Seeded %d starter habits.\n", count)
	}

	return nil
}

// seedHabit pairs a habit draft with sample values keyed by days before
// today (0 = today).
type seedHabit struct {
	draft       engine.HabitDraft
	freezesUsed int
	values      map[int]float64
}

var starterHabits = []seedHabit{
	{
		draft:  engine.HabitDraft{Name: "Daily Exercise", Category: models.CategoryExercise, Unit: "minutes", Target: 30},
		values: map[int]float64{0: 45, 1: 30, 2: 60, 3: 35, 4: 40},
	},
	{
		draft:       engine.HabitDraft{Name: "Walking", Category: models.CategorySteps, Unit: "steps", Target: 10000},
		freezesUsed: 1,
		values:      map[int]float64{0: 12500, 1: 8900, 2: 11200, 3: 10500, 4: 9800, 5: 13200, 6: 10100},
	},
	{
		draft:  engine.HabitDraft{Name: "Sleep Tracking", Category: models.CategorySleep, Unit: "hours", Target: 8},
		values: map[int]float64{0: 7.5, 1: 8, 2: 6.5},
	},
	{
		draft:  engine.HabitDraft{Name: "Meditation", Category: models.CategoryMeditation, Unit: "minutes", Target: 15},
		values: map[int]float64{0: 20, 1: 15, 2: 25},
	},
	{
		draft:  engine.HabitDraft{Name: "Savings Goal", Category: models.CategorySavings, Unit: "$", Target: 50},
		values: map[int]float64{0: 75, 1: 50},
	},
}

func (c *InitCmd) seed(ctx *cli.Context) (int, error) {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return 0, err
	}

	today := reg.Today()
	for _, seed := range starterHabits {
		if seed.draft.Color == "" {
			seed.draft.Color = models.CategoryConfig[seed.draft.Category].Color
		}
		habit := reg.AddHabit(seed.draft)

		for ago, value := range seed.values {
			day, err := dates.AddDays(today, -ago)
			if err != nil {
				return 0, err
			}
			reg.AddEntry(habit.ID, engine.EntryDraft{Day: day, Value: value})
		}

		for i := 0; i < seed.freezesUsed; i++ {
			reg.UseFreeze(habit.ID)
		}

		saved, _ := reg.Habit(habit.ID)
		if err := ctx.Store.SaveHabit(saved); err != nil {
			return 0, fmt.Errorf("failed to save habit %s: %w", saved.Name, err)
		}
	}

	return len(starterHabits), nil
}
