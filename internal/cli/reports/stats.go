package reports

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/stats"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habits := reg.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitflow habit add'.")
		return nil
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	overview := stats.ComputeOverview(habits, reg.Today())

	fmt.Println(headerStyle.Render("Overview"))
	fmt.Printf("  Habits tracked:  %d\n", overview.HabitsTracked)
	fmt.Printf("  Average streak:  %d days\n", overview.AvgStreak)
	fmt.Printf("  Best streak:     %d days\n", overview.BestStreak)
	fmt.Printf("  Today:           %d/%d completed (%d%%)\n",
		overview.CompletedToday, overview.HabitsTracked, overview.TodayProgress)

	rates := stats.CategoryRates(habits)
	if len(rates) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Completion by category"))
		for _, rate := range rates {
			fmt.Printf("  %-16s %5.1f%%  (%d habits)\n", rate.Category, rate.Rate, rate.Habits)
		}
	}

	insights := stats.Insights(habits)
	if len(insights) > 0 {
		fmt.Println()
		fmt.Println(headerStyle.Render("Insights"))
		for _, insight := range insights {
			fmt.Printf("  • %s\n", insight)
		}
	}
	return nil
}
