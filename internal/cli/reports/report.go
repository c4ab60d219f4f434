package reports

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/stats"
)

type ReportCmd struct {
	Range string `short:"r" help:"Report range (week|month|custom)." enum:"week,month,custom" default:"week"`
	From  string `help:"Start day for custom range (YYYY-MM-DD)."`
	To    string `help:"End day for custom range (YYYY-MM-DD, default: today)."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habits := reg.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	endDay := reg.Today()
	var startDay string
	switch c.Range {
	case "week":
		startDay, err = dates.AddDays(endDay, -(constants.WeeklyWindowDays - 1))
	case "month":
		startDay, err = dates.AddDays(endDay, -(constants.MonthlyWindowDays - 1))
	case "custom":
		if c.From == "" {
			return fmt.Errorf("--from is required for a custom range")
		}
		startDay = c.From
		if c.To != "" {
			endDay = c.To
		}
	}
	if err != nil {
		return err
	}

	report, err := stats.BuildReport(habits, startDay, endDay)
	if err != nil {
		return err
	}

	fmt.Printf("Report %s to %s\n\n", report.StartDay, report.EndDay)
	for _, hr := range report.Habits {
		fmt.Printf("%s (%s)\n", hr.Habit.Name, hr.Habit.Category)
		fmt.Printf("  Completed:  %d/%d days (%.1f%%)\n", hr.CompletedDays, hr.TotalDays, hr.CompletionRate)
		fmt.Printf("  Total:      %s %s\n", cli.FormatValue(hr.TotalValue), hr.Habit.Unit)
		fmt.Printf("  Daily avg:  %.1f %s\n", hr.AverageValue, hr.Habit.Unit)
	}
	fmt.Printf("Overall completion: %.1f%%\n", report.OverallCompletion)
	return nil
}
