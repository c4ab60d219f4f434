package habits

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/engine"
	"github.com/habitflow/habitflow/internal/models"
)

const chartWidth = 30

type WeeklyCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *WeeklyCmd) Run(ctx *cli.Context) error {
	return runSeries(ctx, c.Name, func(reg *engine.Registry, id string) []engine.Point {
		return reg.WeeklySeries(id)
	}, dates.WeekdayLabel)
}

type MonthlyCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *MonthlyCmd) Run(ctx *cli.Context) error {
	return runSeries(ctx, c.Name, func(reg *engine.Registry, id string) []engine.Point {
		return reg.MonthlySeries(id)
	}, dates.DayOfMonthLabel)
}

func runSeries(ctx *cli.Context, name string, series func(*engine.Registry, string) []engine.Point, label func(string) string) error {
	reg, _, err := ctx.OpenRegistry()
	if err != nil {
		return err
	}

	habit, err := cli.ResolveHabit(reg, name)
	if err != nil {
		return err
	}

	points := series(reg, habit.ID)
	printChart(habit, points, label)
	return nil
}

// printChart renders the series as a horizontal bar chart, oldest day first.
func printChart(habit models.Habit, points []engine.Point, label func(string) string) {
	max := habit.Target
	for _, p := range points {
		if p.Value > max {
			max = p.Value
		}
	}
	if max == 0 {
		max = 1
	}

	barStyle := lipgloss.NewStyle()
	if habit.Color != "" {
		barStyle = barStyle.Foreground(lipgloss.Color(habit.Color))
	}
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Printf("%s (%s, target %s %s/day)\n",
		habit.Name, habit.Category, cli.FormatValue(habit.Target), habit.Unit)
	for _, p := range points {
		width := int(p.Value / max * chartWidth)
		bar := strings.Repeat("█", width)
		mark := " "
		if p.Value >= habit.Target {
			mark = "✓"
		}
		fmt.Printf("  %3s %s %s %s\n", label(p.Day), mark,
			barStyle.Render(fmt.Sprintf("%-*s", chartWidth, bar)),
			dimStyle.Render(cli.FormatValue(p.Value)))
	}
}
