package stats

import (
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/models"
)

// HabitReport aggregates one habit's entries over a report period.
type HabitReport struct {
	Habit          models.Habit `json:"habit"`
	TotalValue     float64      `json:"total_value"`
	AverageValue   float64      `json:"average_value"`
	CompletedDays  int          `json:"completed_days"`
	TotalDays      int          `json:"total_days"`
	CompletionRate float64      `json:"completion_rate"` // percent of period days meeting target
}

// Report covers all habits over a [StartDay, EndDay] period, inclusive.
type Report struct {
	StartDay          string        `json:"start_day"`
	EndDay            string        `json:"end_day"`
	Habits            []HabitReport `json:"habits"`
	OverallCompletion float64       `json:"overall_completion"` // mean of per-habit completion rates
}

// BuildReport aggregates every habit's entries over the period. Entries
// outside the period are ignored; the per-habit completion rate is completed
// days over the period length, not over logged days, so unlogged days count
// against the rate.
func BuildReport(habits []models.Habit, startDay, endDay string) (Report, error) {
	start, err := dates.Parse(startDay)
	if err != nil {
		return Report{}, err
	}
	end, err := dates.Parse(endDay)
	if err != nil {
		return Report{}, err
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1
	if totalDays < 1 {
		totalDays = 1
	}

	report := Report{StartDay: startDay, EndDay: endDay}
	for _, h := range habits {
		hr := HabitReport{Habit: h, TotalDays: totalDays}
		logged := 0
		for _, e := range h.Entries {
			if e.Day < startDay || e.Day > endDay {
				continue
			}
			logged++
			hr.TotalValue += e.Value
			if e.Value >= h.Target {
				hr.CompletedDays++
			}
		}
		if logged > 0 {
			hr.AverageValue = hr.TotalValue / float64(logged)
		}
		hr.CompletionRate = float64(hr.CompletedDays) / float64(totalDays) * 100
		report.Habits = append(report.Habits, hr)
	}

	if len(report.Habits) > 0 {
		sum := 0.0
		for _, hr := range report.Habits {
			sum += hr.CompletionRate
		}
		report.OverallCompletion = sum / float64(len(report.Habits))
	}

	return report, nil
}
