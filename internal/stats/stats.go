package stats

import (
	"fmt"
	"math"

	"github.com/habitflow/habitflow/internal/models"
)

// Overview summarizes the whole habit collection for the dashboard header.
type Overview struct {
	AvgStreak      int `json:"avg_streak"`
	BestStreak     int `json:"best_streak"`
	TodayProgress  int `json:"today_progress"`  // percent of habits with a qualifying entry today
	CompletedToday int `json:"completed_today"` // habits with a qualifying entry today
	HabitsTracked  int `json:"habits_tracked"`
}

// ComputeOverview derives the overview stats from the habit collection.
// Streak caches are read as-is; the registry keeps them fresh.
func ComputeOverview(habits []models.Habit, today string) Overview {
	o := Overview{HabitsTracked: len(habits)}
	if len(habits) == 0 {
		return o
	}

	totalStreak := 0
	completed := 0
	for _, h := range habits {
		totalStreak += h.Streak
		if h.LongestStreak > o.BestStreak {
			o.BestStreak = h.LongestStreak
		}
		for _, e := range h.Entries {
			if e.Day == today && e.Value >= h.Target {
				completed++
				break
			}
		}
	}

	o.AvgStreak = int(math.Round(float64(totalStreak) / float64(len(habits))))
	o.CompletedToday = completed
	o.TodayProgress = int(math.Round(float64(completed) / float64(len(habits)) * 100))
	return o
}

// CategoryRate is the mean completion rate of the habits in one category:
// the share of each habit's logged entries that met its target, averaged
// across the category.
type CategoryRate struct {
	Category models.Category `json:"category"`
	Rate     float64         `json:"rate"` // percent
	Habits   int             `json:"habits"`
}

// CategoryRates computes per-category completion rates, ordered by the
// canonical category order. Categories with no habits are omitted.
func CategoryRates(habits []models.Habit) []CategoryRate {
	type acc struct {
		total float64
		count int
	}
	byCategory := make(map[models.Category]*acc)

	for _, h := range habits {
		rate := 0.0
		if len(h.Entries) > 0 {
			completed := 0
			for _, e := range h.Entries {
				if e.Value >= h.Target {
					completed++
				}
			}
			rate = float64(completed) / float64(len(h.Entries)) * 100
		}
		a := byCategory[h.Category]
		if a == nil {
			a = &acc{}
			byCategory[h.Category] = a
		}
		a.total += rate
		a.count++
	}

	var rates []CategoryRate
	for _, cat := range models.Categories() {
		if a, ok := byCategory[cat]; ok {
			rates = append(rates, CategoryRate{
				Category: cat,
				Rate:     a.total / float64(a.count),
				Habits:   a.count,
			})
		}
	}
	return rates
}

// Insights produces short, deterministic observations about the collection:
// the strongest streak, habits that have gone cold, and category-specific
// suggestions for sleep and steps.
func Insights(habits []models.Habit) []string {
	var insights []string
	if len(habits) == 0 {
		return insights
	}

	best := habits[0]
	for _, h := range habits[1:] {
		if h.Streak > best.Streak {
			best = h
		}
	}
	if best.Streak > 0 {
		insights = append(insights, fmt.Sprintf("Your %q streak is on fire at %d days. Keep it up!", best.Name, best.Streak))
	}

	cold := 0
	for _, h := range habits {
		if h.Streak == 0 {
			cold++
		}
	}
	if cold > 0 {
		noun := "habits need"
		if cold == 1 {
			noun = "habit needs"
		}
		insights = append(insights, fmt.Sprintf("%d %s attention. Consider adding entries today.", cold, noun))
	}

	if avg, ok := categoryAverage(habits, models.CategorySleep); ok && avg < 7 {
		insights = append(insights, fmt.Sprintf("Your average sleep is %.1f hours. Aim for 7-8 hours.", avg))
	}
	if avg, ok := categoryAverage(habits, models.CategorySteps); ok && avg < 8000 {
		insights = append(insights, fmt.Sprintf("Walking average is %.0f steps. Work toward 10,000.", avg))
	}

	return insights
}

// categoryAverage returns the mean logged value of the first habit in the
// given category, matching how the dashboard surfaces these suggestions.
func categoryAverage(habits []models.Habit, category models.Category) (float64, bool) {
	for _, h := range habits {
		if h.Category != category {
			continue
		}
		if len(h.Entries) == 0 {
			return 0, true
		}
		sum := 0.0
		for _, e := range h.Entries {
			sum += e.Value
		}
		return sum / float64(len(h.Entries)), true
	}
	return 0, false
}
