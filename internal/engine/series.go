package engine

import (
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/models"
)

// Point is one day of a windowed series.
type Point struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
}

// Series returns a fixed-length, calendar-aligned sequence of daily values
// ending at referenceDay inclusive, oldest first. Days without an entry are
// gap-filled with zero, never omitted, so the result always has length
// exactly windowDays. Label formatting (weekday names for 7-day windows,
// day-of-month for 30-day windows) is a caller concern layered on top.
func Series(entries []models.HabitEntry, windowDays int, referenceDay string) []Point {
	if windowDays <= 0 {
		return nil
	}

	ref, err := dates.Parse(referenceDay)
	if err != nil {
		return nil
	}

	points := make([]Point, 0, windowDays)
	day := ref.AddDate(0, 0, -(windowDays - 1))
	for i := 0; i < windowDays; i++ {
		key := dates.KeyFor(day)
		var value float64
		if entry, ok := entryOn(entries, key); ok {
			value = entry.Value
		}
		points = append(points, Point{Day: key, Value: value})
		day = day.AddDate(0, 0, 1)
	}

	return points
}
