package engine

import (
	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/models"
)

// Calculator computes current streaks from an entry collection.
//
// The zero value scans backward up to constants.StreakScanDays days and
// treats freezes as bookkeeping only.
type Calculator struct {
	// ScanDays bounds the backward scan; zero means constants.StreakScanDays.
	// Streaks longer than the bound are not representable.
	ScanDays int

	// FreezesProtect lets an unused freeze stand in for a missed past day
	// instead of breaking the streak. Off by default: freezes are a budget
	// counter with no effect on the scan.
	FreezesProtect bool
}

// CurrentStreak returns the length of the consecutive run of qualifying days
// ending at the most recent qualifying day at or before today. A day
// qualifies when its logged value meets or exceeds target. Today is exempt:
// a missing or unmet entry today does not break the run, since the user may
// still log later in the day. Entries dated after today never contribute.
//
// freezeBudget is the number of unused freezes; it is only consulted when
// FreezesProtect is set.
func (c Calculator) CurrentStreak(entries []models.HabitEntry, target float64, today string, freezeBudget int) int {
	if len(entries) == 0 {
		return 0
	}

	day, err := dates.Parse(today)
	if err != nil {
		return 0
	}

	scan := c.ScanDays
	if scan <= 0 {
		scan = constants.StreakScanDays
	}

	streak := 0
	for i := 0; i < scan; i++ {
		key := dates.KeyFor(day)
		entry, ok := entryOn(entries, key)
		switch {
		case ok && entry.Value >= target:
			streak++
		case i == 0:
			// Today has no qualifying entry yet; keep scanning.
		case c.FreezesProtect && freezeBudget > 0:
			freezeBudget--
		default:
			return streak
		}
		day = day.AddDate(0, 0, -1)
	}

	return streak
}
