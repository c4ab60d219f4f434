// Package validation guards habit and entry drafts at the CLI boundary.
// The engine itself is deliberately permissive (stale ids no-op, values are
// taken as given), so anything user-typed is checked here first.
package validation

import (
	"fmt"
	"strings"

	"github.com/habitflow/habitflow/internal/dates"
	"github.com/habitflow/habitflow/internal/models"
)

// ValidateHabitDraft checks the caller-supplied fields of a new habit.
func ValidateHabitDraft(name string, category models.Category, unit string, target float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name must not be empty")
	}
	if !category.Valid() {
		return fmt.Errorf("unknown category %q (expected one of %s)", category, categoryList())
	}
	if strings.TrimSpace(unit) == "" {
		return fmt.Errorf("unit must not be empty")
	}
	if target <= 0 {
		return fmt.Errorf("target must be a positive number, got %v", target)
	}
	return nil
}

// ValidateEntryDraft checks a day key and value before they reach the ledger.
// An empty day is allowed; it means today.
func ValidateEntryDraft(day string, value float64) error {
	if day != "" && !dates.Valid(day) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", day)
	}
	if value < 0 {
		return fmt.Errorf("value must not be negative, got %v", value)
	}
	return nil
}

func categoryList() string {
	var names []string
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
