package models

import "time"

// Category is one of the fixed set of habit category tags.
type Category string

const (
	CategoryExercise   Category = "exercise"
	CategorySteps      Category = "steps"
	CategorySkills     Category = "skills"
	CategorySavings    Category = "savings"
	CategorySleep      Category = "sleep"
	CategoryPrayer     Category = "prayer"
	CategoryMeditation Category = "meditation"
	CategoryStress     Category = "stress"
	CategoryCustom     Category = "custom"
)

// CategoryInfo describes the presentation defaults for a category.
type CategoryInfo struct {
	Label       string
	DefaultUnit string
	Color       string
}

// CategoryConfig maps each category tag to its label, default unit and
// presentation color (a lipgloss-compatible hex string).
var CategoryConfig = map[Category]CategoryInfo{
	CategoryExercise:   {Label: "Exercise", DefaultUnit: "minutes", Color: "#F97316"},
	CategorySteps:      {Label: "Walking Steps", DefaultUnit: "steps", Color: "#22C55E"},
	CategorySkills:     {Label: "Skills Learning", DefaultUnit: "hours", Color: "#3B82F6"},
	CategorySavings:    {Label: "Savings", DefaultUnit: "$", Color: "#EAB308"},
	CategorySleep:      {Label: "Sleep", DefaultUnit: "hours", Color: "#8B5CF6"},
	CategoryPrayer:     {Label: "Prayer", DefaultUnit: "times", Color: "#14B8A6"},
	CategoryMeditation: {Label: "Meditation", DefaultUnit: "minutes", Color: "#EC4899"},
	CategoryStress:     {Label: "Stress Level", DefaultUnit: "level", Color: "#EF4444"},
	CategoryCustom:     {Label: "Custom Habit", DefaultUnit: "times", Color: "#64748B"},
}

// Valid reports whether c is one of the known category tags.
func (c Category) Valid() bool {
	_, ok := CategoryConfig[c]
	return ok
}

// Categories returns the known category tags in a stable order.
func Categories() []Category {
	return []Category{
		CategoryExercise,
		CategorySteps,
		CategorySkills,
		CategorySavings,
		CategorySleep,
		CategoryPrayer,
		CategoryMeditation,
		CategoryStress,
		CategoryCustom,
	}
}

// HabitEntry represents a single day's logged value for a habit.
type HabitEntry struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	Value     float64   `json:"value"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Habit represents a tracked behavior with a daily numeric target.
//
// Streak and LongestStreak are caches maintained by the engine: Streak is
// always recomputed from Entries after an entry mutation, and LongestStreak
// only ever ratchets upward. They are persisted so reads never pay the
// recompute cost, but Entries remains the source of truth.
type Habit struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Category         Category     `json:"category"`
	Unit             string       `json:"unit"`
	Target           float64      `json:"target"`
	Color            string       `json:"color"`
	Streak           int          `json:"streak"`
	LongestStreak    int          `json:"longest_streak"`
	FreezesUsed      int          `json:"freezes_used"`
	FreezesAvailable int          `json:"freezes_available"`
	Entries          []HabitEntry `json:"entries"`
	CreatedAt        time.Time    `json:"created_at"`
}

// FreezesRemaining returns the number of unused freezes.
func (h *Habit) FreezesRemaining() int {
	return h.FreezesAvailable - h.FreezesUsed
}
