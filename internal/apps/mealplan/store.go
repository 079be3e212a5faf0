package mealplan

import (
	"time"

	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/apps/recipes"
)

// DateKeyLayout is the calendar-date identifier format used for plan keys.
const DateKeyLayout = "2006-01-02"

// Meal slots. A day has at most one recipe per slot.
const (
	SlotBreakfast = "breakfast"
	SlotLunch     = "lunch"
	SlotDinner    = "dinner"
	SlotSnack     = "snack"
)

// ValidSlot reports whether s names a known meal slot.
func ValidSlot(s string) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// Key identifies one plan cell: a calendar date and a meal slot.
type Key struct {
	DateKey string
	Slot    string
}

// Entry is a planned meal: the assigned recipe and when it was planned.
type Entry struct {
	Recipe    recipes.Recipe
	PlannedAt time.Time
}

// Store is the in-memory working set of a planning session: a keyed map from
// (date, slot) to the assigned recipe, plus a current-week cursor for the
// calendar view. Assigning to an occupied cell overwrites it; the same recipe
// may sit in any number of cells. The store itself never fails; persistence
// and access checks are the service's concern.
//
// A Store is not safe for concurrent use; the service materializes one per
// request from database rows.
type Store struct {
	entries map[Key]Entry
	week    time.Time
}

// NewStore returns an empty store with the week cursor on the current week.
func NewStore() *Store {
	return &Store{
		entries: make(map[Key]Entry),
		week:    startOfWeek(time.Now()),
	}
}

// startOfWeek truncates t to the Monday of its week.
func startOfWeek(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return t.AddDate(0, 0, -(weekday - 1))
}

// PlanMeal assigns a recipe to a (date, slot) cell, overwriting any previous
// assignment and stamping PlannedAt.
func (s *Store) PlanMeal(dateKey, slot string, rec recipes.Recipe) {
	s.entries[Key{DateKey: dateKey, Slot: slot}] = Entry{
		Recipe:    rec,
		PlannedAt: time.Now(),
	}
}

// RemoveMeal clears a cell. Removing an absent cell is a no-op, not an error.
func (s *Store) RemoveMeal(dateKey, slot string) {
	delete(s.entries, Key{DateKey: dateKey, Slot: slot})
}

// Get returns the entry at a cell, if any.
func (s *Store) Get(dateKey, slot string) (Entry, bool) {
	e, ok := s.entries[Key{DateKey: dateKey, Slot: slot}]
	return e, ok
}

// Len returns the number of planned cells.
func (s *Store) Len() int {
	return len(s.entries)
}

// MealsForRange returns all entries whose date falls within [start, end]
// inclusive. The bounds are reduced to calendar dates and compared lexically
// (ISO date keys sort chronologically), so the zone of start/end never shifts
// the range. Entries with unparseable date keys are skipped.
func (s *Store) MealsForRange(start, end time.Time) map[Key]Entry {
	lo := start.Format(DateKeyLayout)
	hi := end.Format(DateKeyLayout)

	out := make(map[Key]Entry)
	for k, e := range s.entries {
		if _, err := time.Parse(DateKeyLayout, k.DateKey); err != nil {
			continue
		}
		if k.DateKey < lo || k.DateKey > hi {
			continue
		}
		out[k] = e
	}
	return out
}

// PlannedRecipes returns the recipes referenced anywhere in the store,
// de-duplicated by recipe id.
func (s *Store) PlannedRecipes() []recipes.Recipe {
	seen := make(map[uuid.UUID]bool)
	var out []recipes.Recipe
	for _, e := range s.entries {
		if seen[e.Recipe.ID] {
			continue
		}
		seen[e.Recipe.ID] = true
		out = append(out, e.Recipe)
	}
	return out
}

// ClearAll empties the store. The week cursor is untouched.
func (s *Store) ClearAll() {
	s.entries = make(map[Key]Entry)
}

// CurrentWeek returns the Monday of the week the cursor points at.
func (s *Store) CurrentWeek() time.Time {
	return s.week
}

// NavigateWeek moves the week cursor by n weeks (negative for past weeks).
// Stored entries are unaffected.
func (s *Store) NavigateWeek(n int) time.Time {
	s.week = s.week.AddDate(0, 0, 7*n)
	return s.week
}

// SetWeek points the cursor at the week containing date.
func (s *Store) SetWeek(date time.Time) time.Time {
	s.week = startOfWeek(date)
	return s.week
}

// WeekRange returns the inclusive [Monday, Sunday] bounds of the cursor week.
func (s *Store) WeekRange() (time.Time, time.Time) {
	return s.week, s.week.AddDate(0, 0, 6)
}
