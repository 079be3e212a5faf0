package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miambidi/miambidi-backend/internal/apps/recipes"
)

func testRecipe(name string) recipes.Recipe {
	return recipes.Recipe{ID: uuid.New(), Name: name, Servings: 4}
}

func TestPlanMealOverwrites(t *testing.T) {
	s := NewStore()
	ndole := testRecipe("Ndolé")
	eru := testRecipe("Eru")

	s.PlanMeal("2026-08-24", SlotLunch, ndole)
	s.PlanMeal("2026-08-24", SlotLunch, eru)

	entry, ok := s.Get("2026-08-24", SlotLunch)
	require.True(t, ok)
	assert.Equal(t, eru.ID, entry.Recipe.ID)
	assert.Equal(t, 1, s.Len())
}

func TestSameRecipeInManyCells(t *testing.T) {
	s := NewStore()
	poulet := testRecipe("Poulet DG")

	s.PlanMeal("2026-08-24", SlotLunch, poulet)
	s.PlanMeal("2026-08-24", SlotDinner, poulet)
	s.PlanMeal("2026-08-26", SlotLunch, poulet)

	assert.Equal(t, 3, s.Len())
	assert.Len(t, s.PlannedRecipes(), 1)
}

func TestRemoveMealAbsentCellIsNoop(t *testing.T) {
	s := NewStore()
	s.PlanMeal("2026-08-24", SlotLunch, testRecipe("Koki"))

	s.RemoveMeal("2026-08-24", SlotDinner) // nothing there
	s.RemoveMeal("2026-08-25", SlotLunch)  // nothing there

	assert.Equal(t, 1, s.Len())

	s.RemoveMeal("2026-08-24", SlotLunch)
	assert.Equal(t, 0, s.Len())
}

func TestMealsForRangeInclusive(t *testing.T) {
	s := NewStore()
	s.PlanMeal("2026-08-23", SlotDinner, testRecipe("a"))
	s.PlanMeal("2026-08-24", SlotBreakfast, testRecipe("b"))
	s.PlanMeal("2026-08-30", SlotDinner, testRecipe("c"))
	s.PlanMeal("2026-08-31", SlotLunch, testRecipe("d"))
	s.entries[Key{DateKey: "not-a-date", Slot: SlotLunch}] = Entry{Recipe: testRecipe("x")}

	start, _ := time.Parse(DateKeyLayout, "2026-08-24")
	end, _ := time.Parse(DateKeyLayout, "2026-08-30")
	got := s.MealsForRange(start, end)

	assert.Len(t, got, 2)
	_, hasStart := got[Key{DateKey: "2026-08-24", Slot: SlotBreakfast}]
	_, hasEnd := got[Key{DateKey: "2026-08-30", Slot: SlotDinner}]
	assert.True(t, hasStart)
	assert.True(t, hasEnd)
}

func TestMealsForRangeIgnoresAnchorZone(t *testing.T) {
	s := NewStore()
	s.PlanMeal("2026-08-24", SlotLunch, testRecipe("a"))     // Monday
	s.PlanMeal("2026-08-30", SlotDinner, testRecipe("b"))    // Sunday of the same week
	s.PlanMeal("2026-08-31", SlotBreakfast, testRecipe("c")) // next Monday

	// A client in Paris anchors the week with a local timestamp; the week
	// bounds then carry the +01:00 offset while the stored keys are bare
	// calendar dates. Both week boundary days must still be included.
	paris := time.FixedZone("CET", 3600)
	wednesday := time.Date(2026, 8, 26, 14, 30, 0, 0, paris)
	s.SetWeek(wednesday)

	got := s.MealsForRange(s.WeekRange())
	assert.Len(t, got, 2)
	_, hasMonday := got[Key{DateKey: "2026-08-24", Slot: SlotLunch}]
	_, hasSunday := got[Key{DateKey: "2026-08-30", Slot: SlotDinner}]
	assert.True(t, hasMonday)
	assert.True(t, hasSunday)

	// Same plan, anchor west of UTC: Monday must not fall out either.
	honolulu := time.FixedZone("HST", -10*3600)
	s.SetWeek(time.Date(2026, 8, 26, 14, 30, 0, 0, honolulu))

	got = s.MealsForRange(s.WeekRange())
	assert.Len(t, got, 2)
	_, hasMonday = got[Key{DateKey: "2026-08-24", Slot: SlotLunch}]
	assert.True(t, hasMonday)
}

func TestWeekStartsOnMonday(t *testing.T) {
	s := NewStore()

	// 2026-08-26 is a Wednesday; its week starts Monday 2026-08-24.
	wednesday, _ := time.Parse(DateKeyLayout, "2026-08-26")
	assert.Equal(t, "2026-08-24", s.SetWeek(wednesday).Format(DateKeyLayout))

	// Sunday belongs to the week that began the previous Monday.
	sunday, _ := time.Parse(DateKeyLayout, "2026-08-30")
	assert.Equal(t, "2026-08-24", s.SetWeek(sunday).Format(DateKeyLayout))

	// Monday is its own week start.
	monday, _ := time.Parse(DateKeyLayout, "2026-08-24")
	assert.Equal(t, "2026-08-24", s.SetWeek(monday).Format(DateKeyLayout))
}

func TestNavigateWeekKeepsEntries(t *testing.T) {
	s := NewStore()
	anchor, _ := time.Parse(DateKeyLayout, "2026-08-24")
	s.SetWeek(anchor)
	s.PlanMeal("2026-08-24", SlotLunch, testRecipe("Okok"))

	next := s.NavigateWeek(1)
	assert.Equal(t, "2026-08-31", next.Format(DateKeyLayout))
	assert.Equal(t, 1, s.Len())

	back := s.NavigateWeek(-2)
	assert.Equal(t, "2026-08-17", back.Format(DateKeyLayout))
	assert.Equal(t, 1, s.Len())
}

func TestWeekRange(t *testing.T) {
	s := NewStore()
	anchor, _ := time.Parse(DateKeyLayout, "2026-08-26")
	s.SetWeek(anchor)

	start, end := s.WeekRange()
	assert.Equal(t, "2026-08-24", start.Format(DateKeyLayout))
	assert.Equal(t, "2026-08-30", end.Format(DateKeyLayout))
}

func TestClearAllKeepsCursor(t *testing.T) {
	s := NewStore()
	anchor, _ := time.Parse(DateKeyLayout, "2026-08-24")
	s.SetWeek(anchor)
	s.PlanMeal("2026-08-24", SlotLunch, testRecipe("Sanga"))
	s.PlanMeal("2026-08-25", SlotDinner, testRecipe("Mbongo"))

	s.ClearAll()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "2026-08-24", s.CurrentWeek().Format(DateKeyLayout))
}

func TestValidSlot(t *testing.T) {
	for _, slot := range []string{SlotBreakfast, SlotLunch, SlotDinner, SlotSnack} {
		assert.True(t, ValidSlot(slot))
	}
	assert.False(t, ValidSlot("brunch"))
	assert.False(t, ValidSlot(""))
}
