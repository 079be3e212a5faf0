package mealplan

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/apps/recipes"
)

// PlanService persists a family's meal plan and materializes in-memory
// stores from it for range queries and shopping-list generation.
type PlanService struct {
	db      *gorm.DB
	recipes *recipes.RecipeService
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db, recipes: recipes.NewRecipeService(db)}
}

func parseDateKey(dateKey string) (time.Time, error) {
	d, err := time.Parse(DateKeyLayout, dateKey)
	if err != nil {
		return time.Time{}, apperr.New(apperr.Invalid, "invalid")
	}
	return d, nil
}

// PlanMeal assigns a recipe to a (date, slot) cell, overwriting any previous
// assignment. The recipe must be visible to the actor; the actor must belong
// to a family.
func (s *PlanService) PlanMeal(actor access.Actor, dateKey, slot string, recipeID uuid.UUID) (*MealPlanEntry, error) {
	if actor.FamilyID == uuid.Nil {
		return nil, apperr.New(apperr.PermissionDenied, "family_not_found")
	}
	if !ValidSlot(slot) {
		return nil, apperr.New(apperr.Invalid, "invalid")
	}
	if _, err := parseDateKey(dateKey); err != nil {
		return nil, err
	}

	// Visibility check doubles as existence check.
	if _, err := s.recipes.Get(actor, recipeID); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := MealPlanEntry{
		FamilyID:  actor.FamilyID,
		DateKey:   dateKey,
		Slot:      slot,
		RecipeID:  recipeID,
		PlannedBy: actor.UserID,
		PlannedAt: now,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing MealPlanEntry
		err := tx.Where("family_id = ? AND date_key = ? AND slot = ?", actor.FamilyID, dateKey, slot).
			First(&existing).Error
		if err == nil {
			return tx.Model(&existing).Updates(map[string]interface{}{
				"recipe_id":  recipeID,
				"planned_by": actor.UserID,
				"planned_at": now,
			}).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		entry.ID = uuid.New()
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to plan meal: %w", err)
	}

	var saved MealPlanEntry
	if err := s.db.Where("family_id = ? AND date_key = ? AND slot = ?", actor.FamilyID, dateKey, slot).
		First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// RemoveMeal clears a cell. Removing an absent cell is deliberately a no-op,
// matching the in-memory store semantics.
func (s *PlanService) RemoveMeal(actor access.Actor, dateKey, slot string) error {
	if actor.FamilyID == uuid.Nil {
		return apperr.New(apperr.PermissionDenied, "family_not_found")
	}
	return s.db.Where("family_id = ? AND date_key = ? AND slot = ?", actor.FamilyID, dateKey, slot).
		Delete(&MealPlanEntry{}).Error
}

// ClearAll empties the family's entire plan.
func (s *PlanService) ClearAll(actor access.Actor) error {
	if actor.FamilyID == uuid.Nil {
		return apperr.New(apperr.PermissionDenied, "family_not_found")
	}
	return s.db.Where("family_id = ?", actor.FamilyID).Delete(&MealPlanEntry{}).Error
}

// LoadRange materializes an in-memory store holding the family's entries
// whose dates fall within [start, end] inclusive. Entries whose recipe the
// actor may not view (or that dangle after a recipe deletion) are skipped.
func (s *PlanService) LoadRange(actor access.Actor, start, end time.Time) (*Store, error) {
	if actor.FamilyID == uuid.Nil {
		return nil, apperr.New(apperr.PermissionDenied, "family_not_found")
	}

	var rows []MealPlanEntry
	err := s.db.Where("family_id = ? AND date_key >= ? AND date_key <= ?",
		actor.FamilyID, start.Format(DateKeyLayout), end.Format(DateKeyLayout)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RecipeID)
	}
	byID, err := s.recipes.GetByIDs(actor, ids)
	if err != nil {
		return nil, err
	}

	store := NewStore()
	store.SetWeek(start)
	for _, row := range rows {
		rec, ok := byID[row.RecipeID]
		if !ok {
			continue
		}
		store.entries[Key{DateKey: row.DateKey, Slot: row.Slot}] = Entry{
			Recipe:    rec,
			PlannedAt: row.PlannedAt,
		}
	}
	return store, nil
}

// WeekView is the calendar payload for one week of the plan.
type WeekView struct {
	WeekStart string               `json:"week_start"`
	WeekEnd   string               `json:"week_end"`
	Meals     []WeekViewMeal       `json:"meals"`
	Recipes   map[string]SlimThumb `json:"recipes"`
}

type WeekViewMeal struct {
	DateKey   string    `json:"date_key"`
	Slot      string    `json:"slot"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	PlannedAt time.Time `json:"planned_at"`
}

// SlimThumb is the recipe summary the calendar grid renders.
type SlimThumb struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Servings int       `json:"servings"`
}

// Week builds the view for the week containing anchor.
func (s *PlanService) Week(actor access.Actor, anchor time.Time) (*WeekView, error) {
	store := NewStore()
	store.SetWeek(anchor)
	start, end := store.WeekRange()

	loaded, err := s.LoadRange(actor, start, end)
	if err != nil {
		return nil, err
	}

	view := &WeekView{
		WeekStart: start.Format(DateKeyLayout),
		WeekEnd:   end.Format(DateKeyLayout),
		Meals:     []WeekViewMeal{},
		Recipes:   map[string]SlimThumb{},
	}
	for k, e := range loaded.MealsForRange(start, end) {
		view.Meals = append(view.Meals, WeekViewMeal{
			DateKey:   k.DateKey,
			Slot:      k.Slot,
			RecipeID:  e.Recipe.ID,
			PlannedAt: e.PlannedAt,
		})
		view.Recipes[e.Recipe.ID.String()] = SlimThumb{
			ID:       e.Recipe.ID,
			Name:     e.Recipe.Name,
			Servings: e.Recipe.Servings,
		}
	}
	return view, nil
}
