package shopping

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/apps/ingredients"
	"github.com/miambidi/miambidi-backend/internal/apps/mealplan"
	"github.com/miambidi/miambidi-backend/internal/textutil"
)

type ShoppingService struct {
	db          *gorm.DB
	plans       *mealplan.PlanService
	ingredients *ingredients.IngredientService
}

func NewShoppingService(db *gorm.DB) *ShoppingService {
	return &ShoppingService{
		db:          db,
		plans:       mealplan.NewPlanService(db),
		ingredients: ingredients.NewIngredientService(db),
	}
}

// Generate aggregates the family's plan over [start, end] into a categorized
// list and persists the snapshot. An empty plan yields an empty (but still
// saved) list.
func (s *ShoppingService) Generate(actor access.Actor, name string, start, end time.Time) (*ShoppingList, error) {
	if actor.FamilyID == uuid.Nil {
		return nil, apperr.New(apperr.PermissionDenied, "family_not_found")
	}

	store, err := s.plans.LoadRange(actor, start, end)
	if err != nil {
		return nil, err
	}

	categories, err := s.ingredients.CategoriesByName(actor)
	if err != nil {
		return nil, err
	}

	groups := Aggregate(CollectOccurrences(store.MealsForRange(start, end)), categories)
	payload, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shopping list: %w", err)
	}

	if name == "" {
		name = fmt.Sprintf("Liste de courses du %s au %s",
			start.Format(mealplan.DateKeyLayout), end.Format(mealplan.DateKeyLayout))
	}

	list := ShoppingList{
		FamilyID:    actor.FamilyID,
		Name:        name,
		StartDate:   start.Format(mealplan.DateKeyLayout),
		EndDate:     end.Format(mealplan.DateKeyLayout),
		GeneratedBy: actor.UserID,
		Groups:      payload,
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to save shopping list: %w", err)
	}
	return &list, nil
}

func (s *ShoppingService) List(actor access.Actor) ([]ShoppingList, error) {
	if actor.FamilyID == uuid.Nil {
		return nil, apperr.New(apperr.PermissionDenied, "family_not_found")
	}
	var lists []ShoppingList
	err := s.db.Where("family_id = ?", actor.FamilyID).
		Order("created_at DESC").Find(&lists).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}
	return lists, nil
}

func (s *ShoppingService) Get(actor access.Actor, id uuid.UUID) (*ShoppingList, error) {
	if actor.FamilyID == uuid.Nil {
		return nil, apperr.New(apperr.PermissionDenied, "family_not_found")
	}
	var list ShoppingList
	err := s.db.Where("id = ? AND family_id = ?", id, actor.FamilyID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "list_not_found")
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// ToggleItem flips the purchased flag of the line identified by its
// normalized name and unit.
func (s *ShoppingService) ToggleItem(actor access.Actor, id uuid.UUID, itemName, unit string) (*ShoppingList, error) {
	list, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}

	var groups []CategoryGroup
	if err := json.Unmarshal(list.Groups, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode shopping list: %w", err)
	}

	target := textutil.Normalize(itemName)
	found := false
	for gi := range groups {
		for ii := range groups[gi].Items {
			item := &groups[gi].Items[ii]
			if textutil.Normalize(item.Name) == target && item.Unit == unit {
				item.Purchased = !item.Purchased
				found = true
			}
		}
	}
	if !found {
		return nil, apperr.New(apperr.NotFound, "item_not_found")
	}

	payload, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode shopping list: %w", err)
	}
	if err := s.db.Model(list).Update("groups", payload).Error; err != nil {
		return nil, fmt.Errorf("failed to update shopping list: %w", err)
	}
	list.Groups = payload
	return list, nil
}

func (s *ShoppingService) Delete(actor access.Actor, id uuid.UUID) error {
	list, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	return s.db.Delete(list).Error
}
