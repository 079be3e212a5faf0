package recipes

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
)

// RecipeService manages recipe CRUD and imports. Every read/write goes
// through the access resolver; handlers only translate the resulting error
// codes into French.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// RecipeInput carries the writable recipe fields.
type RecipeInput struct {
	Name         string
	Description  string
	Instructions string
	Servings     int
	PrepTimeMin  int
	Ingredients  []IngredientLine
	Visibility   string
}

func (in RecipeInput) validate() error {
	if in.Name == "" {
		return apperr.New(apperr.Invalid, "invalid")
	}
	switch in.Visibility {
	case access.VisibilityPrivate, access.VisibilityFamily, access.VisibilityPublic:
	default:
		return apperr.New(apperr.Invalid, "invalid")
	}
	for _, line := range in.Ingredients {
		if line.Name == "" || line.Quantity < 0 {
			return apperr.New(apperr.Invalid, "invalid")
		}
	}
	return nil
}

func marshalLines(lines []IngredientLine) (datatypes.JSON, error) {
	if lines == nil {
		lines = []IngredientLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ingredient lines: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func (s *RecipeService) Create(actor access.Actor, in RecipeInput) (*Recipe, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	lines, err := marshalLines(in.Ingredients)
	if err != nil {
		return nil, err
	}

	servings := in.Servings
	if servings <= 0 {
		servings = 4
	}

	rec := &Recipe{
		ID:           uuid.New(),
		FamilyID:     actor.FamilyID,
		CreatedBy:    actor.UserID,
		Name:         in.Name,
		Description:  in.Description,
		Instructions: in.Instructions,
		Servings:     servings,
		PrepTimeMin:  in.PrepTimeMin,
		Ingredients:  lines,
		Visibility:   in.Visibility,
	}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return rec, nil
}

func (s *RecipeService) Get(actor access.Actor, id uuid.UUID) (*Recipe, error) {
	var rec Recipe
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "recipe_not_found")
		}
		return nil, err
	}
	if !actor.CanView(rec.AccessEntity()) {
		return nil, apperr.New(apperr.PermissionDenied, "view_denied")
	}
	return &rec, nil
}

// List returns recipes visible to the actor: their own, their family's, and
// public ones. An optional search matches against the recipe name.
func (s *RecipeService) List(actor access.Actor, search string, page, limit int) ([]Recipe, int64, error) {
	var list []Recipe
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&Recipe{}).Scopes(family.VisibleTo(actor.UserID, actor.FamilyID, actor.Role))
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").Offset(offset).Limit(limit).Find(&list).Error
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (s *RecipeService) Update(actor access.Actor, id uuid.UUID, in RecipeInput) (*Recipe, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var rec Recipe
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "recipe_not_found")
		}
		return nil, err
	}
	if !actor.CanEdit(rec.AccessEntity()) {
		return nil, apperr.New(apperr.PermissionDenied, access.DenialCode(rec.AccessEntity()))
	}

	lines, err := marshalLines(in.Ingredients)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":          in.Name,
		"description":   in.Description,
		"instructions":  in.Instructions,
		"servings":      in.Servings,
		"prep_time_min": in.PrepTimeMin,
		"ingredients":   lines,
		"visibility":    in.Visibility,
	}
	if err := s.db.Model(&rec).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RecipeService) Delete(actor access.Actor, id uuid.UUID) error {
	var rec Recipe
	if err := s.db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "recipe_not_found")
		}
		return err
	}
	if !actor.CanEdit(rec.AccessEntity()) {
		return apperr.New(apperr.PermissionDenied, access.DenialCode(rec.AccessEntity()))
	}
	return s.db.Delete(&rec).Error
}

// Import copies a recipe the actor can view into the actor's own family. The
// copy keeps the original creator in created_by and records the actor as
// importer, so both retain edit rights on it.
func (s *RecipeService) Import(actor access.Actor, id uuid.UUID) (*Recipe, error) {
	source, err := s.Get(actor, id)
	if err != nil {
		return nil, err
	}

	if source.FamilyID != uuid.Nil && source.FamilyID == actor.FamilyID {
		return nil, apperr.New(apperr.Conflict, "import_own_recipe")
	}
	if source.CreatedBy == actor.UserID {
		return nil, apperr.New(apperr.Conflict, "import_own_recipe")
	}

	copyRec := &Recipe{
		ID:             uuid.New(),
		FamilyID:       actor.FamilyID,
		CreatedBy:      source.CreatedBy,
		Name:           source.Name,
		Description:    source.Description,
		Instructions:   source.Instructions,
		Servings:       source.Servings,
		PrepTimeMin:    source.PrepTimeMin,
		Ingredients:    source.Ingredients,
		Visibility:     access.VisibilityFamily,
		ImportedBy:     actor.UserID,
		ImportedFromID: source.ID,
	}
	if err := s.db.Create(copyRec).Error; err != nil {
		return nil, fmt.Errorf("failed to import recipe: %w", err)
	}
	return copyRec, nil
}

// GetByIDs loads recipes in bulk for the meal-plan and shopping endpoints,
// filtered to what the actor may view.
func (s *RecipeService) GetByIDs(actor access.Actor, ids []uuid.UUID) (map[uuid.UUID]Recipe, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]Recipe{}, nil
	}

	var list []Recipe
	err := s.db.Scopes(family.VisibleTo(actor.UserID, actor.FamilyID, actor.Role)).
		Where("id IN ?", ids).Find(&list).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]Recipe, len(list))
	for _, rec := range list {
		byID[rec.ID] = rec
	}
	return byID, nil
}
