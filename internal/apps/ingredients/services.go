package ingredients

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/family"
	"github.com/miambidi/miambidi-backend/internal/textutil"
)

// IngredientService manages the family ingredient catalogs.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// IngredientInput carries the writable catalog fields.
type IngredientInput struct {
	Name       string
	Category   string
	Unit       string
	Price      float64
	Visibility string
}

func (in IngredientInput) validate() error {
	if in.Name == "" {
		return apperr.New(apperr.Invalid, "invalid")
	}
	switch in.Visibility {
	case access.VisibilityPrivate, access.VisibilityFamily, access.VisibilityPublic:
		return nil
	default:
		return apperr.New(apperr.Invalid, "invalid")
	}
}

func (s *IngredientService) Create(actor access.Actor, in IngredientInput) (*Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ing := &Ingredient{
		ID:             uuid.New(),
		FamilyID:       actor.FamilyID,
		CreatedBy:      actor.UserID,
		Name:           in.Name,
		NormalizedName: textutil.Normalize(in.Name),
		Category:       in.Category,
		Unit:           in.Unit,
		Price:          in.Price,
		Visibility:     in.Visibility,
	}
	if err := s.db.Create(ing).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}
	return ing, nil
}

func (s *IngredientService) Get(actor access.Actor, id uuid.UUID) (*Ingredient, error) {
	var ing Ingredient
	if err := s.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "ingredient_not_found")
		}
		return nil, err
	}
	if !actor.CanView(ing.AccessEntity()) {
		return nil, apperr.New(apperr.PermissionDenied, "view_denied")
	}
	return &ing, nil
}

// List returns catalog entries visible to the actor, optionally filtered by
// category or a normalized name search.
func (s *IngredientService) List(actor access.Actor, category, search string) ([]Ingredient, error) {
	query := s.db.Scopes(family.VisibleTo(actor.UserID, actor.FamilyID, actor.Role))
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("normalized_name LIKE ?", "%"+textutil.Normalize(search)+"%")
	}

	var list []Ingredient
	if err := query.Order("normalized_name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *IngredientService) Update(actor access.Actor, id uuid.UUID, in IngredientInput) (*Ingredient, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var ing Ingredient
	if err := s.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "ingredient_not_found")
		}
		return nil, err
	}
	if !actor.CanEdit(ing.AccessEntity()) {
		return nil, apperr.New(apperr.PermissionDenied, access.DenialCode(ing.AccessEntity()))
	}

	updates := map[string]interface{}{
		"name":            in.Name,
		"normalized_name": textutil.Normalize(in.Name),
		"category":        in.Category,
		"unit":            in.Unit,
		"price":           in.Price,
		"visibility":      in.Visibility,
	}
	if err := s.db.Model(&ing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *IngredientService) Delete(actor access.Actor, id uuid.UUID) error {
	var ing Ingredient
	if err := s.db.First(&ing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.NotFound, "ingredient_not_found")
		}
		return err
	}
	if !actor.CanEdit(ing.AccessEntity()) {
		return apperr.New(apperr.PermissionDenied, access.DenialCode(ing.AccessEntity()))
	}
	return s.db.Delete(&ing).Error
}

// CategoriesByName builds the normalized-name → category lookup the shopping
// aggregator uses to classify merged line items.
func (s *IngredientService) CategoriesByName(actor access.Actor) (map[string]string, error) {
	var list []Ingredient
	err := s.db.Scopes(family.VisibleTo(actor.UserID, actor.FamilyID, actor.Role)).
		Select("normalized_name", "category").Find(&list).Error
	if err != nil {
		return nil, err
	}

	categories := make(map[string]string, len(list))
	for _, ing := range list {
		if ing.Category != "" {
			categories[ing.NormalizedName] = ing.Category
		}
	}
	return categories, nil
}
