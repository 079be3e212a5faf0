package families

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
	"github.com/miambidi/miambidi-backend/internal/models"
)

// FamilyService manages families and their rosters. Mutation rules live in
// Roster; the service loads the roster, runs the check, then persists.
type FamilyService struct {
	db *gorm.DB
}

func NewFamilyService(db *gorm.DB) *FamilyService {
	return &FamilyService{db: db}
}

func (s *FamilyService) loadRoster(familyID uuid.UUID) (Roster, error) {
	var members []FamilyMember
	if err := s.db.Where("family_id = ?", familyID).Find(&members).Error; err != nil {
		return Roster{}, fmt.Errorf("failed to load roster: %w", err)
	}
	return Roster{FamilyID: familyID, Members: members}, nil
}

// CreateFamily creates a family with the creator as its sole admin. Fails if
// the creator already belongs to a family.
func (s *FamilyService) CreateFamily(creatorID uuid.UUID, name string) (*Family, error) {
	var existing FamilyMember
	if err := s.db.Where("user_id = ?", creatorID).First(&existing).Error; err == nil {
		return nil, apperr.New(apperr.Conflict, "family_exists")
	}

	var creator models.User
	if err := s.db.First(&creator, "id = ?", creatorID).Error; err != nil {
		return nil, apperr.New(apperr.NotFound, "not_found")
	}

	fam := &Family{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: creatorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fam).Error; err != nil {
			return err
		}
		member := FamilyMember{
			ID:          uuid.New(),
			FamilyID:    fam.ID,
			UserID:      creatorID,
			Role:        access.RoleAdmin,
			DisplayName: creator.DisplayName,
			Email:       creator.Email,
			Preferences: datatypes.JSON([]byte(`{}`)),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create family: %w", err)
	}
	return fam, nil
}

// GetFamily returns the family plus its roster.
func (s *FamilyService) GetFamily(familyID uuid.UUID) (*Family, []FamilyMember, error) {
	var fam Family
	if err := s.db.First(&fam, "id = ?", familyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.New(apperr.NotFound, "family_not_found")
		}
		return nil, nil, err
	}

	roster, err := s.loadRoster(familyID)
	if err != nil {
		return nil, nil, err
	}
	return &fam, roster.Members, nil
}

// RenameFamily updates the family name; admin-only.
func (s *FamilyService) RenameFamily(callerID, familyID uuid.UUID, name string) (*Family, error) {
	roster, err := s.loadRoster(familyID)
	if err != nil {
		return nil, err
	}
	caller := roster.byUser(callerID)
	if caller == nil || caller.Role != access.RoleAdmin {
		return nil, apperr.New(apperr.PermissionDenied, "admin_required")
	}

	var fam Family
	if err := s.db.First(&fam, "id = ?", familyID).Error; err != nil {
		return nil, apperr.New(apperr.NotFound, "family_not_found")
	}
	if err := s.db.Model(&fam).Update("name", name).Error; err != nil {
		return nil, err
	}
	fam.Name = name
	return &fam, nil
}

// AddMember adds the user with the given email to the family with role
// member. Caller must be an admin of the family.
func (s *FamilyService) AddMember(callerID, familyID uuid.UUID, email, displayName string) (*FamilyMember, error) {
	roster, err := s.loadRoster(familyID)
	if err != nil {
		return nil, err
	}
	if err := roster.CheckAddMember(callerID); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, apperr.New(apperr.NotFound, "not_found")
	}

	var existing FamilyMember
	if err := s.db.Where("user_id = ?", user.ID).First(&existing).Error; err == nil {
		return nil, apperr.New(apperr.Conflict, "member_exists")
	}

	if displayName == "" {
		displayName = user.DisplayName
	}

	member := &FamilyMember{
		ID:          uuid.New(),
		FamilyID:    familyID,
		UserID:      user.ID,
		Role:        access.RoleMember,
		DisplayName: displayName,
		Email:       user.Email,
		Preferences: datatypes.JSON([]byte(`{}`)),
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}
	return member, nil
}

// RemoveMember removes a member, refusing to strip the family of its last
// admin. Members may remove themselves (leave); admins may remove anyone.
func (s *FamilyService) RemoveMember(callerID, familyID, memberID uuid.UUID) error {
	roster, err := s.loadRoster(familyID)
	if err != nil {
		return err
	}
	if err := roster.CheckRemoveMember(callerID, memberID); err != nil {
		return err
	}
	return s.db.Delete(&FamilyMember{}, "id = ? AND family_id = ?", memberID, familyID).Error
}

// ChangeRole promotes or demotes a member; the sole-admin guard applies.
func (s *FamilyService) ChangeRole(callerID, familyID, memberID uuid.UUID, newRole string) (*FamilyMember, error) {
	roster, err := s.loadRoster(familyID)
	if err != nil {
		return nil, err
	}
	if err := roster.CheckChangeRole(callerID, memberID, newRole); err != nil {
		return nil, err
	}

	member := roster.find(memberID)
	if err := s.db.Model(&FamilyMember{}).Where("id = ?", memberID).Update("role", newRole).Error; err != nil {
		return nil, err
	}
	member.Role = newRole
	return member, nil
}

// MemberUpdate carries the mutable profile fields; nil means keep.
type MemberUpdate struct {
	DisplayName *string
	Age         *int
	Preferences *Preferences
}

// UpdateMember applies a partial profile update. Members may edit their own
// profile; admins may edit anyone's.
func (s *FamilyService) UpdateMember(callerID, familyID, memberID uuid.UUID, upd MemberUpdate) (*FamilyMember, error) {
	roster, err := s.loadRoster(familyID)
	if err != nil {
		return nil, err
	}
	if err := roster.CheckUpdateMember(callerID, memberID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upd.DisplayName != nil {
		updates["display_name"] = *upd.DisplayName
	}
	if upd.Age != nil {
		updates["age"] = *upd.Age
	}
	if upd.Preferences != nil {
		raw, err := json.Marshal(upd.Preferences)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal preferences: %w", err)
		}
		updates["preferences"] = datatypes.JSON(raw)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&FamilyMember{}).Where("id = ?", memberID).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var member FamilyMember
	if err := s.db.First(&member, "id = ?", memberID).Error; err != nil {
		return nil, err
	}
	return &member, nil
}
