// Package access decides who may see and who may edit family-scoped content.
//
// Recipes, ingredients and blog posts all share the same three-tier visibility
// model (private / family / public) plus an explicit edit allow-list that
// survives imports: when a recipe is copied into another family, the original
// creator and the importer both keep edit rights on the copy. Every permission
// check in the server goes through this package so the rules live in one place.
package access

import "github.com/google/uuid"

// Visibility tiers.
const (
	VisibilityPrivate = "private"
	VisibilityFamily  = "family"
	VisibilityPublic  = "public"
)

// Roles within a family.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Actor is the requesting user plus their current family context.
// FamilyID is uuid.Nil and Role empty for users who belong to no family.
type Actor struct {
	UserID   uuid.UUID
	FamilyID uuid.UUID
	Role     string
}

// Entity is the access-relevant projection of a recipe, ingredient or post.
// Models adapt themselves into this struct; the resolver never touches GORM.
type Entity struct {
	Visibility string
	CreatedBy  uuid.UUID
	FamilyID   uuid.UUID // uuid.Nil for public-only entities
	// CanEdit is the explicit allow-list: the creator, and for imported
	// entities the original creator and the importer.
	CanEdit []uuid.UUID
	// ImportedBy is set when the entity was copied from another family or
	// from the public pool; uuid.Nil otherwise.
	ImportedBy uuid.UUID
}

func (a Actor) isAdmin() bool {
	return a.Role == RoleAdmin && a.FamilyID != uuid.Nil
}

func inList(list []uuid.UUID, id uuid.UUID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// CanView reports whether the actor may read the entity.
//
// Public entities are visible to everyone. Family entities are visible only to
// members of that same family. Private entities are visible to their creator
// and, for imported copies, to the importer.
func (a Actor) CanView(e Entity) bool {
	switch e.Visibility {
	case VisibilityPublic:
		return true
	case VisibilityFamily:
		return e.FamilyID != uuid.Nil && a.FamilyID == e.FamilyID
	case VisibilityPrivate:
		if a.UserID == uuid.Nil {
			return false
		}
		if a.UserID == e.CreatedBy || a.UserID == e.ImportedBy {
			return true
		}
		// Admins can edit anything scoped to their family; edit must imply
		// view, so the private tier opens to them as well.
		return a.isAdmin() && a.FamilyID == e.FamilyID
	default:
		return false
	}
}

// CanEdit reports whether the actor may modify the entity. The grant is the
// union of: direct creator, explicit allow-list membership (original creator
// and importer on imported copies), admin over entities scoped to the admin's
// own family, and admin over public entities. The last rule is deliberately
// broad; see the moderation queue for how admins use it.
func (a Actor) CanEdit(e Entity) bool {
	if a.UserID == uuid.Nil {
		return false
	}
	if a.UserID == e.CreatedBy {
		return true
	}
	if inList(e.CanEdit, a.UserID) {
		return true
	}
	if a.isAdmin() {
		if e.FamilyID != uuid.Nil && a.FamilyID == e.FamilyID {
			return true
		}
		if e.Visibility == VisibilityPublic {
			return true
		}
	}
	return false
}

// DenialCode returns the message-catalog code a handler should surface when an
// edit is refused, distinguishing the visibility tiers so the UI can explain
// who holds the rights ("seuls l'importateur ou les admins…").
func DenialCode(e Entity) string {
	switch e.Visibility {
	case VisibilityFamily:
		return "edit_denied_family"
	case VisibilityPublic:
		return "edit_denied_public"
	default:
		return "edit_denied_private"
	}
}
