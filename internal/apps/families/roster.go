package families

import (
	"github.com/google/uuid"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
)

// Roster holds a family's member list as a plain value so membership rules
// can be checked without touching the database. The service materializes a
// Roster from member rows before every mutation.
type Roster struct {
	FamilyID uuid.UUID
	Members  []FamilyMember
}

func (r Roster) find(memberID uuid.UUID) *FamilyMember {
	for i := range r.Members {
		if r.Members[i].ID == memberID {
			return &r.Members[i]
		}
	}
	return nil
}

func (r Roster) byUser(userID uuid.UUID) *FamilyMember {
	for i := range r.Members {
		if r.Members[i].UserID == userID {
			return &r.Members[i]
		}
	}
	return nil
}

func (r Roster) adminCount() int {
	n := 0
	for i := range r.Members {
		if r.Members[i].Role == access.RoleAdmin {
			n++
		}
	}
	return n
}

// CheckAddMember verifies the caller may add a member: admins only.
func (r Roster) CheckAddMember(callerUserID uuid.UUID) error {
	caller := r.byUser(callerUserID)
	if caller == nil || caller.Role != access.RoleAdmin {
		return apperr.New(apperr.PermissionDenied, "admin_required")
	}
	return nil
}

// CheckRemoveMember verifies the removal keeps the family in a valid state.
// Admins may remove anyone, members only themselves (leaving the family), and
// the last admin can never be removed.
func (r Roster) CheckRemoveMember(callerUserID, memberID uuid.UUID) error {
	caller := r.byUser(callerUserID)
	if caller == nil {
		return apperr.New(apperr.PermissionDenied, "member_not_found")
	}

	target := r.find(memberID)
	if target == nil {
		return apperr.New(apperr.NotFound, "member_not_found")
	}

	if caller.Role != access.RoleAdmin && caller.ID != target.ID {
		return apperr.New(apperr.PermissionDenied, "admin_required")
	}

	if target.Role == access.RoleAdmin && r.adminCount() <= 1 {
		return apperr.New(apperr.PermissionDenied, "last_admin")
	}
	return nil
}

// CheckChangeRole verifies a role change: admin-only, and demoting the sole
// admin is refused so the family never ends up adminless.
func (r Roster) CheckChangeRole(callerUserID, memberID uuid.UUID, newRole string) error {
	if newRole != access.RoleAdmin && newRole != access.RoleMember {
		return apperr.New(apperr.Invalid, "invalid")
	}

	caller := r.byUser(callerUserID)
	if caller == nil || caller.Role != access.RoleAdmin {
		return apperr.New(apperr.PermissionDenied, "admin_required")
	}

	target := r.find(memberID)
	if target == nil {
		return apperr.New(apperr.NotFound, "member_not_found")
	}

	if target.Role == access.RoleAdmin && newRole == access.RoleMember && r.adminCount() <= 1 {
		return apperr.New(apperr.PermissionDenied, "last_admin")
	}
	return nil
}

// CheckUpdateMember verifies a profile update: members may edit their own
// profile, admins may edit anyone's.
func (r Roster) CheckUpdateMember(callerUserID, memberID uuid.UUID) error {
	caller := r.byUser(callerUserID)
	if caller == nil {
		return apperr.New(apperr.PermissionDenied, "member_not_found")
	}

	target := r.find(memberID)
	if target == nil {
		return apperr.New(apperr.NotFound, "member_not_found")
	}

	if caller.ID == target.ID || caller.Role == access.RoleAdmin {
		return nil
	}
	return apperr.New(apperr.PermissionDenied, "permission_denied")
}
