package families

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miambidi/miambidi-backend/internal/access"
	"github.com/miambidi/miambidi-backend/internal/apperr"
)

func member(role string) FamilyMember {
	return FamilyMember{ID: uuid.New(), UserID: uuid.New(), Role: role}
}

func TestCheckAddMember(t *testing.T) {
	admin := member(access.RoleAdmin)
	plain := member(access.RoleMember)
	r := Roster{FamilyID: uuid.New(), Members: []FamilyMember{admin, plain}}

	assert.NoError(t, r.CheckAddMember(admin.UserID))

	err := r.CheckAddMember(plain.UserID)
	require.Error(t, err)
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))
	assert.Equal(t, "admin_required", apperr.CodeOf(err))

	assert.Error(t, r.CheckAddMember(uuid.New()))
}

func TestCheckRemoveMember(t *testing.T) {
	admin := member(access.RoleAdmin)
	plain := member(access.RoleMember)
	other := member(access.RoleMember)
	r := Roster{FamilyID: uuid.New(), Members: []FamilyMember{admin, plain, other}}

	// Admin removes anyone.
	assert.NoError(t, r.CheckRemoveMember(admin.UserID, plain.ID))

	// Member leaves on their own.
	assert.NoError(t, r.CheckRemoveMember(plain.UserID, plain.ID))

	// Member cannot remove someone else.
	err := r.CheckRemoveMember(plain.UserID, other.ID)
	require.Error(t, err)
	assert.Equal(t, "admin_required", apperr.CodeOf(err))
}

func TestLastAdminCannotBeRemoved(t *testing.T) {
	admin := member(access.RoleAdmin)
	plain := member(access.RoleMember)
	r := Roster{FamilyID: uuid.New(), Members: []FamilyMember{admin, plain}}

	err := r.CheckRemoveMember(admin.UserID, admin.ID)
	require.Error(t, err)
	assert.Equal(t, "last_admin", apperr.CodeOf(err))

	// With a second admin, removal is allowed.
	second := member(access.RoleAdmin)
	r.Members = append(r.Members, second)
	assert.NoError(t, r.CheckRemoveMember(admin.UserID, admin.ID))
}

func TestCheckChangeRole(t *testing.T) {
	admin := member(access.RoleAdmin)
	plain := member(access.RoleMember)
	r := Roster{FamilyID: uuid.New(), Members: []FamilyMember{admin, plain}}

	// Promote a member.
	assert.NoError(t, r.CheckChangeRole(admin.UserID, plain.ID, access.RoleAdmin))

	// Sole admin cannot demote themselves.
	err := r.CheckChangeRole(admin.UserID, admin.ID, access.RoleMember)
	require.Error(t, err)
	assert.Equal(t, "last_admin", apperr.CodeOf(err))

	// Members cannot change roles at all.
	err = r.CheckChangeRole(plain.UserID, plain.ID, access.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, "admin_required", apperr.CodeOf(err))

	// Unknown role is invalid.
	err = r.CheckChangeRole(admin.UserID, plain.ID, "owner")
	require.Error(t, err)
	assert.Equal(t, apperr.Invalid, apperr.KindOf(err))
}

func TestCheckUpdateMember(t *testing.T) {
	admin := member(access.RoleAdmin)
	plain := member(access.RoleMember)
	other := member(access.RoleMember)
	r := Roster{FamilyID: uuid.New(), Members: []FamilyMember{admin, plain, other}}

	assert.NoError(t, r.CheckUpdateMember(plain.UserID, plain.ID))
	assert.NoError(t, r.CheckUpdateMember(admin.UserID, plain.ID))

	err := r.CheckUpdateMember(plain.UserID, other.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.PermissionDenied, apperr.KindOf(err))
}
