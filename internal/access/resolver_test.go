package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	creator := uuid.New()
	familyA := uuid.New()
	familyB := uuid.New()

	tests := []struct {
		name   string
		actor  Actor
		entity Entity
		want   bool
	}{
		{
			name:   "public visible to anyone",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyB, Role: RoleMember},
			entity: Entity{Visibility: VisibilityPublic, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "public visible to family-less user",
			actor:  Actor{UserID: uuid.New()},
			entity: Entity{Visibility: VisibilityPublic, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "family visible to same family member",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyA, Role: RoleMember},
			entity: Entity{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "family hidden from other family",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyB, Role: RoleAdmin},
			entity: Entity{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyA},
			want:   false,
		},
		{
			name:   "private visible to creator",
			actor:  Actor{UserID: creator, FamilyID: familyA, Role: RoleMember},
			entity: Entity{Visibility: VisibilityPrivate, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "private hidden from other member of same family",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyA, Role: RoleMember},
			entity: Entity{Visibility: VisibilityPrivate, CreatedBy: creator, FamilyID: familyA},
			want:   false,
		},
		{
			name:   "private visible to same-family admin",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyA, Role: RoleAdmin},
			entity: Entity{Visibility: VisibilityPrivate, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "unknown visibility hidden",
			actor:  Actor{UserID: creator, FamilyID: familyA, Role: RoleAdmin},
			entity: Entity{Visibility: "draft", CreatedBy: creator, FamilyID: familyA},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanView(tt.entity))
		})
	}
}

func TestCanEdit(t *testing.T) {
	creator := uuid.New()
	familyA := uuid.New()
	familyB := uuid.New()

	tests := []struct {
		name   string
		actor  Actor
		entity Entity
		want   bool
	}{
		{
			name:   "creator edits own private entity",
			actor:  Actor{UserID: creator, FamilyID: familyA, Role: RoleMember},
			entity: Entity{Visibility: VisibilityPrivate, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "plain member cannot edit others' family entity",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyA, Role: RoleMember},
			entity: Entity{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyA},
			want:   false,
		},
		{
			name:   "admin edits anything in own family",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyA, Role: RoleAdmin},
			entity: Entity{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "admin of other family cannot edit family entity",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyB, Role: RoleAdmin},
			entity: Entity{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyA},
			want:   false,
		},
		{
			name:   "any admin edits public entity",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyB, Role: RoleAdmin},
			entity: Entity{Visibility: VisibilityPublic, CreatedBy: creator, FamilyID: familyA},
			want:   true,
		},
		{
			name:   "member cannot edit public entity",
			actor:  Actor{UserID: uuid.New(), FamilyID: familyB, Role: RoleMember},
			entity: Entity{Visibility: VisibilityPublic, CreatedBy: creator, FamilyID: familyA},
			want:   false,
		},
		{
			name:  "allow-list member edits",
			actor: Actor{UserID: creator, FamilyID: familyB, Role: RoleMember},
			entity: Entity{
				Visibility: VisibilityFamily,
				CreatedBy:  uuid.New(),
				FamilyID:   familyA,
				CanEdit:    []uuid.UUID{creator},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.CanEdit(tt.entity))
		})
	}
}

// An imported copy keeps two editors: the original creator and the importer.
// Nobody else in the importing family gets edit rights from the import.
func TestImportedCopyEditors(t *testing.T) {
	originalCreator := uuid.New()
	importer := uuid.New()
	importingFamily := uuid.New()

	copyEntity := Entity{
		Visibility: VisibilityFamily,
		CreatedBy:  originalCreator,
		FamilyID:   importingFamily,
		CanEdit:    []uuid.UUID{originalCreator, importer},
		ImportedBy: importer,
	}

	creatorActor := Actor{UserID: originalCreator} // no family context
	importerActor := Actor{UserID: importer, FamilyID: importingFamily, Role: RoleMember}
	bystander := Actor{UserID: uuid.New(), FamilyID: importingFamily, Role: RoleMember}

	assert.True(t, creatorActor.CanEdit(copyEntity))
	assert.True(t, importerActor.CanEdit(copyEntity))
	assert.False(t, bystander.CanEdit(copyEntity))
}

// Whoever may edit may also view, across every tier and role combination.
func TestEditImpliesView(t *testing.T) {
	creator := uuid.New()
	importer := uuid.New()
	familyA := uuid.New()
	familyB := uuid.New()

	actors := []Actor{
		{UserID: creator, FamilyID: familyA, Role: RoleMember},
		{UserID: importer, FamilyID: familyB, Role: RoleMember},
		{UserID: uuid.New(), FamilyID: familyA, Role: RoleAdmin},
		{UserID: uuid.New(), FamilyID: familyB, Role: RoleAdmin},
		{UserID: uuid.New(), FamilyID: familyA, Role: RoleMember},
		{UserID: uuid.New()},
	}
	entities := []Entity{
		{Visibility: VisibilityPrivate, CreatedBy: creator, FamilyID: familyA},
		{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyA},
		{Visibility: VisibilityPublic, CreatedBy: creator, FamilyID: familyA},
		{Visibility: VisibilityFamily, CreatedBy: creator, FamilyID: familyB,
			CanEdit: []uuid.UUID{creator, importer}, ImportedBy: importer},
	}

	for _, a := range actors {
		for _, e := range entities {
			if a.CanEdit(e) {
				assert.True(t, a.CanView(e),
					"actor %s can edit %s entity but not view it", a.UserID, e.Visibility)
			}
		}
	}
}

func TestDenialCode(t *testing.T) {
	assert.Equal(t, "edit_denied_private", DenialCode(Entity{Visibility: VisibilityPrivate}))
	assert.Equal(t, "edit_denied_family", DenialCode(Entity{Visibility: VisibilityFamily}))
	assert.Equal(t, "edit_denied_public", DenialCode(Entity{Visibility: VisibilityPublic}))
}
