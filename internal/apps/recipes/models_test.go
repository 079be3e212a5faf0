package recipes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestLines(t *testing.T) {
	r := Recipe{Ingredients: datatypes.JSON(`[{"name":"Tomate","quantity":3,"unit":"pièce"},{"name":"Sel","quantity":1,"unit":"pincée"}]`)}

	lines := r.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, "Tomate", lines[0].Name)
	assert.Equal(t, 3.0, lines[0].Quantity)
}

func TestLinesCorruptJSON(t *testing.T) {
	r := Recipe{Ingredients: datatypes.JSON(`{"not":"an array"`)}
	assert.Empty(t, r.Lines())

	empty := Recipe{}
	assert.Empty(t, empty.Lines())
}

func TestEditorIDs(t *testing.T) {
	creator := uuid.New()
	importer := uuid.New()

	own := Recipe{CreatedBy: creator}
	assert.Equal(t, []uuid.UUID{creator}, own.EditorIDs())

	imported := Recipe{CreatedBy: creator, ImportedBy: importer}
	assert.ElementsMatch(t, []uuid.UUID{creator, importer}, imported.EditorIDs())

	// Importing your own public recipe back would not duplicate the entry.
	selfImport := Recipe{CreatedBy: creator, ImportedBy: creator}
	assert.Equal(t, []uuid.UUID{creator}, selfImport.EditorIDs())
}

func TestAccessEntityCarriesAllowList(t *testing.T) {
	creator := uuid.New()
	importer := uuid.New()
	familyID := uuid.New()

	r := Recipe{
		FamilyID:   familyID,
		CreatedBy:  creator,
		Visibility: "family",
		ImportedBy: importer,
	}
	e := r.AccessEntity()

	assert.Equal(t, "family", e.Visibility)
	assert.Equal(t, familyID, e.FamilyID)
	assert.Equal(t, importer, e.ImportedBy)
	assert.ElementsMatch(t, []uuid.UUID{creator, importer}, e.CanEdit)
}
