package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreFrench(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, "Recette introuvable.", c.Message("recipe_not_found"))
	assert.Equal(t, "Impossible : une famille doit conserver au moins un admin.", c.Message("last_admin"))
	assert.True(t, c.Has("edit_denied_family"))
	assert.True(t, c.Has("edit_denied_private"))
	assert.True(t, c.Has("edit_denied_public"))
}

func TestUnknownCodeFallsBack(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, c.Message("internal"), c.Message("no_such_code"))
}

func TestLoadFromFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")
	content := `{"recipe_not_found": "Cette recette n'existe plus.", "custom_code": "Message personnalisé."}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Cette recette n'existe plus.", c.Message("recipe_not_found"))
	assert.Equal(t, "Message personnalisé.", c.Message("custom_code"))
	// Untouched defaults survive the overlay.
	assert.Equal(t, "Famille introuvable.", c.Message("family_not_found"))
}

func TestLoadFromFileEmptyPath(t *testing.T) {
	c, err := LoadFromFile("")
	require.NoError(t, err)
	assert.Equal(t, NewCatalog().Len(), c.Len())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	c := NewCatalog()
	c.Set("recipe_not_found", "Recette disparue.")
	assert.Equal(t, "Recette disparue.", c.Message("recipe_not_found"))
}
