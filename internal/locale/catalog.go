// Package locale maps abstract error and notice codes to user-facing French
// text. Core packages never produce French strings; handlers look codes up
// here at the HTTP boundary. A deployment can override or extend the defaults
// with a messages.json file.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Defaults shipped with the server. Keys are message-catalog codes produced by
// services and by apperr errors.
var defaults = map[string]string{
	"permission_denied":    "Vous n'avez pas la permission d'effectuer cette action.",
	"not_found":            "Élément introuvable.",
	"invalid":              "Requête invalide.",
	"conflict":             "Cette opération entre en conflit avec l'état actuel.",
	"internal":             "Une erreur interne s'est produite. Veuillez réessayer.",
	"unauthorized":         "Connexion requise.",
	"edit_denied_private":  "Seul le créateur de cette recette privée peut la modifier.",
	"edit_denied_family":   "Seuls l'importateur ou les admins de la famille peuvent modifier cette recette familiale.",
	"edit_denied_public":   "Seuls le créateur ou un admin peuvent modifier ce contenu public.",
	"view_denied":          "Ce contenu n'est pas visible pour votre compte.",
	"admin_required":       "Cette action est réservée aux admins de la famille.",
	"last_admin":           "Impossible : une famille doit conserver au moins un admin.",
	"member_exists":        "Ce membre fait déjà partie de la famille.",
	"member_not_found":     "Membre introuvable dans cette famille.",
	"family_exists":        "Vous appartenez déjà à une famille.",
	"family_not_found":     "Famille introuvable.",
	"recipe_not_found":     "Recette introuvable.",
	"ingredient_not_found": "Ingrédient introuvable.",
	"post_not_found":       "Article introuvable.",
	"email_taken":          "Cette adresse e-mail est déjà utilisée.",
	"bad_credentials":      "E-mail ou mot de passe incorrect.",
	"token_invalid":        "Session expirée, veuillez vous reconnecter.",
	"import_own_recipe":    "Cette recette appartient déjà à votre collection.",
	"list_not_found":       "Liste de courses introuvable.",
	"item_not_found":       "Article introuvable dans cette liste.",
	"comment_not_found":    "Commentaire introuvable.",
	"report_not_found":     "Signalement introuvable.",
	"content_flagged":      "Ce contenu contient des termes interdits.",
}

// Catalog resolves message codes to localized text.
type Catalog struct {
	mu       sync.RWMutex
	messages map[string]string
}

func NewCatalog() *Catalog {
	msgs := make(map[string]string, len(defaults))
	for k, v := range defaults {
		msgs[k] = v
	}
	return &Catalog{messages: msgs}
}

// LoadFromFile builds a catalog from the defaults overlaid with the JSON
// object at path. A missing file is an error; an empty path yields defaults.
func LoadFromFile(path string) (*Catalog, error) {
	c := NewCatalog()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalog: %w", err)
	}

	var overrides map[string]string
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}

	c.mu.Lock()
	for k, v := range overrides {
		c.messages[k] = v
	}
	c.mu.Unlock()
	return c, nil
}

// Message returns the text for code, falling back to the generic internal
// message so the UI never renders a raw code.
func (c *Catalog) Message(code string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if msg, ok := c.messages[code]; ok {
		return msg
	}
	return c.messages["internal"]
}

// Has reports whether the catalog carries an entry for code.
func (c *Catalog) Has(code string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[code]
	return ok
}

// Set overrides a single message at runtime.
func (c *Catalog) Set(code, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages[code] = text
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}
