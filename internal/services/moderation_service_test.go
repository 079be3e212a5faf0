package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterContent(t *testing.T) {
	ms := NewModerationService(nil)

	tests := []struct {
		name    string
		text    string
		allowed bool
		reason  string
	}{
		{"empty", "", true, ""},
		{"plain comment", "Très bonne recette, merci pour le partage !", true, ""},
		{"french profanity", "Quel connard celui-là", false, "inappropriate_language"},
		{"url", "Allez voir https://promo.exemple.com", false, "url_not_allowed"},
		{"email", "Contactez-moi sur jean@exemple.fr", false, "contact_info_not_allowed"},
		{"french phone", "Appelle le 06 12 34 56 78", false, "contact_info_not_allowed"},
		{"repeated chars", "Trop booooooon", false, "spam_detected"},
		{"quantities are fine", "J'ai mis 250 g d'arachides et 3 tomates", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ms.FilterContent(tt.text)
			assert.Equal(t, tt.allowed, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestGetRejectionMessage(t *testing.T) {
	ms := NewModerationService(nil)

	assert.Equal(t, "Les liens ne sont pas autorisés.", ms.GetRejectionMessage("url_not_allowed"))
	assert.NotEmpty(t, ms.GetRejectionMessage("unknown_reason"))
}

func TestContainsProfanity(t *testing.T) {
	ms := NewModerationService(nil)

	assert.True(t, ms.ContainsProfanity("espèce de salaud"))
	assert.False(t, ms.ContainsProfanity("une salade composée"))
}
