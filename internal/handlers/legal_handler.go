package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type LegalHandler struct{}

func NewLegalHandler() *LegalHandler {
	return &LegalHandler{}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="fr"><head><title>Politique de confidentialité - MiamBidi</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Politique de confidentialité</h1>
<p>Dernière mise à jour : février 2026</p>
<h2>Données collectées</h2>
<p>Nous collectons votre adresse e-mail, votre nom d'affichage et les données liées à votre usage de MiamBidi (recettes, plannings de repas, listes de courses). Si vous vous connectez avec Google, nous recevons votre identifiant Google.</p>
<h2>Utilisation des données</h2>
<p>Vos données servent uniquement à faire fonctionner MiamBidi : authentifier votre compte, partager vos recettes au sein de votre famille et générer vos listes de courses.</p>
<h2>Stockage</h2>
<p>Vos données sont stockées sur des serveurs chiffrés. Nous ne vendons aucune donnée personnelle à des tiers.</p>
<h2>Suppression du compte</h2>
<p>Vous pouvez supprimer votre compte et toutes les données associées à tout moment depuis les paramètres.</p>
<h2>Contact</h2>
<p>Pour toute question, écrivez-nous à support@miambidi.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="fr"><head><title>Conditions d'utilisation - MiamBidi</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Conditions d'utilisation</h1>
<p>Dernière mise à jour : février 2026</p>
<h2>Acceptation</h2>
<p>En utilisant MiamBidi, vous acceptez les présentes conditions.</p>
<h2>Conduite</h2>
<p>Vous vous engagez à ne pas publier de contenu offensant, illégal ou nuisible. Nous nous réservons le droit de modérer et de retirer tout contenu contraire aux règles de la communauté.</p>
<h2>Contenu partagé</h2>
<p>Les recettes rendues publiques peuvent être consultées et importées par d'autres familles. Vous conservez la paternité de vos recettes, y compris après import.</p>
<h2>Résiliation</h2>
<p>Nous pouvons suspendre ou supprimer les comptes qui ne respectent pas ces conditions.</p>
<h2>Contact</h2>
<p>Pour toute question, écrivez-nous à support@miambidi.app</p>
</body></html>`)
}
