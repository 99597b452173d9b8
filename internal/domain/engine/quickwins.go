package engine

import (
	"fmt"

	"leadpilot/internal/domain/entities"
)

// SynthesizeQuickWins expands issue keys into costed, prioritized quick
// wins. Keys without a template are dropped silently (catalog drift must
// degrade the result, not fail it). Each quick win is an independent copy of
// its template; priority is impact/effortHours computed here, not cached in
// the catalog.
//
// When competitors are supplied, comparison-worthy issues get a reference to
// the first competitor (in the given order) that has already resolved them.
func SynthesizeQuickWins(keys []entities.IssueKey, competitors []entities.CompetitorAudit) []entities.QuickWin {
	wins := make([]entities.QuickWin, 0, len(keys))
	for _, key := range keys {
		tpl, ok := quickWinTemplates[key]
		if !ok {
			continue
		}

		win := entities.QuickWin{
			ID:                len(wins) + 1,
			Key:               key,
			Gap:               tpl.gap,
			Category:          tpl.category,
			Effort:            tpl.effort,
			EffortHours:       tpl.effortHours,
			Impact:            tpl.impact,
			ImpactDescription: tpl.impactDescription,
			RequiredRole:      tpl.requiredRole,
			EstimatedCost:     entities.CostRange{Min: tpl.costMin, Max: tpl.costMax},
			Priority:          tpl.impact / tpl.effortHours,
			ActionItems:       append([]string(nil), tpl.actionItems...),
		}
		if ref, ok := competitorReference(key, competitors); ok {
			win.CompetitorReference = ref
		}
		wins = append(wins, win)
	}
	return wins
}

// competitorChecks is the allow-list of issues worth a competitive
// comparison: only gaps with enough qualitative weight to be a selling
// argument are annotated. The check answers "has this competitor resolved
// the issue?" against the competitor's own audit.
var competitorChecks = map[entities.IssueKey]func(a *entities.AuditSnapshot) bool{
	entities.IssueNoStructuredData: func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && a.SEO.HasStructuredData
	},
	entities.IssueNoAnalytics: func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && a.Tracking.HasGoogleAnalytics
	},
	entities.IssueNoFacebookPixel: func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && a.Tracking.HasFacebookPixel
	},
	entities.IssueNotMobileFriendly: func(a *entities.AuditSnapshot) bool {
		return a.Mobile != nil && a.Mobile.IsMobileFriendly
	},
	entities.IssueNoCookieBanner: func(a *entities.AuditSnapshot) bool {
		return a.GDPR != nil && a.GDPR.HasCookieBanner
	},
}

func competitorReference(key entities.IssueKey, competitors []entities.CompetitorAudit) (string, bool) {
	check, ok := competitorChecks[key]
	if !ok {
		return "", false
	}
	for i := range competitors {
		if check(&competitors[i].Analysis) {
			return fmt.Sprintf("%s ha già risolto questo problema", competitors[i].Name), true
		}
	}
	return "", false
}
