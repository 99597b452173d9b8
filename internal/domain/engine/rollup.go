package engine

import (
	"fmt"
	"math"
	"sort"

	"leadpilot/internal/domain/entities"
)

const topQuickWinsCount = 5

// BuildAnalysis sorts, aggregates and buckets quick wins into the final
// analysis for a lead. Sorting is stable: ties on priority keep synthesis
// order, so identical input always produces identical output.
func BuildAnalysis(leadID string, leadScore float64, quickWins []entities.QuickWin) entities.QuickWinsAnalysis {
	sorted := append([]entities.QuickWin(nil), quickWins...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	topN := topQuickWinsCount
	if len(sorted) < topN {
		topN = len(sorted)
	}
	top := append([]entities.QuickWin(nil), sorted[:topN]...)

	var totalImpact, totalHours float64
	var cost entities.CostRange
	for _, w := range sorted {
		totalImpact += w.Impact
		totalHours += w.EffortHours
		cost.Min += w.EstimatedCost.Min
		cost.Max += w.EstimatedCost.Max
	}

	// The claimed improvement is capped so a post-fix score never exceeds 100.
	improvement := math.Min(100-leadScore, totalImpact)

	return entities.QuickWinsAnalysis{
		LeadID:                    leadID,
		LeadScore:                 leadScore,
		QuickWins:                 sorted,
		TopQuickWins:              top,
		TotalPotentialImprovement: improvement,
		EstimatedTotalCost:        cost,
		EstimatedTotalEffort:      effortLabel(totalHours),
		Categories:                categorySummaries(sorted),
	}
}

func categorySummaries(wins []entities.QuickWin) []entities.CategorySummary {
	type acc struct {
		count  int
		impact float64
		hours  float64
	}
	order := make([]entities.Category, 0, 8)
	byCategory := make(map[entities.Category]*acc)
	for _, w := range wins {
		a, ok := byCategory[w.Category]
		if !ok {
			a = &acc{}
			byCategory[w.Category] = a
			order = append(order, w.Category)
		}
		a.count++
		a.impact += w.Impact
		a.hours += w.EffortHours
	}

	summaries := make([]entities.CategorySummary, 0, len(order))
	for _, c := range order {
		a := byCategory[c]
		summaries = append(summaries, entities.CategorySummary{
			Category:    c,
			Count:       a.count,
			TotalImpact: a.impact,
			AvgEffort:   effortLabel(a.hours / float64(a.count)),
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalImpact > summaries[j].TotalImpact
	})
	return summaries
}

// effortLabel turns a number of work hours into the customer-facing label
// used across the analysis.
func effortLabel(hours float64) string {
	switch {
	case hours <= 4:
		return fmt.Sprintf("%.0fh", hours)
	case hours <= 8:
		return "1 giorno"
	case hours <= 16:
		return "2 giorni"
	case hours <= 40:
		return "1 settimana"
	case hours <= 80:
		return "2 settimane"
	default:
		return fmt.Sprintf("%d settimane", int(math.Ceil(hours/40)))
	}
}
