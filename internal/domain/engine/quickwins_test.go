package engine

import (
	"strings"
	"testing"

	"leadpilot/internal/domain/entities"
)

func TestSynthesizeQuickWins(t *testing.T) {
	t.Run("priority is impact over effort hours", func(t *testing.T) {
		wins := SynthesizeQuickWins([]entities.IssueKey{entities.IssueNoSSL}, nil)
		if len(wins) != 1 {
			t.Fatalf("expected 1 quick win, got %d", len(wins))
		}
		w := wins[0]
		if w.Impact != 25 || w.EffortHours != 2 {
			t.Fatalf("unexpected template values: %+v", w)
		}
		if w.Priority != 12.5 {
			t.Fatalf("expected priority 12.5, got %v", w.Priority)
		}
	})

	t.Run("ids follow emission order", func(t *testing.T) {
		wins := SynthesizeQuickWins([]entities.IssueKey{
			entities.IssueNoSSL,
			entities.IssueThinContent,
		}, nil)
		if wins[0].ID != 1 || wins[1].ID != 2 {
			t.Fatalf("expected sequential ids, got %d and %d", wins[0].ID, wins[1].ID)
		}
	})

	t.Run("unknown key is dropped not fatal", func(t *testing.T) {
		wins := SynthesizeQuickWins([]entities.IssueKey{
			entities.IssueNoSSL,
			"brand_new_issue",
			entities.IssueThinContent,
		}, nil)
		if len(wins) != 2 {
			t.Fatalf("expected 2 quick wins after dropping unknown key, got %d", len(wins))
		}
	})

	t.Run("action items are independent copies", func(t *testing.T) {
		first := SynthesizeQuickWins([]entities.IssueKey{entities.IssueNoSSL}, nil)
		first[0].ActionItems[0] = "tampered"
		second := SynthesizeQuickWins([]entities.IssueKey{entities.IssueNoSSL}, nil)
		if second[0].ActionItems[0] == "tampered" {
			t.Fatalf("quick wins must not share template state")
		}
	})
}

func TestCompetitorGapAnnotation(t *testing.T) {
	resolved := entities.CompetitorAudit{
		Name: "Rossi SRL",
		Analysis: entities.AuditSnapshot{
			Tracking: &entities.TrackingReport{HasGoogleAnalytics: true},
			Mobile:   &entities.MobileReport{IsMobileFriendly: true},
		},
	}
	alsoResolved := entities.CompetitorAudit{
		Name: "Bianchi SNC",
		Analysis: entities.AuditSnapshot{
			Tracking: &entities.TrackingReport{HasGoogleAnalytics: true},
		},
	}
	unresolved := entities.CompetitorAudit{Name: "Verdi SAS"}

	t.Run("first matching competitor wins", func(t *testing.T) {
		wins := SynthesizeQuickWins(
			[]entities.IssueKey{entities.IssueNoAnalytics},
			[]entities.CompetitorAudit{unresolved, resolved, alsoResolved},
		)
		ref := wins[0].CompetitorReference
		if !strings.Contains(ref, "Rossi SRL") {
			t.Fatalf("expected reference to first resolving competitor, got %q", ref)
		}
	})

	t.Run("no competitor resolves the issue", func(t *testing.T) {
		wins := SynthesizeQuickWins(
			[]entities.IssueKey{entities.IssueNoAnalytics},
			[]entities.CompetitorAudit{unresolved},
		)
		if wins[0].CompetitorReference != "" {
			t.Fatalf("expected no reference, got %q", wins[0].CompetitorReference)
		}
	})

	t.Run("only comparison-worthy issues are annotated", func(t *testing.T) {
		// no_ssl is deliberately outside the allow-list even when a
		// competitor has SSL.
		sslCompetitor := entities.CompetitorAudit{
			Name:     "Rossi SRL",
			Analysis: entities.AuditSnapshot{Security: &entities.SecurityReport{HasSSL: true}},
		}
		wins := SynthesizeQuickWins(
			[]entities.IssueKey{entities.IssueNoSSL},
			[]entities.CompetitorAudit{sslCompetitor},
		)
		if wins[0].CompetitorReference != "" {
			t.Fatalf("no_ssl must not be annotated, got %q", wins[0].CompetitorReference)
		}
	})
}

func TestBuildAnalysis(t *testing.T) {
	wins := SynthesizeQuickWins([]entities.IssueKey{
		entities.IssueThinContent,       // priority 0.75
		entities.IssueNoSSL,             // priority 12.5
		entities.IssueNoAnalytics,       // priority 5
		entities.IssueMissingTitle,      // priority 18
		entities.IssueNotMobileFriendly, // priority ~1.04
		entities.IssueNoCookieBanner,    // priority 3.5
	}, nil)

	analysis := BuildAnalysis("lead-1", 40, wins)

	t.Run("priority descending invariant", func(t *testing.T) {
		for i := 0; i < len(analysis.QuickWins)-1; i++ {
			if analysis.QuickWins[i].Priority < analysis.QuickWins[i+1].Priority {
				t.Fatalf("quick wins not sorted by priority at %d", i)
			}
		}
		if analysis.QuickWins[0].Key != entities.IssueMissingTitle {
			t.Fatalf("expected missing_title first, got %s", analysis.QuickWins[0].Key)
		}
	})

	t.Run("top quick wins are the first five", func(t *testing.T) {
		if len(analysis.TopQuickWins) != 5 {
			t.Fatalf("expected 5 top quick wins, got %d", len(analysis.TopQuickWins))
		}
		for i := range analysis.TopQuickWins {
			if analysis.TopQuickWins[i].Key != analysis.QuickWins[i].Key {
				t.Fatalf("top quick wins must mirror the sorted head")
			}
		}
	})

	t.Run("improvement capped at distance to perfect score", func(t *testing.T) {
		// Total impact 25+25+18+14+12+10 = 104 > 60.
		if analysis.TotalPotentialImprovement != 60 {
			t.Fatalf("expected improvement capped at 60, got %v", analysis.TotalPotentialImprovement)
		}
	})

	t.Run("costs are summed", func(t *testing.T) {
		var wantMin, wantMax float64
		for _, w := range wins {
			wantMin += w.EstimatedCost.Min
			wantMax += w.EstimatedCost.Max
		}
		if analysis.EstimatedTotalCost.Min != wantMin || analysis.EstimatedTotalCost.Max != wantMax {
			t.Fatalf("unexpected cost range: %+v", analysis.EstimatedTotalCost)
		}
	})

	t.Run("categories sorted by total impact", func(t *testing.T) {
		for i := 0; i < len(analysis.Categories)-1; i++ {
			if analysis.Categories[i].TotalImpact < analysis.Categories[i+1].TotalImpact {
				t.Fatalf("categories not sorted by impact at %d", i)
			}
		}
	})

	t.Run("fewer than five wins", func(t *testing.T) {
		small := BuildAnalysis("lead-2", 40, wins[:2])
		if len(small.TopQuickWins) != 2 {
			t.Fatalf("expected 2 top quick wins, got %d", len(small.TopQuickWins))
		}
	})

	t.Run("no wins at all", func(t *testing.T) {
		empty := BuildAnalysis("lead-3", 40, nil)
		if empty.TotalPotentialImprovement != 0 {
			t.Fatalf("expected zero improvement, got %v", empty.TotalPotentialImprovement)
		}
		if len(empty.QuickWins) != 0 || len(empty.TopQuickWins) != 0 {
			t.Fatalf("expected empty result, got %+v", empty)
		}
	})
}

func TestEffortLabel(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{3, "3h"},
		{4, "4h"},
		{8, "1 giorno"},
		{16, "2 giorni"},
		{40, "1 settimana"},
		{80, "2 settimane"},
		{90, "3 settimane"},
		{200, "5 settimane"},
	}
	for _, tc := range cases {
		if got := effortLabel(tc.hours); got != tc.want {
			t.Fatalf("effortLabel(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}
