package engine

import (
	"reflect"
	"testing"

	"leadpilot/internal/domain/entities"
)

func TestExtractIssueKeys_EmptySnapshot(t *testing.T) {
	keys := ExtractIssueKeys(entities.AuditSnapshot{})
	if len(keys) != 0 {
		t.Fatalf("expected no keys for empty snapshot, got %v", keys)
	}
}

func TestExtractIssueKeys_MissingSubReportContributesNoKeys(t *testing.T) {
	a := entities.AuditSnapshot{
		OverallScore: 80,
		Security:     &entities.SecurityReport{HasSSL: false},
	}
	keys := ExtractIssueKeys(a)
	if !reflect.DeepEqual(keys, []entities.IssueKey{entities.IssueNoSSL}) {
		t.Fatalf("expected only no_ssl, got %v", keys)
	}
}

func TestExtractIssueKeys_LoadTimeThresholdsAreExclusive(t *testing.T) {
	cases := []struct {
		name     string
		loadTime int
		want     []entities.IssueKey
	}{
		{name: "very slow wins over slow", loadTime: 6000, want: []entities.IssueKey{entities.IssueVerySlowLoading}},
		{name: "exactly at strict threshold", loadTime: 5000, want: []entities.IssueKey{entities.IssueSlowLoading}},
		{name: "slow only", loadTime: 4000, want: []entities.IssueKey{entities.IssueSlowLoading}},
		{name: "fast enough", loadTime: 3000, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := 90.0
			a := entities.AuditSnapshot{
				OverallScore: 80,
				Performance:  &entities.PerformanceReport{LoadTimeMs: tc.loadTime, SpeedScore: &score},
			}
			got := ExtractIssueKeys(a)
			if len(tc.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("expected no keys, got %v", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestExtractIssueKeys_SpeedScoreDefaultsWhenUnmeasured(t *testing.T) {
	t.Run("unmeasured score uses default and stays silent", func(t *testing.T) {
		a := entities.AuditSnapshot{
			OverallScore: 80,
			Performance:  &entities.PerformanceReport{LoadTimeMs: 1000},
		}
		for _, k := range ExtractIssueKeys(a) {
			if k == entities.IssueLowSpeedScore {
				t.Fatalf("unmeasured speed score must not flag low_speed_score")
			}
		}
	})

	t.Run("measured low score flags", func(t *testing.T) {
		score := 30.0
		a := entities.AuditSnapshot{
			OverallScore: 80,
			Performance:  &entities.PerformanceReport{LoadTimeMs: 1000, SpeedScore: &score},
		}
		keys := ExtractIssueKeys(a)
		if !reflect.DeepEqual(keys, []entities.IssueKey{entities.IssueLowSpeedScore}) {
			t.Fatalf("expected low_speed_score, got %v", keys)
		}
	})
}

func TestExtractIssueKeys_DimensionOrderIsStable(t *testing.T) {
	a := fullyBrokenAudit()
	want := []entities.IssueKey{
		entities.IssueMissingTitle,
		entities.IssueMissingMetaDescription,
		entities.IssueMissingH1,
		entities.IssueNoSitemap,
		entities.IssueNoRobotsTxt,
		entities.IssueNoStructuredData,
		entities.IssueVerySlowLoading,
		entities.IssueLowSpeedScore,
		entities.IssueMissingAltTags,
		entities.IssueHeavyImages,
		entities.IssueNoSSL,
		entities.IssueNoAnalytics,
		entities.IssueNoFacebookPixel,
		entities.IssueNoTagManager,
		entities.IssueNoCookieBanner,
		entities.IssueNoPrivacyPolicy,
		entities.IssueNotMobileFriendly,
		entities.IssueNoViewportMeta,
		entities.IssueThinContent,
		entities.IssueNoContactInfo,
		entities.IssueSiteUnreachable,
	}
	got := ExtractIssueKeys(a)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected stable emission order\nwant %v\ngot  %v", want, got)
	}
}

func TestExtractIssueKeys_DoesNotMutateInput(t *testing.T) {
	a := fullyBrokenAudit()
	before := *a.SEO
	_ = ExtractIssueKeys(a)
	if *a.SEO != before {
		t.Fatalf("extractor mutated its input")
	}
}

// fullyBrokenAudit fails every check in every dimension.
func fullyBrokenAudit() entities.AuditSnapshot {
	speed := 10.0
	return entities.AuditSnapshot{
		OverallScore: 15,
		SEO:          &entities.SEOReport{},
		Performance:  &entities.PerformanceReport{LoadTimeMs: 7000, SpeedScore: &speed},
		Images:       &entities.ImagesReport{Total: 10, WithoutAlt: 8, Oversized: 3},
		Security:     &entities.SecurityReport{HasSSL: false},
		Tracking:     &entities.TrackingReport{},
		GDPR:         &entities.GDPRReport{},
		Mobile:       &entities.MobileReport{},
		Content:      &entities.ContentReport{WordCount: 50},
		SiteStatus:   &entities.SiteStatusReport{IsOnline: false},
	}
}
