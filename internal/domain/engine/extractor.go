package engine

import "leadpilot/internal/domain/entities"

// Detection thresholds. These are fixed product constants, not configuration:
// changing one changes what every historical audit would have reported.
const (
	slowLoadThresholdMs     = 3000
	verySlowLoadThresholdMs = 5000
	lowSpeedScoreThreshold  = 50
	defaultSpeedScore       = 50
	thinContentWordCount    = 200
)

type issueRule struct {
	key   entities.IssueKey
	match func(a *entities.AuditSnapshot) bool
}

// issueRules is evaluated in order, one dimension at a time (seo,
// performance, images, security, tracking, gdpr, mobile, content, site
// status). A missing sub-report contributes no keys; a false boolean inside
// a present sub-report is a detected issue.
var issueRules = []issueRule{
	{entities.IssueMissingTitle, func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasTitle
	}},
	{entities.IssueMissingMetaDescription, func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasMetaDescription
	}},
	{entities.IssueMissingH1, func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasH1
	}},
	{entities.IssueNoSitemap, func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasSitemap
	}},
	{entities.IssueNoRobotsTxt, func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasRobotsTxt
	}},
	{entities.IssueNoStructuredData, func(a *entities.AuditSnapshot) bool {
		return a.SEO != nil && !a.SEO.HasStructuredData
	}},
	// The two load-time rules are mutually exclusive: the stricter threshold
	// wins and a single audit never reports both.
	{entities.IssueVerySlowLoading, func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil && a.Performance.LoadTimeMs > verySlowLoadThresholdMs
	}},
	{entities.IssueSlowLoading, func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil &&
			a.Performance.LoadTimeMs > slowLoadThresholdMs &&
			a.Performance.LoadTimeMs <= verySlowLoadThresholdMs
	}},
	{entities.IssueLowSpeedScore, func(a *entities.AuditSnapshot) bool {
		return a.Performance != nil && speedScoreOf(a.Performance) < lowSpeedScoreThreshold
	}},
	{entities.IssueMissingAltTags, func(a *entities.AuditSnapshot) bool {
		return a.Images != nil && a.Images.WithoutAlt > 0
	}},
	{entities.IssueHeavyImages, func(a *entities.AuditSnapshot) bool {
		return a.Images != nil && a.Images.Oversized > 0
	}},
	{entities.IssueNoSSL, func(a *entities.AuditSnapshot) bool {
		return a.Security != nil && !a.Security.HasSSL
	}},
	{entities.IssueNoAnalytics, func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && !a.Tracking.HasGoogleAnalytics
	}},
	{entities.IssueNoFacebookPixel, func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && !a.Tracking.HasFacebookPixel
	}},
	{entities.IssueNoTagManager, func(a *entities.AuditSnapshot) bool {
		return a.Tracking != nil && !a.Tracking.HasTagManager
	}},
	{entities.IssueNoCookieBanner, func(a *entities.AuditSnapshot) bool {
		return a.GDPR != nil && !a.GDPR.HasCookieBanner
	}},
	{entities.IssueNoPrivacyPolicy, func(a *entities.AuditSnapshot) bool {
		return a.GDPR != nil && !a.GDPR.HasPrivacyPolicy
	}},
	{entities.IssueNotMobileFriendly, func(a *entities.AuditSnapshot) bool {
		return a.Mobile != nil && !a.Mobile.IsMobileFriendly
	}},
	{entities.IssueNoViewportMeta, func(a *entities.AuditSnapshot) bool {
		return a.Mobile != nil && !a.Mobile.HasViewportMeta
	}},
	{entities.IssueThinContent, func(a *entities.AuditSnapshot) bool {
		return a.Content != nil && a.Content.WordCount < thinContentWordCount
	}},
	{entities.IssueNoContactInfo, func(a *entities.AuditSnapshot) bool {
		return a.Content != nil && !a.Content.HasContactInfo
	}},
	{entities.IssueSiteUnreachable, func(a *entities.AuditSnapshot) bool {
		return a.SiteStatus != nil && !a.SiteStatus.IsOnline
	}},
}

// ExtractIssueKeys derives the canonical issue keys that apply to an audit
// snapshot. It is total over all inputs: a partial snapshot yields a partial
// key list, never an error. The input is never mutated.
func ExtractIssueKeys(a entities.AuditSnapshot) []entities.IssueKey {
	keys := make([]entities.IssueKey, 0, len(issueRules))
	for _, r := range issueRules {
		if r.match(&a) {
			keys = append(keys, r.key)
		}
	}
	return keys
}

func speedScoreOf(p *entities.PerformanceReport) float64 {
	if p.SpeedScore == nil {
		return defaultSpeedScore
	}
	return *p.SpeedScore
}
