package entities

// IssueKey is the canonical, stable identifier of a detected technical issue.
// It is the join key between the extractor's output and both static catalogs
// (issue taxonomy and quick-win templates).
type IssueKey string

const (
	IssueMissingTitle           IssueKey = "missing_title"
	IssueMissingMetaDescription IssueKey = "missing_meta_description"
	IssueMissingH1              IssueKey = "missing_h1"
	IssueNoSitemap              IssueKey = "no_sitemap"
	IssueNoRobotsTxt            IssueKey = "no_robots_txt"
	IssueNoStructuredData       IssueKey = "no_structured_data"
	IssueVerySlowLoading        IssueKey = "very_slow_loading"
	IssueSlowLoading            IssueKey = "slow_loading"
	IssueLowSpeedScore          IssueKey = "low_speed_score"
	IssueMissingAltTags         IssueKey = "missing_alt_tags"
	IssueHeavyImages            IssueKey = "heavy_images"
	IssueNoSSL                  IssueKey = "no_ssl"
	IssueNoAnalytics            IssueKey = "no_analytics"
	IssueNoFacebookPixel        IssueKey = "no_facebook_pixel"
	IssueNoTagManager           IssueKey = "no_tag_manager"
	IssueNoCookieBanner         IssueKey = "no_cookie_banner"
	IssueNoPrivacyPolicy        IssueKey = "no_privacy_policy"
	IssueNotMobileFriendly      IssueKey = "not_mobile_friendly"
	IssueNoViewportMeta         IssueKey = "no_viewport_meta"
	IssueThinContent            IssueKey = "thin_content"
	IssueNoContactInfo          IssueKey = "no_contact_info"
	IssueSiteUnreachable        IssueKey = "site_unreachable"
)

// Severity classifies how serious a detected issue is.
//
// Severities have a total order: critical sorts before high, high before
// medium, medium before low. Use Rank for ordering, never string comparison.

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns the sort position of the severity (critical first). Unknown
// severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// Category is the audit dimension a problem belongs to.

type Category string

const (
	CategorySEO         Category = "seo"
	CategoryPerformance Category = "performance"
	CategorySecurity    Category = "security"
	CategoryGDPR        Category = "gdpr"
	CategoryMobile      Category = "mobile"
	CategoryTracking    Category = "tracking"
	CategoryContent     Category = "content"
	CategoryTechnical   Category = "technical"
)

// ProblemReport is the translated, grouped view of a lead's detected
// issues. MainProblem is nil when nothing was detected.
type ProblemReport struct {
	LeadID      string                           `json:"leadId"`
	MainProblem *TranslatedProblem               `json:"mainProblem,omitempty"`
	Problems    []TranslatedProblem              `json:"problems"`
	ByCategory  map[Category][]TranslatedProblem `json:"byCategory"`
	BySeverity  map[Severity][]TranslatedProblem `json:"bySeverity"`
}

// TranslatedProblem is the human-readable rendering of an IssueKey, taken
// verbatim from the issue taxonomy.
type TranslatedProblem struct {
	Key         IssueKey `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Solution    string   `json:"solution"`
	Severity    Severity `json:"severity"`
	Category    Category `json:"category"`
}
