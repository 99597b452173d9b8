package entities

import "time"

// AuditSnapshot is the raw technical audit produced by the crawler/analyzer
// for a single website. It is an external, immutable input: the engine reads
// it and never writes to it.
//
// Any sub-report may be missing (nil). A missing sub-report contributes no
// detected issues for that dimension; a false boolean inside a present
// sub-report means "feature absent / check failed".

type AuditSnapshot struct {
	OverallScore float64            `json:"overallScore"`
	SEO          *SEOReport         `json:"seo,omitempty"`
	Performance  *PerformanceReport `json:"performance,omitempty"`
	Images       *ImagesReport      `json:"images,omitempty"`
	Security     *SecurityReport    `json:"security,omitempty"`
	Tracking     *TrackingReport    `json:"tracking,omitempty"`
	GDPR         *GDPRReport        `json:"gdpr,omitempty"`
	Mobile       *MobileReport      `json:"mobile,omitempty"`
	Content      *ContentReport     `json:"content,omitempty"`
	SiteStatus   *SiteStatusReport  `json:"siteStatus,omitempty"`
}

type SEOReport struct {
	HasTitle           bool `json:"hasTitle"`
	HasMetaDescription bool `json:"hasMetaDescription"`
	HasH1              bool `json:"hasH1"`
	HasSitemap         bool `json:"hasSitemap"`
	HasRobotsTxt       bool `json:"hasRobotsTxt"`
	HasStructuredData  bool `json:"hasStructuredData"`
}

type PerformanceReport struct {
	// LoadTimeMs is the measured full page load in milliseconds. Zero means
	// the measurement was skipped.
	LoadTimeMs int `json:"loadTime"`
	// SpeedScore is the 0-100 synthetic speed score; nil when not measured.
	SpeedScore *float64 `json:"speedScore,omitempty"`
}

type ImagesReport struct {
	Total      int `json:"total"`
	WithoutAlt int `json:"withoutAlt"`
	Oversized  int `json:"oversized"`
}

type SecurityReport struct {
	HasSSL bool `json:"hasSSL"`
}

type TrackingReport struct {
	HasGoogleAnalytics bool `json:"hasGoogleAnalytics"`
	HasFacebookPixel   bool `json:"hasFacebookPixel"`
	HasTagManager      bool `json:"hasTagManager"`
}

type GDPRReport struct {
	HasCookieBanner  bool `json:"hasCookieBanner"`
	HasPrivacyPolicy bool `json:"hasPrivacyPolicy"`
}

type MobileReport struct {
	IsMobileFriendly bool `json:"isMobileFriendly"`
	HasViewportMeta  bool `json:"hasViewportMeta"`
}

type ContentReport struct {
	WordCount      int  `json:"wordCount"`
	HasContactInfo bool `json:"hasContactInfo"`
}

type SiteStatusReport struct {
	IsOnline bool `json:"isOnline"`
}

// CompetitorAudit is a competitor's audit as supplied by the
// competitor-lookup collaborator. List order is significant: the first
// competitor that resolves an issue wins the gap annotation.
type CompetitorAudit struct {
	Name     string        `json:"name"`
	Website  string        `json:"website"`
	Score    float64       `json:"score"`
	Analysis AuditSnapshot `json:"analysis"`
}

// Lead is the stored lead record the engine operates on.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Audit and Competitors are stored as raw JSON documents (the crawler owns
// their schema; we only need to round-trip them).
type Lead struct {
	ID           string            `json:"id"`
	BusinessName string            `json:"business_name"`
	WebsiteURL   string            `json:"website_url"`
	Score        float64           `json:"score"`
	Audit        AuditSnapshot     `json:"audit"`
	Competitors  []CompetitorAudit `json:"competitors,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
