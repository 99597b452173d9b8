package request

import (
	"leadpilot/internal/domain/entities"
)

// LeadCreateRequest is the ingestion payload pushed by the crawler/analyzer
// collaborator. Audit and Competitors arrive in the crawler's own schema and
// are carried through untouched.

type LeadCreateRequest struct {
	BusinessName string                     `json:"business_name" binding:"required"`
	WebsiteURL   string                     `json:"website_url" binding:"required"`
	Score        float64                    `json:"score"`
	Audit        entities.AuditSnapshot     `json:"audit"`
	Competitors  []entities.CompetitorAudit `json:"competitors"`
}

func (r LeadCreateRequest) ToEntity() entities.Lead {
	return entities.Lead{
		BusinessName: r.BusinessName,
		WebsiteURL:   r.WebsiteURL,
		Score:        r.Score,
		Audit:        r.Audit,
		Competitors:  r.Competitors,
	}
}
