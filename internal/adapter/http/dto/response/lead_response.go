package response

import (
	"time"

	"leadpilot/internal/domain/entities"
)

type LeadResponse struct {
	ID           string                     `json:"id"`
	BusinessName string                     `json:"business_name"`
	WebsiteURL   string                     `json:"website_url"`
	Score        float64                    `json:"score"`
	Audit        entities.AuditSnapshot     `json:"audit"`
	Competitors  []entities.CompetitorAudit `json:"competitors,omitempty"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

func FromLead(l entities.Lead) LeadResponse {
	return LeadResponse{
		ID:           l.ID,
		BusinessName: l.BusinessName,
		WebsiteURL:   l.WebsiteURL,
		Score:        l.Score,
		Audit:        l.Audit,
		Competitors:  l.Competitors,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}
