package response

import (
	"time"

	"leadpilot/internal/domain/entities"
)

type ServiceQuotationResponse struct {
	Service       string  `json:"service"`
	Description   string  `json:"description"`
	BasePrice     float64 `json:"base_price"`
	AdjustedPrice float64 `json:"adjusted_price"`
	Priority      string  `json:"priority"`
	EstimatedDays int     `json:"estimated_days"`
	ROIEstimate   string  `json:"roi_estimate"`
	Category      string  `json:"category"`
}

type DiscountResponse struct {
	Percentage float64 `json:"percentage"`
	Reason     string  `json:"reason"`
}

type QuotationResponse struct {
	QuotationID        string                     `json:"quotation_id"`
	ID                 string                     `json:"id"`
	LeadID             string                     `json:"lead_id"`
	BusinessName       string                     `json:"business_name"`
	WebsiteURL         string                     `json:"website_url"`
	Services           []ServiceQuotationResponse `json:"services"`
	Subtotal           float64                    `json:"subtotal"`
	Discount           *DiscountResponse          `json:"discount,omitempty"`
	Total              float64                    `json:"total"`
	EstimatedTotalDays int                        `json:"estimated_total_days"`
	Complexity         string                     `json:"complexity"`
	PaymentTerms       string                     `json:"payment_terms"`
	ROISummary         string                     `json:"roi_summary"`
	Status             string                     `json:"status"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

func FromQuotation(q entities.Quotation) QuotationResponse {
	services := make([]ServiceQuotationResponse, 0, len(q.Services))
	for _, s := range q.Services {
		services = append(services, ServiceQuotationResponse{
			Service:       s.Service,
			Description:   s.Description,
			BasePrice:     s.BasePrice,
			AdjustedPrice: s.AdjustedPrice,
			Priority:      string(s.Priority),
			EstimatedDays: s.EstimatedDays,
			ROIEstimate:   s.ROIEstimate,
			Category:      string(s.Category),
		})
	}

	var discount *DiscountResponse
	if q.Discount != nil {
		discount = &DiscountResponse{Percentage: q.Discount.Percentage, Reason: q.Discount.Reason}
	}

	return QuotationResponse{
		QuotationID:        q.ID,
		ID:                 q.ID,
		LeadID:             q.LeadID,
		BusinessName:       q.BusinessName,
		WebsiteURL:         q.WebsiteURL,
		Services:           services,
		Subtotal:           q.Subtotal,
		Discount:           discount,
		Total:              q.Total,
		EstimatedTotalDays: q.EstimatedTotalDays,
		Complexity:         string(q.Complexity),
		PaymentTerms:       q.PaymentTerms,
		ROISummary:         q.ROISummary,
		Status:             string(q.Status),
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}
