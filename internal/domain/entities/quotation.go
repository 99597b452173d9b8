package entities

import "time"

// QuotationStatus represents the lifecycle of a quotation (preventivo).
//
// Domain notes:
//   - leadpilot is the source of truth for quotation/deposit state.
//   - A quotation is built from the lead's audit snapshot and never
//     recalculated after acceptance.

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// PriorityTier classifies how urgent a quoted service is. Tiers have a total
// order: critical sorts before high, high before medium, medium before low.

type PriorityTier string

const (
	PriorityCritical PriorityTier = "critical"
	PriorityHigh     PriorityTier = "high"
	PriorityMedium   PriorityTier = "medium"
	PriorityLow      PriorityTier = "low"
)

func (p PriorityTier) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// Complexity is the coarse classification of how much professional work a
// quotation represents, driven by counts of critical/high-priority services.

type Complexity string

const (
	ComplexitySimple     Complexity = "simple"
	ComplexityMedium     Complexity = "medium"
	ComplexityComplex    Complexity = "complex"
	ComplexityEnterprise Complexity = "enterprise"
)

// ServiceQuotation is a single priced line item of a quotation.
// AdjustedPrice is BasePrice scaled by the pricing multiplier and rounded.
type ServiceQuotation struct {
	Service       string       `json:"service"`
	Description   string       `json:"description"`
	BasePrice     float64      `json:"basePrice"`
	AdjustedPrice float64      `json:"adjustedPrice"`
	Priority      PriorityTier `json:"priority"`
	EstimatedDays int          `json:"estimatedDays"`
	ROIEstimate   string       `json:"roiEstimate"`
	Category      Category     `json:"category"`
}

// Discount is the bundle discount applied when three or more services are
// quoted together.
type Discount struct {
	Percentage float64 `json:"percentage"`
	Reason     string  `json:"reason"`
}

// Quotation is the priced, time-boxed service proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (lead_id-index): lead_id
//
// Monetary representation:
//   - Subtotal/Total are whole euro amounts (prices are rounded after the
//     multiplier is applied).
type Quotation struct {
	ID                 string             `json:"id"`
	LeadID             string             `json:"lead_id"`
	BusinessName       string             `json:"business_name"`
	WebsiteURL         string             `json:"website_url"`
	Services           []ServiceQuotation `json:"services"`
	Subtotal           float64            `json:"subtotal"`
	Discount           *Discount          `json:"discount,omitempty"`
	Total              float64            `json:"total"`
	EstimatedTotalDays int                `json:"estimated_total_days"`
	Complexity         Complexity         `json:"complexity"`
	PaymentTerms       string             `json:"payment_terms"`
	ROISummary         string             `json:"roi_summary"`
	Status             QuotationStatus    `json:"status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
