package interfaces

import (
	"context"

	"leadpilot/internal/domain/entities"
)

// IQuotationRepository abstracts DynamoDB persistence for Quotation.
//
// leadpilot must be able to:
//   - persist a freshly built quotation (draft)
//   - update quotation status on accept/reject
//   - fetch a quotation by its own id or the latest one for a lead

type IQuotationRepository interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetLatestByLeadID(ctx context.Context, leadID string) (entities.Quotation, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error)
}
