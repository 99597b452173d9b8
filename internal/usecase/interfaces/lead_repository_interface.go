package interfaces

import (
	"context"

	"leadpilot/internal/domain/entities"
)

// ILeadRepository abstracts DynamoDB persistence for Lead.
//
// Leads (audit snapshot included) are written once by the crawler ingest
// endpoint and read by the recommendation/quotation pipelines; the engine
// never updates them.

type ILeadRepository interface {
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
}
