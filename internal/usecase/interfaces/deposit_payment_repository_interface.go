package interfaces

import (
	"context"

	"leadpilot/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.

type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.DepositPayment, error)
}
