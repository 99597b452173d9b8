package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"leadpilot/internal/domain/engine"
	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound   = errors.New("quotation not found")
	ErrInvalidQuotationID  = errors.New("invalid quotation id")
	ErrInvalidMultiplier   = errors.New("invalid price multiplier")
	ErrNothingToQuote      = errors.New("nothing to quote")
	ErrQuotationNotPending = errors.New("quotation is not pending a decision")
)

// IQuotationUseCase exposes service quotation operations.
//
// CreateForLead rebuilds the priced proposal from the lead's audit and
// persists it as a draft; Accept/Reject flip the draft once the client
// answers.

type IQuotationUseCase interface {
	CreateForLead(ctx context.Context, leadID string, multiplier float64) (entities.Quotation, error)
	AcceptByID(ctx context.Context, id string) (entities.Quotation, error)
	RejectByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetLatestByLeadID(ctx context.Context, leadID string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo     interfaces.IQuotationRepository
	leadRepo interfaces.ILeadRepository
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, leadRepo interfaces.ILeadRepository) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, leadRepo: leadRepo}
}

func (u *QuotationUseCase) CreateForLead(ctx context.Context, leadID string, multiplier float64) (entities.Quotation, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Quotation{}, ErrInvalidLeadID
	}
	if multiplier < 0 {
		return entities.Quotation{}, ErrInvalidMultiplier
	}
	if multiplier == 0 {
		multiplier = 1.0
	}

	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if lead.ID == "" {
		return entities.Quotation{}, ErrLeadNotFound
	}

	q := engine.BuildQuotation(lead.Audit, lead.BusinessName, lead.WebsiteURL, multiplier)
	if len(q.Services) == 0 {
		log.Printf("[quotation][usecase] nothing to quote lead_id=%s score=%.0f", lead.ID, lead.Score)
		return entities.Quotation{}, ErrNothingToQuote
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.LeadID = lead.ID
	q.Status = entities.QuotationStatusDraft
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	log.Printf("[quotation][usecase] quotation created lead_id=%s quotation_id=%s services=%d total=%.2f", lead.ID, created.ID, len(created.Services), created.Total)
	return created, nil
}

func (u *QuotationUseCase) AcceptByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.updateStatusByID(ctx, id, entities.QuotationStatusAccepted)
}

func (u *QuotationUseCase) RejectByID(ctx context.Context, id string) (entities.Quotation, error) {
	return u.updateStatusByID(ctx, id, entities.QuotationStatusRejected)
}

func (u *QuotationUseCase) updateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if existing.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	// Only drafts accept a decision; decided quotations stay as they are.
	if existing.Status != entities.QuotationStatusDraft {
		return entities.Quotation{}, ErrQuotationNotPending
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	log.Printf("[quotation][usecase] status updated quotation_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) GetLatestByLeadID(ctx context.Context, leadID string) (entities.Quotation, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Quotation{}, ErrInvalidLeadID
	}

	q, err := u.repo.GetLatestByLeadID(ctx, leadID)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}
