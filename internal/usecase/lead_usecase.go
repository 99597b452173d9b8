package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound   = errors.New("lead not found")
	ErrInvalidLeadID  = errors.New("invalid lead id")
	ErrInvalidLeadVal = errors.New("invalid lead payload")
)

// ILeadUseCase exposes lead ingestion and lookup.
//
// The crawler/analyzer collaborator pushes audited leads through
// IngestLead; everything downstream (quick wins, quotations) only reads.

type ILeadUseCase interface {
	IngestLead(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) IngestLead(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	l.BusinessName = strings.TrimSpace(l.BusinessName)
	l.WebsiteURL = strings.TrimSpace(l.WebsiteURL)
	if l.BusinessName == "" || l.WebsiteURL == "" {
		return entities.Lead{}, ErrInvalidLeadVal
	}
	if l.Score < 0 || l.Score > 100 {
		return entities.Lead{}, ErrInvalidLeadVal
	}

	now := time.Now().UTC()
	l.ID = uuid.NewString()
	l.CreatedAt = now
	l.UpdatedAt = now
	return u.repo.Create(ctx, l)
}

func (u *LeadUseCase) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Lead{}, err
	}
	if l.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return l, nil
}
