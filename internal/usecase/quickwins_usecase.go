package usecase

import (
	"context"
	"log"
	"strings"

	"leadpilot/internal/domain/engine"
	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase/interfaces"
)

// IQuickWinsUseCase runs the recommendation pipeline for a stored lead.
//
// Both operations are compute-only: the analysis is rebuilt fresh on every
// call from the lead's audit snapshot and nothing is persisted.

type IQuickWinsUseCase interface {
	AnalyzeByLeadID(ctx context.Context, leadID string) (entities.QuickWinsAnalysis, error)
	ProblemsByLeadID(ctx context.Context, leadID string) (entities.ProblemReport, error)
}

type QuickWinsUseCase struct {
	leadRepo interfaces.ILeadRepository
}

var _ IQuickWinsUseCase = (*QuickWinsUseCase)(nil)

func NewQuickWinsUseCase(leadRepo interfaces.ILeadRepository) *QuickWinsUseCase {
	return &QuickWinsUseCase{leadRepo: leadRepo}
}

func (u *QuickWinsUseCase) AnalyzeByLeadID(ctx context.Context, leadID string) (entities.QuickWinsAnalysis, error) {
	lead, err := u.loadLead(ctx, leadID)
	if err != nil {
		return entities.QuickWinsAnalysis{}, err
	}

	keys := engine.ExtractIssueKeys(lead.Audit)
	wins := engine.SynthesizeQuickWins(keys, lead.Competitors)
	analysis := engine.BuildAnalysis(lead.ID, lead.Score, wins)
	log.Printf("[quickwins][usecase] analysis built lead_id=%s issues=%d quick_wins=%d", lead.ID, len(keys), len(analysis.QuickWins))
	return analysis, nil
}

func (u *QuickWinsUseCase) ProblemsByLeadID(ctx context.Context, leadID string) (entities.ProblemReport, error) {
	lead, err := u.loadLead(ctx, leadID)
	if err != nil {
		return entities.ProblemReport{}, err
	}

	keys := engine.ExtractIssueKeys(lead.Audit)
	problems := engine.Translate(keys)
	report := entities.ProblemReport{
		LeadID:     lead.ID,
		Problems:   problems,
		ByCategory: engine.GroupByCategory(problems),
		BySeverity: engine.GroupBySeverity(problems),
	}
	if main, ok := engine.MainProblem(keys); ok {
		report.MainProblem = &main
	}
	return report, nil
}

func (u *QuickWinsUseCase) loadLead(ctx context.Context, leadID string) (entities.Lead, error) {
	leadID = strings.TrimSpace(leadID)
	if leadID == "" {
		return entities.Lead{}, ErrInvalidLeadID
	}

	lead, err := u.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return entities.Lead{}, err
	}
	if lead.ID == "" {
		return entities.Lead{}, ErrLeadNotFound
	}
	return lead, nil
}
