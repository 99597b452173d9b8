package usecase

import (
	"context"
	"errors"
	"testing"

	"leadpilot/internal/domain/entities"
	mock_interfaces "leadpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func quotableLead() entities.Lead {
	return entities.Lead{
		ID:           "lead-1",
		BusinessName: "Mario SRL",
		WebsiteURL:   "https://mario.it",
		Score:        75,
		Audit: entities.AuditSnapshot{
			OverallScore: 75,
			Security:     &entities.SecurityReport{HasSSL: false},
		},
	}
}

func TestQuotationUseCase_CreateForLead(t *testing.T) {
	t.Run("invalid lead id", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil)
		_, err := uc.CreateForLead(context.Background(), "  ", 1)
		if !errors.Is(err, ErrInvalidLeadID) {
			t.Fatalf("expected ErrInvalidLeadID, got %v", err)
		}
	})

	t.Run("negative multiplier", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil)
		_, err := uc.CreateForLead(context.Background(), "lead-1", -0.5)
		if !errors.Is(err, ErrInvalidMultiplier) {
			t.Fatalf("expected ErrInvalidMultiplier, got %v", err)
		}
	})

	t.Run("lead repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuotationUseCase(nil, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, errors.New("db"))

		_, err := uc.CreateForLead(context.Background(), "lead-1", 1)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("lead not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuotationUseCase(nil, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(entities.Lead{}, nil)

		_, err := uc.CreateForLead(context.Background(), "lead-1", 1)
		if !errors.Is(err, ErrLeadNotFound) {
			t.Fatalf("expected ErrLeadNotFound, got %v", err)
		}
	})

	t.Run("nothing to quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuotationUseCase(nil, leadRepo)
		healthy := entities.Lead{
			ID:           "lead-1",
			BusinessName: "Mario SRL",
			WebsiteURL:   "https://mario.it",
			Score:        92,
			Audit:        entities.AuditSnapshot{OverallScore: 92},
		}
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(healthy, nil)

		_, err := uc.CreateForLead(context.Background(), "lead-1", 1)
		if !errors.Is(err, ErrNothingToQuote) {
			t.Fatalf("expected ErrNothingToQuote, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuotationUseCase(repo, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(quotableLead(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quotation{}, errors.New("db-create"))

		_, err := uc.CreateForLead(context.Background(), "lead-1", 1)
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("create success with default multiplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuotationUseCase(repo, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(quotableLead(), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" || q.LeadID != "lead-1" || q.Status != entities.QuotationStatusDraft {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if q.BusinessName != "Mario SRL" || q.WebsiteURL != "https://mario.it" {
					t.Fatalf("lead identity not carried over: %+v", q)
				}
				if len(q.Services) != 2 {
					t.Fatalf("expected 2 services, got %d", len(q.Services))
				}
				// multiplier 0 defaults to 1.0: base prices pass through
				if q.Subtotal != 950 || q.Total != 950 {
					t.Fatalf("unexpected totals: subtotal=%.2f total=%.2f", q.Subtotal, q.Total)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return q, nil
			},
		)

		res, err := uc.CreateForLead(context.Background(), " lead-1 ", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("create success with custom multiplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		leadRepo := mock_interfaces.NewMockILeadRepository(ctrl)
		uc := NewQuotationUseCase(repo, leadRepo)
		leadRepo.EXPECT().GetByID(gomock.Any(), "lead-1").Return(quotableLead(), nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				// round(350*1.2) + round(600*1.2) = 420 + 720
				if q.Subtotal != 1140 {
					t.Fatalf("expected subtotal 1140, got %.2f", q.Subtotal)
				}
				return q, nil
			},
		)

		_, err := uc.CreateForLead(context.Background(), "lead-1", 1.2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_DecisionFlows(t *testing.T) {
	cases := []struct {
		name   string
		call   func(uc *QuotationUseCase, ctx context.Context, id string) (entities.Quotation, error)
		status entities.QuotationStatus
	}{
		{name: "accept", call: (*QuotationUseCase).AcceptByID, status: entities.QuotationStatusAccepted},
		{name: "reject", call: (*QuotationUseCase).RejectByID, status: entities.QuotationStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid id", func(t *testing.T) {
			uc := NewQuotationUseCase(nil, nil)
			_, err := tc.call(uc, context.Background(), "")
			if !errors.Is(err, ErrInvalidQuotationID) {
				t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
			}
		})

		t.Run(tc.name+" get error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "quo-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{}, nil)

			_, err := tc.call(uc, context.Background(), "quo-1")
			if !errors.Is(err, ErrQuotationNotFound) {
				t.Fatalf("expected ErrQuotationNotFound, got %v", err)
			}
		})

		t.Run(tc.name+" already decided", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{ID: "quo-1", Status: entities.QuotationStatusAccepted}, nil)

			_, err := tc.call(uc, context.Background(), "quo-1")
			if !errors.Is(err, ErrQuotationNotPending) {
				t.Fatalf("expected ErrQuotationNotPending, got %v", err)
			}
		})

		t.Run(tc.name+" update error", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{ID: "quo-1", Status: entities.QuotationStatusDraft}, nil)
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "quo-1", tc.status).Return(entities.Quotation{}, errors.New("db"))

			_, err := tc.call(uc, context.Background(), "quo-1")
			if err == nil || err.Error() != "db" {
				t.Fatalf("expected db error, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{ID: "quo-1", Status: entities.QuotationStatusDraft}, nil)
			expected := entities.Quotation{ID: "quo-1", Status: tc.status}
			repo.EXPECT().UpdateStatusByID(gomock.Any(), "quo-1", tc.status).Return(expected, nil)

			res, err := tc.call(uc, context.Background(), " quo-1 ")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})
	}
}

func TestQuotationUseCase_Getters(t *testing.T) {
	t.Run("GetByID", func(t *testing.T) {
		t.Run("invalid id", func(t *testing.T) {
			uc := NewQuotationUseCase(nil, nil)
			_, err := uc.GetByID(context.Background(), "")
			if !errors.Is(err, ErrInvalidQuotationID) {
				t.Fatalf("expected ErrInvalidQuotationID, got %v", err)
			}
		})

		t.Run("not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{}, nil)

			_, err := uc.GetByID(context.Background(), "quo-1")
			if !errors.Is(err, ErrQuotationNotFound) {
				t.Fatalf("expected ErrQuotationNotFound, got %v", err)
			}
		})

		t.Run("success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetByID(gomock.Any(), "quo-1").Return(entities.Quotation{ID: "quo-1"}, nil)

			res, err := uc.GetByID(context.Background(), " quo-1 ")
			if err != nil || res.ID != "quo-1" {
				t.Fatalf("unexpected result err=%v res=%+v", err, res)
			}
		})
	})

	t.Run("GetLatestByLeadID", func(t *testing.T) {
		t.Run("invalid lead id", func(t *testing.T) {
			uc := NewQuotationUseCase(nil, nil)
			_, err := uc.GetLatestByLeadID(context.Background(), " ")
			if !errors.Is(err, ErrInvalidLeadID) {
				t.Fatalf("expected ErrInvalidLeadID, got %v", err)
			}
		})

		t.Run("not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetLatestByLeadID(gomock.Any(), "lead-1").Return(entities.Quotation{}, nil)

			_, err := uc.GetLatestByLeadID(context.Background(), "lead-1")
			if !errors.Is(err, ErrQuotationNotFound) {
				t.Fatalf("expected ErrQuotationNotFound, got %v", err)
			}
		})

		t.Run("success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
			uc := NewQuotationUseCase(repo, nil)
			repo.EXPECT().GetLatestByLeadID(gomock.Any(), "lead-1").Return(entities.Quotation{ID: "quo-1", LeadID: "lead-1"}, nil)

			res, err := uc.GetLatestByLeadID(context.Background(), " lead-1 ")
			if err != nil || res.LeadID != "lead-1" {
				t.Fatalf("unexpected result err=%v res=%+v", err, res)
			}
		})
	})
}
