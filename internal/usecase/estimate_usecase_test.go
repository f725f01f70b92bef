package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/domain/pricing"
	"scopeworks/internal/usecase/interfaces"
	mock_interfaces "scopeworks/internal/usecase/interfaces/mocks"
)

type estimateMocks struct {
	repo      *mock_interfaces.MockIEstimateRepository
	items     *mock_interfaces.MockILineItemRepository
	structure *mock_interfaces.MockIStructureRepository
	catalog   *mock_interfaces.MockICatalogRepository
	projects  *mock_interfaces.MockIProjectGateway
}

func newEstimateUseCase(t *testing.T) (*EstimateUseCase, estimateMocks) {
	ctrl := gomock.NewController(t)
	m := estimateMocks{
		repo:      mock_interfaces.NewMockIEstimateRepository(ctrl),
		items:     mock_interfaces.NewMockILineItemRepository(ctrl),
		structure: mock_interfaces.NewMockIStructureRepository(ctrl),
		catalog:   mock_interfaces.NewMockICatalogRepository(ctrl),
		projects:  mock_interfaces.NewMockIProjectGateway(ctrl),
	}
	return NewEstimateUseCase(m.repo, m.items, m.structure, m.catalog, m.projects, nil), m
}

func draftEstimate(id string) entities.Estimate {
	return entities.Estimate{
		ID:           id,
		Name:         "Website Replatform",
		Version:      1,
		PricingType:  entities.PricingTypeHourly,
		EstimateType: entities.EstimateTypeDetailed,
		Status:       entities.EstimateStatusDraft,
		Multipliers:  entities.DefaultMultipliers(),
	}
}

func TestEstimateUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.Create(context.Background(), CreateEstimateInput{Name: "   "})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "name" {
			t.Fatalf("expected name validation error, got %v", err)
		}
	})

	t.Run("invalid multipliers", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		bad := entities.DefaultMultipliers()
		bad.ConfidenceLow = 0.8
		_, err := uc.Create(context.Background(), CreateEstimateInput{Name: "E", Multipliers: &bad})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.Version != 1 || e.Status != entities.EstimateStatusDraft {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Multipliers != entities.DefaultMultipliers() {
					t.Fatalf("expected default multipliers, got %+v", e.Multipliers)
				}
				if e.PricingType != entities.PricingTypeHourly || e.EstimateType != entities.EstimateTypeDetailed {
					t.Fatalf("expected hourly/detailed defaults, got %+v", e)
				}
				if e.ReferralFee.Type != entities.ReferralFeeNone {
					t.Fatalf("expected no referral fee, got %+v", e.ReferralFee)
				}
				return e, nil
			},
		)
		res, err := uc.Create(context.Background(), CreateEstimateInput{Name: " Website Replatform "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Website Replatform" {
			t.Fatalf("expected trimmed name, got %q", res.Name)
		}
	})
}

func TestEstimateUseCase_UpdateConfig(t *testing.T) {
	t.Run("clears the presented total", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		presented := 25000.0
		e.PresentedTotal = &presented

		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Estimate) (entities.Estimate, error) {
				if saved.PresentedTotal != nil {
					t.Fatalf("presented total not cleared: %v", *saved.PresentedTotal)
				}
				return saved, nil
			})

		updated, err := uc.UpdateConfig(context.Background(), "est-1", EstimateConfigPatch{ClearPresentedTotal: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PresentedTotal != nil {
			t.Fatalf("expected nil presented total, got %v", *updated.PresentedTotal)
		}
	})

	t.Run("clear flag wins over a value in the same patch", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		fixed := 50000.0
		e.FixedPrice = &fixed

		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.Estimate) (entities.Estimate, error) {
				return saved, nil
			})

		newFixed := 60000.0
		updated, err := uc.UpdateConfig(context.Background(), "est-1", EstimateConfigPatch{
			FixedPrice:      &newFixed,
			ClearFixedPrice: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.FixedPrice != nil {
			t.Fatalf("expected nil fixed price, got %v", *updated.FixedPrice)
		}
	})

	t.Run("frozen estimate rejects config edits", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusFinal

		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		_, err := uc.UpdateConfig(context.Background(), "est-1", EstimateConfigPatch{ClearPresentedTotal: true})
		var serr *entities.StateError
		if !errors.As(err, &serr) {
			t.Fatalf("expected StateError, got %v", err)
		}
	})
}

func TestEstimateUseCase_Transition(t *testing.T) {
	t.Run("rejects illegal transition", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		_, err := uc.Transition(context.Background(), "est-1", entities.EstimateStatusApproved, TransitionOptions{})
		var serr *entities.StateError
		if !errors.As(err, &serr) {
			t.Fatalf("expected StateError, got %v", err)
		}
	})

	t.Run("draft to final", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.Status != entities.EstimateStatusFinal {
					t.Fatalf("expected final, got %s", e.Status)
				}
				if e.Version != 1 {
					t.Fatalf("finalizing must not bump the version, got %d", e.Version)
				}
				return e, nil
			},
		)
		if _, err := uc.Transition(context.Background(), "est-1", entities.EstimateStatusFinal, TransitionOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reopen bumps version", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusRejected
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Estimate) (entities.Estimate, error) {
				if got.Status != entities.EstimateStatusDraft || got.Version != 2 {
					t.Fatalf("expected draft v2, got %s v%d", got.Status, got.Version)
				}
				return got, nil
			},
		)
		if _, err := uc.Transition(context.Background(), "est-1", entities.EstimateStatusDraft, TransitionOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("approval spawns project once", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusFinal
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		epicID := "epic-1"
		m.structure.EXPECT().ListEpicsByEstimateID(gomock.Any(), "est-1").Return([]entities.Epic{{ID: epicID, EstimateID: "est-1", Name: "Discovery", Order: 1}}, nil)
		m.structure.EXPECT().ListStagesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.LineItem{
			{ID: "li-1", EstimateID: "est-1", EpicID: &epicID, RoleID: strPtr("role-1"), ResourceName: "Engineer"},
		}, nil)
		m.projects.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, snap interfaces.ProjectSnapshot) (string, error) {
				if snap.EstimateID != "est-1" || len(snap.LineItems) != 1 {
					t.Fatalf("unexpected snapshot: %+v", snap)
				}
				// CopyAssignments was not requested, so bindings are stripped.
				if snap.LineItems[0].RoleID != nil || snap.LineItems[0].ResourceName != "" {
					t.Fatalf("expected assignments stripped, got %+v", snap.LineItems[0])
				}
				return "proj-9", nil
			},
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Estimate) (entities.Estimate, error) {
				if got.ProjectID == nil || *got.ProjectID != "proj-9" {
					t.Fatalf("expected project link, got %+v", got.ProjectID)
				}
				return got, nil
			},
		)

		res, err := uc.Transition(context.Background(), "est-1", entities.EstimateStatusApproved, TransitionOptions{CreateProject: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusApproved {
			t.Fatalf("expected approved, got %s", res.Status)
		}
	})

	t.Run("revert approval keeps project link", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusApproved
		projectID := "proj-9"
		e.ProjectID = &projectID
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.Estimate) (entities.Estimate, error) {
				if got.Status != entities.EstimateStatusFinal {
					t.Fatalf("expected final, got %s", got.Status)
				}
				if got.ProjectID == nil || *got.ProjectID != "proj-9" {
					t.Fatalf("revert must not touch the project link")
				}
				return got, nil
			},
		)
		if _, err := uc.Transition(context.Background(), "est-1", entities.EstimateStatusFinal, TransitionOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_RecalculateAll(t *testing.T) {
	t.Run("requires draft", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusApproved
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		_, err := uc.RecalculateAll(context.Background(), "est-1")
		var serr *entities.StateError
		if !errors.As(err, &serr) {
			t.Fatalf("expected StateError, got %v", err)
		}
	})

	t.Run("counts successes and failures", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		good := entities.LineItem{
			ID: "li-1", EstimateID: "est-1", BaseHours: 10, Factor: 1, Rate: 150, CostRate: 100,
			Size: entities.RatingMedium, Complexity: entities.RatingLarge, Confidence: entities.ConfidenceLow,
		}
		// Zero hours: the calculator rejects this item, the sweep continues.
		bad := entities.LineItem{
			ID: "li-2", EstimateID: "est-1", BaseHours: 0, Factor: 1, Rate: 150, CostRate: 100,
			Size: entities.RatingSmall, Complexity: entities.RatingSmall, Confidence: entities.ConfidenceHigh,
		}
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.LineItem{good, bad}, nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.items.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.ID != "li-1" {
					t.Fatalf("unexpected item updated: %s", li.ID)
				}
				if diff := li.AdjustedHours - 13.86; diff > 1e-9 || diff < -1e-9 {
					t.Fatalf("expected 13.86 adjusted hours, got %v", li.AdjustedHours)
				}
				return li, nil
			},
		)

		res, err := uc.RecalculateAll(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ItemsUpdated != 1 || res.ItemsFailed != 1 {
			t.Fatalf("expected 1 updated / 1 failed, got %+v", res)
		}
	})
}

func TestEstimateUseCase_ContingencyInsights(t *testing.T) {
	t.Run("invalid group by", func(t *testing.T) {
		uc, _ := newEstimateUseCase(t)
		_, err := uc.ContingencyInsights(context.Background(), "est-1", pricing.GroupBy("quarter"))
		if !errors.Is(err, ErrInvalidGroupBy) {
			t.Fatalf("expected ErrInvalidGroupBy, got %v", err)
		}
	})

	t.Run("resolves epic labels", func(t *testing.T) {
		uc, m := newEstimateUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		epicID := "epic-1"
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.LineItem{
			{
				ID: "li-1", EstimateID: "est-1", EpicID: &epicID,
				BaseHours: 10, Factor: 1, Rate: 150, CostRate: 100,
				Size: entities.RatingMedium, Complexity: entities.RatingLarge, Confidence: entities.ConfidenceLow,
			},
		}, nil)
		m.structure.EXPECT().GetEpicByID(gomock.Any(), "epic-1").Return(entities.Epic{ID: "epic-1", EstimateID: "est-1", Name: "Discovery"}, nil)

		groups, err := uc.ContingencyInsights(context.Background(), "est-1", pricing.GroupByEpic)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(groups) != 1 || groups[0].Label != "Discovery" {
			t.Fatalf("unexpected groups: %+v", groups)
		}
		if diff := groups[0].TotalHours - 3.86; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("expected 3.86 contingency hours, got %v", groups[0].TotalHours)
		}
	})
}

func strPtr(s string) *string { return &s }
