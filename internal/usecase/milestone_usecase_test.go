package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"scopeworks/internal/domain/entities"
	mock_interfaces "scopeworks/internal/usecase/interfaces/mocks"
)

type milestoneMocks struct {
	repo      *mock_interfaces.MockIMilestoneRepository
	estimates *mock_interfaces.MockIEstimateRepository
	items     *mock_interfaces.MockILineItemRepository
}

func newMilestoneUseCase(t *testing.T) (*MilestoneUseCase, milestoneMocks) {
	ctrl := gomock.NewController(t)
	m := milestoneMocks{
		repo:      mock_interfaces.NewMockIMilestoneRepository(ctrl),
		estimates: mock_interfaces.NewMockIEstimateRepository(ctrl),
		items:     mock_interfaces.NewMockILineItemRepository(ctrl),
	}
	return NewMilestoneUseCase(m.repo, m.estimates, m.items), m
}

func f64Ptr(f float64) *float64 { return &f }

func TestMilestoneUseCase_Create(t *testing.T) {
	t.Run("rejects amount and percentage together", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		_, err := uc.Create(context.Background(), "est-1", MilestoneInput{
			Name: "Kickoff", Amount: f64Ptr(5000), Percentage: f64Ptr(50),
		})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("rejects neither amount nor percentage", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		_, err := uc.Create(context.Background(), "est-1", MilestoneInput{Name: "Kickoff"})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("creates a fixed-amount milestone", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ms entities.Milestone) (entities.Milestone, error) {
				if ms.Name != "Kickoff" || ms.Amount == nil || *ms.Amount != 5000 {
					t.Fatalf("unexpected milestone: %+v", ms)
				}
				return ms, nil
			},
		)
		if _, err := uc.Create(context.Background(), "est-1", MilestoneInput{Name: " Kickoff ", Amount: f64Ptr(5000)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("requires draft", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusApproved
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		_, err := uc.Create(context.Background(), "est-1", MilestoneInput{Name: "Kickoff", Amount: f64Ptr(5000)})
		var serr *entities.StateError
		if !errors.As(err, &serr) {
			t.Fatalf("expected StateError, got %v", err)
		}
	})
}

func TestMilestoneUseCase_Update(t *testing.T) {
	t.Run("switching to percentage clears the amount", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "ms-1").Return(entities.Milestone{
			ID: "ms-1", EstimateID: "est-1", Name: "Kickoff", Amount: f64Ptr(5000),
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ms entities.Milestone) (entities.Milestone, error) {
				if ms.Amount != nil || ms.Percentage == nil || *ms.Percentage != 40 {
					t.Fatalf("amount not cleared: %+v", ms)
				}
				return ms, nil
			},
		)
		if _, err := uc.Update(context.Background(), "est-1", "ms-1", MilestonePatch{Percentage: f64Ptr(40)}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects milestones from another estimate", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "ms-1").Return(entities.Milestone{
			ID: "ms-1", EstimateID: "est-2", Name: "Kickoff", Amount: f64Ptr(5000),
		}, nil)

		_, err := uc.Update(context.Background(), "est-1", "ms-1", MilestonePatch{SortOrder: intPtr(2)})
		if !errors.Is(err, ErrMilestoneNotFound) {
			t.Fatalf("expected ErrMilestoneNotFound, got %v", err)
		}
	})
}

func TestMilestoneUseCase_Reconcile(t *testing.T) {
	t.Run("mixed amounts and percentages match the presented total", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		e := draftEstimate("est-1")
		e.PresentedTotal = f64Ptr(10000)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Milestone{
			{ID: "ms-1", EstimateID: "est-1", Name: "Kickoff", Amount: f64Ptr(4000)},
			{ID: "ms-2", EstimateID: "est-1", Name: "Delivery", Percentage: f64Ptr(60)},
		}, nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		rep, err := uc.Reconcile(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rep.Matches || rep.QuoteTotal != 10000 || rep.MilestoneTotal != 10000 {
			t.Fatalf("unexpected report: %+v", rep)
		}
	})

	t.Run("reports the gap without failing", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		e := draftEstimate("est-1")
		// No presented total: the quote falls back to the line item sum.
		e.Status = entities.EstimateStatusFinal
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Milestone{
			{ID: "ms-1", EstimateID: "est-1", Name: "Kickoff", Amount: f64Ptr(9000)},
		}, nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.LineItem{
			{ID: "li-1", EstimateID: "est-1", TotalAmount: 6000},
			{ID: "li-2", EstimateID: "est-1", TotalAmount: 4000},
		}, nil)

		rep, err := uc.Reconcile(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rep.Matches {
			t.Fatal("expected mismatch")
		}
		if rep.Delta != 1000 || rep.QuoteTotal != 10000 || rep.MilestoneTotal != 9000 {
			t.Fatalf("unexpected report: %+v", rep)
		}
	})

	t.Run("block estimate reconciles against block dollars", func(t *testing.T) {
		uc, m := newMilestoneUseCase(t)
		e := draftEstimate("est-1")
		e.EstimateType = entities.EstimateTypeBlock
		e.BlockDollars = f64Ptr(25000)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return([]entities.Milestone{
			{ID: "ms-1", EstimateID: "est-1", Name: "Retainer", Percentage: f64Ptr(100)},
		}, nil)
		m.items.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		rep, err := uc.Reconcile(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rep.Matches || rep.QuoteTotal != 25000 {
			t.Fatalf("unexpected report: %+v", rep)
		}
	})
}

func intPtr(i int) *int { return &i }
