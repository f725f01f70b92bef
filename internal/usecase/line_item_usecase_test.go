package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"go.uber.org/mock/gomock"

	"scopeworks/internal/domain/entities"
	mock_interfaces "scopeworks/internal/usecase/interfaces/mocks"
)

type lineItemMocks struct {
	repo       *mock_interfaces.MockILineItemRepository
	estimates  *mock_interfaces.MockIEstimateRepository
	catalog    *mock_interfaces.MockICatalogRepository
	refChecker *mock_interfaces.MockIArtifactRefChecker
}

func newLineItemUseCase(t *testing.T) (*LineItemUseCase, lineItemMocks) {
	ctrl := gomock.NewController(t)
	m := lineItemMocks{
		repo:       mock_interfaces.NewMockILineItemRepository(ctrl),
		estimates:  mock_interfaces.NewMockIEstimateRepository(ctrl),
		catalog:    mock_interfaces.NewMockICatalogRepository(ctrl),
		refChecker: mock_interfaces.NewMockIArtifactRefChecker(ctrl),
	}
	return NewLineItemUseCase(m.repo, m.estimates, m.catalog, m.refChecker), m
}

func draftItem(id string) entities.LineItem {
	return entities.LineItem{
		ID: id, EstimateID: "est-1",
		Description: "API integration",
		BaseHours:   10, Factor: 1, Rate: 150, CostRate: 100,
		Size: entities.RatingMedium, Complexity: entities.RatingLarge, Confidence: entities.ConfidenceLow,
		SortOrder: 3,
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLineItemUseCase_Create(t *testing.T) {
	t.Run("rejects non-draft estimate", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		e := draftEstimate("est-1")
		e.Status = entities.EstimateStatusFinal
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)

		_, err := uc.Create(context.Background(), "est-1", LineItemInput{BaseHours: 8, Rate: 150})
		var serr *entities.StateError
		if !errors.As(err, &serr) {
			t.Fatalf("expected StateError, got %v", err)
		}
	})

	t.Run("rejects negative week", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		_, err := uc.Create(context.Background(), "est-1", LineItemInput{Week: -1, BaseHours: 8, Rate: 150})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "week" {
			t.Fatalf("expected week validation error, got %v", err)
		}
	})

	t.Run("rejects dual binding", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		_, err := uc.Create(context.Background(), "est-1", LineItemInput{
			BaseHours: 8, Rate: 150, RoleID: strPtr("role-1"), AssignedUserID: strPtr("user-1"),
		})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("applies defaults and derives fields", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.Factor != 1 || li.Size != entities.RatingSmall || li.Confidence != entities.ConfidenceHigh {
					t.Fatalf("defaults not applied: %+v", li)
				}
				// No-multiplier buckets: adjusted hours equal base hours.
				if !near(li.AdjustedHours, 8) || !near(li.TotalAmount, 1200) {
					t.Fatalf("unexpected derived block: %+v", li)
				}
				return li, nil
			},
		)
		if _, err := uc.Create(context.Background(), "est-1", LineItemInput{BaseHours: 8, Rate: 150, CostRate: 90}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("full multiplier stack", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if !near(li.AdjustedHours, 13.86) || !near(li.TotalAmount, 2079) {
					t.Fatalf("unexpected derived block: %+v", li)
				}
				if !near(li.TotalCost, 1386) || !near(li.Margin, 693) {
					t.Fatalf("unexpected cost/margin: %+v", li)
				}
				return li, nil
			},
		)
		_, err := uc.Create(context.Background(), "est-1", LineItemInput{
			BaseHours: 10, Factor: 1, Rate: 150, CostRate: 100,
			Size: entities.RatingMedium, Complexity: entities.RatingLarge, Confidence: entities.ConfidenceLow,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_Update(t *testing.T) {
	t.Run("recomputes when hours change", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		hours := 20.0
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if !near(li.AdjustedHours, 27.72) {
					t.Fatalf("expected 27.72 adjusted hours, got %v", li.AdjustedHours)
				}
				return li, nil
			},
		)
		if _, err := uc.Update(context.Background(), "est-1", "li-1", LineItemPatch{BaseHours: &hours}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("skips recompute for annotation edits", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)

		comment := "needs review"
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.Comments != "needs review" {
					t.Fatalf("comment not applied: %+v", li)
				}
				return li, nil
			},
		)
		if _, err := uc.Update(context.Background(), "est-1", "li-1", LineItemPatch{Comments: &comment}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects items from another estimate", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		foreign := draftItem("li-1")
		foreign.EstimateID = "est-2"
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(foreign, nil)

		comment := "x"
		_, err := uc.Update(context.Background(), "est-1", "li-1", LineItemPatch{Comments: &comment})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("empty epic id clears assignment", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		li := draftItem("li-1")
		li.EpicID = strPtr("epic-1")
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(li, nil)

		empty := ""
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got entities.LineItem) (entities.LineItem, error) {
				if got.EpicID != nil {
					t.Fatalf("expected epic cleared, got %+v", got.EpicID)
				}
				return got, nil
			},
		)
		if _, err := uc.Update(context.Background(), "est-1", "li-1", LineItemPatch{EpicID: &empty}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_Split(t *testing.T) {
	t.Run("rejects non-positive hours", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)

		_, err := uc.Split(context.Background(), "est-1", "li-1", 0, 5)
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "first_hours" {
			t.Fatalf("expected first_hours validation error, got %v", err)
		}
	})

	t.Run("replaces parent with two recalculated children", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		parent := draftItem("li-1")
		parent.EpicID = strPtr("epic-1")
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(parent, nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil).Times(2)

		m.repo.EXPECT().ReplaceWithSplit(gomock.Any(), "li-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, parentID string, first, second entities.LineItem) error {
				if first.ID == "li-1" || second.ID == "li-1" || first.ID == second.ID {
					t.Fatalf("children must get fresh ids: %s / %s", first.ID, second.ID)
				}
				if first.BaseHours != 6 || second.BaseHours != 4 {
					t.Fatalf("unexpected hours: %v / %v", first.BaseHours, second.BaseHours)
				}
				if first.SortOrder != 3 || second.SortOrder != 4 {
					t.Fatalf("unexpected sort orders: %d / %d", first.SortOrder, second.SortOrder)
				}
				if first.EpicID == nil || *first.EpicID != "epic-1" || second.EpicID == nil {
					t.Fatalf("children must inherit placement")
				}
				if !near(first.AdjustedHours, 8.316) || !near(second.AdjustedHours, 5.544) {
					t.Fatalf("children not recalculated: %v / %v", first.AdjustedHours, second.AdjustedHours)
				}
				return nil
			},
		)

		items, err := uc.Split(context.Background(), "est-1", "li-1", 6, 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("expected two items, got %d", len(items))
		}
	})
}

func TestLineItemUseCase_BulkUpdate(t *testing.T) {
	t.Run("per-item atomic", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-2").Return(entities.LineItem{}, nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) { return li, nil },
		)

		factor := 1.5
		res, err := uc.BulkUpdate(context.Background(), "est-1", []string{"li-1", "li-2"}, LineItemPatch{Factor: &factor})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || len(res.Failed) != 1 {
			t.Fatalf("expected 1 ok / 1 failed, got %+v", res)
		}
		if res.Failed[0].ItemID != "li-2" {
			t.Fatalf("unexpected failure: %+v", res.Failed[0])
		}
	})
}

func TestLineItemUseCase_BulkAssign(t *testing.T) {
	t.Run("role binding re-pulls rates", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)

		role := entities.Role{ID: "role-1", Name: "Senior Consultant", DefaultRackRate: 210, DefaultCostRate: 130}
		// Once for the display name, once per item for rate resolution.
		m.catalog.EXPECT().GetRoleByID(gomock.Any(), "role-1").Return(role, nil).Times(2)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)
		m.catalog.EXPECT().ListRateOverridesByEstimateID(gomock.Any(), "est-1").Return(nil, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.Rate != 210 || li.CostRate != 130 {
					t.Fatalf("rates not re-pulled from role: %+v", li)
				}
				if li.ResourceName != "Senior Consultant" {
					t.Fatalf("unexpected resource name: %q", li.ResourceName)
				}
				return li, nil
			},
		)

		res, err := uc.BulkAssign(context.Background(), "est-1", []string{"li-1"}, ResourceBinding{RoleID: strPtr("role-1")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || len(res.Failed) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.catalog.EXPECT().GetRoleByID(gomock.Any(), "role-x").Return(entities.Role{}, nil)

		_, err := uc.BulkAssign(context.Background(), "est-1", []string{"li-1"}, ResourceBinding{RoleID: strPtr("role-x")})
		var verr *entities.ValidationError
		if !errors.As(err, &verr) || verr.Field != "role_id" {
			t.Fatalf("expected role_id validation error, got %v", err)
		}
	})
}

func TestLineItemUseCase_Delete(t *testing.T) {
	t.Run("unlinked estimate skips reference check", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(draftEstimate("est-1"), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)
		m.repo.EXPECT().Delete(gomock.Any(), "li-1").Return(nil)

		if err := uc.Delete(context.Background(), "est-1", "li-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("referenced item is protected", func(t *testing.T) {
		uc, m := newLineItemUseCase(t)
		e := draftEstimate("est-1")
		e.ProjectID = strPtr("proj-9")
		m.estimates.EXPECT().GetByID(gomock.Any(), "est-1").Return(e, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "li-1").Return(draftItem("li-1"), nil)
		m.refChecker.EXPECT().LineItemReferenced(gomock.Any(), "est-1", "li-1").Return(true, nil)

		err := uc.Delete(context.Background(), "est-1", "li-1")
		var rerr *entities.RefIntegrityError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected RefIntegrityError, got %v", err)
		}
	})
}
