package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

// reconcileTolerance is the currency-unit threshold below which a
// quote/milestone gap is considered a match.
const reconcileTolerance = 1.0

// MilestoneInput is the creation payload. Exactly one of Amount or
// Percentage must be set.
type MilestoneInput struct {
	Name       string
	Amount     *float64
	Percentage *float64
	DueDate    *time.Time
	SortOrder  int
}

// MilestonePatch is a sparse edit. Setting Amount switches the milestone to
// fixed-amount (clearing any percentage) and vice versa.
type MilestonePatch struct {
	Name       *string
	Amount     *float64
	Percentage *float64
	DueDate    *time.Time
	SortOrder  *int
}

// ReconciliationReport is advisory data, never an error: a mismatched
// estimate remains savable.
type ReconciliationReport struct {
	Matches        bool    `json:"matches"`
	Delta          float64 `json:"delta"`
	QuoteTotal     float64 `json:"quote_total"`
	MilestoneTotal float64 `json:"milestone_total"`
}

// IMilestoneUseCase exposes milestone CRUD and total reconciliation.

type IMilestoneUseCase interface {
	Create(ctx context.Context, estimateID string, in MilestoneInput) (entities.Milestone, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Milestone, error)
	Update(ctx context.Context, estimateID, milestoneID string, patch MilestonePatch) (entities.Milestone, error)
	Delete(ctx context.Context, estimateID, milestoneID string) error
	Reconcile(ctx context.Context, estimateID string) (ReconciliationReport, error)
}

type MilestoneUseCase struct {
	repo      interfaces.IMilestoneRepository
	estimates interfaces.IEstimateRepository
	items     interfaces.ILineItemRepository
}

var _ IMilestoneUseCase = (*MilestoneUseCase)(nil)

func NewMilestoneUseCase(
	repo interfaces.IMilestoneRepository,
	estimates interfaces.IEstimateRepository,
	items interfaces.ILineItemRepository,
) *MilestoneUseCase {
	return &MilestoneUseCase{repo: repo, estimates: estimates, items: items}
}

func (u *MilestoneUseCase) Create(ctx context.Context, estimateID string, in MilestoneInput) (entities.Milestone, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return entities.Milestone{}, err
	}
	if err := requireDraft(e, "create milestone"); err != nil {
		return entities.Milestone{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Milestone{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}

	m := entities.Milestone{
		ID:         uuid.NewString(),
		EstimateID: e.ID,
		Name:       name,
		Amount:     in.Amount,
		Percentage: in.Percentage,
		DueDate:    in.DueDate,
		SortOrder:  in.SortOrder,
	}
	if err := m.Validate(); err != nil {
		return entities.Milestone{}, err
	}
	return u.repo.Create(ctx, m)
}

func (u *MilestoneUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Milestone, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByEstimateID(ctx, e.ID)
}

func (u *MilestoneUseCase) Update(ctx context.Context, estimateID, milestoneID string, patch MilestonePatch) (entities.Milestone, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return entities.Milestone{}, err
	}
	if err := requireDraft(e, "update milestone"); err != nil {
		return entities.Milestone{}, err
	}

	m, err := u.getOwned(ctx, e.ID, milestoneID)
	if err != nil {
		return entities.Milestone{}, err
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Milestone{}, &entities.ValidationError{Field: "name", Reason: "is required"}
		}
		m.Name = name
	}
	if patch.Amount != nil {
		m.Amount = patch.Amount
		m.Percentage = nil
	}
	if patch.Percentage != nil {
		m.Percentage = patch.Percentage
		m.Amount = nil
	}
	if patch.DueDate != nil {
		m.DueDate = patch.DueDate
	}
	if patch.SortOrder != nil {
		m.SortOrder = *patch.SortOrder
	}
	if err := m.Validate(); err != nil {
		return entities.Milestone{}, err
	}

	updated, err := u.repo.Update(ctx, m)
	if err != nil {
		return entities.Milestone{}, err
	}
	if updated.ID == "" {
		return entities.Milestone{}, ErrMilestoneNotFound
	}
	return updated, nil
}

func (u *MilestoneUseCase) Delete(ctx context.Context, estimateID, milestoneID string) error {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return err
	}
	if err := requireDraft(e, "delete milestone"); err != nil {
		return err
	}
	m, err := u.getOwned(ctx, e.ID, milestoneID)
	if err != nil {
		return err
	}
	return u.repo.Delete(ctx, m.ID)
}

// Reconcile checks that the milestones sum to the presented quote total.
// Fixed amounts count directly; percentage milestones resolve against the
// quote total itself.
func (u *MilestoneUseCase) Reconcile(ctx context.Context, estimateID string) (ReconciliationReport, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return ReconciliationReport{}, err
	}
	milestones, err := u.repo.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return ReconciliationReport{}, err
	}
	items, err := u.items.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return ReconciliationReport{}, err
	}

	quote := quoteTotal(e, items)
	var milestoneTotal float64
	for _, m := range milestones {
		switch {
		case m.Amount != nil:
			milestoneTotal += *m.Amount
		case m.Percentage != nil:
			milestoneTotal += *m.Percentage / 100 * quote
		}
	}

	delta := quote - milestoneTotal
	return ReconciliationReport{
		Matches:        math.Abs(delta) < reconcileTolerance,
		Delta:          delta,
		QuoteTotal:     quote,
		MilestoneTotal: milestoneTotal,
	}, nil
}

func (u *MilestoneUseCase) getOwned(ctx context.Context, estimateID, milestoneID string) (entities.Milestone, error) {
	m, err := u.repo.GetByID(ctx, strings.TrimSpace(milestoneID))
	if err != nil {
		return entities.Milestone{}, err
	}
	if m.ID == "" || m.EstimateID != estimateID {
		return entities.Milestone{}, ErrMilestoneNotFound
	}
	return m, nil
}
