package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/domain/pricing"
	"scopeworks/internal/usecase/interfaces"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidGroupBy    = errors.New("invalid group_by dimension")
)

// allowedTransitions is the estimate lifecycle. Draft is the only mutable
// state; sent is a customer-visible sibling of final; approved and rejected
// are terminal for pricing but revivable via reopen.
var allowedTransitions = map[entities.EstimateStatus][]entities.EstimateStatus{
	entities.EstimateStatusDraft:    {entities.EstimateStatusSent, entities.EstimateStatusFinal},
	entities.EstimateStatusSent:     {entities.EstimateStatusDraft, entities.EstimateStatusFinal},
	entities.EstimateStatusFinal:    {entities.EstimateStatusApproved, entities.EstimateStatusRejected, entities.EstimateStatusDraft},
	entities.EstimateStatusApproved: {entities.EstimateStatusDraft, entities.EstimateStatusFinal},
	entities.EstimateStatusRejected: {entities.EstimateStatusDraft},
}

func transitionAllowed(from, to entities.EstimateStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreateEstimateInput is the creation payload. Zero-value multipliers mean
// "use the product defaults".
type CreateEstimateInput struct {
	Name         string
	PricingType  entities.PricingType
	EstimateType entities.EstimateType
	Multipliers  *entities.Multipliers
	FixedPrice   *float64
	BlockHours   *float64
	BlockDollars *float64
	ReferralFee  *entities.ReferralFee
}

// EstimateConfigPatch is a sparse patch of estimate-level configuration.
// Only non-nil fields are applied. PresentedTotal and FixedPrice are
// removable overrides, so they carry explicit clear flags; a clear flag
// wins over a value set in the same patch.
type EstimateConfigPatch struct {
	Name                *string
	Multipliers         *entities.Multipliers
	PricingType         *entities.PricingType
	EstimateType        *entities.EstimateType
	PresentedTotal      *float64
	ClearPresentedTotal bool
	FixedPrice          *float64
	ClearFixedPrice     bool
	BlockHours          *float64
	BlockDollars        *float64
	ReferralFee         *entities.ReferralFee
}

// TransitionOptions travel with a status change. They are only consulted on
// final -> approved.
type TransitionOptions struct {
	CreateProject   bool
	CopyAssignments bool
	KickoffDate     *time.Time
}

// RecalculationResult summarizes a full recalculation sweep. Partial
// failures never abort the sweep; they are counted and reported.
type RecalculationResult struct {
	ItemsUpdated int      `json:"items_updated"`
	ItemsFailed  int      `json:"items_failed"`
	Failures     []string `json:"failures,omitempty"`
	Message      string   `json:"message"`
}

// ContingencyGroup is one row of the contingency insight report, with the
// raw group key resolved to a display label.
type ContingencyGroup struct {
	Label string `json:"label"`
	pricing.GroupBreakdown
}

// IEstimateUseCase exposes estimate-level operations: lifecycle, full
// recalculation, and contingency insights.

type IEstimateUseCase interface {
	Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	UpdateConfig(ctx context.Context, id string, patch EstimateConfigPatch) (entities.Estimate, error)
	Transition(ctx context.Context, id string, to entities.EstimateStatus, opts TransitionOptions) (entities.Estimate, error)
	RecalculateAll(ctx context.Context, id string) (RecalculationResult, error)
	ContingencyInsights(ctx context.Context, id string, groupBy pricing.GroupBy) ([]ContingencyGroup, error)
}

type EstimateUseCase struct {
	repo      interfaces.IEstimateRepository
	items     interfaces.ILineItemRepository
	structure interfaces.IStructureRepository
	catalog   interfaces.ICatalogRepository
	projects  interfaces.IProjectGateway
	log       *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	repo interfaces.IEstimateRepository,
	items interfaces.ILineItemRepository,
	structure interfaces.IStructureRepository,
	catalog interfaces.ICatalogRepository,
	projects interfaces.IProjectGateway,
	log *zap.Logger,
) *EstimateUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{repo: repo, items: items, structure: structure, catalog: catalog, projects: projects, log: log}
}

func (u *EstimateUseCase) Create(ctx context.Context, in CreateEstimateInput) (entities.Estimate, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Estimate{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}

	multipliers := entities.DefaultMultipliers()
	if in.Multipliers != nil {
		multipliers = *in.Multipliers
	}
	if err := multipliers.Validate(); err != nil {
		return entities.Estimate{}, err
	}

	pricingType := in.PricingType
	if pricingType == "" {
		pricingType = entities.PricingTypeHourly
	}
	estimateType := in.EstimateType
	if estimateType == "" {
		estimateType = entities.EstimateTypeDetailed
	}
	referral := entities.ReferralFee{Type: entities.ReferralFeeNone}
	if in.ReferralFee != nil {
		referral = *in.ReferralFee
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:           uuid.NewString(),
		Name:         name,
		Version:      1,
		PricingType:  pricingType,
		EstimateType: estimateType,
		Status:       entities.EstimateStatusDraft,
		Multipliers:  multipliers,
		FixedPrice:   in.FixedPrice,
		BlockHours:   in.BlockHours,
		BlockDollars: in.BlockDollars,
		ReferralFee:  referral,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	return loadEstimate(ctx, u.repo, id)
}

func (u *EstimateUseCase) UpdateConfig(ctx context.Context, id string, patch EstimateConfigPatch) (entities.Estimate, error) {
	e, err := loadEstimate(ctx, u.repo, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := requireDraft(e, "update estimate config"); err != nil {
		return entities.Estimate{}, err
	}

	recalcNeeded := false
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Estimate{}, &entities.ValidationError{Field: "name", Reason: "is required"}
		}
		e.Name = name
	}
	if patch.Multipliers != nil {
		if err := patch.Multipliers.Validate(); err != nil {
			return entities.Estimate{}, err
		}
		e.Multipliers = *patch.Multipliers
		recalcNeeded = true
	}
	if patch.PricingType != nil {
		e.PricingType = *patch.PricingType
	}
	if patch.EstimateType != nil {
		e.EstimateType = *patch.EstimateType
	}
	if patch.PresentedTotal != nil {
		e.PresentedTotal = patch.PresentedTotal
	}
	if patch.ClearPresentedTotal {
		e.PresentedTotal = nil
	}
	if patch.FixedPrice != nil {
		e.FixedPrice = patch.FixedPrice
	}
	if patch.ClearFixedPrice {
		e.FixedPrice = nil
	}
	if patch.BlockHours != nil {
		e.BlockHours = patch.BlockHours
	}
	if patch.BlockDollars != nil {
		e.BlockDollars = patch.BlockDollars
	}
	if patch.ReferralFee != nil {
		e.ReferralFee = *patch.ReferralFee
	}

	e.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	// A multiplier change invalidates every stored derived block.
	if recalcNeeded {
		if _, err := u.recalculateItems(ctx, updated); err != nil {
			return entities.Estimate{}, err
		}
	}
	return updated, nil
}

func (u *EstimateUseCase) Transition(ctx context.Context, id string, to entities.EstimateStatus, opts TransitionOptions) (entities.Estimate, error) {
	e, err := loadEstimate(ctx, u.repo, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if !transitionAllowed(e.Status, to) {
		return entities.Estimate{}, &entities.StateError{
			Status:    e.Status,
			Operation: fmt.Sprintf("transition to %s", to),
		}
	}

	from := e.Status
	e.Status = to

	// Reopening for revision bumps the version. Reverting an approval back
	// to final is non-destructive: an already-created project link stays.
	if to == entities.EstimateStatusDraft {
		e.Version++
	}

	if from == entities.EstimateStatusFinal && to == entities.EstimateStatusApproved &&
		opts.CreateProject && e.ProjectID == nil {
		projectID, err := u.spawnProject(ctx, e, opts)
		if err != nil {
			return entities.Estimate{}, err
		}
		e.ProjectID = &projectID
	}

	e.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	u.log.Info("estimate transitioned",
		zap.String("estimate_id", updated.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.Int("version", updated.Version))
	return updated, nil
}

// spawnProject hands the structural snapshot to the external project
// service. Invoked at most once: a non-nil project link suppresses it.
func (u *EstimateUseCase) spawnProject(ctx context.Context, e entities.Estimate, opts TransitionOptions) (string, error) {
	epics, err := u.structure.ListEpicsByEstimateID(ctx, e.ID)
	if err != nil {
		return "", err
	}
	stages, err := u.structure.ListStagesByEstimateID(ctx, e.ID)
	if err != nil {
		return "", err
	}
	items, err := u.items.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return "", err
	}
	if !opts.CopyAssignments {
		for i := range items {
			items[i].RoleID = nil
			items[i].AssignedUserID = nil
			items[i].ResourceName = ""
		}
	}

	snap := interfaces.ProjectSnapshot{
		EstimateID:      e.ID,
		EstimateName:    e.Name,
		KickoffDate:     opts.KickoffDate,
		CopyAssignments: opts.CopyAssignments,
		Epics:           epics,
		Stages:          stages,
		LineItems:       items,
	}
	projectID, err := u.projects.CreateProject(ctx, snap)
	if err != nil {
		return "", err
	}
	u.log.Info("project created from estimate",
		zap.String("estimate_id", e.ID),
		zap.String("project_id", projectID),
		zap.Int("line_items", len(items)))
	return projectID, nil
}

func (u *EstimateUseCase) RecalculateAll(ctx context.Context, id string) (RecalculationResult, error) {
	e, err := loadEstimate(ctx, u.repo, id)
	if err != nil {
		return RecalculationResult{}, err
	}
	if err := requireDraft(e, "recalculate estimate"); err != nil {
		return RecalculationResult{}, err
	}
	return u.recalculateItems(ctx, e)
}

// recalculateItems re-resolves rates and reapplies the calculator to every
// line item. Idempotent; items are independent, so a failure is recorded
// and the sweep continues, leaving already-updated items correct.
func (u *EstimateUseCase) recalculateItems(ctx context.Context, e entities.Estimate) (RecalculationResult, error) {
	items, err := u.items.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return RecalculationResult{}, err
	}
	overrides, err := u.catalog.ListRateOverridesByEstimateID(ctx, e.ID)
	if err != nil {
		return RecalculationResult{}, err
	}
	cat, err := buildCatalog(ctx, u.catalog, items...)
	if err != nil {
		return RecalculationResult{}, err
	}

	res := RecalculationResult{}
	for _, li := range items {
		if err := resolveAndRecalc(e.Multipliers, &li, cat, overrides); err != nil {
			res.ItemsFailed++
			res.Failures = append(res.Failures, fmt.Sprintf("%s: %v", li.ID, err))
			continue
		}
		if _, err := u.items.Update(ctx, li); err != nil {
			res.ItemsFailed++
			res.Failures = append(res.Failures, fmt.Sprintf("%s: %v", li.ID, err))
			continue
		}
		res.ItemsUpdated++
	}
	res.Message = fmt.Sprintf("recalculated %d of %d line items", res.ItemsUpdated, len(items))

	u.log.Info("estimate recalculated",
		zap.String("estimate_id", e.ID),
		zap.Int("items_updated", res.ItemsUpdated),
		zap.Int("items_failed", res.ItemsFailed))
	return res, nil
}

func (u *EstimateUseCase) ContingencyInsights(ctx context.Context, id string, groupBy pricing.GroupBy) ([]ContingencyGroup, error) {
	if !groupBy.Valid() {
		return nil, ErrInvalidGroupBy
	}
	e, err := loadEstimate(ctx, u.repo, id)
	if err != nil {
		return nil, err
	}
	items, err := u.items.ListByEstimateID(ctx, e.ID)
	if err != nil {
		return nil, err
	}

	groups := pricing.Aggregate(e.Multipliers, items, groupBy)
	out := make([]ContingencyGroup, 0, len(groups))
	for _, g := range groups {
		label, err := u.groupLabel(ctx, e.ID, groupBy, g.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, ContingencyGroup{Label: label, GroupBreakdown: g})
	}
	return out, nil
}

func (u *EstimateUseCase) groupLabel(ctx context.Context, estimateID string, groupBy pricing.GroupBy, key string) (string, error) {
	if key == pricing.UnassignedKey {
		return "Unassigned", nil
	}
	switch groupBy {
	case pricing.GroupByEpic:
		epic, err := u.structure.GetEpicByID(ctx, key)
		if err != nil || epic.ID == "" {
			return key, err
		}
		return epic.Name, nil
	case pricing.GroupByStage:
		stage, err := u.structure.GetStageByID(ctx, key)
		if err != nil || stage.ID == "" {
			return key, err
		}
		return stage.Name, nil
	case pricing.GroupByRole:
		role, err := u.catalog.GetRoleByID(ctx, key)
		if err != nil || role.ID == "" {
			return key, err
		}
		return role.Name, nil
	default: // workstream keys are already display text
		return key, nil
	}
}
