package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

// LineItemInput is the creation payload. Factor defaults to 1; ratings
// default to their no-multiplier bucket (small/small/high).
type LineItemInput struct {
	EpicID         *string
	StageID        *string
	Workstream     string
	Week           int
	Description    string
	BaseHours      float64
	Factor         float64
	Rate           float64
	CostRate       float64
	Size           entities.Rating
	Complexity     entities.Rating
	Confidence     entities.Confidence
	RoleID         *string
	AssignedUserID *string
	ResourceName   string
	Comments       string
	SortOrder      int
}

// LineItemPatch is a sparse field-level edit: only non-nil fields are
// applied. For EpicID/StageID an empty string moves the item to the
// unassigned bucket. Resource binding changes go through BulkAssign so that
// rates are always re-pulled from the new source.
type LineItemPatch struct {
	EpicID      *string
	StageID     *string
	Workstream  *string
	Week        *int
	Description *string
	BaseHours   *float64
	Factor      *float64
	Rate        *float64
	CostRate    *float64
	Size        *entities.Rating
	Complexity  *entities.Rating
	Confidence  *entities.Confidence
	Comments    *string
	SortOrder   *int
}

// AffectsCalculation reports whether applying the patch requires the
// derived block to be recomputed.
func (p LineItemPatch) AffectsCalculation() bool {
	return p.BaseHours != nil || p.Factor != nil || p.Rate != nil || p.CostRate != nil ||
		p.Size != nil || p.Complexity != nil || p.Confidence != nil
}

// ResourceBinding is the bulk-assignment target: at most one of RoleID or
// UserID set; both nil clears the binding.
type ResourceBinding struct {
	RoleID *string
	UserID *string
}

// BulkFailure records one item that could not be updated during a bulk
// operation. Bulk operations are per-item atomic, never all-or-nothing.
type BulkFailure struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

// BulkResult carries the successfully updated items plus per-item failures.
type BulkResult struct {
	Items  []entities.LineItem `json:"items"`
	Failed []BulkFailure       `json:"failed,omitempty"`
}

// ILineItemUseCase exposes line item operations. Every mutation requires a
// draft estimate and recomputes derived fields before persisting.

type ILineItemUseCase interface {
	Create(ctx context.Context, estimateID string, in LineItemInput) (entities.LineItem, error)
	GetByEstimateID(ctx context.Context, estimateID string) ([]entities.LineItem, error)
	Update(ctx context.Context, estimateID, itemID string, patch LineItemPatch) (entities.LineItem, error)
	Split(ctx context.Context, estimateID, itemID string, firstHours, secondHours float64) ([]entities.LineItem, error)
	BulkUpdate(ctx context.Context, estimateID string, itemIDs []string, patch LineItemPatch) (BulkResult, error)
	BulkAssign(ctx context.Context, estimateID string, itemIDs []string, binding ResourceBinding) (BulkResult, error)
	Delete(ctx context.Context, estimateID, itemID string) error
}

type LineItemUseCase struct {
	repo       interfaces.ILineItemRepository
	estimates  interfaces.IEstimateRepository
	catalog    interfaces.ICatalogRepository
	refChecker interfaces.IArtifactRefChecker
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(
	repo interfaces.ILineItemRepository,
	estimates interfaces.IEstimateRepository,
	catalog interfaces.ICatalogRepository,
	refChecker interfaces.IArtifactRefChecker,
) *LineItemUseCase {
	return &LineItemUseCase{repo: repo, estimates: estimates, catalog: catalog, refChecker: refChecker}
}

func (u *LineItemUseCase) Create(ctx context.Context, estimateID string, in LineItemInput) (entities.LineItem, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if err := requireDraft(e, "create line item"); err != nil {
		return entities.LineItem{}, err
	}
	if in.Week < 0 {
		return entities.LineItem{}, &entities.ValidationError{Field: "week", Reason: "must not be negative"}
	}
	if in.RoleID != nil && in.AssignedUserID != nil {
		return entities.LineItem{}, &entities.ValidationError{Field: "role_id", Reason: "bind a role or a user, not both"}
	}

	li := entities.LineItem{
		ID:             uuid.NewString(),
		EstimateID:     e.ID,
		EpicID:         in.EpicID,
		StageID:        in.StageID,
		Workstream:     strings.TrimSpace(in.Workstream),
		Week:           in.Week,
		Description:    strings.TrimSpace(in.Description),
		BaseHours:      in.BaseHours,
		Factor:         in.Factor,
		Rate:           in.Rate,
		CostRate:       in.CostRate,
		Size:           in.Size,
		Complexity:     in.Complexity,
		Confidence:     in.Confidence,
		RoleID:         in.RoleID,
		AssignedUserID: in.AssignedUserID,
		ResourceName:   strings.TrimSpace(in.ResourceName),
		Comments:       in.Comments,
		SortOrder:      in.SortOrder,
	}
	applyLineItemDefaults(&li)

	if err := u.refreshRatesAndRecalc(ctx, e, &li); err != nil {
		return entities.LineItem{}, err
	}
	return u.repo.Create(ctx, li)
}

func (u *LineItemUseCase) GetByEstimateID(ctx context.Context, estimateID string) ([]entities.LineItem, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByEstimateID(ctx, e.ID)
}

func (u *LineItemUseCase) Update(ctx context.Context, estimateID, itemID string, patch LineItemPatch) (entities.LineItem, error) {
	e, li, err := u.loadDraftItem(ctx, estimateID, itemID, "update line item")
	if err != nil {
		return entities.LineItem{}, err
	}

	if err := applyPatch(&li, patch); err != nil {
		return entities.LineItem{}, err
	}
	if patch.AffectsCalculation() {
		if err := u.refreshRatesAndRecalc(ctx, e, &li); err != nil {
			return entities.LineItem{}, err
		}
	}

	updated, err := u.repo.Update(ctx, li)
	if err != nil {
		return entities.LineItem{}, err
	}
	if updated.ID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	return updated, nil
}

func (u *LineItemUseCase) Split(ctx context.Context, estimateID, itemID string, firstHours, secondHours float64) ([]entities.LineItem, error) {
	e, parent, err := u.loadDraftItem(ctx, estimateID, itemID, "split line item")
	if err != nil {
		return nil, err
	}
	if firstHours <= 0 {
		return nil, &entities.ValidationError{Field: "first_hours", Reason: "must be greater than zero"}
	}
	if secondHours <= 0 {
		return nil, &entities.ValidationError{Field: "second_hours", Reason: "must be greater than zero"}
	}

	// The caller supplies both hour values and may deliberately rebalance;
	// they are not forced to sum to the parent's hours.
	first := parent
	first.ID = uuid.NewString()
	first.BaseHours = firstHours

	second := parent
	second.ID = uuid.NewString()
	second.BaseHours = secondHours
	second.SortOrder = parent.SortOrder + 1

	if err := u.refreshRatesAndRecalc(ctx, e, &first); err != nil {
		return nil, err
	}
	if err := u.refreshRatesAndRecalc(ctx, e, &second); err != nil {
		return nil, err
	}

	if err := u.repo.ReplaceWithSplit(ctx, parent.ID, first, second); err != nil {
		return nil, err
	}
	return []entities.LineItem{first, second}, nil
}

func (u *LineItemUseCase) BulkUpdate(ctx context.Context, estimateID string, itemIDs []string, patch LineItemPatch) (BulkResult, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return BulkResult{}, err
	}
	if err := requireDraft(e, "bulk update line items"); err != nil {
		return BulkResult{}, err
	}

	res := BulkResult{}
	for _, id := range itemIDs {
		li, err := u.getOwnedItem(ctx, e.ID, id)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
			continue
		}
		if err := applyPatch(&li, patch); err != nil {
			res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
			continue
		}
		if patch.AffectsCalculation() {
			if err := u.refreshRatesAndRecalc(ctx, e, &li); err != nil {
				res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
				continue
			}
		}
		updated, err := u.repo.Update(ctx, li)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
			continue
		}
		res.Items = append(res.Items, updated)
	}
	return res, nil
}

func (u *LineItemUseCase) BulkAssign(ctx context.Context, estimateID string, itemIDs []string, binding ResourceBinding) (BulkResult, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return BulkResult{}, err
	}
	if err := requireDraft(e, "assign resources"); err != nil {
		return BulkResult{}, err
	}
	if binding.RoleID != nil && binding.UserID != nil {
		return BulkResult{}, &entities.ValidationError{Field: "role_id", Reason: "bind a role or a user, not both"}
	}

	resourceName, err := u.bindingName(ctx, binding)
	if err != nil {
		return BulkResult{}, err
	}

	res := BulkResult{}
	for _, id := range itemIDs {
		li, err := u.getOwnedItem(ctx, e.ID, id)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
			continue
		}

		// Rebinding always re-pulls rates from the new source; the previous
		// numeric rate is never preserved. The display name cache follows.
		li.RoleID = binding.RoleID
		li.AssignedUserID = binding.UserID
		li.ResourceName = resourceName

		if err := u.refreshRatesAndRecalc(ctx, e, &li); err != nil {
			res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
			continue
		}
		updated, err := u.repo.Update(ctx, li)
		if err != nil {
			res.Failed = append(res.Failed, BulkFailure{ItemID: id, Reason: err.Error()})
			continue
		}
		res.Items = append(res.Items, updated)
	}
	return res, nil
}

func (u *LineItemUseCase) Delete(ctx context.Context, estimateID, itemID string) error {
	e, li, err := u.loadDraftItem(ctx, estimateID, itemID, "delete line item")
	if err != nil {
		return err
	}

	// Items already copied into a downstream artifact stay. No project link
	// means nothing downstream can reference the item yet.
	if e.ProjectID != nil {
		referenced, err := u.refChecker.LineItemReferenced(ctx, e.ID, li.ID)
		if err != nil {
			return err
		}
		if referenced {
			return &entities.RefIntegrityError{Entity: "line item", BlockingItems: 1}
		}
	}
	return u.repo.Delete(ctx, li.ID)
}

func (u *LineItemUseCase) loadDraftItem(ctx context.Context, estimateID, itemID, operation string) (entities.Estimate, entities.LineItem, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return entities.Estimate{}, entities.LineItem{}, err
	}
	if err := requireDraft(e, operation); err != nil {
		return entities.Estimate{}, entities.LineItem{}, err
	}
	li, err := u.getOwnedItem(ctx, e.ID, itemID)
	if err != nil {
		return entities.Estimate{}, entities.LineItem{}, err
	}
	return e, li, nil
}

func (u *LineItemUseCase) getOwnedItem(ctx context.Context, estimateID, itemID string) (entities.LineItem, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	li, err := u.repo.GetByID(ctx, itemID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if li.ID == "" || li.EstimateID != estimateID {
		return entities.LineItem{}, ErrLineItemNotFound
	}
	return li, nil
}

// refreshRatesAndRecalc is the single write path for derived fields: pull
// effective rates through the resolver, then reapply the calculator.
func (u *LineItemUseCase) refreshRatesAndRecalc(ctx context.Context, e entities.Estimate, li *entities.LineItem) error {
	overrides, err := u.catalog.ListRateOverridesByEstimateID(ctx, e.ID)
	if err != nil {
		return err
	}
	cat, err := buildCatalog(ctx, u.catalog, *li)
	if err != nil {
		return err
	}
	return resolveAndRecalc(e.Multipliers, li, cat, overrides)
}

func (u *LineItemUseCase) bindingName(ctx context.Context, binding ResourceBinding) (string, error) {
	switch {
	case binding.UserID != nil:
		user, err := u.catalog.GetUserByID(ctx, *binding.UserID)
		if err != nil {
			return "", err
		}
		if user.ID == "" {
			return "", &entities.ValidationError{Field: "user_id", Reason: "unknown user"}
		}
		return user.Name, nil
	case binding.RoleID != nil:
		role, err := u.catalog.GetRoleByID(ctx, *binding.RoleID)
		if err != nil {
			return "", err
		}
		if role.ID == "" {
			return "", &entities.ValidationError{Field: "role_id", Reason: "unknown role"}
		}
		return role.Name, nil
	default:
		return "", nil
	}
}

func applyLineItemDefaults(li *entities.LineItem) {
	if li.Factor == 0 {
		li.Factor = 1
	}
	if li.Size == "" {
		li.Size = entities.RatingSmall
	}
	if li.Complexity == "" {
		li.Complexity = entities.RatingSmall
	}
	if li.Confidence == "" {
		li.Confidence = entities.ConfidenceHigh
	}
}

func applyPatch(li *entities.LineItem, p LineItemPatch) error {
	if p.EpicID != nil {
		if *p.EpicID == "" {
			li.EpicID = nil
		} else {
			li.EpicID = p.EpicID
		}
	}
	if p.StageID != nil {
		if *p.StageID == "" {
			li.StageID = nil
		} else {
			li.StageID = p.StageID
		}
	}
	if p.Workstream != nil {
		li.Workstream = strings.TrimSpace(*p.Workstream)
	}
	if p.Week != nil {
		if *p.Week < 0 {
			return &entities.ValidationError{Field: "week", Reason: "must not be negative"}
		}
		li.Week = *p.Week
	}
	if p.Description != nil {
		li.Description = strings.TrimSpace(*p.Description)
	}
	if p.BaseHours != nil {
		li.BaseHours = *p.BaseHours
	}
	if p.Factor != nil {
		li.Factor = *p.Factor
	}
	if p.Rate != nil {
		li.Rate = *p.Rate
	}
	if p.CostRate != nil {
		li.CostRate = *p.CostRate
	}
	if p.Size != nil {
		li.Size = *p.Size
	}
	if p.Complexity != nil {
		li.Complexity = *p.Complexity
	}
	if p.Confidence != nil {
		li.Confidence = *p.Confidence
	}
	if p.Comments != nil {
		li.Comments = *p.Comments
	}
	if p.SortOrder != nil {
		li.SortOrder = *p.SortOrder
	}
	return nil
}
