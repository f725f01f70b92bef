package usecase

import (
	"context"
	"errors"
	"strings"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/domain/pricing"
	"scopeworks/internal/usecase/interfaces"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrLineItemNotFound  = errors.New("line item not found")
	ErrEpicNotFound      = errors.New("epic not found")
	ErrStageNotFound     = errors.New("stage not found")
	ErrMilestoneNotFound = errors.New("milestone not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
)

// loadEstimate fetches an estimate and maps the repo's zero-value-not-found
// convention to a sentinel.
func loadEstimate(ctx context.Context, repo interfaces.IEstimateRepository, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	e, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

// requireDraft gates every mutation on the lifecycle state.
func requireDraft(e entities.Estimate, operation string) error {
	if !e.Status.Mutable() {
		return &entities.StateError{Status: e.Status, Operation: operation}
	}
	return nil
}

// buildCatalog assembles the read-only role/user lookup for the items'
// current bindings. Missing catalog rows are left out; the resolver then
// falls back down the precedence ladder.
func buildCatalog(ctx context.Context, catalog interfaces.ICatalogRepository, items ...entities.LineItem) (pricing.Catalog, error) {
	cat := pricing.Catalog{
		Roles: map[string]entities.Role{},
		Users: map[string]entities.User{},
	}
	for _, li := range items {
		if li.RoleID != nil {
			if _, seen := cat.Roles[*li.RoleID]; !seen {
				r, err := catalog.GetRoleByID(ctx, *li.RoleID)
				if err != nil {
					return pricing.Catalog{}, err
				}
				if r.ID != "" {
					cat.Roles[r.ID] = r
				}
			}
		}
		if li.AssignedUserID != nil {
			if _, seen := cat.Users[*li.AssignedUserID]; !seen {
				u, err := catalog.GetUserByID(ctx, *li.AssignedUserID)
				if err != nil {
					return pricing.Catalog{}, err
				}
				if u.ID != "" {
					cat.Users[u.ID] = u
				}
			}
		}
	}
	return cat, nil
}

// resolveAndRecalc re-pulls the item's effective rates and recomputes the
// derived block in place. This is the single recompute path every mutation
// funnels through.
func resolveAndRecalc(m entities.Multipliers, li *entities.LineItem, cat pricing.Catalog, overrides []entities.RateOverride) error {
	resolved := pricing.ResolveRate(*li, cat, overrides)
	li.Rate = resolved.Rate
	li.CostRate = resolved.CostRate
	return pricing.Apply(m, li)
}

// computedTotal derives the estimate's own total: line items for detailed
// estimates, the block dollars for block estimates, with the fixed price
// override for fixed-pricing work.
func computedTotal(e entities.Estimate, items []entities.LineItem) float64 {
	if e.EstimateType == entities.EstimateTypeBlock {
		if e.BlockDollars != nil {
			return *e.BlockDollars
		}
		return 0
	}
	if e.PricingType == entities.PricingTypeFixed && e.FixedPrice != nil {
		return *e.FixedPrice
	}
	var total float64
	for _, li := range items {
		total += li.TotalAmount
	}
	return total
}

// quoteTotal is the customer-facing total: the presented override when set,
// otherwise the computed total.
func quoteTotal(e entities.Estimate, items []entities.LineItem) float64 {
	if e.PresentedTotal != nil {
		return *e.PresentedTotal
	}
	return computedTotal(e, items)
}
