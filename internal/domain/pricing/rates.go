package pricing

import "scopeworks/internal/domain/entities"

// Precedence labels where a line item's effective rates came from.
type Precedence string

const (
	PrecedenceOverride Precedence = "override"
	PrecedenceUser     Precedence = "user"
	PrecedenceRole     Precedence = "role"
	PrecedenceLineItem Precedence = "line_item"
)

// ResolvedRate is the Rate Resolver output.
type ResolvedRate struct {
	Rate       float64    `json:"rate"`
	CostRate   float64    `json:"cost_rate"`
	Precedence Precedence `json:"precedence"`
}

// Catalog is the read-only role/user lookup the resolver consults. It is
// assembled by the caller from the external staffing catalog.
type Catalog struct {
	Roles map[string]entities.Role
	Users map[string]entities.User
}

// ResolveRate determines a line item's effective billing and cost rates.
//
// Precedence, highest to lowest:
//  1. an explicit RateOverride scoped to this line item, or to the bound
//     resource within this estimate
//  2. the bound user's default billing/cost rates
//  3. the bound role's default rack/cost rates
//  4. the item's own stored rates (legacy/generic resource names)
func ResolveRate(li entities.LineItem, cat Catalog, overrides []entities.RateOverride) ResolvedRate {
	if ov, ok := matchOverride(li, overrides); ok {
		return ResolvedRate{Rate: ov.Rate, CostRate: ov.CostRate, Precedence: PrecedenceOverride}
	}

	if li.AssignedUserID != nil {
		if u, ok := cat.Users[*li.AssignedUserID]; ok {
			return ResolvedRate{Rate: u.DefaultBillingRate, CostRate: u.DefaultCostRate, Precedence: PrecedenceUser}
		}
	}

	if li.RoleID != nil {
		if r, ok := cat.Roles[*li.RoleID]; ok {
			return ResolvedRate{Rate: r.DefaultRackRate, CostRate: r.DefaultCostRate, Precedence: PrecedenceRole}
		}
	}

	return ResolvedRate{Rate: li.Rate, CostRate: li.CostRate, Precedence: PrecedenceLineItem}
}

// matchOverride prefers an item-scoped override, then a resource/estimate
// pairing for the currently bound role or user.
func matchOverride(li entities.LineItem, overrides []entities.RateOverride) (entities.RateOverride, bool) {
	for _, ov := range overrides {
		if ov.LineItemID != nil && *ov.LineItemID == li.ID {
			return ov, true
		}
	}
	for _, ov := range overrides {
		if ov.LineItemID != nil {
			continue
		}
		if ov.UserID != nil && li.AssignedUserID != nil && *ov.UserID == *li.AssignedUserID {
			return ov, true
		}
		if ov.RoleID != nil && li.RoleID != nil && *ov.RoleID == *li.RoleID {
			return ov, true
		}
	}
	return entities.RateOverride{}, false
}
