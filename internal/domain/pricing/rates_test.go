package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scopeworks/internal/domain/entities"
)

func testCatalog() Catalog {
	return Catalog{
		Roles: map[string]entities.Role{
			"role-eng": {ID: "role-eng", Name: "Engineer", DefaultRackRate: 175, DefaultCostRate: 95},
		},
		Users: map[string]entities.User{
			"user-ada": {ID: "user-ada", Name: "Ada", DefaultBillingRate: 210, DefaultCostRate: 130},
		},
	}
}

func TestResolveRate_Precedence(t *testing.T) {
	cat := testCatalog()

	t.Run("stored rates when unassigned", func(t *testing.T) {
		li := entities.LineItem{ID: "li-1", Rate: 140, CostRate: 70, ResourceName: "Generic Analyst"}
		got := ResolveRate(li, cat, nil)
		assert.Equal(t, ResolvedRate{Rate: 140, CostRate: 70, Precedence: PrecedenceLineItem}, got)
	})

	t.Run("role defaults beat stored rates", func(t *testing.T) {
		li := entities.LineItem{ID: "li-1", Rate: 140, CostRate: 70, RoleID: strptr("role-eng")}
		got := ResolveRate(li, cat, nil)
		assert.Equal(t, ResolvedRate{Rate: 175, CostRate: 95, Precedence: PrecedenceRole}, got)
	})

	t.Run("user defaults beat role defaults", func(t *testing.T) {
		li := entities.LineItem{ID: "li-1", RoleID: strptr("role-eng"), AssignedUserID: strptr("user-ada")}
		got := ResolveRate(li, cat, nil)
		assert.Equal(t, ResolvedRate{Rate: 210, CostRate: 130, Precedence: PrecedenceUser}, got)
	})

	t.Run("item override beats everything", func(t *testing.T) {
		li := entities.LineItem{ID: "li-1", AssignedUserID: strptr("user-ada")}
		overrides := []entities.RateOverride{
			{ID: "ov-1", LineItemID: strptr("li-1"), Rate: 99, CostRate: 55},
		}
		got := ResolveRate(li, cat, overrides)
		assert.Equal(t, ResolvedRate{Rate: 99, CostRate: 55, Precedence: PrecedenceOverride}, got)
	})

	t.Run("resource pairing override applies to bound user", func(t *testing.T) {
		li := entities.LineItem{ID: "li-2", AssignedUserID: strptr("user-ada")}
		overrides := []entities.RateOverride{
			{ID: "ov-2", UserID: strptr("user-ada"), Rate: 190, CostRate: 120},
		}
		got := ResolveRate(li, cat, overrides)
		assert.Equal(t, ResolvedRate{Rate: 190, CostRate: 120, Precedence: PrecedenceOverride}, got)
	})

	t.Run("item-scoped override wins over pairing override", func(t *testing.T) {
		li := entities.LineItem{ID: "li-3", AssignedUserID: strptr("user-ada")}
		overrides := []entities.RateOverride{
			{ID: "ov-pair", UserID: strptr("user-ada"), Rate: 190, CostRate: 120},
			{ID: "ov-item", LineItemID: strptr("li-3"), Rate: 80, CostRate: 40},
		}
		got := ResolveRate(li, cat, overrides)
		assert.Equal(t, PrecedenceOverride, got.Precedence)
		assert.Equal(t, 80.0, got.Rate)
	})

	t.Run("unknown role falls back to stored rates", func(t *testing.T) {
		li := entities.LineItem{ID: "li-4", Rate: 130, CostRate: 65, RoleID: strptr("role-gone")}
		got := ResolveRate(li, cat, nil)
		assert.Equal(t, PrecedenceLineItem, got.Precedence)
		assert.Equal(t, 130.0, got.Rate)
	})
}
