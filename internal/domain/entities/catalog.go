package entities

// Role is a reusable generic resource archetype (e.g. "Senior Consultant").
//
// Storage model (DynamoDB):
//   - PK: id

type Role struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DefaultRackRate float64 `json:"default_rack_rate"`
	DefaultCostRate float64 `json:"default_cost_rate"`
}

// User is a named person from the staffing catalog. The catalog itself is
// owned by an external system; the engine only reads rates from it.

type User struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	DefaultBillingRate float64 `json:"default_billing_rate"`
	DefaultCostRate    float64 `json:"default_cost_rate"`
}

// RateOverride is a scoped exception that supersedes role/user defaults.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Scope is either a specific line item (LineItemID set) or a
// resource/estimate pairing (RoleID or UserID set). Overrides persist across
// resource rebinding until explicitly removed.

type RateOverride struct {
	ID         string  `json:"id"`
	EstimateID string  `json:"estimate_id"`
	LineItemID *string `json:"line_item_id,omitempty"`
	RoleID     *string `json:"role_id,omitempty"`
	UserID     *string `json:"user_id,omitempty"`
	Rate       float64 `json:"rate"`
	CostRate   float64 `json:"cost_rate"`
}
