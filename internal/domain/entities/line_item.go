package entities

// Rating is the size/complexity scale. Small carries no multiplier.

type Rating string

const (
	RatingSmall  Rating = "small"
	RatingMedium Rating = "medium"
	RatingLarge  Rating = "large"
)

func (r Rating) Valid() bool {
	return r == RatingSmall || r == RatingMedium || r == RatingLarge
}

// Confidence is the estimator's confidence scale. High carries no multiplier.

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

func (c Confidence) Valid() bool {
	return c == ConfidenceHigh || c == ConfidenceMedium || c == ConfidenceLow
}

// LineItem is one effort row of a detailed estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Resource binding is one of: unassigned, RoleID, or AssignedUserID.
// ResourceName is a denormalized display cache refreshed on every rebinding;
// it is never a source of truth for rates.
//
// The derived block (AdjustedHours through MarginPercent) must always equal
// the calculator output for the current inputs. Any write that touches a
// calculation input recomputes the block before persisting.

type LineItem struct {
	ID         string  `json:"id"`
	EstimateID string  `json:"estimate_id"`
	EpicID     *string `json:"epic_id,omitempty"`
	StageID    *string `json:"stage_id,omitempty"`
	Workstream string  `json:"workstream"`

	// Week 0 means pre-kickoff work.
	Week int `json:"week"`

	Description string     `json:"description"`
	BaseHours   float64    `json:"base_hours"`
	Factor      float64    `json:"factor"`
	Rate        float64    `json:"rate"`
	CostRate    float64    `json:"cost_rate"`
	Size        Rating     `json:"size"`
	Complexity  Rating     `json:"complexity"`
	Confidence  Confidence `json:"confidence"`

	RoleID         *string `json:"role_id,omitempty"`
	AssignedUserID *string `json:"assigned_user_id,omitempty"`
	ResourceName   string  `json:"resource_name"`

	Comments  string `json:"comments"`
	SortOrder int    `json:"sort_order"`

	AdjustedHours float64 `json:"adjusted_hours"`
	TotalAmount   float64 `json:"total_amount"`
	TotalCost     float64 `json:"total_cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"margin_percent"`
}

// Unassigned reports whether the item has no role or user binding.
func (li LineItem) Unassigned() bool {
	return li.RoleID == nil && li.AssignedUserID == nil
}
