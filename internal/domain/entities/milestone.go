package entities

import "time"

// Milestone is one payment milestone of an estimate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Exactly one of Amount or Percentage is set, never both, never neither.
// Percentage milestones resolve against the estimate's presented total
// (or the computed quote total when no presented total is set).

type Milestone struct {
	ID         string     `json:"id"`
	EstimateID string     `json:"estimate_id"`
	Name       string     `json:"name"`
	Amount     *float64   `json:"amount,omitempty"`
	Percentage *float64   `json:"percentage,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	SortOrder  int        `json:"sort_order"`
}

// Validate enforces the exactly-one-of amount/percentage rule.
func (m Milestone) Validate() error {
	if m.Amount != nil && m.Percentage != nil {
		return &ValidationError{Field: "amount", Reason: "set either amount or percentage, not both"}
	}
	if m.Amount == nil && m.Percentage == nil {
		return &ValidationError{Field: "amount", Reason: "either amount or percentage is required"}
	}
	if m.Amount != nil && *m.Amount < 0 {
		return &ValidationError{Field: "amount", Reason: "amount must not be negative"}
	}
	if m.Percentage != nil && *m.Percentage < 0 {
		return &ValidationError{Field: "percentage", Reason: "percentage must not be negative"}
	}
	return nil
}
