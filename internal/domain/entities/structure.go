package entities

import "strings"

// Epic is the top-level grouping of estimate work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Order is a dense integer unique within the estimate; reordering swaps the
// values of two neighbors rather than renumbering the whole set.

type Epic struct {
	ID         string `json:"id"`
	EstimateID string `json:"estimate_id"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
}

// Stage is a sub-grouping within an Epic.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (estimate_id-index): estimate_id
//
// Order is dense within the parent epic.

type Stage struct {
	ID         string `json:"id"`
	EstimateID string `json:"estimate_id"`
	EpicID     string `json:"epic_id"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
}

// NormalizedName is the duplicate-detection key: trimmed, lowercased.
func (s Stage) NormalizedName() string {
	return strings.ToLower(strings.TrimSpace(s.Name))
}

// DuplicateOf reports whether two stages collide under the same epic.
func (s Stage) DuplicateOf(other Stage) bool {
	return s.EpicID == other.EpicID && s.ID != other.ID && s.NormalizedName() == other.NormalizedName()
}
