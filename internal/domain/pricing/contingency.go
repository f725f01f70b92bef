package pricing

import (
	"sort"

	"scopeworks/internal/domain/entities"
)

// The decomposition attributes the gap between base and adjusted effort to
// the three risk factors in a fixed order: size, then complexity, then
// confidence. Each factor is measured against the hours already inflated by
// the factors before it, so the three components always sum exactly to the
// total contingency. The order is a policy constant; changing it changes
// per-factor attribution (never the total) and must not be done silently.

// ItemBreakdown is the per-line-item contingency decomposition, in hours,
// billed fees, and cost.
type ItemBreakdown struct {
	BaseHours float64 `json:"base_hours"` // baseHours * factor

	SizeHours       float64 `json:"size_hours"`
	ComplexityHours float64 `json:"complexity_hours"`
	ConfidenceHours float64 `json:"confidence_hours"`
	TotalHours      float64 `json:"total_hours"`

	SizeFees       float64 `json:"size_fees"`
	ComplexityFees float64 `json:"complexity_fees"`
	ConfidenceFees float64 `json:"confidence_fees"`
	TotalFees      float64 `json:"total_fees"`

	SizeCost       float64 `json:"size_cost"`
	ComplexityCost float64 `json:"complexity_cost"`
	ConfidenceCost float64 `json:"confidence_cost"`
	TotalCost      float64 `json:"total_cost"`
}

// Decompose attributes one line item's contingency to its three factors.
func Decompose(m entities.Multipliers, li entities.LineItem) ItemBreakdown {
	base := li.BaseHours * li.Factor
	size := m.Size(li.Size)
	complexity := m.Complexity(li.Complexity)
	confidence := m.Confidence(li.Confidence)

	sizeH := base * (size - 1)
	complexityH := base * size * (complexity - 1)
	confidenceH := base * size * complexity * (confidence - 1)
	totalH := base*size*complexity*confidence - base

	b := ItemBreakdown{
		BaseHours:       base,
		SizeHours:       sizeH,
		ComplexityHours: complexityH,
		ConfidenceHours: confidenceH,
		TotalHours:      totalH,
	}

	b.SizeFees = sizeH * li.Rate
	b.ComplexityFees = complexityH * li.Rate
	b.ConfidenceFees = confidenceH * li.Rate
	b.TotalFees = totalH * li.Rate

	b.SizeCost = sizeH * li.CostRate
	b.ComplexityCost = complexityH * li.CostRate
	b.ConfidenceCost = confidenceH * li.CostRate
	b.TotalCost = totalH * li.CostRate

	return b
}

func (b *ItemBreakdown) add(o ItemBreakdown) {
	b.BaseHours += o.BaseHours
	b.SizeHours += o.SizeHours
	b.ComplexityHours += o.ComplexityHours
	b.ConfidenceHours += o.ConfidenceHours
	b.TotalHours += o.TotalHours
	b.SizeFees += o.SizeFees
	b.ComplexityFees += o.ComplexityFees
	b.ConfidenceFees += o.ConfidenceFees
	b.TotalFees += o.TotalFees
	b.SizeCost += o.SizeCost
	b.ComplexityCost += o.ComplexityCost
	b.ConfidenceCost += o.ConfidenceCost
	b.TotalCost += o.TotalCost
}

// GroupBy selects the aggregation dimension for contingency insights.
type GroupBy string

const (
	GroupByEpic       GroupBy = "epic"
	GroupByStage      GroupBy = "stage"
	GroupByWorkstream GroupBy = "workstream"
	GroupByRole       GroupBy = "role"
)

func (g GroupBy) Valid() bool {
	switch g {
	case GroupByEpic, GroupByStage, GroupByWorkstream, GroupByRole:
		return true
	}
	return false
}

// UnassignedKey groups items with no value for the chosen dimension.
const UnassignedKey = ""

// GroupBreakdown is the aggregated decomposition for one group key.
type GroupBreakdown struct {
	// Key is the raw grouping value (epic/stage/role id, or workstream
	// text). Callers resolve it to a display label.
	Key   string `json:"key"`
	Items int    `json:"items"`
	ItemBreakdown
	// ContingencyPercent = totalContingencyHours / baseHours * 100.
	ContingencyPercent float64 `json:"contingency_percent"`
}

// Aggregate sums per-item decompositions by the chosen dimension. Groups are
// returned in stable key order with the unassigned bucket, if any, first.
func Aggregate(m entities.Multipliers, items []entities.LineItem, groupBy GroupBy) []GroupBreakdown {
	byKey := make(map[string]*GroupBreakdown)
	for _, li := range items {
		key := groupKey(li, groupBy)
		g, ok := byKey[key]
		if !ok {
			g = &GroupBreakdown{Key: key}
			byKey[key] = g
		}
		g.Items++
		g.add(Decompose(m, li))
	}

	out := make([]GroupBreakdown, 0, len(byKey))
	for _, g := range byKey {
		if g.BaseHours > 0 {
			g.ContingencyPercent = g.TotalHours / g.BaseHours * 100
		}
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func groupKey(li entities.LineItem, groupBy GroupBy) string {
	switch groupBy {
	case GroupByEpic:
		if li.EpicID != nil {
			return *li.EpicID
		}
	case GroupByStage:
		if li.StageID != nil {
			return *li.StageID
		}
	case GroupByWorkstream:
		return li.Workstream
	case GroupByRole:
		if li.RoleID != nil {
			return *li.RoleID
		}
	}
	return UnassignedKey
}
