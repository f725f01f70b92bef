package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scopeworks/internal/domain/entities"
)

func strptr(s string) *string { return &s }

func sampleItems() []entities.LineItem {
	return []entities.LineItem{
		{
			ID: "li-1", EpicID: strptr("epic-a"), StageID: strptr("stage-1"),
			Workstream: "discovery", RoleID: strptr("role-pm"),
			BaseHours: 10, Factor: 1, Rate: 150, CostRate: 100,
			Size: entities.RatingMedium, Complexity: entities.RatingLarge,
			Confidence: entities.ConfidenceLow,
		},
		{
			ID: "li-2", EpicID: strptr("epic-a"),
			Workstream: "build",
			BaseHours:  40, Factor: 1, Rate: 185, CostRate: 110,
			Size: entities.RatingLarge, Complexity: entities.RatingMedium,
			Confidence: entities.ConfidenceMedium,
		},
		{
			ID: "li-3",
			Workstream: "build",
			BaseHours:  6, Factor: 4, Rate: 120, CostRate: 80,
			Size: entities.RatingSmall, Complexity: entities.RatingSmall,
			Confidence: entities.ConfidenceHigh,
		},
	}
}

func TestDecompose_ComponentsSumToTotal(t *testing.T) {
	m := entities.DefaultMultipliers()
	for _, li := range sampleItems() {
		b := Decompose(m, li)
		assert.InDelta(t, b.TotalHours, b.SizeHours+b.ComplexityHours+b.ConfidenceHours, 1e-9, "item %s", li.ID)
		assert.InDelta(t, b.TotalFees, b.SizeFees+b.ComplexityFees+b.ConfidenceFees, 1e-9, "item %s", li.ID)
		assert.InDelta(t, b.TotalCost, b.SizeCost+b.ComplexityCost+b.ConfidenceCost, 1e-9, "item %s", li.ID)
	}
}

func TestDecompose_MatchesAdjustedGap(t *testing.T) {
	m := entities.DefaultMultipliers()
	for _, li := range sampleItems() {
		d, err := Calculate(m, InputFromItem(li))
		require.NoError(t, err)
		b := Decompose(m, li)
		assert.InDelta(t, d.AdjustedHours-li.BaseHours*li.Factor, b.TotalHours, 1e-9, "item %s", li.ID)
	}
}

func TestDecompose_OrderedAttribution(t *testing.T) {
	// 10h medium/large/low: size sees raw base, complexity sees base
	// inflated by size, confidence sees base inflated by both.
	b := Decompose(entities.DefaultMultipliers(), sampleItems()[0])
	assert.InDelta(t, 0.5, b.SizeHours, 1e-9)          // 10 * 0.05
	assert.InDelta(t, 1.05, b.ComplexityHours, 1e-9)   // 10 * 1.05 * 0.10
	assert.InDelta(t, 2.31, b.ConfidenceHours, 1e-9)   // 10 * 1.05 * 1.10 * 0.20
	assert.InDelta(t, 3.86, b.TotalHours, 1e-9)
}

func TestDecompose_NoRiskMeansNoContingency(t *testing.T) {
	b := Decompose(entities.DefaultMultipliers(), sampleItems()[2])
	assert.Zero(t, b.TotalHours)
	assert.Zero(t, b.TotalFees)
	assert.Equal(t, 24.0, b.BaseHours) // factor folded into the base
}

func TestAggregate_ByEpic(t *testing.T) {
	m := entities.DefaultMultipliers()
	groups := Aggregate(m, sampleItems(), GroupByEpic)

	require.Len(t, groups, 2)
	// Unassigned bucket sorts first (empty key).
	assert.Equal(t, UnassignedKey, groups[0].Key)
	assert.Equal(t, 1, groups[0].Items)
	assert.Equal(t, "epic-a", groups[1].Key)
	assert.Equal(t, 2, groups[1].Items)

	for _, g := range groups {
		assert.InDelta(t, g.TotalHours, g.SizeHours+g.ComplexityHours+g.ConfidenceHours, 1e-9)
	}
}

func TestAggregate_ByWorkstream(t *testing.T) {
	groups := Aggregate(entities.DefaultMultipliers(), sampleItems(), GroupByWorkstream)
	require.Len(t, groups, 2)
	assert.Equal(t, "build", groups[0].Key)
	assert.Equal(t, 2, groups[0].Items)
	assert.Equal(t, "discovery", groups[1].Key)
}

func TestAggregate_ContingencyPercent(t *testing.T) {
	groups := Aggregate(entities.DefaultMultipliers(), sampleItems()[:1], GroupByEpic)
	require.Len(t, groups, 1)
	assert.InDelta(t, 38.6, groups[0].ContingencyPercent, 1e-9)
}

func TestAggregate_WholeEstimateReconciles(t *testing.T) {
	m := entities.DefaultMultipliers()
	items := sampleItems()

	var wantTotal float64
	for _, li := range items {
		d, err := Calculate(m, InputFromItem(li))
		require.NoError(t, err)
		wantTotal += d.AdjustedHours - li.BaseHours*li.Factor
	}

	var gotTotal float64
	for _, g := range Aggregate(m, items, GroupByRole) {
		gotTotal += g.TotalHours
	}
	assert.InDelta(t, wantTotal, gotTotal, 1e-9)
}
