package response

import (
	"testing"
	"time"

	"scopeworks/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	now := time.Now().UTC()
	presented := 25000.0
	projectID := "proj-9"
	e := entities.Estimate{
		ID:             "est-1",
		Name:           "Website Replatform",
		Version:        3,
		PricingType:    entities.PricingTypeHourly,
		EstimateType:   entities.EstimateTypeDetailed,
		Status:         entities.EstimateStatusApproved,
		Multipliers:    entities.DefaultMultipliers(),
		PresentedTotal: &presented,
		ProjectID:      &projectID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	res := FromEstimate(e)
	if res.ID != "est-1" || res.Name != "Website Replatform" || res.Version != 3 {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Status != "approved" || res.PricingType != "hourly" || res.EstimateType != "detailed" {
		t.Fatalf("unexpected enum fields: %+v", res)
	}
	if res.Multipliers != entities.DefaultMultipliers() {
		t.Fatalf("unexpected multipliers: %+v", res.Multipliers)
	}
	if res.PresentedTotal == nil || *res.PresentedTotal != 25000 {
		t.Fatalf("unexpected presented total: %+v", res.PresentedTotal)
	}
	if res.ProjectID == nil || *res.ProjectID != "proj-9" {
		t.Fatalf("unexpected project id: %+v", res.ProjectID)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromLineItem(t *testing.T) {
	epicID := "epic-1"
	li := entities.LineItem{
		ID: "li-1", EstimateID: "est-1", EpicID: &epicID,
		BaseHours: 10, Factor: 1, Rate: 150, CostRate: 100,
		Size: entities.RatingMedium, Complexity: entities.RatingLarge, Confidence: entities.ConfidenceLow,
		AdjustedHours: 13.86, TotalAmount: 2079, TotalCost: 1386, Margin: 693, MarginPercent: 33.33,
	}

	res := FromLineItem(li)
	if res.ID != "li-1" || res.EpicID == nil || *res.EpicID != "epic-1" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Size != "medium" || res.Complexity != "large" || res.Confidence != "low" {
		t.Fatalf("unexpected ratings: %+v", res)
	}
	if res.AdjustedHours != 13.86 || res.TotalAmount != 2079 || res.Margin != 693 {
		t.Fatalf("unexpected derived fields: %+v", res)
	}
}
