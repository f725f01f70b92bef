package response

import (
	"time"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

type EstimateResponse struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	Version        int                  `json:"version"`
	PricingType    string               `json:"pricing_type"`
	EstimateType   string               `json:"estimate_type"`
	Status         string               `json:"status"`
	Multipliers    entities.Multipliers `json:"multipliers"`
	PresentedTotal *float64             `json:"presented_total,omitempty"`
	FixedPrice     *float64             `json:"fixed_price,omitempty"`
	BlockHours     *float64             `json:"block_hours,omitempty"`
	BlockDollars   *float64             `json:"block_dollars,omitempty"`
	ReferralFee    entities.ReferralFee `json:"referral_fee"`
	ProjectID      *string              `json:"project_id,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:             e.ID,
		Name:           e.Name,
		Version:        e.Version,
		PricingType:    string(e.PricingType),
		EstimateType:   string(e.EstimateType),
		Status:         string(e.Status),
		Multipliers:    e.Multipliers,
		PresentedTotal: e.PresentedTotal,
		FixedPrice:     e.FixedPrice,
		BlockHours:     e.BlockHours,
		BlockDollars:   e.BlockDollars,
		ReferralFee:    e.ReferralFee,
		ProjectID:      e.ProjectID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

type RecalculationResponse struct {
	ItemsUpdated int      `json:"items_updated"`
	ItemsFailed  int      `json:"items_failed"`
	Failures     []string `json:"failures,omitempty"`
	Message      string   `json:"message"`
}

func FromRecalculation(r usecase.RecalculationResult) RecalculationResponse {
	return RecalculationResponse{
		ItemsUpdated: r.ItemsUpdated,
		ItemsFailed:  r.ItemsFailed,
		Failures:     r.Failures,
		Message:      r.Message,
	}
}

// ContingencyGroupResponse is one row of the contingency insight report.
type ContingencyGroupResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Items int    `json:"items"`

	BaseHours float64 `json:"base_hours"`

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

	ContingencyPercent float64 `json:"contingency_percent"`
}

func FromContingencyGroups(groups []usecase.ContingencyGroup) []ContingencyGroupResponse {
	out := make([]ContingencyGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ContingencyGroupResponse{
			Key:                g.Key,
			Label:              g.Label,
			Items:              g.Items,
			BaseHours:          g.BaseHours,
			SizeHours:          g.SizeHours,
			ComplexityHours:    g.ComplexityHours,
			ConfidenceHours:    g.ConfidenceHours,
			TotalHours:         g.TotalHours,
			SizeFees:           g.SizeFees,
			ComplexityFees:     g.ComplexityFees,
			ConfidenceFees:     g.ConfidenceFees,
			TotalFees:          g.TotalFees,
			SizeCost:           g.SizeCost,
			ComplexityCost:     g.ComplexityCost,
			ConfidenceCost:     g.ConfidenceCost,
			TotalCost:          g.TotalCost,
			ContingencyPercent: g.ContingencyPercent,
		})
	}
	return out
}
