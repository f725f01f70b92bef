package response

import (
	"time"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

type MilestoneResponse struct {
	ID         string     `json:"id"`
	EstimateID string     `json:"estimate_id"`
	Name       string     `json:"name"`
	Amount     *float64   `json:"amount,omitempty"`
	Percentage *float64   `json:"percentage,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	SortOrder  int        `json:"sort_order"`
}

func FromMilestone(m entities.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:         m.ID,
		EstimateID: m.EstimateID,
		Name:       m.Name,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		DueDate:    m.DueDate,
		SortOrder:  m.SortOrder,
	}
}

func FromMilestones(milestones []entities.Milestone) []MilestoneResponse {
	out := make([]MilestoneResponse, 0, len(milestones))
	for _, m := range milestones {
		out = append(out, FromMilestone(m))
	}
	return out
}

type ReconciliationResponse struct {
	Matches        bool    `json:"matches"`
	Delta          float64 `json:"delta"`
	QuoteTotal     float64 `json:"quote_total"`
	MilestoneTotal float64 `json:"milestone_total"`
}

func FromReconciliation(r usecase.ReconciliationReport) ReconciliationResponse {
	return ReconciliationResponse{
		Matches:        r.Matches,
		Delta:          r.Delta,
		QuoteTotal:     r.QuoteTotal,
		MilestoneTotal: r.MilestoneTotal,
	}
}
