package request

import (
	"time"

	"scopeworks/internal/usecase"
)

type CreateMilestoneRequest struct {
	Name       string     `json:"name" binding:"required"`
	Amount     *float64   `json:"amount"`
	Percentage *float64   `json:"percentage"`
	DueDate    *time.Time `json:"due_date"`
	SortOrder  int        `json:"sort_order"`
}

func (r CreateMilestoneRequest) ToInput() usecase.MilestoneInput {
	return usecase.MilestoneInput{
		Name:       r.Name,
		Amount:     r.Amount,
		Percentage: r.Percentage,
		DueDate:    r.DueDate,
		SortOrder:  r.SortOrder,
	}
}

type UpdateMilestoneRequest struct {
	Name       *string    `json:"name"`
	Amount     *float64   `json:"amount"`
	Percentage *float64   `json:"percentage"`
	DueDate    *time.Time `json:"due_date"`
	SortOrder  *int       `json:"sort_order"`
}

func (r UpdateMilestoneRequest) ToPatch() usecase.MilestonePatch {
	return usecase.MilestonePatch{
		Name:       r.Name,
		Amount:     r.Amount,
		Percentage: r.Percentage,
		DueDate:    r.DueDate,
		SortOrder:  r.SortOrder,
	}
}
