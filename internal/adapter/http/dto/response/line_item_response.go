package response

import (
	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

type LineItemResponse struct {
	ID             string  `json:"id"`
	EstimateID     string  `json:"estimate_id"`
	EpicID         *string `json:"epic_id,omitempty"`
	StageID        *string `json:"stage_id,omitempty"`
	Workstream     string  `json:"workstream,omitempty"`
	Week           int     `json:"week"`
	Description    string  `json:"description"`
	BaseHours      float64 `json:"base_hours"`
	Factor         float64 `json:"factor"`
	Rate           float64 `json:"rate"`
	CostRate       float64 `json:"cost_rate"`
	Size           string  `json:"size"`
	Complexity     string  `json:"complexity"`
	Confidence     string  `json:"confidence"`
	RoleID         *string `json:"role_id,omitempty"`
	AssignedUserID *string `json:"assigned_user_id,omitempty"`
	ResourceName   string  `json:"resource_name,omitempty"`
	Comments       string  `json:"comments,omitempty"`
	SortOrder      int     `json:"sort_order"`

	AdjustedHours float64 `json:"adjusted_hours"`
	TotalAmount   float64 `json:"total_amount"`
	TotalCost     float64 `json:"total_cost"`
	Margin        float64 `json:"margin"`
	MarginPercent float64 `json:"margin_percent"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:             li.ID,
		EstimateID:     li.EstimateID,
		EpicID:         li.EpicID,
		StageID:        li.StageID,
		Workstream:     li.Workstream,
		Week:           li.Week,
		Description:    li.Description,
		BaseHours:      li.BaseHours,
		Factor:         li.Factor,
		Rate:           li.Rate,
		CostRate:       li.CostRate,
		Size:           string(li.Size),
		Complexity:     string(li.Complexity),
		Confidence:     string(li.Confidence),
		RoleID:         li.RoleID,
		AssignedUserID: li.AssignedUserID,
		ResourceName:   li.ResourceName,
		Comments:       li.Comments,
		SortOrder:      li.SortOrder,
		AdjustedHours:  li.AdjustedHours,
		TotalAmount:    li.TotalAmount,
		TotalCost:      li.TotalCost,
		Margin:         li.Margin,
		MarginPercent:  li.MarginPercent,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

type BulkFailureResponse struct {
	ItemID string `json:"item_id"`
	Reason string `json:"reason"`
}

type BulkResultResponse struct {
	Items  []LineItemResponse    `json:"items"`
	Failed []BulkFailureResponse `json:"failed,omitempty"`
}

func FromBulkResult(r usecase.BulkResult) BulkResultResponse {
	out := BulkResultResponse{Items: FromLineItems(r.Items)}
	for _, f := range r.Failed {
		out.Failed = append(out.Failed, BulkFailureResponse{ItemID: f.ItemID, Reason: f.Reason})
	}
	return out
}
