package request

import (
	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

type CreateLineItemRequest struct {
	EpicID         *string `json:"epic_id"`
	StageID        *string `json:"stage_id"`
	Workstream     string  `json:"workstream"`
	Week           int     `json:"week"`
	Description    string  `json:"description"`
	BaseHours      float64 `json:"base_hours" binding:"required"`
	Factor         float64 `json:"factor"`
	Rate           float64 `json:"rate"`
	CostRate       float64 `json:"cost_rate"`
	Size           string  `json:"size"`
	Complexity     string  `json:"complexity"`
	Confidence     string  `json:"confidence"`
	RoleID         *string `json:"role_id"`
	AssignedUserID *string `json:"assigned_user_id"`
	ResourceName   string  `json:"resource_name"`
	Comments       string  `json:"comments"`
	SortOrder      int     `json:"sort_order"`
}

func (r CreateLineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		EpicID:         r.EpicID,
		StageID:        r.StageID,
		Workstream:     r.Workstream,
		Week:           r.Week,
		Description:    r.Description,
		BaseHours:      r.BaseHours,
		Factor:         r.Factor,
		Rate:           r.Rate,
		CostRate:       r.CostRate,
		Size:           entities.Rating(r.Size),
		Complexity:     entities.Rating(r.Complexity),
		Confidence:     entities.Confidence(r.Confidence),
		RoleID:         r.RoleID,
		AssignedUserID: r.AssignedUserID,
		ResourceName:   r.ResourceName,
		Comments:       r.Comments,
		SortOrder:      r.SortOrder,
	}
}

// UpdateLineItemRequest is a sparse edit; absent fields are left untouched.
// An empty string for epic_id or stage_id moves the item to the unassigned
// bucket.
type UpdateLineItemRequest struct {
	EpicID      *string  `json:"epic_id"`
	StageID     *string  `json:"stage_id"`
	Workstream  *string  `json:"workstream"`
	Week        *int     `json:"week"`
	Description *string  `json:"description"`
	BaseHours   *float64 `json:"base_hours"`
	Factor      *float64 `json:"factor"`
	Rate        *float64 `json:"rate"`
	CostRate    *float64 `json:"cost_rate"`
	Size        *string  `json:"size"`
	Complexity  *string  `json:"complexity"`
	Confidence  *string  `json:"confidence"`
	Comments    *string  `json:"comments"`
	SortOrder   *int     `json:"sort_order"`
}

func (r UpdateLineItemRequest) ToPatch() usecase.LineItemPatch {
	patch := usecase.LineItemPatch{
		EpicID:      r.EpicID,
		StageID:     r.StageID,
		Workstream:  r.Workstream,
		Week:        r.Week,
		Description: r.Description,
		BaseHours:   r.BaseHours,
		Factor:      r.Factor,
		Rate:        r.Rate,
		CostRate:    r.CostRate,
		Comments:    r.Comments,
		SortOrder:   r.SortOrder,
	}
	if r.Size != nil {
		s := entities.Rating(*r.Size)
		patch.Size = &s
	}
	if r.Complexity != nil {
		cx := entities.Rating(*r.Complexity)
		patch.Complexity = &cx
	}
	if r.Confidence != nil {
		cf := entities.Confidence(*r.Confidence)
		patch.Confidence = &cf
	}
	return patch
}

type SplitLineItemRequest struct {
	FirstHours  float64 `json:"first_hours" binding:"required"`
	SecondHours float64 `json:"second_hours" binding:"required"`
}

type BulkUpdateLineItemsRequest struct {
	ItemIDs []string              `json:"item_ids" binding:"required,min=1"`
	Patch   UpdateLineItemRequest `json:"patch"`
}

// BulkAssignRequest rebinds the selected items to a role or user. Both ids
// nil clears the binding.
type BulkAssignRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required,min=1"`
	RoleID  *string  `json:"role_id"`
	UserID  *string  `json:"user_id"`
}

func (r BulkAssignRequest) ToBinding() usecase.ResourceBinding {
	return usecase.ResourceBinding{RoleID: r.RoleID, UserID: r.UserID}
}
