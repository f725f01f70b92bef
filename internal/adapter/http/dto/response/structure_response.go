package response

import (
	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase"
)

type EpicResponse struct {
	ID         string `json:"id"`
	EstimateID string `json:"estimate_id"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
}

func FromEpic(e entities.Epic) EpicResponse {
	return EpicResponse{ID: e.ID, EstimateID: e.EstimateID, Name: e.Name, Order: e.Order}
}

func FromEpics(epics []entities.Epic) []EpicResponse {
	out := make([]EpicResponse, 0, len(epics))
	for _, e := range epics {
		out = append(out, FromEpic(e))
	}
	return out
}

type StageResponse struct {
	ID         string `json:"id"`
	EstimateID string `json:"estimate_id"`
	EpicID     string `json:"epic_id"`
	Name       string `json:"name"`
	Order      int    `json:"order"`
}

func FromStage(s entities.Stage) StageResponse {
	return StageResponse{ID: s.ID, EstimateID: s.EstimateID, EpicID: s.EpicID, Name: s.Name, Order: s.Order}
}

func FromStages(stages []entities.Stage) []StageResponse {
	out := make([]StageResponse, 0, len(stages))
	for _, s := range stages {
		out = append(out, FromStage(s))
	}
	return out
}

type DuplicateStageGroupResponse struct {
	EpicID         string          `json:"epic_id"`
	NormalizedName string          `json:"normalized_name"`
	Stages         []StageResponse `json:"stages"`
}

func FromDuplicateStageGroups(groups []usecase.DuplicateStageGroup) []DuplicateStageGroupResponse {
	out := make([]DuplicateStageGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, DuplicateStageGroupResponse{
			EpicID:         g.EpicID,
			NormalizedName: g.NormalizedName,
			Stages:         FromStages(g.Stages),
		})
	}
	return out
}

type MergeResultResponse struct {
	KeptStage       StageResponse `json:"kept_stage"`
	ItemsReassigned int           `json:"items_reassigned"`
}

func FromMergeResult(r usecase.MergeResult) MergeResultResponse {
	return MergeResultResponse{KeptStage: FromStage(r.KeptStage), ItemsReassigned: r.ItemsReassigned}
}
