package request

type CreateEpicRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}

type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

type CreateStageRequest struct {
	EpicID string `json:"epic_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

type MergeStagesRequest struct {
	KeepStageID   string `json:"keep_stage_id" binding:"required"`
	DeleteStageID string `json:"delete_stage_id" binding:"required"`
}
