package interfaces

import (
	"context"

	"scopeworks/internal/domain/entities"
)

// IStructureRepository abstracts DynamoDB persistence for the Epic/Stage
// hierarchy.

type IStructureRepository interface {
	CreateEpic(ctx context.Context, e entities.Epic) (entities.Epic, error)
	GetEpicByID(ctx context.Context, id string) (entities.Epic, error)
	ListEpicsByEstimateID(ctx context.Context, estimateID string) ([]entities.Epic, error)
	UpdateEpic(ctx context.Context, e entities.Epic) (entities.Epic, error)
	DeleteEpic(ctx context.Context, id string) error

	CreateStage(ctx context.Context, s entities.Stage) (entities.Stage, error)
	GetStageByID(ctx context.Context, id string) (entities.Stage, error)
	ListStagesByEstimateID(ctx context.Context, estimateID string) ([]entities.Stage, error)
	UpdateStage(ctx context.Context, s entities.Stage) (entities.Stage, error)
	DeleteStage(ctx context.Context, id string) error

	// MergeStages reassigns the given line items to keepStageID and deletes
	// deleteStageID in one transaction, so no item ever references a
	// deleted stage.
	MergeStages(ctx context.Context, keepStageID, deleteStageID string, lineItemIDs []string) error
}
