package interfaces

import (
	"context"

	"scopeworks/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for LineItem.
//
// Every write is conditional on the row still existing (or not yet existing,
// for Create) so that concurrent read-modify-write cycles cannot clobber a
// recomputed derived block with stale values.

type ILineItemRepository interface {
	Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, id string) (entities.LineItem, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.LineItem, error)
	Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, id string) error
	// ReplaceWithSplit atomically deletes the parent and writes both
	// children (single transaction, no intermediate state).
	ReplaceWithSplit(ctx context.Context, parentID string, first, second entities.LineItem) error
	CountByEpicID(ctx context.Context, epicID string) (int, error)
	CountByStageID(ctx context.Context, stageID string) (int, error)
}
