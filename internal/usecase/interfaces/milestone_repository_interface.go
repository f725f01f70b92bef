package interfaces

import (
	"context"

	"scopeworks/internal/domain/entities"
)

// IMilestoneRepository abstracts DynamoDB persistence for Milestone.

type IMilestoneRepository interface {
	Create(ctx context.Context, m entities.Milestone) (entities.Milestone, error)
	GetByID(ctx context.Context, id string) (entities.Milestone, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Milestone, error)
	Update(ctx context.Context, m entities.Milestone) (entities.Milestone, error)
	Delete(ctx context.Context, id string) error
}
