package interfaces

import (
	"context"

	"scopeworks/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Not-found is signalled by a zero-value entity with an empty ID, not an
// error, so use cases can map it to their own sentinel.

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	// Update persists the full estimate with a condition that it still
	// exists; returns the stored state.
	Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
