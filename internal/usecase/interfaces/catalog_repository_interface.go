package interfaces

import (
	"context"

	"scopeworks/internal/domain/entities"
)

// ICatalogRepository reads the role/user catalog and rate overrides. The
// catalog is owned by an external staffing system; the engine only resolves
// rates from it.

type ICatalogRepository interface {
	GetRoleByID(ctx context.Context, id string) (entities.Role, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	ListRateOverridesByEstimateID(ctx context.Context, estimateID string) ([]entities.RateOverride, error)
}
