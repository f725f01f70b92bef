package interfaces

import (
	"context"
	"time"

	"scopeworks/internal/domain/entities"
)

// ProjectSnapshot is the one-way structural copy handed to the external
// project-creation service when an estimate is approved.
type ProjectSnapshot struct {
	EstimateID      string              `json:"estimate_id"`
	EstimateName    string              `json:"estimate_name"`
	KickoffDate     *time.Time          `json:"kickoff_date,omitempty"`
	CopyAssignments bool                `json:"copy_assignments"`
	Epics           []entities.Epic     `json:"epics"`
	Stages          []entities.Stage    `json:"stages"`
	LineItems       []entities.LineItem `json:"line_items"`
}

// IProjectGateway is the external project-creation collaborator, invoked at
// most once per approval.

type IProjectGateway interface {
	CreateProject(ctx context.Context, snap ProjectSnapshot) (projectID string, err error)
}

// IArtifactRefChecker answers whether a downstream invoice/project artifact
// still references a line item, which blocks deletion.

type IArtifactRefChecker interface {
	LineItemReferenced(ctx context.Context, estimateID, lineItemID string) (bool, error)
}
