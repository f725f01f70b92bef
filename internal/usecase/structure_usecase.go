package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

var (
	ErrInvalidMoveDirection = errors.New("invalid move direction")
	ErrStagesNotMergeable   = errors.New("stages must belong to the same epic")
)

// MoveDirection selects the neighbor to swap order values with.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// DuplicateStageGroup is one set of same-named stages under one epic,
// surfaced so the caller can offer a merge.
type DuplicateStageGroup struct {
	EpicID         string           `json:"epic_id"`
	NormalizedName string           `json:"normalized_name"`
	Stages         []entities.Stage `json:"stages"`
}

// MergeResult reports the outcome of a duplicate-stage merge.
type MergeResult struct {
	KeptStage       entities.Stage `json:"kept_stage"`
	ItemsReassigned int            `json:"items_reassigned"`
}

// IStructureUseCase owns the Epic/Stage hierarchy: ordering, rename,
// merge-on-duplicate, and reference-guarded deletion.

type IStructureUseCase interface {
	CreateEpic(ctx context.Context, estimateID, name string) (entities.Epic, error)
	RenameEpic(ctx context.Context, estimateID, epicID, name string) (entities.Epic, error)
	MoveEpic(ctx context.Context, estimateID, epicID string, direction MoveDirection) ([]entities.Epic, error)
	DeleteEpic(ctx context.Context, estimateID, epicID string) error

	CreateStage(ctx context.Context, estimateID, epicID, name string) (entities.Stage, error)
	RenameStage(ctx context.Context, estimateID, stageID, name string) (entities.Stage, error)
	MoveStage(ctx context.Context, estimateID, stageID string, direction MoveDirection) ([]entities.Stage, error)
	DeleteStage(ctx context.Context, estimateID, stageID string) error

	DuplicateStages(ctx context.Context, estimateID string) ([]DuplicateStageGroup, error)
	MergeStages(ctx context.Context, estimateID, keepStageID, deleteStageID string) (MergeResult, error)
}

type StructureUseCase struct {
	repo      interfaces.IStructureRepository
	items     interfaces.ILineItemRepository
	estimates interfaces.IEstimateRepository
}

var _ IStructureUseCase = (*StructureUseCase)(nil)

func NewStructureUseCase(
	repo interfaces.IStructureRepository,
	items interfaces.ILineItemRepository,
	estimates interfaces.IEstimateRepository,
) *StructureUseCase {
	return &StructureUseCase{repo: repo, items: items, estimates: estimates}
}

func (u *StructureUseCase) CreateEpic(ctx context.Context, estimateID, name string) (entities.Epic, error) {
	e, err := u.draftEstimate(ctx, estimateID, "create epic")
	if err != nil {
		return entities.Epic{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Epic{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}

	epics, err := u.repo.ListEpicsByEstimateID(ctx, e.ID)
	if err != nil {
		return entities.Epic{}, err
	}

	epic := entities.Epic{
		ID:         uuid.NewString(),
		EstimateID: e.ID,
		Name:       name,
		Order:      nextOrder(epicOrders(epics)),
	}
	return u.repo.CreateEpic(ctx, epic)
}

func (u *StructureUseCase) RenameEpic(ctx context.Context, estimateID, epicID, name string) (entities.Epic, error) {
	if _, err := u.draftEstimate(ctx, estimateID, "rename epic"); err != nil {
		return entities.Epic{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Epic{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}

	epic, err := u.getOwnedEpic(ctx, estimateID, epicID)
	if err != nil {
		return entities.Epic{}, err
	}
	epic.Name = name
	return u.repo.UpdateEpic(ctx, epic)
}

// MoveEpic swaps the order value of the epic and its neighbor in the given
// direction. Moving past the boundary is a no-op.
func (u *StructureUseCase) MoveEpic(ctx context.Context, estimateID, epicID string, direction MoveDirection) ([]entities.Epic, error) {
	if _, err := u.draftEstimate(ctx, estimateID, "reorder epics"); err != nil {
		return nil, err
	}
	if direction != MoveUp && direction != MoveDown {
		return nil, ErrInvalidMoveDirection
	}

	epics, err := u.repo.ListEpicsByEstimateID(ctx, estimateID)
	if err != nil {
		return nil, err
	}
	sort.Slice(epics, func(i, j int) bool { return epics[i].Order < epics[j].Order })

	idx := -1
	for i, epic := range epics {
		if epic.ID == epicID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrEpicNotFound
	}

	neighbor := idx - 1
	if direction == MoveDown {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(epics) {
		return epics, nil
	}

	epics[idx].Order, epics[neighbor].Order = epics[neighbor].Order, epics[idx].Order
	if _, err := u.repo.UpdateEpic(ctx, epics[idx]); err != nil {
		return nil, err
	}
	if _, err := u.repo.UpdateEpic(ctx, epics[neighbor]); err != nil {
		return nil, err
	}

	sort.Slice(epics, func(i, j int) bool { return epics[i].Order < epics[j].Order })
	return epics, nil
}

// DeleteEpic refuses when child stages or referencing line items exist; the
// error carries both counts so the caller can offer a resolution path.
func (u *StructureUseCase) DeleteEpic(ctx context.Context, estimateID, epicID string) error {
	if _, err := u.draftEstimate(ctx, estimateID, "delete epic"); err != nil {
		return err
	}
	epic, err := u.getOwnedEpic(ctx, estimateID, epicID)
	if err != nil {
		return err
	}

	stages, err := u.repo.ListStagesByEstimateID(ctx, estimateID)
	if err != nil {
		return err
	}
	childStages := 0
	for _, s := range stages {
		if s.EpicID == epic.ID {
			childStages++
		}
	}
	itemCount, err := u.items.CountByEpicID(ctx, epic.ID)
	if err != nil {
		return err
	}
	if childStages > 0 || itemCount > 0 {
		return &entities.RefIntegrityError{Entity: "epic", BlockingStages: childStages, BlockingItems: itemCount}
	}
	return u.repo.DeleteEpic(ctx, epic.ID)
}

func (u *StructureUseCase) CreateStage(ctx context.Context, estimateID, epicID, name string) (entities.Stage, error) {
	e, err := u.draftEstimate(ctx, estimateID, "create stage")
	if err != nil {
		return entities.Stage{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Stage{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}
	epic, err := u.getOwnedEpic(ctx, estimateID, epicID)
	if err != nil {
		return entities.Stage{}, err
	}

	stages, err := u.repo.ListStagesByEstimateID(ctx, e.ID)
	if err != nil {
		return entities.Stage{}, err
	}
	var siblingOrders []int
	for _, s := range stages {
		if s.EpicID == epic.ID {
			siblingOrders = append(siblingOrders, s.Order)
		}
	}

	stage := entities.Stage{
		ID:         uuid.NewString(),
		EstimateID: e.ID,
		EpicID:     epic.ID,
		Name:       name,
		Order:      nextOrder(siblingOrders),
	}
	return u.repo.CreateStage(ctx, stage)
}

func (u *StructureUseCase) RenameStage(ctx context.Context, estimateID, stageID, name string) (entities.Stage, error) {
	if _, err := u.draftEstimate(ctx, estimateID, "rename stage"); err != nil {
		return entities.Stage{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Stage{}, &entities.ValidationError{Field: "name", Reason: "is required"}
	}

	stage, err := u.getOwnedStage(ctx, estimateID, stageID)
	if err != nil {
		return entities.Stage{}, err
	}
	stage.Name = name
	return u.repo.UpdateStage(ctx, stage)
}

func (u *StructureUseCase) MoveStage(ctx context.Context, estimateID, stageID string, direction MoveDirection) ([]entities.Stage, error) {
	if _, err := u.draftEstimate(ctx, estimateID, "reorder stages"); err != nil {
		return nil, err
	}
	if direction != MoveUp && direction != MoveDown {
		return nil, ErrInvalidMoveDirection
	}

	stage, err := u.getOwnedStage(ctx, estimateID, stageID)
	if err != nil {
		return nil, err
	}
	all, err := u.repo.ListStagesByEstimateID(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	// Ordering is scoped to the parent epic.
	var siblings []entities.Stage
	for _, s := range all {
		if s.EpicID == stage.EpicID {
			siblings = append(siblings, s)
		}
	}
	sort.Slice(siblings, func(i, j int) bool { return siblings[i].Order < siblings[j].Order })

	idx := -1
	for i, s := range siblings {
		if s.ID == stage.ID {
			idx = i
			break
		}
	}
	// The sibling list comes off the eventually consistent index and may
	// not contain a just-created stage yet.
	if idx < 0 {
		return nil, ErrStageNotFound
	}

	neighbor := idx - 1
	if direction == MoveDown {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(siblings) {
		return siblings, nil
	}

	siblings[idx].Order, siblings[neighbor].Order = siblings[neighbor].Order, siblings[idx].Order
	if _, err := u.repo.UpdateStage(ctx, siblings[idx]); err != nil {
		return nil, err
	}
	if _, err := u.repo.UpdateStage(ctx, siblings[neighbor]); err != nil {
		return nil, err
	}

	sort.Slice(siblings, func(i, j int) bool { return siblings[i].Order < siblings[j].Order })
	return siblings, nil
}

func (u *StructureUseCase) DeleteStage(ctx context.Context, estimateID, stageID string) error {
	if _, err := u.draftEstimate(ctx, estimateID, "delete stage"); err != nil {
		return err
	}
	stage, err := u.getOwnedStage(ctx, estimateID, stageID)
	if err != nil {
		return err
	}

	itemCount, err := u.items.CountByStageID(ctx, stage.ID)
	if err != nil {
		return err
	}
	if itemCount > 0 {
		return &entities.RefIntegrityError{Entity: "stage", BlockingItems: itemCount}
	}
	return u.repo.DeleteStage(ctx, stage.ID)
}

// DuplicateStages reports groups of stages under the same epic whose names
// collide after trimming and lowercasing.
func (u *StructureUseCase) DuplicateStages(ctx context.Context, estimateID string) ([]DuplicateStageGroup, error) {
	if _, err := loadEstimate(ctx, u.estimates, estimateID); err != nil {
		return nil, err
	}
	stages, err := u.repo.ListStagesByEstimateID(ctx, estimateID)
	if err != nil {
		return nil, err
	}

	type groupKey struct {
		epicID string
		name   string
	}
	byKey := make(map[groupKey][]entities.Stage)
	for _, s := range stages {
		k := groupKey{epicID: s.EpicID, name: s.NormalizedName()}
		byKey[k] = append(byKey[k], s)
	}

	var groups []DuplicateStageGroup
	for k, members := range byKey {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Order < members[j].Order })
		groups = append(groups, DuplicateStageGroup{EpicID: k.epicID, NormalizedName: k.name, Stages: members})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].EpicID != groups[j].EpicID {
			return groups[i].EpicID < groups[j].EpicID
		}
		return groups[i].NormalizedName < groups[j].NormalizedName
	})
	return groups, nil
}

// MergeStages keeps one stage, reassigns every line item referencing the
// other, and deletes it in one transaction, so no item ever points at a
// deleted stage.
func (u *StructureUseCase) MergeStages(ctx context.Context, estimateID, keepStageID, deleteStageID string) (MergeResult, error) {
	if _, err := u.draftEstimate(ctx, estimateID, "merge stages"); err != nil {
		return MergeResult{}, err
	}
	if keepStageID == deleteStageID {
		return MergeResult{}, &entities.ValidationError{Field: "delete_stage_id", Reason: "must differ from keep_stage_id"}
	}

	keep, err := u.getOwnedStage(ctx, estimateID, keepStageID)
	if err != nil {
		return MergeResult{}, err
	}
	remove, err := u.getOwnedStage(ctx, estimateID, deleteStageID)
	if err != nil {
		return MergeResult{}, err
	}
	if keep.EpicID != remove.EpicID {
		return MergeResult{}, ErrStagesNotMergeable
	}

	items, err := u.items.ListByEstimateID(ctx, estimateID)
	if err != nil {
		return MergeResult{}, err
	}
	var reassign []string
	for _, li := range items {
		if li.StageID != nil && *li.StageID == remove.ID {
			reassign = append(reassign, li.ID)
		}
	}

	if err := u.repo.MergeStages(ctx, keep.ID, remove.ID, reassign); err != nil {
		return MergeResult{}, err
	}
	return MergeResult{KeptStage: keep, ItemsReassigned: len(reassign)}, nil
}

func (u *StructureUseCase) draftEstimate(ctx context.Context, estimateID, operation string) (entities.Estimate, error) {
	e, err := loadEstimate(ctx, u.estimates, estimateID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if err := requireDraft(e, operation); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func (u *StructureUseCase) getOwnedEpic(ctx context.Context, estimateID, epicID string) (entities.Epic, error) {
	epic, err := u.repo.GetEpicByID(ctx, strings.TrimSpace(epicID))
	if err != nil {
		return entities.Epic{}, err
	}
	if epic.ID == "" || epic.EstimateID != estimateID {
		return entities.Epic{}, ErrEpicNotFound
	}
	return epic, nil
}

func (u *StructureUseCase) getOwnedStage(ctx context.Context, estimateID, stageID string) (entities.Stage, error) {
	stage, err := u.repo.GetStageByID(ctx, strings.TrimSpace(stageID))
	if err != nil {
		return entities.Stage{}, err
	}
	if stage.ID == "" || stage.EstimateID != estimateID {
		return entities.Stage{}, ErrStageNotFound
	}
	return stage, nil
}

func epicOrders(epics []entities.Epic) []int {
	orders := make([]int, 0, len(epics))
	for _, e := range epics {
		orders = append(orders, e.Order)
	}
	return orders
}

func nextOrder(orders []int) int {
	next := 1
	for _, o := range orders {
		if o >= next {
			next = o + 1
		}
	}
	return next
}
