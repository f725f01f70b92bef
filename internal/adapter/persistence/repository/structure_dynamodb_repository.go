package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

const (
	defaultEpicsTableName  = "epics"
	defaultStagesTableName = "stages"
)

type epicItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id"`
	Name       string `dynamodbav:"name"`
	Order      int    `dynamodbav:"display_order"`
}

type stageItem struct {
	ID         string `dynamodbav:"id"`
	EstimateID string `dynamodbav:"estimate_id"`
	EpicID     string `dynamodbav:"epic_id"`
	Name       string `dynamodbav:"name"`
	Order      int    `dynamodbav:"display_order"`
}

// StructureDynamoRepository persists the epic/stage hierarchy across two
// tables, plus a transactional merge that touches the line items table.
//
// Table requirements (epics and stages):
//   - PK: id (string)
//   - GSI estimate_id-index: PK estimate_id

type StructureDynamoRepository struct {
	ddb            *dynamodb.Client
	epicsTable     string
	stagesTable    string
	lineItemsTable string
}

var _ interfaces.IStructureRepository = (*StructureDynamoRepository)(nil)

func NewStructureDynamoRepository(ddb *dynamodb.Client, epicsTable, stagesTable, lineItemsTable string) *StructureDynamoRepository {
	return &StructureDynamoRepository{
		ddb:            ddb,
		epicsTable:     firstNonEmpty(epicsTable, defaultEpicsTableName),
		stagesTable:    firstNonEmpty(stagesTable, defaultStagesTableName),
		lineItemsTable: firstNonEmpty(lineItemsTable, defaultLineItemsTableName),
	}
}

func (r *StructureDynamoRepository) CreateEpic(ctx context.Context, e entities.Epic) (entities.Epic, error) {
	if err := r.putNew(ctx, r.epicsTable, toEpicItem(e)); err != nil {
		return entities.Epic{}, err
	}
	return e, nil
}

func (r *StructureDynamoRepository) GetEpicByID(ctx context.Context, id string) (entities.Epic, error) {
	raw, err := r.getByID(ctx, r.epicsTable, id)
	if err != nil || raw == nil {
		return entities.Epic{}, err
	}

	var it epicItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Epic{}, err
	}
	return fromEpicItem(it), nil
}

func (r *StructureDynamoRepository) ListEpicsByEstimateID(ctx context.Context, estimateID string) ([]entities.Epic, error) {
	rows, err := r.queryByEstimateID(ctx, r.epicsTable, estimateID)
	if err != nil {
		return nil, err
	}

	epics := make([]entities.Epic, 0, len(rows))
	for _, raw := range rows {
		var it epicItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		epics = append(epics, fromEpicItem(it))
	}

	sort.SliceStable(epics, func(i, j int) bool {
		return epics[i].Order < epics[j].Order
	})
	return epics, nil
}

func (r *StructureDynamoRepository) UpdateEpic(ctx context.Context, e entities.Epic) (entities.Epic, error) {
	ok, err := r.putExisting(ctx, r.epicsTable, toEpicItem(e))
	if err != nil || !ok {
		return entities.Epic{}, err
	}
	return e, nil
}

func (r *StructureDynamoRepository) DeleteEpic(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.epicsTable, id)
}

func (r *StructureDynamoRepository) CreateStage(ctx context.Context, s entities.Stage) (entities.Stage, error) {
	if err := r.putNew(ctx, r.stagesTable, toStageItem(s)); err != nil {
		return entities.Stage{}, err
	}
	return s, nil
}

func (r *StructureDynamoRepository) GetStageByID(ctx context.Context, id string) (entities.Stage, error) {
	raw, err := r.getByID(ctx, r.stagesTable, id)
	if err != nil || raw == nil {
		return entities.Stage{}, err
	}

	var it stageItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.Stage{}, err
	}
	return fromStageItem(it), nil
}

func (r *StructureDynamoRepository) ListStagesByEstimateID(ctx context.Context, estimateID string) ([]entities.Stage, error) {
	rows, err := r.queryByEstimateID(ctx, r.stagesTable, estimateID)
	if err != nil {
		return nil, err
	}

	stages := make([]entities.Stage, 0, len(rows))
	for _, raw := range rows {
		var it stageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		stages = append(stages, fromStageItem(it))
	}

	sort.SliceStable(stages, func(i, j int) bool {
		if stages[i].EpicID != stages[j].EpicID {
			return stages[i].EpicID < stages[j].EpicID
		}
		return stages[i].Order < stages[j].Order
	})
	return stages, nil
}

func (r *StructureDynamoRepository) UpdateStage(ctx context.Context, s entities.Stage) (entities.Stage, error) {
	ok, err := r.putExisting(ctx, r.stagesTable, toStageItem(s))
	if err != nil || !ok {
		return entities.Stage{}, err
	}
	return s, nil
}

func (r *StructureDynamoRepository) DeleteStage(ctx context.Context, id string) error {
	return r.deleteByID(ctx, r.stagesTable, id)
}

// MergeStages retargets every given line item to keepStageID and removes the
// losing stage in a single transaction. Item updates are conditional on the
// rows still existing so a concurrent line item delete aborts the merge.
func (r *StructureDynamoRepository) MergeStages(ctx context.Context, keepStageID, deleteStageID string, lineItemIDs []string) error {
	tx := make([]types.TransactWriteItem, 0, len(lineItemIDs)+1)

	for _, itemID := range lineItemIDs {
		tx = append(tx, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.lineItemsTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: itemID},
				},
				UpdateExpression:    aws.String("SET stage_id = :sid"),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{
					"#id": "id",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":sid": &types.AttributeValueMemberS{Value: keepStageID},
				},
			},
		})
	}

	tx = append(tx, types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.stagesTable),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: deleteStageID},
			},
		},
	})

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: tx,
	})
	return err
}

func (r *StructureDynamoRepository) putNew(ctx context.Context, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// putExisting reports false when the row no longer exists.
func (r *StructureDynamoRepository) putExisting(ctx context.Context, table string, item any) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *StructureDynamoRepository) getByID(ctx context.Context, table, id string) (map[string]types.AttributeValue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	return out.Item, nil
}

func (r *StructureDynamoRepository) queryByEstimateID(ctx context.Context, table, estimateID string) ([]map[string]types.AttributeValue, error) {
	rows := make([]map[string]types.AttributeValue, 0)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			IndexName:              aws.String(estimateIDIndexName),
			KeyConditionExpression: aws.String("estimate_id = :eid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":eid": &types.AttributeValueMemberS{Value: estimateID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}

		rows = append(rows, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return rows, nil
}

func (r *StructureDynamoRepository) deleteByID(ctx context.Context, table, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEpicItem(e entities.Epic) epicItem {
	return epicItem{ID: e.ID, EstimateID: e.EstimateID, Name: e.Name, Order: e.Order}
}

func fromEpicItem(it epicItem) entities.Epic {
	return entities.Epic{ID: it.ID, EstimateID: it.EstimateID, Name: it.Name, Order: it.Order}
}

func toStageItem(s entities.Stage) stageItem {
	return stageItem{ID: s.ID, EstimateID: s.EstimateID, EpicID: s.EpicID, Name: s.Name, Order: s.Order}
}

func fromStageItem(it stageItem) entities.Stage {
	return entities.Stage{ID: it.ID, EstimateID: it.EstimateID, EpicID: it.EpicID, Name: it.Name, Order: it.Order}
}
