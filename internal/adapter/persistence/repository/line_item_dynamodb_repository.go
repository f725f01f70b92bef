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
	defaultLineItemsTableName = "line_items"

	estimateIDIndexName = "estimate_id-index"
	epicIDIndexName     = "epic_id-index"
	stageIDIndexName    = "stage_id-index"
)

type lineItemItem struct {
	ID             string  `dynamodbav:"id"`
	EstimateID     string  `dynamodbav:"estimate_id"`
	EpicID         *string `dynamodbav:"epic_id,omitempty"`
	StageID        *string `dynamodbav:"stage_id,omitempty"`
	Workstream     string  `dynamodbav:"workstream,omitempty"`
	Week           int     `dynamodbav:"week"`
	Description    string  `dynamodbav:"description,omitempty"`
	BaseHours      float64 `dynamodbav:"base_hours"`
	Factor         float64 `dynamodbav:"factor"`
	Rate           float64 `dynamodbav:"rate"`
	CostRate       float64 `dynamodbav:"cost_rate"`
	Size           string  `dynamodbav:"size"`
	Complexity     string  `dynamodbav:"complexity"`
	Confidence     string  `dynamodbav:"confidence"`
	RoleID         *string `dynamodbav:"role_id,omitempty"`
	AssignedUserID *string `dynamodbav:"assigned_user_id,omitempty"`
	ResourceName   string  `dynamodbav:"resource_name,omitempty"`
	Comments       string  `dynamodbav:"comments,omitempty"`
	SortOrder      int     `dynamodbav:"sort_order"`
	AdjustedHours  float64 `dynamodbav:"adjusted_hours"`
	TotalAmount    float64 `dynamodbav:"total_amount"`
	TotalCost      float64 `dynamodbav:"total_cost"`
	Margin         float64 `dynamodbav:"margin"`
	MarginPercent  float64 `dynamodbav:"margin_percent"`
}

// LineItemDynamoRepository persists LineItem rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index: PK estimate_id
//   - GSI epic_id-index: PK epic_id (sparse)
//   - GSI stage_id-index: PK stage_id (sparse)

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client, tableName string) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: firstNonEmpty(tableName, defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(li))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.LineItem, error) {
	items := make([]entities.LineItem, 0)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
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

		for _, raw := range out.Items {
			var it lineItemItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromLineItemItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder < items[j].SortOrder
	})
	return items, nil
}

func (r *LineItemDynamoRepository) Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(li))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.LineItem{}, nil
		}
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ReplaceWithSplit deletes the parent and writes both children in one
// transaction. The delete is conditional on the parent still existing, so a
// concurrent delete aborts the whole split.
func (r *LineItemDynamoRepository) ReplaceWithSplit(ctx context.Context, parentID string, first, second entities.LineItem) error {
	firstAV, err := attributevalue.MarshalMap(toLineItemItem(first))
	if err != nil {
		return err
	}
	secondAV, err := attributevalue.MarshalMap(toLineItemItem(second))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: parentID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      firstAV,
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item:      secondAV,
				},
			},
		},
	})
	return err
}

func (r *LineItemDynamoRepository) CountByEpicID(ctx context.Context, epicID string) (int, error) {
	return r.countByIndex(ctx, epicIDIndexName, "epic_id", epicID)
}

func (r *LineItemDynamoRepository) CountByStageID(ctx context.Context, stageID string) (int, error) {
	return r.countByIndex(ctx, stageIDIndexName, "stage_id", stageID)
}

func (r *LineItemDynamoRepository) countByIndex(ctx context.Context, indexName, keyName, keyValue string) (int, error) {
	total := 0
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(indexName),
			KeyConditionExpression: aws.String(keyName + " = :v"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: keyValue},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return 0, err
		}

		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return total, nil
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		ID:             li.ID,
		EstimateID:     li.EstimateID,
		EpicID:         li.EpicID,
		StageID:        li.StageID,
		Workstream:     li.Workstream,
		Week:           li.Week,
		Description:    li.Description,
		BaseHours:      li.BaseHours,
		Factor:         li.Factor,
		Rate:           li.Rate,
		CostRate:       li.CostRate,
		Size:           string(li.Size),
		Complexity:     string(li.Complexity),
		Confidence:     string(li.Confidence),
		RoleID:         li.RoleID,
		AssignedUserID: li.AssignedUserID,
		ResourceName:   li.ResourceName,
		Comments:       li.Comments,
		SortOrder:      li.SortOrder,
		AdjustedHours:  li.AdjustedHours,
		TotalAmount:    li.TotalAmount,
		TotalCost:      li.TotalCost,
		Margin:         li.Margin,
		MarginPercent:  li.MarginPercent,
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	return entities.LineItem{
		ID:             it.ID,
		EstimateID:     it.EstimateID,
		EpicID:         it.EpicID,
		StageID:        it.StageID,
		Workstream:     it.Workstream,
		Week:           it.Week,
		Description:    it.Description,
		BaseHours:      it.BaseHours,
		Factor:         it.Factor,
		Rate:           it.Rate,
		CostRate:       it.CostRate,
		Size:           entities.Rating(it.Size),
		Complexity:     entities.Rating(it.Complexity),
		Confidence:     entities.Confidence(it.Confidence),
		RoleID:         it.RoleID,
		AssignedUserID: it.AssignedUserID,
		ResourceName:   it.ResourceName,
		Comments:       it.Comments,
		SortOrder:      it.SortOrder,
		AdjustedHours:  it.AdjustedHours,
		TotalAmount:    it.TotalAmount,
		TotalCost:      it.TotalCost,
		Margin:         it.Margin,
		MarginPercent:  it.MarginPercent,
	}
}
