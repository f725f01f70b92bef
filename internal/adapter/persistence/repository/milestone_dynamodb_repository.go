package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

const defaultMilestonesTableName = "milestones"

type milestoneItem struct {
	ID         string   `dynamodbav:"id"`
	EstimateID string   `dynamodbav:"estimate_id"`
	Name       string   `dynamodbav:"name"`
	Amount     *float64 `dynamodbav:"amount,omitempty"`
	Percentage *float64 `dynamodbav:"percentage,omitempty"`
	DueDate    string   `dynamodbav:"due_date,omitempty"`
	SortOrder  int      `dynamodbav:"sort_order"`
}

// MilestoneDynamoRepository persists Milestone rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI estimate_id-index: PK estimate_id

type MilestoneDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMilestoneRepository = (*MilestoneDynamoRepository)(nil)

func NewMilestoneDynamoRepository(ddb *dynamodb.Client, tableName string) *MilestoneDynamoRepository {
	return &MilestoneDynamoRepository{
		ddb:       ddb,
		tableName: firstNonEmpty(tableName, defaultMilestonesTableName),
	}
}

func (r *MilestoneDynamoRepository) Create(ctx context.Context, m entities.Milestone) (entities.Milestone, error) {
	av, err := attributevalue.MarshalMap(toMilestoneItem(m))
	if err != nil {
		return entities.Milestone{}, err
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
		return entities.Milestone{}, err
	}
	return m, nil
}

func (r *MilestoneDynamoRepository) GetByID(ctx context.Context, id string) (entities.Milestone, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Milestone{}, err
	}
	if len(out.Item) == 0 {
		return entities.Milestone{}, nil
	}

	var it milestoneItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Milestone{}, err
	}
	return fromMilestoneItem(it), nil
}

func (r *MilestoneDynamoRepository) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.Milestone, error) {
	milestones := make([]entities.Milestone, 0)
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
			var it milestoneItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			milestones = append(milestones, fromMilestoneItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}

	sort.SliceStable(milestones, func(i, j int) bool {
		return milestones[i].SortOrder < milestones[j].SortOrder
	})
	return milestones, nil
}

func (r *MilestoneDynamoRepository) Update(ctx context.Context, m entities.Milestone) (entities.Milestone, error) {
	av, err := attributevalue.MarshalMap(toMilestoneItem(m))
	if err != nil {
		return entities.Milestone{}, err
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
			return entities.Milestone{}, nil
		}
		return entities.Milestone{}, err
	}
	return m, nil
}

func (r *MilestoneDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toMilestoneItem(m entities.Milestone) milestoneItem {
	it := milestoneItem{
		ID:         m.ID,
		EstimateID: m.EstimateID,
		Name:       m.Name,
		Amount:     m.Amount,
		Percentage: m.Percentage,
		SortOrder:  m.SortOrder,
	}
	if m.DueDate != nil {
		it.DueDate = m.DueDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromMilestoneItem(it milestoneItem) entities.Milestone {
	m := entities.Milestone{
		ID:         it.ID,
		EstimateID: it.EstimateID,
		Name:       it.Name,
		Amount:     it.Amount,
		Percentage: it.Percentage,
		SortOrder:  it.SortOrder,
	}
	if it.DueDate != "" {
		if due, err := time.Parse(time.RFC3339Nano, it.DueDate); err == nil {
			m.DueDate = &due
		}
	}
	return m
}
