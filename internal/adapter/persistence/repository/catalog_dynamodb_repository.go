package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

const (
	defaultRolesTableName         = "roles"
	defaultUsersTableName         = "users"
	defaultRateOverridesTableName = "rate_overrides"
)

type roleItem struct {
	ID              string  `dynamodbav:"id"`
	Name            string  `dynamodbav:"name"`
	DefaultRackRate float64 `dynamodbav:"default_rack_rate"`
	DefaultCostRate float64 `dynamodbav:"default_cost_rate"`
}

type userItem struct {
	ID                 string  `dynamodbav:"id"`
	Name               string  `dynamodbav:"name"`
	DefaultBillingRate float64 `dynamodbav:"default_billing_rate"`
	DefaultCostRate    float64 `dynamodbav:"default_cost_rate"`
}

type rateOverrideItem struct {
	ID         string  `dynamodbav:"id"`
	EstimateID string  `dynamodbav:"estimate_id"`
	LineItemID *string `dynamodbav:"line_item_id,omitempty"`
	RoleID     *string `dynamodbav:"role_id,omitempty"`
	UserID     *string `dynamodbav:"user_id,omitempty"`
	Rate       float64 `dynamodbav:"rate"`
	CostRate   float64 `dynamodbav:"cost_rate"`
}

// CatalogDynamoRepository reads the role/user catalog tables and the
// per-estimate rate override table. All three are written by the staffing
// system; this side only queries them.
//
// Table requirements:
//   - roles, users: PK id (string)
//   - rate_overrides: PK id, GSI estimate_id-index on estimate_id

type CatalogDynamoRepository struct {
	ddb                *dynamodb.Client
	rolesTable         string
	usersTable         string
	rateOverridesTable string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, rolesTable, usersTable, rateOverridesTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:                ddb,
		rolesTable:         firstNonEmpty(rolesTable, defaultRolesTableName),
		usersTable:         firstNonEmpty(usersTable, defaultUsersTableName),
		rateOverridesTable: firstNonEmpty(rateOverridesTable, defaultRateOverridesTableName),
	}
}

func (r *CatalogDynamoRepository) GetRoleByID(ctx context.Context, id string) (entities.Role, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.rolesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Role{}, err
	}
	if len(out.Item) == 0 {
		return entities.Role{}, nil
	}

	var it roleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Role{}, err
	}
	return entities.Role{
		ID:              it.ID,
		Name:            it.Name,
		DefaultRackRate: it.DefaultRackRate,
		DefaultCostRate: it.DefaultCostRate,
	}, nil
}

func (r *CatalogDynamoRepository) GetUserByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.usersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return entities.User{
		ID:                 it.ID,
		Name:               it.Name,
		DefaultBillingRate: it.DefaultBillingRate,
		DefaultCostRate:    it.DefaultCostRate,
	}, nil
}

func (r *CatalogDynamoRepository) ListRateOverridesByEstimateID(ctx context.Context, estimateID string) ([]entities.RateOverride, error) {
	overrides := make([]entities.RateOverride, 0)
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.rateOverridesTable),
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
			var it rateOverrideItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			overrides = append(overrides, entities.RateOverride{
				ID:         it.ID,
				EstimateID: it.EstimateID,
				LineItemID: it.LineItemID,
				RoleID:     it.RoleID,
				UserID:     it.UserID,
				Rate:       it.Rate,
				CostRate:   it.CostRate,
			})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return overrides, nil
}
