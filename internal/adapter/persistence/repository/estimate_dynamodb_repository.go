package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"scopeworks/internal/domain/entities"
	"scopeworks/internal/usecase/interfaces"
)

const defaultEstimatesTableName = "estimates"

type multipliersItem struct {
	SizeMedium       float64 `dynamodbav:"size_medium"`
	SizeLarge        float64 `dynamodbav:"size_large"`
	ComplexityMedium float64 `dynamodbav:"complexity_medium"`
	ComplexityLarge  float64 `dynamodbav:"complexity_large"`
	ConfidenceMedium float64 `dynamodbav:"confidence_medium"`
	ConfidenceLow    float64 `dynamodbav:"confidence_low"`
}

type estimateItem struct {
	ID             string          `dynamodbav:"id"`
	Name           string          `dynamodbav:"name"`
	Version        int             `dynamodbav:"version"`
	PricingType    string          `dynamodbav:"pricing_type"`
	EstimateType   string          `dynamodbav:"estimate_type"`
	Status         string          `dynamodbav:"status"`
	Multipliers    multipliersItem `dynamodbav:"multipliers"`
	PresentedTotal *float64        `dynamodbav:"presented_total,omitempty"`
	FixedPrice     *float64        `dynamodbav:"fixed_price,omitempty"`
	BlockHours     *float64        `dynamodbav:"block_hours,omitempty"`
	BlockDollars   *float64        `dynamodbav:"block_dollars,omitempty"`
	ReferralType   string          `dynamodbav:"referral_type,omitempty"`
	ReferralRate   float64         `dynamodbav:"referral_rate,omitempty"`
	ReferralPayee  string          `dynamodbav:"referral_payee,omitempty"`
	ProjectID      *string         `dynamodbav:"project_id,omitempty"`
	CreatedAt      string          `dynamodbav:"created_at"`
	UpdatedAt      string          `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists Estimate aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: firstNonEmpty(tableName, defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

// Update replaces the whole aggregate. A missing row yields a zero-value
// estimate, never an error.
func (r *EstimateDynamoRepository) Update(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	av, err := attributevalue.MarshalMap(toEstimateItem(e))
	if err != nil {
		return entities.Estimate{}, err
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
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	return estimateItem{
		ID:             e.ID,
		Name:           e.Name,
		Version:        e.Version,
		PricingType:    string(e.PricingType),
		EstimateType:   string(e.EstimateType),
		Status:         string(e.Status),
		Multipliers: multipliersItem{
			SizeMedium:       e.Multipliers.SizeMedium,
			SizeLarge:        e.Multipliers.SizeLarge,
			ComplexityMedium: e.Multipliers.ComplexityMedium,
			ComplexityLarge:  e.Multipliers.ComplexityLarge,
			ConfidenceMedium: e.Multipliers.ConfidenceMedium,
			ConfidenceLow:    e.Multipliers.ConfidenceLow,
		},
		PresentedTotal: e.PresentedTotal,
		FixedPrice:     e.FixedPrice,
		BlockHours:     e.BlockHours,
		BlockDollars:   e.BlockDollars,
		ReferralType:   string(e.ReferralFee.Type),
		ReferralRate:   e.ReferralFee.Rate,
		ReferralPayee:  e.ReferralFee.Payee,
		ProjectID:      e.ProjectID,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Estimate{
		ID:             it.ID,
		Name:           it.Name,
		Version:        it.Version,
		PricingType:    entities.PricingType(it.PricingType),
		EstimateType:   entities.EstimateType(it.EstimateType),
		Status:         entities.EstimateStatus(it.Status),
		Multipliers: entities.Multipliers{
			SizeMedium:       it.Multipliers.SizeMedium,
			SizeLarge:        it.Multipliers.SizeLarge,
			ComplexityMedium: it.Multipliers.ComplexityMedium,
			ComplexityLarge:  it.Multipliers.ComplexityLarge,
			ConfidenceMedium: it.Multipliers.ConfidenceMedium,
			ConfidenceLow:    it.Multipliers.ConfidenceLow,
		},
		PresentedTotal: it.PresentedTotal,
		FixedPrice:     it.FixedPrice,
		BlockHours:     it.BlockHours,
		BlockDollars:   it.BlockDollars,
		ReferralFee: entities.ReferralFee{
			Type:  entities.ReferralFeeType(it.ReferralType),
			Rate:  it.ReferralRate,
			Payee: it.ReferralPayee,
		},
		ProjectID: it.ProjectID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
