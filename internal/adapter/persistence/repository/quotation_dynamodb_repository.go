package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsLeadIDIndex      = "lead_id-index"
)

type quotationItem struct {
	ID                 string `dynamodbav:"id"`
	LeadID             string `dynamodbav:"lead_id"`
	BusinessName       string `dynamodbav:"business_name"`
	WebsiteURL         string `dynamodbav:"website_url"`
	Services           string `dynamodbav:"services,omitempty"`
	Subtotal           string `dynamodbav:"subtotal"`
	Discount           string `dynamodbav:"discount,omitempty"`
	Total              string `dynamodbav:"total"`
	EstimatedTotalDays int    `dynamodbav:"estimated_total_days"`
	Complexity         string `dynamodbav:"complexity"`
	PaymentTerms       string `dynamodbav:"payment_terms"`
	ROISummary         string `dynamodbav:"roi_summary"`
	Status             string `dynamodbav:"status"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//
// Services and Discount are stored as JSON documents in string attributes;
// they are read back whole and never queried by field.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it, err := toQuotationItem(q)
	if err != nil {
		return entities.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func (r *QuotationDynamoRepository) GetLatestByLeadID(ctx context.Context, leadID string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return entities.Quotation{}, err
	}

	// The GSI has no sort key; pick the most recent by created_at.
	var latest entities.Quotation
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Quotation{}, err
		}
		q, err := fromQuotationItem(it)
		if err != nil {
			return entities.Quotation{}, err
		}
		if latest.ID == "" || q.CreatedAt.After(latest.CreatedAt) {
			latest = q
		}
	}
	return latest, nil
}

func (r *QuotationDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func toQuotationItem(q entities.Quotation) (quotationItem, error) {
	services := ""
	if len(q.Services) > 0 {
		b, err := json.Marshal(q.Services)
		if err != nil {
			return quotationItem{}, err
		}
		services = string(b)
	}
	discount := ""
	if q.Discount != nil {
		b, err := json.Marshal(q.Discount)
		if err != nil {
			return quotationItem{}, err
		}
		discount = string(b)
	}
	return quotationItem{
		ID:                 q.ID,
		LeadID:             q.LeadID,
		BusinessName:       q.BusinessName,
		WebsiteURL:         q.WebsiteURL,
		Services:           services,
		Subtotal:           floatToString(q.Subtotal),
		Discount:           discount,
		Total:              floatToString(q.Total),
		EstimatedTotalDays: q.EstimatedTotalDays,
		Complexity:         string(q.Complexity),
		PaymentTerms:       q.PaymentTerms,
		ROISummary:         q.ROISummary,
		Status:             string(q.Status),
		CreatedAt:          q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromQuotationItem(it quotationItem) (entities.Quotation, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	q := entities.Quotation{
		ID:                 it.ID,
		LeadID:             it.LeadID,
		BusinessName:       it.BusinessName,
		WebsiteURL:         it.WebsiteURL,
		Subtotal:           subtotal,
		Total:              total,
		EstimatedTotalDays: it.EstimatedTotalDays,
		Complexity:         entities.Complexity(it.Complexity),
		PaymentTerms:       it.PaymentTerms,
		ROISummary:         it.ROISummary,
		Status:             entities.QuotationStatus(it.Status),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.Services != "" {
		if err := json.Unmarshal([]byte(it.Services), &q.Services); err != nil {
			return entities.Quotation{}, err
		}
	}
	if it.Discount != "" {
		var d entities.Discount
		if err := json.Unmarshal([]byte(it.Discount), &d); err != nil {
			return entities.Quotation{}, err
		}
		q.Discount = &d
	}
	return q, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
