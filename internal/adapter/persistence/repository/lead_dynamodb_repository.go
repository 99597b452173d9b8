package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"leadpilot/internal/domain/entities"
	"leadpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID           string `dynamodbav:"id"`
	BusinessName string `dynamodbav:"business_name"`
	WebsiteURL   string `dynamodbav:"website_url"`
	Score        string `dynamodbav:"score"`
	Audit        string `dynamodbav:"audit,omitempty"`
	Competitors  string `dynamodbav:"competitors,omitempty"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Audit and Competitors are stored as JSON documents in string attributes:
// the crawler owns their schema and we only need to round-trip them.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(l)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it)
}

func toLeadItem(l entities.Lead) (leadItem, error) {
	audit, err := json.Marshal(l.Audit)
	if err != nil {
		return leadItem{}, err
	}
	competitors := ""
	if len(l.Competitors) > 0 {
		b, err := json.Marshal(l.Competitors)
		if err != nil {
			return leadItem{}, err
		}
		competitors = string(b)
	}
	return leadItem{
		ID:           l.ID,
		BusinessName: l.BusinessName,
		WebsiteURL:   l.WebsiteURL,
		Score:        floatToString(l.Score),
		Audit:        string(audit),
		Competitors:  competitors,
		CreatedAt:    l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	score, _ := strconv.ParseFloat(it.Score, 64)

	l := entities.Lead{
		ID:           it.ID,
		BusinessName: it.BusinessName,
		WebsiteURL:   it.WebsiteURL,
		Score:        score,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.Audit != "" {
		if err := json.Unmarshal([]byte(it.Audit), &l.Audit); err != nil {
			return entities.Lead{}, err
		}
	}
	if it.Competitors != "" {
		if err := json.Unmarshal([]byte(it.Competitors), &l.Competitors); err != nil {
			return entities.Lead{}, err
		}
	}
	return l, nil
}
