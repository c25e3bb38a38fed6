package repository

import (
	"context"
	"time"

	"github.com/giancarlo349/G-OS3/internal/domain/entities"
	"github.com/giancarlo349/G-OS3/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesUserIDIndex      = "user_id-index"
)

type quoteLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	Quantity    string `dynamodbav:"quantity"`
	Comment     string `dynamodbav:"comment,omitempty"`
	IsVerified  bool   `dynamodbav:"is_verified"`
}

type quoteItem struct {
	ID          string          `dynamodbav:"id"`
	ClientName  string          `dynamodbav:"client_name"`
	ClientPhone string          `dynamodbav:"client_phone,omitempty"`
	Author      string          `dynamodbav:"author"`
	Status      string          `dynamodbav:"status"`
	Items       []quoteLineItem `dynamodbav:"items"`
	Total       string          `dynamodbav:"total"`
	CreatedAt   string          `dynamodbav:"created_at"`
	UpdatedAt   string          `dynamodbav:"updated_at"`
	UserID      string          `dynamodbav:"user_id"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// The whole record is written on every save; line items live inside the
// quote item, never in their own table.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Save(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, len(q.Items))
	for i, li := range q.Items {
		lines[i] = quoteLineItem{
			ID:          li.ID,
			Description: li.Description,
			Price:       floatToString(li.Price),
			Quantity:    floatToString(li.Quantity),
			Comment:     li.Comment,
			IsVerified:  li.IsVerified,
		}
	}
	return quoteItem{
		ID:          q.ID,
		ClientName:  q.ClientName,
		ClientPhone: q.ClientPhone,
		Author:      q.Author,
		Status:      string(q.Status),
		Items:       lines,
		Total:       floatToString(q.Total),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
		UserID:      q.UserID,
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	lines := make([]entities.QuoteItem, len(it.Items))
	for i, li := range it.Items {
		lines[i] = entities.QuoteItem{
			ID:          li.ID,
			Description: li.Description,
			Price:       stringToFloat(li.Price),
			Quantity:    stringToFloat(li.Quantity),
			Comment:     li.Comment,
			IsVerified:  li.IsVerified,
		}
	}
	return entities.Quote{
		ID:          it.ID,
		ClientName:  it.ClientName,
		ClientPhone: it.ClientPhone,
		Author:      it.Author,
		Status:      entities.QuoteStatus(it.Status),
		Items:       lines,
		Total:       stringToFloat(it.Total),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		UserID:      it.UserID,
	}
}
