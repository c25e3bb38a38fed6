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
	defaultProductsTableName = "products"
	productsUserIDIndex      = "user_id-index"
)

type productItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Price       string `dynamodbav:"price"`
	LastUsed    string `dynamodbav:"last_used"`
	UserID      string `dynamodbav:"user_id"`
}

// ProductDynamoRepository persists catalog products in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Save(ctx context.Context, p entities.Product) (entities.Product, error) {
	it := toProductItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Product{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Product, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(productsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	products := make([]entities.Product, 0, len(out.Items))
	for _, raw := range out.Items {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func (r *ProductDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Description: p.Description,
		Price:       floatToString(p.Price),
		LastUsed:    p.LastUsed.UTC().Format(time.RFC3339Nano),
		UserID:      p.UserID,
	}
}

func fromProductItem(it productItem) entities.Product {
	lastUsed, _ := time.Parse(time.RFC3339Nano, it.LastUsed)
	return entities.Product{
		ID:          it.ID,
		Description: it.Description,
		Price:       stringToFloat(it.Price),
		LastUsed:    lastUsed,
		UserID:      it.UserID,
	}
}
