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
	defaultAccountsTableName = "accounts"
	accountsEmailIndex       = "email-index"
)

type accountItem struct {
	UID          string `dynamodbav:"uid"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AccountDynamoRepository persists operator accounts in DynamoDB.
//
// Table requirements:
//   - PK: uid (string)
//   - GSI: email-index (PK: email)
//
// Create is conditional on the uid not existing; email uniqueness is
// enforced one layer up by checking the index before writing.

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	it := toAccountItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#uid)"),
		ExpressionAttributeNames: map[string]string{
			"#uid": "uid",
		},
	})
	if err != nil {
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByUID(ctx context.Context, uid string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"uid": &types.AttributeValueMemberS{Value: uid},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accountsEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Items) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		UID:          a.UID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Account{
		UID:          it.UID,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		CreatedAt:    createdAt,
	}
}
