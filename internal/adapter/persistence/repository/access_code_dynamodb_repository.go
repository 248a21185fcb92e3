package repository

import (
	"context"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAccessCodesTableName = "access-codes"
	accessCodesCodeIndex        = "code-index"
)

type accessCodeItem struct {
	ID        string `dynamodbav:"id"`
	Code      string `dynamodbav:"code"`
	Email     string `dynamodbav:"email"`
	Name      string `dynamodbav:"name"`
	Role      string `dynamodbav:"role"`
	Used      bool   `dynamodbav:"used"`
	UsedAt    string `dynamodbav:"used_at,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	ExpiresAt string `dynamodbav:"expires_at"`
}

// AccessCodeDynamoRepository persists AccessCode entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// Consume flips the used flag behind a ConditionExpression so a blind
// overwrite can never re-arm or double-spend a code.

type AccessCodeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccessCodeRepository = (*AccessCodeDynamoRepository)(nil)

func NewAccessCodeDynamoRepository(ddb *dynamodb.Client) *AccessCodeDynamoRepository {
	return &AccessCodeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCESS_CODES_TABLE", defaultAccessCodesTableName),
	}
}

func (r *AccessCodeDynamoRepository) Create(ctx context.Context, a entities.AccessCode) (entities.AccessCode, error) {
	av, err := attributevalue.MarshalMap(toAccessCodeItem(a))
	if err != nil {
		return entities.AccessCode{}, err
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
		return entities.AccessCode{}, translateErr(err)
	}
	return a, nil
}

func (r *AccessCodeDynamoRepository) GetByID(ctx context.Context, id string) (entities.AccessCode, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.AccessCode{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.AccessCode{}, nil
	}

	var it accessCodeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.AccessCode{}, err
	}
	return fromAccessCodeItem(it), nil
}

func (r *AccessCodeDynamoRepository) GetByCode(ctx context.Context, code string) (entities.AccessCode, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accessCodesCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.AccessCode{}, translateErr(err)
	}
	if len(out.Items) == 0 {
		return entities.AccessCode{}, nil
	}

	var it accessCodeItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.AccessCode{}, err
	}
	return fromAccessCodeItem(it), nil
}

// Consume sets used=true only while used is still false. Exactly one of
// two racing calls wins; the loser sees ErrConditionFailed.
func (r *AccessCodeDynamoRepository) Consume(ctx context.Context, id string) (entities.AccessCode, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #used = :false"),
		UpdateExpression:    aws.String("SET #used = :true, #used_at = :used_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#used":    "used",
			"#used_at": "used_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":   &types.AttributeValueMemberBOOL{Value: false},
			":true":    &types.AttributeValueMemberBOOL{Value: true},
			":used_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.AccessCode{}, translateErr(err)
	}

	var it accessCodeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.AccessCode{}, err
	}
	return fromAccessCodeItem(it), nil
}

func (r *AccessCodeDynamoRepository) List(ctx context.Context) ([]entities.AccessCode, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, translateErr(err)
	}

	items := make([]entities.AccessCode, 0, len(out.Items))
	for _, raw := range out.Items {
		var it accessCodeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAccessCodeItem(it))
	}
	return items, nil
}

func (r *AccessCodeDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return translateErr(err)
	}
	return nil
}

func toAccessCodeItem(a entities.AccessCode) accessCodeItem {
	return accessCodeItem{
		ID:        a.ID,
		Code:      a.Code,
		Email:     a.Email,
		Name:      a.Name,
		Role:      string(a.Role),
		Used:      a.Used,
		UsedAt:    formatTimePtr(a.UsedAt),
		CreatedAt: formatTime(a.CreatedAt),
		ExpiresAt: formatTime(a.ExpiresAt),
	}
}

func fromAccessCodeItem(it accessCodeItem) entities.AccessCode {
	return entities.AccessCode{
		ID:        it.ID,
		Code:      it.Code,
		Email:     it.Email,
		Name:      it.Name,
		Role:      entities.AccessCodeRole(it.Role),
		Used:      it.Used,
		UsedAt:    parseTimePtr(it.UsedAt),
		CreatedAt: parseTime(it.CreatedAt),
		ExpiresAt: parseTime(it.ExpiresAt),
	}
}
