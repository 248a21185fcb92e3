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
	defaultClientsTableName = "clients"
	clientsClientCodeIndex  = "client_code-index"
)

type clientItem struct {
	ID         string `dynamodbav:"id"`
	ClientCode string `dynamodbav:"client_code"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	Phone      string `dynamodbav:"phone,omitempty"`
	AccessCode string `dynamodbav:"access_code,omitempty"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_code-index (PK: client_code)

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	av, err := attributevalue.MarshalMap(toClientItem(c))
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, translateErr(err)
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByClientCode(ctx context.Context, clientCode string) (entities.Client, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(clientsClientCodeIndex),
		KeyConditionExpression: aws.String("client_code = :cc"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cc": &types.AttributeValueMemberS{Value: clientCode},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Client{}, translateErr(err)
	}
	if len(out.Items) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ClientStatus) (entities.Client, error) {
	return r.update(ctx, id, "SET #status = :status, #updated_at = :updated_at",
		map[string]string{"#status": "status", "#updated_at": "updated_at"},
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		})
}

func (r *ClientDynamoRepository) SetAccessCode(ctx context.Context, id string, accessCode string) (entities.Client, error) {
	return r.update(ctx, id, "SET #access_code = :access_code, #updated_at = :updated_at",
		map[string]string{"#access_code": "access_code", "#updated_at": "updated_at"},
		map[string]types.AttributeValue{
			":access_code": &types.AttributeValueMemberS{Value: accessCode},
			":updated_at":  &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		})
}

func (r *ClientDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (entities.Client, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Client{}, translateErr(err)
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:         c.ID,
		ClientCode: c.ClientCode,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		AccessCode: c.AccessCode,
		Status:     string(c.Status),
		CreatedAt:  formatTime(c.CreatedAt),
		UpdatedAt:  formatTime(c.UpdatedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:         it.ID,
		ClientCode: it.ClientCode,
		Name:       it.Name,
		Email:      it.Email,
		Phone:      it.Phone,
		AccessCode: it.AccessCode,
		Status:     entities.ClientStatus(it.Status),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
