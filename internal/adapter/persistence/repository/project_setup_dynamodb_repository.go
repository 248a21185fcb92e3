package repository

import (
	"context"
	"strconv"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProjectSetupsTableName = "project-setups"
	projectSetupsClientIDIndex    = "client_id-index"
)

type projectSetupItem struct {
	ID           string               `dynamodbav:"id"`
	ClientID     string               `dynamodbav:"client_id"`
	ClientCode   string               `dynamodbav:"client_code"`
	ProjectName  string               `dynamodbav:"project_name"`
	Description  string               `dynamodbav:"description,omitempty"`
	Features     []string             `dynamodbav:"features,omitempty"`
	BasePrice    string               `dynamodbav:"base_price"`
	BaseDelivery int                  `dynamodbav:"base_delivery"`
	AddOns       []quotationAddOnItem `dynamodbav:"add_ons,omitempty"`
	CouponCodes  []string             `dynamodbav:"coupon_codes,omitempty"`
	CreatedAt    string               `dynamodbav:"created_at"`
	UpdatedAt    string               `dynamodbav:"updated_at"`
}

// ProjectSetupDynamoRepository persists ProjectSetup entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)

type ProjectSetupDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectSetupRepository = (*ProjectSetupDynamoRepository)(nil)

func NewProjectSetupDynamoRepository(ddb *dynamodb.Client) *ProjectSetupDynamoRepository {
	return &ProjectSetupDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECT_SETUPS_TABLE", defaultProjectSetupsTableName),
	}
}

func (r *ProjectSetupDynamoRepository) Create(ctx context.Context, s entities.ProjectSetup) (entities.ProjectSetup, error) {
	av, err := attributevalue.MarshalMap(toProjectSetupItem(s))
	if err != nil {
		return entities.ProjectSetup{}, err
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
		return entities.ProjectSetup{}, translateErr(err)
	}
	return s, nil
}

func (r *ProjectSetupDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProjectSetup, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProjectSetup{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.ProjectSetup{}, nil
	}

	var it projectSetupItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProjectSetup{}, err
	}
	return fromProjectSetupItem(it), nil
}

func (r *ProjectSetupDynamoRepository) GetByClientID(ctx context.Context, clientID string) (entities.ProjectSetup, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectSetupsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ProjectSetup{}, translateErr(err)
	}
	if len(out.Items) == 0 {
		return entities.ProjectSetup{}, nil
	}

	var it projectSetupItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ProjectSetup{}, err
	}
	return fromProjectSetupItem(it), nil
}

func toProjectSetupItem(s entities.ProjectSetup) projectSetupItem {
	return projectSetupItem{
		ID:           s.ID,
		ClientID:     s.ClientID,
		ClientCode:   s.ClientCode,
		ProjectName:  s.ProjectName,
		Description:  s.Description,
		Features:     s.Features,
		BasePrice:    floatToString(s.BasePrice),
		BaseDelivery: s.BaseDelivery,
		AddOns:       toQuotationAddOnItems(s.AddOns),
		CouponCodes:  s.CouponCodes,
		CreatedAt:    formatTime(s.CreatedAt),
		UpdatedAt:    formatTime(s.UpdatedAt),
	}
}

func fromProjectSetupItem(it projectSetupItem) entities.ProjectSetup {
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	return entities.ProjectSetup{
		ID:           it.ID,
		ClientID:     it.ClientID,
		ClientCode:   it.ClientCode,
		ProjectName:  it.ProjectName,
		Description:  it.Description,
		Features:     it.Features,
		BasePrice:    basePrice,
		BaseDelivery: it.BaseDelivery,
		AddOns:       fromQuotationAddOnItems(it.AddOns),
		CouponCodes:  it.CouponCodes,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
