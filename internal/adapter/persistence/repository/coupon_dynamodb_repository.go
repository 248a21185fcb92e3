package repository

import (
	"context"
	"strconv"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCouponsTableName = "coupons"
	couponsCodeIndex        = "code-index"
)

type couponItem struct {
	ID             string `dynamodbav:"id"`
	Code           string `dynamodbav:"code"`
	Description    string `dynamodbav:"description,omitempty"`
	Discount       string `dynamodbav:"discount"`
	DiscountType   string `dynamodbav:"discount_type"`
	MinOrderAmount string `dynamodbav:"min_order_amount"`
	ValidUntil     string `dynamodbav:"valid_until"`
	UsageLimit     int    `dynamodbav:"usage_limit"`
	UsedCount      int    `dynamodbav:"used_count"`
	Active         bool   `dynamodbav:"active"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// CouponDynamoRepository persists Coupon entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: code-index (PK: code)
//
// Create stores a "code#<CODE>" guard item alongside the coupon to keep
// codes unique. IncrementUsage is a conditional ADD guarded by
// used_count < usage_limit so the cap holds even under concurrent
// confirmations.

type CouponDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICouponRepository = (*CouponDynamoRepository)(nil)

func NewCouponDynamoRepository(ddb *dynamodb.Client) *CouponDynamoRepository {
	return &CouponDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUPONS_TABLE", defaultCouponsTableName),
	}
}

// Create writes the coupon together with a guard item keyed by the code
// in a single transaction. The guard makes the code itself the
// uniqueness arbiter, so two concurrent creates of the same code cannot
// both land. The guard item carries no code attribute and therefore
// never appears in the code-index.
func (r *CouponDynamoRepository) Create(ctx context.Context, c entities.Coupon) (entities.Coupon, error) {
	av, err := attributevalue.MarshalMap(toCouponItem(c))
	if err != nil {
		return entities.Coupon{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item: map[string]types.AttributeValue{
						"id":        &types.AttributeValueMemberS{Value: couponCodeGuardID(c.Code)},
						"coupon_id": &types.AttributeValueMemberS{Value: c.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Coupon{}, translateErr(err)
	}
	return c, nil
}

func couponCodeGuardID(code string) string {
	return "code#" + code
}

func (r *CouponDynamoRepository) GetByID(ctx context.Context, id string) (entities.Coupon, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Coupon{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func (r *CouponDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Coupon, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(couponsCodeIndex),
		KeyConditionExpression: aws.String("code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Coupon{}, translateErr(err)
	}
	if len(out.Items) == 0 {
		return entities.Coupon{}, nil
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

// IncrementUsage adds one to used_count while it is still below
// usage_limit. A read-then-write here would let two confirmations slip
// past the cap together; the condition makes the counter itself the
// arbiter.
func (r *CouponDynamoRepository) IncrementUsage(ctx context.Context, id string) (entities.Coupon, error) {
	now := formatTime(time.Now())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #used_count < #usage_limit"),
		UpdateExpression:    aws.String("ADD #used_count :one SET #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#used_count":  "used_count",
			"#usage_limit": "usage_limit",
			"#updated_at":  "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one":        &types.AttributeValueMemberN{Value: "1"},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Coupon{}, translateErr(err)
	}

	var it couponItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Coupon{}, err
	}
	return fromCouponItem(it), nil
}

func toCouponItem(c entities.Coupon) couponItem {
	return couponItem{
		ID:             c.ID,
		Code:           c.Code,
		Description:    c.Description,
		Discount:       floatToString(c.Discount),
		DiscountType:   string(c.DiscountType),
		MinOrderAmount: floatToString(c.MinOrderAmount),
		ValidUntil:     formatTime(c.ValidUntil),
		UsageLimit:     c.UsageLimit,
		UsedCount:      c.UsedCount,
		Active:         c.Active,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func fromCouponItem(it couponItem) entities.Coupon {
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	minOrder, _ := strconv.ParseFloat(it.MinOrderAmount, 64)
	return entities.Coupon{
		ID:             it.ID,
		Code:           it.Code,
		Description:    it.Description,
		Discount:       discount,
		DiscountType:   entities.DiscountType(it.DiscountType),
		MinOrderAmount: minOrder,
		ValidUntil:     parseTime(it.ValidUntil),
		UsageLimit:     it.UsageLimit,
		UsedCount:      it.UsedCount,
		Active:         it.Active,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
