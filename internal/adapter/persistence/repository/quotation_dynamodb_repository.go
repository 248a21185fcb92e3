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
	defaultQuotationsTableName = "quotations"
	quotationsClientIDIndex    = "client_id-index"
)

type quotationAddOnItem struct {
	ID                string `dynamodbav:"id"`
	Name              string `dynamodbav:"name"`
	Description       string `dynamodbav:"description,omitempty"`
	Price             string `dynamodbav:"price"`
	ExtraDeliveryTime int    `dynamodbav:"extra_delivery_time"`
	Category          string `dynamodbav:"category,omitempty"`
	Required          bool   `dynamodbav:"required"`
}

type quotationItem struct {
	ID         string `dynamodbav:"id"`
	ClientID   string `dynamodbav:"client_id"`
	ClientCode string `dynamodbav:"client_code"`
	ProjectID  string `dynamodbav:"project_id"`

	SelectedAddOns []quotationAddOnItem `dynamodbav:"selected_add_ons,omitempty"`
	AppliedCoupon  *couponItem          `dynamodbav:"applied_coupon,omitempty"`

	BasePrice      string `dynamodbav:"base_price"`
	AddOnsTotal    string `dynamodbav:"add_ons_total"`
	Subtotal       string `dynamodbav:"subtotal"`
	DiscountAmount string `dynamodbav:"discount_amount"`
	FinalPrice     string `dynamodbav:"final_price"`

	BaseDeliveryTime   int `dynamodbav:"base_delivery_time"`
	AddOnsDeliveryTime int `dynamodbav:"add_ons_delivery_time"`
	FinalDeliveryTime  int `dynamodbav:"final_delivery_time"`

	ClientConfirmed bool   `dynamodbav:"client_confirmed"`
	ConfirmedAt     string `dynamodbav:"confirmed_at,omitempty"`
	RejectedReason  string `dynamodbav:"rejected_reason,omitempty"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
//
// UpdateStatus checks the current status in the same conditional write
// that sets the new one, so concurrent confirm/reject calls cannot both
// apply.

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
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
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
		return entities.Quotation{}, translateErr(err)
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
		return entities.Quotation{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, translateErr(err)
	}

	items := make([]entities.Quotation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

// UpdateStatus applies from -> to only while the stored status still
// equals from. The loser of a concurrent confirm/reject race gets
// ErrConditionFailed.
func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuotationStatus, update interfaces.QuotationStatusUpdate) (entities.Quotation, error) {
	now := formatTime(time.Now())

	expr := "SET #status = :to, #updated_at = :updated_at, #client_confirmed = :client_confirmed"
	values := map[string]types.AttributeValue{
		":from":             &types.AttributeValueMemberS{Value: string(from)},
		":to":               &types.AttributeValueMemberS{Value: string(to)},
		":updated_at":       &types.AttributeValueMemberS{Value: now},
		":client_confirmed": &types.AttributeValueMemberBOOL{Value: update.ClientConfirmed},
	}
	names := map[string]string{
		"#status":           "status",
		"#updated_at":       "updated_at",
		"#client_confirmed": "client_confirmed",
	}
	if update.ConfirmedAt != nil {
		expr += ", #confirmed_at = :confirmed_at"
		names["#confirmed_at"] = "confirmed_at"
		values[":confirmed_at"] = &types.AttributeValueMemberS{Value: formatTime(*update.ConfirmedAt)}
	}
	if update.RejectedReason != "" {
		expr += ", #rejected_reason = :rejected_reason"
		names["#rejected_reason"] = "rejected_reason"
		values[":rejected_reason"] = &types.AttributeValueMemberS{Value: update.RejectedReason}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Quotation{}, translateErr(err)
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationAddOnItems(addOns []entities.AddOn) []quotationAddOnItem {
	if len(addOns) == 0 {
		return nil
	}
	out := make([]quotationAddOnItem, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, quotationAddOnItem{
			ID:                a.ID,
			Name:              a.Name,
			Description:       a.Description,
			Price:             floatToString(a.Price),
			ExtraDeliveryTime: a.ExtraDeliveryTime,
			Category:          a.Category,
			Required:          a.Required,
		})
	}
	return out
}

func fromQuotationAddOnItems(items []quotationAddOnItem) []entities.AddOn {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.AddOn, 0, len(items))
	for _, it := range items {
		price, _ := strconv.ParseFloat(it.Price, 64)
		out = append(out, entities.AddOn{
			ID:                it.ID,
			Name:              it.Name,
			Description:       it.Description,
			Price:             price,
			ExtraDeliveryTime: it.ExtraDeliveryTime,
			Category:          it.Category,
			Required:          it.Required,
		})
	}
	return out
}

func toQuotationItem(q entities.Quotation) quotationItem {
	it := quotationItem{
		ID:         q.ID,
		ClientID:   q.ClientID,
		ClientCode: q.ClientCode,
		ProjectID:  q.ProjectID,

		SelectedAddOns: toQuotationAddOnItems(q.SelectedAddOns),

		BasePrice:      floatToString(q.BasePrice),
		AddOnsTotal:    floatToString(q.AddOnsTotal),
		Subtotal:       floatToString(q.Subtotal),
		DiscountAmount: floatToString(q.DiscountAmount),
		FinalPrice:     floatToString(q.FinalPrice),

		BaseDeliveryTime:   q.BaseDeliveryTime,
		AddOnsDeliveryTime: q.AddOnsDeliveryTime,
		FinalDeliveryTime:  q.FinalDeliveryTime,

		ClientConfirmed: q.ClientConfirmed,
		ConfirmedAt:     formatTimePtr(q.ConfirmedAt),
		RejectedReason:  q.RejectedReason,

		Status:    string(q.Status),
		CreatedAt: formatTime(q.CreatedAt),
		UpdatedAt: formatTime(q.UpdatedAt),
	}
	if q.AppliedCoupon != nil {
		c := toCouponItem(*q.AppliedCoupon)
		it.AppliedCoupon = &c
	}
	return it
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	basePrice, _ := strconv.ParseFloat(it.BasePrice, 64)
	addOnsTotal, _ := strconv.ParseFloat(it.AddOnsTotal, 64)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	discount, _ := strconv.ParseFloat(it.DiscountAmount, 64)
	finalPrice, _ := strconv.ParseFloat(it.FinalPrice, 64)

	q := entities.Quotation{
		ID:         it.ID,
		ClientID:   it.ClientID,
		ClientCode: it.ClientCode,
		ProjectID:  it.ProjectID,

		SelectedAddOns: fromQuotationAddOnItems(it.SelectedAddOns),

		BasePrice:      basePrice,
		AddOnsTotal:    addOnsTotal,
		Subtotal:       subtotal,
		DiscountAmount: discount,
		FinalPrice:     finalPrice,

		BaseDeliveryTime:   it.BaseDeliveryTime,
		AddOnsDeliveryTime: it.AddOnsDeliveryTime,
		FinalDeliveryTime:  it.FinalDeliveryTime,

		ClientConfirmed: it.ClientConfirmed,
		ConfirmedAt:     parseTimePtr(it.ConfirmedAt),
		RejectedReason:  it.RejectedReason,

		Status:    entities.QuotationStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if it.AppliedCoupon != nil {
		c := fromCouponItem(*it.AppliedCoupon)
		q.AppliedCoupon = &c
	}
	return q
}
