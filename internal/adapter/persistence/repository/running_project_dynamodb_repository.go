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
	defaultRunningProjectsTableName = "running-projects"
	runningProjectsClientIDIndex    = "client_id-index"
)

type milestoneItem struct {
	ID            string `dynamodbav:"id"`
	Title         string `dynamodbav:"title"`
	Description   string `dynamodbav:"description,omitempty"`
	TargetDate    string `dynamodbav:"target_date"`
	CompletedDate string `dynamodbav:"completed_date,omitempty"`
	Status        string `dynamodbav:"status"`
	Progress      int    `dynamodbav:"progress"`
	Order         int    `dynamodbav:"order"`
}

type runningProjectItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	ClientCode  string `dynamodbav:"client_code"`
	QuotationID string `dynamodbav:"quotation_id"`
	ProjectName string `dynamodbav:"project_name"`
	Description string `dynamodbav:"description,omitempty"`

	StartDate        string `dynamodbav:"start_date"`
	EstimatedEndDate string `dynamodbav:"estimated_end_date"`
	ActualEndDate    string `dynamodbav:"actual_end_date,omitempty"`

	OverallProgress int             `dynamodbav:"overall_progress"`
	Milestones      []milestoneItem `dynamodbav:"milestones,omitempty"`

	PaymentStatus string `dynamodbav:"payment_status"`

	Features          []string             `dynamodbav:"features,omitempty"`
	SelectedAddOns    []quotationAddOnItem `dynamodbav:"selected_add_ons,omitempty"`
	FinalPrice        string               `dynamodbav:"final_price"`
	FinalDeliveryTime int                  `dynamodbav:"final_delivery_time"`

	Status    string `dynamodbav:"status"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RunningProjectDynamoRepository persists RunningProject entities in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string, equal to the quotation id)
//   - GSI: client_id-index (PK: client_id)
//
// The conditional put on create plus the quotation-derived id make
// project synthesis idempotent: a retried confirmation cannot create a
// second project.

type RunningProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRunningProjectRepository = (*RunningProjectDynamoRepository)(nil)

func NewRunningProjectDynamoRepository(ddb *dynamodb.Client) *RunningProjectDynamoRepository {
	return &RunningProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RUNNING_PROJECTS_TABLE", defaultRunningProjectsTableName),
	}
}

func (r *RunningProjectDynamoRepository) Create(ctx context.Context, p entities.RunningProject) (entities.RunningProject, error) {
	av, err := attributevalue.MarshalMap(toRunningProjectItem(p))
	if err != nil {
		return entities.RunningProject{}, err
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
		return entities.RunningProject{}, translateErr(err)
	}
	return p, nil
}

func (r *RunningProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.RunningProject, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RunningProject{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.RunningProject{}, nil
	}

	var it runningProjectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RunningProject{}, err
	}
	return fromRunningProjectItem(it), nil
}

func (r *RunningProjectDynamoRepository) ListByClientID(ctx context.Context, clientID string) ([]entities.RunningProject, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(runningProjectsClientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	})
	if err != nil {
		return nil, translateErr(err)
	}

	items := make([]entities.RunningProject, 0, len(out.Items))
	for _, raw := range out.Items {
		var it runningProjectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRunningProjectItem(it))
	}
	return items, nil
}

func (r *RunningProjectDynamoRepository) UpdateProgress(ctx context.Context, id string, progress int, milestones []entities.Milestone) (entities.RunningProject, error) {
	ms, err := attributevalue.MarshalList(toMilestoneItems(milestones))
	if err != nil {
		return entities.RunningProject{}, err
	}

	return r.update(ctx, id,
		"SET #overall_progress = :progress, #milestones = :milestones, #updated_at = :updated_at",
		map[string]string{
			"#overall_progress": "overall_progress",
			"#milestones":       "milestones",
			"#updated_at":       "updated_at",
		},
		map[string]types.AttributeValue{
			":progress":   &types.AttributeValueMemberN{Value: strconv.Itoa(progress)},
			":milestones": &types.AttributeValueMemberL{Value: ms},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		})
}

func (r *RunningProjectDynamoRepository) Complete(ctx context.Context, id string) (entities.RunningProject, error) {
	now := formatTime(time.Now())
	return r.update(ctx, id,
		"SET #status = :status, #overall_progress = :progress, #actual_end_date = :end_date, #updated_at = :updated_at",
		map[string]string{
			"#status":           "status",
			"#overall_progress": "overall_progress",
			"#actual_end_date":  "actual_end_date",
			"#updated_at":       "updated_at",
		},
		map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.ProjectStatusCompleted)},
			":progress":   &types.AttributeValueMemberN{Value: "100"},
			":end_date":   &types.AttributeValueMemberS{Value: now},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		})
}

func (r *RunningProjectDynamoRepository) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (entities.RunningProject, error) {
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
		return entities.RunningProject{}, translateErr(err)
	}

	var it runningProjectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RunningProject{}, err
	}
	return fromRunningProjectItem(it), nil
}

func toMilestoneItems(ms []entities.Milestone) []milestoneItem {
	out := make([]milestoneItem, 0, len(ms))
	for _, m := range ms {
		out = append(out, milestoneItem{
			ID:            m.ID,
			Title:         m.Title,
			Description:   m.Description,
			TargetDate:    formatTime(m.TargetDate),
			CompletedDate: formatTimePtr(m.CompletedDate),
			Status:        string(m.Status),
			Progress:      m.Progress,
			Order:         m.Order,
		})
	}
	return out
}

func fromMilestoneItems(items []milestoneItem) []entities.Milestone {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.Milestone, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Milestone{
			ID:            it.ID,
			Title:         it.Title,
			Description:   it.Description,
			TargetDate:    parseTime(it.TargetDate),
			CompletedDate: parseTimePtr(it.CompletedDate),
			Status:        entities.MilestoneStatus(it.Status),
			Progress:      it.Progress,
			Order:         it.Order,
		})
	}
	return out
}

func toRunningProjectItem(p entities.RunningProject) runningProjectItem {
	return runningProjectItem{
		ID:          p.ID,
		ClientID:    p.ClientID,
		ClientCode:  p.ClientCode,
		QuotationID: p.QuotationID,
		ProjectName: p.ProjectName,
		Description: p.Description,

		StartDate:        formatTime(p.StartDate),
		EstimatedEndDate: formatTime(p.EstimatedEndDate),
		ActualEndDate:    formatTimePtr(p.ActualEndDate),

		OverallProgress: p.OverallProgress,
		Milestones:      toMilestoneItems(p.Milestones),

		PaymentStatus: string(p.PaymentStatus),

		Features:          p.Features,
		SelectedAddOns:    toQuotationAddOnItems(p.SelectedAddOns),
		FinalPrice:        floatToString(p.FinalPrice),
		FinalDeliveryTime: p.FinalDeliveryTime,

		Status:    string(p.Status),
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromRunningProjectItem(it runningProjectItem) entities.RunningProject {
	finalPrice, _ := strconv.ParseFloat(it.FinalPrice, 64)
	return entities.RunningProject{
		ID:          it.ID,
		ClientID:    it.ClientID,
		ClientCode:  it.ClientCode,
		QuotationID: it.QuotationID,
		ProjectName: it.ProjectName,
		Description: it.Description,

		StartDate:        parseTime(it.StartDate),
		EstimatedEndDate: parseTime(it.EstimatedEndDate),
		ActualEndDate:    parseTimePtr(it.ActualEndDate),

		OverallProgress: it.OverallProgress,
		Milestones:      fromMilestoneItems(it.Milestones),

		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),

		Features:          it.Features,
		SelectedAddOns:    fromQuotationAddOnItems(it.SelectedAddOns),
		FinalPrice:        finalPrice,
		FinalDeliveryTime: it.FinalDeliveryTime,

		Status:    entities.ProjectStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
