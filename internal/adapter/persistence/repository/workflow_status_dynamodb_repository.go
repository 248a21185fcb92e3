package repository

import (
	"context"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkflowStatusTableName = "status"

type stepStateItem struct {
	Completed   bool   `dynamodbav:"completed"`
	CompletedAt string `dynamodbav:"completed_at,omitempty"`
}

type workflowStatusItem struct {
	ClientID  string                   `dynamodbav:"client_id"`
	Steps     map[string]stepStateItem `dynamodbav:"steps"`
	UpdatedAt string                   `dynamodbav:"updated_at"`
}

// WorkflowStatusDynamoRepository persists WorkflowStatus in DynamoDB.
//
// Table requirements:
//   - PK: client_id (string)
//
// The tracker is display-only, so a whole-item put is acceptable; the
// ordering invariant lives in the entity, not the storage.

type WorkflowStatusDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IWorkflowStatusRepository = (*WorkflowStatusDynamoRepository)(nil)

func NewWorkflowStatusDynamoRepository(ddb *dynamodb.Client) *WorkflowStatusDynamoRepository {
	return &WorkflowStatusDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("WORKFLOW_STATUS_TABLE", defaultWorkflowStatusTableName),
	}
}

func (r *WorkflowStatusDynamoRepository) Put(ctx context.Context, ws entities.WorkflowStatus) (entities.WorkflowStatus, error) {
	av, err := attributevalue.MarshalMap(toWorkflowStatusItem(ws))
	if err != nil {
		return entities.WorkflowStatus{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.WorkflowStatus{}, translateErr(err)
	}
	return ws, nil
}

func (r *WorkflowStatusDynamoRepository) GetByClientID(ctx context.Context, clientID string) (entities.WorkflowStatus, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"client_id": &types.AttributeValueMemberS{Value: clientID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkflowStatus{}, translateErr(err)
	}
	if len(out.Item) == 0 {
		return entities.WorkflowStatus{}, nil
	}

	var it workflowStatusItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkflowStatus{}, err
	}
	return fromWorkflowStatusItem(it), nil
}

func toWorkflowStatusItem(ws entities.WorkflowStatus) workflowStatusItem {
	steps := make(map[string]stepStateItem, len(entities.StepNames()))
	for i, name := range entities.StepNames() {
		st := ws.Steps[entities.WorkflowStep(i)]
		steps[name] = stepStateItem{
			Completed:   st.Completed,
			CompletedAt: formatTimePtr(st.CompletedAt),
		}
	}
	return workflowStatusItem{
		ClientID:  ws.ClientID,
		Steps:     steps,
		UpdatedAt: formatTime(ws.UpdatedAt),
	}
}

func fromWorkflowStatusItem(it workflowStatusItem) entities.WorkflowStatus {
	ws := entities.WorkflowStatus{
		ClientID:  it.ClientID,
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for name, st := range it.Steps {
		step, ok := entities.ParseWorkflowStep(name)
		if !ok {
			continue
		}
		ws.Steps[step] = entities.StepState{
			Completed:   st.Completed,
			CompletedAt: parseTimePtr(st.CompletedAt),
		}
	}
	return ws
}
