package repository

import (
	"context"
	"errors"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultApplicationsTableName = "applications"
	technicianIndexName          = "technician_id-index"
	statusIndexName              = "status-index"

	defaultListLimit = 20
)

type applicationItem struct {
	ID                string `dynamodbav:"id"`
	ApplicantName     string `dynamodbav:"applicant_name"`
	ApplicantDocument string `dynamodbav:"applicant_document"`
	ContactPhone      string `dynamodbav:"contact_phone"`
	Address           string `dynamodbav:"address"`
	LocalityCode      string `dynamodbav:"locality_code"`
	Stratum           int    `dynamodbav:"stratum"`
	Status            string `dynamodbav:"status"`
	TechnicianID      string `dynamodbav:"technician_id"`
	SupervisorID      string `dynamodbav:"supervisor_id"`
	SubmittedAt       string `dynamodbav:"submitted_at"`
	ReviewedAt        string `dynamodbav:"reviewed_at"`
	ApprovedAt        string `dynamodbav:"approved_at"`
	RejectionReason   string `dynamodbav:"rejection_reason"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ApplicationDynamoRepository persists Application entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI technician_id-index: technician_id
//   - GSI status-index: status
//
// Insert and Transition write the application and its history row with
// TransactWriteItems so a status change is never observable without its
// ledger entry and vice versa.

type ApplicationDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	historyTable string
}

var _ interfaces.IApplicationRepository = (*ApplicationDynamoRepository)(nil)

func NewApplicationDynamoRepository(ddb *dynamodb.Client) *ApplicationDynamoRepository {
	return &ApplicationDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("APPLICATIONS_TABLE", defaultApplicationsTableName),
		historyTable: getenvDefault("HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *ApplicationDynamoRepository) Insert(ctx context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
	appAV, err := attributevalue.MarshalMap(toApplicationItem(app))
	if err != nil {
		return entities.Application{}, err
	}
	histAV, err := attributevalue.MarshalMap(toHistoryItem(entry))
	if err != nil {
		return entities.Application{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     appAV,
				ConditionExpression:      aws.String("attribute_not_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName: aws.String(r.historyTable),
				Item:      histAV,
			}},
		},
	})
	if err != nil {
		return entities.Application{}, err
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Application, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Application{}, err
	}
	if len(out.Item) == 0 {
		return entities.Application{}, nil
	}

	var it applicationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Application{}, err
	}
	return fromApplicationItem(it), nil
}

func (r *ApplicationDynamoRepository) Update(ctx context.Context, app entities.Application) (entities.Application, error) {
	av, err := attributevalue.MarshalMap(toApplicationItem(app))
	if err != nil {
		return entities.Application{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Application{}, nil
		}
		return entities.Application{}, err
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) Transition(ctx context.Context, app entities.Application, entry entities.HistoryEntry) (entities.Application, error) {
	appAV, err := attributevalue.MarshalMap(toApplicationItem(app))
	if err != nil {
		return entities.Application{}, err
	}
	histAV, err := attributevalue.MarshalMap(toHistoryItem(entry))
	if err != nil {
		return entities.Application{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     appAV,
				ConditionExpression:      aws.String("attribute_exists(#id)"),
				ExpressionAttributeNames: map[string]string{"#id": "id"},
			}},
			{Put: &types.Put{
				TableName: aws.String(r.historyTable),
				Item:      histAV,
			}},
		},
	})
	if err != nil {
		if isConditionalCancellation(err) {
			return entities.Application{}, nil
		}
		return entities.Application{}, err
	}
	return app, nil
}

func (r *ApplicationDynamoRepository) ListByTechnician(ctx context.Context, technicianID, cursor string, limit int32) (interfaces.ApplicationPage, error) {
	return r.queryIndex(ctx, technicianIndexName, "technician_id", technicianID, cursor, limit)
}

func (r *ApplicationDynamoRepository) ListByStatus(ctx context.Context, status entities.ApplicationStatus, cursor string, limit int32) (interfaces.ApplicationPage, error) {
	return r.queryIndex(ctx, statusIndexName, "status", string(status), cursor, limit)
}

func (r *ApplicationDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue, cursor string, limit int32) (interfaces.ApplicationPage, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	startKey, err := decodeCursor(cursor)
	if err != nil {
		return interfaces.ApplicationPage{}, err
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": keyAttr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: keyValue},
		},
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: startKey,
	})
	if err != nil {
		return interfaces.ApplicationPage{}, err
	}

	page := interfaces.ApplicationPage{Items: make([]entities.Application, 0, len(out.Items))}
	for _, item := range out.Items {
		var it applicationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return interfaces.ApplicationPage{}, err
		}
		page.Items = append(page.Items, fromApplicationItem(it))
	}
	page.NextCursor, err = encodeCursor(out.LastEvaluatedKey)
	if err != nil {
		return interfaces.ApplicationPage{}, err
	}
	return page, nil
}

// isConditionalCancellation reports whether a transaction was cancelled
// because its condition check failed (the application row is absent).
func isConditionalCancellation(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func toApplicationItem(a entities.Application) applicationItem {
	return applicationItem{
		ID:                a.ID,
		ApplicantName:     a.ApplicantName,
		ApplicantDocument: a.ApplicantDocument,
		ContactPhone:      a.ContactPhone,
		Address:           a.Address,
		LocalityCode:      a.LocalityCode,
		Stratum:           a.Stratum,
		Status:            string(a.Status),
		TechnicianID:      a.TechnicianID,
		SupervisorID:      a.SupervisorID,
		SubmittedAt:       timePtrToString(a.SubmittedAt),
		ReviewedAt:        timePtrToString(a.ReviewedAt),
		ApprovedAt:        timePtrToString(a.ApprovedAt),
		RejectionReason:   a.RejectionReason,
		CreatedAt:         timeToString(a.CreatedAt),
		UpdatedAt:         timeToString(a.UpdatedAt),
	}
}

func fromApplicationItem(it applicationItem) entities.Application {
	return entities.Application{
		ID:                it.ID,
		ApplicantName:     it.ApplicantName,
		ApplicantDocument: it.ApplicantDocument,
		ContactPhone:      it.ContactPhone,
		Address:           it.Address,
		LocalityCode:      it.LocalityCode,
		Stratum:           it.Stratum,
		Status:            entities.ApplicationStatus(it.Status),
		TechnicianID:      it.TechnicianID,
		SupervisorID:      it.SupervisorID,
		SubmittedAt:       timePtrFromString(it.SubmittedAt),
		ReviewedAt:        timePtrFromString(it.ReviewedAt),
		ApprovedAt:        timePtrFromString(it.ApprovedAt),
		RejectionReason:   it.RejectionReason,
		CreatedAt:         timeFromString(it.CreatedAt),
		UpdatedAt:         timeFromString(it.UpdatedAt),
	}
}
