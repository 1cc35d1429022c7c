package repository

import (
	"context"
	"errors"
	"strconv"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDocumentsTableName = "resolution_documents"

type resolutionDocumentItem struct {
	ApplicationID string `dynamodbav:"application_id"`
	Version       int    `dynamodbav:"version"`
	ID            string `dynamodbav:"id"`
	FileName      string `dynamodbav:"file_name"`
	StoragePath   string `dynamodbav:"storage_path"`
	GeneratedBy   string `dynamodbav:"generated_by"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// ResolutionDocumentDynamoRepository persists ResolutionDocument rows.
//
// Table requirements:
//   - PK: application_id (string)
//   - SK: version (number)
//
// The key pair is the uniqueness constraint backing optimistic version
// allocation: a conditional put fails when a concurrent decision already
// claimed the version, which Insert signals by returning the zero value.

type ResolutionDocumentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IResolutionDocumentRepository = (*ResolutionDocumentDynamoRepository)(nil)

func NewResolutionDocumentDynamoRepository(ddb *dynamodb.Client) *ResolutionDocumentDynamoRepository {
	return &ResolutionDocumentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESOLUTION_DOCUMENTS_TABLE", defaultDocumentsTableName),
	}
}

func (r *ResolutionDocumentDynamoRepository) Insert(ctx context.Context, d entities.ResolutionDocument) (entities.ResolutionDocument, error) {
	av, err := attributevalue.MarshalMap(toResolutionDocumentItem(d))
	if err != nil {
		return entities.ResolutionDocument{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(application_id) AND attribute_not_exists(#v)"),
		ExpressionAttributeNames: map[string]string{
			"#v": "version",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ResolutionDocument{}, nil
		}
		return entities.ResolutionDocument{}, err
	}
	return d, nil
}

func (r *ResolutionDocumentDynamoRepository) MaxVersion(ctx context.Context, applicationID string) (int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#aid = :aid"),
		ExpressionAttributeNames: map[string]string{
			"#aid": "application_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":aid": &types.AttributeValueMemberS{Value: applicationID},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Items) == 0 {
		return 0, nil
	}
	var it resolutionDocumentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return 0, err
	}
	return it.Version, nil
}

func (r *ResolutionDocumentDynamoRepository) GetByVersion(ctx context.Context, applicationID string, version int) (entities.ResolutionDocument, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"application_id": &types.AttributeValueMemberS{Value: applicationID},
			"version":        &types.AttributeValueMemberN{Value: strconv.Itoa(version)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ResolutionDocument{}, err
	}
	if len(out.Item) == 0 {
		return entities.ResolutionDocument{}, nil
	}
	var it resolutionDocumentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ResolutionDocument{}, err
	}
	return fromResolutionDocumentItem(it), nil
}

func (r *ResolutionDocumentDynamoRepository) ListByApplication(ctx context.Context, applicationID string) ([]entities.ResolutionDocument, error) {
	var out []entities.ResolutionDocument
	var startKey map[string]types.AttributeValue
	for {
		res, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#aid = :aid"),
			ExpressionAttributeNames: map[string]string{
				"#aid": "application_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":aid": &types.AttributeValueMemberS{Value: applicationID},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range res.Items {
			var it resolutionDocumentItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromResolutionDocumentItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = res.LastEvaluatedKey
	}
}

func toResolutionDocumentItem(d entities.ResolutionDocument) resolutionDocumentItem {
	return resolutionDocumentItem{
		ApplicationID: d.ApplicationID,
		Version:       d.Version,
		ID:            d.ID,
		FileName:      d.FileName,
		StoragePath:   d.StoragePath,
		GeneratedBy:   d.GeneratedBy,
		CreatedAt:     timeToString(d.CreatedAt),
	}
}

func fromResolutionDocumentItem(it resolutionDocumentItem) entities.ResolutionDocument {
	return entities.ResolutionDocument{
		ID:            it.ID,
		ApplicationID: it.ApplicationID,
		Version:       it.Version,
		FileName:      it.FileName,
		StoragePath:   it.StoragePath,
		GeneratedBy:   it.GeneratedBy,
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
