package repository

import (
	"context"
	"sort"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAttachmentsTableName = "application_attachments"

type attachmentItem struct {
	ApplicationID string `dynamodbav:"application_id"`
	ID            string `dynamodbav:"id"`
	Kind          string `dynamodbav:"kind"`
	FileName      string `dynamodbav:"file_name"`
	MimeType      string `dynamodbav:"mime_type"`
	SizeBytes     int64  `dynamodbav:"size_bytes"`
	StoragePath   string `dynamodbav:"storage_path"`
	UploadedBy    string `dynamodbav:"uploaded_by"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// AttachmentDynamoRepository persists AttachmentFile metadata in DynamoDB.
//
// Table requirements:
//   - PK: application_id (string)
//   - SK: id (string)

type AttachmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttachmentRepository = (*AttachmentDynamoRepository)(nil)

func NewAttachmentDynamoRepository(ddb *dynamodb.Client) *AttachmentDynamoRepository {
	return &AttachmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTACHMENTS_TABLE", defaultAttachmentsTableName),
	}
}

func (r *AttachmentDynamoRepository) Insert(ctx context.Context, a entities.AttachmentFile) (entities.AttachmentFile, error) {
	av, err := attributevalue.MarshalMap(toAttachmentItem(a))
	if err != nil {
		return entities.AttachmentFile{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(application_id) AND attribute_not_exists(id)"),
	})
	if err != nil {
		return entities.AttachmentFile{}, err
	}
	return a, nil
}

func (r *AttachmentDynamoRepository) ListByApplication(ctx context.Context, applicationID string) ([]entities.AttachmentFile, error) {
	var out []entities.AttachmentFile
	err := r.queryPages(ctx, applicationID, nil, func(item map[string]types.AttributeValue) error {
		var it attachmentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		out = append(out, fromAttachmentItem(it))
		return nil
	})
	return out, err
}

func (r *AttachmentDynamoRepository) DistinctKinds(ctx context.Context, applicationID string) ([]string, error) {
	seen := map[string]struct{}{}
	projection := aws.String("#k")
	err := r.queryPages(ctx, applicationID, projection, func(item map[string]types.AttributeValue) error {
		var it struct {
			Kind string `dynamodbav:"kind"`
		}
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return err
		}
		if it.Kind != "" {
			seen[it.Kind] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	kinds := make([]string, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds, nil
}

func (r *AttachmentDynamoRepository) queryPages(ctx context.Context, applicationID string, projection *string, visit func(map[string]types.AttributeValue) error) error {
	var startKey map[string]types.AttributeValue
	for {
		in := &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#aid = :aid"),
			ExpressionAttributeNames: map[string]string{
				"#aid": "application_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":aid": &types.AttributeValueMemberS{Value: applicationID},
			},
			ExclusiveStartKey: startKey,
		}
		if projection != nil {
			in.ProjectionExpression = projection
			in.ExpressionAttributeNames["#k"] = "kind"
		}
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return err
		}
		for _, item := range out.Items {
			if err := visit(item); err != nil {
				return err
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func toAttachmentItem(a entities.AttachmentFile) attachmentItem {
	return attachmentItem{
		ApplicationID: a.ApplicationID,
		ID:            a.ID,
		Kind:          a.Kind,
		FileName:      a.FileName,
		MimeType:      a.MimeType,
		SizeBytes:     a.SizeBytes,
		StoragePath:   a.StoragePath,
		UploadedBy:    a.UploadedBy,
		CreatedAt:     timeToString(a.CreatedAt),
	}
}

func fromAttachmentItem(it attachmentItem) entities.AttachmentFile {
	return entities.AttachmentFile{
		ID:            it.ID,
		ApplicationID: it.ApplicationID,
		Kind:          it.Kind,
		FileName:      it.FileName,
		MimeType:      it.MimeType,
		SizeBytes:     it.SizeBytes,
		StoragePath:   it.StoragePath,
		UploadedBy:    it.UploadedBy,
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
