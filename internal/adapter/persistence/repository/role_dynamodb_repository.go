package repository

import (
	"context"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRolesTableName = "user_roles"

// RoleDynamoRepository reads role membership.
//
// Table requirements:
//   - PK: role_code (string)
//   - SK: user_id (string)
//
// Membership administration happens outside this service; this repository
// only answers lookups.

type RoleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRoleRepository = (*RoleDynamoRepository)(nil)

func NewRoleDynamoRepository(ddb *dynamodb.Client) *RoleDynamoRepository {
	return &RoleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USER_ROLES_TABLE", defaultRolesTableName),
	}
}

func (r *RoleDynamoRepository) HasRole(ctx context.Context, userID string, role entities.RoleCode) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"role_code": &types.AttributeValueMemberS{Value: string(role)},
			"user_id":   &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *RoleDynamoRepository) UsersWithRole(ctx context.Context, role entities.RoleCode) ([]string, error) {
	var ids []string
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#rc = :rc"),
			ExpressionAttributeNames: map[string]string{
				"#rc": "role_code",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":rc": &types.AttributeValueMemberS{Value: string(role)},
			},
			ProjectionExpression: aws.String("user_id"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, item := range out.Items {
			var it struct {
				UserID string `dynamodbav:"user_id"`
			}
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			if it.UserID != "" {
				ids = append(ids, it.UserID)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return ids, nil
		}
		startKey = out.LastEvaluatedKey
	}
}
