package repository

import (
	"context"
	"fmt"

	"instalaciones_xpto/internal/domain/entities"
	"instalaciones_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultHistoryTableName = "application_history"

// sortKeyTimeLayout is fixed-width so the sort key orders lexicographically.
// RFC3339Nano trims trailing fractional zeros, which breaks string ordering
// ("...00Z" sorts after "...00.5Z").
const sortKeyTimeLayout = "2006-01-02T15:04:05.000000000Z"

type historyItem struct {
	ApplicationID string `dynamodbav:"application_id"`
	SortKey       string `dynamodbav:"sort_key"`
	ID            string `dynamodbav:"id"`
	FromStatus    string `dynamodbav:"from_status"`
	ToStatus      string `dynamodbav:"to_status"`
	ActorID       string `dynamodbav:"actor_id"`
	Comment       string `dynamodbav:"comment"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// HistoryDynamoRepository is the append-only transition ledger.
//
// Table requirements:
//   - PK: application_id (string)
//   - SK: sort_key (string, created_at#id)
//
// The sort key makes entries insertion-ordered under Query; the id suffix
// keeps same-timestamp entries distinct. There is no update or delete path.

type HistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IHistoryLedger = (*HistoryDynamoRepository)(nil)

func NewHistoryDynamoRepository(ddb *dynamodb.Client) *HistoryDynamoRepository {
	return &HistoryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("HISTORY_TABLE", defaultHistoryTableName),
	}
}

func (r *HistoryDynamoRepository) Append(ctx context.Context, entry entities.HistoryEntry) (entities.HistoryEntry, error) {
	av, err := attributevalue.MarshalMap(toHistoryItem(entry))
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.HistoryEntry{}, err
	}
	return entry, nil
}

func (r *HistoryDynamoRepository) ListFor(ctx context.Context, applicationID string) ([]entities.HistoryEntry, error) {
	var out []entities.HistoryEntry
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
			var it historyItem
			if err := attributevalue.UnmarshalMap(item, &it); err != nil {
				return nil, err
			}
			out = append(out, fromHistoryItem(it))
		}
		if len(res.LastEvaluatedKey) == 0 {
			break
		}
		startKey = res.LastEvaluatedKey
	}
	return out, nil
}

func historySortKey(e entities.HistoryEntry) string {
	return fmt.Sprintf("%s#%s", e.CreatedAt.UTC().Format(sortKeyTimeLayout), e.ID)
}

func toHistoryItem(e entities.HistoryEntry) historyItem {
	from := ""
	if e.FromStatus != nil {
		from = string(*e.FromStatus)
	}
	return historyItem{
		ApplicationID: e.ApplicationID,
		SortKey:       historySortKey(e),
		ID:            e.ID,
		FromStatus:    from,
		ToStatus:      string(e.ToStatus),
		ActorID:       e.ActorID,
		Comment:       e.Comment,
		CreatedAt:     timeToString(e.CreatedAt),
	}
}

func fromHistoryItem(it historyItem) entities.HistoryEntry {
	var from *entities.ApplicationStatus
	if it.FromStatus != "" {
		s := entities.ApplicationStatus(it.FromStatus)
		from = &s
	}
	return entities.HistoryEntry{
		ID:            it.ID,
		ApplicationID: it.ApplicationID,
		FromStatus:    from,
		ToStatus:      entities.ApplicationStatus(it.ToStatus),
		ActorID:       it.ActorID,
		Comment:       it.Comment,
		CreatedAt:     timeFromString(it.CreatedAt),
	}
}
