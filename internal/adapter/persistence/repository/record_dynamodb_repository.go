package repository

import (
	"context"
	"time"

	"gyeonjeok/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRecordsTableName = "records"

type recordCollectionItem struct {
	Key       string `dynamodbav:"key"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RecordDynamoRepository persists per-user record collections in DynamoDB.
//
// Table requirements:
//   - PK: key (string), "{recordKind}_{userId}"
//
// One item holds a whole collection as a JSON array blob. Saves are
// unconditional PutItems: the surrounding read-modify-write is not atomic
// and concurrent writers to the same key clobber each other last-write-wins,
// which is the service's documented concurrency contract.

type RecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRecordStore = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb *dynamodb.Client) *RecordDynamoRepository {
	return &RecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (r *RecordDynamoRepository) LoadCollection(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it recordCollectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Payload), nil
}

func (r *RecordDynamoRepository) SaveCollection(ctx context.Context, key string, payload []byte) error {
	it := recordCollectionItem{
		Key:       key,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
