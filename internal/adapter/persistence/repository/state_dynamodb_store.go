package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cotizador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
)

const defaultStateTableName = "cotizador_state"

type stateItem struct {
	Key       string `dynamodbav:"key"`
	Value     []byte `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// dynamoAPI is the part of the DynamoDB client the store calls.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// StateDynamoStore keeps the local state blobs in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
//
// A single item is capped at 400KB; writes past that limit surface as
// ErrStorageFull.
type StateDynamoStore struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IKeyValueStore = (*StateDynamoStore)(nil)

func NewStateDynamoStore(ddb *dynamodb.Client, table string) *StateDynamoStore {
	return newStateDynamoStore(ddb, table)
}

func newStateDynamoStore(ddb dynamoAPI, table string) *StateDynamoStore {
	if table == "" {
		table = getenvDefault("STATE_TABLE", defaultStateTableName)
	}
	return &StateDynamoStore{ddb: ddb, tableName: table}
}

func (s *StateDynamoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it stateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return it.Value, true, nil
}

func (s *StateDynamoStore) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(stateItem{Key: key, Value: value, UpdatedAt: formatTime(time.Now())})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	if err != nil {
		return mapDynamoError(err)
	}
	return nil
}

func (s *StateDynamoStore) Remove(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}

func mapDynamoError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "ValidationException" && isStorageFullMessage(apiErr.ErrorMessage()) {
		return fmt.Errorf("%w: %s", interfaces.ErrStorageFull, apiErr.ErrorMessage())
	}
	return err
}
