package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cotizador/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func exerciseStore(t *testing.T, kv interfaces.IKeyValueStore) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := kv.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}
	if err := kv.Set(ctx, "k", []byte("v1")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "k", []byte("v2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, found, err := kv.Get(ctx, "k")
	if err != nil || !found || string(v) != "v2" {
		t.Fatalf("unexpected get value=%q found=%v err=%v", v, found, err)
	}
	if err := kv.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := kv.Get(ctx, "k"); found {
		t.Fatalf("expected key removed")
	}
}

func TestStateGormStore(t *testing.T) {
	store, err := NewStateGormStore(openTestDB(t))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	exerciseStore(t, store)
}

func TestStateMemoryStore(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		exerciseStore(t, NewStateMemoryStore(0))
	})

	t.Run("quota exceeded", func(t *testing.T) {
		ctx := context.Background()
		s := NewStateMemoryStore(10)
		if err := s.Set(ctx, "a", []byte("12345")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Set(ctx, "b", []byte("123456")); !errors.Is(err, interfaces.ErrStorageFull) {
			t.Fatalf("expected ErrStorageFull, got %v", err)
		}
		// replacing a key only counts the new value
		if err := s.Set(ctx, "a", []byte("1234567890")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

type fakeDynamo struct {
	items  map[string]map[string]types.AttributeValue
	putErr error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	key := in.Key["key"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[key]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	var it stateItem
	if err := attributevalue.UnmarshalMap(in.Item, &it); err != nil {
		return nil, err
	}
	f.items[it.Key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, in.Key["key"].(*types.AttributeValueMemberS).Value)
	return &dynamodb.DeleteItemOutput{}, nil
}

func TestStateDynamoStore(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		exerciseStore(t, newStateDynamoStore(&fakeDynamo{items: map[string]map[string]types.AttributeValue{}}, "state"))
	})

	t.Run("item too large maps to storage full", func(t *testing.T) {
		fake := &fakeDynamo{
			items: map[string]map[string]types.AttributeValue{},
			putErr: &smithy.GenericAPIError{
				Code:    "ValidationException",
				Message: "Item size has exceeded the maximum allowed size",
			},
		}
		s := newStateDynamoStore(fake, "state")
		if err := s.Set(context.Background(), "k", []byte("v")); !errors.Is(err, interfaces.ErrStorageFull) {
			t.Fatalf("expected ErrStorageFull, got %v", err)
		}
	})

	t.Run("other errors pass through", func(t *testing.T) {
		fake := &fakeDynamo{items: map[string]map[string]types.AttributeValue{}, putErr: errors.New("throttled")}
		s := newStateDynamoStore(fake, "")
		err := s.Set(context.Background(), "k", []byte("v"))
		if err == nil || errors.Is(err, interfaces.ErrStorageFull) {
			t.Fatalf("expected generic error, got %v", err)
		}
		if s.tableName != defaultStateTableName {
			t.Fatalf("expected default table name, got %s", s.tableName)
		}
	})
}
