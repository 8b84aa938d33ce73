package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"measure_service/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type fakeDynamoDB struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	transact   func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error)
}

func (f *fakeDynamoDB) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamoDB) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamoDB) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamoDB) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return f.transact(in)
}

func mustMarshal(t *testing.T, m entities.Measure) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toMeasureItem(m))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func TestMeasureDynamoRepository_CreateWritesMeasureAndMonthLock(t *testing.T) {
	var captured *dynamodb.TransactWriteItemsInput
	ddb := &fakeDynamoDB{transact: func(in *dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
		captured = in
		return &dynamodb.TransactWriteItemsOutput{}, nil
	}}
	repo := NewMeasureDynamoRepository(ddb, "", "")

	m := entities.Measure{
		CustomerCode:    "cust-1",
		MeasureUUID:     "u-1",
		MeasureType:     entities.MeasureTypeGas,
		MeasureDatetime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		MeasureValue:    "42",
		ImageURL:        "https://files.example/u-1",
		CreatedAt:       time.Now().UTC(),
	}
	created, err := repo.Create(context.Background(), m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	if captured == nil || len(captured.TransactItems) != 2 {
		t.Fatalf("expected a two-item transaction, got %+v", captured)
	}
	measurePut := captured.TransactItems[0].Put
	lockPut := captured.TransactItems[monthLockTransactIndex].Put
	if aws.ToString(measurePut.TableName) != defaultMeasuresTableName || aws.ToString(lockPut.TableName) != defaultMonthLocksTableName {
		t.Fatalf("unexpected tables: %s, %s", aws.ToString(measurePut.TableName), aws.ToString(lockPut.TableName))
	}
	key, ok := lockPut.Item["lock_key"].(*types.AttributeValueMemberS)
	if !ok || key.Value != "cust-1#GAS#2024-03" {
		t.Fatalf("unexpected lock key: %#v", lockPut.Item["lock_key"])
	}
	month, ok := measurePut.Item["measure_month"].(*types.AttributeValueMemberS)
	if !ok || month.Value != "2024-03" {
		t.Fatalf("unexpected measure_month: %#v", measurePut.Item["measure_month"])
	}
}

func TestMeasureDynamoRepository_CreateMapsLockConflict(t *testing.T) {
	t.Run("lock condition failed", func(t *testing.T) {
		ddb := &fakeDynamoDB{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("None")},
					{Code: aws.String("ConditionalCheckFailed")},
				},
			}
		}}
		repo := NewMeasureDynamoRepository(ddb, "m", "l")

		_, err := repo.Create(context.Background(), entities.Measure{MeasureUUID: "u-1", MeasureType: entities.MeasureTypeGas})
		if !errors.Is(err, entities.ErrMonthlyMeasureExists) {
			t.Fatalf("expected ErrMonthlyMeasureExists, got %v", err)
		}
	})

	t.Run("uuid collision is not a monthly conflict", func(t *testing.T) {
		ddb := &fakeDynamoDB{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{
					{Code: aws.String("ConditionalCheckFailed")},
					{Code: aws.String("None")},
				},
			}
		}}
		repo := NewMeasureDynamoRepository(ddb, "m", "l")

		_, err := repo.Create(context.Background(), entities.Measure{MeasureUUID: "u-1"})
		if err == nil || errors.Is(err, entities.ErrMonthlyMeasureExists) {
			t.Fatalf("expected raw transaction error, got %v", err)
		}
	})

	t.Run("other error", func(t *testing.T) {
		ddb := &fakeDynamoDB{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, errors.New("throttled")
		}}
		repo := NewMeasureDynamoRepository(ddb, "m", "l")

		_, err := repo.Create(context.Background(), entities.Measure{MeasureUUID: "u-1"})
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})
}

func TestMeasureDynamoRepository_ExistsForMonth(t *testing.T) {
	var requestedKey string
	ddb := &fakeDynamoDB{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		requestedKey = in.Key["lock_key"].(*types.AttributeValueMemberS).Value
		if requestedKey == "cust-1#WATER#2024-03" {
			return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
				"lock_key": &types.AttributeValueMemberS{Value: requestedKey},
			}}, nil
		}
		return &dynamodb.GetItemOutput{}, nil
	}}
	repo := NewMeasureDynamoRepository(ddb, "", "")

	exists, err := repo.ExistsForMonth(context.Background(), "cust-1", entities.MeasureTypeWater, time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC))
	if err != nil || !exists {
		t.Fatalf("expected existing lock, got %v (%v)", exists, err)
	}

	exists, err = repo.ExistsForMonth(context.Background(), "cust-1", entities.MeasureTypeWater, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil || exists {
		t.Fatalf("expected no lock, got %v (%v)", exists, err)
	}
	if requestedKey != "cust-1#WATER#2024-04" {
		t.Fatalf("unexpected key: %s", requestedKey)
	}
}

func TestMeasureDynamoRepository_GetByUUID(t *testing.T) {
	stored := entities.Measure{
		ID:              "id-1",
		CustomerCode:    "cust-1",
		MeasureUUID:     "u-1",
		MeasureType:     entities.MeasureTypeWater,
		MeasureDatetime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		MeasureValue:    "77",
		ImageURL:        "https://files.example/u-1",
		CreatedAt:       time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
	}

	t.Run("found", func(t *testing.T) {
		ddb := &fakeDynamoDB{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: mustMarshal(t, stored)}, nil
		}}
		repo := NewMeasureDynamoRepository(ddb, "", "")

		got, err := repo.GetByUUID(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MeasureUUID != "u-1" || got.MeasureValue != "77" || !got.MeasureDatetime.Equal(stored.MeasureDatetime) || got.ConfirmedAt != nil {
			t.Fatalf("unexpected measure: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ddb := &fakeDynamoDB{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		repo := NewMeasureDynamoRepository(ddb, "", "")

		got, err := repo.GetByUUID(context.Background(), "u-404")
		if err != nil || got.MeasureUUID != "" {
			t.Fatalf("expected zero measure, got %+v (%v)", got, err)
		}
	})
}

func TestMeasureDynamoRepository_Confirm(t *testing.T) {
	confirmed := entities.Measure{MeasureUUID: "u-1", MeasureValue: "123", HasConfirmed: true, MeasureType: entities.MeasureTypeGas}
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	confirmed.ConfirmedAt = &now

	t.Run("success", func(t *testing.T) {
		ddb := &fakeDynamoDB{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if in.ReturnValuesOnConditionCheckFailure != types.ReturnValuesOnConditionCheckFailureAllOld {
				t.Fatalf("expected ALL_OLD on condition failure")
			}
			if v := in.ExpressionAttributeValues[":value"].(*types.AttributeValueMemberS).Value; v != "123" {
				t.Fatalf("unexpected value: %s", v)
			}
			return &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, confirmed)}, nil
		}}
		repo := NewMeasureDynamoRepository(ddb, "", "")

		got, err := repo.Confirm(context.Background(), "u-1", "123", now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.HasConfirmed || got.MeasureValue != "123" || got.ConfirmedAt == nil || !got.ConfirmedAt.Equal(now) {
			t.Fatalf("unexpected measure: %+v", got)
		}
	})

	t.Run("already confirmed", func(t *testing.T) {
		ddb := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{Item: mustMarshal(t, confirmed)}
		}}
		repo := NewMeasureDynamoRepository(ddb, "", "")

		_, err := repo.Confirm(context.Background(), "u-1", "999", now)
		if !errors.Is(err, entities.ErrMeasureAlreadyConfirmed) {
			t.Fatalf("expected ErrMeasureAlreadyConfirmed, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ddb := &fakeDynamoDB{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		repo := NewMeasureDynamoRepository(ddb, "", "")

		got, err := repo.Confirm(context.Background(), "u-404", "1", now)
		if err != nil || got.MeasureUUID != "" {
			t.Fatalf("expected zero measure, got %+v (%v)", got, err)
		}
	})
}

func TestMeasureDynamoRepository_ListByCustomerPaginates(t *testing.T) {
	first := entities.Measure{MeasureUUID: "u-1", CustomerCode: "cust-1", MeasureType: entities.MeasureTypeWater}
	second := entities.Measure{MeasureUUID: "u-2", CustomerCode: "cust-1", MeasureType: entities.MeasureTypeWater}

	calls := 0
	ddb := &fakeDynamoDB{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		calls++
		if aws.ToString(in.IndexName) != measuresCustomerCodeIndex {
			t.Fatalf("unexpected index: %s", aws.ToString(in.IndexName))
		}
		if aws.ToString(in.FilterExpression) == "" {
			t.Fatalf("expected type filter")
		}
		if in.ExclusiveStartKey == nil {
			return &dynamodb.QueryOutput{
				Items:            []map[string]types.AttributeValue{mustMarshal(t, first)},
				LastEvaluatedKey: map[string]types.AttributeValue{"measure_uuid": &types.AttributeValueMemberS{Value: "u-1"}},
			}, nil
		}
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{mustMarshal(t, second)}}, nil
	}}
	repo := NewMeasureDynamoRepository(ddb, "", "")

	got, err := repo.ListByCustomer(context.Background(), "cust-1", entities.MeasureTypeWater)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 || len(got) != 2 || got[0].MeasureUUID != "u-1" || got[1].MeasureUUID != "u-2" {
		t.Fatalf("unexpected result after %d calls: %+v", calls, got)
	}
}

func TestMeasureItemTimesSortLexicographically(t *testing.T) {
	a := formatTime(time.Date(2024, 3, 15, 10, 0, 0, 100000000, time.UTC))
	b := formatTime(time.Date(2024, 3, 15, 10, 0, 0, 120000000, time.UTC))
	if !(a < b) {
		t.Fatalf("expected %s < %s", a, b)
	}
	if !parseTime(a).Equal(time.Date(2024, 3, 15, 10, 0, 0, 100000000, time.UTC)) {
		t.Fatalf("round trip failed for %s", a)
	}
}
