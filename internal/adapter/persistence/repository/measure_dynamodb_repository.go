package repository

import (
	"context"
	"errors"
	"time"

	"measure_service/internal/domain/entities"
	"measure_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultMeasuresTableName   = "measures"
	defaultMonthLocksTableName = "measure_month_locks"
	measuresCustomerCodeIndex  = "customer_code-index"

	// position of the month lock in the create transaction
	monthLockTransactIndex = 1
)

// DynamoDBAPI is the subset of *dynamodb.Client used by the repository.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type measureItem struct {
	MeasureUUID     string `dynamodbav:"measure_uuid"`
	ID              string `dynamodbav:"id"`
	CustomerCode    string `dynamodbav:"customer_code"`
	MeasureDatetime string `dynamodbav:"measure_datetime"`
	MeasureMonth    string `dynamodbav:"measure_month"`
	MeasureType     string `dynamodbav:"measure_type"`
	HasConfirmed    bool   `dynamodbav:"has_confirmed"`
	ImageURL        string `dynamodbav:"image_url"`
	MeasureValue    string `dynamodbav:"measure_value"`
	CreatedAt       string `dynamodbav:"created_at"`
	ConfirmedAt     string `dynamodbav:"confirmed_at,omitempty"`
}

type monthLockItem struct {
	LockKey     string `dynamodbav:"lock_key"`
	MeasureUUID string `dynamodbav:"measure_uuid"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// MeasureDynamoRepository persists Measure entities in DynamoDB.
//
// Table requirements:
//   - measures: PK measure_uuid (string)
//   - measures GSI customer_code-index: PK customer_code, SK created_at
//   - measure_month_locks: PK lock_key (string)
//
// Monthly uniqueness is enforced by writing the measure and its
// customer#TYPE#YYYY-MM lock in one transaction, both conditioned on
// attribute_not_exists.
type MeasureDynamoRepository struct {
	ddb            DynamoDBAPI
	tableName      string
	locksTableName string
}

var _ interfaces.IMeasureRepository = (*MeasureDynamoRepository)(nil)

func NewMeasureDynamoRepository(ddb DynamoDBAPI, tableName, locksTableName string) *MeasureDynamoRepository {
	return &MeasureDynamoRepository{
		ddb:            ddb,
		tableName:      defaultString(tableName, defaultMeasuresTableName),
		locksTableName: defaultString(locksTableName, defaultMonthLocksTableName),
	}
}

func (r *MeasureDynamoRepository) Create(ctx context.Context, m entities.Measure) (entities.Measure, error) {
	m.ID = uuid.NewString()
	m.MeasureDatetime = m.MeasureDatetime.UTC()

	av, err := attributevalue.MarshalMap(toMeasureItem(m))
	if err != nil {
		return entities.Measure{}, err
	}
	lockAV, err := attributevalue.MarshalMap(monthLockItem{
		LockKey:     m.MonthKey(),
		MeasureUUID: m.MeasureUUID,
		CreatedAt:   formatTime(m.CreatedAt),
	})
	if err != nil {
		return entities.Measure{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.tableName),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#uuid)"),
					ExpressionAttributeNames: map[string]string{"#uuid": "measure_uuid"},
				},
			},
			{
				Put: &types.Put{
					TableName:                aws.String(r.locksTableName),
					Item:                     lockAV,
					ConditionExpression:      aws.String("attribute_not_exists(#key)"),
					ExpressionAttributeNames: map[string]string{"#key": "lock_key"},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && lockConditionFailed(tce) {
			return entities.Measure{}, entities.ErrMonthlyMeasureExists
		}
		return entities.Measure{}, err
	}
	return m, nil
}

func lockConditionFailed(tce *types.TransactionCanceledException) bool {
	if len(tce.CancellationReasons) <= monthLockTransactIndex {
		return false
	}
	return aws.ToString(tce.CancellationReasons[monthLockTransactIndex].Code) == "ConditionalCheckFailed"
}

func (r *MeasureDynamoRepository) ExistsForMonth(ctx context.Context, customerCode string, measureType entities.MeasureType, at time.Time) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.locksTableName),
		Key: map[string]types.AttributeValue{
			"lock_key": &types.AttributeValueMemberS{Value: entities.MonthLockKey(customerCode, measureType, at)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *MeasureDynamoRepository) GetByUUID(ctx context.Context, measureUUID string) (entities.Measure, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"measure_uuid": &types.AttributeValueMemberS{Value: measureUUID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Measure{}, err
	}
	if len(out.Item) == 0 {
		return entities.Measure{}, nil
	}

	var it measureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Measure{}, err
	}
	return fromMeasureItem(it), nil
}

func (r *MeasureDynamoRepository) Confirm(ctx context.Context, measureUUID string, value string, confirmedAt time.Time) (entities.Measure, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"measure_uuid": &types.AttributeValueMemberS{Value: measureUUID},
		},
		ConditionExpression: aws.String("attribute_exists(#uuid) AND #has_confirmed = :pending"),
		UpdateExpression:    aws.String("SET #has_confirmed = :confirmed, #measure_value = :value, #confirmed_at = :confirmed_at"),
		ExpressionAttributeNames: map[string]string{
			"#uuid":          "measure_uuid",
			"#has_confirmed": "has_confirmed",
			"#measure_value": "measure_value",
			"#confirmed_at":  "confirmed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":      &types.AttributeValueMemberBOOL{Value: false},
			":confirmed":    &types.AttributeValueMemberBOOL{Value: true},
			":value":        &types.AttributeValueMemberS{Value: value},
			":confirmed_at": &types.AttributeValueMemberS{Value: formatTime(confirmedAt)},
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// ALL_OLD is empty when the item does not exist.
			if len(cfe.Item) == 0 {
				return entities.Measure{}, nil
			}
			return entities.Measure{}, entities.ErrMeasureAlreadyConfirmed
		}
		return entities.Measure{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Measure{}, nil
	}

	var it measureItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Measure{}, err
	}
	return fromMeasureItem(it), nil
}

// ListByCustomer reads the customer_code GSI in created_at order. GSI reads are
// eventually consistent.
func (r *MeasureDynamoRepository) ListByCustomer(ctx context.Context, customerCode string, measureType entities.MeasureType) ([]entities.Measure, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(measuresCustomerCodeIndex),
		KeyConditionExpression: aws.String("#customer_code = :customer_code"),
		ExpressionAttributeNames: map[string]string{
			"#customer_code": "customer_code",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_code": &types.AttributeValueMemberS{Value: customerCode},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if measureType != "" {
		input.FilterExpression = aws.String("#measure_type = :measure_type")
		input.ExpressionAttributeNames["#measure_type"] = "measure_type"
		input.ExpressionAttributeValues[":measure_type"] = &types.AttributeValueMemberS{Value: string(measureType)}
	}

	items := make([]entities.Measure, 0)
	paginator := dynamodb.NewQueryPaginator(r.ddb, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it measureItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromMeasureItem(it))
		}
	}
	return items, nil
}

func toMeasureItem(m entities.Measure) measureItem {
	it := measureItem{
		MeasureUUID:     m.MeasureUUID,
		ID:              m.ID,
		CustomerCode:    m.CustomerCode,
		MeasureDatetime: formatTime(m.MeasureDatetime),
		MeasureMonth:    entities.MonthKey(m.MeasureDatetime),
		MeasureType:     string(m.MeasureType),
		HasConfirmed:    m.HasConfirmed,
		ImageURL:        m.ImageURL,
		MeasureValue:    m.MeasureValue,
		CreatedAt:       formatTime(m.CreatedAt),
	}
	if m.ConfirmedAt != nil {
		it.ConfirmedAt = formatTime(*m.ConfirmedAt)
	}
	return it
}

func fromMeasureItem(it measureItem) entities.Measure {
	m := entities.Measure{
		ID:              it.ID,
		CustomerCode:    it.CustomerCode,
		MeasureUUID:     it.MeasureUUID,
		MeasureDatetime: parseTime(it.MeasureDatetime),
		MeasureType:     entities.MeasureType(it.MeasureType),
		HasConfirmed:    it.HasConfirmed,
		ImageURL:        it.ImageURL,
		MeasureValue:    it.MeasureValue,
		CreatedAt:       parseTime(it.CreatedAt),
	}
	if it.ConfirmedAt != "" {
		at := parseTime(it.ConfirmedAt)
		m.ConfirmedAt = &at
	}
	return m
}
