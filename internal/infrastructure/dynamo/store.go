package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-bingo-api/internal/domain"
)

// CreateResult is the outcome of a conditional insert-only write.
type CreateResult int

const (
	// Created means the item was written; no record existed at the key.
	Created CreateResult = iota
	// AlreadyExists means a record was already present and nothing was written.
	// It is a normal outcome, not an error: callers branch on it to fetch the
	// winning record.
	AlreadyExists
)

// Store is a table-scoped adapter over the (pk, sk) schemaless layout.
// All operations round-trip to DynamoDB; there is no local caching, and the
// store's conditional writes are the only cross-request coordination point.
type Store struct {
	client    *dynamodb.Client
	tableName string
}

func NewStore(client *dynamodb.Client, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// Get fetches the item at (pk, sk). A missing item is domain.ErrNotFound;
// any other failure is a store error.
func (s *Store) Get(ctx context.Context, pk, sk string) (map[string]types.AttributeValue, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       compositeKey(pk, sk),
	})
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", pk, sk, err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("item %s/%s: %w", pk, sk, domain.ErrNotFound)
	}
	return out.Item, nil
}

// Put writes the item unconditionally, replacing any previous record at its key.
func (s *Store) Put(ctx context.Context, item map[string]types.AttributeValue) error {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}

// TryCreate writes the item only if no record exists at its partition key.
// A lost race surfaces as AlreadyExists, never as an error, so idempotent
// creation paths can branch on the result explicitly.
func (s *Store) TryCreate(ctx context.Context, item map[string]types.AttributeValue) (CreateResult, error) {
	_, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return AlreadyExists, nil
		}
		return AlreadyExists, fmt.Errorf("conditional put: %w", err)
	}
	return Created, nil
}

// UpdateAttributes sets the named attributes on the item at (pk, sk),
// leaving all other attributes untouched.
func (s *Store) UpdateAttributes(ctx context.Context, pk, sk string, attrs map[string]interface{}) error {
	ue, err := buildUpdateExpr(attrs)
	if err != nil {
		return err
	}
	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       compositeKey(pk, sk),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", pk, sk, err)
	}
	return nil
}

// Scan runs a bounded filtered scan. The store gives no ordering guarantee;
// ordering, when needed, is the caller's responsibility. Limit bounds the
// items examined per page, so under heavy write volume the result is a
// best-effort slice of the table.
func (s *Store) Scan(ctx context.Context, filterExpr string, names map[string]string, values map[string]types.AttributeValue, limit int32) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
		Limit:     aws.Int32(limit),
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}
	out, err := s.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return out.Items, nil
}
