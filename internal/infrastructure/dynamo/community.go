package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-bingo-api/internal/domain"
)

// CommunityRepo provides typed operations over the community feed table.
// Toss records are append-only.
type CommunityRepo struct {
	store *Store
}

func NewCommunityRepo(client *dynamodb.Client, tableName string) *CommunityRepo {
	return &CommunityRepo{store: NewStore(client, tableName)}
}

func (r *CommunityRepo) PutToss(ctx context.Context, t *domain.Toss) error {
	item, err := attributevalue.MarshalMap(t)
	if err != nil {
		return fmt.Errorf("marshal toss: %w", err)
	}
	return r.store.Put(ctx, item)
}

// ScanRecent returns up to limit toss records. The scan is unordered and
// bounded, so under heavy write volume it is a best-effort sample rather
// than the true latest records; callers sort what they get.
func (r *CommunityRepo) ScanRecent(ctx context.Context, limit int32) ([]domain.Toss, error) {
	items, err := r.store.Scan(ctx, "", nil, nil, limit)
	if err != nil {
		return nil, err
	}
	var tosses []domain.Toss
	if err := attributevalue.UnmarshalListOfMaps(items, &tosses); err != nil {
		return nil, fmt.Errorf("unmarshal tosses: %w", err)
	}
	return tosses, nil
}
