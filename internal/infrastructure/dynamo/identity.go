package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-bingo-api/internal/domain"
)

// lookupScanBound caps the items examined by attribute-match lookups
// (code->email, token->user). v1 runs these as single-page scans; an
// index-backed lookup replaces them without touching any caller.
const lookupScanBound = 1000

// IdentityRepo provides typed operations over the identity table: magic-code
// records, email->user mappings and user profiles.
type IdentityRepo struct {
	store *Store
}

func NewIdentityRepo(client *dynamodb.Client, tableName string) *IdentityRepo {
	return &IdentityRepo{store: NewStore(client, tableName)}
}

// PutMagicCode unconditionally overwrites the active code for the email, so
// only the most recently issued code for an address redeems.
func (r *IdentityRepo) PutMagicCode(ctx context.Context, mc *domain.MagicCode) error {
	item, err := attributevalue.MarshalMap(mc)
	if err != nil {
		return fmt.Errorf("marshal magic code: %w", err)
	}
	return r.store.Put(ctx, item)
}

// FindMagicCodeByCode looks up the magic-code record holding the given code.
func (r *IdentityRepo) FindMagicCodeByCode(ctx context.Context, code string) (*domain.MagicCode, error) {
	items, err := r.store.Scan(ctx,
		"#sk = :magic AND #code = :code",
		map[string]string{"#sk": "sk", "#code": "code"},
		map[string]types.AttributeValue{
			":magic": &types.AttributeValueMemberS{Value: domain.SKMagic},
			":code":  &types.AttributeValueMemberS{Value: code},
		},
		lookupScanBound,
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("magic code: %w", domain.ErrNotFound)
	}
	var mc domain.MagicCode
	if err := attributevalue.UnmarshalMap(items[0], &mc); err != nil {
		return nil, fmt.Errorf("unmarshal magic code: %w", err)
	}
	return &mc, nil
}

func (r *IdentityRepo) GetEmailUser(ctx context.Context, email string) (*domain.EmailUser, error) {
	item, err := r.store.Get(ctx, domain.EmailPK(email), domain.SKUser)
	if err != nil {
		return nil, err
	}
	var m domain.EmailUser
	if err := attributevalue.UnmarshalMap(item, &m); err != nil {
		return nil, fmt.Errorf("unmarshal email mapping: %w", err)
	}
	return &m, nil
}

// TryCreateEmailUser inserts the email->user mapping only if none exists.
// AlreadyExists means a concurrent redemption won the race; the caller
// re-reads the mapping and adopts the winning user id.
func (r *IdentityRepo) TryCreateEmailUser(ctx context.Context, m *domain.EmailUser) (CreateResult, error) {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return AlreadyExists, fmt.Errorf("marshal email mapping: %w", err)
	}
	return r.store.TryCreate(ctx, item)
}

// TryCreateProfile inserts the profile only on first-ever redemption, so
// createdAt is set exactly once. AlreadyExists is success for callers.
func (r *IdentityRepo) TryCreateProfile(ctx context.Context, p *domain.Profile) (CreateResult, error) {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return AlreadyExists, fmt.Errorf("marshal profile: %w", err)
	}
	return r.store.TryCreate(ctx, item)
}

func (r *IdentityRepo) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	item, err := r.store.Get(ctx, domain.UserPK(userID), domain.SKProfile)
	if err != nil {
		return nil, err
	}
	var p domain.Profile
	if err := attributevalue.UnmarshalMap(item, &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile sets the named attributes on the profile, leaving the rest
// (in particular createdAt) untouched.
func (r *IdentityRepo) UpdateProfile(ctx context.Context, userID string, attrs map[string]interface{}) error {
	return r.store.UpdateAttributes(ctx, domain.UserPK(userID), domain.SKProfile, attrs)
}

// FindProfileByToken scans profiles for a matching authToken.
func (r *IdentityRepo) FindProfileByToken(ctx context.Context, token string) (*domain.Profile, error) {
	items, err := r.store.Scan(ctx,
		"#sk = :profile AND #authToken = :t",
		map[string]string{"#sk": "sk", "#authToken": "authToken"},
		map[string]types.AttributeValue{
			":profile": &types.AttributeValueMemberS{Value: domain.SKProfile},
			":t":       &types.AttributeValueMemberS{Value: token},
		},
		lookupScanBound,
	)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("profile for token: %w", domain.ErrNotFound)
	}
	var p domain.Profile
	if err := attributevalue.UnmarshalMap(items[0], &p); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	return &p, nil
}
