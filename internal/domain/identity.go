package domain

import "time"

// Key layout for the identity table. Every record is addressed by a
// (pk, sk) string pair; the pk groups all records belonging to one
// email or one user.
const (
	SKMagic   = "MAGIC"
	SKUser    = "USER"
	SKProfile = "PROFILE"
)

// EmailPK builds the partition key for email-scoped records.
func EmailPK(email string) string { return "EMAIL#" + email }

// UserPK builds the partition key for user-scoped records.
func UserPK(userID string) string { return "USER#" + userID }

// MagicCode is the active magic-link code for an email. There is at most one
// per email; re-issuing overwrites it, so only the latest code redeems.
// Codes do not expire in v1.
type MagicCode struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Email     string `dynamodbav:"email"`
	Code      string `dynamodbav:"code"`
	CreatedAt string `dynamodbav:"createdAt"`
}

// EmailUser maps an email to its durable user id. Created insert-only at
// first redemption and never changed afterwards.
type EmailUser struct {
	PK        string `dynamodbav:"pk"`
	SK        string `dynamodbav:"sk"`
	Email     string `dynamodbav:"email"`
	UserID    string `dynamodbav:"userId"`
	CreatedAt string `dynamodbav:"createdAt"`
}

// Profile is the per-user record. CreatedAt is set exactly once (insert-only
// create); AuthToken and LastLoginAt are rewritten on every successful login;
// Board is written only through an explicit save.
type Profile struct {
	PK          string `json:"-" dynamodbav:"pk"`
	SK          string `json:"-" dynamodbav:"sk"`
	UserID      string `json:"userId" dynamodbav:"userId"`
	Email       string `json:"email" dynamodbav:"email"`
	CreatedAt   string `json:"createdAt" dynamodbav:"createdAt"`
	AuthToken   string `json:"-" dynamodbav:"authToken,omitempty"`
	LastLoginAt string `json:"lastLoginAt,omitempty" dynamodbav:"lastLoginAt,omitempty"`
	Board       []Card `json:"board,omitempty" dynamodbav:"board,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty" dynamodbav:"updatedAt,omitempty"`
}

// timestampLayout is RFC 3339 UTC with a fixed-width fraction. Trailing
// zeros are kept so encoded times sort lexicographically in time order,
// which the toss sort key depends on.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Timestamp formats a time the way all records store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
