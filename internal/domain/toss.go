package domain

// CommunityPK is the single partition all toss records share. The sort key
// embeds the toss timestamp so the key itself sorts chronologically.
const CommunityPK = "COMMUNITY"

// TossSK builds the sort key for a toss record.
func TossSK(tossedAt, tossID string) string {
	return "TOSS#" + tossedAt + "#" + tossID
}

// Toss is one card published to the community feed. Records are append-only;
// they are never mutated or deleted.
type Toss struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	TossID   string `dynamodbav:"tossId"`
	TossedAt string `dynamodbav:"tossedAt"`
	UserID   string `dynamodbav:"userId"`
	Card     Card   `dynamodbav:"card"`
}
