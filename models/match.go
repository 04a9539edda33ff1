package models

// Match is a cached compatibility result between two users. It is derived
// data: regenerating matches for a user recomputes every row from the live
// profiles, keyed by (userId, matchedUserId) so a regeneration overwrites
// rather than duplicates.
type Match struct {
	UserID             string   `dynamodbav:"userId" json:"userId"`               // Partition Key (owner)
	MatchedUserID      string   `dynamodbav:"matchedUserId" json:"matchedUserId"` // Sort Key
	CompatibilityScore int      `dynamodbav:"compatibilityScore" json:"compatibilityScore"`
	Reason             string   `dynamodbav:"reason" json:"reason"`
	CommonSkills       []string `dynamodbav:"commonSkills,omitempty" json:"commonSkills,omitempty"`
	CreatedAt          string   `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchWithProfile joins a match row with the matched user's current
// profile so the dashboard shows live data.
type MatchWithProfile struct {
	Match
	Profile UserProfile `json:"profile"`
}

// MatchesTable is the DynamoDB table name for generated matches
const MatchesTable = "Matches"
