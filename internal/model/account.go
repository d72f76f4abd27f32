package model

import "strings"

// AccountType classifies the five canonical top-level account categories
// in the journal output.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// topLevelTokens maps the source file's top-level account names (lowercased)
// to the journal token used in account declarations. The only rename is
// income -> revenue; the rest pass through.
var topLevelTokens = map[string]AccountType{
	"asset":     AccountTypeAsset,
	"liability": AccountTypeLiability,
	"equity":    AccountTypeEquity,
	"income":    AccountTypeRevenue,
	"expense":   AccountTypeExpense,
}

// CanonicalToken returns the journal token for a top-level account name.
// Matching is case-insensitive; ok is false for anything that is not one of
// the five canonical names.
func CanonicalToken(name string) (string, bool) {
	t, ok := topLevelTokens[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return string(t), true
}
