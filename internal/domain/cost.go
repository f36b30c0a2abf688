package domain

// CostRow is one flattened cost report entry. Amounts are in the currency
// reported by the API (USD unless stated otherwise).
type CostRow struct {
	Date        string
	Description string
	Amount      float64
	Currency    string
	Model       string
	WorkspaceID string
	APIKeyID    string
	ServiceTier string
	CostType    string
	TokenType   string
}
