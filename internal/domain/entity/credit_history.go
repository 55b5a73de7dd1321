package entity

import "time"

// Credit history entry type and currency values.
const (
	CreditTypeExchange   = "exchange_credit"
	CreditCurrencyPoints = "points"
)

// CreditHistoryEntry is an immutable audit record of one credit grant.
// Entries are append-only: never updated, never deleted.
type CreditHistoryEntry struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"owner_id"`
	ExchangeRequestID string    `json:"exchange_request_id"`
	Amount            int64     `json:"amount"`
	Currency          string    `json:"currency"`
	Type              string    `json:"type"`
	AssignedBy        string    `json:"assigned_by"`
	LedgerSuccess     bool      `json:"ledger_success"`
	LedgerCustomerID  string    `json:"ledger_customer_id,omitempty"`
	TotalBalance      int64     `json:"total_balance"`
	CreatedAt         time.Time `json:"created_at"`
}
