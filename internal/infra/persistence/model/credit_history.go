package model

import (
	"time"

	"tradein/internal/domain/entity"
)

// CreditHistoryEntry is the document stored in the creditHistory collection.
type CreditHistoryEntry struct {
	OwnerID           string    `firestore:"ownerId"`
	ExchangeRequestID string    `firestore:"exchangeRequestId"`
	Amount            int64     `firestore:"amount"`
	Currency          string    `firestore:"currency"`
	Type              string    `firestore:"type"`
	AssignedBy        string    `firestore:"assignedBy"`
	LedgerSuccess     bool      `firestore:"ledgerSuccess"`
	LedgerCustomerID  string    `firestore:"ledgerCustomerId,omitempty"`
	TotalBalance      int64     `firestore:"totalBalance"`
	CreatedAt         time.Time `firestore:"createdAt"`
}

// FromCreditHistoryEntity converts a domain entity into its document shape.
func FromCreditHistoryEntity(e *entity.CreditHistoryEntry) *CreditHistoryEntry {
	return &CreditHistoryEntry{
		OwnerID:           e.OwnerID,
		ExchangeRequestID: e.ExchangeRequestID,
		Amount:            e.Amount,
		Currency:          e.Currency,
		Type:              e.Type,
		AssignedBy:        e.AssignedBy,
		LedgerSuccess:     e.LedgerSuccess,
		LedgerCustomerID:  e.LedgerCustomerID,
		TotalBalance:      e.TotalBalance,
		CreatedAt:         e.CreatedAt,
	}
}

// ToEntity converts the document back to a domain entity.
func (m *CreditHistoryEntry) ToEntity(id string) *entity.CreditHistoryEntry {
	return &entity.CreditHistoryEntry{
		ID:                id,
		OwnerID:           m.OwnerID,
		ExchangeRequestID: m.ExchangeRequestID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		Type:              m.Type,
		AssignedBy:        m.AssignedBy,
		LedgerSuccess:     m.LedgerSuccess,
		LedgerCustomerID:  m.LedgerCustomerID,
		TotalBalance:      m.TotalBalance,
		CreatedAt:         m.CreatedAt,
	}
}
