package models

import (
	"time"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single financial record. Transactions are immutable
// once created; the date carries no time component ("YYYY-MM-DD", local).
type Transaction struct {
	TransactionID string    `firestore:"transactionId" json:"transactionId"`
	Type          string    `firestore:"type" json:"type"` // "income" or "expense"
	Amount        float64   `firestore:"amount" json:"amount"`
	Date          string    `firestore:"date" json:"date"`
	Description   string    `firestore:"description" json:"description"`
	Category      string    `firestore:"category" json:"category"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
}
