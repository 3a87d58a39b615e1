package models

import (
	"time"
)

// KnownBanks are the issuers offered in the card form; anything else is
// stored as "Outro".
var KnownBanks = []string{"Nubank", "Itaú", "Bradesco", "Santander", "Banco do Brasil", "Caixa", "Inter", "C6 Bank", "Outro"}

// CreditCard tracks a card's statement balance against its limit.
// Available credit may go negative when over-limit; it is not clamped.
type CreditCard struct {
	CardID      string    `firestore:"cardId" json:"cardId"`
	Name        string    `firestore:"name" json:"name"`
	Bank        string    `firestore:"bank" json:"bank"`
	Limit       float64   `firestore:"limit" json:"limit"`
	DueDate     int       `firestore:"dueDate" json:"dueDate"` // day of month, 1-31
	LastDigits  string    `firestore:"lastDigits" json:"lastDigits"`
	CurrentBill float64   `firestore:"currentBill" json:"currentBill"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

// Available is the remaining credit on the card.
func (c CreditCard) Available() float64 {
	return c.Limit - c.CurrentBill
}
