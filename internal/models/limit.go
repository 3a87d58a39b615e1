package models

import (
	"time"
)

const (
	PeriodWeekly  = "Semanal"
	PeriodMonthly = "Mensal"
	PeriodAnnual  = "Anual"
)

// SpendingLimit caps spending in one category over a period window.
// Spent is a derived cache: incremented as matching expenses arrive and
// recomputed in full on each reconciliation pass.
type SpendingLimit struct {
	LimitID        string    `firestore:"limitId" json:"limitId"`
	Name           string    `firestore:"name" json:"name"`
	Category       string    `firestore:"category" json:"category"`
	Limit          float64   `firestore:"limit" json:"limit"`
	Period         string    `firestore:"period" json:"period"` // Semanal, Mensal, Anual
	Spent          float64   `firestore:"spent" json:"spent"`
	LastResetMonth int       `firestore:"lastResetMonth" json:"lastResetMonth"` // 0-11
	Color          string    `firestore:"color" json:"color"`
	CreatedAt      time.Time `firestore:"createdAt" json:"createdAt"`
}
