package models

import (
	"time"
)

const (
	PlanConservative = "conservative"
	PlanConscious    = "conscious"
	PlanAggressive   = "aggressive"
)

// Debt tracks an outstanding obligation and its payoff progress.
// PaidValue is monotonically non-decreasing and never exceeds TotalValue.
type Debt struct {
	DebtID           string    `firestore:"debtId" json:"debtId"`
	Name             string    `firestore:"name" json:"name"`
	TotalValue       float64   `firestore:"totalValue" json:"totalValue"`
	PaidValue        float64   `firestore:"paidValue" json:"paidValue"`
	InstallmentValue float64   `firestore:"installmentValue" json:"installmentValue"`
	InterestRate     float64   `firestore:"interestRate" json:"interestRate"` // % per month
	Deadline         string    `firestore:"deadline" json:"deadline,omitempty"`
	HighPriority     bool      `firestore:"highPriority" json:"highPriority"`
	SelectedPlan     string    `firestore:"selectedPlan" json:"selectedPlan"`
	CreatedAt        time.Time `firestore:"createdAt" json:"createdAt"`
}

// Balance is the amount still owed.
func (d Debt) Balance() float64 {
	return d.TotalValue - d.PaidValue
}

// Settled reports whether the debt is fully paid. No plan is computed
// for a settled debt.
func (d Debt) Settled() bool {
	return d.Balance() <= 0
}
