package models

import (
	"time"
)

// Goal is a savings goal. The two fixed goals are system-seeded, cannot
// be deleted and their names are immutable.
type Goal struct {
	GoalID        string    `firestore:"goalId" json:"goalId"`
	Name          string    `firestore:"name" json:"name"`
	Description   string    `firestore:"description" json:"description,omitempty"`
	TargetAmount  float64   `firestore:"targetAmount" json:"targetAmount"`
	CurrentAmount float64   `firestore:"currentAmount" json:"currentAmount"`
	Months        int       `firestore:"months" json:"months"` // planning horizon
	Category      string    `firestore:"category" json:"category"`
	IsFixed       bool      `firestore:"isFixed" json:"isFixed"`
	IsDefault     bool      `firestore:"isDefault" json:"isDefault"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
}

// MonthlyAmount is the contribution needed per month to reach the target
// within the planning horizon.
func (g Goal) MonthlyAmount() float64 {
	if g.Months <= 0 {
		return 0
	}
	return (g.TargetAmount - g.CurrentAmount) / float64(g.Months)
}
