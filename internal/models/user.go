package models

import (
	"time"
)

// User is the profile record. The engine consumes it read-only; the
// subscription status is owned by the external payment collaborator.
type User struct {
	UID                  string    `firestore:"uid" json:"uid"`
	Email                string    `firestore:"email" json:"email"`
	FullName             string    `firestore:"fullName" json:"fullName"`
	SubscriptionStatus   string    `firestore:"subscriptionStatus" json:"subscriptionStatus"`
	SavingsTargetPercent int       `firestore:"savingsTargetPercent" json:"savingsTargetPercent"`
	DebtTypes            []string  `firestore:"debtTypes" json:"debtTypes"`
	Insurance            []string  `firestore:"insurance" json:"insurance"`
	CreatedAt            time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Subscribed reports whether the user has an active or trialing plan.
func (u User) Subscribed() bool {
	return u.SubscriptionStatus == "active" || u.SubscriptionStatus == "trialing"
}

// Normalize applies the schema defaults: nil slices become empty and the
// savings target falls back to 20%. Records written by older clients may
// miss these fields entirely.
func (u *User) Normalize() {
	if u.DebtTypes == nil {
		u.DebtTypes = []string{}
	}
	if u.Insurance == nil {
		u.Insurance = []string{}
	}
	if u.SavingsTargetPercent == 0 {
		u.SavingsTargetPercent = 20
	}
}
