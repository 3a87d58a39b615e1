package dto

import (
	"github.com/monexapp/monex-backend/internal/models"
)

// Recurrence modes accepted by the transaction intake.
const (
	ModeSingle      = "single"
	ModeRecurring   = "recurring"
	ModeInstallment = "installment"
)

// CreateTransactionRequest is a single user intent. Depending on Mode it
// expands into 1..N concrete transactions.
type CreateTransactionRequest struct {
	Type        string  `json:"type"` // "income" or "expense"
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"` // YYYY-MM-DD, first occurrence
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Mode        string  `json:"mode"`        // single, recurring, installment
	Occurrences int     `json:"occurrences"` // ignored for single
}

type CreateGoalRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"targetAmount"`
	Months       int     `json:"months"`
	Category     string  `json:"category"`
}

type UpdateGoalRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TargetAmount  *float64 `json:"targetAmount,omitempty"`
	CurrentAmount *float64 `json:"currentAmount,omitempty"`
	Months        *int     `json:"months,omitempty"`
	Category      *string  `json:"category,omitempty"`
}

type CreateLimitRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Period   string  `json:"period"` // Semanal, Mensal, Anual
}

type UpdateLimitRequest struct {
	Name     *string  `json:"name,omitempty"`
	Category *string  `json:"category,omitempty"`
	Limit    *float64 `json:"limit,omitempty"`
	Period   *string  `json:"period,omitempty"`
}

type CreateDebtRequest struct {
	Name             string  `json:"name"`
	TotalValue       float64 `json:"totalValue"`
	InstallmentValue float64 `json:"installmentValue"`
	InterestRate     float64 `json:"interestRate"`
	Deadline         string  `json:"deadline,omitempty"`
	HighPriority     bool    `json:"highPriority"`
}

type UpdateDebtRequest struct {
	Name             *string  `json:"name,omitempty"`
	InstallmentValue *float64 `json:"installmentValue,omitempty"`
	InterestRate     *float64 `json:"interestRate,omitempty"`
	Deadline         *string  `json:"deadline,omitempty"`
	HighPriority     *bool    `json:"highPriority,omitempty"`
	SelectedPlan     *string  `json:"selectedPlan,omitempty"`
}

type PayDebtRequest struct {
	Amount float64 `json:"amount"`
}

type CreateCardRequest struct {
	Name       string  `json:"name"`
	Bank       string  `json:"bank"`
	Limit      float64 `json:"limit"`
	DueDate    int     `json:"dueDate"`
	LastDigits string  `json:"lastDigits"`
}

type UpdateCardRequest struct {
	Name       *string  `json:"name,omitempty"`
	Bank       *string  `json:"bank,omitempty"`
	Limit      *float64 `json:"limit,omitempty"`
	DueDate    *int     `json:"dueDate,omitempty"`
	LastDigits *string  `json:"lastDigits,omitempty"`
}

type InvoiceRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type UpdateProfileRequest struct {
	FullName             *string   `json:"fullName,omitempty"`
	SavingsTargetPercent *int      `json:"savingsTargetPercent,omitempty"`
	DebtTypes            *[]string `json:"debtTypes,omitempty"`
	Insurance            *[]string `json:"insurance,omitempty"`
}

// ProfileResponse decorates the stored profile with the derived
// subscription flag the clients key on.
type ProfileResponse struct {
	*models.User
	IsSubscribed bool `json:"isSubscribed"`
}

// Stats is one aggregate window: lifetime, current month or current year.
type Stats struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// DebtPlan is one computed amortization strategy.
type DebtPlan struct {
	Strategy    string  `json:"strategy"` // conservative, conscious, aggressive
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Payment     float64 `json:"payment"` // per month
	Months      int     `json:"months"`  // to payoff; 999 sentinel when undefined
}

// LimitStatus is the derived read-model for one spending limit.
type LimitStatus struct {
	models.SpendingLimit
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"` // seguro, aviso, excedido
}

// CardStatus is the derived read-model for one credit card.
type CardStatus struct {
	models.CreditCard
	Available    float64 `json:"available"`
	UsagePercent float64 `json:"usagePercent"`
	UsageBand    string  `json:"usageBand"` // seguro (<50), atencao (50-90), critico (>90)
}

// Snapshot is the full read-model handed to presentation code.
type Snapshot struct {
	Transactions []models.Transaction `json:"transactions"`
	Goals        []models.Goal        `json:"goals"`
	Debts        []models.Debt        `json:"debts"`
	CreditCards  []CardStatus         `json:"creditCards"`
	Limits       []LimitStatus        `json:"spendingLimits"`
	Stats        Stats                `json:"stats"`
	MonthlyStats Stats                `json:"monthlyStats"`
	AnnualStats  Stats                `json:"annualStats"`
}
