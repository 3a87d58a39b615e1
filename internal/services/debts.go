package services

import (
	"math"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/models"
)

// sentinelMonths stands in for "effectively never" when a plan's monthly
// payment is zero and the months-to-payoff division would be undefined.
const sentinelMonths = 999

// PlannerConfig tunes the amortization strategies. FallbackMonthlyIncome
// replaces a zero monthly income in the conscious and aggressive plans so
// they never degenerate to a payment of zero. Setting it to 0 disables
// the substitution and those plans report the sentinel payoff time.
type PlannerConfig struct {
	FallbackMonthlyIncome float64
}

// DefaultPlannerConfig mirrors the historical baseline of 3000/month.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{FallbackMonthlyIncome: 3000}
}

// CalculateDebtPlans computes the three payment strategies for a debt
// against the user's current monthly income. Returns nil for a settled
// debt (nothing left to plan).
//
//   - conservative: keep paying the current installment.
//   - conscious: 10% of monthly income, capped at the balance.
//   - aggressive: 20% of monthly income on top of the installment.
func CalculateDebtPlans(d models.Debt, monthlyIncome float64, cfg PlannerConfig) []dto.DebtPlan {
	balance := d.Balance()
	if balance <= 0 {
		return nil
	}

	income := monthlyIncome
	if income == 0 {
		income = cfg.FallbackMonthlyIncome
	}

	consciousPayment := math.Min(income*0.10, balance)
	aggressivePayment := income*0.20 + d.InstallmentValue

	return []dto.DebtPlan{
		{
			Strategy:    models.PlanConservative,
			Label:       "Plano Conservador",
			Description: "Mantém parcelas atuais. Sem esforço extra, mas demora mais.",
			Payment:     d.InstallmentValue,
			Months:      monthsToPayoff(balance, d.InstallmentValue),
		},
		{
			Strategy:    models.PlanConscious,
			Label:       "Plano Consciente",
			Description: "Usa 10% da sua renda. Reduz tempo e juros com equilíbrio.",
			Payment:     consciousPayment,
			Months:      monthsToPayoff(balance, consciousPayment),
		},
		{
			Strategy:    models.PlanAggressive,
			Label:       "Plano Agressivo",
			Description: "Foco total na eliminação. Sacrifício temporário para liberdade rápida.",
			Payment:     aggressivePayment,
			Months:      monthsToPayoff(balance, aggressivePayment),
		},
	}
}

// monthsToPayoff guards the zero-payment division with the sentinel
// instead of crashing or reporting infinity.
func monthsToPayoff(balance, payment float64) int {
	if payment <= 0 {
		return sentinelMonths
	}
	return int(math.Ceil(balance / payment))
}

// ApplyPayment clamps the payment so paidValue never exceeds totalValue.
// The caller records the companion expense with the ORIGINAL amount; only
// the debt side is clamped.
func ApplyPayment(d models.Debt, amount float64) models.Debt {
	d.PaidValue = math.Min(d.PaidValue+amount, d.TotalValue)
	return d
}
