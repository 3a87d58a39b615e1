package services

import (
	"time"

	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/dates"
)

// Limit status thresholds, derived read-only from spent/limit.
const (
	LimitStatusSafe     = "seguro"
	LimitStatusWarning  = "aviso"    // >= 80%
	LimitStatusExceeded = "excedido" // >= 100%
)

// ApplyExpenseToLimits is the incremental fast path: when a new expense
// lands, every limit in the same category whose period window contains
// the expense date gains its amount. O(limits), no history rescan; the
// reconciliation pass corrects any drift.
func ApplyExpenseToLimits(limits []models.SpendingLimit, category string, amount float64, date string, now time.Time) []models.SpendingLimit {
	tDate := dates.ParseLocal(date, now)

	out := make([]models.SpendingLimit, len(limits))
	for i, l := range limits {
		if l.Category == category && inPeriod(l.Period, tDate, now) {
			l.Spent += amount
		}
		out[i] = l
	}
	return out
}

// ReconcileLimits is the authoritative pass, run once per session load.
// Monthly limits whose bookkeeping month is stale are zeroed first; then
// every categorized limit has its spent recomputed from scratch against
// the full transaction history. Running it twice with unchanged inputs
// yields identical results.
func ReconcileLimits(limits []models.SpendingLimit, txs []models.Transaction, now time.Time) []models.SpendingLimit {
	currentMonth := int(now.Month()) - 1 // 0-11 bookkeeping

	out := make([]models.SpendingLimit, len(limits))
	for i, l := range limits {
		if l.Period == models.PeriodMonthly && l.LastResetMonth != currentMonth {
			l.Spent = 0
			l.LastResetMonth = currentMonth
		}
		if l.Category != "" {
			l.Spent = spentInPeriod(txs, l.Category, l.Period, now)
			l.LastResetMonth = currentMonth
		}
		out[i] = l
	}
	return out
}

func spentInPeriod(txs []models.Transaction, category, period string, now time.Time) float64 {
	var total float64
	for _, t := range txs {
		if t.Type != models.TransactionExpense || t.Category != category {
			continue
		}
		if inPeriod(period, dates.ParseLocal(t.Date, now), now) {
			total += t.Amount
		}
	}
	return total
}

func inPeriod(period string, tDate, now time.Time) bool {
	switch period {
	case models.PeriodMonthly:
		return dates.SameMonth(tDate, now)
	case models.PeriodAnnual:
		return dates.SameYear(tDate, now)
	case models.PeriodWeekly:
		return dates.DaysBetween(now, tDate) <= 7
	}
	return false
}

// LimitPercentage guards the zero-limit division: a limit of 0 reads as
// 0% consumed, never NaN.
func LimitPercentage(l models.SpendingLimit) float64 {
	if l.Limit <= 0 {
		return 0
	}
	return l.Spent / l.Limit * 100
}

// LimitStatusOf classifies consumption for display: excedido at 100%,
// aviso at 80%, seguro below.
func LimitStatusOf(l models.SpendingLimit) string {
	pct := LimitPercentage(l)
	switch {
	case pct >= 100:
		return LimitStatusExceeded
	case pct >= 80:
		return LimitStatusWarning
	default:
		return LimitStatusSafe
	}
}
