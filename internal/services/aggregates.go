package services

import (
	"time"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/dates"
)

// Aggregates holds the three derived stat windows. They are a pure
// function of (transactions, now) and are recomputed in full after every
// transaction-collection change; n is one user's history, so the O(n)
// rescan is cheap.
type Aggregates struct {
	Lifetime dto.Stats
	Monthly  dto.Stats
	Annual   dto.Stats
}

// CalculateAggregates derives the lifetime, current-month and
// current-year totals from the full transaction list.
func CalculateAggregates(txs []models.Transaction, now time.Time) Aggregates {
	var agg Aggregates

	for _, t := range txs {
		tDate := dates.ParseLocal(t.Date, now)
		income := t.Type == models.TransactionIncome

		if income {
			agg.Lifetime.Income += t.Amount
		} else {
			agg.Lifetime.Expenses += t.Amount
		}

		if dates.SameYear(tDate, now) {
			if income {
				agg.Annual.Income += t.Amount
			} else {
				agg.Annual.Expenses += t.Amount
			}
		}

		if dates.SameMonth(tDate, now) {
			if income {
				agg.Monthly.Income += t.Amount
			} else {
				agg.Monthly.Expenses += t.Amount
			}
		}
	}

	agg.Lifetime.Balance = agg.Lifetime.Income - agg.Lifetime.Expenses
	agg.Monthly.Balance = agg.Monthly.Income - agg.Monthly.Expenses
	agg.Annual.Balance = agg.Annual.Income - agg.Annual.Expenses
	return agg
}
