package services

import (
	"fmt"
	"math"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/dates"
)

// defaultIncomeCategory is assigned when an income intent carries no
// category; expense categories are mandatory.
const defaultIncomeCategory = "Receita"

// ExpandRecurrence turns one user intent into the ordered list of
// concrete transactions to record, oldest occurrence first. The batch is
// all-or-nothing: any validation failure produces no transactions.
//
// Modes:
//   - single: one transaction, amount and description unmodified.
//   - recurring: N occurrences at monthly intervals, the FULL amount
//     repeats each period; description gains "(i/N)".
//   - installment (expense only): the entered total is split evenly
//     across N occurrences; description gains "(Parcela i/N)". The last
//     installment absorbs the rounding remainder so the series sums
//     exactly to the total.
func ExpandRecurrence(req dto.CreateTransactionRequest) ([]models.Transaction, error) {
	if err := validateIntent(req); err != nil {
		return nil, err
	}

	occurrences := req.Occurrences
	if req.Mode == dto.ModeSingle {
		occurrences = 1
	}

	category := req.Category
	if req.Type == models.TransactionIncome && category == "" {
		category = defaultIncomeCategory
	}

	perAmount := req.Amount
	if req.Mode == dto.ModeInstallment {
		perAmount = round2(req.Amount / float64(occurrences))
	}

	txs := make([]models.Transaction, 0, occurrences)
	for i := 0; i < occurrences; i++ {
		amount := perAmount
		if req.Mode == dto.ModeInstallment && i == occurrences-1 {
			amount = round2(req.Amount - perAmount*float64(occurrences-1))
		}
		txs = append(txs, models.Transaction{
			Type:        req.Type,
			Amount:      amount,
			Date:        dates.AddMonths(req.Date, i),
			Description: occurrenceDescription(req.Mode, req.Description, i, occurrences),
			Category:    category,
		})
	}
	return txs, nil
}

func validateIntent(req dto.CreateTransactionRequest) error {
	if req.Type != models.TransactionIncome && req.Type != models.TransactionExpense {
		return errs.NewValidationError(`type must be "income" or "expense"`)
	}
	if req.Amount <= 0 {
		return errs.NewValidationError("amount must be greater than zero")
	}
	if req.Date == "" {
		return errs.NewValidationError("date is required")
	}
	if req.Description == "" {
		return errs.NewValidationError("description is required")
	}
	if req.Type == models.TransactionExpense && req.Category == "" {
		return errs.NewValidationError("category is required for expenses")
	}

	switch req.Mode {
	case dto.ModeSingle:
	case dto.ModeRecurring:
		if req.Occurrences < 1 {
			return errs.NewValidationError("occurrences must be a positive integer")
		}
	case dto.ModeInstallment:
		if req.Type != models.TransactionExpense {
			return errs.NewValidationError("installments are only valid for expenses")
		}
		if req.Occurrences < 1 {
			return errs.NewValidationError("occurrences must be a positive integer")
		}
	default:
		return errs.NewValidationError("mode must be one of: single, recurring, installment")
	}
	return nil
}

func occurrenceDescription(mode, description string, i, total int) string {
	switch mode {
	case dto.ModeRecurring:
		return fmt.Sprintf("%s (%d/%d)", description, i+1, total)
	case dto.ModeInstallment:
		return fmt.Sprintf("%s (Parcela %d/%d)", description, i+1, total)
	default:
		return description
	}
}

// round2 rounds to currency precision (2 decimals).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
