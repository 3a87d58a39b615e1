package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/dates"
)

func (s *Session) AddDebt(ctx context.Context, req dto.CreateDebtRequest) (models.Debt, error) {
	if req.Name == "" {
		return models.Debt{}, errs.NewValidationError("name is required")
	}
	if req.TotalValue <= 0 {
		return models.Debt{}, errs.NewValidationError("totalValue must be greater than zero")
	}
	if req.InstallmentValue < 0 || req.InterestRate < 0 {
		return models.Debt{}, errs.NewValidationError("installmentValue and interestRate cannot be negative")
	}

	debt := models.Debt{
		DebtID:           uuid.New().String(),
		Name:             req.Name,
		TotalValue:       req.TotalValue,
		InstallmentValue: req.InstallmentValue,
		InterestRate:     req.InterestRate,
		Deadline:         req.Deadline,
		HighPriority:     req.HighPriority,
		SelectedPlan:     models.PlanConservative,
		CreatedAt:        s.svc.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.debts = append(append([]models.Debt{}, s.debts...), debt)
	s.persist(ctx, "debts.insert", func() error {
		return s.svc.debts.Insert(ctx, s.uid, debt)
	})
	return debt, nil
}

// UpdateDebt changes debt metadata. Switching the selected plan is a
// pure metadata update: paidValue and the other plans are untouched.
func (s *Session) UpdateDebt(ctx context.Context, debtID string, req dto.UpdateDebtRequest) (models.Debt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.debtIndex(debtID)
	if idx < 0 {
		return models.Debt{}, errs.NewNotFoundError("debt not found: " + debtID)
	}

	debt := s.debts[idx]
	if req.Name != nil {
		debt.Name = *req.Name
	}
	if req.InstallmentValue != nil {
		if *req.InstallmentValue < 0 {
			return models.Debt{}, errs.NewValidationError("installmentValue cannot be negative")
		}
		debt.InstallmentValue = *req.InstallmentValue
	}
	if req.InterestRate != nil {
		debt.InterestRate = *req.InterestRate
	}
	if req.Deadline != nil {
		debt.Deadline = *req.Deadline
	}
	if req.HighPriority != nil {
		debt.HighPriority = *req.HighPriority
	}
	if req.SelectedPlan != nil {
		switch *req.SelectedPlan {
		case models.PlanConservative, models.PlanConscious, models.PlanAggressive:
			debt.SelectedPlan = *req.SelectedPlan
		default:
			return models.Debt{}, errs.NewValidationError("selectedPlan must be one of: conservative, conscious, aggressive")
		}
	}

	s.replaceDebt(idx, debt)
	s.persist(ctx, "debts.update", func() error {
		return s.svc.debts.Update(ctx, s.uid, debt)
	})
	return debt, nil
}

func (s *Session) DeleteDebt(ctx context.Context, debtID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Debt, 0, len(s.debts))
	found := false
	for _, d := range s.debts {
		if d.DebtID == debtID {
			found = true
			continue
		}
		next = append(next, d)
	}
	if !found {
		return errs.NewNotFoundError("debt not found: " + debtID)
	}
	s.debts = next

	s.persist(ctx, "debts.delete", func() error {
		return s.svc.debts.Delete(ctx, s.uid, debtID)
	})
	return nil
}

// PayDebt clamps the payment into the debt and records the companion
// expense through the normal transaction path, so the payment shows up
// in aggregates and any matching spending limit. The debt write is
// issued before the transaction insert; the dual write is not atomic.
func (s *Session) PayDebt(ctx context.Context, debtID string, amount float64) (models.Debt, error) {
	if amount <= 0 {
		return models.Debt{}, errs.NewValidationError("amount must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.debtIndex(debtID)
	if idx < 0 {
		return models.Debt{}, errs.NewNotFoundError("debt not found: " + debtID)
	}

	debt := ApplyPayment(s.debts[idx], amount)
	s.replaceDebt(idx, debt)
	s.persist(ctx, "debts.update", func() error {
		return s.svc.debts.Update(ctx, s.uid, debt)
	})

	// Companion expense carries the amount as passed in, not the
	// clamped delta.
	s.record(ctx, []models.Transaction{{
		Type:        models.TransactionExpense,
		Amount:      amount,
		Date:        s.svc.now().Format(dates.Layout),
		Description: "Pagamento de Dívida: " + debt.Name,
		Category:    "Dívidas",
	}})

	return debt, nil
}

// DebtPlans computes the three strategies for one debt against the
// current monthly income.
func (s *Session) DebtPlans(debtID string) ([]dto.DebtPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.debtIndex(debtID)
	if idx < 0 {
		return nil, errs.NewNotFoundError("debt not found: " + debtID)
	}
	return CalculateDebtPlans(s.debts[idx], s.aggregates.Monthly.Income, s.svc.planner), nil
}

func (s *Session) debtIndex(debtID string) int {
	for i, d := range s.debts {
		if d.DebtID == debtID {
			return i
		}
	}
	return -1
}

func (s *Session) replaceDebt(idx int, debt models.Debt) {
	next := make([]models.Debt, len(s.debts))
	copy(next, s.debts)
	next[idx] = debt
	s.debts = next
}
