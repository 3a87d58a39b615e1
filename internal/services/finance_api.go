package services

import (
	"context"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/models"
)

// uid-keyed wrappers over the per-user session. Handlers talk to these;
// the session lookup (and first-use load) stays an implementation
// detail.

func (f *Finance) Snapshot(ctx context.Context, uid string) (dto.Snapshot, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return dto.Snapshot{}, err
	}
	return s.Snapshot(), nil
}

func (f *Finance) AddTransactions(ctx context.Context, uid string, req dto.CreateTransactionRequest) ([]models.Transaction, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.AddTransactions(ctx, req)
}

func (f *Finance) AddGoal(ctx context.Context, uid string, req dto.CreateGoalRequest) (models.Goal, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.Goal{}, err
	}
	return s.AddGoal(ctx, req)
}

func (f *Finance) UpdateGoal(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (models.Goal, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.Goal{}, err
	}
	return s.UpdateGoal(ctx, goalID, req)
}

func (f *Finance) DeleteGoal(ctx context.Context, uid, goalID string) error {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return err
	}
	return s.DeleteGoal(ctx, goalID)
}

func (f *Finance) ResetGoals(ctx context.Context, uid string) ([]models.Goal, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.ResetGoals(ctx), nil
}

func (f *Finance) AddLimit(ctx context.Context, uid string, req dto.CreateLimitRequest) (models.SpendingLimit, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.SpendingLimit{}, err
	}
	return s.AddLimit(ctx, req)
}

func (f *Finance) UpdateLimit(ctx context.Context, uid, limitID string, req dto.UpdateLimitRequest) (models.SpendingLimit, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.SpendingLimit{}, err
	}
	return s.UpdateLimit(ctx, limitID, req)
}

func (f *Finance) DeleteLimit(ctx context.Context, uid, limitID string) error {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return err
	}
	return s.DeleteLimit(ctx, limitID)
}

func (f *Finance) AddDebt(ctx context.Context, uid string, req dto.CreateDebtRequest) (models.Debt, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.Debt{}, err
	}
	return s.AddDebt(ctx, req)
}

func (f *Finance) UpdateDebt(ctx context.Context, uid, debtID string, req dto.UpdateDebtRequest) (models.Debt, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.Debt{}, err
	}
	return s.UpdateDebt(ctx, debtID, req)
}

func (f *Finance) DeleteDebt(ctx context.Context, uid, debtID string) error {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return err
	}
	return s.DeleteDebt(ctx, debtID)
}

func (f *Finance) PayDebt(ctx context.Context, uid, debtID string, amount float64) (models.Debt, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.Debt{}, err
	}
	return s.PayDebt(ctx, debtID, amount)
}

func (f *Finance) DebtPlans(ctx context.Context, uid, debtID string) ([]dto.DebtPlan, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return nil, err
	}
	return s.DebtPlans(debtID)
}

func (f *Finance) AddCard(ctx context.Context, uid string, req dto.CreateCardRequest) (models.CreditCard, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.CreditCard{}, err
	}
	return s.AddCard(ctx, req)
}

func (f *Finance) UpdateCard(ctx context.Context, uid, cardID string, req dto.UpdateCardRequest) (models.CreditCard, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.CreditCard{}, err
	}
	return s.UpdateCard(ctx, cardID, req)
}

func (f *Finance) DeleteCard(ctx context.Context, uid, cardID string) error {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return err
	}
	return s.DeleteCard(ctx, cardID)
}

func (f *Finance) AddInvoiceExpense(ctx context.Context, uid, cardID string, req dto.InvoiceRequest) (models.CreditCard, error) {
	s, err := f.Session(ctx, uid)
	if err != nil {
		return models.CreditCard{}, err
	}
	return s.AddInvoiceExpense(ctx, cardID, req)
}
