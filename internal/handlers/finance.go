package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/middleware"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/internal/response"
)

// FinanceService is everything the HTTP surface needs from the finance
// engine. One interface rather than one per route group: every method
// lands on the same per-user session.
type FinanceService interface {
	Snapshot(ctx context.Context, uid string) (dto.Snapshot, error)
	AddTransactions(ctx context.Context, uid string, req dto.CreateTransactionRequest) ([]models.Transaction, error)

	AddGoal(ctx context.Context, uid string, req dto.CreateGoalRequest) (models.Goal, error)
	UpdateGoal(ctx context.Context, uid, goalID string, req dto.UpdateGoalRequest) (models.Goal, error)
	DeleteGoal(ctx context.Context, uid, goalID string) error
	ResetGoals(ctx context.Context, uid string) ([]models.Goal, error)

	AddLimit(ctx context.Context, uid string, req dto.CreateLimitRequest) (models.SpendingLimit, error)
	UpdateLimit(ctx context.Context, uid, limitID string, req dto.UpdateLimitRequest) (models.SpendingLimit, error)
	DeleteLimit(ctx context.Context, uid, limitID string) error

	AddDebt(ctx context.Context, uid string, req dto.CreateDebtRequest) (models.Debt, error)
	UpdateDebt(ctx context.Context, uid, debtID string, req dto.UpdateDebtRequest) (models.Debt, error)
	DeleteDebt(ctx context.Context, uid, debtID string) error
	PayDebt(ctx context.Context, uid, debtID string, amount float64) (models.Debt, error)
	DebtPlans(ctx context.Context, uid, debtID string) ([]dto.DebtPlan, error)

	AddCard(ctx context.Context, uid string, req dto.CreateCardRequest) (models.CreditCard, error)
	UpdateCard(ctx context.Context, uid, cardID string, req dto.UpdateCardRequest) (models.CreditCard, error)
	DeleteCard(ctx context.Context, uid, cardID string) error
	AddInvoiceExpense(ctx context.Context, uid, cardID string, req dto.InvoiceRequest) (models.CreditCard, error)
}

type financeHandlers struct {
	ResponseHandler response.ResponseHandler
	FinanceSvc      FinanceService
}

func NewFinanceHandlers(deps *Deps) *financeHandlers {
	return &financeHandlers{
		ResponseHandler: deps.ResponseHandler,
		FinanceSvc:      deps.FinanceSvc,
	}
}

func (h *financeHandlers) FinanceRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetSnapshot)
	return r
}

// GetSnapshot returns the full read-model for the authenticated user.
func (h *financeHandlers) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	uid := middleware.UID(r.Context())
	snap, err := h.FinanceSvc.Snapshot(r.Context(), uid)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, snap)
}
