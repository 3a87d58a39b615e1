package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/models"
)

// Shared stubs for the handler tests.

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

// stubFinanceService records the last call and returns canned values.
type stubFinanceService struct {
	lastUID    string
	lastID     string
	lastAmount float64
	lastReq    any
	err        error

	snapshot dto.Snapshot
	batch    []models.Transaction
	goal     models.Goal
	goals    []models.Goal
	limit    models.SpendingLimit
	debt     models.Debt
	plans    []dto.DebtPlan
	card     models.CreditCard
}

func (s *stubFinanceService) Snapshot(_ context.Context, uid string) (dto.Snapshot, error) {
	s.lastUID = uid
	return s.snapshot, s.err
}

func (s *stubFinanceService) AddTransactions(_ context.Context, uid string, req dto.CreateTransactionRequest) ([]models.Transaction, error) {
	s.lastUID, s.lastReq = uid, req
	return s.batch, s.err
}

func (s *stubFinanceService) AddGoal(_ context.Context, uid string, req dto.CreateGoalRequest) (models.Goal, error) {
	s.lastUID, s.lastReq = uid, req
	return s.goal, s.err
}

func (s *stubFinanceService) UpdateGoal(_ context.Context, uid, goalID string, req dto.UpdateGoalRequest) (models.Goal, error) {
	s.lastUID, s.lastID, s.lastReq = uid, goalID, req
	return s.goal, s.err
}

func (s *stubFinanceService) DeleteGoal(_ context.Context, uid, goalID string) error {
	s.lastUID, s.lastID = uid, goalID
	return s.err
}

func (s *stubFinanceService) ResetGoals(_ context.Context, uid string) ([]models.Goal, error) {
	s.lastUID = uid
	return s.goals, s.err
}

func (s *stubFinanceService) AddLimit(_ context.Context, uid string, req dto.CreateLimitRequest) (models.SpendingLimit, error) {
	s.lastUID, s.lastReq = uid, req
	return s.limit, s.err
}

func (s *stubFinanceService) UpdateLimit(_ context.Context, uid, limitID string, req dto.UpdateLimitRequest) (models.SpendingLimit, error) {
	s.lastUID, s.lastID, s.lastReq = uid, limitID, req
	return s.limit, s.err
}

func (s *stubFinanceService) DeleteLimit(_ context.Context, uid, limitID string) error {
	s.lastUID, s.lastID = uid, limitID
	return s.err
}

func (s *stubFinanceService) AddDebt(_ context.Context, uid string, req dto.CreateDebtRequest) (models.Debt, error) {
	s.lastUID, s.lastReq = uid, req
	return s.debt, s.err
}

func (s *stubFinanceService) UpdateDebt(_ context.Context, uid, debtID string, req dto.UpdateDebtRequest) (models.Debt, error) {
	s.lastUID, s.lastID, s.lastReq = uid, debtID, req
	return s.debt, s.err
}

func (s *stubFinanceService) DeleteDebt(_ context.Context, uid, debtID string) error {
	s.lastUID, s.lastID = uid, debtID
	return s.err
}

func (s *stubFinanceService) PayDebt(_ context.Context, uid, debtID string, amount float64) (models.Debt, error) {
	s.lastUID, s.lastID, s.lastAmount = uid, debtID, amount
	return s.debt, s.err
}

func (s *stubFinanceService) DebtPlans(_ context.Context, uid, debtID string) ([]dto.DebtPlan, error) {
	s.lastUID, s.lastID = uid, debtID
	return s.plans, s.err
}

func (s *stubFinanceService) AddCard(_ context.Context, uid string, req dto.CreateCardRequest) (models.CreditCard, error) {
	s.lastUID, s.lastReq = uid, req
	return s.card, s.err
}

func (s *stubFinanceService) UpdateCard(_ context.Context, uid, cardID string, req dto.UpdateCardRequest) (models.CreditCard, error) {
	s.lastUID, s.lastID, s.lastReq = uid, cardID, req
	return s.card, s.err
}

func (s *stubFinanceService) DeleteCard(_ context.Context, uid, cardID string) error {
	s.lastUID, s.lastID = uid, cardID
	return s.err
}

func (s *stubFinanceService) AddInvoiceExpense(_ context.Context, uid, cardID string, req dto.InvoiceRequest) (models.CreditCard, error) {
	s.lastUID, s.lastID, s.lastReq = uid, cardID, req
	return s.card, s.err
}
