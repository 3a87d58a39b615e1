package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/middleware"
	"github.com/monexapp/monex-backend/internal/response"
)

type debtHandlers struct {
	ResponseHandler response.ResponseHandler
	FinanceSvc      FinanceService
}

func NewDebtHandlers(deps *Deps) *debtHandlers {
	return &debtHandlers{
		ResponseHandler: deps.ResponseHandler,
		FinanceSvc:      deps.FinanceSvc,
	}
}

func (h *debtHandlers) DebtRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.AddDebt)
	r.Put("/{debtId}", h.UpdateDebt)
	r.Delete("/{debtId}", h.DeleteDebt)
	r.Post("/{debtId}/pay", h.PayDebt)
	r.Get("/{debtId}/plans", h.DebtPlans)
	return r
}

func (h *debtHandlers) AddDebt(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	debt, err := h.FinanceSvc.AddDebt(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, debt)
}

func (h *debtHandlers) UpdateDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	var req dto.UpdateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	debt, err := h.FinanceSvc.UpdateDebt(r.Context(), uid, debtID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, debt)
}

func (h *debtHandlers) DeleteDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	uid := middleware.UID(r.Context())
	if err := h.FinanceSvc.DeleteDebt(r.Context(), uid, debtID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *debtHandlers) PayDebt(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	var req dto.PayDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	debt, err := h.FinanceSvc.PayDebt(r.Context(), uid, debtID, req.Amount)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, debt)
}

func (h *debtHandlers) DebtPlans(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtId")
	uid := middleware.UID(r.Context())
	plans, err := h.FinanceSvc.DebtPlans(r.Context(), uid, debtID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, plans)
}
