package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/middleware"
	"github.com/monexapp/monex-backend/internal/response"
)

type limitHandlers struct {
	ResponseHandler response.ResponseHandler
	FinanceSvc      FinanceService
}

func NewLimitHandlers(deps *Deps) *limitHandlers {
	return &limitHandlers{
		ResponseHandler: deps.ResponseHandler,
		FinanceSvc:      deps.FinanceSvc,
	}
}

func (h *limitHandlers) LimitRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.AddLimit)
	r.Put("/{limitId}", h.UpdateLimit)
	r.Delete("/{limitId}", h.DeleteLimit)
	return r
}

func (h *limitHandlers) AddLimit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	limit, err := h.FinanceSvc.AddLimit(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, limit)
}

func (h *limitHandlers) UpdateLimit(w http.ResponseWriter, r *http.Request) {
	limitID := chi.URLParam(r, "limitId")
	var req dto.UpdateLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	limit, err := h.FinanceSvc.UpdateLimit(r.Context(), uid, limitID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, limit)
}

func (h *limitHandlers) DeleteLimit(w http.ResponseWriter, r *http.Request) {
	limitID := chi.URLParam(r, "limitId")
	uid := middleware.UID(r.Context())
	if err := h.FinanceSvc.DeleteLimit(r.Context(), uid, limitID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}
