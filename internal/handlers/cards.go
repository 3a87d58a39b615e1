package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/middleware"
	"github.com/monexapp/monex-backend/internal/response"
)

type cardHandlers struct {
	ResponseHandler response.ResponseHandler
	FinanceSvc      FinanceService
}

func NewCardHandlers(deps *Deps) *cardHandlers {
	return &cardHandlers{
		ResponseHandler: deps.ResponseHandler,
		FinanceSvc:      deps.FinanceSvc,
	}
}

func (h *cardHandlers) CardRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.AddCard)
	r.Put("/{cardId}", h.UpdateCard)
	r.Delete("/{cardId}", h.DeleteCard)
	r.Post("/{cardId}/invoice", h.AddInvoiceExpense)
	return r
}

func (h *cardHandlers) AddCard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	card, err := h.FinanceSvc.AddCard(r.Context(), uid, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusCreated, card)
}

func (h *cardHandlers) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	var req dto.UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	card, err := h.FinanceSvc.UpdateCard(r.Context(), uid, cardID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, card)
}

func (h *cardHandlers) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	uid := middleware.UID(r.Context())
	if err := h.FinanceSvc.DeleteCard(r.Context(), uid, cardID); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func (h *cardHandlers) AddInvoiceExpense(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")
	var req dto.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	uid := middleware.UID(r.Context())
	card, err := h.FinanceSvc.AddInvoiceExpense(r.Context(), uid, cardID, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, card)
}
