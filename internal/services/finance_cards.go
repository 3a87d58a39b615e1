package services

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/dates"
)

func (s *Session) AddCard(ctx context.Context, req dto.CreateCardRequest) (models.CreditCard, error) {
	if req.Name == "" {
		return models.CreditCard{}, errs.NewValidationError("name is required")
	}
	if req.Limit <= 0 {
		return models.CreditCard{}, errs.NewValidationError("limit must be greater than zero")
	}
	if req.DueDate < 1 || req.DueDate > 31 {
		return models.CreditCard{}, errs.NewValidationError("dueDate must be a day of month between 1 and 31")
	}

	bank := req.Bank
	if !slices.Contains(models.KnownBanks, bank) {
		bank = "Outro"
	}

	card := models.CreditCard{
		CardID:     uuid.New().String(),
		Name:       req.Name,
		Bank:       bank,
		Limit:      req.Limit,
		DueDate:    req.DueDate,
		LastDigits: req.LastDigits,
		CreatedAt:  s.svc.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cards = append(append([]models.CreditCard{}, s.cards...), card)
	s.persist(ctx, "credit_cards.insert", func() error {
		return s.svc.cards.Insert(ctx, s.uid, card)
	})
	return card, nil
}

func (s *Session) UpdateCard(ctx context.Context, cardID string, req dto.UpdateCardRequest) (models.CreditCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cardIndex(cardID)
	if idx < 0 {
		return models.CreditCard{}, errs.NewNotFoundError("credit card not found: " + cardID)
	}

	card := s.cards[idx]
	if req.Name != nil {
		card.Name = *req.Name
	}
	if req.Bank != nil {
		if slices.Contains(models.KnownBanks, *req.Bank) {
			card.Bank = *req.Bank
		} else {
			card.Bank = "Outro"
		}
	}
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return models.CreditCard{}, errs.NewValidationError("limit must be greater than zero")
		}
		card.Limit = *req.Limit
	}
	if req.DueDate != nil {
		if *req.DueDate < 1 || *req.DueDate > 31 {
			return models.CreditCard{}, errs.NewValidationError("dueDate must be a day of month between 1 and 31")
		}
		card.DueDate = *req.DueDate
	}
	if req.LastDigits != nil {
		card.LastDigits = *req.LastDigits
	}

	s.replaceCard(idx, card)
	s.persist(ctx, "credit_cards.update", func() error {
		return s.svc.cards.Update(ctx, s.uid, card)
	})
	return card, nil
}

func (s *Session) DeleteCard(ctx context.Context, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.CreditCard, 0, len(s.cards))
	found := false
	for _, c := range s.cards {
		if c.CardID == cardID {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		return errs.NewNotFoundError("credit card not found: " + cardID)
	}
	s.cards = next

	s.persist(ctx, "credit_cards.delete", func() error {
		return s.svc.cards.Delete(ctx, s.uid, cardID)
	})
	return nil
}

// AddInvoiceExpense imports an invoice amount onto the card's statement
// and records the companion expense. The bill is allowed past the limit;
// over-limit shows up as negative available credit, never an error.
func (s *Session) AddInvoiceExpense(ctx context.Context, cardID string, req dto.InvoiceRequest) (models.CreditCard, error) {
	if req.Amount <= 0 {
		return models.CreditCard{}, errs.NewValidationError("amount must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.cardIndex(cardID)
	if idx < 0 {
		return models.CreditCard{}, errs.NewNotFoundError("credit card not found: " + cardID)
	}

	card := s.cards[idx]
	card.CurrentBill += req.Amount
	s.replaceCard(idx, card)
	s.persist(ctx, "credit_cards.update", func() error {
		return s.svc.cards.Update(ctx, s.uid, card)
	})

	description := req.Description
	if description == "" {
		description = defaultInvoiceDescription
	}
	s.record(ctx, []models.Transaction{{
		Type:        models.TransactionExpense,
		Amount:      req.Amount,
		Date:        s.svc.now().Format(dates.Layout),
		Description: description,
		Category:    invoiceCategory,
	}})

	return card, nil
}

func (s *Session) cardIndex(cardID string) int {
	for i, c := range s.cards {
		if c.CardID == cardID {
			return i
		}
	}
	return -1
}

func (s *Session) replaceCard(idx int, card models.CreditCard) {
	next := make([]models.CreditCard, len(s.cards))
	copy(next, s.cards)
	next[idx] = card
	s.cards = next
}
