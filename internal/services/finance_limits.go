package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
)

func validPeriod(p string) bool {
	return p == models.PeriodWeekly || p == models.PeriodMonthly || p == models.PeriodAnnual
}

func (s *Session) AddLimit(ctx context.Context, req dto.CreateLimitRequest) (models.SpendingLimit, error) {
	if req.Name == "" {
		return models.SpendingLimit{}, errs.NewValidationError("name is required")
	}
	if req.Limit <= 0 {
		return models.SpendingLimit{}, errs.NewValidationError("limit must be greater than zero")
	}
	if !validPeriod(req.Period) {
		return models.SpendingLimit{}, errs.NewValidationError("period must be one of: Semanal, Mensal, Anual")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.svc.now()
	limit := models.SpendingLimit{
		LimitID:        uuid.New().String(),
		Name:           req.Name,
		Category:       req.Category,
		Limit:          req.Limit,
		Period:         req.Period,
		LastResetMonth: int(now.Month()) - 1,
		Color:          limitPalette[len(s.limits)%len(limitPalette)],
		CreatedAt:      now,
	}
	if limit.Category != "" {
		limit.Spent = spentInPeriod(s.transactions, limit.Category, limit.Period, now)
	}

	s.limits = append([]models.SpendingLimit{limit}, s.limits...)
	s.persist(ctx, "spending_limits.insert", func() error {
		return s.svc.limits.Insert(ctx, s.uid, limit)
	})
	return limit, nil
}

func (s *Session) UpdateLimit(ctx context.Context, limitID string, req dto.UpdateLimitRequest) (models.SpendingLimit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, l := range s.limits {
		if l.LimitID == limitID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.SpendingLimit{}, errs.NewNotFoundError("spending limit not found: " + limitID)
	}

	limit := s.limits[idx]
	if req.Name != nil {
		limit.Name = *req.Name
	}
	if req.Category != nil {
		limit.Category = *req.Category
	}
	if req.Limit != nil {
		if *req.Limit <= 0 {
			return models.SpendingLimit{}, errs.NewValidationError("limit must be greater than zero")
		}
		limit.Limit = *req.Limit
	}
	if req.Period != nil {
		if !validPeriod(*req.Period) {
			return models.SpendingLimit{}, errs.NewValidationError("period must be one of: Semanal, Mensal, Anual")
		}
		limit.Period = *req.Period
	}

	// Scope changes invalidate the cached consumption; recompute it
	// against the history right away rather than waiting for the next
	// reconciliation pass.
	if req.Category != nil || req.Period != nil {
		if limit.Category != "" {
			limit.Spent = spentInPeriod(s.transactions, limit.Category, limit.Period, s.svc.now())
		} else {
			limit.Spent = 0
		}
	}

	next := make([]models.SpendingLimit, len(s.limits))
	copy(next, s.limits)
	next[idx] = limit
	s.limits = next

	s.persist(ctx, "spending_limits.update", func() error {
		return s.svc.limits.Update(ctx, s.uid, limit)
	})
	return limit, nil
}

func (s *Session) DeleteLimit(ctx context.Context, limitID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.SpendingLimit, 0, len(s.limits))
	found := false
	for _, l := range s.limits {
		if l.LimitID == limitID {
			found = true
			continue
		}
		next = append(next, l)
	}
	if !found {
		return errs.NewNotFoundError("spending limit not found: " + limitID)
	}
	s.limits = next

	s.persist(ctx, "spending_limits.delete", func() error {
		return s.svc.limits.Delete(ctx, s.uid, limitID)
	})
	return nil
}
