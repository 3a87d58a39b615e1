package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
)

func (s *Session) AddGoal(ctx context.Context, req dto.CreateGoalRequest) (models.Goal, error) {
	if req.Name == "" {
		return models.Goal{}, errs.NewValidationError("name is required")
	}
	if req.TargetAmount <= 0 {
		return models.Goal{}, errs.NewValidationError("targetAmount must be greater than zero")
	}
	if req.Months <= 0 {
		return models.Goal{}, errs.NewValidationError("months must be greater than zero")
	}

	goal := models.Goal{
		GoalID:       uuid.New().String(),
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Months:       req.Months,
		Category:     req.Category,
		CreatedAt:    s.svc.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals = append([]models.Goal{goal}, s.goals...)
	s.persist(ctx, "goals.insert", func() error {
		return s.svc.goals.Insert(ctx, s.uid, goal)
	})
	return goal, nil
}

func (s *Session) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, g := range s.goals {
		if g.GoalID == goalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Goal{}, errs.NewNotFoundError("goal not found: " + goalID)
	}

	goal := s.goals[idx]
	if req.Name != nil && *req.Name != goal.Name {
		if goal.IsFixed {
			return models.Goal{}, errs.NewValidationError("fixed goals cannot be renamed")
		}
		goal.Name = *req.Name
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		if *req.TargetAmount <= 0 {
			return models.Goal{}, errs.NewValidationError("targetAmount must be greater than zero")
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		if *req.CurrentAmount < 0 {
			return models.Goal{}, errs.NewValidationError("currentAmount cannot be negative")
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Months != nil {
		if *req.Months <= 0 {
			return models.Goal{}, errs.NewValidationError("months must be greater than zero")
		}
		goal.Months = *req.Months
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}

	next := make([]models.Goal, len(s.goals))
	copy(next, s.goals)
	next[idx] = goal
	s.goals = next

	s.persist(ctx, "goals.update", func() error {
		return s.svc.goals.Update(ctx, s.uid, goal)
	})
	return goal, nil
}

func (s *Session) DeleteGoal(ctx context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Goal, 0, len(s.goals))
	found := false
	for _, g := range s.goals {
		if g.GoalID == goalID {
			if g.IsFixed {
				return errs.NewValidationError("fixed goals cannot be deleted")
			}
			found = true
			continue
		}
		next = append(next, g)
	}
	if !found {
		return errs.NewNotFoundError("goal not found: " + goalID)
	}
	s.goals = next

	s.persist(ctx, "goals.delete", func() error {
		return s.svc.goals.Delete(ctx, s.uid, goalID)
	})
	return nil
}

// ResetGoals discards all user goals and restores the system seeds.
func (s *Session) ResetGoals(ctx context.Context) []models.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.goals
	s.goals = DefaultGoals()
	now := s.svc.now()
	for i := range s.goals {
		s.goals[i].CreatedAt = now
	}

	for _, g := range old {
		if g.IsFixed {
			continue
		}
		goalID := g.GoalID
		s.persist(ctx, "goals.delete", func() error {
			return s.svc.goals.Delete(ctx, s.uid, goalID)
		})
	}
	for _, g := range s.goals {
		goal := g
		s.persist(ctx, "goals.insert", func() error {
			return s.svc.goals.Insert(ctx, s.uid, goal)
		})
	}

	return s.goals
}
