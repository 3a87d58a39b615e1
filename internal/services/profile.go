package services

import (
	"context"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
)

type profileStore interface {
	Get(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
}

type profileService struct {
	store profileStore
}

func NewProfileService(store profileStore) *profileService {
	return &profileService{store: store}
}

// GetProfile loads the user's profile with schema defaults applied. A
// user with no stored profile gets the defaults, not an error.
func (s *profileService) GetProfile(ctx context.Context, uid string) (*models.User, error) {
	u, err := s.store.Get(ctx, uid)
	if err != nil {
		return nil, errs.NewDatabaseError("users.get", err.Error())
	}
	if u == nil {
		u = &models.User{UID: uid}
		u.Normalize()
	}
	return u, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, uid string, req dto.UpdateProfileRequest) (*models.User, error) {
	u, err := s.GetProfile(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.SavingsTargetPercent != nil {
		if *req.SavingsTargetPercent < 0 || *req.SavingsTargetPercent > 100 {
			return nil, errs.NewValidationError("savingsTargetPercent must be between 0 and 100")
		}
		u.SavingsTargetPercent = *req.SavingsTargetPercent
	}
	if req.DebtTypes != nil {
		u.DebtTypes = *req.DebtTypes
	}
	if req.Insurance != nil {
		u.Insurance = *req.Insurance
	}

	if err := s.store.Update(ctx, u); err != nil {
		return nil, errs.NewDatabaseError("users.update", err.Error())
	}
	return u, nil
}
