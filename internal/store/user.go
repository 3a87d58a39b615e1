package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/monexapp/monex-backend/internal/models"
)

type userStore struct {
	client *firestore.Client
}

func NewUserStore(client *firestore.Client) *userStore {
	return &userStore{client: client}
}

func (s *userStore) doc(uid string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(uid)
}

// Get returns nil with no error for a user that has no stored profile;
// the caller applies the schema defaults.
func (s *userStore) Get(ctx context.Context, uid string) (*models.User, error) {
	snap, err := s.doc(uid).Get(ctx)
	if snap != nil && !snap.Exists() {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	u.Normalize()
	return &u, nil
}

func (s *userStore) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = u.UpdatedAt
	}
	_, err := s.doc(u.UID).Set(ctx, u)
	return err
}
