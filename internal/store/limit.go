package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/monexapp/monex-backend/internal/models"
)

type limitStore struct {
	client *firestore.Client
}

func NewLimitStore(client *firestore.Client) *limitStore {
	return &limitStore{client: client}
}

func (s *limitStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("spending_limits")
}

func (s *limitStore) List(ctx context.Context, uid string) ([]models.SpendingLimit, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var limits []models.SpendingLimit
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var l models.SpendingLimit
		if err := snap.DataTo(&l); err != nil {
			return nil, err
		}
		limits = append(limits, l)
	}
	return limits, nil
}

func (s *limitStore) Insert(ctx context.Context, uid string, l models.SpendingLimit) error {
	_, err := s.collection(uid).Doc(l.LimitID).Set(ctx, l)
	return err
}

func (s *limitStore) Update(ctx context.Context, uid string, l models.SpendingLimit) error {
	_, err := s.collection(uid).Doc(l.LimitID).Set(ctx, l)
	return err
}

func (s *limitStore) Delete(ctx context.Context, uid, limitID string) error {
	_, err := s.collection(uid).Doc(limitID).Delete(ctx)
	return err
}
