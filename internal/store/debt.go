package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/monexapp/monex-backend/internal/models"
)

type debtStore struct {
	client *firestore.Client
}

func NewDebtStore(client *firestore.Client) *debtStore {
	return &debtStore{client: client}
}

func (s *debtStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("debts")
}

func (s *debtStore) List(ctx context.Context, uid string) ([]models.Debt, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var debts []models.Debt
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var d models.Debt
		if err := snap.DataTo(&d); err != nil {
			return nil, err
		}
		debts = append(debts, d)
	}
	return debts, nil
}

func (s *debtStore) Insert(ctx context.Context, uid string, d models.Debt) error {
	_, err := s.collection(uid).Doc(d.DebtID).Set(ctx, d)
	return err
}

func (s *debtStore) Update(ctx context.Context, uid string, d models.Debt) error {
	_, err := s.collection(uid).Doc(d.DebtID).Set(ctx, d)
	return err
}

func (s *debtStore) Delete(ctx context.Context, uid, debtID string) error {
	_, err := s.collection(uid).Doc(debtID).Delete(ctx)
	return err
}
