package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/monexapp/monex-backend/internal/models"
)

type cardStore struct {
	client *firestore.Client
}

func NewCardStore(client *firestore.Client) *cardStore {
	return &cardStore{client: client}
}

func (s *cardStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("credit_cards")
}

func (s *cardStore) List(ctx context.Context, uid string) ([]models.CreditCard, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var cards []models.CreditCard
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var c models.CreditCard
		if err := snap.DataTo(&c); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (s *cardStore) Insert(ctx context.Context, uid string, c models.CreditCard) error {
	_, err := s.collection(uid).Doc(c.CardID).Set(ctx, c)
	return err
}

func (s *cardStore) Update(ctx context.Context, uid string, c models.CreditCard) error {
	_, err := s.collection(uid).Doc(c.CardID).Set(ctx, c)
	return err
}

func (s *cardStore) Delete(ctx context.Context, uid, cardID string) error {
	_, err := s.collection(uid).Doc(cardID).Delete(ctx)
	return err
}
