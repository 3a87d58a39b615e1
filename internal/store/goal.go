package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/monexapp/monex-backend/internal/models"
)

type goalStore struct {
	client *firestore.Client
}

func NewGoalStore(client *firestore.Client) *goalStore {
	return &goalStore{client: client}
}

func (s *goalStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("goals")
}

func (s *goalStore) List(ctx context.Context, uid string) ([]models.Goal, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var goals []models.Goal
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var g models.Goal
		if err := snap.DataTo(&g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, nil
}

func (s *goalStore) Insert(ctx context.Context, uid string, g models.Goal) error {
	_, err := s.collection(uid).Doc(g.GoalID).Set(ctx, g)
	return err
}

func (s *goalStore) Update(ctx context.Context, uid string, g models.Goal) error {
	_, err := s.collection(uid).Doc(g.GoalID).Set(ctx, g)
	return err
}

func (s *goalStore) Delete(ctx context.Context, uid, goalID string) error {
	_, err := s.collection(uid).Doc(goalID).Delete(ctx)
	return err
}
