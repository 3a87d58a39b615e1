package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/monexapp/monex-backend/internal/models"
)

type transactionStore struct {
	client *firestore.Client
}

func NewTransactionStore(client *firestore.Client) *transactionStore {
	return &transactionStore{client: client}
}

func (s *transactionStore) collection(uid string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(uid).Collection("transactions")
}

// List returns the user's transactions most recent first. Creation order
// is the read order; batch inserts stamp strictly increasing createdAt.
func (s *transactionStore) List(ctx context.Context, uid string) ([]models.Transaction, error) {
	iter := s.collection(uid).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var txs []models.Transaction
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var t models.Transaction
		if err := snap.DataTo(&t); err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}
	return txs, nil
}

// InsertBatch writes a generated batch in one BulkWriter pass. Either the
// whole batch is queued or the error is returned before any job is sent.
func (s *transactionStore) InsertBatch(ctx context.Context, uid string, txs []models.Transaction) error {
	if len(txs) == 0 {
		return nil
	}

	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(txs))

	for _, t := range txs {
		doc := s.collection(uid).Doc(t.TransactionID)
		job, err := bw.Set(doc, t)
		if err != nil {
			bw.End()
			return err
		}
		jobs = append(jobs, job)
	}

	bw.End()
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return err
		}
	}

	return nil
}
