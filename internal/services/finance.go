package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/logger"
)

// Narrow persistence interfaces, one per table. The Firestore stores
// satisfy them; tests substitute stubs.

type transactionPersister interface {
	List(ctx context.Context, uid string) ([]models.Transaction, error)
	InsertBatch(ctx context.Context, uid string, txs []models.Transaction) error
}

type goalPersister interface {
	List(ctx context.Context, uid string) ([]models.Goal, error)
	Insert(ctx context.Context, uid string, g models.Goal) error
	Update(ctx context.Context, uid string, g models.Goal) error
	Delete(ctx context.Context, uid, goalID string) error
}

type debtPersister interface {
	List(ctx context.Context, uid string) ([]models.Debt, error)
	Insert(ctx context.Context, uid string, d models.Debt) error
	Update(ctx context.Context, uid string, d models.Debt) error
	Delete(ctx context.Context, uid, debtID string) error
}

type cardPersister interface {
	List(ctx context.Context, uid string) ([]models.CreditCard, error)
	Insert(ctx context.Context, uid string, c models.CreditCard) error
	Update(ctx context.Context, uid string, c models.CreditCard) error
	Delete(ctx context.Context, uid, cardID string) error
}

type limitPersister interface {
	List(ctx context.Context, uid string) ([]models.SpendingLimit, error)
	Insert(ctx context.Context, uid string, l models.SpendingLimit) error
	Update(ctx context.Context, uid string, l models.SpendingLimit) error
	Delete(ctx context.Context, uid, limitID string) error
}

// Finance owns one Session per user. The session's in-memory collections
// are the source of truth for the rest of that user's session; every
// mutation pushes a delta outward best-effort: write failures are
// logged, never rolled back.
type Finance struct {
	txs     transactionPersister
	goals   goalPersister
	debts   debtPersister
	cards   cardPersister
	limits  limitPersister
	planner PlannerConfig
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewFinanceService(txs transactionPersister, goals goalPersister, debts debtPersister, cards cardPersister, limits limitPersister, planner PlannerConfig) *Finance {
	return &Finance{
		txs:      txs,
		goals:    goals,
		debts:    debts,
		cards:    cards,
		limits:   limits,
		planner:  planner,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Session returns the user's session, loading it on first use. The load
// fetches the five tables concurrently, enforces the fixed-goal and
// default-limit seeds, and runs the once-per-session limits
// reconciliation.
func (f *Finance) Session(ctx context.Context, uid string) (*Session, error) {
	f.mu.Lock()
	if s, ok := f.sessions[uid]; ok {
		f.mu.Unlock()
		return s, nil
	}
	f.mu.Unlock()

	s, err := f.load(ctx, uid)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.sessions[uid]; ok {
		return existing, nil
	}
	f.sessions[uid] = s
	return s, nil
}

func (f *Finance) load(ctx context.Context, uid string) (*Session, error) {
	s := &Session{uid: uid, svc: f}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txs, err := f.txs.List(gctx, uid)
		s.transactions = txs
		return err
	})
	g.Go(func() error {
		goals, err := f.goals.List(gctx, uid)
		s.goals = goals
		return err
	})
	g.Go(func() error {
		debts, err := f.debts.List(gctx, uid)
		s.debts = debts
		return err
	})
	g.Go(func() error {
		cards, err := f.cards.List(gctx, uid)
		s.cards = cards
		return err
	})
	g.Go(func() error {
		limits, err := f.limits.List(gctx, uid)
		s.limits = limits
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := f.now()

	s.goals = EnsureFixedGoals(s.goals)
	for i := range s.goals {
		if s.goals[i].IsFixed && s.goals[i].CreatedAt.IsZero() {
			s.goals[i].CreatedAt = now
			goal := s.goals[i]
			s.persist(ctx, "goals.insert", func() error { return f.goals.Insert(ctx, uid, goal) })
		}
	}

	if len(s.limits) == 0 {
		s.limits = defaultLimits(now)
		for _, l := range s.limits {
			limit := l
			s.persist(ctx, "spending_limits.insert", func() error { return f.limits.Insert(ctx, uid, limit) })
		}
	}

	s.limits = ReconcileLimits(s.limits, s.transactions, now)
	s.aggregates = CalculateAggregates(s.transactions, now)
	return s, nil
}

// Session holds one user's collections in memory. Slices are replaced
// wholesale on mutation (copy-on-write) so a snapshot handed out earlier
// is never corrupted mid-update.
type Session struct {
	uid string
	svc *Finance

	mu           sync.RWMutex
	transactions []models.Transaction // most recent first
	goals        []models.Goal
	limits       []models.SpendingLimit
	debts        []models.Debt
	cards        []models.CreditCard
	aggregates   Aggregates
}

// Snapshot builds the read-model handed to presentation code.
func (s *Session) Snapshot() dto.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limits := make([]dto.LimitStatus, len(s.limits))
	for i, l := range s.limits {
		limits[i] = dto.LimitStatus{
			SpendingLimit: l,
			Percentage:    LimitPercentage(l),
			Status:        LimitStatusOf(l),
		}
	}
	cards := make([]dto.CardStatus, len(s.cards))
	for i, c := range s.cards {
		cards[i] = CardStatusOf(c)
	}

	return dto.Snapshot{
		Transactions: s.transactions,
		Goals:        s.goals,
		Debts:        s.debts,
		CreditCards:  cards,
		Limits:       limits,
		Stats:        s.aggregates.Lifetime,
		MonthlyStats: s.aggregates.Monthly,
		AnnualStats:  s.aggregates.Annual,
	}
}

// AddTransactions expands one intent and records the resulting batch.
// The expansion is atomic: a validation failure records nothing. The
// generated sequence is prepended in reverse so the most recent
// occurrence reads first.
func (s *Session) AddTransactions(ctx context.Context, req dto.CreateTransactionRequest) ([]models.Transaction, error) {
	batch, err := ExpandRecurrence(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record(ctx, batch)
	return batch, nil
}

// record stamps ids and creation order onto a generated batch, applies
// it to the in-memory state, fans out to the limit and aggregate
// calculators, and pushes the insert outward. Callers hold s.mu.
func (s *Session) record(ctx context.Context, batch []models.Transaction) {
	now := s.svc.now()
	for i := range batch {
		batch[i].TransactionID = uuid.New().String()
		// Strictly increasing creation stamps keep batch read order stable.
		batch[i].CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
	}

	next := make([]models.Transaction, 0, len(batch)+len(s.transactions))
	for i := len(batch) - 1; i >= 0; i-- {
		next = append(next, batch[i])
	}
	next = append(next, s.transactions...)
	s.transactions = next

	limits := s.limits
	for _, t := range batch {
		if t.Type == models.TransactionExpense {
			limits = ApplyExpenseToLimits(limits, t.Category, t.Amount, t.Date, now)
		}
	}
	s.limits = limits
	s.aggregates = CalculateAggregates(s.transactions, now)

	s.persist(ctx, "transactions.insert", func() error {
		return s.svc.txs.InsertBatch(ctx, s.uid, batch)
	})
}

// persist runs one outbound write. Failures are logged with their
// operation and swallowed: the local mutation already happened and local
// state stays authoritative for the session; there is no retry.
func (s *Session) persist(ctx context.Context, op string, fn func() error) {
	if err := fn(); err != nil {
		logger.FromContext(ctx).Error("remote persistence failed",
			"operation", op,
			"uid", s.uid,
			"error", err)
	}
}

var limitPalette = []string{"#14B8A6", "#F59E0B", "#3B82F6", "#EF4444", "#8B5CF6"}

func defaultLimits(now time.Time) []models.SpendingLimit {
	month := int(now.Month()) - 1
	return []models.SpendingLimit{
		{
			LimitID:        uuid.New().String(),
			Name:           "Compras de Mercado",
			Category:       "Mercado",
			Limit:          800,
			Period:         models.PeriodMonthly,
			LastResetMonth: month,
			Color:          limitPalette[0],
			CreatedAt:      now,
		},
		{
			LimitID:        uuid.New().String(),
			Name:           "Lazer Fim de Semana",
			Category:       "Lazer e Hobbies",
			Limit:          300,
			Period:         models.PeriodWeekly,
			LastResetMonth: month,
			Color:          limitPalette[1],
			CreatedAt:      now,
		},
	}
}
