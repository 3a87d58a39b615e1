package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/helpers"
)

// ---- stub stores ----

type stubTxStore struct {
	list      []models.Transaction
	inserted  [][]models.Transaction
	listCalls int
	listErr   error
	insertErr error
}

func (s *stubTxStore) List(_ context.Context, _ string) ([]models.Transaction, error) {
	s.listCalls++
	return s.list, s.listErr
}

func (s *stubTxStore) InsertBatch(_ context.Context, _ string, txs []models.Transaction) error {
	s.inserted = append(s.inserted, txs)
	return s.insertErr
}

type stubGoalStore struct {
	list     []models.Goal
	inserted []models.Goal
	updated  []models.Goal
	deleted  []string
}

func (s *stubGoalStore) List(_ context.Context, _ string) ([]models.Goal, error) { return s.list, nil }
func (s *stubGoalStore) Insert(_ context.Context, _ string, g models.Goal) error {
	s.inserted = append(s.inserted, g)
	return nil
}
func (s *stubGoalStore) Update(_ context.Context, _ string, g models.Goal) error {
	s.updated = append(s.updated, g)
	return nil
}
func (s *stubGoalStore) Delete(_ context.Context, _, goalID string) error {
	s.deleted = append(s.deleted, goalID)
	return nil
}

type stubDebtStore struct {
	list     []models.Debt
	inserted []models.Debt
	updated  []models.Debt
	deleted  []string
}

func (s *stubDebtStore) List(_ context.Context, _ string) ([]models.Debt, error) { return s.list, nil }
func (s *stubDebtStore) Insert(_ context.Context, _ string, d models.Debt) error {
	s.inserted = append(s.inserted, d)
	return nil
}
func (s *stubDebtStore) Update(_ context.Context, _ string, d models.Debt) error {
	s.updated = append(s.updated, d)
	return nil
}
func (s *stubDebtStore) Delete(_ context.Context, _, debtID string) error {
	s.deleted = append(s.deleted, debtID)
	return nil
}

type stubCardStore struct {
	list     []models.CreditCard
	inserted []models.CreditCard
	updated  []models.CreditCard
	deleted  []string
}

func (s *stubCardStore) List(_ context.Context, _ string) ([]models.CreditCard, error) {
	return s.list, nil
}
func (s *stubCardStore) Insert(_ context.Context, _ string, c models.CreditCard) error {
	s.inserted = append(s.inserted, c)
	return nil
}
func (s *stubCardStore) Update(_ context.Context, _ string, c models.CreditCard) error {
	s.updated = append(s.updated, c)
	return nil
}
func (s *stubCardStore) Delete(_ context.Context, _, cardID string) error {
	s.deleted = append(s.deleted, cardID)
	return nil
}

type stubLimitStore struct {
	list     []models.SpendingLimit
	inserted []models.SpendingLimit
	updated  []models.SpendingLimit
	deleted  []string
}

func (s *stubLimitStore) List(_ context.Context, _ string) ([]models.SpendingLimit, error) {
	return s.list, nil
}
func (s *stubLimitStore) Insert(_ context.Context, _ string, l models.SpendingLimit) error {
	s.inserted = append(s.inserted, l)
	return nil
}
func (s *stubLimitStore) Update(_ context.Context, _ string, l models.SpendingLimit) error {
	s.updated = append(s.updated, l)
	return nil
}
func (s *stubLimitStore) Delete(_ context.Context, _, limitID string) error {
	s.deleted = append(s.deleted, limitID)
	return nil
}

// ---- fixture ----

type financeFixture struct {
	svc    *Finance
	txs    *stubTxStore
	goals  *stubGoalStore
	debts  *stubDebtStore
	cards  *stubCardStore
	limits *stubLimitStore
}

var testNow = time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

func newFinanceFixture() *financeFixture {
	fx := &financeFixture{
		txs:    &stubTxStore{},
		goals:  &stubGoalStore{},
		debts:  &stubDebtStore{},
		cards:  &stubCardStore{},
		limits: &stubLimitStore{},
	}
	fx.svc = NewFinanceService(fx.txs, fx.goals, fx.debts, fx.cards, fx.limits, DefaultPlannerConfig())
	fx.svc.now = func() time.Time { return testNow }
	return fx
}

func TestSessionLoadSeedsDefaults(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()

	s, err := fx.svc.Session(ctx, "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Goals) != 2 {
		t.Fatalf("expected 2 seeded goals, got %d", len(snap.Goals))
	}
	if len(snap.Limits) != 2 {
		t.Fatalf("expected 2 seeded limits, got %d", len(snap.Limits))
	}
	if snap.Limits[0].Category != "Mercado" || snap.Limits[0].Limit != 800 {
		t.Fatalf("first seeded limit = %+v", snap.Limits[0].SpendingLimit)
	}
	if snap.Limits[1].Period != models.PeriodWeekly {
		t.Fatalf("second seeded limit period = %s", snap.Limits[1].Period)
	}
	if len(fx.goals.inserted) != 2 {
		t.Fatalf("seeded goals should be persisted, inserts = %d", len(fx.goals.inserted))
	}
	if len(fx.limits.inserted) != 2 {
		t.Fatalf("seeded limits should be persisted, inserts = %d", len(fx.limits.inserted))
	}
}

func TestSessionCachedPerUser(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()

	s1, err := fx.svc.Session(ctx, "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := fx.svc.Session(ctx, "uid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("expected the same session instance")
	}
	if fx.txs.listCalls != 1 {
		t.Fatalf("history should load once, loads = %d", fx.txs.listCalls)
	}
}

func TestSessionLoadErrorPropagates(t *testing.T) {
	fx := newFinanceFixture()
	fx.txs.listErr = errors.New("firestore unavailable")

	if _, err := fx.svc.Session(helpers.TestCtx(), "uid-1"); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestAddTransactionsUpdatesAggregatesAndLimits(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	if _, err := s.AddTransactions(ctx, dto.CreateTransactionRequest{
		Type: models.TransactionIncome, Amount: 5000, Date: "2025-03-01",
		Description: "Salário", Mode: dto.ModeSingle,
	}); err != nil {
		t.Fatalf("income: %v", err)
	}
	if _, err := s.AddTransactions(ctx, dto.CreateTransactionRequest{
		Type: models.TransactionExpense, Amount: 1200, Date: "2025-03-10",
		Description: "Compras do mês", Category: "Mercado", Mode: dto.ModeSingle,
	}); err != nil {
		t.Fatalf("expense: %v", err)
	}

	snap := s.Snapshot()
	if snap.MonthlyStats.Income != 5000 || snap.MonthlyStats.Expenses != 1200 || snap.MonthlyStats.Balance != 3800 {
		t.Fatalf("monthly stats = %+v, want {5000 1200 3800}", snap.MonthlyStats)
	}
	// most recent first
	if snap.Transactions[0].Description != "Compras do mês" {
		t.Fatalf("first transaction = %q, want the latest", snap.Transactions[0].Description)
	}

	// the seeded Mercado limit (800) absorbed the expense incrementally
	var mercado dto.LimitStatus
	for _, l := range snap.Limits {
		if l.Category == "Mercado" {
			mercado = l
		}
	}
	if mercado.Spent != 1200 {
		t.Fatalf("Mercado spent = %v, want 1200", mercado.Spent)
	}
	if mercado.Status != LimitStatusExceeded {
		t.Fatalf("Mercado status = %q, want excedido", mercado.Status)
	}
	if mercado.Percentage != 150 {
		t.Fatalf("Mercado percentage = %v, want 150", mercado.Percentage)
	}
}

func TestAddTransactionsInstallmentOrder(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	batch, err := s.AddTransactions(ctx, dto.CreateTransactionRequest{
		Type: models.TransactionExpense, Amount: 1000, Date: "2025-03-01",
		Description: "Notebook", Category: "Eletrônicos",
		Mode: dto.ModeInstallment, Occurrences: 3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch) != 3 {
		t.Fatalf("batch size = %d", len(batch))
	}
	for _, tx := range batch {
		if tx.TransactionID == "" {
			t.Fatalf("batch transaction missing id")
		}
	}

	snap := s.Snapshot()
	// in-memory list reads newest occurrence first
	if !strings.Contains(snap.Transactions[0].Description, "Parcela 3/3") {
		t.Fatalf("head of list = %q, want the last installment", snap.Transactions[0].Description)
	}
	if len(fx.txs.inserted) != 1 || len(fx.txs.inserted[0]) != 3 {
		t.Fatalf("expected one outbound batch of 3")
	}
}

func TestAddTransactionsPersistFailureIsSwallowed(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")
	fx.txs.insertErr = errors.New("deadline exceeded")

	batch, err := s.AddTransactions(ctx, dto.CreateTransactionRequest{
		Type: models.TransactionExpense, Amount: 50, Date: "2025-03-14",
		Description: "Almoço", Category: "Alimentação", Mode: dto.ModeSingle,
	})
	if err != nil {
		t.Fatalf("write failures must not surface: %v", err)
	}
	if len(batch) != 1 {
		t.Fatalf("batch = %d", len(batch))
	}

	snap := s.Snapshot()
	if len(snap.Transactions) != 1 {
		t.Fatalf("local state must keep the transaction, have %d", len(snap.Transactions))
	}
}

func TestAddTransactionsValidationRecordsNothing(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	_, err := s.AddTransactions(ctx, dto.CreateTransactionRequest{
		Type: models.TransactionExpense, Amount: 100, Date: "2025-03-01",
		Description: "x", Category: "Mercado", Mode: "fortnightly",
	})
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(s.Snapshot().Transactions) != 0 {
		t.Fatalf("failed intent must record nothing")
	}
	if len(fx.txs.inserted) != 0 {
		t.Fatalf("failed intent must not reach the store")
	}
}

func TestPayDebtClampAndCompanionExpense(t *testing.T) {
	fx := newFinanceFixture()
	fx.debts.list = []models.Debt{{
		DebtID: "d1", Name: "Financiamento", TotalValue: 1000, PaidValue: 800,
		InstallmentValue: 100, SelectedPlan: models.PlanConservative,
	}}
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	debt, err := s.PayDebt(ctx, "d1", 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if debt.PaidValue != 1000 {
		t.Fatalf("paidValue = %v, want clamped to 1000", debt.PaidValue)
	}
	if len(fx.debts.updated) != 1 {
		t.Fatalf("debt update not persisted")
	}

	snap := s.Snapshot()
	if len(snap.Transactions) != 1 {
		t.Fatalf("expected companion expense, have %d transactions", len(snap.Transactions))
	}
	tx := snap.Transactions[0]
	if tx.Description != "Pagamento de Dívida: Financiamento" || tx.Category != "Dívidas" {
		t.Fatalf("companion expense = %+v", tx)
	}
	// companion carries the original amount, not the clamped delta
	if tx.Amount != 500 {
		t.Fatalf("companion amount = %v, want 500", tx.Amount)
	}
	if tx.Date != "2025-03-15" {
		t.Fatalf("companion date = %q, want today", tx.Date)
	}
}

func TestPayDebtUnknownDebt(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	_, err := s.PayDebt(ctx, "missing", 100)
	var nfErr *errs.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %T", err)
	}
}

func TestAddInvoiceExpense(t *testing.T) {
	fx := newFinanceFixture()
	fx.cards.list = []models.CreditCard{{
		CardID: "c1", Name: "Roxinho", Bank: "Nubank", Limit: 2000, CurrentBill: 300, DueDate: 10,
	}}
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	card, err := s.AddInvoiceExpense(ctx, "c1", dto.InvoiceRequest{Amount: 450})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.CurrentBill != 750 {
		t.Fatalf("currentBill = %v, want 750", card.CurrentBill)
	}
	if len(fx.cards.updated) != 1 {
		t.Fatalf("card update not persisted")
	}

	snap := s.Snapshot()
	if len(snap.Transactions) != 1 {
		t.Fatalf("expected companion expense")
	}
	tx := snap.Transactions[0]
	if tx.Category != "Cartão de Crédito" || tx.Description != "Fatura de Cartão de Crédito" {
		t.Fatalf("companion expense = %+v", tx)
	}
	if tx.Amount != 450 {
		t.Fatalf("companion amount = %v", tx.Amount)
	}
}

func TestFixedGoalGuards(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	name := "Minha Reserva"
	_, err := s.UpdateGoal(ctx, "fixed_emergency", dto.UpdateGoalRequest{Name: &name})
	var valErr *errs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("renaming a fixed goal must fail with ValidationError, got %T", err)
	}

	if err := s.DeleteGoal(ctx, "fixed_investment"); err == nil {
		t.Fatalf("deleting a fixed goal must fail")
	}

	// progress updates on fixed goals are allowed
	amount := 2500.0
	goal, err := s.UpdateGoal(ctx, "fixed_emergency", dto.UpdateGoalRequest{CurrentAmount: &amount})
	if err != nil {
		t.Fatalf("progress update on fixed goal: %v", err)
	}
	if goal.CurrentAmount != 2500 {
		t.Fatalf("currentAmount = %v", goal.CurrentAmount)
	}
}

func TestAddLimitPaletteRotation(t *testing.T) {
	fx := newFinanceFixture()
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	// two seeds already exist; the third limit takes the third color
	limit, err := s.AddLimit(ctx, dto.CreateLimitRequest{
		Name: "Restaurantes", Category: "Alimentação", Limit: 400, Period: models.PeriodMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit.Color != "#3B82F6" {
		t.Fatalf("color = %q, want third palette entry", limit.Color)
	}
}

func TestAddLimitComputesInitialSpent(t *testing.T) {
	fx := newFinanceFixture()
	fx.txs.list = []models.Transaction{
		{Type: models.TransactionExpense, Amount: 90, Date: "2025-03-12", Category: "Transporte"},
		{Type: models.TransactionExpense, Amount: 30, Date: "2025-01-05", Category: "Transporte"},
	}
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	limit, err := s.AddLimit(ctx, dto.CreateLimitRequest{
		Name: "Transporte", Category: "Transporte", Limit: 200, Period: models.PeriodMonthly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit.Spent != 90 {
		t.Fatalf("initial spent = %v, want 90 (current month only)", limit.Spent)
	}
}

func TestDebtPlansThroughSession(t *testing.T) {
	fx := newFinanceFixture()
	fx.debts.list = []models.Debt{{
		DebtID: "d1", Name: "Cartão", TotalValue: 12000, InstallmentValue: 1100,
	}}
	fx.txs.list = []models.Transaction{
		{Type: models.TransactionIncome, Amount: 5000, Date: "2025-03-01", Category: "Receita"},
	}
	ctx := helpers.TestCtx()
	s, _ := fx.svc.Session(ctx, "uid-1")

	plans, err := s.DebtPlans("d1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plans[0].Months != 11 {
		t.Fatalf("conservative months = %d, want 11", plans[0].Months)
	}
	if plans[1].Payment != 500 {
		t.Fatalf("conscious payment = %v, want 10%% of monthly income", plans[1].Payment)
	}
	if plans[2].Payment != 2100 {
		t.Fatalf("aggressive payment = %v, want 2100", plans[2].Payment)
	}
}
