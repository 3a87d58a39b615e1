package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/errs"
	"github.com/monexapp/monex-backend/internal/models"
	"github.com/monexapp/monex-backend/pkg/logger"
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type snapshotProvider interface {
	Snapshot(ctx context.Context, uid string) (dto.Snapshot, error)
}

type profileReader interface {
	GetProfile(ctx context.Context, uid string) (*models.User, error)
}

type aiService struct {
	vertex  vertexClient
	finance snapshotProvider
	profile profileReader
}

func NewAIService(vertex vertexClient, finance snapshotProvider, profile profileReader) *aiService {
	return &aiService{vertex: vertex, finance: finance, profile: profile}
}

const aiSystemPrompt = "Você é um assistente financeiro pessoal. Responda em português, " +
	"de forma objetiva, usando exclusivamente os dados financeiros do cliente fornecidos abaixo. " +
	"Não invente valores.\n\n"

// Query forwards the user's message to the smart endpoint with the
// current financial context block as system grounding.
func (s *aiService) Query(ctx context.Context, uid, message string) (dto.AIQueryResponse, error) {
	if strings.TrimSpace(message) == "" {
		return dto.AIQueryResponse{}, errs.NewValidationError("message is required")
	}

	snap, err := s.finance.Snapshot(ctx, uid)
	if err != nil {
		return dto.AIQueryResponse{}, err
	}
	profile, err := s.profile.GetProfile(ctx, uid)
	if err != nil {
		return dto.AIQueryResponse{}, err
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		System:      aiSystemPrompt + FormatFinancialContext(snap, profile),
		UserMessage: message,
	})
	if err != nil {
		return dto.AIQueryResponse{}, errs.NewExternalServiceError("vertex", err.Error(), true)
	}

	logger.FromContext(ctx).Info("ai query completed", "uid", uid)
	return dto.AIQueryResponse{Answer: resp.Text}, nil
}

// FormatFinancialContext serializes the snapshot into the plain-text
// block handed to the conversational collaborator: aggregates, cards,
// debts, the five most recent transactions, goals and limits. The layout
// is a stable contract; downstream prompts depend on the section
// headers.
func FormatFinancialContext(snap dto.Snapshot, profile *models.User) string {
	var b strings.Builder

	b.WriteString("## Dados Financeiros do Cliente\n\n")

	b.WriteString("### Informações do Cliente\n")
	if profile != nil {
		fmt.Fprintf(&b, "- Nome: %s\n", profile.FullName)
		fmt.Fprintf(&b, "- Email: %s\n", profile.Email)
	}
	fmt.Fprintf(&b, "- Renda do Mês: R$ %.2f\n\n", snap.MonthlyStats.Income)

	b.WriteString("### Resumo Financeiro\n")
	fmt.Fprintf(&b, "- Saldo Total: R$ %.2f\n", snap.Stats.Balance)
	fmt.Fprintf(&b, "- Receitas Totais: R$ %.2f\n", snap.Stats.Income)
	fmt.Fprintf(&b, "- Despesas Totais: R$ %.2f\n", snap.Stats.Expenses)
	fmt.Fprintf(&b, "- Saldo do Mês: R$ %.2f (receitas R$ %.2f, despesas R$ %.2f)\n\n",
		snap.MonthlyStats.Balance, snap.MonthlyStats.Income, snap.MonthlyStats.Expenses)

	b.WriteString("### Cartões de Crédito\n")
	if len(snap.CreditCards) == 0 {
		b.WriteString("Nenhum cartão cadastrado.\n")
	}
	for _, c := range snap.CreditCards {
		fmt.Fprintf(&b, "- Nome: %s, Banco: %s, Limite: R$ %.2f, Fatura Atual: R$ %.2f, Vencimento: dia %d\n",
			c.Name, c.Bank, c.Limit, c.CurrentBill, c.DueDate)
	}
	b.WriteString("\n### Dívidas\n")
	if len(snap.Debts) == 0 {
		b.WriteString("Nenhuma dívida cadastrada.\n")
	}
	for _, d := range snap.Debts {
		fmt.Fprintf(&b, "- Nome: %s, Valor: R$ %.2f, Pago: R$ %.2f, Juros: %.2f%% a.m., Parcela: R$ %.2f\n",
			d.Name, d.TotalValue, d.PaidValue, d.InterestRate, d.InstallmentValue)
	}

	b.WriteString("\n### Transações Recentes\n")
	recent := snap.Transactions
	if len(recent) > 5 {
		recent = recent[:5]
	}
	if len(recent) == 0 {
		b.WriteString("Nenhuma transação registrada.\n")
	}
	for _, t := range recent {
		fmt.Fprintf(&b, "- Data: %s, Tipo: %s, Categoria: %s, Valor: R$ %.2f, Descrição: %s\n",
			t.Date, t.Type, t.Category, t.Amount, t.Description)
	}

	b.WriteString("\n### Metas\n")
	for _, g := range snap.Goals {
		fmt.Fprintf(&b, "- Nome: %s, Valor Alvo: R$ %.2f, Progresso: R$ %.2f, Aporte Mensal: R$ %.2f\n",
			g.Name, g.TargetAmount, g.CurrentAmount, g.MonthlyAmount())
	}

	b.WriteString("\n### Limites de Gastos\n")
	if len(snap.Limits) == 0 {
		b.WriteString("Nenhum limite cadastrado.\n")
	}
	for _, l := range snap.Limits {
		fmt.Fprintf(&b, "- Nome: %s, Categoria: %s, Período: %s, Limite: R$ %.2f, Gasto: R$ %.2f (%.0f%%, %s)\n",
			l.Name, l.Category, l.Period, l.Limit, l.Spent, l.Percentage, l.Status)
	}

	return b.String()
}
