package services

import (
	"testing"

	"github.com/monexapp/monex-backend/internal/models"
)

func TestCalculateDebtPlansConservative(t *testing.T) {
	debt := models.Debt{TotalValue: 12000, PaidValue: 0, InstallmentValue: 1100}

	plans := CalculateDebtPlans(debt, 5000, DefaultPlannerConfig())
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}

	conservative := plans[0]
	if conservative.Strategy != models.PlanConservative {
		t.Fatalf("first plan = %q, want conservative", conservative.Strategy)
	}
	if conservative.Payment != 1100 {
		t.Fatalf("conservative payment = %v, want 1100", conservative.Payment)
	}
	if conservative.Months != 11 {
		t.Fatalf("conservative months = %d, want ceil(12000/1100) = 11", conservative.Months)
	}
	if conservative.Label != "Plano Conservador" {
		t.Fatalf("label = %q", conservative.Label)
	}
}

func TestCalculateDebtPlansConsciousCapped(t *testing.T) {
	// balance below 10% of income: payment capped at the balance
	debt := models.Debt{TotalValue: 1000, PaidValue: 700, InstallmentValue: 50}

	plans := CalculateDebtPlans(debt, 5000, DefaultPlannerConfig())
	conscious := plans[1]
	if conscious.Strategy != models.PlanConscious {
		t.Fatalf("second plan = %q, want conscious", conscious.Strategy)
	}
	if conscious.Payment != 300 {
		t.Fatalf("conscious payment = %v, want balance 300 (capped below 500)", conscious.Payment)
	}
	if conscious.Months != 1 {
		t.Fatalf("conscious months = %d, want 1", conscious.Months)
	}
}

func TestCalculateDebtPlansAggressive(t *testing.T) {
	debt := models.Debt{TotalValue: 12000, InstallmentValue: 1100}

	plans := CalculateDebtPlans(debt, 5000, DefaultPlannerConfig())
	aggressive := plans[2]
	if aggressive.Strategy != models.PlanAggressive {
		t.Fatalf("third plan = %q, want aggressive", aggressive.Strategy)
	}
	if aggressive.Payment != 2100 {
		t.Fatalf("aggressive payment = %v, want 0.20*5000 + 1100 = 2100", aggressive.Payment)
	}
	if aggressive.Months != 6 {
		t.Fatalf("aggressive months = %d, want ceil(12000/2100) = 6", aggressive.Months)
	}
}

func TestCalculateDebtPlansIncomeFallback(t *testing.T) {
	debt := models.Debt{TotalValue: 6000, InstallmentValue: 500}

	plans := CalculateDebtPlans(debt, 0, DefaultPlannerConfig())
	if plans[1].Payment != 300 {
		t.Fatalf("conscious payment with fallback income = %v, want 0.10*3000 = 300", plans[1].Payment)
	}
	if plans[2].Payment != 1100 {
		t.Fatalf("aggressive payment with fallback income = %v, want 0.20*3000 + 500 = 1100", plans[2].Payment)
	}
}

func TestCalculateDebtPlansZeroPaymentSentinel(t *testing.T) {
	debt := models.Debt{TotalValue: 6000, InstallmentValue: 0}

	plans := CalculateDebtPlans(debt, 0, PlannerConfig{})
	for _, p := range plans {
		if p.Payment == 0 && p.Months != sentinelMonths {
			t.Fatalf("%s: zero payment months = %d, want sentinel %d", p.Strategy, p.Months, sentinelMonths)
		}
	}
}

func TestCalculateDebtPlansSettledDebt(t *testing.T) {
	debt := models.Debt{TotalValue: 1000, PaidValue: 1000, InstallmentValue: 100}
	if plans := CalculateDebtPlans(debt, 5000, DefaultPlannerConfig()); plans != nil {
		t.Fatalf("settled debt must produce no plans, got %d", len(plans))
	}
}

func TestApplyPaymentClamp(t *testing.T) {
	debt := models.Debt{TotalValue: 1000, PaidValue: 800}

	paid := ApplyPayment(debt, 500)
	if paid.PaidValue != 1000 {
		t.Fatalf("paidValue = %v, want clamped to 1000", paid.PaidValue)
	}
	if !paid.Settled() {
		t.Fatalf("debt should be settled after clamped payment")
	}

	partial := ApplyPayment(debt, 100)
	if partial.PaidValue != 900 {
		t.Fatalf("paidValue = %v, want 900", partial.PaidValue)
	}
}
