package services

import (
	"github.com/monexapp/monex-backend/internal/models"
)

// The two system-seeded goals. They can never be deleted and their names
// are immutable; a load that finds neither re-seeds both.
const (
	fixedEmergencyID  = "fixed_emergency"
	fixedInvestmentID = "fixed_investment"

	fixedEmergencyName  = "Reserva de Emergência"
	fixedInvestmentName = "Investimentos"
)

// Legacy seed removed by migration.
const legacyVacationName = "Fundo de Férias"

func fixedGoals() []models.Goal {
	return []models.Goal{
		{
			GoalID:       fixedEmergencyID,
			Name:         fixedEmergencyName,
			Description:  "Fundo essencial para cobrir 3-6 meses de despesas em caso de imprevistos.",
			TargetAmount: 15000,
			Months:       12,
			Category:     "Segurança",
			IsDefault:    true,
			IsFixed:      true,
		},
		{
			GoalID:       fixedInvestmentID,
			Name:         fixedInvestmentName,
			Description:  "Capital acumulado para liberdade financeira e crescimento de patrimônio.",
			TargetAmount: 50000,
			Months:       60,
			Category:     "Investimento",
			IsDefault:    true,
			IsFixed:      true,
		},
	}
}

// EnsureFixedGoals enforces the fixed-goal invariant on a loaded goal
// list: the legacy vacation seed is dropped, a missing emergency fund is
// prepended, a missing investment goal is appended, and both are marked
// fixed even if an older client stored them without the flag.
func EnsureFixedGoals(goals []models.Goal) []models.Goal {
	if len(goals) == 0 {
		return fixedGoals()
	}

	seeds := fixedGoals()
	merged := make([]models.Goal, 0, len(goals)+2)
	hasEmergency, hasInvestment := false, false

	for _, g := range goals {
		if g.GoalID == "default_vacation" || g.Name == legacyVacationName {
			continue
		}
		if g.GoalID == fixedEmergencyID || g.Name == fixedEmergencyName {
			g.IsFixed = true
			hasEmergency = true
		}
		if g.GoalID == fixedInvestmentID || g.Name == fixedInvestmentName {
			g.IsFixed = true
			hasInvestment = true
		}
		merged = append(merged, g)
	}

	if !hasEmergency {
		merged = append([]models.Goal{seeds[0]}, merged...)
	}
	if !hasInvestment {
		merged = append(merged, seeds[1])
	}
	return merged
}

// DefaultGoals returns a fresh copy of the system seeds, used by the
// reset operation.
func DefaultGoals() []models.Goal {
	return fixedGoals()
}
