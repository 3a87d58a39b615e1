package services

import (
	"github.com/monexapp/monex-backend/internal/dto"
	"github.com/monexapp/monex-backend/internal/models"
)

// Usage bands for a card's statement balance against its limit. Purely a
// presentation signal; no behavior changes across bands.
const (
	CardBandSafe     = "seguro"  // < 50%
	CardBandWatch    = "atencao" // 50-90%
	CardBandCritical = "critico" // > 90%
)

// invoiceCategory ties invoice imports into aggregates and any matching
// spending limit through the normal expense path.
const invoiceCategory = "Cartão de Crédito"

const defaultInvoiceDescription = "Fatura de Cartão de Crédito"

// CardUsagePercent guards the zero-limit division.
func CardUsagePercent(c models.CreditCard) float64 {
	if c.Limit <= 0 {
		return 0
	}
	return c.CurrentBill / c.Limit * 100
}

// CardBandOf classifies usage into the three visual bands.
func CardBandOf(c models.CreditCard) string {
	pct := CardUsagePercent(c)
	switch {
	case pct > 90:
		return CardBandCritical
	case pct >= 50:
		return CardBandWatch
	default:
		return CardBandSafe
	}
}

// CardStatusOf builds the derived read-model for one card.
func CardStatusOf(c models.CreditCard) dto.CardStatus {
	return dto.CardStatus{
		CreditCard:   c,
		Available:    c.Available(),
		UsagePercent: CardUsagePercent(c),
		UsageBand:    CardBandOf(c),
	}
}
