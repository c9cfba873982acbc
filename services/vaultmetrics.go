package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/0xDegenDeveloper/ui-clone/types/models"
)

// VaultMetricsProvider supplies the metrics shown on a vault card.
type VaultMetricsProvider interface {
	GetVaultMetrics(query *VaultTypeQuery) *models.VaultMetrics
}

// PlaceholderMetrics returns fixed values for every vault until the vault state is indexed.
type PlaceholderMetrics struct {
	Duration string
}

var (
	placeholderAPY             = decimal.RequireFromString("12.3")
	placeholderCollateralLevel = decimal.RequireFromString("78")
	placeholderStrike          = decimal.RequireFromString("5123.32")
	placeholderFees            = decimal.RequireFromString("12.3")
	placeholderTVL             = decimal.RequireFromString("12.3")
	placeholderTimeLeft        = 5 * 24 * time.Hour
)

func (p *PlaceholderMetrics) GetVaultMetrics(query *VaultTypeQuery) *models.VaultMetrics {
	duration := p.Duration
	if duration == "" {
		duration = "1 Month"
	}
	return &models.VaultMetrics{
		Duration:        duration,
		APY:             placeholderAPY,
		CollateralLevel: placeholderCollateralLevel,
		Strike:          placeholderStrike,
		Fees:            placeholderFees,
		TVL:             placeholderTVL,
		TimeLeft:        placeholderTimeLeft,
	}
}
