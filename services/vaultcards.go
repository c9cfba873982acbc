package services

import (
	"github.com/0xDegenDeveloper/ui-clone/types/models"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

// BuildVaultCardData builds the render model of a card. Returns nil unless the query succeeded,
// loading and failed cards render nothing.
func BuildVaultCardData(query *VaultTypeQuery, metrics *models.VaultMetrics) *models.VaultCardData {
	if query == nil || query.Status != VaultTypeStatusSuccess || metrics == nil {
		return nil
	}

	vaultType := query.ActiveVariant()
	return &models.VaultCardData{
		Address:      query.Address,
		ShortAddress: utils.ShortenString(query.Address),
		Route:        utils.VaultRoute(query.Address),
		OpenRoute:    utils.VaultOpenRoute(query.Address),
		VaultType:    vaultType,
		Duration:     metrics.Duration,
		LeftColumn: []*models.VaultCardRow{
			{Icon: utils.IconSpeedometer, Label: "APY:", Value: utils.FormatPercent(metrics.APY)},
			{Icon: utils.IconPieChart, Label: "CL:", Value: utils.FormatPercent(metrics.CollateralLevel)},
			{Icon: utils.IconActivity, Label: "Strike:", Value: utils.FormatDecimalUnit(metrics.Strike, "GWEI")},
		},
		RightColumn: []*models.VaultCardRow{
			{Icon: utils.IconTag, Label: "FEES:", Value: utils.FormatPercent(metrics.Fees)},
			{Icon: utils.IconBarChart, Label: "TVL:", Value: utils.FormatDecimalUnit(metrics.TVL, "ETH")},
			{Icon: utils.IconHourglass, Label: "TIME LEFT:", Value: utils.FormatUnitValue(utils.FormatTimeLeft(metrics.TimeLeft), "LEFT")},
		},
	}
}
