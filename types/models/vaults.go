package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VaultsPageData is a struct to hold info for the vaults page
type VaultsPageData struct {
	Cards       []*VaultCardData `json:"cards"`
	VaultCount  uint64           `json:"vault_count"`
	HiddenCount uint64           `json:"hidden_count"`
}

// VaultPageData is a struct to hold info for the vault details page
type VaultPageData struct {
	Address string         `json:"address"`
	Status  string         `json:"status"`
	Card    *VaultCardData `json:"card"`
}

// VaultCardData holds a fully resolved vault card. It only exists for vaults whose type query succeeded.
type VaultCardData struct {
	Address      string          `json:"address"`
	ShortAddress string          `json:"short_address"`
	Route        string          `json:"route"`
	OpenRoute    string          `json:"open_route"`
	VaultType    string          `json:"vault_type"`
	Duration     string          `json:"duration"`
	LeftColumn   []*VaultCardRow `json:"left"`
	RightColumn  []*VaultCardRow `json:"right"`
}

type VaultCardRow struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// VaultMetrics are the values shown in the two card columns.
type VaultMetrics struct {
	Duration        string          `json:"duration"`
	APY             decimal.Decimal `json:"apy"`
	CollateralLevel decimal.Decimal `json:"cl"`
	Strike          decimal.Decimal `json:"strike"`
	Fees            decimal.Decimal `json:"fees"`
	TVL             decimal.Decimal `json:"tvl"`
	TimeLeft        time.Duration   `json:"time_left"`
}

// Lines returns the plain text form of the card, header first.
func (d *VaultCardData) Lines() []string {
	lines := []string{
		d.Duration + " • " + d.VaultType,
		d.ShortAddress + " | " + d.VaultType,
	}
	for _, row := range d.LeftColumn {
		lines = append(lines, row.Label+" "+row.Value)
	}
	for _, row := range d.RightColumn {
		lines = append(lines, row.Label+" "+row.Value)
	}
	return lines
}
