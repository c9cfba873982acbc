package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVaultCardDataLines(t *testing.T) {
	cardData := &VaultCardData{
		ShortAddress: "0x01...abcd",
		VaultType:    "OTM",
		Duration:     "1 Month",
		LeftColumn: []*VaultCardRow{
			{Label: "APY:", Value: "12.3%"},
		},
		RightColumn: []*VaultCardRow{
			{Label: "FEES:", Value: "1%"},
		},
	}

	assert.Equal(t, []string{
		"1 Month • OTM",
		"0x01...abcd | OTM",
		"APY: 12.3%",
		"FEES: 1%",
	}, cardData.Lines())
}
