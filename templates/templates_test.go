package templates

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xDegenDeveloper/ui-clone/types"
	"github.com/0xDegenDeveloper/ui-clone/types/models"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

func setTestConfig(t *testing.T, minify bool) {
	t.Helper()
	prevConfig := utils.Config
	t.Cleanup(func() {
		utils.Config = prevConfig
	})

	cfg := &types.Config{}
	cfg.Frontend.Minify = minify
	utils.Config = cfg
}

func TestGetTemplateNames(t *testing.T) {
	names := GetTemplateNames()
	assert.Contains(t, names, "_layout/layout.html")
	assert.Contains(t, names, "vaults/card.html")
	assert.Contains(t, names, "vaults/vaults.html")
	assert.Contains(t, names, "vaults/vault.html")
}

func TestTemplatesParse(t *testing.T) {
	setTestConfig(t, true)

	layout := []string{"_layout/layout.html", "_layout/header.html", "_layout/footer.html"}
	for _, page := range []string{"_layout/404.html", "_layout/500.html", "vaults/vaults.html", "vaults/vault.html"} {
		files := append(append([]string{}, layout...), page, "vaults/card.html")
		assert.NotPanics(t, func() {
			tmpl := GetTemplate(files...)
			assert.NotNil(t, tmpl.Lookup("layout"))
			assert.NotNil(t, tmpl.Lookup("page"))
		}, page)
	}
}

func TestVaultCardTemplate(t *testing.T) {
	setTestConfig(t, true)

	cardData := &models.VaultCardData{
		Address:      "0x0123456789abcdef0123456789abcdef0123abcd",
		ShortAddress: "0x01...abcd",
		Route:        "/vaults/0x0123456789abcdef0123456789abcdef0123abcd",
		OpenRoute:    "/vaults/0x0123456789abcdef0123456789abcdef0123abcd/open",
		VaultType:    "ITM",
		Duration:     "1 Month",
		LeftColumn: []*models.VaultCardRow{
			{Icon: utils.IconSpeedometer, Label: "APY:", Value: "12.3%"},
		},
		RightColumn: []*models.VaultCardRow{
			{Icon: utils.IconHourglass, Label: "TIME LEFT:", Value: "5 Days\u00a0 LEFT"},
		},
	}

	tmpl := GetTemplate("vaults/card.html")
	buf := &bytes.Buffer{}
	require.NoError(t, tmpl.ExecuteTemplate(buf, "vaultCard", cardData))

	body := buf.String()
	assert.Equal(t, 2, strings.Count(body, "ITM"))
	assert.Contains(t, body, `href="/vaults/0x0123456789abcdef0123456789abcdef0123abcd/open"`)
	assert.Contains(t, body, "5 Days\u00a0 LEFT")
	assert.Contains(t, body, "<svg")
	assert.NotContains(t, body, "\n")

	buf.Reset()
	var missing *models.VaultCardData
	require.NoError(t, tmpl.ExecuteTemplate(buf, "vaultCard", missing))
	assert.Empty(t, strings.TrimSpace(buf.String()))
}
