package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xDegenDeveloper/ui-clone/ethtypes"
	"github.com/0xDegenDeveloper/ui-clone/services"
	"github.com/0xDegenDeveloper/ui-clone/types"
	"github.com/0xDegenDeveloper/ui-clone/types/models"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

const (
	otmVault     = "0x1111111111111111111111111111111111111111"
	itmVault     = "0x2222222222222222222222222222222222222222"
	failingVault = "0x3333333333333333333333333333333333333333"
	pendingVault = "0x4444444444444444444444444444444444444444"
)

type fakeVaultReader struct {
	variants map[string]ethtypes.VaultTypeVariant
}

func (r *fakeVaultReader) ReadVaultType(ctx context.Context, address string) (*ethtypes.VaultType, error) {
	if address == pendingVault {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	variant, found := r.variants[address]
	if !found {
		return nil, errors.New("execution reverted")
	}
	return ethtypes.DecodeVaultType(uint8(variant))
}

func setupVaultHandlers(t *testing.T, addresses ...string) (*mux.Router, *test.Hook) {
	t.Helper()

	prevConfig := utils.Config
	prevService := services.GlobalVaultService
	t.Cleanup(func() {
		utils.Config = prevConfig
		services.GlobalVaultService = prevService
	})

	cfg := &types.Config{}
	cfg.Frontend.SiteName = "Vault Explorer"
	cfg.Frontend.PageCallTimeout = 200 * time.Millisecond
	utils.Config = cfg

	logger, hook := test.NewNullLogger()
	reader := &fakeVaultReader{
		variants: map[string]ethtypes.VaultTypeVariant{
			otmVault: ethtypes.VaultTypeOutOfTheMoney,
			itmVault: ethtypes.VaultTypeInTheMoney,
		},
	}
	services.GlobalVaultService = services.NewVaultService(
		logger,
		&services.ChainConnection{Mode: utils.ConnectionRpc},
		reader,
		&services.PlaceholderMetrics{},
		time.Second,
		addresses,
	)

	router := mux.NewRouter()
	router.HandleFunc("/vaults", Vaults).Methods("GET")
	router.HandleFunc("/vaults/{address}", Vault).Methods("GET")
	router.HandleFunc("/vaults/{address}/card", VaultCard).Methods("GET")
	router.HandleFunc("/vaults/{address}/open", VaultOpen).Methods("GET")
	router.NotFoundHandler = http.HandlerFunc(NotFound)

	return router, hook
}

func serve(router http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestVaultCardFragment(t *testing.T) {
	router, _ := setupVaultHandlers(t)

	rec := serve(router, "/vaults/"+otmVault+"/card", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "OTM"))
	assert.Contains(t, body, "1 Month")
	assert.Contains(t, body, utils.ShortenString(otmVault)+" | OTM")
	assert.Contains(t, body, `href="/vaults/`+otmVault+`/open"`)
	assert.Contains(t, body, "12.3%")
	assert.Contains(t, body, "5123.32\u00a0 GWEI")
	assert.Contains(t, body, "12.3\u00a0 ETH")
	assert.Contains(t, body, "5 Days\u00a0 LEFT")
}

func TestVaultCardFragmentNotReady(t *testing.T) {
	router, hook := setupVaultHandlers(t)

	rec := serve(router, "/vaults/"+failingVault+"/card", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	countErrors := func() int {
		errorEntries := 0
		for _, entry := range hook.AllEntries() {
			if entry.Level == logrus.ErrorLevel {
				errorEntries++
			}
		}
		return errorEntries
	}
	require.Eventually(t, func() bool {
		return countErrors() == 1
	}, time.Second, 5*time.Millisecond)

	rec = serve(router, "/vaults/"+pendingVault+"/card", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 1, countErrors())
}

func TestVaultOpen(t *testing.T) {
	router, _ := setupVaultHandlers(t)

	rec := serve(router, "/vaults/"+itmVault+"/open", nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/vaults/"+itmVault, rec.Header().Get("Location"))

	rec = serve(router, "/vaults/"+failingVault+"/open", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestVaultCardLinkNavigates(t *testing.T) {
	router, _ := setupVaultHandlers(t, otmVault)

	rec := serve(router, "/vaults", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	hrefStart := strings.Index(body, `class="vault-card" href="`)
	require.GreaterOrEqual(t, hrefStart, 0)
	href := body[hrefStart+len(`class="vault-card" href="`):]
	href = href[:strings.Index(href, `"`)]
	assert.Equal(t, "/vaults/"+otmVault+"/open", href)

	rec = serve(router, href, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/vaults/"+otmVault, rec.Header().Get("Location"))
}

func TestVaultsPage(t *testing.T) {
	router, _ := setupVaultHandlers(t, otmVault, itmVault, failingVault)

	rec := serve(router, "/vaults", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, 2, strings.Count(body, "data-vault="))
	assert.Contains(t, body, `data-vault="`+otmVault+`"`)
	assert.Contains(t, body, `data-vault="`+itmVault+`"`)
	assert.NotContains(t, body, failingVault)
}

func TestVaultsPageJSON(t *testing.T) {
	router, _ := setupVaultHandlers(t, otmVault, failingVault)

	rec := serve(router, "/vaults", http.Header{"Content-Type": []string{"application/json"}})
	require.Equal(t, http.StatusOK, rec.Code)

	pageData := &models.VaultsPageData{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), pageData))
	assert.Equal(t, uint64(2), pageData.VaultCount)
	assert.Equal(t, uint64(1), pageData.HiddenCount)
	require.Len(t, pageData.Cards, 1)
	assert.Equal(t, "OTM", pageData.Cards[0].VaultType)
}

func TestVaultPage(t *testing.T) {
	router, _ := setupVaultHandlers(t)

	rec := serve(router, "/vaults/"+itmVault, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-vault="`+itmVault+`"`)

	rec = serve(router, "/vaults/"+failingVault, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "currently unavailable")
	assert.NotContains(t, rec.Body.String(), "data-vault=")
}

func TestNotFound(t *testing.T) {
	router, _ := setupVaultHandlers(t)

	rec := serve(router, "/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
