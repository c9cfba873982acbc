package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/0xDegenDeveloper/ui-clone/services"
	"github.com/0xDegenDeveloper/ui-clone/templates"
	"github.com/0xDegenDeveloper/ui-clone/types/models"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

var vaultCardTemplateFiles = []string{
	"vaults/card.html",
}

// Vaults will return the main "vaults" page using a go template
func Vaults(w http.ResponseWriter, r *http.Request) {
	var vaultsTemplateFiles = append(layoutTemplateFiles,
		"vaults/vaults.html",
		"vaults/card.html",
	)

	var pageTemplate = templates.GetTemplate(vaultsTemplateFiles...)
	data := InitPageData(w, r, "vaults", "/vaults", "Vaults", vaultsTemplateFiles)

	addresses := services.GlobalVaultService.GetVaultAddresses()
	if !checkCallLimit(w, r, uint(len(addresses))) {
		return
	}

	ctx, cancel := pageCallContext(r)
	defer cancel()

	pageData := getVaultsPageData(ctx, addresses)
	data.Data = pageData

	if r.Header.Get("Content-Type") == "application/json" {
		writeJSON(w, r, pageData)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "vaults.go", "Vaults", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

func getVaultsPageData(ctx context.Context, addresses []string) *models.VaultsPageData {
	pageData := &models.VaultsPageData{
		Cards:      []*models.VaultCardData{},
		VaultCount: uint64(len(addresses)),
	}

	cards := services.GlobalVaultService.LoadVaultCards(ctx, addresses)
	for _, card := range cards {
		cardData := services.GlobalVaultService.BuildCardData(card)
		card.Close()

		if cardData == nil {
			pageData.HiddenCount++
			continue
		}
		pageData.Cards = append(pageData.Cards, cardData)
	}

	logrus.WithFields(logrus.Fields{
		"vaults": pageData.VaultCount,
		"hidden": pageData.HiddenCount,
	}).Debugf("vaults page called")

	return pageData
}

// Vault will return the details page of a single vault
func Vault(w http.ResponseWriter, r *http.Request) {
	var vaultTemplateFiles = append(layoutTemplateFiles,
		"vaults/vault.html",
		"vaults/card.html",
	)

	var pageTemplate = templates.GetTemplate(vaultTemplateFiles...)
	address := mux.Vars(r)["address"]
	data := InitPageData(w, r, "vaults", utils.VaultRoute(address), "Vault "+utils.ShortenString(address), vaultTemplateFiles)

	if !checkCallLimit(w, r, 1) {
		return
	}

	ctx, cancel := pageCallContext(r)
	defer cancel()

	card := services.GlobalVaultService.NewVaultCard(address)
	defer card.Close()
	query := card.Wait(ctx)

	pageData := &models.VaultPageData{
		Address: address,
		Status:  query.Status.String(),
		Card:    services.GlobalVaultService.BuildCardData(card),
	}
	data.Data = pageData

	if r.Header.Get("Content-Type") == "application/json" {
		writeJSON(w, r, pageData)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "vaults.go", "Vault", "", pageTemplate.ExecuteTemplate(w, "layout", data)) != nil {
		return // an error has occurred and was processed
	}
}

// VaultCard returns the rendered card of a single vault, or no content while it is loading or failed
func VaultCard(w http.ResponseWriter, r *http.Request) {
	var cardTemplate = templates.GetTemplate(vaultCardTemplateFiles...)
	address := mux.Vars(r)["address"]

	if !checkCallLimit(w, r, 1) {
		return
	}

	ctx, cancel := pageCallContext(r)
	defer cancel()

	card := services.GlobalVaultService.NewVaultCard(address)
	defer card.Close()
	card.Wait(ctx)

	cardData := services.GlobalVaultService.BuildCardData(card)
	if cardData == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if handleTemplateError(w, r, "vaults.go", "VaultCard", address, cardTemplate.ExecuteTemplate(w, "vaultCard", cardData)) != nil {
		return // an error has occurred and was processed
	}
}

// VaultOpen handles a click on a vault card and navigates to the vault details page
func VaultOpen(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]

	if !checkCallLimit(w, r, 1) {
		return
	}

	ctx, cancel := pageCallContext(r)
	defer cancel()

	card := services.GlobalVaultService.NewVaultCard(address)
	defer card.Close()
	card.Wait(ctx)

	if !card.Click(services.NewHttpNavigator(w, r)) {
		NotFound(w, r)
	}
}

func pageCallContext(r *http.Request) (context.Context, context.CancelFunc) {
	callTimeout := utils.Config.Frontend.PageCallTimeout
	if callTimeout == 0 {
		callTimeout = 30 * time.Second
	}
	return context.WithTimeout(r.Context(), callTimeout)
}

func checkCallLimit(w http.ResponseWriter, r *http.Request, callCost uint) bool {
	if callCost == 0 {
		callCost = 1
	}
	err := services.GlobalCallRateLimiter.CheckCallLimit(r, callCost)
	if err == nil {
		return true
	}
	if errors.Is(err, services.ErrCallLimitExceeded) {
		http.Error(w, err.Error(), http.StatusTooManyRequests)
		return false
	}
	handlePageError(w, r, err)
	return false
}

func writeJSON(w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		logrus.WithError(err).Errorf("error encoding json response for %v", r.URL.String())
	}
}
