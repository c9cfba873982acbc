package handlers

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/0xDegenDeveloper/ui-clone/templates"
	"github.com/0xDegenDeveloper/ui-clone/types/models"
	"github.com/0xDegenDeveloper/ui-clone/utils"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	templateFiles := append(layoutTemplateFiles, "_layout/404.html")
	notFoundTemplate := templates.GetTemplate(templateFiles...)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusNotFound)
	data := InitPageData(w, r, "vaults", r.URL.Path, "Not Found", templateFiles)
	err := notFoundTemplate.ExecuteTemplate(w, "layout", data)
	if err != nil {
		logrus.Errorf("error executing not-found template for %v route: %v", r.URL.String(), err)
		http.Error(w, "Internal server error", http.StatusServiceUnavailable)
	}
}

func handlePageError(w http.ResponseWriter, r *http.Request, pageError error) {
	templateFiles := append(layoutTemplateFiles, "_layout/500.html")
	errorTemplate := templates.GetTemplate(templateFiles...)
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusInternalServerError)
	data := InitPageData(w, r, "vaults", r.URL.Path, "Internal Error", templateFiles)
	data.Data = &models.ErrorPageData{
		CallTime: time.Now(),
		CallUrl:  r.URL.String(),
		ErrorMsg: pageError.Error(),
		Version:  utils.GetExplorerVersion(),
	}
	err := errorTemplate.ExecuteTemplate(w, "layout", data)
	if err != nil {
		logrus.Errorf("error executing page error template for %v route: %v", r.URL.String(), err)
		http.Error(w, "Internal server error", http.StatusServiceUnavailable)
	}
}
