package handlers

import (
	"net/http"
)

// Index redirects to the vaults overview, the only top level page
func Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/vaults", http.StatusFound)
}
