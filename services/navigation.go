package services

import (
	"net/http"
)

// Navigator accepts client side route transitions. Push is fire-and-forget.
type Navigator interface {
	Push(path string)
}

// HttpNavigator answers the current request with a redirect to the pushed path.
type HttpNavigator struct {
	w http.ResponseWriter
	r *http.Request
}

func NewHttpNavigator(w http.ResponseWriter, r *http.Request) *HttpNavigator {
	return &HttpNavigator{w: w, r: r}
}

func (n *HttpNavigator) Push(path string) {
	http.Redirect(n.w, n.r, path, http.StatusFound)
}
