package models

import "time"

// ErrorPageData is a struct to hold info for the internal error page
type ErrorPageData struct {
	CallTime   time.Time
	CallUrl    string
	ErrorMsg   string
	StackTrace string
	Version    string
}
