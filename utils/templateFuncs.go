package utils

import (
	"html/template"

	"github.com/Masterminds/sprig/v3"
)

// GetTemplateFuncs will get the template functions
func GetTemplateFuncs() template.FuncMap {
	fm := template.FuncMap{}

	for k, v := range sprig.FuncMap() {
		fm[k] = v
	}

	customFuncs := template.FuncMap{
		"icon":          FormatIcon,
		"shortenString": ShortenString,
		"vaultRoute":    VaultRoute,
	}

	for k, v := range customFuncs {
		fm[k] = v
	}

	return fm
}
