package utils

import (
	"fmt"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// unitSeparator joins a value and its unit: a non-breaking space followed by a regular one.
const unitSeparator = "\u00a0 "

// ShortenString elides the middle of long identifiers: 0x0123...abcd
func ShortenString(s string) string {
	if len(s) <= 11 {
		return s
	}
	return s[:4] + "..." + s[len(s)-4:]
}

func FormatPercent(value decimal.Decimal) string {
	return value.String() + "%"
}

func FormatUnitValue(value string, unit string) string {
	return value + unitSeparator + unit
}

func FormatDecimalUnit(value decimal.Decimal, unit string) string {
	return FormatUnitValue(value.String(), unit)
}

// FormatTimeLeft renders a remaining duration in whole days, hours below one day.
func FormatTimeLeft(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < 24*time.Hour {
		hours := int64(d / time.Hour)
		if hours == 1 {
			return "1 Hour"
		}
		return fmt.Sprintf("%v Hours", hours)
	}
	days := int64(d / (24 * time.Hour))
	if days == 1 {
		return "1 Day"
	}
	return fmt.Sprintf("%v Days", days)
}

// VaultRoute returns the detail page path of a vault.
func VaultRoute(address string) string {
	return "/vaults/" + url.PathEscape(address)
}

// VaultOpenRoute returns the click target of a vault card, it redirects to the detail page once the card loaded.
func VaultOpenRoute(address string) string {
	return VaultRoute(address) + "/open"
}
