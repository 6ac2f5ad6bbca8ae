// Package currency normalizes currency codes and looks up exchange rates into
// the operator's home currency.
package currency

import "strings"

// symbols maps the ISO codes the planner knows about to their display symbol.
var symbols = map[string]string{
	"MYR": "RM", "USD": "$", "JPY": "¥", "EUR": "€", "GBP": "£", "SGD": "S$",
	"THB": "฿", "AUD": "A$", "KRW": "₩", "CNY": "¥", "TWD": "NT$", "IDR": "Rp",
	"PHP": "₱", "INR": "₹", "AED": "د.إ", "CHF": "CHF", "HKD": "HK$", "NZD": "NZ$",
	"CAD": "C$", "VND": "₫",
}

// symbolCodes resolves the symbols people actually type back to a code.
// Ambiguous symbols (¥ is also CNY) resolve to the more common currency.
var symbolCodes = map[string]string{
	"¥": "JPY", "$": "USD", "€": "EUR", "£": "GBP", "RM": "MYR",
	"₩": "KRW", "฿": "THB", "₱": "PHP", "₹": "INR", "₫": "VND",
	"Rp": "IDR",
}

// NormalizeCode turns user input such as "jpy", " ¥ " or "RM" into an ISO code.
// Unknown input is returned trimmed and upper-cased; empty input stays empty.
func NormalizeCode(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	upper := strings.ToUpper(trimmed)
	if _, ok := symbols[upper]; ok {
		return upper
	}
	if code, ok := symbolCodes[trimmed]; ok {
		return code
	}
	for sym, code := range symbolCodes {
		if strings.EqualFold(sym, trimmed) {
			return code
		}
	}
	return upper
}

// Symbol returns the display symbol for code, or code itself when unknown.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}
