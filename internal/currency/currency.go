package currency

import "strings"

// DefaultCode is the currency a fresh invoice starts with
const DefaultCode = "USD"

// FallbackSymbol is shown whenever a code does not resolve
const FallbackSymbol = "$"

// Currency describes a selectable display currency
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Label is the text shown in the currency selector, e.g. "USD ($) - US Dollar"
func (c Currency) Label() string {
	return c.Code + " (" + c.Symbol + ") - " + c.Name
}

// table keeps selector order stable.
var table = []Currency{
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
}

var byCode = func() map[string]Currency {
	m := make(map[string]Currency, len(table))
	for _, c := range table {
		m[c.Code] = c
	}
	return m
}()

// All returns the supported currencies in selector order
func All() []Currency {
	out := make([]Currency, len(table))
	copy(out, table)
	return out
}

// Lookup finds a currency by its code. Codes are matched exactly
// after trimming surrounding whitespace.
func Lookup(code string) (Currency, bool) {
	c, ok := byCode[strings.TrimSpace(code)]
	return c, ok
}

// Known reports whether code is in the table
func Known(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// Symbol returns the display symbol for code, or FallbackSymbol
func Symbol(code string) string {
	if c, ok := Lookup(code); ok {
		return c.Symbol
	}
	return FallbackSymbol
}
