package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-builder-service/internal/currency"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
)

// CurrencyHandler serves the editor's selector options
type CurrencyHandler struct{}

// NewCurrencyHandler creates a new currency handler
func NewCurrencyHandler() *CurrencyHandler {
	return &CurrencyHandler{}
}

// CurrencyOption is one entry of the currency selector
type CurrencyOption struct {
	currency.Currency
	Label string `json:"label"`
}

// CurrencyListResponse lists the selectable currencies and themes
type CurrencyListResponse struct {
	Default    string           `json:"default"`
	Currencies []CurrencyOption `json:"currencies"`
	Themes     []string         `json:"themes"`
}

// ListCurrencies returns the supported currencies in selector order
// @Summary List currencies
// @Description Currencies the invoice can be displayed in, with the available themes
// @Tags currency
// @Produce json
// @Success 200 {object} CurrencyListResponse "Currencies"
// @Router /v1/currencies [get]
func (h *CurrencyHandler) ListCurrencies(c *gin.Context) {
	all := currency.All()
	options := make([]CurrencyOption, len(all))
	for i, cur := range all {
		options[i] = CurrencyOption{Currency: cur, Label: cur.Label()}
	}
	respondOK(c, CurrencyListResponse{
		Default:    currency.DefaultCode,
		Currencies: options,
		Themes:     render.Themes(),
	})
}

// RegisterRoutes registers currency routes
func (h *CurrencyHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/currencies", h.ListCurrencies)
}
