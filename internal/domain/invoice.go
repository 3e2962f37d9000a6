package domain

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ridwanfathin/invoice-builder-service/internal/currency"
)

// DateLayout is the ISO-8601 calendar date format used by invoice dates
const DateLayout = "2006-01-02"

// Defaults applied to a freshly opened invoice form
const (
	DefaultTheme = "modern"
	DefaultNotes = "Thank you for your business!"
	DefaultTerms = "Payment is due within 30 days of invoice date. Late payments may incur a fee."
)

// Line item columns accepted by UpdateItem
const (
	ItemDescription = "description"
	ItemQuantity    = "quantity"
	ItemRate        = "rate"
)

// CompanyInfo holds the issuing company's contact block
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ClientInfo holds the bill-to block
type ClientInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Email   string `json:"email"`
}

// InvoiceDetails holds the invoice number and its two dates (YYYY-MM-DD)
type InvoiceDetails struct {
	Number  string `json:"number"`
	Date    string `json:"date"`
	DueDate string `json:"dueDate"`
}

// PaymentDetails holds banking fields. The block is only displayed when
// BankName is set.
type PaymentDetails struct {
	BankName      string `json:"bankName"`
	AccountHolder string `json:"accountHolder"`
	AccountNumber string `json:"accountNumber"`
	Reference     string `json:"reference"`
}

// HasContent reports whether the payment block should be displayed
func (p PaymentDetails) HasContent() bool {
	return strings.TrimSpace(p.BankName) != ""
}

// LineItem represents a single billable row
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

// Amount is quantity times rate. It is never stored.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.Rate
}

// UnmarshalJSON accepts numbers or numeric strings for quantity and rate,
// coercing anything unparseable to zero.
func (li *LineItem) UnmarshalJSON(b []byte) error {
	var aux struct {
		Description string     `json:"description"`
		Quantity    flexNumber `json:"quantity"`
		Rate        flexNumber `json:"rate"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*li = LineItem{
		Description: aux.Description,
		Quantity:    float64(aux.Quantity),
		Rate:        float64(aux.Rate),
	}
	return nil
}

// BlankItem is the row appended by AddItem
func BlankItem() LineItem {
	return LineItem{Description: "", Quantity: 1, Rate: 0}
}

// Invoice is the document model: the unit of editing, rendering and persistence
type Invoice struct {
	Currency       string         `json:"currency"`
	Theme          string         `json:"theme"`
	CompanyInfo    CompanyInfo    `json:"companyInfo"`
	ClientInfo     ClientInfo     `json:"clientInfo"`
	InvoiceDetails InvoiceDetails `json:"invoiceDetails"`
	Items          []LineItem     `json:"items"`
	Notes          string         `json:"notes"`
	Terms          string         `json:"terms"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	VATRate        float64        `json:"vatRate"`
}

// Totals are the derived monetary values of an invoice
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	VATAmount float64 `json:"vatAmount"`
	Total     float64 `json:"total"`
}

// NewInvoice creates a model with the form defaults, dated on now's calendar day
func NewInvoice(now time.Time) *Invoice {
	return &Invoice{
		Currency: currency.DefaultCode,
		Theme:    DefaultTheme,
		InvoiceDetails: InvoiceDetails{
			Date: now.Format(DateLayout),
		},
		Items:   []LineItem{BlankItem()},
		Notes:   DefaultNotes,
		Terms:   DefaultTerms,
		VATRate: 0,
	}
}

// DecodeInvoice builds a model from a stored document. Fields present in data
// overwrite the defaults of a fresh model; absent fields keep them.
func DecodeInvoice(data []byte, now time.Time) (*Invoice, error) {
	inv := NewInvoice(now)
	if err := json.Unmarshal(data, inv); err != nil {
		return nil, err
	}
	inv.EnsureItems()
	return inv, nil
}

// UnmarshalJSON decodes onto the receiver's current values so that absent
// fields are preserved, and coerces vatRate leniently.
func (i *Invoice) UnmarshalJSON(b []byte) error {
	type plain Invoice
	aux := struct {
		*plain
		VATRate *flexNumber `json:"vatRate"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if aux.VATRate != nil {
		i.VATRate = clampRate(float64(*aux.VATRate))
	}
	return nil
}

// Symbol is the display symbol of the invoice currency
func (i *Invoice) Symbol() string {
	return currency.Symbol(i.Currency)
}

// AddItem appends a blank row
func (i *Invoice) AddItem() {
	i.Items = append(i.Items, BlankItem())
}

// RemoveItem deletes the row at index. Removing the last remaining row
// leaves a single blank row behind. Out-of-range indexes are ignored.
func (i *Invoice) RemoveItem(index int) bool {
	if index < 0 || index >= len(i.Items) {
		return false
	}
	i.Items = append(i.Items[:index], i.Items[index+1:]...)
	i.EnsureItems()
	return true
}

// UpdateItem stores a raw control value into one column of a row.
// Numeric columns coerce bad input to zero.
func (i *Invoice) UpdateItem(index int, field, raw string) bool {
	if index < 0 || index >= len(i.Items) {
		return false
	}
	item := &i.Items[index]
	switch field {
	case ItemDescription:
		item.Description = raw
	case ItemQuantity:
		item.Quantity = ParseNumber(raw)
	case ItemRate:
		item.Rate = ParseNumber(raw)
	default:
		return false
	}
	return true
}

// EnsureItems re-seeds one blank row when the list is empty
func (i *Invoice) EnsureItems() {
	if len(i.Items) == 0 {
		i.AddItem()
	}
}

// Recompute derives subtotal, VAT and total from the current rows
func (i *Invoice) Recompute() Totals {
	var subtotal float64
	for _, item := range i.Items {
		subtotal += item.Amount()
	}
	vat := subtotal * i.VATRate / 100
	return Totals{
		Subtotal:  subtotal,
		VATAmount: vat,
		Total:     subtotal + vat,
	}
}

// Clone returns a deep copy
func (i *Invoice) Clone() *Invoice {
	out := *i
	out.Items = make([]LineItem, len(i.Items))
	copy(out.Items, i.Items)
	return &out
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber reads the leading decimal number of raw, the way a browser
// number field hands it over. Empty, unparseable or non-finite input is 0.
func ParseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v == 0 {
		return 0
	}
	return v
}

func clampRate(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// flexNumber decodes a JSON number or numeric string
type flexNumber float64

func (n *flexNumber) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			*n = 0
		} else {
			*n = flexNumber(x)
		}
	case string:
		*n = flexNumber(ParseNumber(x))
	default:
		*n = 0
	}
	return nil
}
