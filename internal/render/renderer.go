// Package render turns an invoice model into a standalone HTML document.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/summary"
)

// Placeholders shown when the matching field is empty
const (
	PlaceholderCompany     = "Your Company"
	PlaceholderClient      = "Client Name"
	PlaceholderDescription = "Item Description"
	PlaceholderNumber      = "N/A"
	PlaceholderDate        = "N/A"
)

// ContentType of every rendered document
const ContentType = "text/html; charset=utf-8"

// LongDateLayout is the human-readable date format, e.g. "March 5, 2024"
const LongDateLayout = "January 2, 2006"

// Renderer produces the invoice document
type Renderer interface {
	Render(inv *domain.Invoice) string
}

// HTMLRenderer renders the single invoice layout with a theme stylesheet
type HTMLRenderer struct {
	tpl *template.Template
}

// NewRenderer parses the invoice template
func NewRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		tpl: template.Must(template.New("invoice").Parse(invoiceHTMLTemplate)),
	}
}

type party struct {
	Name    string
	Address string
	City    string
	Email   string
	Phone   string
}

type itemView struct {
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

type paymentRow struct {
	Label string
	Value string
}

type documentView struct {
	Theme       string
	BaseCSS     template.CSS
	ThemeCSS    template.CSS
	Number      string
	NumberLabel string
	Company     party
	Client      party
	Date        string
	DueDate     string
	Items       []itemView
	Subtotal    string
	VATLabel    string
	VATAmount   string
	Total       string
	Notes       string
	Terms       string
	Payment     []paymentRow
}

// Render is deterministic: the same model always yields the same bytes.
// Every interpolated value is escaped by html/template.
func (r *HTMLRenderer) Render(inv *domain.Invoice) string {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, buildView(inv)); err != nil {
		// the view carries only strings, so this means the template itself is broken
		panic(fmt.Sprintf("render invoice: %v", err))
	}
	return buf.String()
}

func buildView(inv *domain.Invoice) documentView {
	d := summary.NewDisplay(inv)
	theme := ThemeName(inv.Theme)

	v := documentView{
		Theme:       theme,
		BaseCSS:     baseCSS,
		ThemeCSS:    themeCSS[theme],
		Number:      inv.InvoiceDetails.Number,
		NumberLabel: orDefault(inv.InvoiceDetails.Number, PlaceholderNumber),
		Company: party{
			Name:    orDefault(inv.CompanyInfo.Name, PlaceholderCompany),
			Address: inv.CompanyInfo.Address,
			City:    inv.CompanyInfo.City,
			Email:   inv.CompanyInfo.Email,
			Phone:   inv.CompanyInfo.Phone,
		},
		Client: party{
			Name:    orDefault(inv.ClientInfo.Name, PlaceholderClient),
			Address: inv.ClientInfo.Address,
			City:    inv.ClientInfo.City,
			Email:   inv.ClientInfo.Email,
		},
		Date:      FormatDate(inv.InvoiceDetails.Date),
		DueDate:   FormatDate(inv.InvoiceDetails.DueDate),
		Subtotal:  d.Amount(d.Subtotal),
		VATLabel:  d.VATLabel(),
		VATAmount: d.Amount(d.VATAmount),
		Total:     d.Amount(d.Total),
		Notes:     inv.Notes,
		Terms:     inv.Terms,
	}

	v.Items = make([]itemView, len(inv.Items))
	for i, item := range inv.Items {
		v.Items[i] = itemView{
			Description: orDefault(item.Description, PlaceholderDescription),
			Quantity:    FormatQuantity(item.Quantity),
			Rate:        d.Amount(summary.Money(item.Rate)),
			Amount:      d.Amount(summary.Money(item.Amount())),
		}
	}

	if p := inv.PaymentDetails; p.HasContent() {
		for _, row := range []paymentRow{
			{"Bank:", p.BankName},
			{"Account Holder:", p.AccountHolder},
			{"Account Number:", p.AccountNumber},
			{"Reference:", p.Reference},
		} {
			if row.Value != "" {
				v.Payment = append(v.Payment, row)
			}
		}
	}
	return v
}

// ThemeName resolves a theme selector to a known theme, defaulting to modern
func ThemeName(theme string) string {
	theme = strings.ToLower(strings.TrimSpace(theme))
	if _, ok := themeCSS[theme]; ok {
		return theme
	}
	return domain.DefaultTheme
}

// Themes lists the available theme names
func Themes() []string {
	return []string{"modern", "classic", "minimal"}
}

// FormatDate renders a YYYY-MM-DD date as "January 2, 2006". Empty input is
// N/A and anything unparseable is shown as entered.
func FormatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return PlaceholderDate
	}
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t.Format(LongDateLayout)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC().Format(LongDateLayout)
	}
	return value
}

// FormatQuantity prints a quantity without trailing zeros
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename is the download name: invoice-<number>.html, or invoice-draft.html
// when the number is empty. The number is reduced to header-safe characters.
func Filename(inv *domain.Invoice) string {
	number := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(inv.InvoiceDetails.Number), "-")
	number = strings.Trim(number, "-.")
	if number == "" {
		number = "draft"
	}
	return "invoice-" + number + ".html"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
