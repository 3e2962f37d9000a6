package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/encoding/charmap"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
	"github.com/ridwanfathin/invoice-builder-service/internal/summary"
)

// PDFContentType of documents printed by the PDF viewer
const PDFContentType = "application/pdf"

var errWindowClosed = errors.New("window closed")

// PDFViewer lays the invoice out as a PDF export. It fills the same data
// slots as the HTML document but is its own layout, so its output is not
// the HTML bytes. Printing writes the PDF bytes.
type PDFViewer struct{}

// NewPDFViewer creates the PDF viewer
func NewPDFViewer() *PDFViewer {
	return &PDFViewer{}
}

// Open starts laying out the document. The window reports loaded when the
// PDF has been generated.
func (v *PDFViewer) Open(_ context.Context, doc Document) (Window, error) {
	if doc.Invoice == nil {
		return nil, errors.New("document has no invoice")
	}
	w := &pdfWindow{loaded: make(chan struct{})}
	go func() {
		defer close(w.loaded)
		defer func() {
			if r := recover(); r != nil {
				w.data, w.err = nil, fmt.Errorf("pdf layout failed: %v", r)
			}
		}()
		w.data, w.err = layoutPDF(doc.Invoice)
	}()
	return w, nil
}

type pdfWindow struct {
	loaded chan struct{}
	data   []byte
	err    error
	closed bool
}

func (w *pdfWindow) Loaded() <-chan struct{} {
	return w.loaded
}

func (w *pdfWindow) Print(out io.Writer) error {
	<-w.loaded
	if w.closed {
		return errWindowClosed
	}
	if w.err != nil {
		return w.err
	}
	_, err := out.Write(w.data)
	return err
}

func (w *pdfWindow) Close() error {
	w.closed = true
	return nil
}

// pdfText maps s onto the core fonts' Windows-1252 repertoire, replacing
// runes outside it with '?'.
func pdfText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteRune(r)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

// pdfSymbol is the currency symbol when the core fonts can draw it, else
// the currency code, e.g. "INR 100.00".
func pdfSymbol(inv *domain.Invoice) string {
	symbol := inv.Symbol()
	if pdfText(symbol) == symbol {
		return symbol
	}
	return strings.ToUpper(strings.TrimSpace(inv.Currency)) + " "
}

func layoutPDF(inv *domain.Invoice) ([]byte, error) {
	d := summary.NewDisplay(inv)
	d.CurrencySymbol = pdfSymbol(inv)

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	number := inv.InvoiceDetails.Number
	if number == "" {
		number = render.PlaceholderNumber
	}
	m.AddRow(14,
		col.New(6),
		text.NewCol(6, "INVOICE", props.Text{Size: 22, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(6,
		col.New(6),
		text.NewCol(6, "#"+pdfText(number), props.Text{Size: 10, Align: align.Right}),
	)

	company := inv.CompanyInfo.Name
	if company == "" {
		company = render.PlaceholderCompany
	}
	m.AddRow(28,
		col.New(6),
		col.New(6).Add(
			text.New(pdfText(company), props.Text{Style: fontstyle.Bold, Align: align.Right}),
			text.New(pdfText(inv.CompanyInfo.Address), props.Text{Top: 5, Size: 9, Align: align.Right}),
			text.New(pdfText(inv.CompanyInfo.City), props.Text{Top: 9, Size: 9, Align: align.Right}),
			text.New(pdfText(inv.CompanyInfo.Email), props.Text{Top: 13, Size: 9, Align: align.Right}),
			text.New(pdfText(inv.CompanyInfo.Phone), props.Text{Top: 17, Size: 9, Align: align.Right}),
		),
	)

	client := inv.ClientInfo.Name
	if client == "" {
		client = render.PlaceholderClient
	}
	m.AddRow(30,
		col.New(6).Add(
			text.New("BILL TO:", props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(pdfText(client), props.Text{Top: 5, Style: fontstyle.Bold}),
			text.New(pdfText(inv.ClientInfo.Address), props.Text{Top: 10, Size: 9}),
			text.New(pdfText(inv.ClientInfo.City), props.Text{Top: 14, Size: 9}),
			text.New(pdfText(inv.ClientInfo.Email), props.Text{Top: 18, Size: 9}),
		),
		col.New(6).Add(
			text.New("Invoice Date: "+pdfText(render.FormatDate(inv.InvoiceDetails.Date)), props.Text{Size: 9, Align: align.Right}),
			text.New("Due Date: "+pdfText(render.FormatDate(inv.InvoiceDetails.DueDate)), props.Text{Top: 5, Size: 9, Align: align.Right}),
		),
	)

	m.AddRow(10,
		text.NewCol(6, "DESCRIPTION", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "QTY", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Center}),
		text.NewCol(2, "RATE", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "AMOUNT", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, item := range inv.Items {
		desc := item.Description
		if desc == "" {
			desc = render.PlaceholderDescription
		}
		m.AddRow(10,
			text.NewCol(6, pdfText(desc), props.Text{Size: 9}),
			text.NewCol(2, render.FormatQuantity(item.Quantity), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, d.Amount(summary.Money(item.Rate)), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, d.Amount(summary.Money(item.Amount())), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(7),
		text.NewCol(3, "Subtotal:", props.Text{Size: 9}),
		text.NewCol(2, d.Amount(d.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(7),
		text.NewCol(3, d.VATLabel(), props.Text{Size: 9}),
		text.NewCol(2, d.Amount(d.VATAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(7),
		text.NewCol(3, "TOTAL:", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(2, d.Amount(d.Total), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)

	addSection(m, "NOTES:", inv.Notes)
	addSection(m, "TERMS:", inv.Terms)
	if p := inv.PaymentDetails; p.HasContent() {
		var lines []string
		for _, kv := range [][2]string{
			{"Bank:", p.BankName},
			{"Account Holder:", p.AccountHolder},
			{"Account Number:", p.AccountNumber},
			{"Reference:", p.Reference},
		} {
			if kv[1] != "" {
				lines = append(lines, kv[0]+" "+kv[1])
			}
		}
		addSection(m, "PAYMENT DETAILS:", strings.Join(lines, "\n"))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

func addSection(m core.Maroto, title, body string) {
	if body == "" {
		return
	}
	m.AddRow(8, text.NewCol(12, title, props.Text{Size: 9, Style: fontstyle.Bold, Top: 3}))
	for _, line := range strings.Split(body, "\n") {
		m.AddRow(5, text.NewCol(12, pdfText(line), props.Text{Size: 9}))
	}
}
