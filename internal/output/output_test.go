package output

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
)

func sampleInvoice(number string) *domain.Invoice {
	inv := domain.NewInvoice(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	inv.SetField(domain.PathNumber, number)
	inv.SetField(domain.PathCompanyName, "Acme & Sons")
	inv.UpdateItem(0, domain.ItemDescription, "Design")
	inv.UpdateItem(0, domain.ItemQuantity, "2")
	inv.UpdateItem(0, domain.ItemRate, "50")
	return inv
}

func TestDownload(t *testing.T) {
	r := render.NewRenderer()

	att := Download(r, sampleInvoice("INV-3"))
	assert.Equal(t, "invoice-INV-3.html", att.Filename)
	assert.Equal(t, "text/html; charset=utf-8", att.ContentType)
	assert.Equal(t, r.Render(sampleInvoice("INV-3")), string(att.Body))

	assert.Equal(t, "invoice-draft.html", Download(r, sampleInvoice("")).Filename)
}

func TestLauncherPage(t *testing.T) {
	r := render.NewRenderer()
	l := NewLauncher(r, 0)

	page, err := l.Page(sampleInvoice("INV-3"))
	require.NoError(t, err)

	assert.Regexp(t, `\}, +250 *\);`, page)
	assert.Contains(t, page, "frame.onload")
	assert.Contains(t, page, "frame.srcdoc = ")
	// the embedded document is a JS string literal, never raw markup
	assert.Equal(t, 1, strings.Count(page, "<!DOCTYPE html>"))
	assert.Contains(t, page, `\u003c!DOCTYPE html\u003e`)

	l = NewLauncher(r, 600*time.Millisecond)
	page, err = l.Page(sampleInvoice("INV-3"))
	require.NoError(t, err)
	assert.Regexp(t, `\}, +600 *\);`, page)
}

type fakeWindow struct {
	mu      sync.Mutex
	loaded  chan struct{}
	printed time.Time
	closed  bool
	html    string
}

func (w *fakeWindow) Loaded() <-chan struct{} { return w.loaded }

func (w *fakeWindow) Print(out io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.printed = time.Now()
	_, err := io.WriteString(out, w.html)
	return err
}

func (w *fakeWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

type fakeViewer struct {
	win     *fakeWindow
	openErr error
}

func (v *fakeViewer) Open(_ context.Context, doc Document) (Window, error) {
	if v.openErr != nil {
		return nil, v.openErr
	}
	v.win.html = doc.HTML
	return v.win, nil
}

func TestPrinter(t *testing.T) {
	r := render.NewRenderer()

	t.Run("waits for load then settle", func(t *testing.T) {
		win := &fakeWindow{loaded: make(chan struct{})}
		p := NewPrinter(r, &fakeViewer{win: win}, 30*time.Millisecond)

		var loadedAt time.Time
		go func() {
			time.Sleep(20 * time.Millisecond)
			loadedAt = time.Now()
			close(win.loaded)
		}()

		var buf bytes.Buffer
		inv := sampleInvoice("INV-9")
		require.NoError(t, p.Print(context.Background(), inv, &buf))

		assert.Equal(t, r.Render(inv), buf.String())
		assert.False(t, win.printed.IsZero())
		assert.GreaterOrEqual(t, win.printed.Sub(loadedAt), 30*time.Millisecond)
		assert.True(t, win.closed)
	})

	t.Run("cancel while loading", func(t *testing.T) {
		win := &fakeWindow{loaded: make(chan struct{})}
		p := NewPrinter(r, &fakeViewer{win: win}, time.Millisecond)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		err := p.Print(ctx, sampleInvoice("INV-9"), io.Discard)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, win.printed.IsZero())
		assert.True(t, win.closed)
	})

	t.Run("cancel while settling", func(t *testing.T) {
		win := &fakeWindow{loaded: make(chan struct{})}
		close(win.loaded)
		p := NewPrinter(r, &fakeViewer{win: win}, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		err := p.Print(ctx, sampleInvoice("INV-9"), io.Discard)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, win.printed.IsZero())
	})

	t.Run("viewer failure", func(t *testing.T) {
		p := NewPrinter(r, &fakeViewer{openErr: errors.New("no display")}, time.Millisecond)
		err := p.Print(context.Background(), sampleInvoice("INV-9"), io.Discard)
		assert.ErrorContains(t, err, "no display")
	})
}

func TestPDFViewer(t *testing.T) {
	p := NewPrinter(render.NewRenderer(), NewPDFViewer(), time.Millisecond)

	inv := sampleInvoice("INV-10")
	inv.SetField(domain.PathBankName, "First Bank")
	inv.AddItem()

	var buf bytes.Buffer
	require.NoError(t, p.Print(context.Background(), inv, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	_, err := NewPDFViewer().Open(context.Background(), Document{})
	assert.Error(t, err)
}

func TestPDFText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "Acme & Sons", "Acme & Sons"},
		{"latin accents", "Zoë Café", "Zoë Café"},
		{"euro sign", "€", "€"},
		{"rupee sign", "₹", "?"},
		{"cjk", "北京 Ltd", "?? Ltd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pdfText(tt.in))
		})
	}
}

func TestPDFSymbol(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"JPY", "¥"},
		{"INR", "INR "},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			inv := sampleInvoice("INV-11")
			inv.SetField(domain.PathCurrency, tt.code)
			assert.Equal(t, tt.want, pdfSymbol(inv))
		})
	}
}

func TestPDFViewerNonLatinContent(t *testing.T) {
	p := NewPrinter(render.NewRenderer(), NewPDFViewer(), time.Millisecond)

	inv := sampleInvoice("INV-12")
	inv.SetField(domain.PathCurrency, "INR")
	inv.SetField(domain.PathClientName, "北京 Trading")

	var buf bytes.Buffer
	require.NoError(t, p.Print(context.Background(), inv, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestPDFViewerOverflowingTotals(t *testing.T) {
	p := NewPrinter(render.NewRenderer(), NewPDFViewer(), time.Millisecond)

	inv := sampleInvoice("INV-13")
	inv.UpdateItem(0, domain.ItemQuantity, "1e200")
	inv.UpdateItem(0, domain.ItemRate, "1e200")

	var buf bytes.Buffer
	require.NoError(t, p.Print(context.Background(), inv, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
