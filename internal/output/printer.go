package output

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
)

// Document is what a viewer is asked to show: the rendered HTML and the
// model it was rendered from
type Document struct {
	HTML    string
	Invoice *domain.Invoice
}

// Window is a document opened in a viewer
type Window interface {
	// Loaded is closed once the content has finished loading
	Loaded() <-chan struct{}
	Print(w io.Writer) error
	Close() error
}

// Viewer opens documents into transient windows
type Viewer interface {
	Open(ctx context.Context, doc Document) (Window, error)
}

// Printer drives a document through a viewer into its print flow
type Printer struct {
	renderer render.Renderer
	viewer   Viewer
	settle   time.Duration
}

// NewPrinter creates a printer. A non-positive settle uses the default.
func NewPrinter(r render.Renderer, v Viewer, settle time.Duration) *Printer {
	if settle <= 0 {
		settle = DefaultSettleDelay
	}
	return &Printer{renderer: r, viewer: v, settle: settle}
}

// Print opens the rendered invoice, waits for the load signal, lets the
// layout settle and then prints into w. Cancelling ctx aborts any wait.
func (p *Printer) Print(ctx context.Context, inv *domain.Invoice, w io.Writer) error {
	doc := Document{HTML: p.renderer.Render(inv), Invoice: inv.Clone()}

	win, err := p.viewer.Open(ctx, doc)
	if err != nil {
		return fmt.Errorf("open viewer: %w", err)
	}
	defer win.Close()

	select {
	case <-win.Loaded():
	case <-ctx.Done():
		return ctx.Err()
	}

	timer := time.NewTimer(p.settle)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := win.Print(w); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return nil
}
