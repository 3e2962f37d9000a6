// Package output delivers rendered invoices as downloads, print launchers and PDFs.
package output

import (
	"github.com/ridwanfathin/invoice-builder-service/internal/domain"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
)

// Attachment is a file offered to the user for download
type Attachment struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Download packages the rendered document under its invoice filename
func Download(r render.Renderer, inv *domain.Invoice) Attachment {
	return Attachment{
		Filename:    render.Filename(inv),
		ContentType: render.ContentType,
		Body:        []byte(r.Render(inv)),
	}
}
