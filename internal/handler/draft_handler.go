package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-builder-service/internal/binding"
	"github.com/ridwanfathin/invoice-builder-service/internal/metrics"
	"github.com/ridwanfathin/invoice-builder-service/internal/model"
	"github.com/ridwanfathin/invoice-builder-service/internal/output"
	"github.com/ridwanfathin/invoice-builder-service/internal/render"
	"github.com/ridwanfathin/invoice-builder-service/internal/service"
)

// DraftHandler exposes the invoice editor: one draft per editing session
type DraftHandler struct {
	drafts   service.DraftService
	renderer render.Renderer
	launcher *output.Launcher
	printer  *output.Printer
	metrics  *metrics.Metrics
}

// DraftHandlerConfig holds the collaborators of the draft handler
type DraftHandlerConfig struct {
	Drafts   service.DraftService
	Renderer render.Renderer
	Launcher *output.Launcher
	Printer  *output.Printer
	Metrics  *metrics.Metrics
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(cfg DraftHandlerConfig) *DraftHandler {
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = render.NewRenderer()
	}
	launcher := cfg.Launcher
	if launcher == nil {
		launcher = output.NewLauncher(renderer, output.DefaultSettleDelay)
	}
	printer := cfg.Printer
	if printer == nil {
		printer = output.NewPrinter(renderer, output.NewPDFViewer(), output.DefaultSettleDelay)
	}
	return &DraftHandler{
		drafts:   cfg.Drafts,
		renderer: renderer,
		launcher: launcher,
		printer:  printer,
		metrics:  cfg.Metrics,
	}
}

// RegisterRoutes registers draft routes behind the auth middleware
func (h *DraftHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	drafts := router.Group("/v1/drafts", authMiddleware)
	{
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:draftId", h.GetDraft)
		drafts.DELETE("/:draftId", h.DiscardDraft)
		drafts.PATCH("/:draftId/fields", h.SetField)
		drafts.POST("/:draftId/items", h.AddItem)
		drafts.PATCH("/:draftId/items/:index", h.UpdateItem)
		drafts.DELETE("/:draftId/items/:index", h.RemoveItem)
		drafts.GET("/:draftId/summary", h.GetSummary)
		drafts.GET("/:draftId/document", h.DownloadDocument)
		drafts.GET("/:draftId/print", h.PrintDocument)
		drafts.GET("/:draftId/pdf", h.ExportPDF)
		drafts.POST("/:draftId/save", h.SaveInvoice)
		drafts.POST("/:draftId/load/:invoiceId", h.LoadInvoice)
	}
}

// CreateDraft starts an editing session with a default invoice
// @Summary Create a draft
// @Description Start an editing session holding a new invoice with defaults
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Success 201 {object} model.DraftResponse "Draft created"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Router /v1/drafts [post]
func (h *DraftHandler) CreateDraft(c *gin.Context) {
	d, form, err := h.drafts.Create(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondCreated(c, model.DraftResponse{ID: d.ID, Form: form, CreatedAt: d.CreatedAt})
}

// GetDraft returns every control value of a draft
// @Summary Get a draft
// @Description Read the draft's model back into control values, rows and summary
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 200 {object} model.DraftResponse "Draft form"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId} [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	form, err := h.drafts.Form(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondOK(c, model.DraftResponse{ID: draftID, Form: form})
}

// DiscardDraft ends an editing session
// @Summary Discard a draft
// @Tags drafts
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 204 "Discarded"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId} [delete]
func (h *DraftHandler) DiscardDraft(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	if err := h.drafts.Discard(c.Request.Context(), draftID, currentUserID(c)); err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondNoContent(c)
}

// SetField applies one scalar control change
// @Summary Set a field
// @Description Apply a control change addressed by dotted path. Unknown paths are ignored.
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Param request body model.SetFieldRequest true "Path and raw value"
// @Success 200 {object} binding.Refresh "What to redraw"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/fields [patch]
func (h *DraftHandler) SetField(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	var req model.SetFieldRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("path", err.Error()))
		return
	}

	r, err := h.drafts.SetField(c.Request.Context(), draftID, currentUserID(c), binding.FieldEvent{Path: req.Path, Value: req.Value})
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondOK(c, r)
}

// AddItem appends a blank line item
// @Summary Add a line item
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 200 {object} binding.Refresh "What to redraw"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	r, err := h.drafts.AddItem(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondOK(c, r)
}

// UpdateItem changes one cell of a line item
// @Summary Update a line item
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Param index path int true "Row index"
// @Param request body model.UpdateItemRequest true "Column and raw value"
// @Success 200 {object} binding.Refresh "What to redraw"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/items/{index} [patch]
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	index, err := getPathIndex(c, "index")
	if err != nil {
		respondBadRequest(c, MsgInvalidItemIndex)
		return
	}
	var req model.UpdateItemRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("field", err.Error()))
		return
	}

	r, err := h.drafts.UpdateItem(c.Request.Context(), draftID, currentUserID(c), binding.ItemEvent{
		Row:    index,
		Column: req.Field,
		Value:  req.Value,
	})
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondOK(c, r)
}

// RemoveItem deletes a line item. Removing the last one leaves a blank row.
// @Summary Remove a line item
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Param index path int true "Row index"
// @Success 200 {object} binding.Refresh "What to redraw"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/items/{index} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	index, err := getPathIndex(c, "index")
	if err != nil {
		respondBadRequest(c, MsgInvalidItemIndex)
		return
	}
	r, err := h.drafts.RemoveItem(c.Request.Context(), draftID, currentUserID(c), index)
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondOK(c, r)
}

// GetSummary returns the formatted summary panel
// @Summary Get the summary
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 200 {object} model.SummaryResponse "Subtotal, VAT and total"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/summary [get]
func (h *DraftHandler) GetSummary(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	d, err := h.drafts.Summary(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}
	respondOK(c, model.NewSummaryResponse(d))
}

// DownloadDocument offers the rendered invoice as an HTML file
// @Summary Download the invoice
// @Tags drafts
// @Produce html
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 200 {string} string "invoice-<number>.html"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/document [get]
func (h *DraftHandler) DownloadDocument(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	inv, err := h.drafts.Invoice(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}

	att := output.Download(h.renderer, inv)
	h.metrics.DocumentRendered(metrics.ModeDownload)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, att.Filename))
	c.Data(StatusOK, att.ContentType, att.Body)
}

// PrintDocument returns a page that loads the invoice and opens the print dialog
// @Summary Print the invoice
// @Tags drafts
// @Produce html
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 200 {string} string "Print launcher page"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/print [get]
func (h *DraftHandler) PrintDocument(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	inv, err := h.drafts.Invoice(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}

	page, err := h.launcher.Page(inv)
	if err != nil {
		logError(c, "print_launcher_failed", err, nil)
		respondInternalServerError(c, MsgRenderFailed)
		return
	}
	h.metrics.DocumentRendered(metrics.ModePrint)
	c.Data(StatusOK, render.ContentType, []byte(page))
}

// ExportPDF lays the invoice out as a PDF file
// @Summary Export the invoice as PDF
// @Tags drafts
// @Produce application/pdf
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 200 {file} file "invoice-<number>.pdf"
// @Failure 404 {object} model.ErrorResponse "Draft not found"
// @Router /v1/drafts/{draftId}/pdf [get]
func (h *DraftHandler) ExportPDF(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	inv, err := h.drafts.Invoice(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, ErrInternalServer)
		return
	}

	var buf bytes.Buffer
	if err := h.printer.Print(c.Request.Context(), inv, &buf); err != nil {
		if clientGone(err) {
			c.Abort()
			return
		}
		logError(c, "export_pdf_failed", err, nil)
		respondInternalServerError(c, MsgRenderFailed)
		return
	}
	h.metrics.DocumentRendered(metrics.ModePDFExport)

	filename := strings.TrimSuffix(render.Filename(inv), ".html") + ".pdf"
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(StatusOK, output.PDFContentType, buf.Bytes())
}

// SaveInvoice persists a snapshot of the draft for the signed-in user
// @Summary Save the invoice
// @Description Store the current invoice. The draft remains editable.
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Success 201 {object} model.SaveInvoiceResponse "Saved"
// @Failure 400 {object} model.ErrorResponse "Missing invoice number"
// @Failure 401 {object} model.ErrorResponse "Not signed in"
// @Failure 502 {object} model.ErrorResponse "Store failure"
// @Router /v1/drafts/{draftId}/save [post]
func (h *DraftHandler) SaveInvoice(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	t, err := h.drafts.Save(c.Request.Context(), draftID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, MsgSaveFailed)
		return
	}

	saved, err := t.Await(c.Request.Context())
	if err != nil {
		if clientGone(err) {
			c.Abort()
			return
		}
		respondServiceError(c, err, MsgSaveFailed)
		return
	}
	respondCreated(c, model.SaveInvoiceResponse{
		ID:        saved.ID,
		Message:   MsgSaved,
		CreatedAt: saved.CreatedAt,
	})
}

// LoadInvoice replaces the draft's invoice with a saved one
// @Summary Load a saved invoice into the draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param draftId path string true "Draft ID"
// @Param invoiceId path string true "Saved invoice ID"
// @Success 200 {object} model.DraftResponse "Draft form"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 502 {object} model.ErrorResponse "Store failure"
// @Router /v1/drafts/{draftId}/load/{invoiceId} [post]
func (h *DraftHandler) LoadInvoice(c *gin.Context) {
	draftID, ok := h.draftID(c)
	if !ok {
		return
	}
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	form, err := h.drafts.Load(c.Request.Context(), draftID, currentUserID(c), invoiceID)
	if err != nil {
		respondServiceError(c, err, MsgLoadFailed)
		return
	}
	respondOK(c, model.DraftResponse{ID: draftID, Form: form})
}

func (h *DraftHandler) draftID(c *gin.Context) (string, bool) {
	id, err := getPathParam(c, "draftId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return "", false
	}
	return id, true
}

// clientGone reports whether err only means the caller stopped waiting
func clientGone(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
