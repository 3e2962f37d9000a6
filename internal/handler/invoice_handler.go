package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-builder-service/internal/model"
	"github.com/ridwanfathin/invoice-builder-service/internal/service"
)

// InvoiceHandler serves the signed-in user's saved invoices
type InvoiceHandler struct {
	invoices service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoices service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// RegisterRoutes registers the handler's routes behind the auth middleware
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	invoices := router.Group("/v1/invoices", authMiddleware)
	{
		invoices.GET("", h.ListInvoices)
		invoices.GET("/:invoiceId", h.GetInvoice)
	}
}

// ListInvoices lists saved invoices, newest first
// @Summary List saved invoices
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.InvoiceListResponse "Saved invoices"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 502 {object} model.ErrorResponse "Store failure"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.invoices.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err, MsgListFailed)
		return
	}
	respondOK(c, model.NewInvoiceListResponse(list))
}

// GetInvoice returns one saved invoice
// @Summary Get a saved invoice
// @Tags invoices
// @Produce json
// @Security BearerAuth
// @Param invoiceId path string true "Invoice ID"
// @Success 200 {object} domain.SavedInvoice "Saved invoice"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Router /v1/invoices/{invoiceId} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID, err := getPathParam(c, "invoiceId")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	saved, err := h.invoices.Get(c.Request.Context(), invoiceID, currentUserID(c))
	if err != nil {
		respondServiceError(c, err, MsgLoadFailed)
		return
	}
	respondOK(c, saved)
}
