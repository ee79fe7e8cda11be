package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hotelops/metrics"
	"hotelops/models"
	"hotelops/services"
	"hotelops/utils"
)

type CreateInvoiceRequest struct {
	BookingID string           `json:"bookingId"`
	TaxRate   *decimal.Decimal `json:"taxRate"`
}

type InvoiceController struct {
	InvoiceSvc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceSvc: svc}
}

// GET /api/invoices
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	invoices, err := ic.InvoiceSvc.List(c.Request.Context(), p.HotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// POST /api/invoices
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if strings.TrimSpace(req.BookingID) == "" {
		utils.JSONError(c, http.StatusBadRequest, "bookingId is required")
		return
	}

	invoice, err := ic.InvoiceSvc.Create(c.Request.Context(), p.HotelID, strings.TrimSpace(req.BookingID), req.TaxRate)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.InvoicesIssued.Inc()
	c.JSON(http.StatusCreated, invoice)
}

// PUT /api/invoices/:id
func (ic *InvoiceController) UpdateInvoiceStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	status, valid := models.ParseInvoiceStatus(req.Status)
	if !valid {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("unknown invoice status %q", req.Status))
		return
	}

	invoice, err := ic.InvoiceSvc.UpdateStatus(c.Request.Context(), p.HotelID, c.Param("id"), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
