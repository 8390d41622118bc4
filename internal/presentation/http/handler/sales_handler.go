package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/kasirpos/internal/application/service"
	"github.com/sangkips/kasirpos/internal/presentation/http/dto/response"
)

// SalesHandler handles sales history HTTP requests
type SalesHandler struct {
	salesService *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesService *service.SalesService) *SalesHandler {
	return &SalesHandler{salesService: salesService}
}

// List returns the sales history, most recent first
// @Summary List sales
// @Tags sales
// @Produce json
// @Param today query bool false "Only today's sales"
// @Param grouped query bool false "Group by date"
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if c.Query("grouped") == "true" {
		groups, err := h.salesService.GroupByDate(ctx)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Sales retrieved", gin.H{"groups": groups})
		return
	}

	var err error
	var txs interface{}
	if c.Query("today") == "true" {
		txs, err = h.salesService.Today(ctx)
	} else {
		txs, err = h.salesService.List(ctx)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales retrieved", gin.H{"transactions": txs})
}

// Get returns a single recorded sale
// @Summary Get sale
// @Tags sales
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id} [get]
func (h *SalesHandler) Get(c *gin.Context) {
	tx, err := h.salesService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Transaction retrieved", gin.H{"transaction": tx})
}

// Summary totals the whole ledger
// @Summary Sales summary
// @Tags sales
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /sales/summary [get]
func (h *SalesHandler) Summary(c *gin.Context) {
	summary, err := h.salesService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Summary retrieved", summary)
}

// Export downloads the sales history as an XLSX workbook
// @Summary Export sales
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /sales/export [get]
func (h *SalesHandler) Export(c *gin.Context) {
	data, err := h.salesService.ExportXLSX(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("riwayat-penjualan-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// Receipt returns the printable ESC/POS rendering of a sale
// @Summary Sale receipt
// @Tags sales
// @Produce application/octet-stream
// @Param id path string true "Transaction ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id}/receipt [get]
func (h *SalesHandler) Receipt(c *gin.Context) {
	data, err := h.salesService.Receipt(c.Request.Context(), c.Param("id"), GetUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "application/octet-stream", data)
}

// Print sends a sale's receipt to the configured printer
// @Summary Print receipt
// @Tags sales
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /sales/{id}/print [post]
func (h *SalesHandler) Print(c *gin.Context) {
	if err := h.salesService.PrintReceipt(c.Request.Context(), c.Param("id"), GetUsername(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
