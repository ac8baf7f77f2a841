package handlers

import (
	"fmt"
	"net/http"

	"prayer-roster-backend/internal/export"
	"prayer-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves roster downloads
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportPDF handles GET /slots/export-pdf
// @Summary Export the roster as PDF
// @Tags exports
// @Produce application/pdf
// @Param month query int false "Month (1-12), used only together with year"
// @Param year query int false "Year"
// @Success 200 {file} file "PDF document"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "No slots in the period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/export-pdf [get]
func (h *ExportHandler) ExportPDF(c *gin.Context) { h.serve(c, export.FormatPDF) }

// ExportExcel handles GET /slots/export-excel
// @Summary Export the roster as an XLSX workbook
// @Tags exports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query int false "Month (1-12), used only together with year"
// @Param year query int false "Year"
// @Success 200 {file} file "Spreadsheet"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "No slots in the period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/export-excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) { h.serve(c, export.FormatXLSX) }

// ExportCSV handles GET /slots/export-csv
// @Summary Export the roster as CSV
// @Tags exports
// @Produce text/csv
// @Param month query int false "Month (1-12), used only together with year"
// @Param year query int false "Year"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "No slots in the period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/export-csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) { h.serve(c, export.FormatCSV) }

// ExportText handles GET /slots/export-text
// @Summary Export the roster as plain text
// @Tags exports
// @Produce text/plain
// @Param month query int false "Month (1-12), used only together with year"
// @Param year query int false "Year"
// @Success 200 {file} file "Text file"
// @Failure 400 {object} ErrorResponse "Invalid period"
// @Failure 404 {object} ErrorResponse "No slots in the period"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /slots/export-text [get]
func (h *ExportHandler) ExportText(c *gin.Context) { h.serve(c, export.FormatText) }

func (h *ExportHandler) serve(c *gin.Context, format export.Format) {
	var filter service.PeriodFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		bindError(c, err)
		return
	}

	file, err := h.exportService.Export(format, filter)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
