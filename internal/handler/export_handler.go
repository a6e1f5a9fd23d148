package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/benbol/backend/internal/dashboard"
	"github.com/benbol/backend/internal/export"
)

// ExportHandler serves CSV and PDF downloads of the dashboard's visible
// record lists.
type ExportHandler struct {
	controller *dashboard.Controller
}

// NewExportHandler creates an ExportHandler over the given controller.
func NewExportHandler(controller *dashboard.Controller) *ExportHandler {
	return &ExportHandler{controller: controller}
}

// Export handles GET /api/admin/records/{kind}/export?format=csv|pdf.
// The download reflects the same filter toggles as the list view.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		writeError(w, http.StatusBadRequest, "invalid_format")
		return
	}

	records := h.controller.Visible(kind, filtersFromQuery(r))
	table, err := export.Flatten(kind, records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export_failed")
		return
	}

	now := time.Now()
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(kind, format, now)))

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		err = export.WriteCSV(w, table)
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		err = export.WritePDF(w, table, now.Format("2006-01-02"))
	}
	if err != nil {
		// Headers are already out; nothing sensible left to send.
		return
	}
}
