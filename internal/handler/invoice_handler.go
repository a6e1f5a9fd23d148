package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/benbol/backend/internal/invoice"
	"github.com/benbol/backend/internal/storage"
)

// InvoiceHandler renders invoice PDFs for the dashboard's invoice form.
// When an archive is configured, every rendered invoice is also stored
// under invoices/<year>/<number>.pdf.
type InvoiceHandler struct {
	archive storage.Storage // nil disables archiving
}

// NewInvoiceHandler creates an InvoiceHandler. archive may be nil.
func NewInvoiceHandler(archive storage.Storage) *InvoiceHandler {
	return &InvoiceHandler{archive: archive}
}

// Render handles POST /api/admin/invoices/pdf. The body is the invoice
// itself; line amounts and totals are computed server-side, never taken
// from the client.
func (h *InvoiceHandler) Render(w http.ResponseWriter, r *http.Request) {
	var inv invoice.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if inv.ClientName == "" {
		writeError(w, http.StatusBadRequest, "client_name_required")
		return
	}
	if len(inv.Items) == 0 {
		writeError(w, http.StatusBadRequest, "items_required")
		return
	}
	for _, it := range inv.Items {
		if it.Quantity <= 0 || it.Rate < 0 {
			writeError(w, http.StatusBadRequest, "item_invalid")
			return
		}
	}
	if inv.Number == "" {
		inv.Number = fmt.Sprintf("INV-%d", time.Now().Unix())
	}
	if inv.Date == "" {
		inv.Date = time.Now().Format("2006-01-02")
	}

	var buf bytes.Buffer
	if err := inv.RenderPDF(&buf); err != nil {
		slog.Error("invoice render failed", "invoice", inv.Number, "error", err)
		writeError(w, http.StatusInternalServerError, "render_failed")
		return
	}

	if h.archive != nil {
		key := fmt.Sprintf("invoices/%s/%s.pdf", time.Now().Format("2006"), inv.Number)
		if _, err := h.archive.Save(r.Context(), key, bytes.NewReader(buf.Bytes())); err != nil {
			// The operator still gets their download; the copy is best-effort.
			slog.Warn("invoice archive failed", "key", key, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", inv.Number+".pdf"))
	_, _ = w.Write(buf.Bytes())
}

// totalsResponse mirrors the invoice form's live summary block.
type totalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Totals handles POST /api/admin/invoices/totals, the preview endpoint
// the form calls while the operator edits line items.
func (h *InvoiceHandler) Totals(w http.ResponseWriter, r *http.Request) {
	var inv invoice.Invoice
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	writeJSON(w, http.StatusOK, totalsResponse{
		Subtotal: inv.Subtotal(),
		Tax:      inv.Tax(),
		Total:    inv.Total(),
	})
}
