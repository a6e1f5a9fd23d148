package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbol/backend/internal/dashboard"
	"github.com/benbol/backend/internal/model"
)

func loadedExport(t *testing.T, store *stubTriageStore) *ExportHandler {
	t.Helper()
	c := dashboard.NewController(store)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewExportHandler(c)
}

func TestExportHandler_CSV(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {
			contactRecord("c1", false, false),
			contactRecord("c2", false, true), // archived, hidden by default
		},
	}}
	h := loadedExport(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/contact/export?format=csv", nil)
	req.SetPathValue("kind", "contact")
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type=%q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "contact_submissions_") || !strings.Contains(cd, ".csv") {
		t.Errorf("Content-Disposition=%q", cd)
	}

	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	// Header + the one non-archived record.
	if len(rows) != 2 {
		t.Errorf("expected 2 CSV lines, got %d", len(rows))
	}
}

func TestExportHandler_PDF(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {contactRecord("c1", false, false)},
	}}
	h := loadedExport(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/contact/export?format=pdf", nil)
	req.SetPathValue("kind", "contact")
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type=%q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body is not a PDF document")
	}
}

func TestExportHandler_DefaultFormatIsCSV(t *testing.T) {
	h := loadedExport(t, &stubTriageStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/contact/export", nil)
	req.SetPathValue("kind", "contact")
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type=%q", ct)
	}
}

func TestExportHandler_UnknownFormat(t *testing.T) {
	h := loadedExport(t, &stubTriageStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/contact/export?format=xlsx", nil)
	req.SetPathValue("kind", "contact")
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
