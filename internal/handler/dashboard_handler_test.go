package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbol/backend/internal/dashboard"
	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/pkg/auth"
)

// ---------------------------------------------------------------------------
// Stub TriageStore backing the dashboard controller
// ---------------------------------------------------------------------------

type stubTriageStore struct {
	records   map[model.Kind][]model.TriageRecord
	updateErr error
	deleteErr error
}

func (s *stubTriageStore) List(ctx context.Context, kind model.Kind) ([]model.TriageRecord, error) {
	return s.records[kind], nil
}

func (s *stubTriageStore) UpdateTriage(ctx context.Context, kind model.Kind, id string, patch model.TriagePatch) error {
	return s.updateErr
}

func (s *stubTriageStore) Delete(ctx context.Context, kind model.Kind, id string) error {
	return s.deleteErr
}

func loadedDashboard(t *testing.T, store *stubTriageStore) *DashboardHandler {
	t.Helper()
	c := dashboard.NewController(store)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewDashboardHandler(c)
}

func withRole(req *http.Request, role model.Role) *http.Request {
	return req.WithContext(auth.WithRole(req.Context(), string(role)))
}

func contactRecord(id string, read, archived bool) model.TriageRecord {
	return &model.ContactSubmission{
		ID: id, FullName: "Ada", Email: "a@b.com", Message: "hi",
		TriageFields: model.TriageFields{IsRead: read, IsArchived: archived, Status: model.StatusNew},
	}
}

// ---------------------------------------------------------------------------
// List and stats
// ---------------------------------------------------------------------------

func TestDashboardHandler_List_AppliesFilters(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {
			contactRecord("c1", false, false),
			contactRecord("c2", true, false),
			contactRecord("c3", false, true),
		},
	}}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/contact?unread_only=true", nil)
	req.SetPathValue("kind", "contact")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Records []json.RawMessage `json:"records"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	// c2 is read, c3 archived; only c1 passes.
	if len(resp.Records) != 1 {
		t.Errorf("expected 1 visible record, got %d", len(resp.Records))
	}
}

func TestDashboardHandler_List_InvalidKind(t *testing.T) {
	h := loadedDashboard(t, &stubTriageStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/invoices", nil)
	req.SetPathValue("kind", "invoices")
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestDashboardHandler_Stats_CountsForKind(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {
			contactRecord("c1", false, false),
			contactRecord("c2", true, false),
			contactRecord("c3", false, true),
		},
	}}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/records/contact/stats", nil)
	req.SetPathValue("kind", "contact")
	rec := httptest.NewRecorder()
	h.Stats(rec, req)

	var snap model.StatsSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatal(err)
	}
	if snap.AllTotal != 3 || snap.Total != 2 || snap.Unread != 1 || snap.Archived != 1 {
		t.Errorf("snapshot=%+v", snap)
	}
}

func TestDashboardHandler_StatsAll_HasEveryKind(t *testing.T) {
	h := loadedDashboard(t, &stubTriageStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	h.StatsAll(rec, req)

	var resp map[string]model.StatsSnapshot
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != len(model.Kinds) {
		t.Errorf("expected %d kinds, got %d", len(model.Kinds), len(resp))
	}
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

func TestDashboardHandler_ToggleRead_Manager(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {contactRecord("c1", false, false)},
	}}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/records/contact/c1/read", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.ToggleRead(rec, withRole(req, model.RoleManager))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var fields model.TriageFields
	_ = json.NewDecoder(rec.Body).Decode(&fields)
	if !fields.IsRead {
		t.Error("expected is_read=true after toggle")
	}
}

func TestDashboardHandler_Mutation_ViewerForbidden(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {contactRecord("c1", false, false)},
	}}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/records/contact/c1/read", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.ToggleRead(rec, withRole(req, model.RoleViewer))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !strings.Contains(resp["message"], "manager") {
		t.Errorf("denial should name the required role: %q", resp["message"])
	}
}

// A request with no role in context at all acts as viewer.
func TestDashboardHandler_Mutation_NoRoleDefaultsToViewer(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {contactRecord("c1", false, false)},
	}}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/records/contact/c1/read", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.ToggleRead(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestDashboardHandler_SetStatus_StatuslessKind(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindSubscriber: {&model.NewsletterSubscriber{ID: "s1", Email: "a@b.com"}},
	}}
	h := loadedDashboard(t, store)

	body := `{"status":"completed"}`
	req := httptest.NewRequest(http.MethodPut, "/api/admin/records/subscriber/s1/status", strings.NewReader(body))
	req.SetPathValue("kind", "subscriber")
	req.SetPathValue("id", "s1")
	rec := httptest.NewRecorder()
	h.SetStatus(rec, withRole(req, model.RoleManager))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for statusless kind, got %d", rec.Code)
	}
}

func TestDashboardHandler_Mutation_UnknownRecord(t *testing.T) {
	h := loadedDashboard(t, &stubTriageStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/records/contact/ghost/archive", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()
	h.ToggleArchive(rec, withRole(req, model.RoleManager))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDashboardHandler_Mutation_StoreFailure(t *testing.T) {
	store := &stubTriageStore{
		records: map[model.Kind][]model.TriageRecord{
			model.KindContact: {contactRecord("c1", false, false)},
		},
		updateErr: errors.New("db write failed"),
	}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/records/contact/c1/read", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.ToggleRead(rec, withRole(req, model.RoleManager))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on persistence failure, got %d", rec.Code)
	}
}

func TestDashboardHandler_Delete_AdminOnly(t *testing.T) {
	store := &stubTriageStore{records: map[model.Kind][]model.TriageRecord{
		model.KindContact: {contactRecord("c1", false, false)},
	}}
	h := loadedDashboard(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/records/contact/c1", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	h.Delete(rec, withRole(req, model.RoleManager))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("manager delete: expected 403, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/records/contact/c1", nil)
	req.SetPathValue("kind", "contact")
	req.SetPathValue("id", "c1")
	rec = httptest.NewRecorder()
	h.Delete(rec, withRole(req, model.RoleAdmin))

	if rec.Code != http.StatusOK {
		t.Errorf("admin delete: expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
}
