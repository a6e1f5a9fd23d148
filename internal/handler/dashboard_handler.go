package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benbol/backend/internal/dashboard"
	"github.com/benbol/backend/internal/model"
	"github.com/benbol/backend/internal/permission"
	"github.com/benbol/backend/internal/repository"
	"github.com/benbol/backend/internal/triage"
	"github.com/benbol/backend/pkg/auth"
)

// DashboardHandler exposes the admin dashboard's record views, stats and
// triage mutations. Every route sits behind RequireAuth; role enforcement
// happens inside the dashboard controller.
type DashboardHandler struct {
	controller *dashboard.Controller
}

// NewDashboardHandler creates a DashboardHandler over the given controller.
func NewDashboardHandler(controller *dashboard.Controller) *DashboardHandler {
	return &DashboardHandler{controller: controller}
}

// pathKind resolves the {kind} path segment. Writes the error response
// itself when the segment names no known kind.
func pathKind(w http.ResponseWriter, r *http.Request) (model.Kind, bool) {
	kind, ok := model.ParseKind(r.PathValue("kind"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_kind")
		return "", false
	}
	return kind, true
}

// requestRole reads the acting operator's role out of the request context.
func requestRole(r *http.Request) model.Role {
	return model.Role(auth.RoleFromContext(r.Context()))
}

// filtersFromQuery maps the dashboard's two filter toggles onto query
// params: ?unread_only=true and ?show_archived=true.
func filtersFromQuery(r *http.Request) triage.Filters {
	q := r.URL.Query()
	return triage.Filters{
		UnreadOnly:   q.Get("unread_only") == "true",
		ShowArchived: q.Get("show_archived") == "true",
	}
}

// writeMutationError maps controller errors onto the response envelope.
func writeMutationError(w http.ResponseWriter, err error) {
	var denied *permission.DeniedError
	switch {
	case errors.As(err, &denied):
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error":   "forbidden",
			"message": denied.Error(),
		})
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, triage.ErrNoStatus), errors.Is(err, triage.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid_status")
	default:
		writeError(w, http.StatusInternalServerError, "mutation_failed")
	}
}

// List handles GET /api/admin/records/{kind}.
func (h *DashboardHandler) List(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	records := h.controller.Visible(kind, filtersFromQuery(r))
	writeJSON(w, http.StatusOK, map[string]any{"records": records})
}

// Reload handles POST /api/admin/records/{kind}/reload. It refetches the
// collection from storage, discarding any optimistic state.
func (h *DashboardHandler) Reload(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	if err := h.controller.Reload(r.Context(), kind); err != nil {
		writeError(w, http.StatusInternalServerError, "reload_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Stats handles GET /api/admin/records/{kind}/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.controller.Stats(kind))
}

// StatsAll handles GET /api/admin/stats. The response maps each kind to
// its snapshot.
func (h *DashboardHandler) StatsAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.controller.StatsAll())
}

// ToggleRead handles POST /api/admin/records/{kind}/{id}/read.
func (h *DashboardHandler) ToggleRead(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	fields, err := h.controller.ToggleRead(r.Context(), requestRole(r), kind, r.PathValue("id"))
	if err != nil {
		writeMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

// ToggleArchive handles POST /api/admin/records/{kind}/{id}/archive.
func (h *DashboardHandler) ToggleArchive(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	fields, err := h.controller.ToggleArchive(r.Context(), requestRole(r), kind, r.PathValue("id"))
	if err != nil {
		writeMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

// statusRequest is the expected JSON body for PUT .../{id}/status.
type statusRequest struct {
	Status model.Status `json:"status"`
}

// SetStatus handles PUT /api/admin/records/{kind}/{id}/status.
func (h *DashboardHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	fields, err := h.controller.SetStatus(r.Context(), requestRole(r), kind, r.PathValue("id"), req.Status)
	if err != nil {
		writeMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fields)
}

// Delete handles DELETE /api/admin/records/{kind}/{id}.
func (h *DashboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := pathKind(w, r)
	if !ok {
		return
	}
	if err := h.controller.Delete(r.Context(), requestRole(r), kind, r.PathValue("id")); err != nil {
		writeMutationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}
