// Package triage implements the pure record-triage rules used by the admin
// dashboard: which records are visible under the operator's filter toggles,
// how the read/archived flags flip, and which workflow statuses a record
// kind accepts. Everything here operates on in-memory values only; no
// function in this package touches the store.
package triage

import (
	"errors"
	"fmt"

	"github.com/benbol/backend/internal/model"
)

// ErrNoStatus rejects status mutations on kinds without a status field.
var ErrNoStatus = errors.New("record kind has no workflow status")

// ErrInvalidStatus rejects status values outside the fixed enum.
var ErrInvalidStatus = errors.New("invalid status")

// Filters are the operator-chosen list toggles. They compose
// independently: the archived view can itself be narrowed to unread
// records.
type Filters struct {
	UnreadOnly   bool
	ShowArchived bool
}

// Visible reports whether a record with triage state t appears in the
// list view under the given filters. With ShowArchived off, only
// non-archived records show; with it on, only archived ones do. The
// UnreadOnly toggle then narrows either view to records not yet read.
func Visible(t model.TriageFields, f Filters) bool {
	if t.IsArchived != f.ShowArchived {
		return false
	}
	if f.UnreadOnly && t.IsRead {
		return false
	}
	return true
}

// Active reports whether a record counts toward the working set: not in a
// terminal status. Kinds without a status field treat every record as
// active, as does an unset status.
func Active(kind model.Kind, t model.TriageFields) bool {
	if !kind.HasStatus() || t.Status == "" {
		return true
	}
	return !t.Status.Terminal()
}

// ToggleRead returns t with the read flag flipped. It always succeeds;
// authorization is the caller's concern.
func ToggleRead(t model.TriageFields) model.TriageFields {
	t.IsRead = !t.IsRead
	return t
}

// ToggleArchive returns t with the archived flag flipped.
func ToggleArchive(t model.TriageFields) model.TriageFields {
	t.IsArchived = !t.IsArchived
	return t
}

// SetStatus returns t with the workflow status replaced. It rejects
// status mutations on kinds that have no status field, and values outside
// the fixed enum.
func SetStatus(kind model.Kind, t model.TriageFields, s model.Status) (model.TriageFields, error) {
	if !kind.HasStatus() {
		return t, fmt.Errorf("%s: %w", kind, ErrNoStatus)
	}
	if !model.ValidStatus(s) {
		return t, fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	t.Status = s
	return t, nil
}
