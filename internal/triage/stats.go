package triage

import "github.com/benbol/backend/internal/model"

// Snapshot computes the dashboard count summary for one record kind from
// its full in-memory collection. It is a pure function of the slice: the
// dashboard recomputes it on every mutation rather than maintaining
// incremental counters.
func Snapshot(kind model.Kind, records []model.TriageRecord) model.StatsSnapshot {
	var s model.StatsSnapshot
	for _, rec := range records {
		t := *rec.Triage()
		s.AllTotal++

		if t.IsArchived {
			s.Archived++
		}
		if kind.HasStatus() {
			switch t.Status {
			case model.StatusCompleted:
				s.Completed++
			case model.StatusCancelled:
				s.Cancelled++
			}
		}

		if t.IsArchived || !Active(kind, t) {
			continue
		}
		s.Total++
		if t.IsRead {
			s.Viewed++
		} else {
			s.Unread++
		}
	}
	return s
}

// Percent returns part as a whole percentage of total, with an empty
// collection reading as 0% rather than a division error.
func Percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}
