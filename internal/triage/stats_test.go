package triage

import (
	"testing"

	"github.com/benbol/backend/internal/model"
)

func contactsWith(fields ...model.TriageFields) []model.TriageRecord {
	records := make([]model.TriageRecord, 0, len(fields))
	for i, f := range fields {
		records = append(records, &model.ContactSubmission{
			ID:           string(rune('a' + i)),
			TriageFields: f,
		})
	}
	return records
}

func TestSnapshot_ContactScenario(t *testing.T) {
	// 10 contacts: 3 archived, 2 completed, 1 cancelled, none overlapping.
	// Active total = 10 - 3 - 2 - 1 = 4.
	records := contactsWith(
		model.TriageFields{IsArchived: true, Status: model.StatusNew},
		model.TriageFields{IsArchived: true, Status: model.StatusPending},
		model.TriageFields{IsArchived: true, Status: model.StatusInProgress},
		model.TriageFields{Status: model.StatusCompleted},
		model.TriageFields{Status: model.StatusCompleted},
		model.TriageFields{Status: model.StatusCancelled},
		model.TriageFields{Status: model.StatusNew},
		model.TriageFields{IsRead: true, Status: model.StatusNew},
		model.TriageFields{Status: model.StatusInProgress},
		model.TriageFields{IsRead: true, Status: model.StatusPending},
	)

	s := Snapshot(model.KindContact, records)

	if s.AllTotal != 10 {
		t.Errorf("AllTotal=%d, want 10", s.AllTotal)
	}
	if s.Total != 4 {
		t.Errorf("Total=%d, want 4", s.Total)
	}
	if s.Archived != 3 {
		t.Errorf("Archived=%d, want 3", s.Archived)
	}
	if s.Completed != 2 {
		t.Errorf("Completed=%d, want 2", s.Completed)
	}
	if s.Cancelled != 1 {
		t.Errorf("Cancelled=%d, want 1", s.Cancelled)
	}
	if s.Unread != 2 || s.Viewed != 2 {
		t.Errorf("Unread=%d Viewed=%d, want 2 and 2", s.Unread, s.Viewed)
	}
}

func TestSnapshot_UnreadPlusViewedEqualsTotal(t *testing.T) {
	// Every active non-archived record has a determinate read flag, so
	// unread + viewed must always equal the active total.
	records := contactsWith(
		model.TriageFields{},
		model.TriageFields{IsRead: true},
		model.TriageFields{IsArchived: true},
		model.TriageFields{Status: model.StatusCancelled},
		model.TriageFields{IsRead: true, Status: model.StatusInProgress},
	)
	s := Snapshot(model.KindContact, records)
	if s.Unread+s.Viewed != s.Total {
		t.Errorf("unread(%d)+viewed(%d) != total(%d)", s.Unread, s.Viewed, s.Total)
	}
}

func TestSnapshot_StatuslessKindIgnoresStatusCounts(t *testing.T) {
	records := []model.TriageRecord{
		&model.NewsletterSubscriber{ID: "1", Email: "a@b.com"},
		&model.NewsletterSubscriber{ID: "2", Email: "c@d.com", TriageFields: model.TriageFields{IsRead: true}},
		&model.NewsletterSubscriber{ID: "3", Email: "e@f.com", TriageFields: model.TriageFields{IsArchived: true}},
	}
	s := Snapshot(model.KindSubscriber, records)

	if s.Total != 2 || s.AllTotal != 3 {
		t.Errorf("Total=%d AllTotal=%d, want 2 and 3", s.Total, s.AllTotal)
	}
	if s.Completed != 0 || s.Cancelled != 0 {
		t.Errorf("status counts must stay 0 for subscribers, got completed=%d cancelled=%d", s.Completed, s.Cancelled)
	}
	if s.Unread != 1 || s.Viewed != 1 {
		t.Errorf("Unread=%d Viewed=%d, want 1 and 1", s.Unread, s.Viewed)
	}
}

func TestSnapshot_ArchivedTerminalRecordCountedOnce(t *testing.T) {
	// A record that is both archived and completed contributes to both
	// the archived and completed counters but never to the active total.
	records := contactsWith(model.TriageFields{IsArchived: true, Status: model.StatusCompleted})
	s := Snapshot(model.KindContact, records)

	if s.Total != 0 {
		t.Errorf("Total=%d, want 0", s.Total)
	}
	if s.Archived != 1 || s.Completed != 1 {
		t.Errorf("Archived=%d Completed=%d, want 1 and 1", s.Archived, s.Completed)
	}
}

func TestSnapshot_Empty(t *testing.T) {
	s := Snapshot(model.KindAppointment, nil)
	if s != (model.StatsSnapshot{}) {
		t.Errorf("empty collection snapshot not zero: %+v", s)
	}
}

func TestPercent_ZeroTotalIsZero(t *testing.T) {
	if got := Percent(5, 0); got != 0 {
		t.Errorf("Percent(5, 0)=%d, want 0", got)
	}
	if got := Percent(1, 4); got != 25 {
		t.Errorf("Percent(1, 4)=%d, want 25", got)
	}
	if got := Percent(4, 4); got != 100 {
		t.Errorf("Percent(4, 4)=%d, want 100", got)
	}
}
