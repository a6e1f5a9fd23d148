// Package export flattens dashboard records into tabular form and writes
// them out as CSV or PDF downloads.
package export

import (
	"fmt"
	"time"

	"github.com/benbol/backend/internal/model"
)

// Table is a flattened, ready-to-render view of one record collection.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

const dateLayout = "2006-01-02 15:04"

// Filename returns the download name for an export: <entity>_<date>.<ext>.
func Filename(kind model.Kind, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", kind.Table(), now.Format("2006-01-02"), ext)
}

// titles maps each kind to its human-readable export heading.
var titles = map[model.Kind]string{
	model.KindContact:     "Contact Submissions",
	model.KindSubscriber:  "Newsletter Subscribers",
	model.KindChatMessage: "Chat Messages",
	model.KindAppointment: "Appointments",
	model.KindRefill:      "Refill Requests",
}

// Flatten converts a record collection into a Table. Records whose
// concrete type does not match the kind are reported, not skipped.
func Flatten(kind model.Kind, records []model.TriageRecord) (Table, error) {
	t := Table{Title: titles[kind]}

	switch kind {
	case model.KindContact:
		t.Headers = []string{"Date", "Name", "Email", "Phone", "Subject", "Message", "Read", "Archived", "Status"}
	case model.KindSubscriber:
		t.Headers = []string{"Date", "Email", "Name", "Read", "Archived"}
	case model.KindChatMessage:
		t.Headers = []string{"Date", "Session", "Sender", "Message", "Name", "Email", "Read", "Archived"}
	case model.KindAppointment:
		t.Headers = []string{"Date", "Name", "Email", "Phone", "Service", "Preferred Date", "Preferred Time", "Notes", "Read", "Archived", "Status"}
	case model.KindRefill:
		t.Headers = []string{"Date", "Name", "Email", "Phone", "Prescription #", "Medication", "Fulfilment", "Notes", "Read", "Archived", "Status"}
	default:
		return Table{}, fmt.Errorf("export: unknown kind %q", kind)
	}

	for _, rec := range records {
		row, err := flattenRecord(kind, rec)
		if err != nil {
			return Table{}, err
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// flattenRecord renders one record as a row of the kind's column set.
// The concrete type must agree with kind; a stray record of another kind
// would otherwise produce a row that doesn't line up with the headers.
func flattenRecord(kind model.Kind, rec model.TriageRecord) ([]string, error) {
	switch r := rec.(type) {
	case *model.ContactSubmission:
		if kind != model.KindContact {
			break
		}
		return []string{
			r.CreatedAt.Format(dateLayout), r.FullName, r.Email, r.Phone,
			r.Subject, r.Message, yesNo(r.IsRead), yesNo(r.IsArchived), string(r.Status),
		}, nil
	case *model.NewsletterSubscriber:
		if kind != model.KindSubscriber {
			break
		}
		return []string{
			r.CreatedAt.Format(dateLayout), r.Email, r.FullName,
			yesNo(r.IsRead), yesNo(r.IsArchived),
		}, nil
	case *model.ChatMessage:
		if kind != model.KindChatMessage {
			break
		}
		return []string{
			r.CreatedAt.Format(dateLayout), r.SessionID, r.Sender, r.Message,
			r.UserName, r.UserEmail, yesNo(r.IsRead), yesNo(r.IsArchived),
		}, nil
	case *model.Appointment:
		if kind != model.KindAppointment {
			break
		}
		return []string{
			r.CreatedAt.Format(dateLayout), r.FullName, r.Email, r.Phone,
			r.Service, r.PreferredDate, r.PreferredTime, r.Notes,
			yesNo(r.IsRead), yesNo(r.IsArchived), string(r.Status),
		}, nil
	case *model.RefillRequest:
		if kind != model.KindRefill {
			break
		}
		return []string{
			r.CreatedAt.Format(dateLayout), r.FullName, r.Email, r.Phone,
			r.PrescriptionNumber, r.Medication, r.Fulfilment, r.Notes,
			yesNo(r.IsRead), yesNo(r.IsArchived), string(r.Status),
		}, nil
	}
	return nil, fmt.Errorf("export: record %T does not belong to kind %q", rec, kind)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
