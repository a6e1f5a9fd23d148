package model

// Status is the workflow state an operator assigns to a record while
// working it. Only contacts, appointments and refill requests carry one.
type Status string

const (
	StatusNew        Status = "new"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is a member of the workflow status enum.
func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status removes a record from the active
// working set (completed or cancelled).
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// TriageFields is the bookkeeping state shared by every record kind.
// The three axes are independent: archiving does not imply read, and a
// terminal status implies neither.
type TriageFields struct {
	IsRead     bool   `json:"is_read"`
	IsArchived bool   `json:"is_archived"`
	Status     Status `json:"status,omitempty"`
}

// TriagePatch carries the fields of a single triage mutation. Nil fields
// are left untouched by the store. Each mutation is one independent
// update-by-id call; there is no multi-record transaction.
type TriagePatch struct {
	IsRead     *bool
	IsArchived *bool
	Status     *Status
}

// TriageRecord is implemented by every record kind the dashboard manages.
type TriageRecord interface {
	RecordID() string
	Triage() *TriageFields
}
