package model

// Kind identifies one of the five record categories that flow into the
// admin dashboard.
type Kind string

const (
	KindContact     Kind = "contact"
	KindSubscriber  Kind = "subscriber"
	KindChatMessage Kind = "chat_message"
	KindAppointment Kind = "appointment"
	KindRefill      Kind = "refill"
)

// Kinds lists every record kind in dashboard tab order.
var Kinds = []Kind{KindContact, KindSubscriber, KindChatMessage, KindAppointment, KindRefill}

// ParseKind validates a kind string from a URL path segment.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindContact, KindSubscriber, KindChatMessage, KindAppointment, KindRefill:
		return Kind(s), true
	}
	return "", false
}

// HasStatus reports whether records of this kind carry a workflow status.
// Newsletter subscribers and chat messages are status-less.
func (k Kind) HasStatus() bool {
	switch k {
	case KindContact, KindAppointment, KindRefill:
		return true
	}
	return false
}

// DefaultStatus returns the status assigned to new records of this kind,
// or empty for status-less kinds.
func (k Kind) DefaultStatus() Status {
	switch k {
	case KindContact:
		return StatusNew
	case KindAppointment, KindRefill:
		return StatusPending
	}
	return ""
}

// Table returns the database table for this kind.
func (k Kind) Table() string {
	switch k {
	case KindContact:
		return "contact_submissions"
	case KindSubscriber:
		return "newsletter_subscribers"
	case KindChatMessage:
		return "chat_messages"
	case KindAppointment:
		return "appointments"
	case KindRefill:
		return "refill_requests"
	}
	return ""
}
