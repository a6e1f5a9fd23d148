package model

import "time"

// Chat message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is a single line of a chat-widget conversation, either a
// visitor message or the bot's reply. Messages of one conversation share
// a session ID.
type ChatMessage struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
	TriageFields
	CreatedAt time.Time `json:"created_at"`
}

func (m *ChatMessage) RecordID() string      { return m.ID }
func (m *ChatMessage) Triage() *TriageFields { return &m.TriageFields }
