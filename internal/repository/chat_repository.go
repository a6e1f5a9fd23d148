package repository

import (
	"context"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository defines persistence for chat widget messages.
type ChatRepository interface {
	Save(ctx context.Context, m *model.ChatMessage) error
	List(ctx context.Context) ([]*model.ChatMessage, error)
	ListBySession(ctx context.Context, sessionID string) ([]*model.ChatMessage, error)
}

// PgChatRepository is the PostgreSQL implementation of ChatRepository.
type PgChatRepository struct {
	pool *pgxpool.Pool
}

// NewPgChatRepository creates a PgChatRepository backed by the given pool.
func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

var _ ChatRepository = (*PgChatRepository)(nil)

// Save inserts a chat_messages row and populates m.ID and CreatedAt.
func (r *PgChatRepository) Save(ctx context.Context, m *model.ChatMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (session_id, sender, message, user_name, user_email)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
		 RETURNING id, created_at`,
		m.SessionID, m.Sender, m.Message, m.UserName, m.UserEmail,
	).Scan(&m.ID, &m.CreatedAt)
}

const chatSelectCols = `id, session_id, sender, message, COALESCE(user_name, ''), COALESCE(user_email, ''), is_read, is_archived, created_at`

func (r *PgChatRepository) scanRows(ctx context.Context, query string, args ...any) ([]*model.ChatMessage, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Sender, &m.Message, &m.UserName, &m.UserEmail,
			&m.IsRead, &m.IsArchived, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// List returns every chat message, newest first.
func (r *PgChatRepository) List(ctx context.Context) ([]*model.ChatMessage, error) {
	return r.scanRows(ctx,
		`SELECT `+chatSelectCols+` FROM chat_messages ORDER BY created_at DESC`)
}

// ListBySession returns one conversation in chronological order.
func (r *PgChatRepository) ListBySession(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
	return r.scanRows(ctx,
		`SELECT `+chatSelectCols+` FROM chat_messages WHERE session_id = $1 ORDER BY created_at ASC`,
		sessionID)
}
