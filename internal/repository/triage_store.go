package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TriageStore is the kind-keyed record-store surface the dashboard
// consumes: full reload of one collection, a single-record triage patch,
// and permanent deletion. Each call is one independent statement; there
// is no transaction spanning multiple records.
type TriageStore interface {
	List(ctx context.Context, kind model.Kind) ([]model.TriageRecord, error)
	UpdateTriage(ctx context.Context, kind model.Kind, id string, patch model.TriagePatch) error
	Delete(ctx context.Context, kind model.Kind, id string) error
}

// PgTriageStore implements TriageStore. Listing delegates to the per-kind
// repositories (the business columns differ); patches and deletes are
// built against the kind's table directly.
type PgTriageStore struct {
	pool         *pgxpool.Pool
	contacts     ContactRepository
	subscribers  SubscriberRepository
	chatMessages ChatRepository
	appointments AppointmentRepository
	refills      RefillRepository
}

// NewPgTriageStore creates a PgTriageStore over the given pool and repositories.
func NewPgTriageStore(
	pool *pgxpool.Pool,
	contacts ContactRepository,
	subscribers SubscriberRepository,
	chatMessages ChatRepository,
	appointments AppointmentRepository,
	refills RefillRepository,
) *PgTriageStore {
	return &PgTriageStore{
		pool:         pool,
		contacts:     contacts,
		subscribers:  subscribers,
		chatMessages: chatMessages,
		appointments: appointments,
		refills:      refills,
	}
}

var _ TriageStore = (*PgTriageStore)(nil)

// List returns the full collection for one kind, newest first.
func (s *PgTriageStore) List(ctx context.Context, kind model.Kind) ([]model.TriageRecord, error) {
	switch kind {
	case model.KindContact:
		rows, err := s.contacts.List(ctx)
		return asTriageRecords(rows), err
	case model.KindSubscriber:
		rows, err := s.subscribers.List(ctx)
		return asTriageRecords(rows), err
	case model.KindChatMessage:
		rows, err := s.chatMessages.List(ctx)
		return asTriageRecords(rows), err
	case model.KindAppointment:
		rows, err := s.appointments.List(ctx)
		return asTriageRecords(rows), err
	case model.KindRefill:
		rows, err := s.refills.List(ctx)
		return asTriageRecords(rows), err
	}
	return nil, fmt.Errorf("unknown record kind %q", kind)
}

func asTriageRecords[T model.TriageRecord](rows []T) []model.TriageRecord {
	out := make([]model.TriageRecord, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// UpdateTriage applies a partial triage update by id. A patch touching a
// row that no longer exists returns ErrNotFound.
func (s *PgTriageStore) UpdateTriage(ctx context.Context, kind model.Kind, id string, patch model.TriagePatch) error {
	table := kind.Table()
	if table == "" {
		return fmt.Errorf("unknown record kind %q", kind)
	}

	var sets []string
	var args []any
	if patch.IsRead != nil {
		args = append(args, *patch.IsRead)
		sets = append(sets, fmt.Sprintf("is_read = $%d", len(args)))
	}
	if patch.IsArchived != nil {
		args = append(args, *patch.IsArchived)
		sets = append(sets, fmt.Sprintf("is_archived = $%d", len(args)))
	}
	if patch.Status != nil {
		if !kind.HasStatus() {
			return fmt.Errorf("%s records have no workflow status", kind)
		}
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		table, strings.Join(sets, ", "), len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete permanently removes one record. Missing rows return ErrNotFound.
func (s *PgTriageStore) Delete(ctx context.Context, kind model.Kind, id string) error {
	table := kind.Table()
	if table == "" {
		return fmt.Errorf("unknown record kind %q", kind)
	}
	tag, err := s.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", table), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
