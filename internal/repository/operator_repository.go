package repository

import (
	"context"

	"github.com/benbol/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OperatorRepository はオペレーターアカウント永続化のインターフェース
type OperatorRepository interface {
	FindByID(ctx context.Context, id string) (*model.Operator, error)
	FindByEmail(ctx context.Context, email string) (*model.Operator, error)
	Create(ctx context.Context, op *model.Operator) error
	List(ctx context.Context) ([]*model.Operator, error)
	UpdateRole(ctx context.Context, id string, role model.Role) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// PgOperatorRepository は OperatorRepository の PostgreSQL 実装
type PgOperatorRepository struct {
	pool *pgxpool.Pool
}

// NewPgOperatorRepository は PgOperatorRepository を生成する
func NewPgOperatorRepository(pool *pgxpool.Pool) *PgOperatorRepository {
	return &PgOperatorRepository{pool: pool}
}

var _ OperatorRepository = (*PgOperatorRepository)(nil)

// Ping は DB 接続を確認する（DB インターフェース実装）
func (r *PgOperatorRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

const operatorSelectCols = `id, email, password_hash, role, created_at`

func scanOperator(scan func(...any) error) (*model.Operator, error) {
	var op model.Operator
	if err := scan(&op.ID, &op.Email, &op.PasswordHash, &op.Role, &op.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

// FindByID は ID でオペレーターを取得する
func (r *PgOperatorRepository) FindByID(ctx context.Context, id string) (*model.Operator, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+operatorSelectCols+` FROM operators WHERE id = $1`, id)
	return scanOperator(row.Scan)
}

// FindByEmail はメールアドレスでオペレーターを取得する
func (r *PgOperatorRepository) FindByEmail(ctx context.Context, email string) (*model.Operator, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+operatorSelectCols+` FROM operators WHERE email = $1`, email)
	return scanOperator(row.Scan)
}

// Create はオペレーターを作成する。メール重複は ErrDuplicate を返す
func (r *PgOperatorRepository) Create(ctx context.Context, op *model.Operator) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO operators (email, password_hash, role) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		op.Email, op.PasswordHash, op.Role,
	).Scan(&op.ID, &op.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// List returns operators ordered by created_at desc.
func (r *PgOperatorRepository) List(ctx context.Context) ([]*model.Operator, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+operatorSelectCols+` FROM operators ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Operator
	for rows.Next() {
		op, err := scanOperator(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, rows.Err()
}

// UpdateRole changes an operator's role.
func (r *PgOperatorRepository) UpdateRole(ctx context.Context, id string, role model.Role) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE operators SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword replaces an operator's password hash.
func (r *PgOperatorRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE operators SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an operator account.
func (r *PgOperatorRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM operators WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
