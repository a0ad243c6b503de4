package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/codex-company-registry/internal/core/store"
	pgdb "github.com/ogurasousui/codex-company-registry/internal/platform/db/postgres"
)

const uniqueViolationCode = "23505"

// Column はテーブルの 1 列と、エンティティから値を取り出す関数です。
type Column[T any] struct {
	Name  string
	Value func(*T) any
	// Immutable な列は UPDATE の対象外です。
	Immutable bool
}

// Table はエンティティ型とテーブルの対応を表します。
// Scan は Columns と同じ順序で列を読み取ります。
type Table[T any] struct {
	Name    string
	Key     string
	Columns []Column[T]
	OrderBy string
	Scan    func(row pgx.Row) (*T, error)
}

func (t Table[T]) columnList() string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

func (t Table[T]) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

func (t Table[T]) keyValue(entity *T) any {
	for _, c := range t.Columns {
		if c.Name == t.Key {
			return c.Value(entity)
		}
	}
	return nil
}

// Store は PostgreSQL を利用した store.Store 実装です。
// コンテキストにトランザクションが存在する場合はその中でクエリを実行します。
type Store[T any] struct {
	pool  pgdb.Queryer
	table Table[T]
}

// NewStore は Store を生成します。
func NewStore[T any](pool pgdb.Queryer, table Table[T]) *Store[T] {
	return &Store[T]{pool: pool, table: table}
}

// FindAll はすべての行を取得します。
func (s *Store[T]) FindAll(ctx context.Context) ([]*T, error) {
	return s.Find(ctx, nil)
}

// Find は述語に一致する行を取得します。
func (s *Store[T]) Find(ctx context.Context, where store.Predicate) ([]*T, error) {
	clause, args, err := s.whereClause(where, 1)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + s.table.columnList() + " FROM " + s.table.Name + clause
	if s.table.OrderBy != "" {
		query += " ORDER BY " + s.table.OrderBy
	}

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		entity, err := s.table.Scan(rows)
		if err != nil {
			return nil, translatePgError(err)
		}
		out = append(out, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, translatePgError(err)
	}
	return out, nil
}

// Insert は 1 行を追加します。
func (s *Store[T]) Insert(ctx context.Context, entity *T) (bool, error) {
	if entity == nil {
		return false, nil
	}

	placeholders := make([]string, 0, len(s.table.Columns))
	args := make([]any, 0, len(s.table.Columns))
	for i, c := range s.table.Columns {
		placeholders = append(placeholders, "$"+strconv.Itoa(i+1))
		args = append(args, c.Value(entity))
	}

	query := "INSERT INTO " + s.table.Name + " (" + s.table.columnList() + ") VALUES (" + strings.Join(placeholders, ", ") + ")"

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	tag, err := exec.Exec(ctx, query, args...)
	if err != nil {
		return false, translatePgError(err)
	}
	return tag.RowsAffected() == 1, nil
}

// Update はキー列が一致する行を更新します。
func (s *Store[T]) Update(ctx context.Context, entity *T) (bool, error) {
	if entity == nil {
		return false, nil
	}

	sets := make([]string, 0, len(s.table.Columns))
	args := make([]any, 0, len(s.table.Columns)+1)
	for _, c := range s.table.Columns {
		if c.Immutable || c.Name == s.table.Key {
			continue
		}
		args = append(args, c.Value(entity))
		sets = append(sets, c.Name+" = $"+strconv.Itoa(len(args)))
	}
	args = append(args, s.table.keyValue(entity))

	query := "UPDATE " + s.table.Name + " SET " + strings.Join(sets, ", ") +
		" WHERE " + s.table.Key + " = $" + strconv.Itoa(len(args))

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	tag, err := exec.Exec(ctx, query, args...)
	if err != nil {
		return false, translatePgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

// Delete は述語に一致する行を削除します。
func (s *Store[T]) Delete(ctx context.Context, where store.Predicate) (bool, error) {
	clause, args, err := s.whereClause(where, 1)
	if err != nil {
		return false, err
	}

	exec := pgdb.QueryerFromContext(ctx, s.pool)
	tag, err := exec.Exec(ctx, "DELETE FROM "+s.table.Name+clause, args...)
	if err != nil {
		return false, translatePgError(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store[T]) whereClause(where store.Predicate, start int) (string, []any, error) {
	if len(where) == 0 {
		return "", nil, nil
	}

	conditions := make([]string, 0, len(where))
	args := make([]any, 0, len(where))
	for _, cond := range where {
		if !s.table.hasColumn(cond.Field) {
			return "", nil, fmt.Errorf("%w: %s.%s", store.ErrUnknownField, s.table.Name, cond.Field)
		}
		conditions = append(conditions, cond.Field+" = $"+strconv.Itoa(start+len(args)))
		args = append(args, cond.Value)
	}
	return " WHERE " + strings.Join(conditions, " AND "), args, nil
}

func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", store.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
