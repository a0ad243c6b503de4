package store

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDuplicate は一意キー制約に違反した場合に返却されます。再試行しても解消しません。
	ErrDuplicate = errors.New("store: duplicate key")
	// ErrUnknownField は述語に未定義のフィールドが含まれる場合に返却されます。
	ErrUnknownField = errors.New("store: unknown field")
)

// Store はエンティティ種別ごとのキー付きコレクションを抽象化します。
// 実装は自身で並行アクセスの安全性を保証し、インフラ障害は任意のエラーで返却します。
type Store[T any] interface {
	FindAll(ctx context.Context) ([]*T, error)
	Find(ctx context.Context, where Predicate) ([]*T, error)
	Insert(ctx context.Context, entity *T) (bool, error)
	Update(ctx context.Context, entity *T) (bool, error)
	Delete(ctx context.Context, where Predicate) (bool, error)
}

// Condition は 1 フィールドの等価条件です。Field は永続化時の列名と一致します。
type Condition struct {
	Field string
	Value any
}

// Predicate は Condition の論理積です。空の Predicate は全件に一致します。
type Predicate []Condition

// Eq は等価条件を生成します。
func Eq(field string, value any) Condition {
	return Condition{Field: field, Value: value}
}

// Where は条件を束ねた Predicate を返します。
func Where(conds ...Condition) Predicate {
	return Predicate(conds)
}

// Accessor はフィールド名からエンティティの値を取り出す関数表です。
// インメモリ実装での述語評価に利用します。
type Accessor[T any] map[string]func(*T) any

// Match は entity が述語のすべての条件を満たすかを判定します。
func (a Accessor[T]) Match(entity *T, where Predicate) (bool, error) {
	for _, cond := range where {
		get, ok := a[cond.Field]
		if !ok {
			return false, fmt.Errorf("%w: %s", ErrUnknownField, cond.Field)
		}
		if get(entity) != cond.Value {
			return false, nil
		}
	}
	return true, nil
}
