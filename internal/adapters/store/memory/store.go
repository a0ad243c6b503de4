package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/patrickmn/go-cache"

	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

type entry[T any] struct {
	seq   uint64
	value T
}

// Store は go-cache を利用したインメモリの store.Store 実装です。
// エンティティは ID をキーに保持し、取得結果は登録順で返却します。
type Store[T any] struct {
	mu       sync.Mutex
	items    *cache.Cache
	accessor store.Accessor[T]
	id       func(*T) string
	unique   func(*T) string
	seq      uint64
}

// Option は Store の設定を変更します。
type Option[T any] func(*Store[T])

// WithUniqueKey は一意キーを設定します。同じキーを持つエンティティの登録・更新は store.ErrDuplicate になります。
func WithUniqueKey[T any](key func(*T) string) Option[T] {
	return func(s *Store[T]) {
		s.unique = key
	}
}

var _ store.Store[struct{}] = (*Store[struct{}])(nil)

// NewStore は Store を生成します。id はエンティティの識別子を返す関数です。
func NewStore[T any](accessor store.Accessor[T], id func(*T) string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		items:    cache.New(cache.NoExpiration, 0),
		accessor: accessor,
		id:       id,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindAll はすべてのエンティティを登録順で返却します。
func (s *Store[T]) FindAll(ctx context.Context) ([]*T, error) {
	return s.Find(ctx, nil)
}

// Find は述語に一致するエンティティを登録順で返却します。
func (s *Store[T]) Find(ctx context.Context, where store.Predicate) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.ordered()
	out := make([]*T, 0, len(entries))
	for _, e := range entries {
		ok, err := s.accessor.Match(&e.value, where)
		if err != nil {
			return nil, err
		}
		if ok {
			v := e.value
			out = append(out, &v)
		}
	}
	return out, nil
}

// Insert はエンティティを登録します。同じ ID が存在する場合は false を返却します。
func (s *Store[T]) Insert(ctx context.Context, entity *T) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if entity == nil {
		return false, nil
	}
	key := s.id(entity)
	if key == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkUnique(entity, key); err != nil {
		return false, err
	}

	s.seq++
	if err := s.items.Add(key, &entry[T]{seq: s.seq, value: *entity}, cache.NoExpiration); err != nil {
		return false, nil
	}
	return true, nil
}

// Update は ID が一致するエンティティを置き換えます。存在しない場合は false を返却します。
func (s *Store[T]) Update(ctx context.Context, entity *T) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if entity == nil {
		return false, nil
	}
	key := s.id(entity)

	s.mu.Lock()
	defer s.mu.Unlock()

	current, found := s.items.Get(key)
	if !found {
		return false, nil
	}
	if err := s.checkUnique(entity, key); err != nil {
		return false, err
	}

	seq := current.(*entry[T]).seq
	s.items.Set(key, &entry[T]{seq: seq, value: *entity}, cache.NoExpiration)
	return true, nil
}

// Delete は述語に一致するエンティティをすべて削除します。1 件以上削除した場合に true を返却します。
func (s *Store[T]) Delete(ctx context.Context, where store.Predicate) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for key, item := range s.items.Items() {
		e := item.Object.(*entry[T])
		ok, err := s.accessor.Match(&e.value, where)
		if err != nil {
			return false, err
		}
		if ok {
			keys = append(keys, key)
		}
	}
	for _, key := range keys {
		s.items.Delete(key)
	}
	return len(keys) > 0, nil
}

// Len は保持しているエンティティ数を返却します。
func (s *Store[T]) Len() int {
	return s.items.ItemCount()
}

func (s *Store[T]) ordered() []*entry[T] {
	items := s.items.Items()
	entries := make([]*entry[T], 0, len(items))
	for _, item := range items {
		entries = append(entries, item.Object.(*entry[T]))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	return entries
}

func (s *Store[T]) checkUnique(entity *T, key string) error {
	if s.unique == nil {
		return nil
	}
	want := s.unique(entity)
	for otherKey, item := range s.items.Items() {
		if otherKey == key {
			continue
		}
		e := item.Object.(*entry[T])
		if s.unique(&e.value) == want {
			return fmt.Errorf("%w: %q", store.ErrDuplicate, want)
		}
	}
	return nil
}
