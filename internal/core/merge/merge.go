// Package merge はエンティティのフィールド単位の比較と部分更新を提供します。
//
// 各エンティティはフィールドの一覧 (Schema) を一度だけ宣言し、比較とマージは
// その一覧から導出されます。ゼロ値は「未指定」として扱われます。
package merge

import "time"

// Field はエンティティの 1 フィールドに対する比較・マージ操作です。
type Field[T any] struct {
	Name  string
	equal func(a, b *T) bool
	merge func(dst, src *T) bool
}

// Of は比較可能な値を持つフィールドを宣言します。ref はフィールドへのポインタを返します。
func Of[T any, V comparable](name string, ref func(*T) *V) Field[T] {
	var zero V
	return Field[T]{
		Name: name,
		equal: func(a, b *T) bool {
			return *ref(a) == *ref(b)
		},
		merge: func(dst, src *T) bool {
			in := *ref(src)
			if in == zero || in == *ref(dst) {
				return false
			}
			*ref(dst) = in
			return true
		},
	}
}

// Time は時刻フィールドを宣言します。ロケーションが異なっても同一時刻なら等しいとみなします。
func Time[T any](name string, ref func(*T) *time.Time) Field[T] {
	return Field[T]{
		Name: name,
		equal: func(a, b *T) bool {
			return ref(a).Equal(*ref(b))
		},
		merge: func(dst, src *T) bool {
			in := *ref(src)
			if in.IsZero() || in.Equal(*ref(dst)) {
				return false
			}
			*ref(dst) = in
			return true
		},
	}
}

// Schema はエンティティのマージ対象フィールドの一覧です。
type Schema[T any] []Field[T]

// Equal はすべてのフィールドが等しい場合に true を返します。両方ゼロ値の場合も等しいとみなします。
func (s Schema[T]) Equal(a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	for _, f := range s {
		if !f.equal(a, b) {
			return false
		}
	}
	return true
}

// MergeInto は incoming のうちゼロ値でなく existing と異なる値を existing に上書きし、
// 変更したフィールド名を返します。
func (s Schema[T]) MergeInto(existing, incoming *T) []string {
	if existing == nil || incoming == nil {
		return nil
	}
	var changed []string
	for _, f := range s {
		if f.merge(existing, incoming) {
			changed = append(changed, f.Name)
		}
	}
	return changed
}

// Names は宣言順のフィールド名を返します。
func (s Schema[T]) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}
