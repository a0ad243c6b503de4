package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
	"github.com/ogurasousui/codex-company-registry/internal/core/retry"
	"github.com/ogurasousui/codex-company-registry/internal/core/store"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// StoreRepository は store.Store 上に会社の業務ルールを実装します。
type StoreRepository struct {
	store  store.Store[Company]
	exec   *retry.Executor
	tx     TransactionManager
	clock  Clock
	logger *zap.Logger
	newID  func() string
}

var _ Repository = (*StoreRepository)(nil)

// NewStoreRepository は StoreRepository を生成します。nil の依存は既定の実装に置き換えます。
func NewStoreRepository(s store.Store[Company], exec *retry.Executor, tx TransactionManager, clock Clock, logger *zap.Logger) *StoreRepository {
	if exec == nil {
		exec = retry.NewExecutor(retry.DefaultPolicy(), logger)
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreRepository{
		store:  s,
		exec:   exec,
		tx:     tx,
		clock:  clock,
		logger: logger,
		newID:  func() string { return uuid.NewString() },
	}
}

// GetAll はすべての会社を取得します。
func (r *StoreRepository) GetAll(ctx context.Context) ([]*Company, error) {
	return retry.Do(ctx, r.exec, "fetch all companies", func(ctx context.Context) ([]*Company, error) {
		var companies []*Company
		err := r.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
			found, err := r.store.FindAll(txCtx)
			companies = found
			return err
		})
		return companies, err
	})
}

// GetByCode は会社コードで会社を取得します。存在しない場合は ErrCompanyNotFound を返却します。
func (r *StoreRepository) GetByCode(ctx context.Context, code string) (*Company, error) {
	return r.findOne(ctx, fmt.Sprintf("fetch company by code %q", code), store.Eq(FieldCode, code))
}

// GetByName は会社名で会社を取得します。存在しない場合は ErrCompanyNotFound を返却します。
func (r *StoreRepository) GetByName(ctx context.Context, name string) (*Company, error) {
	return r.findOne(ctx, fmt.Sprintf("fetch company by name %q", name), store.Eq(FieldName, name))
}

func (r *StoreRepository) findOne(ctx context.Context, description string, where ...store.Condition) (*Company, error) {
	found, err := retry.Do(ctx, r.exec, description, func(ctx context.Context) ([]*Company, error) {
		var companies []*Company
		err := r.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
			rows, err := r.store.Find(txCtx, store.Where(where...))
			companies = rows
			return err
		})
		return companies, err
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, ErrCompanyNotFound
	}
	return found[0], nil
}

// Create は会社を登録します。同じサイトに同じコードの会社が存在する場合は競合として失敗結果を返却します。
func (r *StoreRepository) Create(ctx context.Context, c *Company) (result.OperationResult, error) {
	if c == nil {
		return result.OperationResult{}, fmt.Errorf("company: %w", ErrInvalidCode)
	}

	description := fmt.Sprintf("save company %s/%s", c.SiteID, c.Code)
	return retry.Do(ctx, r.exec, description, func(ctx context.Context) (result.OperationResult, error) {
		var res result.OperationResult
		err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
			existing, err := r.store.Find(txCtx, store.Where(
				store.Eq(FieldSiteID, c.SiteID),
				store.Eq(FieldCode, c.Code),
			))
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				res = result.Failed(result.ReasonConflict, msgAlreadyExists, r.clock.Now())
				return nil
			}

			record := *c
			now := r.clock.Now()
			if record.ID == "" {
				record.ID = r.newID()
			}
			if record.Status == "" {
				record.Status = StatusActive
			}
			record.CreatedAt = now
			record.UpdatedAt = now

			ok, err := r.store.Insert(txCtx, &record)
			if err != nil {
				return err
			}
			if ok {
				*c = record
			}
			res = result.FromWrite(ok, msgSaved, msgSaveFailed, now)
			return nil
		})
		if errors.Is(err, store.ErrDuplicate) {
			return result.Failed(result.ReasonConflict, msgAlreadyExists, r.clock.Now()), nil
		}
		return res, err
	})
}

// UpdateByCode は会社コードで特定した会社に、指定済みのフィールドだけを反映します。
// 保存に成功した場合、incoming はマージ後のエンティティで上書きされます。
func (r *StoreRepository) UpdateByCode(ctx context.Context, code string, incoming *Company) (result.OperationResult, error) {
	if incoming == nil {
		incoming = &Company{}
	}

	description := fmt.Sprintf("update company %q", code)
	return retry.Do(ctx, r.exec, description, func(ctx context.Context) (result.OperationResult, error) {
		var res result.OperationResult
		err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
			found, err := r.store.Find(txCtx, store.Where(store.Eq(FieldCode, code)))
			if err != nil {
				return err
			}
			if len(found) == 0 {
				res = result.Failed(result.ReasonNotFound, msgNotFoundByCode, r.clock.Now())
				return nil
			}

			existing := found[0]
			if Equal(existing, incoming) {
				res = result.Unchanged(msgSameDetails, r.clock.Now())
				return nil
			}

			before := *existing
			changed := MergeInto(existing, incoming)
			if len(changed) == 0 {
				res = result.Unchanged(msgSameDetails, r.clock.Now())
				return nil
			}

			if UniqueKey(existing) != UniqueKey(&before) {
				clash, err := r.store.Find(txCtx, store.Where(
					store.Eq(FieldSiteID, existing.SiteID),
					store.Eq(FieldCode, existing.Code),
				))
				if err != nil {
					return err
				}
				for _, other := range clash {
					if other.ID != existing.ID {
						res = result.Failed(result.ReasonConflict, msgAlreadyExists, r.clock.Now())
						return nil
					}
				}
			}

			now := r.clock.Now()
			existing.UpdatedAt = now
			ok, err := r.store.Update(txCtx, existing)
			if err != nil {
				return err
			}
			r.logger.Debug("company merged",
				zap.String("code", code),
				zap.Strings("fields", changed),
				zap.Bool("persisted", ok),
			)
			if ok {
				*incoming = *existing
			}
			res = result.FromWrite(ok, msgUpdated, msgUpdateFailed, now)
			return nil
		})
		if errors.Is(err, store.ErrDuplicate) {
			return result.Failed(result.ReasonConflict, msgAlreadyExists, r.clock.Now()), nil
		}
		return res, err
	})
}

// DeleteByCode は会社コードに一致する会社を削除します。存在しない場合は false を返却します。
func (r *StoreRepository) DeleteByCode(ctx context.Context, code string) (bool, error) {
	description := fmt.Sprintf("delete company %q", code)
	return retry.Do(ctx, r.exec, description, func(ctx context.Context) (bool, error) {
		var deleted bool
		err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
			where := store.Where(store.Eq(FieldCode, code))
			found, err := r.store.Find(txCtx, where)
			if err != nil {
				return err
			}
			if len(found) == 0 {
				r.logger.Warn("company not available for deletion", zap.String("code", code))
				return nil
			}
			deleted, err = r.store.Delete(txCtx, where)
			return err
		})
		return deleted, err
	})
}
