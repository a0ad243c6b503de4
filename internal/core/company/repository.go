package company

import (
	"context"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

// Repository は会社の業務ルール (一意性・部分更新・未存在) を担うリポジトリです。
// インフラ障害は再試行後にエラーとして返却され、業務ルール違反は OperationResult で表現されます。
type Repository interface {
	GetAll(ctx context.Context) ([]*Company, error)
	GetByCode(ctx context.Context, code string) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	Create(ctx context.Context, company *Company) (result.OperationResult, error)
	UpdateByCode(ctx context.Context, code string, company *Company) (result.OperationResult, error)
	DeleteByCode(ctx context.Context, code string) (bool, error)
}
