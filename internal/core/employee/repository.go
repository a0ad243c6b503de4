package employee

import (
	"context"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

// Repository は従業員の業務ルール (一意性・部分更新・未存在) を担うリポジトリです。
// インフラ障害は再試行後にエラーとして返却され、業務ルール違反は OperationResult で表現されます。
type Repository interface {
	GetAll(ctx context.Context) ([]*Employee, error)
	GetByCode(ctx context.Context, code string) (*Employee, error)
	GetByName(ctx context.Context, name string) (*Employee, error)
	Create(ctx context.Context, employee *Employee) (result.OperationResult, error)
	UpdateByCode(ctx context.Context, code string, employee *Employee) (result.OperationResult, error)
	DeleteByCode(ctx context.Context, code string) (bool, error)
}
