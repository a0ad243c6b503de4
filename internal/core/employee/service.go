package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

// UseCase は従業員ユースケースの公開インターフェースです。
type UseCase interface {
	GetAllEmployees(ctx context.Context) ([]*EmployeeInfo, error)
	GetEmployeeByCode(ctx context.Context, code string) (*EmployeeInfo, error)
	GetEmployeeByName(ctx context.Context, name string) (*EmployeeInfo, error)
	CreateEmployee(ctx context.Context, in EmployeeInfo) (result.OperationResult, error)
	UpdateEmployeeByCode(ctx context.Context, code string, in EmployeeInfo) (result.OperationResult, error)
	DeleteEmployeeByCode(ctx context.Context, code string) (result.OperationResult, error)
}

// Service は従業員に関するユースケースをまとめます。
type Service struct {
	repo   Repository
	events EventPublisher
	clock  Clock
	logger *zap.Logger
}

var _ UseCase = (*Service)(nil)

// NewService は Service を生成します。
func NewService(repo Repository, events EventPublisher, clock Clock, logger *zap.Logger) *Service {
	if events == nil {
		events = noopPublisher{}
	}
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, events: events, clock: clock, logger: logger}
}

// GetAllEmployees はすべての従業員を取得します。
func (s *Service) GetAllEmployees(ctx context.Context) ([]*EmployeeInfo, error) {
	employees, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.unexpected("get all employees", err)
	}
	return ToInfos(employees), nil
}

// GetEmployeeByCode は従業員コードで従業員を取得します。
func (s *Service) GetEmployeeByCode(ctx context.Context, code string) (*EmployeeInfo, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			s.logger.Warn("employee not found", zap.String("code", code))
			return nil, ErrEmployeeNotFound
		}
		return nil, s.unexpected("get employee by code", err, zap.String("code", code))
	}
	return ToInfo(found), nil
}

// GetEmployeeByName は従業員名で従業員を取得します。
func (s *Service) GetEmployeeByName(ctx context.Context, name string) (*EmployeeInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	found, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			s.logger.Warn("employee not found", zap.String("name", name))
			return nil, ErrEmployeeNotFound
		}
		return nil, s.unexpected("get employee by name", err, zap.String("name", name))
	}
	return ToInfo(found), nil
}

// CreateEmployee は従業員を登録します。業務上の失敗は OperationResult で返却されます。
func (s *Service) CreateEmployee(ctx context.Context, in EmployeeInfo) (result.OperationResult, error) {
	entity := ToEntity(in)
	if entity.Code == "" {
		return result.OperationResult{}, ErrInvalidCode
	}
	if err := validateStatus(entity.Status); err != nil {
		return result.OperationResult{}, err
	}

	res, err := s.repo.Create(ctx, entity)
	if err != nil {
		return result.OperationResult{}, s.unexpected("create employee", err, zap.String("code", entity.Code))
	}
	if !res.IsSuccess {
		s.logger.Warn("employee not created", zap.String("code", entity.Code), zap.String("reason", res.Message))
		return res, nil
	}

	s.publish(ctx, EventEmployeeCreated, ToInfo(entity))
	return res, nil
}

// UpdateEmployeeByCode は従業員コードで特定した従業員を部分更新します。
func (s *Service) UpdateEmployeeByCode(ctx context.Context, code string, in EmployeeInfo) (result.OperationResult, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return result.OperationResult{}, err
	}
	entity := ToEntity(in)
	if err := validateStatus(entity.Status); err != nil {
		return result.OperationResult{}, err
	}

	res, err := s.repo.UpdateByCode(ctx, code, entity)
	if err != nil {
		return result.OperationResult{}, s.unexpected("update employee", err, zap.String("code", code))
	}
	if !res.IsSuccess {
		s.logger.Warn("employee not updated", zap.String("code", code), zap.String("reason", res.Message))
		return res, nil
	}

	// 更新後の entity はリポジトリがマージ済みの全フィールドで上書きしています。
	if res.Reason != result.ReasonUnchanged {
		s.publish(ctx, EventEmployeeUpdated, ToInfo(entity))
	}
	return res, nil
}

// DeleteEmployeeByCode は従業員コードに一致する従業員を削除します。
func (s *Service) DeleteEmployeeByCode(ctx context.Context, code string) (result.OperationResult, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return result.OperationResult{}, err
	}

	deleted, err := s.repo.DeleteByCode(ctx, code)
	if err != nil {
		return result.OperationResult{}, s.unexpected("delete employee", err, zap.String("code", code))
	}
	if !deleted {
		return result.Failed(result.ReasonNotFound, msgDeleteNotFound, s.clock.Now()), nil
	}

	s.publish(ctx, EventEmployeeDeleted, DeletedEvent{Code: code})
	return result.Succeeded(fmt.Sprintf(msgDeletedFormat, code), s.clock.Now()), nil
}

func (s *Service) unexpected(operation string, err error, fields ...zap.Field) error {
	s.logger.Error("employee "+operation+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", operation, err)
}

func (s *Service) publish(ctx context.Context, eventType string, payload any) {
	if err := s.events.Publish(ctx, eventType, payload); err != nil {
		s.logger.Warn("failed to publish employee event",
			zap.String("event", eventType),
			zap.Error(err),
		)
	}
}

func normalizeCode(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidCode
	}
	return trimmed, nil
}

func validateStatus(status Status) error {
	switch status {
	case "", StatusActive, StatusInactive:
		return nil
	default:
		return ErrInvalidStatus
	}
}
