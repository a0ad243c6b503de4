package company

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

// UseCase は会社ユースケースの公開インターフェースです。
type UseCase interface {
	GetAllCompanies(ctx context.Context) ([]*CompanyInfo, error)
	GetCompanyByCode(ctx context.Context, code string) (*CompanyInfo, error)
	GetCompanyByName(ctx context.Context, name string) (*CompanyInfo, error)
	CreateCompany(ctx context.Context, in CompanyInfo) (result.OperationResult, error)
	UpdateCompanyByCode(ctx context.Context, code string, in CompanyInfo) (result.OperationResult, error)
	DeleteCompanyByCode(ctx context.Context, code string) (result.OperationResult, error)
}

// Service は会社に関するユースケースをまとめます。
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

// GetAllCompanies はすべての会社を取得します。
func (s *Service) GetAllCompanies(ctx context.Context) ([]*CompanyInfo, error) {
	companies, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, s.unexpected("get all companies", err)
	}
	return ToInfos(companies), nil
}

// GetCompanyByCode は会社コードで会社を取得します。
func (s *Service) GetCompanyByCode(ctx context.Context, code string) (*CompanyInfo, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return nil, err
	}

	found, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			s.logger.Warn("company not found", zap.String("code", code))
			return nil, ErrCompanyNotFound
		}
		return nil, s.unexpected("get company by code", err, zap.String("code", code))
	}
	return ToInfo(found), nil
}

// GetCompanyByName は会社名で会社を取得します。
func (s *Service) GetCompanyByName(ctx context.Context, name string) (*CompanyInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	found, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			s.logger.Warn("company not found", zap.String("name", name))
			return nil, ErrCompanyNotFound
		}
		return nil, s.unexpected("get company by name", err, zap.String("name", name))
	}
	return ToInfo(found), nil
}

// CreateCompany は会社を登録します。業務上の失敗は OperationResult で返却されます。
func (s *Service) CreateCompany(ctx context.Context, in CompanyInfo) (result.OperationResult, error) {
	entity := ToEntity(in)
	if entity.Code == "" {
		return result.OperationResult{}, ErrInvalidCode
	}
	if err := validateStatus(entity.Status); err != nil {
		return result.OperationResult{}, err
	}

	res, err := s.repo.Create(ctx, entity)
	if err != nil {
		return result.OperationResult{}, s.unexpected("create company", err, zap.String("code", entity.Code))
	}
	if !res.IsSuccess {
		s.logger.Warn("company not created", zap.String("code", entity.Code), zap.String("reason", res.Message))
		return res, nil
	}

	s.publish(ctx, EventCompanyCreated, ToInfo(entity))
	return res, nil
}

// UpdateCompanyByCode は会社コードで特定した会社を部分更新します。
func (s *Service) UpdateCompanyByCode(ctx context.Context, code string, in CompanyInfo) (result.OperationResult, error) {
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
		return result.OperationResult{}, s.unexpected("update company", err, zap.String("code", code))
	}
	if !res.IsSuccess {
		s.logger.Warn("company not updated", zap.String("code", code), zap.String("reason", res.Message))
		return res, nil
	}

	// 更新後の entity はリポジトリがマージ済みの全フィールドで上書きしています。
	if res.Reason != result.ReasonUnchanged {
		s.publish(ctx, EventCompanyUpdated, ToInfo(entity))
	}
	return res, nil
}

// DeleteCompanyByCode は会社コードに一致する会社を削除します。
func (s *Service) DeleteCompanyByCode(ctx context.Context, code string) (result.OperationResult, error) {
	code, err := normalizeCode(code)
	if err != nil {
		return result.OperationResult{}, err
	}

	deleted, err := s.repo.DeleteByCode(ctx, code)
	if err != nil {
		return result.OperationResult{}, s.unexpected("delete company", err, zap.String("code", code))
	}
	if !deleted {
		return result.Failed(result.ReasonNotFound, msgDeleteNotFound, s.clock.Now()), nil
	}

	s.publish(ctx, EventCompanyDeleted, DeletedEvent{Code: code})
	return result.Succeeded(fmt.Sprintf(msgDeletedFormat, code), s.clock.Now()), nil
}

func (s *Service) unexpected(operation string, err error, fields ...zap.Field) error {
	s.logger.Error("company "+operation+" failed", append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", operation, err)
}

func (s *Service) publish(ctx context.Context, eventType string, payload any) {
	if err := s.events.Publish(ctx, eventType, payload); err != nil {
		s.logger.Warn("failed to publish company event",
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
