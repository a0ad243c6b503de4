package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/registryv1"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, company.ErrInvalidCode),
		errors.Is(err, company.ErrInvalidName),
		errors.Is(err, company.ErrInvalidStatus),
		errors.Is(err, employee.ErrInvalidCode),
		errors.Is(err, employee.ErrInvalidName),
		errors.Is(err, employee.ErrInvalidStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, company.ErrCompanyNotFound), errors.Is(err, employee.ErrEmployeeNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// toMutationResponse は成功した結果を応答に変換し、失敗した結果は理由に応じたステータスにします。
func toMutationResponse(res result.OperationResult) (*registryv1.MutationResponse, error) {
	if !res.IsSuccess {
		switch res.Reason {
		case result.ReasonNotFound:
			return nil, status.Error(codes.NotFound, res.Message)
		case result.ReasonConflict:
			return nil, status.Error(codes.AlreadyExists, res.Message)
		default:
			return nil, status.Error(codes.Internal, res.Message)
		}
	}
	return &registryv1.MutationResponse{Result: &registryv1.OperationResult{
		IsSuccess: res.IsSuccess,
		Message:   res.Message,
		Timestamp: res.Timestamp,
	}}, nil
}
