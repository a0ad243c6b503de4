package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/registryv1"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
}

var _ registryv1.EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// ListEmployees は従業員の一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *registryv1.ListEmployeesRequest) (*registryv1.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	infos, err := h.svc.GetAllEmployees(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	employees := make([]*registryv1.Employee, 0, len(infos))
	for _, info := range infos {
		employees = append(employees, toProtoEmployee(info))
	}
	return &registryv1.ListEmployeesResponse{Employees: employees}, nil
}

func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *registryv1.GetEmployeeRequest) (*registryv1.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployeeByCode(ctx, req.EmployeeCode)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &registryv1.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

func (h *EmployeeGrpcHandler) GetEmployeeByName(ctx context.Context, req *registryv1.GetEmployeeByNameRequest) (*registryv1.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployeeByName(ctx, req.EmployeeName)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &registryv1.GetEmployeeResponse{Employee: toProtoEmployee(found)}, nil
}

// CreateEmployee は従業員を登録します。
func (h *EmployeeGrpcHandler) CreateEmployee(ctx context.Context, req *registryv1.CreateEmployeeRequest) (*registryv1.MutationResponse, error) {
	if req == nil || req.Employee == nil {
		return nil, status.Error(codes.InvalidArgument, "employee is required")
	}

	res, err := h.svc.CreateEmployee(ctx, toDomainEmployee(req.Employee))
	if err != nil {
		return nil, toStatusError(err)
	}
	return toMutationResponse(res)
}

// UpdateEmployee は従業員情報を部分更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *registryv1.UpdateEmployeeRequest) (*registryv1.MutationResponse, error) {
	if req == nil || req.Employee == nil {
		return nil, status.Error(codes.InvalidArgument, "employee is required")
	}

	res, err := h.svc.UpdateEmployeeByCode(ctx, req.EmployeeCode, toDomainEmployee(req.Employee))
	if err != nil {
		return nil, toStatusError(err)
	}
	return toMutationResponse(res)
}

// DeleteEmployee は従業員を削除します。
func (h *EmployeeGrpcHandler) DeleteEmployee(ctx context.Context, req *registryv1.DeleteEmployeeRequest) (*registryv1.MutationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	res, err := h.svc.DeleteEmployeeByCode(ctx, req.EmployeeCode)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toMutationResponse(res)
}

func toProtoEmployee(e *employee.EmployeeInfo) *registryv1.Employee {
	if e == nil {
		return nil
	}
	return &registryv1.Employee{
		Id:             e.ID,
		SiteId:         e.SiteID,
		CompanyCode:    e.CompanyCode,
		EmployeeCode:   e.Code,
		EmployeeName:   e.Name,
		OccupationName: e.OccupationName,
		EmployeeStatus: string(e.Status),
		EmailAddress:   e.EmailAddress,
		Phone:          e.PhoneNumber,
		LastModified:   e.LastModified,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func toDomainEmployee(e *registryv1.Employee) employee.EmployeeInfo {
	return employee.EmployeeInfo{
		SiteID:         e.SiteId,
		CompanyCode:    e.CompanyCode,
		Code:           e.EmployeeCode,
		Name:           e.EmployeeName,
		OccupationName: e.OccupationName,
		Status:         employee.Status(e.EmployeeStatus),
		EmailAddress:   e.EmailAddress,
		PhoneNumber:    e.Phone,
		LastModified:   e.LastModified,
	}
}
