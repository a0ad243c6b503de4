package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/registryv1"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
)

// CompanyGrpcHandler は CompanyService の gRPC 実装です。
type CompanyGrpcHandler struct {
	svc company.UseCase
}

var _ registryv1.CompanyServiceServer = (*CompanyGrpcHandler)(nil)

// NewCompanyGrpcHandler は CompanyGrpcHandler を生成します。
func NewCompanyGrpcHandler(svc company.UseCase) *CompanyGrpcHandler {
	return &CompanyGrpcHandler{svc: svc}
}

// ListCompanies は会社の一覧を取得します。
func (h *CompanyGrpcHandler) ListCompanies(ctx context.Context, req *registryv1.ListCompaniesRequest) (*registryv1.ListCompaniesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	infos, err := h.svc.GetAllCompanies(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	companies := make([]*registryv1.Company, 0, len(infos))
	for _, info := range infos {
		companies = append(companies, toProtoCompany(info))
	}
	return &registryv1.ListCompaniesResponse{Companies: companies}, nil
}

// GetCompany は会社コードで会社を取得します。
func (h *CompanyGrpcHandler) GetCompany(ctx context.Context, req *registryv1.GetCompanyRequest) (*registryv1.GetCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetCompanyByCode(ctx, req.CompanyCode)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &registryv1.GetCompanyResponse{Company: toProtoCompany(found)}, nil
}

// GetCompanyByName は会社名で会社を取得します。
func (h *CompanyGrpcHandler) GetCompanyByName(ctx context.Context, req *registryv1.GetCompanyByNameRequest) (*registryv1.GetCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetCompanyByName(ctx, req.CompanyName)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &registryv1.GetCompanyResponse{Company: toProtoCompany(found)}, nil
}

// CreateCompany は会社を作成します。
func (h *CompanyGrpcHandler) CreateCompany(ctx context.Context, req *registryv1.CreateCompanyRequest) (*registryv1.MutationResponse, error) {
	if req == nil || req.Company == nil {
		return nil, status.Error(codes.InvalidArgument, "company is required")
	}

	res, err := h.svc.CreateCompany(ctx, toDomainCompany(req.Company))
	if err != nil {
		return nil, toStatusError(err)
	}
	return toMutationResponse(res)
}

// UpdateCompany は会社情報を部分更新します。
func (h *CompanyGrpcHandler) UpdateCompany(ctx context.Context, req *registryv1.UpdateCompanyRequest) (*registryv1.MutationResponse, error) {
	if req == nil || req.Company == nil {
		return nil, status.Error(codes.InvalidArgument, "company is required")
	}

	res, err := h.svc.UpdateCompanyByCode(ctx, req.CompanyCode, toDomainCompany(req.Company))
	if err != nil {
		return nil, toStatusError(err)
	}
	return toMutationResponse(res)
}

// DeleteCompany は会社を削除します。
func (h *CompanyGrpcHandler) DeleteCompany(ctx context.Context, req *registryv1.DeleteCompanyRequest) (*registryv1.MutationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	res, err := h.svc.DeleteCompanyByCode(ctx, req.CompanyCode)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toMutationResponse(res)
}

func toProtoCompany(c *company.CompanyInfo) *registryv1.Company {
	if c == nil {
		return nil
	}
	return &registryv1.Company{
		Id:                   c.ID,
		SiteId:               c.SiteID,
		CompanyCode:          c.Code,
		CompanyName:          c.Name,
		AddressLine1:         c.AddressLine1,
		AddressLine2:         c.AddressLine2,
		AddressLine3:         c.AddressLine3,
		PostalZipCode:        c.PostalZipCode,
		Country:              c.Country,
		PhoneNumber:          c.PhoneNumber,
		FaxNumber:            c.FaxNumber,
		EquipmentCompanyCode: c.EquipmentCompanyCode,
		Status:               string(c.Status),
		LastModified:         c.LastModified,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func toDomainCompany(c *registryv1.Company) company.CompanyInfo {
	return company.CompanyInfo{
		SiteID:               c.SiteId,
		Code:                 c.CompanyCode,
		Name:                 c.CompanyName,
		AddressLine1:         c.AddressLine1,
		AddressLine2:         c.AddressLine2,
		AddressLine3:         c.AddressLine3,
		PostalZipCode:        c.PostalZipCode,
		Country:              c.Country,
		PhoneNumber:          c.PhoneNumber,
		FaxNumber:            c.FaxNumber,
		EquipmentCompanyCode: c.EquipmentCompanyCode,
		Status:               company.Status(c.Status),
		LastModified:         c.LastModified,
	}
}
