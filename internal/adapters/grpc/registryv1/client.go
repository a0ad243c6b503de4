package registryv1

import (
	"context"

	"google.golang.org/grpc"
)

// CompanyServiceClient は CompanyService のクライアントです。
type CompanyServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCompanyServiceClient(cc grpc.ClientConnInterface) *CompanyServiceClient {
	return &CompanyServiceClient{cc: cc}
}

func (c *CompanyServiceClient) ListCompanies(ctx context.Context, in *ListCompaniesRequest, opts ...grpc.CallOption) (*ListCompaniesResponse, error) {
	return invoke[ListCompaniesRequest, ListCompaniesResponse](ctx, c.cc, CompanyServiceName, "ListCompanies", in, opts)
}

func (c *CompanyServiceClient) GetCompany(ctx context.Context, in *GetCompanyRequest, opts ...grpc.CallOption) (*GetCompanyResponse, error) {
	return invoke[GetCompanyRequest, GetCompanyResponse](ctx, c.cc, CompanyServiceName, "GetCompany", in, opts)
}

func (c *CompanyServiceClient) GetCompanyByName(ctx context.Context, in *GetCompanyByNameRequest, opts ...grpc.CallOption) (*GetCompanyResponse, error) {
	return invoke[GetCompanyByNameRequest, GetCompanyResponse](ctx, c.cc, CompanyServiceName, "GetCompanyByName", in, opts)
}

func (c *CompanyServiceClient) CreateCompany(ctx context.Context, in *CreateCompanyRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[CreateCompanyRequest, MutationResponse](ctx, c.cc, CompanyServiceName, "CreateCompany", in, opts)
}

func (c *CompanyServiceClient) UpdateCompany(ctx context.Context, in *UpdateCompanyRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[UpdateCompanyRequest, MutationResponse](ctx, c.cc, CompanyServiceName, "UpdateCompany", in, opts)
}

func (c *CompanyServiceClient) DeleteCompany(ctx context.Context, in *DeleteCompanyRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[DeleteCompanyRequest, MutationResponse](ctx, c.cc, CompanyServiceName, "DeleteCompany", in, opts)
}

// EmployeeServiceClient は EmployeeService のクライアントです。
type EmployeeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEmployeeServiceClient(cc grpc.ClientConnInterface) *EmployeeServiceClient {
	return &EmployeeServiceClient{cc: cc}
}

func (c *EmployeeServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	return invoke[ListEmployeesRequest, ListEmployeesResponse](ctx, c.cc, EmployeeServiceName, "ListEmployees", in, opts)
}

func (c *EmployeeServiceClient) GetEmployee(ctx context.Context, in *GetEmployeeRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error) {
	return invoke[GetEmployeeRequest, GetEmployeeResponse](ctx, c.cc, EmployeeServiceName, "GetEmployee", in, opts)
}

func (c *EmployeeServiceClient) GetEmployeeByName(ctx context.Context, in *GetEmployeeByNameRequest, opts ...grpc.CallOption) (*GetEmployeeResponse, error) {
	return invoke[GetEmployeeByNameRequest, GetEmployeeResponse](ctx, c.cc, EmployeeServiceName, "GetEmployeeByName", in, opts)
}

func (c *EmployeeServiceClient) CreateEmployee(ctx context.Context, in *CreateEmployeeRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[CreateEmployeeRequest, MutationResponse](ctx, c.cc, EmployeeServiceName, "CreateEmployee", in, opts)
}

func (c *EmployeeServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[UpdateEmployeeRequest, MutationResponse](ctx, c.cc, EmployeeServiceName, "UpdateEmployee", in, opts)
}

func (c *EmployeeServiceClient) DeleteEmployee(ctx context.Context, in *DeleteEmployeeRequest, opts ...grpc.CallOption) (*MutationResponse, error) {
	return invoke[DeleteEmployeeRequest, MutationResponse](ctx, c.cc, EmployeeServiceName, "DeleteEmployee", in, opts)
}
