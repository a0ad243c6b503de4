package registryv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/codec"
)

const (
	CompanyServiceName  = "company.v1.CompanyService"
	EmployeeServiceName = "employee.v1.EmployeeService"
)

// CompanyServiceServer は CompanyService のサーバー実装が満たすインターフェースです。
type CompanyServiceServer interface {
	ListCompanies(context.Context, *ListCompaniesRequest) (*ListCompaniesResponse, error)
	GetCompany(context.Context, *GetCompanyRequest) (*GetCompanyResponse, error)
	GetCompanyByName(context.Context, *GetCompanyByNameRequest) (*GetCompanyResponse, error)
	CreateCompany(context.Context, *CreateCompanyRequest) (*MutationResponse, error)
	UpdateCompany(context.Context, *UpdateCompanyRequest) (*MutationResponse, error)
	DeleteCompany(context.Context, *DeleteCompanyRequest) (*MutationResponse, error)
}

// EmployeeServiceServer は EmployeeService のサーバー実装が満たすインターフェースです。
type EmployeeServiceServer interface {
	ListEmployees(context.Context, *ListEmployeesRequest) (*ListEmployeesResponse, error)
	GetEmployee(context.Context, *GetEmployeeRequest) (*GetEmployeeResponse, error)
	GetEmployeeByName(context.Context, *GetEmployeeByNameRequest) (*GetEmployeeResponse, error)
	CreateEmployee(context.Context, *CreateEmployeeRequest) (*MutationResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*MutationResponse, error)
	DeleteEmployee(context.Context, *DeleteEmployeeRequest) (*MutationResponse, error)
}

// CompanyServiceDesc は CompanyService のサービス定義です。
var CompanyServiceDesc = grpc.ServiceDesc{
	ServiceName: CompanyServiceName,
	HandlerType: (*CompanyServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CompanyServiceName, "ListCompanies", CompanyServiceServer.ListCompanies),
		unary(CompanyServiceName, "GetCompany", CompanyServiceServer.GetCompany),
		unary(CompanyServiceName, "GetCompanyByName", CompanyServiceServer.GetCompanyByName),
		unary(CompanyServiceName, "CreateCompany", CompanyServiceServer.CreateCompany),
		unary(CompanyServiceName, "UpdateCompany", CompanyServiceServer.UpdateCompany),
		unary(CompanyServiceName, "DeleteCompany", CompanyServiceServer.DeleteCompany),
	},
	Metadata: "api/proto/company/v1/company.proto",
}

// EmployeeServiceDesc は EmployeeService のサービス定義です。
var EmployeeServiceDesc = grpc.ServiceDesc{
	ServiceName: EmployeeServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(EmployeeServiceName, "ListEmployees", EmployeeServiceServer.ListEmployees),
		unary(EmployeeServiceName, "GetEmployee", EmployeeServiceServer.GetEmployee),
		unary(EmployeeServiceName, "GetEmployeeByName", EmployeeServiceServer.GetEmployeeByName),
		unary(EmployeeServiceName, "CreateEmployee", EmployeeServiceServer.CreateEmployee),
		unary(EmployeeServiceName, "UpdateEmployee", EmployeeServiceServer.UpdateEmployee),
		unary(EmployeeServiceName, "DeleteEmployee", EmployeeServiceServer.DeleteEmployee),
	},
	Metadata: "api/proto/employee/v1/employee.proto",
}

// RegisterCompanyServiceServer は CompanyService を登録します。
func RegisterCompanyServiceServer(s grpc.ServiceRegistrar, srv CompanyServiceServer) {
	s.RegisterService(&CompanyServiceDesc, srv)
}

// RegisterEmployeeServiceServer は EmployeeService を登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeServiceDesc, srv)
}

func unary[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			impl := srv.(S)
			if interceptor == nil {
				return call(impl, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(impl, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, service, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, "/"+service+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
