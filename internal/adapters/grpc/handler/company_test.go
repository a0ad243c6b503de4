package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/registryv1"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	"github.com/ogurasousui/codex-company-registry/internal/core/result"
)

type stubCompanyUseCase struct {
	listOut []*company.CompanyInfo
	listErr error

	getCode string
	getName string
	getOut  *company.CompanyInfo
	getErr  error

	createInput company.CompanyInfo
	createOut   result.OperationResult
	createErr   error

	updateCode  string
	updateInput company.CompanyInfo
	updateOut   result.OperationResult
	updateErr   error

	deleteCode string
	deleteOut  result.OperationResult
	deleteErr  error
}

func (s *stubCompanyUseCase) GetAllCompanies(context.Context) ([]*company.CompanyInfo, error) {
	return s.listOut, s.listErr
}

func (s *stubCompanyUseCase) GetCompanyByCode(_ context.Context, code string) (*company.CompanyInfo, error) {
	s.getCode = code
	return s.getOut, s.getErr
}

func (s *stubCompanyUseCase) GetCompanyByName(_ context.Context, name string) (*company.CompanyInfo, error) {
	s.getName = name
	return s.getOut, s.getErr
}

func (s *stubCompanyUseCase) CreateCompany(_ context.Context, in company.CompanyInfo) (result.OperationResult, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubCompanyUseCase) UpdateCompanyByCode(_ context.Context, code string, in company.CompanyInfo) (result.OperationResult, error) {
	s.updateCode = code
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubCompanyUseCase) DeleteCompanyByCode(_ context.Context, code string) (result.OperationResult, error) {
	s.deleteCode = code
	return s.deleteOut, s.deleteErr
}

var handlerNow = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func TestCompanyGrpcHandler_CreateCompany(t *testing.T) {
	t.Parallel()

	stub := &stubCompanyUseCase{createOut: result.Succeeded("Company details saved successfully.", handlerNow)}
	handler := NewCompanyGrpcHandler(stub)

	resp, err := handler.CreateCompany(context.Background(), &registryv1.CreateCompanyRequest{
		Company: &registryv1.Company{SiteId: "S1", CompanyCode: "C001", CompanyName: "Acme", Status: "active"},
	})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}

	if stub.createInput.Code != "C001" || stub.createInput.SiteID != "S1" || stub.createInput.Status != company.StatusActive {
		t.Fatalf("expected inputs to be passed through, got %+v", stub.createInput)
	}
	if !resp.Result.IsSuccess || resp.Result.Message != "Company details saved successfully." {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
	if !resp.Result.Timestamp.Equal(handlerNow) {
		t.Fatalf("expected timestamp %v, got %v", handlerNow, resp.Result.Timestamp)
	}
}

func TestCompanyGrpcHandler_FailedResultMapping(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		res  result.OperationResult
		want codes.Code
	}{
		"conflict":      {res: result.Failed(result.ReasonConflict, "Company already found with the same company code.", handlerNow), want: codes.AlreadyExists},
		"not found":     {res: result.Failed(result.ReasonNotFound, "Company not found.", handlerNow), want: codes.NotFound},
		"write failure": {res: result.Failed(result.ReasonWriteFailed, "Failed to save company details.", handlerNow), want: codes.Internal},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := NewCompanyGrpcHandler(&stubCompanyUseCase{createOut: tc.res})
			_, err := handler.CreateCompany(context.Background(), &registryv1.CreateCompanyRequest{Company: &registryv1.Company{CompanyCode: "C001"}})

			st, _ := status.FromError(err)
			if st.Code() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, st.Code())
			}
			if st.Message() != tc.res.Message {
				t.Fatalf("expected message %q, got %q", tc.res.Message, st.Message())
			}
		})
	}
}

func TestCompanyGrpcHandler_GetCompany(t *testing.T) {
	t.Parallel()

	stub := &stubCompanyUseCase{getOut: &company.CompanyInfo{ID: "id-1", SiteID: "S1", Code: "C001", Name: "Acme", Status: company.StatusActive}}
	handler := NewCompanyGrpcHandler(stub)

	resp, err := handler.GetCompany(context.Background(), &registryv1.GetCompanyRequest{CompanyCode: "C001"})
	if err != nil {
		t.Fatalf("GetCompany returned error: %v", err)
	}
	if stub.getCode != "C001" {
		t.Fatalf("expected code to be passed through, got %s", stub.getCode)
	}
	if resp.Company.Id != "id-1" || resp.Company.CompanyName != "Acme" || resp.Company.Status != "active" {
		t.Fatalf("unexpected company: %+v", resp.Company)
	}

	resp, err = handler.GetCompanyByName(context.Background(), &registryv1.GetCompanyByNameRequest{CompanyName: "Acme"})
	if err != nil {
		t.Fatalf("GetCompanyByName returned error: %v", err)
	}
	if stub.getName != "Acme" || resp.Company.CompanyCode != "C001" {
		t.Fatalf("unexpected lookup by name: name=%s company=%+v", stub.getName, resp.Company)
	}
}

func TestCompanyGrpcHandler_ListCompanies(t *testing.T) {
	t.Parallel()

	stub := &stubCompanyUseCase{listOut: []*company.CompanyInfo{{Code: "C001"}, {Code: "C002"}}}
	handler := NewCompanyGrpcHandler(stub)

	resp, err := handler.ListCompanies(context.Background(), &registryv1.ListCompaniesRequest{})
	if err != nil {
		t.Fatalf("ListCompanies returned error: %v", err)
	}
	if len(resp.Companies) != 2 || resp.Companies[1].CompanyCode != "C002" {
		t.Fatalf("unexpected companies: %+v", resp.Companies)
	}
}

func TestCompanyGrpcHandler_UpdateCompany(t *testing.T) {
	t.Parallel()

	stub := &stubCompanyUseCase{updateOut: result.Succeeded("Company details updated successfully.", handlerNow)}
	handler := NewCompanyGrpcHandler(stub)

	resp, err := handler.UpdateCompany(context.Background(), &registryv1.UpdateCompanyRequest{
		CompanyCode: "C001",
		Company:     &registryv1.Company{CompanyName: "Renamed"},
	})
	if err != nil {
		t.Fatalf("UpdateCompany returned error: %v", err)
	}
	if stub.updateCode != "C001" || stub.updateInput.Name != "Renamed" {
		t.Fatalf("expected inputs to be passed through, code=%s input=%+v", stub.updateCode, stub.updateInput)
	}
	if resp.Result.Message != "Company details updated successfully." {
		t.Fatalf("unexpected message: %s", resp.Result.Message)
	}
}

func TestCompanyGrpcHandler_DeleteCompany(t *testing.T) {
	t.Parallel()

	stub := &stubCompanyUseCase{deleteOut: result.Succeeded("Company with code C001 was successfully deleted.", handlerNow)}
	handler := NewCompanyGrpcHandler(stub)

	resp, err := handler.DeleteCompany(context.Background(), &registryv1.DeleteCompanyRequest{CompanyCode: "C001"})
	if err != nil {
		t.Fatalf("DeleteCompany returned error: %v", err)
	}
	if stub.deleteCode != "C001" || !resp.Result.IsSuccess {
		t.Fatalf("unexpected delete: code=%s result=%+v", stub.deleteCode, resp.Result)
	}
}

func TestCompanyGrpcHandler_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want codes.Code
	}{
		"invalid code": {err: company.ErrInvalidCode, want: codes.InvalidArgument},
		"not found":    {err: company.ErrCompanyNotFound, want: codes.NotFound},
		"unexpected":   {err: errors.New("get company by code: connection reset"), want: codes.Internal},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			handler := NewCompanyGrpcHandler(&stubCompanyUseCase{getErr: tc.err})
			_, err := handler.GetCompany(context.Background(), &registryv1.GetCompanyRequest{CompanyCode: "C001"})
			if status.Code(err) != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, status.Code(err))
			}
		})
	}
}

func TestCompanyGrpcHandler_ValidatesNilRequest(t *testing.T) {
	t.Parallel()

	handler := NewCompanyGrpcHandler(&stubCompanyUseCase{})
	ctx := context.Background()

	if _, err := handler.ListCompanies(ctx, nil); !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument for list")
	}
	if _, err := handler.GetCompany(ctx, nil); !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument for get")
	}
	if _, err := handler.GetCompanyByName(ctx, nil); !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument for get by name")
	}
	if _, err := handler.CreateCompany(ctx, &registryv1.CreateCompanyRequest{}); !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument for create without company")
	}
	if _, err := handler.UpdateCompany(ctx, nil); !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument for update")
	}
	if _, err := handler.DeleteCompany(ctx, nil); !isInvalidArgument(err) {
		t.Fatalf("expected invalid argument for delete")
	}
}

func isInvalidArgument(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.InvalidArgument
}
