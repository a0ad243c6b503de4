package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/handler"
	"github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/registryv1"
	"github.com/ogurasousui/codex-company-registry/internal/adapters/store/memory"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
	"github.com/ogurasousui/codex-company-registry/internal/core/retry"
	"github.com/ogurasousui/codex-company-registry/internal/platform/config"
)

func startBufconnServer(t *testing.T, logger *zap.Logger) *grpc.ClientConn {
	t.Helper()

	exec := retry.NewExecutor(retry.Policy{MaxRetries: 0, BaseDelay: time.Millisecond}, nil)
	companyStore := memory.NewStore(company.Accessor, func(c *company.Company) string { return c.ID }, memory.WithUniqueKey(company.UniqueKey))
	employeeStore := memory.NewStore(employee.Accessor, func(e *employee.Employee) string { return e.ID }, memory.WithUniqueKey(employee.UniqueKey))

	srv := New("bufnet",
		handler.NewCompanyGrpcHandler(company.NewService(company.NewStoreRepository(companyStore, exec, nil, nil, nil), nil, nil, nil)),
		handler.NewEmployeeGrpcHandler(employee.NewService(employee.NewStoreRepository(employeeStore, exec, nil, nil, nil), nil, nil, nil)),
		logger,
	)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		require.NoError(t, <-done)
	})
	return conn
}

func TestServer_CompanyRoundTrip(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	client := registryv1.NewCompanyServiceClient(startBufconnServer(t, zap.New(core)))
	ctx := context.Background()

	created, err := client.CreateCompany(ctx, &registryv1.CreateCompanyRequest{
		Company: &registryv1.Company{SiteId: "S1", CompanyCode: "C001", CompanyName: "Acme"},
	})
	require.NoError(t, err)
	assert.True(t, created.Result.IsSuccess)
	assert.Equal(t, "Company details saved successfully.", created.Result.Message)

	_, err = client.CreateCompany(ctx, &registryv1.CreateCompanyRequest{
		Company: &registryv1.Company{SiteId: "S1", CompanyCode: "C001", CompanyName: "Acme"},
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	got, err := client.GetCompany(ctx, &registryv1.GetCompanyRequest{CompanyCode: "C001"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company.CompanyName)
	assert.Equal(t, "active", got.Company.Status)
	assert.NotEmpty(t, got.Company.Id)

	updated, err := client.UpdateCompany(ctx, &registryv1.UpdateCompanyRequest{
		CompanyCode: "C001",
		Company:     &registryv1.Company{Country: "JP"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Company details updated successfully.", updated.Result.Message)

	list, err := client.ListCompanies(ctx, &registryv1.ListCompaniesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Companies, 1)
	assert.Equal(t, "JP", list.Companies[0].Country)

	_, err = client.DeleteCompany(ctx, &registryv1.DeleteCompanyRequest{CompanyCode: "C001"})
	require.NoError(t, err)

	_, err = client.GetCompany(ctx, &registryv1.GetCompanyRequest{CompanyCode: "C001"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.GetCompany(ctx, &registryv1.GetCompanyRequest{CompanyCode: "  "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	entries := logs.FilterMessage("grpc request").All()
	require.NotEmpty(t, entries)
	assert.Equal(t, "/company.v1.CompanyService/CreateCompany", entries[0].ContextMap()["method"])
	assert.Equal(t, "OK", entries[0].ContextMap()["code"])
	assert.Equal(t, 3, logs.FilterMessage("grpc request").FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestServer_EmployeeRoundTrip(t *testing.T) {
	t.Parallel()

	client := registryv1.NewEmployeeServiceClient(startBufconnServer(t, nil))
	ctx := context.Background()

	_, err := client.CreateEmployee(ctx, &registryv1.CreateEmployeeRequest{
		Employee: &registryv1.Employee{SiteId: "S1", CompanyCode: "C001", EmployeeCode: "E001", EmployeeName: "Taro", EmailAddress: "taro@example.com"},
	})
	require.NoError(t, err)

	got, err := client.GetEmployeeByName(ctx, &registryv1.GetEmployeeByNameRequest{EmployeeName: "Taro"})
	require.NoError(t, err)
	assert.Equal(t, "E001", got.Employee.EmployeeCode)
	assert.Equal(t, "taro@example.com", got.Employee.EmailAddress)

	res, err := client.UpdateEmployee(ctx, &registryv1.UpdateEmployeeRequest{
		EmployeeCode: "E001",
		Employee:     &registryv1.Employee{EmployeeName: "Taro"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Same employee details already exist.", res.Result.Message)

	_, err = client.DeleteEmployee(ctx, &registryv1.DeleteEmployeeRequest{EmployeeCode: "E404"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestHTTPServer_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewHTTP(config.HTTPConfig{ShutdownTimeout: time.Second}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String())
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
