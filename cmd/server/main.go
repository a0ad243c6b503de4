package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ogurasousui/codex-company-registry/internal/adapters/events/kafka"
	grpchandler "github.com/ogurasousui/codex-company-registry/internal/adapters/grpc/handler"
	httpapi "github.com/ogurasousui/codex-company-registry/internal/adapters/http"
	"github.com/ogurasousui/codex-company-registry/internal/adapters/http/request"
	"github.com/ogurasousui/codex-company-registry/internal/adapters/store/memory"
	pgstore "github.com/ogurasousui/codex-company-registry/internal/adapters/store/postgres"
	"github.com/ogurasousui/codex-company-registry/internal/core/company"
	"github.com/ogurasousui/codex-company-registry/internal/core/employee"
	"github.com/ogurasousui/codex-company-registry/internal/core/retry"
	"github.com/ogurasousui/codex-company-registry/internal/core/store"
	"github.com/ogurasousui/codex-company-registry/internal/platform/config"
	pg "github.com/ogurasousui/codex-company-registry/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-company-registry/internal/platform/logger"
	"github.com/ogurasousui/codex-company-registry/internal/platform/server"
)

type publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
	Close() error
}

type stores struct {
	companies store.Store[company.Company]
	employees store.Store[employee.Employee]
	tx        *pg.TransactionManager
	close     func()
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(config.PathFromEnv())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zl, syncLogger, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = syncLogger() }()

	st, err := openStores(ctx, cfg, zl.Named("postgres"))
	if err != nil {
		return err
	}
	defer st.close()

	events := newPublisher(cfg.Kafka, zl)
	defer func() {
		if err := events.Close(); err != nil {
			zl.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	exec := retry.NewExecutor(cfg.Retry.Policy(), zl.Named("retry"))

	// nil の *pg.TransactionManager をインターフェースに入れないよう分岐します。
	var companyTx company.TransactionManager
	var employeeTx employee.TransactionManager
	if st.tx != nil {
		companyTx, employeeTx = st.tx, st.tx
	}

	companySvc := company.NewService(
		company.NewStoreRepository(st.companies, exec, companyTx, nil, zl.Named("company")),
		events, nil, zl.Named("company"),
	)
	employeeSvc := employee.NewService(
		employee.NewStoreRepository(st.employees, exec, employeeTx, nil, zl.Named("employee")),
		events, nil, zl.Named("employee"),
	)

	grpcServer := server.New(cfg.Server.ListenAddr,
		grpchandler.NewCompanyGrpcHandler(companySvc),
		grpchandler.NewEmployeeGrpcHandler(employeeSvc),
		zl.Named("grpc"),
	)

	validate := request.NewValidator(nil)
	router := httpapi.NewRouter(cfg.HTTP.AllowedOrigins,
		httpapi.NewCompanyHandler(companySvc, validate),
		httpapi.NewEmployeeHandler(employeeSvc, validate),
		zl.Named("http"),
	)
	httpServer := server.NewHTTP(cfg.HTTP, router, zl.Named("http"))

	zl.Info("starting registry",
		zap.String("store", cfg.Store.Driver),
		zap.String("grpc_addr", cfg.Server.ListenAddr),
		zap.String("http_addr", cfg.HTTP.ListenAddr),
		zap.Bool("kafka", cfg.Kafka.Enabled),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return grpcServer.Run(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })
	return g.Wait()
}

func openStores(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*stores, error) {
	if cfg.Store.Driver != config.StoreDriverPostgres {
		return &stores{
			companies: memory.NewStore(company.Accessor, func(c *company.Company) string { return c.ID }, memory.WithUniqueKey(company.UniqueKey)),
			employees: memory.NewStore(employee.Accessor, func(e *employee.Employee) string { return e.ID }, memory.WithUniqueKey(employee.UniqueKey)),
			close:     func() {},
		}, nil
	}

	pool, err := pg.NewPool(ctx, cfg.Database, zl)
	if err != nil {
		return nil, fmt.Errorf("initialize database pool: %w", err)
	}
	tx, err := pg.NewTransactionManagerFromConfig(pool, cfg.Database)
	if err != nil {
		pool.Close()
		return nil, err
	}
	return &stores{
		companies: pgstore.NewCompanyStore(pool),
		employees: pgstore.NewEmployeeStore(pool),
		tx:        tx,
		close:     pool.Close,
	}, nil
}

func newPublisher(cfg config.KafkaConfig, zl *zap.Logger) publisher {
	if !cfg.Enabled {
		return kafka.NoopPublisher{}
	}
	return kafka.NewProducer(cfg, zl.Named("kafka"))
}
