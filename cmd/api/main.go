package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/config"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/action"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
	appHTTP "github.com/cmlabs-hris/presence-bot-go/internal/handler/http"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/cache"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/cron"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/geo"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/presence-bot-go/internal/repository/memory"
	"github.com/cmlabs-hris/presence-bot-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/presence-bot-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/presence-bot-go/internal/service/employee"
	reportService "github.com/cmlabs-hris/presence-bot-go/internal/service/report"
	tardinessService "github.com/cmlabs-hris/presence-bot-go/internal/service/tardiness"
	"github.com/prometheus/client_golang/prometheus"
)

// repositories is the storage each driver provides
type repositories struct {
	tx            database.Transactor
	employees     employee.EmployeeRepository
	conversations employee.ConversationRepository
	actions       action.PendingActionRepository
	attendances   attendance.AttendanceRepository
	tardiness     tardiness.TardinessRepository
	close         func()
}

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Database.Driver, err)
	}
	defer repos.close()

	scheduler := cron.NewScheduler(logger)

	var reportCache cache.ReportCache
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer rdb.Close()
		reportCache = cache.NewRedisReportCache(rdb, cfg.Report.CacheTTL)
	} else {
		memoryCache := cache.NewMemoryReportCache(cfg.Report.CacheTTL)
		cron.NewReportCacheJobs(memoryCache, logger).RegisterJobs(scheduler, time.Minute)
		reportCache = memoryCache
	}

	loc := cfg.Location()
	m := metrics.New(prometheus.DefaultRegisterer)
	fence := geo.NewFence(cfg.Office.Latitude, cfg.Office.Longitude, cfg.Office.RadiusMeters)
	evaluator := tardinessService.NewEvaluator(loc, cfg.Attendance.LateThresholdMinutes, cfg.Attendance.DefaultStartTime)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	attendanceSvc := attendanceService.NewAttendanceService(
		repos.tx,
		repos.actions,
		repos.attendances,
		repos.tardiness,
		repos.employees,
		fence,
		evaluator,
		m,
	)
	employeeSvc := employeeService.NewEmployeeService(repos.tx, repos.employees, repos.conversations, loc)
	reportSvc := reportService.NewReportService(repos.employees, repos.tardiness, reportCache, m, loc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AdminUserID:    cfg.App.AdminUserID,
			AllowedOrigins: cfg.App.AllowedOrigins,
		},
		JWTService,
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc, loc),
		appHTTP.NewReportHandler(reportSvc),
	)

	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Server running",
		"addr", "http://localhost"+port,
		"storage", cfg.Database.Driver,
		"timezone", loc.String(),
		"radius_meters", cfg.Office.RadiusMeters,
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func openRepositories(ctx context.Context, cfg *config.Config) (*repositories, error) {
	if cfg.Database.Driver == config.StorageMemory {
		store := memory.NewStore()
		return &repositories{
			tx:            store.Transactor(),
			employees:     memory.NewEmployeeRepository(store),
			conversations: memory.NewConversationRepository(store),
			actions:       memory.NewPendingActionRepository(store),
			attendances:   memory.NewAttendanceRepository(store),
			tardiness:     memory.NewTardinessRepository(store),
			close:         func() {},
		}, nil
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &repositories{
		tx:            postgresql.NewTransactor(db),
		employees:     postgresql.NewEmployeeRepository(db),
		conversations: postgresql.NewConversationRepository(db),
		actions:       postgresql.NewPendingActionRepository(db),
		attendances:   postgresql.NewAttendanceRepository(db),
		tardiness:     postgresql.NewTardinessRepository(db),
		close:         db.Close,
	}, nil
}
