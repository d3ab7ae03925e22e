package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecosedes/facilities/internal/apiserver/database"
	"github.com/ecosedes/facilities/internal/apiserver/handler"
	"github.com/ecosedes/facilities/internal/apiserver/middleware"
	"github.com/ecosedes/facilities/internal/auth/jwt"
	"github.com/ecosedes/facilities/internal/common/config"
	"github.com/ecosedes/facilities/internal/i18n"
	"github.com/ecosedes/facilities/pkg/logger"
	"github.com/ecosedes/facilities/pkg/metrics"
	"github.com/ecosedes/facilities/pkg/trace"
	"github.com/ecosedes/facilities/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	configPath string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of apiserver",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("apiserver version %s\n", version.Full())
		},
	}

	rootCmd = &cobra.Command{
		Use:   "apiserver",
		Short: "Facilities API server",
		Long:  `Facilities API server exposes users, regions, centers, sites, rooms, devices, occupancy, energy costs and substations over HTTP`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", "apiserver.yaml", "path to configuration file")
	rootCmd.AddCommand(versionCmd)
}

func initLogger(cfg *config.APIServerConfig) *zap.Logger {
	lg, err := logger.NewLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return lg
}

func initDatabase(lg *zap.Logger, cfg *config.DatabaseConfig) database.Database {
	db, err := database.NewDatabase(cfg)
	if err != nil {
		lg.Fatal("Failed to initialize database", zap.String("type", cfg.Type), zap.Error(err))
	}
	return db
}

func initI18n(lg *zap.Logger, cfg *config.I18nConfig) {
	if err := i18n.InitTranslator(cfg.Path, cfg.DefaultLang); err != nil {
		lg.Fatal("Failed to initialize translations", zap.String("path", cfg.Path), zap.Error(err))
	}
}

// initJWT returns nil when no secret is configured, which leaves the API open.
func initJWT(lg *zap.Logger, cfg *config.JWTConfig) *jwt.Service {
	if cfg.SecretKey == "" {
		lg.Warn("JWT secret not set; login issues no token and write routes are unprotected")
		return nil
	}
	svc, err := jwt.NewService(*cfg)
	if err != nil {
		lg.Fatal("Failed to initialize JWT service", zap.Error(err))
	}
	return svc
}

func initTracing(ctx context.Context, lg *zap.Logger, cfg *trace.Config) func(context.Context) error {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }
	}
	shutdown, err := trace.InitTracing(ctx, cfg, lg)
	if err != nil {
		lg.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	return shutdown
}

func initMetrics(cfg *config.MetricsConfig) *metrics.Metrics {
	if !cfg.Enabled {
		return nil
	}
	return metrics.New(*cfg)
}

func initRouter(cfg *config.APIServerConfig, lg *zap.Logger, h *handler.Handler, m *metrics.Metrics, jwtService *jwt.Service) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Language(),
		middleware.Logger(lg),
		middleware.Recovery(lg),
		middleware.CORS(cfg.Server.CORSOrigins),
	)
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	if m != nil {
		r.Use(m.Middleware())
		r.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	r.GET("/", h.Welcome)
	r.GET("/healthz", h.Health)

	var guard gin.HandlerFunc
	if jwtService != nil {
		guard = middleware.JWTAuthMiddleware(jwtService)
	}
	h.RegisterRoutes(r.Group("/api"), guard)
	return r
}

func run() error {
	cfg, cfgPath, err := config.LoadConfig[config.APIServerConfig](configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", cfgPath, err)
	}
	if err := cfg.Validate(cfgPath); err != nil {
		return err
	}

	lg := initLogger(cfg)
	defer lg.Sync()
	lg.Info("Starting apiserver",
		zap.String("version", version.Full()),
		zap.String("config", cfgPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing := initTracing(ctx, lg, &cfg.Tracing)
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			lg.Warn("Failed to flush traces", zap.Error(err))
		}
	}()

	initI18n(lg, &cfg.I18n)

	db := initDatabase(lg, &cfg.Database)
	defer db.Close()

	jwtService := initJWT(lg, &cfg.JWT)
	m := initMetrics(&cfg.Metrics)
	h := handler.NewHandler(db, jwtService, m, lg)

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           initRouter(cfg, lg, h, m, jwtService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		lg.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
