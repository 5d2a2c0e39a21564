package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	auditdomain "github.com/paydeck/paydeck/internal/audit/domain"
	"github.com/paydeck/paydeck/internal/config"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	obsmetrics "github.com/paydeck/paydeck/internal/observability/metrics"
	payrolldomain "github.com/paydeck/paydeck/internal/payroll/domain"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	reportingdomain "github.com/paydeck/paydeck/internal/reporting/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(httpMetrics)
}

type Server struct {
	engine      *gin.Engine
	log         *zap.Logger
	cfg         config.Config
	payrollSvc  payrolldomain.Service
	employeeSvc employeedomain.Service
	payRunSvc   payrundomain.Service
	reportSvc   reportingdomain.Service
	auditSvc    auditdomain.Service
	metrics     *obsmetrics.HTTPMetrics
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Log         *zap.Logger
	Cfg         config.Config
	PayrollSvc  payrolldomain.Service
	EmployeeSvc employeedomain.Service
	PayRunSvc   payrundomain.Service
	ReportSvc   reportingdomain.Service
	AuditSvc    auditdomain.Service
	Metrics     *obsmetrics.HTTPMetrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Gin,
		log:         p.Log.Named("http.server"),
		cfg:         p.Cfg,
		payrollSvc:  p.PayrollSvc,
		employeeSvc: p.EmployeeSvc,
		payRunSvc:   p.PayRunSvc,
		reportSvc:   p.ReportSvc,
		auditSvc:    p.AuditSvc,
		metrics:     p.Metrics,
	}

	s.registerAPIRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Payroll --------
	api.POST("/payroll/preview", s.PreviewPayroll)

	// -------- Employees --------
	api.GET("/employees", s.ListEmployees)
	api.POST("/employees", s.CreateEmployee)
	api.GET("/employees/:id", s.GetEmployeeByID)
	api.PATCH("/employees/:id", s.UpdateEmployee)
	api.DELETE("/employees/:id", s.DeleteEmployee)

	// -------- Pay runs --------
	api.POST("/employees/:id/payruns", s.CreatePayRun)
	api.GET("/employees/:id/payruns", s.ListPayRuns)
	api.GET("/payruns/:id", s.GetPayRunByID)

	// -------- Reports --------
	api.GET("/reports/period-summary", s.GetPeriodSummary)

	// -------- Audit --------
	api.GET("/audit-logs", s.ListAuditLogs)
}

func run(lc fx.Lifecycle, s *Server, log *zap.Logger, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: s.Engine(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
