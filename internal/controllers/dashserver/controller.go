// Package dashserver implements the HTTP dashboard controller. It is the
// UI layer over the internal/dashboard pipeline: it collects the current
// view parameters from each request, pushes them through the filter and
// the view model builder, and serves the result as JSON alongside the
// embedded web frontend.
package dashserver

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/aqdash-org/aqdash/internal/dashboard"
	"github.com/aqdash-org/aqdash/internal/log"
	"github.com/aqdash-org/aqdash/internal/types"
	"github.com/aqdash-org/aqdash/pkg/config"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Controller represents the dashboard server controller
type Controller struct {
	ctx      context.Context
	wg       *sync.WaitGroup
	httpCfg  config.HTTPData
	dashCfg  config.DashboardData
	Server   http.Server
	FS       fs.FS
	records  []types.Record
	logger   *zap.SugaredLogger
	handlers *Handlers
}

// NewController creates a new dashboard server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, cfgData *config.ConfigData, records []types.Record, logger *zap.SugaredLogger) (*Controller, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records loaded - the dashboard cannot start without its dataset")
	}

	ctrl := &Controller{
		ctx:     ctx,
		wg:      wg,
		httpCfg: cfgData.HTTP,
		dashCfg: cfgData.Dashboard,
		records: records,
		logger:  logger,
	}

	// If a listen address was not provided, listen on all interfaces
	if ctrl.httpCfg.ListenAddr == "" {
		logger.Info("http.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		ctrl.httpCfg.ListenAddr = "0.0.0.0"
	}

	// Set default HTTP port if not specified
	if ctrl.httpCfg.Port == 0 {
		logger.Info("http.port not provided; defaulting to 8080")
		ctrl.httpCfg.Port = 8080
	}

	if ctrl.dashCfg.Title == "" {
		ctrl.dashCfg.Title = "Air Quality Dashboard"
	}

	if ctrl.dashCfg.DefaultMode == "" {
		ctrl.dashCfg.DefaultMode = string(types.PlotTempVsOzone)
	}
	if _, err := types.ParsePlotMode(ctrl.dashCfg.DefaultMode); err != nil {
		return nil, fmt.Errorf("invalid dashboard.default_mode: %w", err)
	}

	if ctrl.dashCfg.TrendSpan == 0 {
		ctrl.dashCfg.TrendSpan = dashboard.DefaultTrendSpan
	}
	if ctrl.dashCfg.TrendSpan < 0 || ctrl.dashCfg.TrendSpan > 1 {
		return nil, fmt.Errorf("invalid dashboard.trend_span: %v (must be in (0,1])", ctrl.dashCfg.TrendSpan)
	}

	// Create handlers
	ctrl.handlers = NewHandlers(ctrl)

	// Set up embedded filesystem for assets
	ctrl.FS = GetAssets()

	// Set up router
	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", ctrl.httpCfg.ListenAddr, ctrl.httpCfg.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the dashboard server
func (c *Controller) StartController() error {
	log.Info("Starting dashboard server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("dashboard server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the dashboard server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.Use(c.requestLogger)

	// API endpoints
	router.HandleFunc("/api/view", c.handlers.GetView)
	router.HandleFunc("/api/records", c.handlers.GetRecords)
	router.HandleFunc("/api/health", c.handlers.GetHealth)

	// Template endpoint
	router.HandleFunc("/", c.handlers.ServeIndexTemplate)

	// Static file serving
	router.PathPrefix("/").Handler(http.FileServer(http.FS(c.FS)))

	return router
}
