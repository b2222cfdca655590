// Package api exposes the critical-value services over HTTP. Every
// endpoint is a stateless pass-through to a pure computation; the server
// holds no mutable state beyond its wiring.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"critval/adapters/htest"
	"critval/adapters/report"
	"critval/app"
	"critval/domain/critical"
	"critval/internal"
	"critval/internal/config"
	"critval/internal/errors"
)

// Server hosts the critical-value HTTP API
type Server struct {
	router *gin.Engine
	logger *internal.Logger
	svc    *app.CriticalService
	sweeps *app.SweepService
	cfg    *config.Config
}

// NewServer wires the services and routes
func NewServer(cfg *config.Config, logger *internal.Logger) *Server {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	gin.SetMode(cfg.Server.GinMode)

	defaults := critical.Options{
		Hypothesis: critical.Hypothesis(cfg.Defaults.Hypothesis),
		ConfLevel:  cfg.Defaults.ConfLevel,
	}

	s := &Server{
		router: gin.New(),
		logger: logger,
		svc:    app.NewCriticalService(logger, defaults),
		sweeps: app.NewSweepService(logger),
		cfg:    cfg,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

// Run starts the server on the configured port
func (s *Server) Run() error {
	s.logger.Info("starting critval API on port %s", s.cfg.Server.Port)
	return s.router.Run(":" + s.cfg.Server.Port)
}

// Router exposes the underlying engine for tests
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.router.Group("/v1")
	{
		crit := v1.Group("/critical")
		{
			crit.POST("/t1s", s.handleOneSample)
			crit.POST("/t2s", s.handleTwoSample)
			crit.POST("/t2sp", s.handlePaired)
			crit.POST("/cor", s.handleCorrelation)
			crit.POST("/coef", s.handleCoefficient)
		}
		v1.POST("/sweep", s.handleSweep)
		v1.POST("/report", s.handleReport)
	}
}

func (s *Server) handleOneSample(c *gin.Context) {
	var req OneSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	rec := req.record()
	in, err := htest.OneSampleInput(rec)
	if err != nil {
		s.renderError(c, err)
		return
	}

	res, err := s.svc.OneSample(in, rec.Overrides(req.toOptions()))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleTwoSample(c *gin.Context) {
	var req TwoSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	rec := req.record()
	in, err := htest.TwoSampleInput(rec)
	if err != nil {
		s.renderError(c, err)
		return
	}

	opts := rec.Overrides(req.toOptions())
	opts.EqualVariances = req.VarEqual

	res, err := s.svc.TwoSample(in, opts)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handlePaired(c *gin.Context) {
	var req PairedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	rec := req.record()
	in, err := htest.PairedInput(rec)
	if err != nil {
		s.renderError(c, err)
		return
	}

	res, err := s.svc.Paired(in, rec.Overrides(req.toOptions()))
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCorrelation(c *gin.Context) {
	var req CorrelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	in, err := htest.CorrelationInput(htest.Result{N1: req.N, R: req.R})
	if err != nil {
		s.renderError(c, err)
		return
	}

	opts := req.toOptions()
	opts.Test = critical.TestMethod(req.Test)
	opts.DF = req.DF

	res, err := s.svc.Correlation(in, opts)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleCoefficient(c *gin.Context) {
	var req CoefficientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	opts := req.toOptions()
	opts.Test = critical.TestMethod(req.Test)

	res, err := s.svc.Coefficient(critical.CoefficientInput{
		SEB: req.SEB, DF: req.DF, N: req.N, P: req.P,
	}, opts)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleSweep(c *gin.Context) {
	var req app.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	res, err := s.sweeps.Run(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) handleReport(c *gin.Context) {
	var req app.SweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.renderError(c, errors.InvalidInput(err.Error()))
		return
	}

	res, err := s.sweeps.Run(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", report.ToHTML(report.RenderSweep(res)))
}

func (s *Server) renderError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeInvalidArgument, errors.CodeInvalidInput:
		status = http.StatusBadRequest
	}

	s.logger.Warn("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(status, errorResponse{Code: code, Error: err.Error()})
}
