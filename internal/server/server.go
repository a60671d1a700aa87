package server

import (
	"context"
	"errors"
	"net"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/napkincalc/napkin/internal/calculation"
	"github.com/napkincalc/napkin/internal/config"
	"github.com/napkincalc/napkin/internal/domain"
)

const (
	maxBodySize     = 1 << 20
	scenarioTimeout = 10 * time.Second
)

// Server exposes the calculators as a small JSON API for form front ends.
type Server struct {
	engine  *calculation.CalculationEngine
	parser  *config.InputParser
	logger  *zap.Logger
	version string
	srv     *fasthttp.Server
}

// New builds a Server around engine. A nil logger disables request logging.
func New(engine *calculation.CalculationEngine, parser *config.InputParser, logger *zap.Logger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{engine: engine, parser: parser, logger: logger, version: version}
	s.srv = &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "napkin",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		MaxRequestBodySize: maxBodySize,
	}
	return s
}

// Handler routes requests to the endpoint handlers.
func (s *Server) Handler() fasthttp.RequestHandler {
	routes := map[string]fasthttp.RequestHandler{
		"/v1/projection": s.handleProjection,
		"/v1/compare":    s.handleCompare,
		"/v1/scenario":   s.handleScenario,
		"/v1/payroll":    s.handlePayroll,
	}
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		path := string(ctx.Path())
		switch h, ok := routes[path]; {
		case path == "/healthz":
			if !ctx.IsGet() {
				writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", "")
				break
			}
			writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok", Version: s.version})
		case !ok:
			writeError(ctx, fasthttp.StatusNotFound, "Not found", "")
		case !ctx.IsPost():
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", "")
		default:
			h(ctx)
		}
		s.logger.Info("request",
			zap.ByteString("method", ctx.Method()),
			zap.String("path", path),
			zap.Int("status", ctx.Response.StatusCode()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// ListenAndServe serves on addr until Shutdown is called.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	return s.srv.ListenAndServe(addr)
}

// Serve serves connections from ln until Shutdown is called.
func (s *Server) Serve(ln net.Listener) error {
	return s.srv.Serve(ln)
}

// Shutdown stops accepting connections and waits for open requests to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var req ProjectionRequest
	if !decode(ctx, &req) {
		return
	}
	in := req.input()
	realRate, err := calculation.RealRate(in.NominalGrowthRate, in.InflationRate)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	series, err := calculation.BuildSeries(in)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	resp := ProjectionResponse{RealRate: realRate, Series: series, FinalBalance: calculation.FinalBalance(series)}
	if req.Target != nil {
		goal := calculation.FindGoal(series, *req.Target)
		resp.Goal = &goal
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	var req CompareRequest
	if !decode(ctx, &req) {
		return
	}
	res, err := calculation.Compare(req.Base.input(), req.Enhanced.input(), req.Target)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, CompareResponse{res})
}

func (s *Server) handleScenario(ctx *fasthttp.RequestCtx) {
	var req ScenarioRequest
	if !decode(ctx, &req) {
		return
	}
	assumptions := domain.DefaultAssumptions()
	if req.Assumptions != nil {
		assumptions = *req.Assumptions
		if err := s.parser.ValidateAssumptions(assumptions); err != nil {
			s.fail(ctx, domain.PrefixField("assumptions", err))
			return
		}
	}
	if err := s.parser.ValidateScenario(&req.Scenario); err != nil {
		s.fail(ctx, domain.PrefixField("scenario", err))
		return
	}
	// RequestCtx is only a usable context.Context while owned by a running server.
	runCtx, cancel := context.WithTimeout(context.Background(), scenarioTimeout)
	defer cancel()
	summary, err := s.engine.RunScenario(runCtx, assumptions, &req.Scenario)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, summary)
}

func (s *Server) handlePayroll(ctx *fasthttp.RequestCtx) {
	var req PayrollRequest
	if !decode(ctx, &req) {
		return
	}
	pay, err := calculation.WeeklyPay(req.DailyHours, req.HourlyRate, req.Rule)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, pay)
}

func (r ProjectionRequest) input() domain.ProjectionInput {
	c := r.Contributions
	schedule := calculation.ConstantSchedule(c.Amount)
	if c.TransitionPeriod != nil {
		schedule = calculation.TransitionSchedule(*c.TransitionPeriod, c.Amount, c.AfterTransition)
	}
	if len(c.Overrides) > 0 {
		schedule = calculation.OverrideSchedule(c.Overrides, schedule)
	}
	return domain.ProjectionInput{
		CurrentPeriod:     r.CurrentPeriod,
		EndPeriod:         r.EndPeriod,
		StartingBalance:   r.StartingBalance,
		NominalGrowthRate: r.NominalGrowthRate,
		InflationRate:     r.InflationRate,
		Schedule:          schedule,
	}
}

// fail maps calculation errors onto status codes: 422 for input the
// calculators reject, 500 for anything else.
func (s *Server) fail(ctx *fasthttp.RequestCtx, err error) {
	var ie *domain.InvalidInputError
	if errors.As(err, &ie) {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error(), ie.Field)
		return
	}
	s.logger.Error("calculation failed", zap.String("path", string(ctx.Path())), zap.Error(err))
	writeError(ctx, fasthttp.StatusInternalServerError, "Internal error", "")
}

func decode(ctx *fasthttp.RequestCtx, v interface{}) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "Request body is required", "")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response", "")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message, field string) {
	data, _ := json.Marshal(ErrorResponse{Status: status, Message: message, Field: field})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}
