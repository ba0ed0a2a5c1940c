package api

import (
	"encoding/json"
	"net/url"
	"time"

	"SquadPulse/internal/domain/models"
	drepo "SquadPulse/internal/domain/repository"
	"SquadPulse/internal/service/ratelimit"
	"SquadPulse/internal/stream"
	"SquadPulse/internal/usecase"
	xhttp "SquadPulse/pkg/http"
	xlogger "SquadPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Manual refresh budget per client IP.
const (
	refreshBurst     = 3.0
	refreshPerSecond = 0.5
)

// MonitorEchoHandler implements Echo-based HTTP handlers for the squad
// monitoring endpoints.
type MonitorEchoHandler struct {
	logger    *xlogger.Logger
	monitor   *usecase.SquadMonitor
	scheduler *usecase.CycleScheduler
	store     drepo.SnapshotStore
	hub       *stream.Hub
	limiter   *ratelimit.Limiter
}

func NewMonitorEchoHandler(
	logger *xlogger.Logger,
	monitor *usecase.SquadMonitor,
	scheduler *usecase.CycleScheduler,
	store drepo.SnapshotStore,
	hub *stream.Hub,
) *MonitorEchoHandler {
	return &MonitorEchoHandler{
		logger:    logger,
		monitor:   monitor,
		scheduler: scheduler,
		store:     store,
		hub:       hub,
		limiter:   ratelimit.New(),
	}
}

func (h *MonitorEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/squad", h.Squad)
	g.GET("/players/:id", h.Player)
	g.GET("/context", h.GetContext)
	g.PUT("/context", h.PutContext)
	g.POST("/refresh", h.Refresh)
	g.GET("/health", h.Health)

	e.GET("/ws", h.hub.Handle)
}

// Squad serves the latest snapshot straight from the cached bytes.
func (h *MonitorEchoHandler) Squad(c echo.Context) error {
	b, ok := h.store.LatestJSON()
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no snapshot yet"))
	}
	return xhttp.SuccessResponse(c, json.RawMessage(b))
}

// Player serves one row of the latest snapshot.
func (h *MonitorEchoHandler) Player(c echo.Context) error {
	req := &models.PlayerRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	// Player ids contain spaces, so the path segment arrives escaped.
	if id, err := url.PathUnescape(req.ID); err == nil {
		req.ID = id
	}

	snap, ok := h.store.Latest()
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no snapshot yet"))
	}
	for i := range snap.Players {
		if snap.Players[i].PlayerID == req.ID {
			return xhttp.SuccessResponse(c, snap.Players[i])
		}
	}
	return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("player '%s' not in squad", req.ID))
}

// GetContext returns the live match context.
func (h *MonitorEchoHandler) GetContext(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.monitor.Context().View())
}

// PutContext applies a partial context update. Changes take effect on the
// next cycle. RTP names that match no roster player are accepted and simply
// never fire.
func (h *MonitorEchoHandler) PutContext(c echo.Context) error {
	req := &models.ContextRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	mctx := h.monitor.Context()
	if req.FixtureCongestion != nil {
		mctx.FixtureCongestion = *req.FixtureCongestion
	}
	if req.DaysToMatch != nil {
		mctx.DaysToMatch = *req.DaysToMatch
	}
	if req.ReturnToPlayPlayers != nil {
		rtp := make(map[string]struct{}, len(req.ReturnToPlayPlayers))
		for _, id := range req.ReturnToPlayPlayers {
			rtp[id] = struct{}{}
		}
		mctx.ReturnToPlay = rtp
	}
	if req.Policy != "" {
		p, err := models.ParsePolicy(req.Policy)
		if err != nil {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
		}
		mctx.Policy = p
	}
	if req.RefreshIntervalSeconds != nil {
		mctx.RefreshInterval = time.Duration(*req.RefreshIntervalSeconds) * time.Second
	}

	h.monitor.SetContext(mctx)
	h.logger.Info("context updated",
		xlogger.Bool("congestion", mctx.FixtureCongestion),
		xlogger.Int("days_to_match", mctx.DaysToMatch),
		xlogger.String("policy", string(mctx.Policy)),
		xlogger.Int("rtp_players", len(mctx.ReturnToPlay)),
	)
	return xhttp.SuccessResponse(c, mctx.View())
}

// Refresh triggers an immediate cycle and returns the fresh snapshot.
func (h *MonitorEchoHandler) Refresh(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), refreshBurst, refreshPerSecond) {
		return xhttp.AppErrorResponse(c, xhttp.TooManyRequestsError("refresh budget exhausted"))
	}

	snap, err := h.scheduler.Trigger(c.Request().Context())
	if err != nil {
		h.logger.Error("manual refresh", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalError("refresh failed").WithError(err))
	}
	return xhttp.SuccessResponse(c, snap)
}

// Health reports liveness and cycle counters.
func (h *MonitorEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status": "ok",
		"cycle":  h.monitor.Cycle(),
		"state":  h.scheduler.State(),
		"squad":  len(h.monitor.Roster()),
	})
}
