package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/puglisirhys-create/buyzone/internal/domain/models"
	"github.com/puglisirhys-create/buyzone/internal/usecase"
	xhttp "github.com/puglisirhys-create/buyzone/pkg/http"
	xlogger "github.com/puglisirhys-create/buyzone/pkg/logger"
)

// WatchEchoHandler implements the Echo-based HTTP surface: the
// watchlist REST routes and the public history endpoint.
type WatchEchoHandler struct {
	logger  *xlogger.Logger
	store   *usecase.WatchlistStore
	history *usecase.HistoryUseCase
}

func NewWatchEchoHandler(logger *xlogger.Logger, store *usecase.WatchlistStore, history *usecase.HistoryUseCase) *WatchEchoHandler {
	return &WatchEchoHandler{logger: logger, store: store, history: history}
}

func (h *WatchEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/watchlist", h.List)
	g.POST("/watchlist", h.Add)
	g.POST("/watchlist/refresh", h.Refresh)
	g.DELETE("/watchlist/:id", h.Remove)
	g.DELETE("/watchlist", h.Clear)
	g.GET("/history", h.History)

	e.GET("/healthz", h.Health)
}

func (h *WatchEchoHandler) List(c echo.Context) error {
	entries, status := h.store.List()
	return xhttp.SuccessResponse(c, models.WatchlistResponse{Entries: entries, Status: status})
}

func (h *WatchEchoHandler) Add(c echo.Context) error {
	req := &models.AddWatchRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	entry, created, err := h.store.Add(c.Request().Context(), req.Ticker, models.AssetType(req.Type), req.Note)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidTicker) || errors.Is(err, usecase.ErrInvalidType) {
			return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{
				Code:    "ERR_INVALID",
				Field:   "ticker",
				Message: err.Error(),
			}})
		}
		h.logger.Error("watchlist add error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	if created {
		return xhttp.CreatedResponse(c, entry)
	}
	// idempotent duplicate: existing entry, nothing changed
	return xhttp.SuccessResponse(c, entry)
}

func (h *WatchEchoHandler) Refresh(c echo.Context) error {
	entries := h.store.Refresh(c.Request().Context())
	_, status := h.store.List()
	return xhttp.SuccessResponse(c, models.WatchlistResponse{Entries: entries, Status: status})
}

func (h *WatchEchoHandler) Remove(c echo.Context) error {
	h.store.Remove(c.Request().Context(), c.Param("id"))
	return xhttp.NoContentResponse(c)
}

func (h *WatchEchoHandler) Clear(c echo.Context) error {
	h.store.Clear(c.Request().Context())
	return xhttp.NoContentResponse(c)
}

func (h *WatchEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
