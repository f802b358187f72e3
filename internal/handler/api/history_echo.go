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

// History serves GET /api/history?symbol=X&days=N. The response shape
// ({ok, symbol, days, candles}) is an external contract and is not
// wrapped in the APIResponse envelope. Non-numeric days falls back to
// the default; out-of-range days is clamped, not rejected.
func (h *WatchEchoHandler) History(c echo.Context) error {
	symbol := c.QueryParam("symbol")
	days := xhttp.ParseIntDefault(c.QueryParam("days"), usecase.DefaultHistoryDays)

	res, err := h.history.Series(symbol, days)
	if err != nil {
		if errors.Is(err, usecase.ErrSymbolRequired) {
			return xhttp.OKErrorResponse(c, http.StatusBadRequest, "symbol query parameter is required")
		}
		h.logger.Error("history usecase error", xlogger.Error(err))
		return xhttp.OKErrorResponse(c, http.StatusInternalServerError, "internal error")
	}

	// output is recomputed deterministically per request; keep
	// intermediaries from holding a copy
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(http.StatusOK, models.HistoryResponse{
		OK:      true,
		Symbol:  res.Symbol,
		Days:    res.Days,
		Candles: res.Candles,
	})
}
