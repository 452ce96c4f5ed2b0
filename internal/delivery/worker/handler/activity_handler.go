package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"doorstep/internal/delivery/api/response"
	"doorstep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler serves the feed of received wizard events
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// ListActivity handles GET /activity?record_id=&kind=&limit=
func (h *ActivityHandler) ListActivity(c echo.Context) error {
	query := usecase.ActivityQuery{
		RecordID: c.QueryParam("record_id"),
		Kind:     c.QueryParam("kind"),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "limit must be a non-negative integer")
		}
		query.Limit = limit
	}

	feed, err := h.activityUC.RecentActivity(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, feed)
}
