package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up.
//
// @Summary      Liveness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HealthDependenciesHandler serves the readiness probe. Redis is optional
// infrastructure (session persistence only), so a nil client reports the
// cache as disabled rather than failing the probe.
type HealthDependenciesHandler struct {
	rdb *redis.Client
}

func NewHealthDependenciesHandler(rdb *redis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{rdb: rdb}
}

// Readiness reports whether dependencies are reachable.
//
// @Summary      Readiness probe
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /health/ready [get]
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	deps := map[string]string{"status": "ok", "session_cache": "disabled"}

	if h.rdb != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.rdb.Ping(ctx).Err(); err != nil {
			deps["status"] = "degraded"
			deps["session_cache"] = "unreachable"
			return c.JSON(http.StatusServiceUnavailable, deps)
		}
		deps["session_cache"] = "ok"
	}

	return c.JSON(http.StatusOK, deps)
}
