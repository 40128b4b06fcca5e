package handlers

import (
	"tienda/internal/cache"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports process liveness and Redis reachability.
type HealthHandler struct {
	cache *cache.Service
}

func NewHealthHandler(cache *cache.Service) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	redisStatus := "connected"
	if err := h.cache.HealthCheck(c.Context()); err != nil {
		redisStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"services": fiber.Map{
			"redis": redisStatus,
		},
	})
}
