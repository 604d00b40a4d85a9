package handler

import (
	"talent-pulse/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	appName string
}

func NewHealthHandler(appName string) *HealthHandler {
	return &HealthHandler{appName: appName}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/healthz", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]string{
		"app":    h.appName,
		"status": "up",
	})
}
