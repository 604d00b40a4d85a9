package handler

import (
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalyticsHandler struct {
	uc usecase.AnalyticsUsecase
}

type cultureRequest struct {
	DeclaredValues []string `json:"declared_values"`
}

func NewAnalyticsHandler(uc usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/analytics")
	grp.Post("/culture", h.Culture)
	grp.Get("/climate", h.ClimateGlobal)
	grp.Get("/climate/units", h.ClimateByUnit)
	grp.Get("/leadership", h.Leadership)
}

func (h *AnalyticsHandler) Culture(c fiber.Ctx) error {
	var req cultureRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	out, err := h.uc.Culture(c.Context(), req.DeclaredValues)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) ClimateGlobal(c fiber.Ctx) error {
	out, err := h.uc.ClimateGlobal(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	// out is nil when nobody answered the survey yet; the envelope
	// carries the null through to the client.
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) ClimateByUnit(c fiber.Ctx) error {
	out, err := h.uc.ClimateByUnit(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *AnalyticsHandler) Leadership(c fiber.Ctx) error {
	out, err := h.uc.Leadership(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
