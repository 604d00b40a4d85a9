package handler

import (
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompatibilityHandler struct {
	uc usecase.CompatibilityUsecase
}

func NewCompatibilityHandler(uc usecase.CompatibilityUsecase) *CompatibilityHandler {
	return &CompatibilityHandler{uc: uc}
}

func (h *CompatibilityHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/compatibility/:a/:b", h.Compare)
}

func (h *CompatibilityHandler) Compare(c fiber.Ctx) error {
	aID, err := uuid.Parse(c.Params("a"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid person id", nil, err)
	}
	bID, err := uuid.Parse(c.Params("b"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid person id", nil, err)
	}

	res, err := h.uc.Compare(c.Context(), aID, bID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
