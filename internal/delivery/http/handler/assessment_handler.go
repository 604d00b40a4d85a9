package handler

import (
	"talent-pulse/internal/delivery/http/dto"
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AssessmentHandler struct {
	uc usecase.AssessmentUsecase
}

type submitAssessmentRequest struct {
	SelectedItemIDs []string `json:"selected_item_ids"`
}

type submitClimateRequest struct {
	SectionAverages map[string]float64 `json:"section_averages"`
}

func NewAssessmentHandler(uc usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/assessment/questions", h.Questions)
	r.Post("/people/:id/assessment", h.Submit)
	r.Post("/people/:id/climate", h.SubmitClimate)
}

func (h *AssessmentHandler) Questions(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromBank(h.uc.Bank()))
}

func (h *AssessmentHandler) Submit(c fiber.Ctx) error {
	id, err := personIDParam(c)
	if err != nil {
		return err
	}

	var req submitAssessmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.Submit(c.Context(), id, req.SelectedItemIDs)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Assessment scored", dto.FromAssessmentResult(res))
}

func (h *AssessmentHandler) SubmitClimate(c fiber.Ctx) error {
	id, err := personIDParam(c)
	if err != nil {
		return err
	}

	var req submitClimateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SubmitClimate(c.Context(), id, req.SectionAverages); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Climate response recorded", nil)
}
