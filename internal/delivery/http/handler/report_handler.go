package handler

import (
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ReportHandler struct {
	uc usecase.ReportUsecase
}

func NewReportHandler(uc usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/people/:id/report", h.Get)
}

func (h *ReportHandler) Get(c fiber.Ctx) error {
	id, err := personIDParam(c)
	if err != nil {
		return err
	}

	rep, err := h.uc.BuildReport(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rep)
}
