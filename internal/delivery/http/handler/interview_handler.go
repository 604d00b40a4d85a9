package handler

import (
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc usecase.InterviewUsecase
}

type submitTranscriptRequest struct {
	Transcript string `json:"transcript"`
}

func NewInterviewHandler(uc usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/people/:id/interview", h.Submit)
}

func (h *InterviewHandler) Submit(c fiber.Ctx) error {
	id, err := personIDParam(c)
	if err != nil {
		return err
	}

	var req submitTranscriptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.SubmitTranscript(c.Context(), id, req.Transcript)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"person_id": res.PersonID.String(),
		"karma":     res.Karma,
		"degraded":  res.Degraded,
	}
	msg := "Interview analyzed"
	if res.Degraded {
		msg = "Interview recorded, analysis pending"
	}
	return response.Success(c, fiber.StatusOK, msg, data)
}
