package handler

import (
	"talent-pulse/internal/delivery/http/dto"
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type PersonHandler struct {
	uc usecase.PersonUsecase
}

type createPersonRequest struct {
	FullName     string `json:"full_name"`
	JobTitle     string `json:"job_title"`
	DepartmentID string `json:"department_id"`
}

func NewPersonHandler(uc usecase.PersonUsecase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

func (h *PersonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/:id", h.Get)
}

func (h *PersonHandler) List(c fiber.Ctx) error {
	people, err := h.uc.ListPeople(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPeople(people))
}

func (h *PersonHandler) Get(c fiber.Ctx) error {
	id, err := personIDParam(c)
	if err != nil {
		return err
	}

	p, err := h.uc.GetPerson(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPerson(p))
}

func (h *PersonHandler) Create(c fiber.Ctx) error {
	var req createPersonRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.CreatePersonInput{FullName: req.FullName, JobTitle: req.JobTitle}
	if req.DepartmentID != "" {
		depID, err := uuid.Parse(req.DepartmentID)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid department id", nil, err)
		}
		in.DepartmentID = &depID
	}

	id, err := h.uc.CreatePerson(c.Context(), in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, map[string]string{"id": id.String()})
}

func personIDParam(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid person id", nil, err)
	}
	return id, nil
}
