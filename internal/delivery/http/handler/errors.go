package handler

import (
	"errors"

	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/pkg/response"
	"talent-pulse/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrPersonNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Person not found", nil, err)
	case errors.Is(err, usecase.ErrOrgNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Organization tree not found", nil, err)
	case errors.Is(err, usecase.ErrNoAssessment):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Person has no assessment yet", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
