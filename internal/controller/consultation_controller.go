package controller

import (
	"errors"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConsultationController interface {
	RegisterRoutes(r fiber.Router)
	Consult(ctx *fiber.Ctx) error
}

type consultationController struct {
	service service.IConsultationService
	jwt     *serverutils.JWTManager
}

func NewConsultationController(service service.IConsultationService, jwt *serverutils.JWTManager) IConsultationController {
	return &consultationController{service: service, jwt: jwt}
}

func (c *consultationController) RegisterRoutes(r fiber.Router) {
	r.Post("/consultation", c.jwt.JwtMiddleware, serverutils.RequireRole(serverutils.RoleUser), c.Consult)
}

func (c *consultationController) Consult(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	var req dto.ConsultationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	res, err := c.service.Consult(ctx.UserContext(), userID, &req)
	switch {
	case err == nil:
		return ctx.JSON(serverutils.SuccessResponse("Consultation answered", res))

	// the client renders these bodies like a normal answer
	case errors.Is(err, service.ErrConfigurationMissing):
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(serverutils.ErrorResponseWithData(
			fiber.StatusServiceUnavailable,
			service.UnavailableMessage,
			dto.ConsultationFailure{
				Response:   service.UnavailableResponse,
				Citations:  []string{},
				Disclaimer: service.UnavailableDisclaimer,
			},
		))
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrNotFound):
		return writeError(ctx, err)
	}

	return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponseWithData(
		fiber.StatusInternalServerError,
		service.ProcessingFailedMessage,
		dto.ConsultationFailure{
			Response:   service.ProcessingFailedResponse,
			Citations:  []string{},
			Disclaimer: "",
		},
	))
}
