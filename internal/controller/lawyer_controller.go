package controller

import (
	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILawyerController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	GetMessages(ctx *fiber.Ctx) error
	Reply(ctx *fiber.Ctx) error
	Directory(ctx *fiber.Ctx) error
}

type lawyerController struct {
	service service.ILawyerService
	jwt     *serverutils.JWTManager
}

func NewLawyerController(service service.ILawyerService, jwt *serverutils.JWTManager) ILawyerController {
	return &lawyerController{service: service, jwt: jwt}
}

func (c *lawyerController) RegisterRoutes(r fiber.Router) {
	lawyerOnly := serverutils.RequireRole(serverutils.RoleLawyer)

	h := r.Group("/lawyer")
	h.Get("/profile", c.jwt.JwtMiddleware, lawyerOnly, c.GetProfile)
	h.Put("/profile", c.jwt.JwtMiddleware, lawyerOnly, c.UpdateProfile)
	h.Get("/messages", c.jwt.JwtMiddleware, lawyerOnly, c.GetMessages)
	h.Post("/reply", c.jwt.JwtMiddleware, lawyerOnly, c.Reply)

	r.Get("/lawyers", c.jwt.JwtMiddleware, c.Directory)
}

func (c *lawyerController) GetProfile(ctx *fiber.Ctx) error {
	lawyerID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetProfile(ctx.UserContext(), lawyerID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyer profile", res))
}

func (c *lawyerController) UpdateProfile(ctx *fiber.Ctx) error {
	lawyerID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateLawyerProfileRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.UserContext(), lawyerID, &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *lawyerController) GetMessages(ctx *fiber.Ctx) error {
	lawyerID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Messages(ctx.UserContext(), lawyerID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Conversations", res))
}

func (c *lawyerController) Reply(ctx *fiber.Ctx) error {
	lawyerID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}
	var req dto.LawyerReplyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Reply(ctx.UserContext(), lawyerID, &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Reply sent", res))
}

func (c *lawyerController) Directory(ctx *fiber.Ctx) error {
	res, err := c.service.Directory(ctx.UserContext(), ctx.Query("specialization"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyers", res))
}
