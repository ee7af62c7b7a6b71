package controller

import (
	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	UpdateProfile(ctx *fiber.Ctx) error
	RequestPasswordChange(ctx *fiber.Ctx) error
	VerifyPasswordChange(ctx *fiber.Ctx) error
	RequestDeletion(ctx *fiber.Ctx) error
	GiveConsent(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
	jwt     *serverutils.JWTManager
}

func NewUserController(service service.IUserService, jwt *serverutils.JWTManager) IUserController {
	return &userController{service: service, jwt: jwt}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	userOnly := serverutils.RequireRole(serverutils.RoleUser)

	h := r.Group("/user")
	h.Get("/profile", c.jwt.JwtMiddleware, userOnly, c.GetProfile)
	h.Put("/profile", c.jwt.JwtMiddleware, userOnly, c.UpdateProfile)
	h.Post("/change-password-request", c.jwt.JwtMiddleware, userOnly, c.RequestPasswordChange)
	h.Post("/change-password-verify", c.jwt.JwtMiddleware, userOnly, c.VerifyPasswordChange)
	h.Post("/request-deletion", c.jwt.JwtMiddleware, userOnly, c.RequestDeletion)
	h.Post("/consent", c.jwt.JwtMiddleware, userOnly, c.GiveConsent)
	h.Get("/chat-history", c.jwt.JwtMiddleware, userOnly, c.GetChatHistory)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetProfile(ctx.UserContext(), userID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("User profile", res))
}

func (c *userController) UpdateProfile(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.UserContext(), userID, &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *userController) RequestPasswordChange(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.RequestPasswordChange(ctx.UserContext(), userID)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("OTP sent to your email", res))
}

func (c *userController) VerifyPasswordChange(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordVerifyRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.VerifyPasswordChange(ctx.UserContext(), userID, &req); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed", nil))
}

func (c *userController) RequestDeletion(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.RequestDeletion(ctx.UserContext(), userID); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Deletion request submitted", nil))
}

func (c *userController) GiveConsent(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.GiveConsent(ctx.UserContext(), userID); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Consent recorded", nil))
}

func (c *userController) GetChatHistory(ctx *fiber.Ctx) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}
	limit, offset := page(ctx, 50)

	res, err := c.service.GetChatHistory(ctx.UserContext(), userID, limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat history", res))
}
