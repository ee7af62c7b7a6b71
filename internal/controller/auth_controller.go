package controller

import (
	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	SignupUser(ctx *fiber.Ctx) error
	VerifyUser(ctx *fiber.Ctx) error
	LoginUser(ctx *fiber.Ctx) error
	ForgotPassword(ctx *fiber.Ctx) error
	ResetPassword(ctx *fiber.Ctx) error
	SignupLawyer(ctx *fiber.Ctx) error
	VerifyLawyer(ctx *fiber.Ctx) error
	LoginLawyer(ctx *fiber.Ctx) error
	LoginAdmin(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	u := r.Group("/user")
	u.Post("/signup", c.SignupUser)
	u.Post("/verify-otp", c.VerifyUser)
	u.Post("/login", c.LoginUser)
	u.Post("/forgot-password", c.ForgotPassword)
	u.Post("/reset-password", c.ResetPassword)

	l := r.Group("/lawyer")
	l.Post("/signup", c.SignupLawyer)
	l.Post("/verify-otp", c.VerifyLawyer)
	l.Post("/login", c.LoginLawyer)

	r.Post("/admin/login", c.LoginAdmin)
}

func (c *authController) SignupUser(ctx *fiber.Ctx) error {
	var req dto.UserSignupRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SignupUser(ctx.UserContext(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Signup successful, verify the OTPs sent to you", res))
}

func (c *authController) VerifyUser(ctx *fiber.Ctx) error {
	var req dto.VerifyUserOTPRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.VerifyUser(ctx.UserContext(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Account verified", res))
}

func (c *authController) LoginUser(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.LoginUser(ctx.UserContext(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.ForgotPassword(ctx.UserContext(), &req); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset OTP sent", nil))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.ResetPassword(ctx.UserContext(), &req); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password reset successful", nil))
}

func (c *authController) SignupLawyer(ctx *fiber.Ctx) error {
	var req dto.LawyerSignupRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SignupLawyer(ctx.UserContext(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Signup successful, verify the OTPs sent to you", res))
}

func (c *authController) VerifyLawyer(ctx *fiber.Ctx) error {
	var req dto.VerifyLawyerOTPRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.VerifyLawyer(ctx.UserContext(), &req); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account verified, awaiting admin approval", nil))
}

func (c *authController) LoginLawyer(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.LoginLawyer(ctx.UserContext(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) LoginAdmin(ctx *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.LoginAdmin(ctx.UserContext(), &req)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}
