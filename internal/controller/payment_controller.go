package controller

import (
	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/entity"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	UpgradePremium(ctx *fiber.Ctx) error
	RemoveAds(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
	jwt     *serverutils.JWTManager
}

func NewPaymentController(service service.IPaymentService, jwt *serverutils.JWTManager) IPaymentController {
	return &paymentController{service: service, jwt: jwt}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	userOnly := serverutils.RequireRole(serverutils.RoleUser)

	r.Post("/user/upgrade-premium", c.jwt.JwtMiddleware, userOnly, c.UpgradePremium)
	r.Post("/user/remove-ads", c.jwt.JwtMiddleware, userOnly, c.RemoveAds)

	// called by Midtrans; authenticated by the payload signature
	r.Post("/payment/webhook", c.Webhook)
}

func (c *paymentController) purchase(ctx *fiber.Ctx, t entity.PaymentType) error {
	userID, err := serverutils.SubjectID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Purchase(ctx.UserContext(), userID, t)
	if err != nil {
		return writeError(ctx, err)
	}

	msg := "Payment successful"
	if res.Status == string(entity.PaymentStatusPending) {
		msg = "Complete the payment to continue"
	}
	return ctx.JSON(serverutils.SuccessResponse(msg, res))
}

func (c *paymentController) UpgradePremium(ctx *fiber.Ctx) error {
	return c.purchase(ctx, entity.PaymentTypePremium)
}

func (c *paymentController) RemoveAds(ctx *fiber.Ctx) error {
	return c.purchase(ctx, entity.PaymentTypeRemoveAds)
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransNotification
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid notification payload")
	}

	if err := c.service.HandleNotification(ctx.UserContext(), &req); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}
