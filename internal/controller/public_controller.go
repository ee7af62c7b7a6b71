package controller

import (
	"time"

	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPublicController interface {
	RegisterRoutes(r fiber.Router)
	Ads(ctx *fiber.Ctx) error
	Contact(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type publicController struct {
	ads     service.IAdService
	contact service.IContactService
}

func NewPublicController(ads service.IAdService, contact service.IContactService) IPublicController {
	return &publicController{ads: ads, contact: contact}
}

func (c *publicController) RegisterRoutes(r fiber.Router) {
	r.Get("/ads", c.Ads)
	r.Post("/contact", c.Contact)
	r.Get("/health", c.Health)
}

func (c *publicController) Ads(ctx *fiber.Ctx) error {
	res, err := c.ads.ActiveAds(ctx.UserContext())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Ads", res))
}

func (c *publicController) Contact(ctx *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.contact.Send(ctx.UserContext(), &req); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Message sent", nil))
}

func (c *publicController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{
		"status": "ok",
		"time":   time.Now().UTC(),
	}))
}
