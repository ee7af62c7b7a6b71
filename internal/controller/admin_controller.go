package controller

import (
	"samvidhan-be/internal/dto"
	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListUsers(ctx *fiber.Ctx) error
	ListLawyers(ctx *fiber.Ctx) error
	PendingLawyers(ctx *fiber.Ctx) error
	ApproveLawyer(ctx *fiber.Ctx) error
	DeletionRequests(ctx *fiber.Ctx) error
	ApproveDeletion(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
	jwt     *serverutils.JWTManager
}

func NewAdminController(service service.IAdminService, jwt *serverutils.JWTManager) IAdminController {
	return &adminController{service: service, jwt: jwt}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	adminOnly := serverutils.RequireRole(serverutils.RoleAdmin)

	h := r.Group("/admin")
	h.Get("/users", c.jwt.JwtMiddleware, adminOnly, c.ListUsers)
	h.Get("/lawyers", c.jwt.JwtMiddleware, adminOnly, c.ListLawyers)
	h.Get("/pending-lawyers", c.jwt.JwtMiddleware, adminOnly, c.PendingLawyers)
	h.Post("/approve-lawyer/:id", c.jwt.JwtMiddleware, adminOnly, c.ApproveLawyer)
	h.Get("/deletion-requests", c.jwt.JwtMiddleware, adminOnly, c.DeletionRequests)
	h.Post("/approve-deletion/:id", c.jwt.JwtMiddleware, adminOnly, c.ApproveDeletion)
	h.Get("/logs", c.jwt.JwtMiddleware, adminOnly, c.GetLogs)
	h.Get("/logs/:id", c.jwt.JwtMiddleware, adminOnly, c.GetLogDetail)
}

func pathID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}

func (c *adminController) ListUsers(ctx *fiber.Ctx) error {
	limit, offset := page(ctx, 20)
	res, err := c.service.ListUsers(ctx.UserContext(), ctx.Query("search"), limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Users", res))
}

func (c *adminController) ListLawyers(ctx *fiber.Ctx) error {
	limit, offset := page(ctx, 20)
	res, err := c.service.ListLawyers(ctx.UserContext(), ctx.Query("search"), limit, offset)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Lawyers", res))
}

func (c *adminController) PendingLawyers(ctx *fiber.Ctx) error {
	res, err := c.service.PendingLawyers(ctx.UserContext())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Pending lawyers", res))
}

func (c *adminController) ApproveLawyer(ctx *fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.ApproveLawyer(ctx.UserContext(), id); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Lawyer approved", nil))
}

func (c *adminController) DeletionRequests(ctx *fiber.Ctx) error {
	res, err := c.service.DeletionRequests(ctx.UserContext())
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Deletion requests", res))
}

func (c *adminController) ApproveDeletion(ctx *fiber.Ctx) error {
	id, err := pathID(ctx)
	if err != nil {
		return err
	}
	var req dto.ApproveDeletionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.ApproveDeletion(ctx.UserContext(), id, req.Type); err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Account deleted", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	limit, offset := page(ctx, 50)
	res, err := c.service.GetLogs(ctx.UserContext(), logger.LogFilter{
		Level:  ctx.Query("level"),
		Module: ctx.Query("module"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	res, err := c.service.GetLogDetail(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Log detail", res))
}
