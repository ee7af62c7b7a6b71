package handler

import (
	"errors"
	"strings"

	"samvidhan-be/internal/pkg/logger"
	"samvidhan-be/internal/pkg/serverutils"
	"samvidhan-be/internal/service"
	internalWS "samvidhan-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	service *service.NotificationService
	hub     *internalWS.Hub
	jwt     *serverutils.JWTManager
	logger  logger.ILogger
}

func NewNotificationHandler(service *service.NotificationService, hub *internalWS.Hub, jwt *serverutils.JWTManager, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		hub:     hub,
		jwt:     jwt,
		logger:  log,
	}
}

// ServeWs authenticates the handshake and upgrades it. Browsers cannot set
// headers on websocket requests, so the token may come as ?token=.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		if authHeader := c.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Missing token"))
	}

	claims, err := h.jwt.Parse(tokenStr)
	if err != nil {
		h.logger.Warn("NotificationHandler", "Invalid token in websocket handshake", nil)
		return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Invalid token"))
	}
	if claims.Role != serverutils.RoleUser && claims.Role != serverutils.RoleLawyer {
		return c.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, "Access denied"))
	}

	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeWs(h.hub, conn, claims.SubjectID, claims.Role)
	})(c)
}

func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	accountID, err := serverutils.SubjectID(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	notifications, total, err := h.service.GetNotifications(c.UserContext(), accountID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to load notifications"))
	}

	return c.JSON(serverutils.SuccessResponse("Notifications", fiber.Map{
		"notifications": notifications,
		"total":         total,
		"limit":         limit,
		"offset":        offset,
	}))
}

func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	accountID, err := serverutils.SubjectID(c)
	if err != nil {
		return err
	}

	count, err := h.service.GetUnreadCount(c.UserContext(), accountID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to count notifications"))
	}
	return c.JSON(serverutils.SuccessResponse("Unread count", fiber.Map{"count": count}))
}

func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	accountID, err := serverutils.SubjectID(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid notification id"))
	}

	if err := h.service.MarkAsRead(c.UserContext(), accountID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Notification not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update notification"))
	}
	return c.JSON(serverutils.SuccessResponse[any]("Notification marked as read", nil))
}

func (h *NotificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	accountID, err := serverutils.SubjectID(c)
	if err != nil {
		return err
	}
	if err := h.service.MarkAllAsRead(c.UserContext(), accountID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Failed to update notifications"))
	}
	return c.JSON(serverutils.SuccessResponse[any]("All notifications marked as read", nil))
}

func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	notif := router.Group("/notifications", h.jwt.JwtMiddleware)
	notif.Get("/", h.GetNotifications)
	notif.Get("/unread-count", h.GetUnreadCount)
	notif.Patch("/read-all", h.MarkAllAsRead)
	notif.Patch("/:id/read", h.MarkAsRead)

	router.Get("/ws", h.ServeWs)
}
