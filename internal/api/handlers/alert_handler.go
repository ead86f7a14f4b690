package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/alert"
	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
)

type AlertHandler struct {
	alerts *alert.Service
}

func NewAlertHandler(service *alert.Service) *AlertHandler {
	return &AlertHandler{alerts: service}
}

func (h *AlertHandler) SendAlert(c *fiber.Ctx) error {
	var req struct {
		Location models.Location `json:"location"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	a, err := h.alerts.Send(c.UserContext(), req.Location)
	if err != nil {
		logger.Error("Failed to send emergency alert", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send emergency alert",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *AlertHandler) ListAlerts(c *fiber.Ctx) error {
	alerts, err := h.alerts.List(c.UserContext())
	if err != nil {
		logger.Error("Failed to load alerts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load alerts",
		})
	}

	return c.JSON(fiber.Map{"alerts": alerts})
}
