package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/incident"
	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
)

const anonymousUser = "anonymous"

type IncidentHandler struct {
	incidents *incident.Service
}

func NewIncidentHandler(service *incident.Service) *IncidentHandler {
	return &IncidentHandler{incidents: service}
}

func (h *IncidentHandler) StartIncident(c *fiber.Ctx) error {
	var req struct {
		UserID   string          `json:"userId"`
		Location models.Location `json:"location"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	userID := req.UserID
	if userID == "" {
		userID = c.Get("X-User-ID", anonymousUser)
	}

	inc, err := h.incidents.Start(c.UserContext(), userID, req.Location)
	if err != nil {
		logger.Error("Failed to start incident", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start incident",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(inc)
}

func (h *IncidentHandler) StopIncident(c *fiber.Ctx) error {
	var req incident.StopRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	inc, rec, err := h.incidents.Stop(c.UserContext(), c.Params("id"), req)
	switch {
	case errors.Is(err, incident.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Incident not found",
		})
	case errors.Is(err, incident.ErrAlreadyCompleted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Incident already completed",
		})
	case err != nil:
		logger.Error("Failed to stop incident", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to stop incident",
		})
	}

	return c.JSON(fiber.Map{
		"incident":  inc,
		"recording": rec,
		"duration":  incident.FormatDuration(inc.StartTime, *inc.EndTime),
	})
}

func (h *IncidentHandler) ListIncidents(c *fiber.Ctx) error {
	incidents, err := h.incidents.List(c.UserContext())
	if err != nil {
		logger.Error("Failed to load incidents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load incidents",
		})
	}

	return c.JSON(fiber.Map{"incidents": incidents})
}

func (h *IncidentHandler) ListRecordings(c *fiber.Ctx) error {
	recordings, err := h.incidents.Recordings(c.UserContext())
	if err != nil {
		logger.Error("Failed to load recordings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load recordings",
		})
	}

	return c.JSON(fiber.Map{"recordings": recordings})
}
