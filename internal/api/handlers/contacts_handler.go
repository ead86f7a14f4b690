package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/contacts"
	"github.com/rightsguard/backend/internal/storage/models"
	"github.com/rightsguard/backend/pkg/logger"
)

type ContactsHandler struct {
	contacts *contacts.Service
}

func NewContactsHandler(service *contacts.Service) *ContactsHandler {
	return &ContactsHandler{contacts: service}
}

func (h *ContactsHandler) ListContacts(c *fiber.Ctx) error {
	list, err := h.contacts.List(c.UserContext())
	if err != nil {
		logger.Error("Failed to load contacts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load contacts",
		})
	}

	userName, err := h.contacts.UserName(c.UserContext())
	if err != nil {
		logger.Error("Failed to load user name", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load contacts",
		})
	}

	return c.JSON(fiber.Map{
		"contacts": list,
		"defaults": contacts.DefaultContacts,
		"userName": userName,
	})
}

func (h *ContactsHandler) ReplaceContacts(c *fiber.Ctx) error {
	var req struct {
		Contacts []models.EmergencyContact `json:"contacts"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	saved, err := h.contacts.Replace(c.UserContext(), req.Contacts)
	if errors.Is(err, contacts.ErrInvalidContact) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		logger.Error("Failed to save contacts", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save contacts",
		})
	}

	return c.JSON(fiber.Map{"contacts": saved})
}

func (h *ContactsHandler) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		UserName string `json:"userName"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.contacts.SetUserName(c.UserContext(), req.UserName); err != nil {
		logger.Error("Failed to save profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	userName, err := h.contacts.UserName(c.UserContext())
	if err != nil {
		logger.Error("Failed to load user name", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.JSON(fiber.Map{"userName": userName})
}
