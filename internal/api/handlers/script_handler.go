package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rightsguard/backend/internal/jurisdiction"
	"github.com/rightsguard/backend/internal/script"
)

type ScriptHandler struct {
	generator *script.Generator
}

func NewScriptHandler(generator *script.Generator) *ScriptHandler {
	return &ScriptHandler{generator: generator}
}

func (h *ScriptHandler) GetScript(c *fiber.Ctx) error {
	scenario := script.Scenario(c.Params("scenario"))
	if !scenario.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "Unknown scenario",
			"scenarios": script.Scenarios(),
		})
	}

	language := script.ParseLanguage(c.Query("lang"))
	return c.JSON(h.generator.GenerateScript(c.UserContext(), scenario, language))
}

func (h *ScriptHandler) ListScenarios(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"scenarios": script.Scenarios()})
}

func ListJurisdictions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"jurisdictions": jurisdiction.All(),
		"default":       jurisdiction.DefaultCode,
	})
}
