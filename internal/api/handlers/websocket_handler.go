package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/guide"
	"github.com/rightsguard/backend/internal/jurisdiction"
	"github.com/rightsguard/backend/internal/script"
	"github.com/rightsguard/backend/pkg/logger"
)

const wsRequestTimeout = 60 * time.Second

type wsRequest struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	Scenario string `json:"scenario"`
	Language string `json:"language"`
}

type WebSocketHandler struct {
	guides  *GuideHandler
	scripts *script.Generator
}

func NewWebSocketHandler(guides *GuideHandler, scripts *script.Generator) *WebSocketHandler {
	return &WebSocketHandler{
		guides:  guides,
		scripts: scripts,
	}
}

// Upgrade rejects requests that are not WebSocket handshakes.
func (h *WebSocketHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg wsRequest
		if err := c.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket read ended", zap.Error(err))
			break
		}

		ctx, cancel := context.WithTimeout(context.Background(), wsRequestTimeout)
		err := h.dispatch(ctx, msg, c.WriteJSON)
		cancel()
		if err != nil {
			logger.Error("Failed to write WebSocket message", zap.Error(err))
			break
		}
	}
}

// dispatch answers one request, writing each reply through send.
func (h *WebSocketHandler) dispatch(ctx context.Context, msg wsRequest, send func(any) error) error {
	switch msg.Type {
	case "guide":
		return h.streamGuide(ctx, msg.Code, send)
	case "script":
		scenario := script.Scenario(msg.Scenario)
		if !scenario.Valid() {
			return sendError(send, "Unknown scenario")
		}
		return send(fiber.Map{
			"type":   "script",
			"script": h.scripts.GenerateScript(ctx, scenario, script.ParseLanguage(msg.Language)),
		})
	default:
		return sendError(send, "Unsupported message type")
	}
}

func (h *WebSocketHandler) streamGuide(ctx context.Context, code string, send func(any) error) error {
	state := jurisdiction.Resolve(code)

	if err := send(fiber.Map{"type": "status", "content": "Generating guide for " + state.Name}); err != nil {
		return err
	}

	g, cached := h.guides.Load(ctx, state)

	for _, sec := range guide.AllSections {
		err := send(fiber.Map{
			"type":    "section",
			"section": sec.String(),
			"items":   g.Items(sec),
		})
		if err != nil {
			return err
		}
	}

	return send(fiber.Map{
		"type":             "complete",
		"jurisdictionCode": g.JurisdictionCode,
		"jurisdictionName": g.JurisdictionName,
		"generatedAt":      g.GeneratedAt,
		"cached":           cached,
	})
}

func sendError(send func(any) error, errorMsg string) error {
	return send(fiber.Map{
		"type":  "error",
		"error": errorMsg,
	})
}
