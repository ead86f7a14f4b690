package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/guide"
	"github.com/rightsguard/backend/internal/jurisdiction"
	"github.com/rightsguard/backend/pkg/logger"
)

// GuideCache stores generated guides by jurisdiction code.
type GuideCache interface {
	GetGuide(ctx context.Context, jurisdictionCode string, dest any) (bool, error)
	SetGuide(ctx context.Context, jurisdictionCode string, guide any, ttl time.Duration) error
	InvalidateGuides(ctx context.Context) (int, error)
}

type GuideHandler struct {
	generator *guide.Generator
	cache     GuideCache
	ttl       time.Duration
}

// NewGuideHandler serves guides through cache when it is non-nil.
func NewGuideHandler(generator *guide.Generator, cache GuideCache, ttl time.Duration) *GuideHandler {
	return &GuideHandler{
		generator: generator,
		cache:     cache,
		ttl:       ttl,
	}
}

func (h *GuideHandler) GetGuide(c *fiber.Ctx) error {
	state := jurisdiction.Resolve(c.Params("code"))
	return h.respond(c, state)
}

// LocateGuide serves the guide for a state given by display name, as
// returned by reverse geocoding.
func (h *GuideHandler) LocateGuide(c *fiber.Ctx) error {
	code := jurisdiction.CodeForName(c.Query("state"))
	return h.respond(c, jurisdiction.Resolve(code))
}

func (h *GuideHandler) InvalidateCache(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"removed": 0})
	}

	removed, err := h.cache.InvalidateGuides(c.UserContext())
	if err != nil {
		logger.Error("Failed to invalidate guide cache", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to invalidate cache",
		})
	}

	return c.JSON(fiber.Map{"removed": removed})
}

func (h *GuideHandler) respond(c *fiber.Ctx, state jurisdiction.State) error {
	g, cached := h.Load(c.UserContext(), state)
	if cached {
		c.Set("X-Cache", "HIT")
	} else {
		c.Set("X-Cache", "MISS")
	}
	return c.JSON(g)
}

// Load returns the guide for state from cache or, failing that, from the
// generator. Only fully generated guides are cached. Cache errors are
// logged and otherwise ignored.
func (h *GuideHandler) Load(ctx context.Context, state jurisdiction.State) (*guide.Guide, bool) {
	if h.cache != nil {
		var cached guide.Guide
		found, err := h.cache.GetGuide(ctx, state.Code, &cached)
		if err != nil {
			logger.Warn("Guide cache read failed", zap.String("jurisdiction", state.Code), zap.Error(err))
		} else if found {
			return &cached, true
		}
	}

	g := h.generator.Generate(ctx, state.Code, state.Name)

	// Guides carrying default sections are served but not cached, so the
	// next request retries the completion.
	if h.cache != nil && g.Complete() {
		if err := h.cache.SetGuide(ctx, state.Code, g, h.ttl); err != nil {
			logger.Warn("Guide cache write failed", zap.String("jurisdiction", state.Code), zap.Error(err))
		}
	}

	return g, false
}
