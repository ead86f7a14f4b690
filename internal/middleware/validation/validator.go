package validation

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/rightsguard/backend/pkg/logger"
)

var xssPattern = regexp.MustCompile(`(?i)(<script|<iframe|javascript:|onerror=|onload=|onclick=)`)

type Config struct {
	MaxTextLength int
	MaxContacts   int
	Logger        *zap.Logger
}

type location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

type contact struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`
}

// Middleware checks write requests for the contacts, profile, alert and
// incident routes before they reach their handlers.
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxTextLength <= 0 {
		cfg.MaxTextLength = 2000
	}
	if cfg.MaxContacts <= 0 {
		cfg.MaxContacts = 10
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		contentType := c.Get(fiber.HeaderContentType)
		if len(c.Body()) > 0 && !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"error": "Unsupported content type",
			})
		}

		var msg string
		path := strings.TrimSuffix(c.Path(), "/")
		switch {
		case strings.HasSuffix(path, "/contacts"):
			msg = validateContacts(c.Body(), cfg)
		case strings.HasSuffix(path, "/profile"):
			msg = validateProfile(c.Body(), cfg)
		case strings.HasSuffix(path, "/alerts"):
			msg = validateLocationBody(c.Body(), true)
		case strings.HasSuffix(path, "/incidents"):
			msg = validateLocationBody(c.Body(), false)
		case strings.HasSuffix(path, "/stop") && strings.Contains(path, "/incidents/"):
			msg = validateStop(c.Body(), cfg)
		}

		if msg != "" {
			cfg.Logger.Warn("Request rejected by validation",
				zap.String("ip", c.IP()),
				zap.String("path", c.Path()),
				zap.String("reason", msg),
			)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": msg,
			})
		}

		return c.Next()
	}
}

func validateContacts(body []byte, cfg Config) string {
	var req struct {
		Contacts []contact `json:"contacts"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid JSON format"
	}
	if len(req.Contacts) > cfg.MaxContacts {
		return "Too many contacts"
	}
	for _, ct := range req.Contacts {
		if len(ct.Name) > cfg.MaxTextLength || containsXSS(ct.Name) {
			return "Invalid contact name"
		}
		if ct.Email != "" && !strings.Contains(ct.Email, "@") {
			return "Invalid contact email"
		}
	}
	return ""
}

func validateProfile(body []byte, cfg Config) string {
	var req struct {
		UserName string `json:"userName"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid JSON format"
	}
	if len(req.UserName) > cfg.MaxTextLength || containsXSS(req.UserName) {
		return "Invalid user name"
	}
	return ""
}

func validateLocationBody(body []byte, required bool) string {
	var req struct {
		Location *location `json:"location"`
	}
	if len(body) == 0 {
		if required {
			return "Location is required"
		}
		return ""
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid JSON format"
	}
	if req.Location == nil {
		if required {
			return "Location is required"
		}
		return ""
	}
	return validateLocation(*req.Location)
}

func validateLocation(loc location) string {
	if loc.Latitude == nil || loc.Longitude == nil {
		return "Latitude and longitude are required"
	}
	if *loc.Latitude < -90 || *loc.Latitude > 90 {
		return "Latitude out of range"
	}
	if *loc.Longitude < -180 || *loc.Longitude > 180 {
		return "Longitude out of range"
	}
	if containsXSS(loc.Address) {
		return "Invalid address"
	}
	return ""
}

func validateStop(body []byte, cfg Config) string {
	if len(body) == 0 {
		return ""
	}

	var req struct {
		Notes        string `json:"notes"`
		RecordingURL string `json:"recordingUrl"`
		Type         string `json:"type"`
		Duration     int    `json:"duration"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return "Invalid JSON format"
	}
	if len(req.Notes) > cfg.MaxTextLength {
		return "Notes exceed maximum length"
	}
	if req.RecordingURL != "" && !isValidRecordingURL(req.RecordingURL) {
		return "Invalid recording URL"
	}
	if req.Type != "" && req.Type != "audio" && req.Type != "video" {
		return "Recording type must be audio or video"
	}
	if req.Duration < 0 {
		return "Duration must not be negative"
	}
	return ""
}

func containsXSS(input string) bool {
	return xssPattern.MatchString(input)
}

// isValidRecordingURL accepts remote uploads and browser object URLs.
func isValidRecordingURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "blob":
		return u.Opaque != "" || u.Path != ""
	default:
		return false
	}
}
