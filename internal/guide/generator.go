package guide

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rightsguard/backend/internal/llm"
	"github.com/rightsguard/backend/internal/metrics"
	"github.com/rightsguard/backend/pkg/logger"
)

const (
	guideTemperature = 0.3
	guideMaxTokens   = 1000
)

// BuildRequest returns the completion request for one jurisdiction.
func BuildRequest(code, name string) llm.CompletionRequest {
	system := fmt.Sprintf(`You are a legal expert specializing in civil rights and police interactions. Generate accurate, actionable legal guidance for %s (%s). Focus on practical advice that can help people stay safe during police encounters.`, name, code)

	user := fmt.Sprintf(`Generate a comprehensive rights guide for %s that includes:
1. What TO DO during police interactions (5-7 key points)
2. What NOT TO SAY (4-5 key points)
3. Key constitutional rights (4-5 rights)
4. Important emergency numbers specific to %s

Make the language clear, concise, and actionable. Focus on de-escalation and safety.`, name, name)

	return llm.CompletionRequest{
		SystemPrompt: system,
		UserPrompt:   user,
		Temperature:  guideTemperature,
		MaxTokens:    guideMaxTokens,
	}
}

type Generator struct {
	llm llm.Completer
	now func() time.Time
}

func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{
		llm: completer,
		now: time.Now,
	}
}

// WithClock overrides the timestamp source, for tests.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate returns a guide for the jurisdiction. It never fails: every list
// the completion does not supply is filled from the defaults.
func (g *Generator) Generate(ctx context.Context, code, name string) *Guide {
	start := time.Now()
	defer func() {
		metrics.GenerationDuration.WithLabelValues("guide").Observe(time.Since(start).Seconds())
	}()

	var parsed Sections
	if text, err := g.complete(ctx, code, name); err != nil {
		logger.Warn("Guide generation failed, using defaults",
			zap.String("jurisdiction", code),
			zap.Error(err),
		)
	} else {
		parsed = Parse(text)
	}

	sections, replaced := ApplyDefaults(parsed)
	for _, sec := range replaced {
		metrics.FallbackSections.WithLabelValues(sec.String()).Inc()
	}
	metrics.GenerationTotal.WithLabelValues("guide", outcome(len(replaced))).Inc()

	if len(replaced) > 0 {
		logger.Debug("Guide sections defaulted",
			zap.String("jurisdiction", code),
			zap.Int("sections", len(replaced)),
		)
	}

	return &Guide{
		JurisdictionCode: code,
		JurisdictionName: name,
		Sections:         sections,
		GeneratedAt:      g.now().UTC(),
		Defaulted:        replaced,
	}
}

func (g *Generator) complete(ctx context.Context, code, name string) (string, error) {
	if g.llm == nil {
		return "", llm.ErrEmptyCompletion
	}
	resp, err := g.llm.Complete(ctx, BuildRequest(code, name))
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", llm.ErrEmptyCompletion
	}
	return resp.Content, nil
}

func outcome(replaced int) string {
	switch replaced {
	case 0:
		return "generated"
	case len(AllSections):
		return "fallback"
	default:
		return "partial"
	}
}
