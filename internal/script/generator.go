package script

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
	scriptTemperature = 0.2
	scriptMaxTokens   = 200
)

const systemPrompt = `You are an expert in police de-escalation and civil rights. Generate calm, respectful scripts that help people assert their rights while maintaining safety during police interactions.`

func BuildRequest(scenario Scenario, language Language) llm.CompletionRequest {
	user := fmt.Sprintf(`Generate a de-escalation script for a %s scenario in %s. The script should:
1. Be respectful and non-confrontational
2. Clearly assert constitutional rights
3. Help de-escalate tension
4. Be easy to remember under stress
5. Be 2-3 sentences maximum

Focus on safety and legal protection.`, scenario.Label(), language.Name())

	return llm.CompletionRequest{
		SystemPrompt: systemPrompt,
		UserPrompt:   user,
		Temperature:  scriptTemperature,
		MaxTokens:    scriptMaxTokens,
	}
}

type Generator struct {
	llm llm.Completer
}

func NewGenerator(completer llm.Completer) *Generator {
	return &Generator{llm: completer}
}

// Generate returns the script text. Non-empty completion text is returned
// verbatim; any failure yields Fallback(language, scenario).
func (g *Generator) Generate(ctx context.Context, scenario Scenario, language Language) string {
	start := time.Now()
	defer func() {
		metrics.GenerationDuration.WithLabelValues("script").Observe(time.Since(start).Seconds())
	}()

	text, err := g.complete(ctx, scenario, language)
	if err != nil {
		logger.Warn("Script generation failed, using fallback",
			zap.String("scenario", string(scenario)),
			zap.String("language", string(language)),
			zap.Error(err),
		)
		metrics.GenerationTotal.WithLabelValues("script", "fallback").Inc()
		return Fallback(language, scenario)
	}

	metrics.GenerationTotal.WithLabelValues("script", "generated").Inc()
	return text
}

// GenerateScript wraps Generate with the selectors that produced it.
func (g *Generator) GenerateScript(ctx context.Context, scenario Scenario, language Language) Script {
	return Script{
		Scenario: scenario,
		Language: language,
		Text:     g.Generate(ctx, scenario, language),
	}
}

func (g *Generator) complete(ctx context.Context, scenario Scenario, language Language) (string, error) {
	if g.llm == nil {
		return "", llm.ErrEmptyCompletion
	}
	resp, err := g.llm.Complete(ctx, BuildRequest(scenario, language))
	if err != nil {
		return "", err
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", llm.ErrEmptyCompletion
	}
	return resp.Content, nil
}
