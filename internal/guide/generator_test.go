package guide

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rightsguard/backend/internal/llm"
)

var fixedNow = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func respond(text string) llm.CompleterFunc {
	return func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return &llm.CompletionResponse{Content: text}, nil
	}
}

func failing(err error) llm.CompleterFunc {
	return func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		return nil, err
	}
}

func newTestGenerator(c llm.Completer) *Generator {
	return NewGenerator(c).WithClock(func() time.Time { return fixedNow })
}

func assertTotal(t *testing.T, g *Guide) {
	t.Helper()
	for _, sec := range AllSections {
		assert.NotEmpty(t, g.Items(sec), sec.String())
	}
}

func TestGenerateIsTotal(t *testing.T) {
	completers := map[string]llm.Completer{
		"upstream error": failing(errors.New("connection refused")),
		"empty payload":  respond(""),
		"nil response": llm.CompleterFunc(func(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return nil, nil
		}),
		"unparsable": respond("I'm sorry, I can't help with that."),
		"well formed": respond("What to do\n- a\nWhat not to say\n- b\nKey rights\n- c\nEmergency numbers\n- d"),
		"no completer": nil,
	}

	for name, c := range completers {
		t.Run(name, func(t *testing.T) {
			var g *Generator
			if c == nil {
				g = newTestGenerator(nil)
			} else {
				g = newTestGenerator(c)
			}
			guide := g.Generate(context.Background(), "TX", "Texas")
			assertTotal(t, guide)
			assert.Equal(t, "TX", guide.JurisdictionCode)
			assert.Equal(t, "Texas", guide.JurisdictionName)
			assert.Equal(t, fixedNow, guide.GeneratedAt)
		})
	}
}

func TestGeneratePerSectionFallback(t *testing.T) {
	g := newTestGenerator(respond("What to do:\n1. Stay calm\n2. Keep hands visible"))

	guide := g.Generate(context.Background(), "CA", "California")
	defaults := DefaultSections()

	assert.Equal(t, []string{"Stay calm", "Keep hands visible"}, guide.WhatToDo)
	assert.Equal(t, defaults.WhatNotToSay, guide.WhatNotToSay)
	assert.Equal(t, defaults.KeyRights, guide.KeyRights)
	assert.Equal(t, defaults.EmergencyNumbers, guide.EmergencyNumbers)
}

func TestGenerateNoHeadersYieldsDefaults(t *testing.T) {
	g := newTestGenerator(respond("1. Remain calm\n2. Stay quiet"))

	guide := g.Generate(context.Background(), "CA", "California")

	assert.Equal(t, DefaultSections(), guide.Sections)
}

func TestGenerateUpstreamFailureYieldsDefaults(t *testing.T) {
	g := newTestGenerator(failing(context.DeadlineExceeded))

	guide := g.Generate(context.Background(), "NY", "New York")

	assert.Equal(t, DefaultSections(), guide.Sections)
	assert.Equal(t, "Remain calm and keep your hands visible", guide.WhatToDo[0])
	assert.Equal(t, "911 - Emergency Services", guide.EmergencyNumbers[0])
}

func TestGenerateSendsGuideRequest(t *testing.T) {
	var got llm.CompletionRequest
	g := newTestGenerator(llm.CompleterFunc(func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
		got = req
		return nil, errors.New("stop here")
	}))

	g.Generate(context.Background(), "OR", "Oregon")

	assert.Contains(t, got.SystemPrompt, "legal expert")
	assert.Contains(t, got.SystemPrompt, "Oregon (OR)")
	assert.Contains(t, got.UserPrompt, "What TO DO")
	assert.Contains(t, got.UserPrompt, "What NOT TO SAY")
	assert.Contains(t, got.UserPrompt, "Key constitutional rights")
	assert.Contains(t, got.UserPrompt, "emergency numbers specific to Oregon")
	assert.InDelta(t, 0.3, got.Temperature, 0.0001)
	assert.Equal(t, 1000, got.MaxTokens)
}

func TestDefaultsAreNotShared(t *testing.T) {
	g := newTestGenerator(failing(errors.New("down")))

	first := g.Generate(context.Background(), "CA", "California")
	first.WhatToDo[0] = "mutated"

	second := g.Generate(context.Background(), "CA", "California")
	require.NotEmpty(t, second.WhatToDo)
	assert.Equal(t, "Remain calm and keep your hands visible", second.WhatToDo[0])
}

func TestApplyDefaultsReportsReplacedSections(t *testing.T) {
	_, replaced := ApplyDefaults(Sections{KeyRights: []string{"x"}})

	assert.Equal(t, []Section{WhatToDo, WhatNotToSay, EmergencyNumbers}, replaced)
}

func TestGenerateRecordsDefaultedSections(t *testing.T) {
	g := newTestGenerator(respond("Key Rights:\n- Right to remain silent"))

	got := g.Generate(context.Background(), "NY", "New York")
	assert.Equal(t, []Section{WhatToDo, WhatNotToSay, EmergencyNumbers}, got.Defaulted)
	assert.False(t, got.Complete())

	down := newTestGenerator(failing(errors.New("down"))).Generate(context.Background(), "NY", "New York")
	assert.Equal(t, AllSections, down.Defaulted)
}

func TestGenerateCompleteGuideHasNoDefaultedSections(t *testing.T) {
	text := "What to do:\n- a\nWhat not to say:\n- b\nKey rights:\n- c\nEmergency numbers:\n- 911"
	got := newTestGenerator(respond(text)).Generate(context.Background(), "NY", "New York")

	assert.Empty(t, got.Defaulted)
	assert.True(t, got.Complete())
}

func TestDefaultedIsNotSerialised(t *testing.T) {
	got := newTestGenerator(failing(errors.New("down"))).Generate(context.Background(), "CA", "California")

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "efaulted")
}
