// Package script produces short de-escalation scripts for police
// interaction scenarios, falling back to fixed bilingual text when the
// completion service cannot supply one.
package script

import "strings"

type Scenario string

const (
	TrafficStop     Scenario = "traffic_stop"
	StreetEncounter Scenario = "street_encounter"
	HomeVisit       Scenario = "home_visit"
	General         Scenario = "general"
)

type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ScenarioInfo describes a scenario for display.
type ScenarioInfo struct {
	ID          Scenario `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

var scenarios = []ScenarioInfo{
	{TrafficStop, "Traffic Stop", "When pulled over by police while driving"},
	{StreetEncounter, "Street Encounter", "When approached by police on the street"},
	{HomeVisit, "Home Visit", "When police come to your home"},
	{General, "General Interaction", "General police interaction guidelines"},
}

func Scenarios() []ScenarioInfo {
	out := make([]ScenarioInfo, len(scenarios))
	copy(out, scenarios)
	return out
}

func (s Scenario) Valid() bool {
	switch s {
	case TrafficStop, StreetEncounter, HomeVisit, General:
		return true
	}
	return false
}

// Label is the human wording used in prompts, e.g. "traffic stop".
func (s Scenario) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

func (l Language) Valid() bool {
	return l == English || l == Spanish
}

// Name is the English name of the language, used in prompts.
func (l Language) Name() string {
	if l == Spanish {
		return "Spanish"
	}
	return "English"
}

// ParseLanguage maps a selector to a supported language; anything other
// than "es" is English.
func ParseLanguage(s string) Language {
	if Language(strings.ToLower(strings.TrimSpace(s))) == Spanish {
		return Spanish
	}
	return English
}

// Script is a generated or fallback script with its selectors.
type Script struct {
	Scenario Scenario `json:"scenario"`
	Language Language `json:"language"`
	Text     string   `json:"text"`
}
