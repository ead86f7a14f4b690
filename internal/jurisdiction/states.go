// Package jurisdiction holds the fixed table of supported US states.
package jurisdiction

import "strings"

type State struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DefaultCode is used whenever a code or name cannot be resolved.
const DefaultCode = "CA"

var states = []State{
	{"AL", "Alabama"},
	{"AK", "Alaska"},
	{"AZ", "Arizona"},
	{"AR", "Arkansas"},
	{"CA", "California"},
	{"CO", "Colorado"},
	{"CT", "Connecticut"},
	{"DE", "Delaware"},
	{"FL", "Florida"},
	{"GA", "Georgia"},
	{"HI", "Hawaii"},
	{"ID", "Idaho"},
	{"IL", "Illinois"},
	{"IN", "Indiana"},
	{"IA", "Iowa"},
	{"KS", "Kansas"},
	{"KY", "Kentucky"},
	{"LA", "Louisiana"},
	{"ME", "Maine"},
	{"MD", "Maryland"},
	{"MA", "Massachusetts"},
	{"MI", "Michigan"},
	{"MN", "Minnesota"},
	{"MS", "Mississippi"},
	{"MO", "Missouri"},
	{"MT", "Montana"},
	{"NE", "Nebraska"},
	{"NV", "Nevada"},
	{"NH", "New Hampshire"},
	{"NJ", "New Jersey"},
	{"NM", "New Mexico"},
	{"NY", "New York"},
	{"NC", "North Carolina"},
	{"ND", "North Dakota"},
	{"OH", "Ohio"},
	{"OK", "Oklahoma"},
	{"OR", "Oregon"},
	{"PA", "Pennsylvania"},
	{"RI", "Rhode Island"},
	{"SC", "South Carolina"},
	{"SD", "South Dakota"},
	{"TN", "Tennessee"},
	{"TX", "Texas"},
	{"UT", "Utah"},
	{"VT", "Vermont"},
	{"VA", "Virginia"},
	{"WA", "Washington"},
	{"WV", "West Virginia"},
	{"WI", "Wisconsin"},
	{"WY", "Wyoming"},
}

var byCode = func() map[string]State {
	m := make(map[string]State, len(states))
	for _, s := range states {
		m[s.Code] = s
	}
	return m
}()

// All returns the states in alphabetical order of name.
func All() []State {
	out := make([]State, len(states))
	copy(out, states)
	return out
}

func Lookup(code string) (State, bool) {
	s, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	return s, ok
}

// Resolve returns the state for code, or California when code is unknown.
func Resolve(code string) State {
	if s, ok := Lookup(code); ok {
		return s
	}
	return byCode[DefaultCode]
}

// CodeForName maps a display name such as a reverse-geocoded subdivision to
// its code, defaulting to California.
func CodeForName(name string) string {
	name = strings.TrimSpace(name)
	for _, s := range states {
		if strings.EqualFold(s.Name, name) {
			return s.Code
		}
	}
	return DefaultCode
}
