// Package guide produces jurisdiction rights guides from a text-completion
// service. Generation never fails: an unreachable service or an unusable
// answer degrades, section by section, to fixed default guidance.
package guide

import "time"

// Section identifies one of the four lists of a guide.
type Section int

const (
	WhatToDo Section = iota
	WhatNotToSay
	KeyRights
	EmergencyNumbers
)

// AllSections lists the sections in display order.
var AllSections = []Section{WhatToDo, WhatNotToSay, KeyRights, EmergencyNumbers}

func (s Section) String() string {
	switch s {
	case WhatToDo:
		return "whatToDo"
	case WhatNotToSay:
		return "whatNotToSay"
	case KeyRights:
		return "keyRights"
	case EmergencyNumbers:
		return "emergencyNumbers"
	default:
		return "unknown"
	}
}

// Sections holds the four ordered lists of a guide.
type Sections struct {
	WhatToDo         []string `json:"whatToDo"`
	WhatNotToSay     []string `json:"whatNotToSay"`
	KeyRights        []string `json:"keyRights"`
	EmergencyNumbers []string `json:"emergencyNumbers"`
}

func (s *Sections) list(sec Section) *[]string {
	switch sec {
	case WhatToDo:
		return &s.WhatToDo
	case WhatNotToSay:
		return &s.WhatNotToSay
	case KeyRights:
		return &s.KeyRights
	case EmergencyNumbers:
		return &s.EmergencyNumbers
	default:
		return nil
	}
}

// Items returns the list for sec.
func (s Sections) Items(sec Section) []string {
	if l := s.list(sec); l != nil {
		return *l
	}
	return nil
}

// Guide is the rights guidance for one jurisdiction. It is immutable once
// returned by a Generator.
type Guide struct {
	JurisdictionCode string `json:"jurisdictionCode"`
	JurisdictionName string `json:"jurisdictionName"`
	Sections
	GeneratedAt time.Time `json:"generatedAt"`

	// Defaulted lists the sections filled from defaults rather than the
	// completion. It is not serialised.
	Defaulted []Section `json:"-"`
}

// Complete reports whether every section came from the completion.
func (g *Guide) Complete() bool {
	return len(g.Defaulted) == 0
}
