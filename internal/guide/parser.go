package guide

import (
	"strings"
)

type headerMarker struct {
	phrase  string
	section Section
}

// Checked in order; the first phrase contained in the lowercased line wins.
var headerMarkers = []headerMarker{
	{"what to do", WhatToDo},
	{"what you should do", WhatToDo},
	{"what not to say", WhatNotToSay},
	{"avoid saying", WhatNotToSay},
	{"key rights", KeyRights},
	{"constitutional rights", KeyRights},
	{"emergency numbers", EmergencyNumbers},
	{"important numbers", EmergencyNumbers},
}

// Parse splits a free-text completion into the four guide sections.
//
// The scan is sequential with no look-ahead. A line containing a marker
// phrase anywhere selects that section and is never stored, even when it
// also carries a bullet. Bulleted lines ("-", "•", "1.") are appended to
// the selected section with the marker stripped; everything else, and any
// bullet before the first header, is dropped. Sections may come back
// empty; see ApplyDefaults.
func Parse(text string) Sections {
	var (
		out     Sections
		current *[]string
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if sec, ok := headerSection(line); ok {
			current = out.list(sec)
			continue
		}

		item, ok := stripBullet(line)
		if !ok || item == "" || current == nil {
			continue
		}
		*current = append(*current, item)
	}

	return out
}

func headerSection(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, m := range headerMarkers {
		if strings.Contains(lower, m.phrase) {
			return m.section, true
		}
	}
	return 0, false
}

// stripBullet removes a leading "-", "•" or "<digits>." marker and reports
// whether one was present.
func stripBullet(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "-"):
		return strings.TrimSpace(strings.TrimPrefix(line, "-")), true
	case strings.HasPrefix(line, "•"):
		return strings.TrimSpace(strings.TrimPrefix(line, "•")), true
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits < len(line) && line[digits] == '.' {
		return strings.TrimSpace(line[digits+1:]), true
	}
	return "", false
}
