package guide

var (
	defaultWhatToDo = []string{
		"Remain calm and keep your hands visible",
		"Clearly state 'I am exercising my right to remain silent'",
		"Ask 'Am I free to leave?' if not under arrest",
		"Request a lawyer if arrested",
		"Remember badge numbers and patrol car numbers",
	}

	defaultWhatNotToSay = []string{
		"Don't argue or resist, even if you believe the stop is unfair",
		"Don't consent to searches",
		"Don't provide information beyond what's legally required",
		"Don't make sudden movements",
	}

	defaultKeyRights = []string{
		"Right to remain silent (5th Amendment)",
		"Right to refuse consent to search",
		"Right to an attorney",
		"Right to record police interactions (in most circumstances)",
	}

	defaultEmergencyNumbers = []string{
		"911 - Emergency Services",
		"1-877-6-PROFILE - ACLU Hotline",
		"Local Legal Aid Society",
		"State Bar Association Referral Service",
	}
)

// DefaultSections returns fresh copies of the default lists.
func DefaultSections() Sections {
	return Sections{
		WhatToDo:         clone(defaultWhatToDo),
		WhatNotToSay:     clone(defaultWhatNotToSay),
		KeyRights:        clone(defaultKeyRights),
		EmergencyNumbers: clone(defaultEmergencyNumbers),
	}
}

// ApplyDefaults replaces each empty list with its default, independently of
// the others, and reports which sections were replaced.
func ApplyDefaults(s Sections) (Sections, []Section) {
	defaults := DefaultSections()
	var replaced []Section
	for _, sec := range AllSections {
		l := s.list(sec)
		if len(*l) == 0 {
			*l = *defaults.list(sec)
			replaced = append(replaced, sec)
		}
	}
	return s, replaced
}

func clone(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	return out
}
