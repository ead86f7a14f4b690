package script

var fallbackScripts = map[Language]map[Scenario]string{
	English: {
		TrafficStop:     "Officer, I am exercising my right to remain silent. I do not consent to any searches. Am I free to leave?",
		StreetEncounter: "I am exercising my right to remain silent and do not consent to any searches. Am I being detained or am I free to go?",
		HomeVisit:       "I am exercising my right to remain silent. I do not consent to you entering my home without a warrant. Please show me the warrant.",
		General:         "I am respectfully exercising my right to remain silent. I do not consent to any searches. I would like to speak with an attorney.",
	},
	Spanish: {
		TrafficStop:     "Oficial, estoy ejerciendo mi derecho a permanecer en silencio. No consiento a ningún registro. ¿Soy libre de irme?",
		StreetEncounter: "Estoy ejerciendo mi derecho a permanecer en silencio y no consiento a ningún registro. ¿Estoy detenido o soy libre de irme?",
		HomeVisit:       "Estoy ejerciendo mi derecho a permanecer en silencio. No consiento que entre a mi casa sin una orden judicial. Por favor muéstreme la orden.",
		General:         "Respetuosamente estoy ejerciendo mi derecho a permanecer en silencio. No consiento a ningún registro. Me gustaría hablar con un abogado.",
	},
}

// Fallback returns the fixed script for the language and scenario. Unknown
// scenarios use the general script; unknown languages use English.
func Fallback(language Language, scenario Scenario) string {
	table, ok := fallbackScripts[language]
	if !ok {
		table = fallbackScripts[English]
	}
	if text, ok := table[scenario]; ok {
		return text
	}
	return table[General]
}
