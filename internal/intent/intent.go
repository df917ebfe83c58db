package intent

import "strings"

// Intent is the classified purpose of a user's message in the menu flow.
type Intent int

const (
	Unknown Intent = iota
	PinReset
	GeneralQuery
	Contact
	Menu
)

// String returns the wire/logging name of the intent.
func (i Intent) String() string {
	switch i {
	case PinReset:
		return "pin_reset"
	case GeneralQuery:
		return "general_query"
	case Contact:
		return "contact"
	case Menu:
		return "menu"
	default:
		return "unknown"
	}
}

var (
	pinKeywords     = []string{"pin", "reset", "forgot", "change pin", "new pin", "code", "password"}
	contactKeywords = []string{"contact", "call", "phone number", "email", "speak to", "human", "agent", "customer service"}
	menuKeywords    = []string{"menu", "back", "start over", "home", "options"}
)

// Detect classifies raw user text. Numeric menu shortcuts take priority,
// then keyword sets in menu, pin, contact order. Anything else falls
// through to a general query so the oracle can handle it.
func Detect(input string) Intent {
	lower := strings.ToLower(strings.TrimSpace(input))

	switch lower {
	case "1", "1.", "1️⃣":
		return PinReset
	case "2", "2.", "2️⃣":
		return GeneralQuery
	case "3", "3.", "3️⃣":
		return Contact
	}

	if containsAny(lower, menuKeywords) {
		return Menu
	}
	if containsAny(lower, pinKeywords) {
		return PinReset
	}
	if containsAny(lower, contactKeywords) {
		return Contact
	}

	return GeneralQuery
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
