package session

import "strings"

// GuestName is the placeholder name the scheduler uses for unnamed walk-ins.
const GuestName = "게스트"

// IsGuestName reports whether a raw name follows the club's guest naming
// convention: the bare placeholder, the numbered form (게스트_1), or the short
// form (G1, G2, ...). Guests play in recorded matches but never appear in any
// statistic, ranking or highlight.
func IsGuestName(name string) bool {
	if name == GuestName {
		return true
	}
	if strings.HasPrefix(name, GuestName+"_") {
		return true
	}
	return strings.HasPrefix(name, "G")
}

// IsGuest prefers the roster's explicit guest flag when the name is rostered
// and falls back to the naming convention for unrostered walk-ins.
func IsGuest(name string, roster map[string]Player) bool {
	if p, ok := roster[name]; ok {
		return p.Guest
	}
	return IsGuestName(name)
}
