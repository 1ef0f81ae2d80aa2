package canon

import (
	"regexp"
	"strings"
)

var rePunct = regexp.MustCompile(`[^A-Za-z0-9\s]`)

// Key computes a stable identity for a street address so the same listing
// submitted twice (or re-imported from a feed) is recognized regardless of
// punctuation, casing, or suffix spelling.
func Key(address, city, state, zip string) string {
	a := strings.ToUpper(strings.TrimSpace(address))
	a = rePunct.ReplaceAllString(a, " ")
	a = abbreviateSuffix(a)
	a = collapseSpaces(a)

	c := collapseSpaces(rePunct.ReplaceAllString(strings.ToUpper(strings.TrimSpace(city)), " "))
	st := strings.ToUpper(strings.TrimSpace(state))
	z := trimZIP(zip)

	if a == "" && c == "" {
		return ""
	}
	return strings.ToLower(a + "|" + c + "|" + st + "|" + z)
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func trimZIP(z string) string {
	z = strings.TrimSpace(z)
	if len(z) >= 5 {
		return z[:5]
	}
	return z
}

func abbreviateSuffix(s string) string {
	// USPS-style suffix normalization
	repl := map[string]string{
		" STREET":    " ST",
		" ROAD":      " RD",
		" AVENUE":    " AVE",
		" BOULEVARD": " BLVD",
		" DRIVE":     " DR",
		" LANE":      " LN",
		" COURT":     " CT",
		" CIRCLE":    " CIR",
		" TERRACE":   " TER",
		" PLACE":     " PL",
		" PARKWAY":   " PKWY",
		" HIGHWAY":   " HWY",
	}
	out := s
	for k, v := range repl {
		out = strings.ReplaceAll(out, k, v)
	}
	return out
}
