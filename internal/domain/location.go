package domain

import "strings"

// US state names to their 2-letter abbreviations.
var nameToAbbr = map[string]string{
	"alaska": "ak", "alabama": "al", "arkansas": "ar", "arizona": "az",
	"california": "ca", "colorado": "co", "connecticut": "ct",
	"district of columbia": "dc", "delaware": "de", "florida": "fl",
	"georgia": "ga", "hawaii": "hi", "iowa": "ia", "idaho": "id",
	"illinois": "il", "indiana": "in", "kansas": "ks", "kentucky": "ky",
	"louisiana": "la", "massachusetts": "ma", "maryland": "md", "maine": "me",
	"michigan": "mi", "minnesota": "mn", "missouri": "mo", "mississippi": "ms",
	"montana": "mt", "north carolina": "nc", "north dakota": "nd",
	"nebraska": "ne", "new hampshire": "nh", "new jersey": "nj",
	"new mexico": "nm", "nevada": "nv", "new york": "ny", "ohio": "oh",
	"oklahoma": "ok", "oregon": "or", "pennsylvania": "pa",
	"rhode island": "ri", "south carolina": "sc", "south dakota": "sd",
	"tennessee": "tn", "texas": "tx", "utah": "ut", "virginia": "va",
	"vermont": "vt", "washington": "wa", "wisconsin": "wi",
	"west virginia": "wv", "wyoming": "wy",
}

var abbrSet = func() map[string]bool {
	m := make(map[string]bool, len(nameToAbbr))
	for _, a := range nameToAbbr {
		m[a] = true
	}
	return m
}()

var usLookup = map[string]bool{
	"us": true, "usa": true, "united states": true,
	"united states of america": true,
}

// stateToken resolves a lowercased fragment to an uppercase state
// abbreviation. Accepts full names and abbreviations.
func stateToken(s string) (string, bool) {
	if a, ok := nameToAbbr[s]; ok {
		return strings.ToUpper(a), true
	}
	if abbrSet[s] {
		return strings.ToUpper(s), true
	}
	return "", false
}

// ParseState extracts a normalized US state token from free-text location
// strings like "San Jose, CA, USA", "California" or "Remote". Returns ""
// when no state can be resolved; all such records share one unranked tier.
func ParseState(loc string) string {
	parts := strings.Split(loc, ",")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	switch len(parts) {
	case 1:
		if tok, ok := stateToken(parts[0]); ok {
			return tok
		}
	case 2:
		// "City, State" or "State, Country".
		if usLookup[parts[1]] {
			if tok, ok := stateToken(parts[0]); ok {
				return tok
			}
			return ""
		}
		if tok, ok := stateToken(parts[1]); ok {
			return tok
		}
	default:
		if len(parts) >= 3 {
			// "City, State, Country".
			if tok, ok := stateToken(parts[1]); ok {
				return tok
			}
		}
	}
	return ""
}

// NormalizeRegion canonicalizes a configured location-priority entry: known
// state names/abbreviations become the state token, anything else is kept
// trimmed as written so non-US entries can still rank.
func NormalizeRegion(s string) string {
	if tok, ok := stateToken(strings.ToLower(strings.TrimSpace(s))); ok {
		return tok
	}
	return strings.TrimSpace(s)
}
