package domain

import (
	"regexp"
	"strings"
)

// Degree is a canonical degree-mention token.
type Degree string

const (
	DegreeBA  Degree = "BA"
	DegreeMA  Degree = "MA"
	DegreePhD Degree = "PhD"
)

// AllDegrees is the fixed vocabulary, in canonical order. Scoring iterates
// this slice rather than a map so contributions accumulate in a stable order.
var AllDegrees = []Degree{DegreeBA, DegreeMA, DegreePhD}

// CanonicalDegree maps a user-supplied token ("phd", "bs", "Masters") to the
// canonical vocabulary entry.
func CanonicalDegree(s string) (Degree, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ba", "bs", "bachelor", "bachelors", "undergraduate":
		return DegreeBA, true
	case "ma", "ms", "master", "masters", "graduate":
		return DegreeMA, true
	case "phd", "doctorate", "doctoral":
		return DegreePhD, true
	default:
		return "", false
	}
}

var (
	baPat = regexp.MustCompile(`(?i)\b(?:` +
		`b\.?a\.?|b\.?sc?\.?|b\.?s\.?e\.?|b\.?eng\.?|b\.?b\.?a\.?|bfa|bit` +
		`|bachelor'?s?` +
		`|undergrad(?:uate)?` +
		`|four[\s-]?year\s+degree|4[\s-]?year\s+degree` +
		`|university\s+degree` +
		`|degree\s+in\s+\w+` +
		`)\b`)

	maPat = regexp.MustCompile(`(?i)\b(?:` +
		`m\.?a\.?|m\.?sc?\.?|m\.?b\.?a\.?|m\.?s\.?e\.?|m\.?eng\.?|mph|mcs|mfa` +
		`|master'?s?` +
		`|graduate\s+degree|advanced\s+degree` +
		`|post-?graduate` +
		`)\b`)

	phdPat = regexp.MustCompile(`(?i)\b(?:` +
		`ph\.?d\.?|doctor(?:ate|al)|jd|md|edd|dphil` +
		`)\b`)
)

// ParseDegrees scans text for degree mentions against the fixed vocabulary.
// It runs once per record at ingestion; the result is cached on the record.
func ParseDegrees(text string) []Degree {
	// "BS/MS" style listings: treat the slash as a separator.
	clean := strings.ReplaceAll(text, "/", " ")

	var out []Degree
	if baPat.MatchString(clean) {
		out = append(out, DegreeBA)
	}
	if maPat.MatchString(clean) {
		out = append(out, DegreeMA)
	}
	if phdPat.MatchString(clean) {
		out = append(out, DegreePhD)
	}
	if out == nil {
		out = []Degree{}
	}
	return out
}
