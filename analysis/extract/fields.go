package extract

import (
	"regexp"
	"strings"
)

// Pair-splitting strategies shared by the experience and education
// extractors. Each strategy recognizes one line shape and splits it into
// (left, right); the callers decide which side is the organization and which
// is the role or degree.

var atRe = regexp.MustCompile(`(?i)\s+at\s+`)

// splitDash handles "Acme Corp - Software Engineer"
func splitDash(line string) (string, string, bool) {
	if !strings.Contains(line, " - ") {
		return "", "", false
	}
	parts := strings.SplitN(line, " - ", 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// splitAt handles "Software Engineer at Acme Corp"
func splitAt(line string) (string, string, bool) {
	loc := atRe.FindStringIndex(line)
	if loc == nil {
		return "", "", false
	}
	return strings.TrimSpace(line[:loc[0]]), strings.TrimSpace(line[loc[1]:]), true
}

// splitComma handles "Software Engineer, Acme Corp"
func splitComma(line string) (string, string, bool) {
	if !strings.Contains(line, ",") {
		return "", "", false
	}
	parts := strings.SplitN(line, ",", 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// Date ranges are matched in a fixed priority order; the first pattern that
// hits anywhere in the entry wins.
var dateRangeRes = []*regexp.Regexp{
	// MM/YYYY - MM/YYYY
	regexp.MustCompile(`(\d{1,2}/\d{4})\s*-\s*(\d{1,2}/\d{4}|(?i:present|current|now))`),
	// MM-YYYY - MM-YYYY
	regexp.MustCompile(`(\d{1,2}-\d{4})\s*-\s*(\d{1,2}-\d{4}|(?i:present|current|now))`),
	// YYYY - YYYY
	regexp.MustCompile(`(\d{4})\s*-\s*(\d{4}|(?i:present|current|now))`),
	// Month YYYY - Month YYYY
	regexp.MustCompile(`([A-Z][a-z]+\s+\d{4})\s*-\s*([A-Z][a-z]+\s+\d{4}|(?i:present|current|now))`),
}

// extractDates finds a start/end date range in an entry. Open-ended end
// tokens (present, current, now, any casing) normalize to the literal
// "Present".
func extractDates(entry string) (string, string) {
	for _, re := range dateRangeRes {
		m := re.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		start, end := m[1], m[2]
		if strings.EqualFold(end, "present") || strings.EqualFold(end, "current") || strings.EqualFold(end, "now") {
			end = "Present"
		}
		return start, end
	}
	return "", ""
}

var entryLocationRes = []*regexp.Regexp{
	// City, State
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s+([A-Z]{2})`),
	// City, Country
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	// Location: City, State
	regexp.MustCompile(`Location:\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s+([A-Z]{2}|[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
}

// extractEntryLocation finds a "City, State" style location inside an entry
func extractEntryLocation(entry string) string {
	for _, re := range entryLocationRes {
		m := re.FindStringSubmatch(entry)
		if m == nil {
			continue
		}
		return m[1] + ", " + m[2]
	}
	return ""
}

var (
	numberedBulletRe = regexp.MustCompile(`^\d+\.`)
	bulletPrefixRe   = regexp.MustCompile(`^[•\-*]\s*|^\d+\.\s*`)
)

// isBulletLine reports whether a line is a bullet or numbered list item
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "*") ||
		numberedBulletRe.MatchString(line)
}

// stripBullet removes the leading bullet marker or list number
func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefixRe.ReplaceAllString(line, ""))
}

// headLines returns up to n leading lines of an entry, trimmed
func headLines(lines []string, n int) []string {
	if len(lines) < n {
		n = len(lines)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = strings.TrimSpace(lines[i])
	}
	return out
}
