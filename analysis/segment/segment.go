// Package segment locates named sections in raw resume text and splits their
// bodies into discrete entries. Everything here is line-oriented heuristics:
// headers are matched against synonym sets, and section boundaries are
// guessed from capitalization and punctuation cues.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// Segmenter finds sections by scanning lines against header synonym sets
type Segmenter struct {
	headers map[string][]string
	common  map[string]struct{}
}

// NewSegmenter creates a segmenter for the given canonical-name -> synonyms
// mapping and the closed set of common header names that terminate any
// section.
func NewSegmenter(headers map[string][]string, commonHeaders []string) *Segmenter {
	common := make(map[string]struct{}, len(commonHeaders))
	for _, h := range commonHeaders {
		common[strings.ToLower(h)] = struct{}{}
	}
	return &Segmenter{headers: headers, common: common}
}

// Section extracts the body of the named section, or "" and false when the
// section is not present. The body runs from the line after the matched
// header to the first boundary line (see looksLikeBoundary) or end of text.
func (s *Segmenter) Section(text, name string) (string, bool) {
	return s.section(text, name, 0)
}

// SectionCapped behaves like Section but caps the body at maxLines when no
// boundary line is found before the end of text. Short sections such as the
// summary use this to avoid swallowing the rest of the document; the cap is
// a precision/recall tradeoff, not a hard guarantee.
func (s *Segmenter) SectionCapped(text, name string, maxLines int) (string, bool) {
	return s.section(text, name, maxLines)
}

func (s *Segmenter) section(text, name string, capLines int) (string, bool) {
	synonyms := s.headers[name]
	if len(synonyms) == 0 {
		return "", false
	}

	lines := strings.Split(text, "\n")
	start := -1
	end := -1

	for i, line := range lines {
		lower := strings.ToLower(strings.TrimSpace(line))

		if start == -1 {
			if matchesAny(lower, synonyms) {
				start = i + 1
			}
			continue
		}

		// First match wins; after the header is found we only look for
		// the boundary.
		if s.isBoundary(line, lower, name) {
			end = i
			break
		}
	}

	if start == -1 {
		return "", false
	}
	if end == -1 {
		end = len(lines)
		if capLines > 0 && start+capLines < end {
			end = start + capLines
		}
	}

	var body []string
	for _, line := range lines[start:end] {
		if strings.TrimSpace(line) != "" {
			body = append(body, line)
		}
	}
	if len(body) == 0 {
		return "", false
	}
	return strings.Join(body, "\n"), true
}

// isBoundary reports whether a line terminates the section currently being
// collected. A line is a boundary when the whole trimmed line equals a header
// synonym of a different section, when it is a member of the closed
// common-header set, or when it merely looks like a new section: starts with
// a capital letter and either ends with a colon or is fully upper-case.
// Cross-section matching is exact on purpose; substring matching here would
// cut sections on body prose that mentions words like "experience".
func (s *Segmenter) isBoundary(line, lower, current string) bool {
	if lower == "" {
		return false
	}

	for name, synonyms := range s.headers {
		if name == current {
			continue
		}
		for _, syn := range synonyms {
			if syn == lower {
				return true
			}
		}
	}

	if _, ok := s.common[lower]; ok {
		return true
	}

	return looksLikeBoundary(line)
}

func looksLikeBoundary(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	first := []rune(trimmed)[0]
	if !unicode.IsUpper(first) {
		return false
	}
	return strings.HasSuffix(trimmed, ":") || isAllUpper(trimmed)
}

// isAllUpper mirrors str.isupper: every cased rune is upper-case and there is
// at least one cased rune
func isAllUpper(s string) bool {
	hasCased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return hasCased
}

func matchesAny(lower string, synonyms []string) bool {
	for _, syn := range synonyms {
		if syn == lower || strings.Contains(lower, syn) {
			return true
		}
	}
	return false
}

// Entry-start cues: a date-like line (year, slash-date, dash-date) or a
// capitalized two-word name ("Acme Corp", "State University").
var (
	dateStartRe = regexp.MustCompile(`^(\d{4}|\d{2}/\d{2}|\d{2}-\d{2})`)
	nameStartRe = regexp.MustCompile(`^[A-Z][a-z]+\s[A-Z][a-z]+`)
)

// SplitEntries divides a section body into one text block per entry. The
// fallback chain trusts structure over content: blank-line separators first,
// then date/name line cues, then the whole body as a single entry. A name
// cue always opens a new entry; a date cue only does so once the open entry
// has more than its heading line, since dates conventionally sit directly
// under the organization they belong to.
func SplitEntries(body string) []string {
	var entries []string

	if strings.Contains(body, "\n\n") {
		for _, chunk := range strings.Split(body, "\n\n") {
			if trimmed := strings.TrimSpace(chunk); trimmed != "" {
				entries = append(entries, trimmed)
			}
		}
	}

	if len(entries) == 0 {
		var current []string
		for _, line := range strings.Split(body, "\n") {
			trimmed := strings.TrimSpace(line)
			startsEntry := (nameStartRe.MatchString(trimmed) && len(current) > 0) ||
				(dateStartRe.MatchString(trimmed) && len(current) > 1)
			if startsEntry {
				entries = append(entries, strings.Join(current, "\n"))
				current = []string{line}
			} else {
				current = append(current, line)
			}
		}
		if len(current) > 0 {
			entries = append(entries, strings.Join(current, "\n"))
		}
	}

	if len(entries) == 0 {
		entries = []string{body}
	}
	return entries
}
