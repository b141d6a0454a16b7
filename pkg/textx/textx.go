package textx

import (
	"regexp"
	"strings"
)

var (
	wordRe       = regexp.MustCompile(`\b\w+\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	lineBreakRe  = regexp.MustCompile(`\n+`)
	emailRe      = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	urlRe        = regexp.MustCompile(`https?://(?:[-\w.]|(?:%[\da-fA-F]{2}))+[\w/\-?=&.]*`)
)

// Clean normalizes whitespace and strips characters that carry no signal for
// the extractors. Line breaks are preserved as single newlines.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRe.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(lineBreakRe.ReplaceAllString(strings.Join(lines, "\n"), "\n"))
}

// Words returns all word tokens in the text
func Words(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// SplitSentences splits text on common sentence terminators
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	for _, r := range text {
		b.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(b.String()); s != "" {
				sentences = append(sentences, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// Stats holds aggregate statistics about a text blob
type Stats struct {
	WordCount         int
	SentenceCount     int
	CharCount         int
	AvgWordLength     float64
	AvgSentenceLength float64
	UniqueWordCount   int
	LexicalDiversity  float64
}

// CalculateStats computes word/sentence counts and lexical diversity
// (unique words over total words, case-insensitive)
func CalculateStats(text string) Stats {
	words := Words(text)
	sentences := SplitSentences(text)

	totalLen := 0
	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		totalLen += len(w)
		unique[strings.ToLower(w)] = struct{}{}
	}

	stats := Stats{
		WordCount:       len(words),
		SentenceCount:   len(sentences),
		CharCount:       len(text),
		UniqueWordCount: len(unique),
	}
	stats.AvgWordLength = float64(totalLen) / float64(max(1, stats.WordCount))
	stats.AvgSentenceLength = float64(stats.WordCount) / float64(max(1, stats.SentenceCount))
	stats.LexicalDiversity = float64(stats.UniqueWordCount) / float64(max(1, stats.WordCount))
	return stats
}

// FindEmails returns all email addresses in the text
func FindEmails(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// FindURLs returns all http(s) URLs in the text
func FindURLs(text string) []string {
	return urlRe.FindAllString(text, -1)
}

// ContainsWord reports whether term occurs in text as a whole word,
// case-insensitively
func ContainsWord(text, term string) bool {
	re, err := wholeWordPattern(term)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

func wholeWordPattern(term string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(strings.ToLower(term)) + `\b`)
}
