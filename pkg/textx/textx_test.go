package textx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	in := "  John   Smith \n\n\n  john@example.com\t\n\n"
	assert.Equal(t, "John Smith\njohn@example.com", Clean(in))
}

func TestClean_Empty(t *testing.T) {
	assert.Equal(t, "", Clean("   \n\n  "))
}

func TestContainsWord(t *testing.T) {
	assert.True(t, ContainsWord("built with Python and Go", "python"))
	assert.True(t, ContainsWord("SQL, Java", "sql"))
	assert.False(t, ContainsWord("javascript only", "java"))
	assert.False(t, ContainsWord("", "python"))
}

func TestCalculateStats(t *testing.T) {
	stats := CalculateStats("One two three. Two three four!")

	assert.Equal(t, 6, stats.WordCount)
	assert.Equal(t, 2, stats.SentenceCount)
	assert.Equal(t, 4, stats.UniqueWordCount)
	assert.InDelta(t, 4.0/6.0, stats.LexicalDiversity, 0.0001)
	assert.InDelta(t, 3.0, stats.AvgSentenceLength, 0.0001)
}

func TestCalculateStats_Empty(t *testing.T) {
	stats := CalculateStats("")

	assert.Zero(t, stats.WordCount)
	assert.Zero(t, stats.LexicalDiversity)
}

func TestFindEmails(t *testing.T) {
	emails := FindEmails("contact: jane@example.com or admin@test.org")
	assert.Equal(t, []string{"jane@example.com", "admin@test.org"}, emails)
}

func TestFindURLs(t *testing.T) {
	urls := FindURLs("see https://github.com/janedoe/pipeline and http://example.com")
	assert.Len(t, urls, 2)
	assert.Equal(t, "https://github.com/janedoe/pipeline", urls[0])
}
