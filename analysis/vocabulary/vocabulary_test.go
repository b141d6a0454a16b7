package vocabulary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	store := Default()

	assert.Contains(t, store.Skills["programming_languages"], "Python")
	assert.Contains(t, store.ATSKeywords["technical"], "python")
	assert.Contains(t, store.RedFlags, "references available upon request")
	assert.Contains(t, store.DegreeKeywords, "Bachelor")
	assert.Contains(t, store.SectionHeaders["experience"], "work experience")
	assert.NotEmpty(t, store.CommonHeaders)
	require.Len(t, store.ScoringCategories, 3)
	assert.InDelta(t, 0.6, store.ScoringCategories[0].Weight, 0.0001)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	content := "red_flags:\n  - salary history\nskills:\n  custom:\n    - Terraform\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"salary history"}, store.RedFlags)
	assert.Equal(t, []string{"Terraform"}, store.Skills["custom"])
	// Untouched tables keep the defaults.
	assert.Contains(t, store.DegreeKeywords, "Bachelor")
	assert.NotEmpty(t, store.SectionHeaders)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("red_flags: {not: [a, list"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestHeadersFor(t *testing.T) {
	store := Default()

	assert.Contains(t, store.HeadersFor("summary"), "professional summary")
	assert.Empty(t, store.HeadersFor("publications"))
}
