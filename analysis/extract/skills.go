package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/pkg/textx"
)

// Delimiters tried in order when splitting a skills section; the first one
// present in the text is used for the whole section.
var skillDelimiters = []string{",", "•", "·", "\n", ";"}

// Skills runs two passes and unions the results: a whole-word vocabulary
// scan over the full text (output keeps the vocabulary's casing), and a
// delimiter split of the skills section for terms the vocabulary does not
// know. Length bounds on section tokens keep sentence fragments out.
func (e *Extractor) Skills(text string, b *analysis.Builder) {
	for _, skills := range e.vocab.Skills {
		for _, skill := range skills {
			if textx.ContainsWord(text, skill) {
				b.AddSkill(skill)
			}
		}
	}

	body, ok := e.seg.SectionCapped(text, "skills", 10)
	if !ok {
		return
	}
	section := flatten(body)

	for _, delimiter := range skillDelimiters {
		if !strings.Contains(section, delimiter) {
			continue
		}
		for _, token := range strings.Split(section, delimiter) {
			token = strings.TrimSpace(token)
			if n := utf8.RuneCountInString(token); n >= 2 && n <= 50 {
				b.AddSkill(token)
			}
		}
		break
	}
}
