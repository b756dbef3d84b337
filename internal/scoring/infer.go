package scoring

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/orienta/internal/catalog"
)

// Inference is the outcome of scanning free text for area keywords.
// Hits == 0 means nothing matched and Area is only the first catalog area.
type Inference struct {
	Area     catalog.Area
	Hits     int
	Keywords []string
}

// Matched reports whether at least one keyword was found.
func (i Inference) Matched() bool {
	return i.Hits > 0
}

// InferArea counts, per area, the keywords contained in the lower-cased
// message. A keyword counts once no matter how often it occurs and may match
// inside a longer word. The area with the most hits wins; ties go to the
// area declared first.
func InferArea(cat *catalog.Catalog, message string) Inference {
	low := cases.Lower(language.Und).String(message)

	var best Inference
	for i, area := range cat.Areas() {
		var hits []string
		for _, k := range cat.Keywords(area) {
			if strings.Contains(low, k) {
				hits = append(hits, k)
			}
		}
		if i == 0 || len(hits) > best.Hits {
			best = Inference{Area: area, Hits: len(hits), Keywords: hits}
		}
	}
	return best
}
