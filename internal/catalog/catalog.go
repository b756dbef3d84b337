package catalog

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrInvalidCatalog is returned when catalog data fails structural validation.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrUnknownArea is returned when a lookup names an area that is not in the catalog.
	ErrUnknownArea = errors.New("unknown area")

	// ErrUnknownProfession is returned when a profession is not listed under any area.
	ErrUnknownProfession = errors.New("unknown profession")
)

// Area identifies a vocational category by its display name.
type Area string

// Option is one answer of a question and the area it counts towards.
type Option struct {
	Label string
	Area  Area
}

// Question is a scripted multiple-choice prompt.
type Question struct {
	Prompt  string
	Options []Option
}

// AreaEntry declares an area together with its professions (in browsing
// order) and the keywords used for free-text inference.
type AreaEntry struct {
	Name        Area
	Professions []string
	Keywords    []string
}

// Catalog is the immutable reference data for one deployment.
// Area order is the declaration order and drives every tie-break.
type Catalog struct {
	areas          []AreaEntry
	index          map[Area]int
	professionArea map[string]Area
	questions      []Question
	optionCounts   map[Area]int
	seedFavorites  []string
}

// New validates the given tables and builds a Catalog from private copies of them.
// Keywords are lower-cased so matching is case-insensitive on both sides.
func New(areas []AreaEntry, questions []Question, seedFavorites []string) (*Catalog, error) {
	if err := validate(areas, questions, seedFavorites); err != nil {
		return nil, err
	}

	lower := cases.Lower(language.Und)
	c := &Catalog{
		areas:          make([]AreaEntry, len(areas)),
		index:          make(map[Area]int, len(areas)),
		professionArea: make(map[string]Area),
		questions:      make([]Question, len(questions)),
		optionCounts:   make(map[Area]int, len(areas)),
		seedFavorites:  slices.Clone(seedFavorites),
	}

	for i, a := range areas {
		kws := make([]string, len(a.Keywords))
		for j, k := range a.Keywords {
			kws[j] = lower.String(k)
		}
		c.areas[i] = AreaEntry{
			Name:        a.Name,
			Professions: slices.Clone(a.Professions),
			Keywords:    kws,
		}
		c.index[a.Name] = i
		c.optionCounts[a.Name] = 0
		for _, p := range a.Professions {
			c.professionArea[p] = a.Name
		}
	}

	for i, q := range questions {
		c.questions[i] = Question{Prompt: q.Prompt, Options: slices.Clone(q.Options)}
		for _, o := range q.Options {
			c.optionCounts[o.Area]++
		}
	}

	return c, nil
}

// Areas returns the area names in declaration order.
func (c *Catalog) Areas() []Area {
	out := make([]Area, len(c.areas))
	for i, a := range c.areas {
		out[i] = a.Name
	}
	return out
}

// Entries returns a copy of the full area table in declaration order.
func (c *Catalog) Entries() []AreaEntry {
	out := make([]AreaEntry, len(c.areas))
	for i, a := range c.areas {
		out[i] = AreaEntry{
			Name:        a.Name,
			Professions: slices.Clone(a.Professions),
			Keywords:    slices.Clone(a.Keywords),
		}
	}
	return out
}

// HasArea reports whether area is declared in the catalog.
func (c *Catalog) HasArea(area Area) bool {
	_, ok := c.index[area]
	return ok
}

// Rank returns the declaration position of area, or -1 if it is unknown.
func (c *Catalog) Rank(area Area) int {
	if i, ok := c.index[area]; ok {
		return i
	}
	return -1
}

// Professions returns the professions of area in declared order.
// Unknown areas yield nil.
func (c *Catalog) Professions(area Area) []string {
	i, ok := c.index[area]
	if !ok {
		return nil
	}
	return slices.Clone(c.areas[i].Professions)
}

// Keywords returns the inference keywords of area in lexicon order.
func (c *Catalog) Keywords(area Area) []string {
	i, ok := c.index[area]
	if !ok {
		return nil
	}
	return slices.Clone(c.areas[i].Keywords)
}

// AreaOf returns the area a profession belongs to.
func (c *Catalog) AreaOf(profession string) (Area, error) {
	a, ok := c.professionArea[profession]
	if !ok {
		return "", ErrUnknownProfession
	}
	return a, nil
}

// AllProfessions returns every profession, grouped by area in declaration order.
func (c *Catalog) AllProfessions() []string {
	var out []string
	for _, a := range c.areas {
		out = append(out, a.Professions...)
	}
	return out
}

// Questions returns a copy of the question bank.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	for i, q := range c.questions {
		out[i] = Question{Prompt: q.Prompt, Options: slices.Clone(q.Options)}
	}
	return out
}

// NumQuestions returns the size of the question bank.
func (c *Catalog) NumQuestions() int {
	return len(c.questions)
}

// Question returns the i-th question.
func (c *Catalog) Question(i int) (Question, bool) {
	if i < 0 || i >= len(c.questions) {
		return Question{}, false
	}
	q := c.questions[i]
	return Question{Prompt: q.Prompt, Options: slices.Clone(q.Options)}, true
}

// OptionCounts returns, per area, how many question options reference it
// across the whole bank. Areas without options map to 0.
func (c *Catalog) OptionCounts() map[Area]int {
	out := make(map[Area]int, len(c.optionCounts))
	for a, n := range c.optionCounts {
		out[a] = n
	}
	return out
}

// SeedFavorites returns the favorites used when the user never saved any.
func (c *Catalog) SeedFavorites() []string {
	return slices.Clone(c.seedFavorites)
}

// FilterProfessions keeps the known professions of names, preserving order
// and dropping duplicates.
func (c *Catalog) FilterProfessions(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if _, ok := c.professionArea[n]; !ok || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
