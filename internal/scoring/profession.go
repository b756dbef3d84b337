package scoring

import (
	"slices"

	"github.com/abhisek/orienta/internal/catalog"
)

// SelectProfession picks a profession of area.
//
// A favorite that belongs to the area wins, taking the first one in
// favorites order. Otherwise the first profession in declared order that is
// not in exclude is returned; when every profession is excluded the first
// declared one is returned. ok is false only for areas without professions.
func SelectProfession(cat *catalog.Catalog, area catalog.Area, favorites []string, exclude map[string]bool) (profession string, ok bool) {
	roles := cat.Professions(area)
	if len(roles) == 0 {
		return "", false
	}

	for _, fav := range favorites {
		if slices.Contains(roles, fav) {
			return fav, true
		}
	}

	for _, r := range roles {
		if !exclude[r] {
			return r, true
		}
	}
	return roles[0], true
}

// Suggestion is a free-text recommendation.
type Suggestion struct {
	Inference
	Profession string
}

// Suggest infers an area from message and proposes a profession in it.
// ok is false when no keyword matched; the caller should offer the menu.
func Suggest(cat *catalog.Catalog, message string, favorites []string) (Suggestion, bool) {
	inf := InferArea(cat, message)
	if !inf.Matched() {
		return Suggestion{Inference: inf}, false
	}
	prof, found := SelectProfession(cat, inf.Area, favorites, nil)
	if !found {
		prof = string(inf.Area)
	}
	return Suggestion{Inference: inf, Profession: prof}, true
}

// Cycler browses the professions of one area, wrapping around at the end.
type Cycler struct {
	area  catalog.Area
	roles []string
	index int
}

// NewCycler starts at the first profession, in the area's declared order,
// that is a favorite; without one it starts at the first profession.
// ok is false when the area has no professions.
func NewCycler(cat *catalog.Catalog, area catalog.Area, favorites []string) (*Cycler, bool) {
	roles := cat.Professions(area)
	if len(roles) == 0 {
		return nil, false
	}
	c := &Cycler{area: area, roles: roles}
	for i, r := range roles {
		if slices.Contains(favorites, r) {
			c.index = i
			break
		}
	}
	return c, true
}

// Area returns the area being browsed.
func (c *Cycler) Area() catalog.Area {
	return c.area
}

// Current returns the profession under the cursor.
func (c *Cycler) Current() string {
	return c.roles[c.index]
}

// Next advances to the following profession and returns it.
func (c *Cycler) Next() string {
	c.index = (c.index + 1) % len(c.roles)
	return c.roles[c.index]
}
