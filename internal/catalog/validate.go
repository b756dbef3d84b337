package catalog

import (
	"fmt"
	"strings"
)

// validate performs all structural checks on the raw catalog tables.
// Returns a combined error describing all problems found, or nil if valid.
func validate(areas []AreaEntry, questions []Question, seedFavorites []string) error {
	var errs []string

	if len(areas) == 0 {
		errs = append(errs, "catalog declares no areas")
	}

	areaSet := make(map[Area]bool, len(areas))
	owner := make(map[string]Area)

	for _, a := range areas {
		if strings.TrimSpace(string(a.Name)) == "" {
			errs = append(errs, "area with empty name")
			continue
		}
		if areaSet[a.Name] {
			errs = append(errs, fmt.Sprintf("duplicate area: %q", a.Name))
		}
		areaSet[a.Name] = true

		// Every area needs a profession so a recommendation always exists.
		if len(a.Professions) == 0 {
			errs = append(errs, fmt.Sprintf("area %q has no professions", a.Name))
		}
		for _, p := range a.Professions {
			if strings.TrimSpace(p) == "" {
				errs = append(errs, fmt.Sprintf("area %q has an empty profession name", a.Name))
				continue
			}
			if prev, dup := owner[p]; dup {
				errs = append(errs, fmt.Sprintf("profession %q listed under both %q and %q", p, prev, a.Name))
				continue
			}
			owner[p] = a.Name
		}
		for _, k := range a.Keywords {
			if strings.TrimSpace(k) == "" {
				errs = append(errs, fmt.Sprintf("area %q has an empty keyword", a.Name))
			}
		}
	}

	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", i+1)
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, prefix+": empty prompt")
		}
		if len(q.Options) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
		}
		for j, o := range q.Options {
			if !areaSet[o.Area] {
				errs = append(errs, fmt.Sprintf("%s option %d references unknown area %q", prefix, j+1, o.Area))
			}
		}
	}

	for _, f := range seedFavorites {
		if _, ok := owner[f]; !ok {
			errs = append(errs, fmt.Sprintf("seed favorite %q is not a known profession", f))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalidCatalog, strings.Join(errs, "\n  "))
	}
	return nil
}
