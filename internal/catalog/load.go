package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// fileCatalog is the on-disk shape of a catalog document (YAML or JSON).
type fileCatalog struct {
	Areas         []fileArea     `json:"areas" yaml:"areas"`
	Questions     []fileQuestion `json:"questions" yaml:"questions"`
	SeedFavorites []string       `json:"seed_favorites,omitempty" yaml:"seed_favorites,omitempty"`
}

type fileArea struct {
	Name        string   `json:"name" yaml:"name"`
	Professions []string `json:"professions" yaml:"professions"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

type fileQuestion struct {
	Prompt  string       `json:"prompt" yaml:"prompt"`
	Options []fileOption `json:"options" yaml:"options"`
}

type fileOption struct {
	Label string `json:"label" yaml:"label"`
	Area  string `json:"area" yaml:"area"`
}

// documentSchema describes a catalog document. Cross references (option
// areas, favorites) are checked later by validate.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"areas", "questions"},
	"properties": map[string]any{
		"areas": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"name", "professions"},
				"properties": map[string]any{
					"name":        map[string]any{"type": "string", "minLength": 1},
					"professions": map[string]any{"type": "array", "minItems": 1, "items": map[string]any{"type": "string"}},
					"keywords":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"prompt", "options"},
				"properties": map[string]any{
					"prompt": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type":     "object",
							"required": []any{"label", "area"},
							"properties": map[string]any{
								"label": map[string]any{"type": "string"},
								"area":  map[string]any{"type": "string"},
							},
							"additionalProperties": false,
						},
					},
				},
				"additionalProperties": false,
			},
		},
		"seed_favorites": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	},
	"additionalProperties": false,
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// LoadFile reads a catalog document from path. Files ending in .yaml or
// .yml are parsed as YAML, anything else as JSON.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	return Parse(raw, ext == ".yaml" || ext == ".yml")
}

// Parse decodes, schema-checks and validates a catalog document.
func Parse(raw []byte, isYAML bool) (*Catalog, error) {
	doc, err := toJSON(raw, isYAML)
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidCatalog, err)
	}

	schema, err := catalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: schema validation failed: %v", ErrInvalidCatalog, err)
	}

	var fc fileCatalog
	if err := json.Unmarshal(doc, &fc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}

	areas := make([]AreaEntry, 0, len(fc.Areas))
	for _, a := range fc.Areas {
		areas = append(areas, AreaEntry{
			Name:        Area(a.Name),
			Professions: a.Professions,
			Keywords:    a.Keywords,
		})
	}
	questions := make([]Question, 0, len(fc.Questions))
	for _, q := range fc.Questions {
		opts := make([]Option, 0, len(q.Options))
		for _, o := range q.Options {
			opts = append(opts, Option{Label: o.Label, Area: Area(o.Area)})
		}
		questions = append(questions, Question{Prompt: q.Prompt, Options: opts})
	}

	return New(areas, questions, fc.SeedFavorites)
}

// toJSON normalizes the document to JSON bytes so both formats share one
// schema check and one decoder.
func toJSON(raw []byte, isYAML bool) ([]byte, error) {
	if !isYAML {
		return raw, nil
	}
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: invalid YAML: %v", ErrInvalidCatalog, err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: convert YAML: %v", ErrInvalidCatalog, err)
	}
	return b, nil
}

// catalogSchema compiles documentSchema once.
func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go literals.
		b, err := json.Marshal(documentSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(b, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://orienta-catalog.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// WriteYAML writes c in the document format accepted by LoadFile.
func (c *Catalog) WriteYAML(w io.Writer) error {
	fc := fileCatalog{SeedFavorites: c.SeedFavorites()}
	for _, a := range c.Entries() {
		fc.Areas = append(fc.Areas, fileArea{
			Name:        string(a.Name),
			Professions: a.Professions,
			Keywords:    a.Keywords,
		})
	}
	for _, q := range c.Questions() {
		fq := fileQuestion{Prompt: q.Prompt}
		for _, o := range q.Options {
			fq.Options = append(fq.Options, fileOption{Label: o.Label, Area: string(o.Area)})
		}
		fc.Questions = append(fc.Questions, fq)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return enc.Close()
}
