package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Import stages.
const (
	StageBefore = "before"
	StageAfter  = "after"
)

// DefaultBlockList returns the record types dropped by a sanitized import:
// end-of-data markers, parameters, eigenvalue extraction and aerodynamic
// panel/spline records that belong to the analysis they were written for.
func DefaultBlockList() []string {
	return []string{"ENDDATA", "PARAM", "EIGR", "EIGRL", "CAERO1", "CAERO2", "PAERO1", "PAERO2", "SPLINE1", "SPLINE2"}
}

// Param is one entry of the params mapping.
type Param struct {
	Key   string
	Value any
}

// OrderedParams preserves the order of the params mapping.
type OrderedParams []Param

// UnmarshalYAML decodes a mapping node keeping key order.
func (p *OrderedParams) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: params must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("params: %q: %w", node.Content[i].Value, err)
		}
		*p = append(*p, Param{Key: node.Content[i].Value, Value: value})
	}
	return nil
}

// CaseSpec is the global case control block.
type CaseSpec struct {
	CaseControl []string `yaml:"case_control"`
}

// SubcaseSpec is one entry of the subcases mapping.
type SubcaseSpec struct {
	ID          int
	SPC         string
	Load        string
	CaseControl []string
	// Extra holds every other field of the entry, copied verbatim.
	Extra map[string]any
	// File names a YAML file holding the entry's fields. It cannot be
	// combined with inline fields.
	File string
}

// OrderedSubcases preserves the order of the subcases mapping.
type OrderedSubcases []SubcaseSpec

var reservedSubcaseKeys = map[string]bool{"id": true, "spc": true, "load": true, "case_control": true, "file": true}

// UnmarshalYAML decodes a mapping of integer ids to subcase entries.
func (s *OrderedSubcases) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: subcases must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		id, err := strconv.Atoi(keyNode.Value)
		if err != nil {
			return fmt.Errorf("line %d: subcase id %q is not an integer", keyNode.Line, keyNode.Value)
		}
		sub := SubcaseSpec{ID: id, Extra: make(map[string]any)}
		if valNode.Kind != yaml.MappingNode {
			if valNode.Tag == "!!null" {
				*s = append(*s, sub)
				continue
			}
			return fmt.Errorf("line %d: subcase %d must be a mapping", valNode.Line, id)
		}
		if err := sub.decodeFields(valNode); err != nil {
			return err
		}
		if sub.File != "" && (sub.SPC != "" || sub.Load != "" || sub.CaseControl != nil || len(sub.Extra) > 0) {
			return fmt.Errorf("subcase %d: file cannot be combined with other fields", id)
		}
		*s = append(*s, sub)
	}
	return nil
}

func (sub *SubcaseSpec) decodeFields(node *yaml.Node) error {
	var err error
	for j := 0; j+1 < len(node.Content); j += 2 {
		field, value := node.Content[j].Value, node.Content[j+1]
		switch field {
		case "spc":
			sub.SPC, err = scalar(value)
		case "load":
			sub.Load, err = scalar(value)
		case "case_control":
			err = value.Decode(&sub.CaseControl)
		case "file":
			sub.File, err = scalar(value)
		case "id":
			var inner int
			if err = value.Decode(&inner); err == nil && inner != sub.ID {
				err = fmt.Errorf("id %d does not match key %d", inner, sub.ID)
			}
		default:
			var v any
			if err = value.Decode(&v); err == nil {
				sub.Extra[field] = v
			}
		}
		if err != nil {
			return fmt.Errorf("subcase %d: %s: %w", sub.ID, field, err)
		}
	}
	return nil
}

// loadSubcaseFiles replaces each subcase entry that names a file with the
// fields read from that file.
func (c *Config) loadSubcaseFiles() error {
	for i := range c.Subcases {
		s := &c.Subcases[i]
		if s.File == "" {
			continue
		}
		data, err := os.ReadFile(c.Resolve(s.File))
		if err != nil {
			return fmt.Errorf("config: subcase %d: %w", s.ID, err)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("config: subcase %d: %s: %w", s.ID, s.File, err)
		}
		loaded := SubcaseSpec{ID: s.ID, Extra: make(map[string]any)}
		if len(doc.Content) > 0 {
			body := doc.Content[0]
			if body.Kind != yaml.MappingNode {
				return fmt.Errorf("config: subcase %d: %s must hold a mapping", s.ID, s.File)
			}
			if err := loaded.decodeFields(body); err != nil {
				return fmt.Errorf("config: %s: %w", s.File, err)
			}
			if loaded.File != "" {
				return fmt.Errorf("config: subcase %d: %s cannot name another file", s.ID, s.File)
			}
		}
		loaded.File = s.File
		*s = loaded
	}
	return nil
}

func scalar(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		return "", nil
	}
	return n.Value, nil
}

// ImportSpec merges an existing deck into the generated one.
type ImportSpec struct {
	Path      string   `yaml:"path"`
	Sanitize  *bool    `yaml:"sanitize"`
	BlockList []string `yaml:"block-list"`
	Stage     string   `yaml:"stage"`
}

// Sanitized reports whether the import filters its block list. Defaults to true.
func (i ImportSpec) Sanitized() bool {
	return i.Sanitize == nil || *i.Sanitize
}

// Config is an analysis configuration file.
type Config struct {
	Name      string          `yaml:"name"`
	Sol       int             `yaml:"sol"`
	Output    string          `yaml:"output"`
	Diags     []int           `yaml:"diags"`
	Interface any             `yaml:"interface"`
	Global    CaseSpec        `yaml:"global"`
	Params    OrderedParams   `yaml:"params"`
	Subcases  OrderedSubcases `yaml:"subcases"`
	Imports   []ImportSpec    `yaml:"imports"`

	// Dir is the directory of the config file; relative paths resolve against it.
	Dir string `yaml:"-"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	cfg.Dir = filepath.Dir(abs)
	if err := cfg.loadSubcaseFiles(); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes config data without validating it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Resolve returns path relative to the config directory unless it is absolute.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Dir == "" {
		return path
	}
	return filepath.Join(c.Dir, path)
}
