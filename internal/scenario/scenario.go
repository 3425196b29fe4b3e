// --- trycatch/internal/scenario/scenario.go ---

package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/v4rm4n/trycatch/internal/fault"
	"github.com/v4rm4n/trycatch/internal/numeric"
)

// Scenario lists the unbound names the demo reads and the division calls it
// makes inside its guarded region.
//
//	names: [foo]
//	divisions:
//	  - {dividend: 10, divisor: 2}
//	  - {dividend: 10, divisor: 0}
//	handlers:
//	  names: NameError
//	  divisions: ArithmeticError
type Scenario struct {
	Names     []string   `yaml:"names"`
	Divisions []Division `yaml:"divisions"`
	Handlers  Handlers   `yaml:"handlers"`
}

// Handlers picks the fault kind each region catches. A kind that does not
// match what the region raises lets the fault escape the script.
type Handlers struct {
	Names     KindName `yaml:"names"`
	Divisions KindName `yaml:"divisions"`
}

type KindName struct {
	*fault.Kind
}

func (k *KindName) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: handler must be a fault kind name", node.Line)
	}
	kind, ok := fault.KindByName(node.Value)
	if !ok {
		return fmt.Errorf("line %d: unknown fault kind %q", node.Line, node.Value)
	}
	k.Kind = kind
	return nil
}

// Or returns the configured kind, or def when none was given.
func (k KindName) Or(def *fault.Kind) *fault.Kind {
	if k.Kind == nil {
		return def
	}
	return k.Kind
}

type Division struct {
	Dividend Operand `yaml:"dividend"`
	Divisor  Operand `yaml:"divisor"`
}

// Operand keeps the YAML scalar's int/float distinction, since it decides
// between floor and true division.
type Operand struct {
	numeric.Number
	set bool
}

func (o *Operand) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: operand must be a number", node.Line)
	}
	switch node.ShortTag() {
	case "!!int":
		v, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		o.Number = numeric.Int(v)
	case "!!float":
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		o.Number = numeric.Float(v)
	default:
		return fmt.Errorf("line %d: operand %q is not a number", node.Line, node.Value)
	}
	o.set = true
	return nil
}

// Default is the scenario the demo runs when no file is given.
func Default() *Scenario {
	return &Scenario{
		Names: []string{"foo"},
		Divisions: []Division{
			{Dividend: intOperand(10), Divisor: intOperand(2)},
			{Dividend: intOperand(10), Divisor: intOperand(0)},
		},
		Handlers: Handlers{
			Names:     KindName{fault.NameError},
			Divisions: KindName{fault.ArithmeticError},
		},
	}
}

func intOperand(v int64) Operand {
	return Operand{Number: numeric.Int(v), set: true}
}

// ValidationError aggregates scenario validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "scenario: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("scenario validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load parses a scenario file from disk.
func Load(path string) (*Scenario, error) {
	if path == "" {
		return nil, fmt.Errorf("scenario: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %s: %w", absPath, err)
	}
	defer file.Close()

	s, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("scenario: %s: %w", absPath, err)
	}
	return s, nil
}

func Decode(r io.Reader) (*Scenario, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var s Scenario
	if err := decoder.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("document is empty")
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	var errs ValidationError
	for i, name := range s.Names {
		if !isIdentifier(name) {
			errs.Issues = append(errs.Issues, fmt.Sprintf("names[%d]: %q is not an identifier", i, name))
		}
	}
	for i, d := range s.Divisions {
		if !d.Dividend.set {
			errs.Issues = append(errs.Issues, fmt.Sprintf("divisions[%d]: missing dividend", i))
		}
		if !d.Divisor.set {
			errs.Issues = append(errs.Issues, fmt.Sprintf("divisions[%d]: missing divisor", i))
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
