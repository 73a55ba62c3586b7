package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ctr/internal/assert"
	"ctr/internal/calc"
	"ctr/internal/domain"
)

// CheckFile is the on-disk YAML shape of a check suite
type CheckFile struct {
	Version int         `yaml:"version"`
	Checks  []CheckSpec `yaml:"checks"`
}

// CheckSpec describes a single data-driven calculator check
type CheckSpec struct {
	Name    string `yaml:"name"`
	Op      string `yaml:"op"`
	A       int    `yaml:"a"`
	B       int    `yaml:"b"`
	Want    int    `yaml:"want"`
	WantErr string `yaml:"want_err"`
}

// WantErrDivisionByZero is the only recognized want_err value.
const WantErrDivisionByZero = "division_by_zero"

// Parser turns check suite files into executable checks
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads a YAML suite file and converts every check into a test
// case. Decoding is strict: unknown fields are rejected so typos in suite
// files surface immediately instead of silently changing a check.
func (p *Parser) ParseFile(path string) ([]domain.TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading suite file %s: %w", path, err)
	}

	var file CheckFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("error parsing suite file %s: %w", path, err)
	}

	cases := make([]domain.TestCase, 0, len(file.Checks))
	for i, check := range file.Checks {
		tc, err := buildCase(check)
		if err != nil {
			return nil, fmt.Errorf("suite file %s, check %d: %w", path, i+1, err)
		}
		cases = append(cases, tc)
	}

	return cases, nil
}

// buildCase validates one check definition and wraps it in an executable
// procedure. A div check with b == 0 and no want_err is built as-is; the
// division error surfaces at run time and is recorded by the executor.
func buildCase(check CheckSpec) (domain.TestCase, error) {
	if check.Name == "" {
		return domain.TestCase{}, errors.New("check has no name")
	}
	if check.WantErr != "" && check.WantErr != WantErrDivisionByZero {
		return domain.TestCase{}, fmt.Errorf("check %s: unknown want_err %q", check.Name, check.WantErr)
	}
	if check.WantErr != "" && check.Op != "div" {
		return domain.TestCase{}, fmt.Errorf("check %s: want_err is only valid for op div", check.Name)
	}

	a, b, want := check.A, check.B, check.Want

	switch check.Op {
	case "add":
		return domain.TestCase{Name: check.Name, Proc: func() error {
			assert.Equal(want, calc.Add(a, b))
			return nil
		}}, nil
	case "sub":
		return domain.TestCase{Name: check.Name, Proc: func() error {
			assert.Equal(want, calc.Subtract(a, b))
			return nil
		}}, nil
	case "mul":
		return domain.TestCase{Name: check.Name, Proc: func() error {
			assert.Equal(want, calc.Multiply(a, b))
			return nil
		}}, nil
	case "div":
		if check.WantErr == WantErrDivisionByZero {
			return domain.TestCase{Name: check.Name, Proc: func() error {
				_, err := calc.Divide(a, b)
				if !errors.Is(err, calc.ErrDivisionByZero) {
					assert.Equal(calc.ErrDivisionByZero, err)
				}
				return nil
			}}, nil
		}
		return domain.TestCase{Name: check.Name, Proc: func() error {
			quotient, err := calc.Divide(a, b)
			if err != nil {
				return err
			}
			assert.Equal(want, quotient)
			return nil
		}}, nil
	default:
		return domain.TestCase{}, fmt.Errorf("check %s: unknown op %q", check.Name, check.Op)
	}
}
