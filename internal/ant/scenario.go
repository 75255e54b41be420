package ant

import (
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
)

// ErrExpectationMismatch is returned by Scenario.Check when the final frame
// differs from the scenario's expected rows.
var ErrExpectationMismatch = errors.New("final grid does not match expectation")

// Scenario is a named run read from a scenario file, optionally with the
// frame it is expected to produce.
type Scenario struct {
	Name   string
	Config Config
	Expect []string
}

// hclScenarioFile is the top-level structure of a scenario file.
type hclScenarioFile struct {
	Scenarios []*hclScenario `hcl:"scenario,block"`
}

type hclScenario struct {
	Name   string   `hcl:"name,label"`
	Rows   int      `hcl:"rows"`
	Cols   int      `hcl:"cols"`
	Ant    hclAnt   `hcl:"ant,block"`
	Steps  int      `hcl:"steps"`
	Expect []string `hcl:"expect,optional"`
}

type hclAnt struct {
	Row    int    `hcl:"row"`
	Col    int    `hcl:"col"`
	Facing string `hcl:"facing"`
}

// ParseScenarios decodes HCL scenario source. filename is only used in
// diagnostics. Every scenario is validated before it is returned.
func ParseScenarios(src []byte, filename string) ([]Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	var parsed hclScenarioFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, errors.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}

	scenarios := make([]Scenario, 0, len(parsed.Scenarios))
	seen := make(map[string]bool, len(parsed.Scenarios))
	for _, p := range parsed.Scenarios {
		if seen[p.Name] {
			return nil, errors.WithMessagef(ErrInvalidArgument, "%s: duplicate scenario %q", filename, p.Name)
		}
		seen[p.Name] = true

		if len(p.Ant.Facing) != 1 {
			return nil, errors.WithMessagef(ErrInvalidDirectionSymbol,
				"%s: scenario %q: facing must be a single character, got %q", filename, p.Name, p.Ant.Facing)
		}
		sc := Scenario{
			Name: p.Name,
			Config: Config{
				Rows:   p.Rows,
				Cols:   p.Cols,
				Row:    p.Ant.Row,
				Col:    p.Ant.Col,
				Facing: p.Ant.Facing[0],
				Steps:  p.Steps,
			},
			Expect: p.Expect,
		}
		if err := sc.Config.Validate(); err != nil {
			return nil, errors.WithMessagef(err, "%s: scenario %q", filename, p.Name)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

// LoadScenarios reads and decodes the scenario file at path.
func LoadScenarios(path string) ([]Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario file %q", path)
	}
	return ParseScenarios(src, path)
}

// Run computes the scenario's final frame.
func (sc Scenario) Run() (Frame, error) {
	c := sc.Config
	frame, err := ComputeFinalGrid(c.Rows, c.Cols, c.Row, c.Col, c.Facing, c.Steps)
	if err != nil {
		return nil, errors.WithMessagef(err, "scenario %q", sc.Name)
	}
	return frame, nil
}

// Check runs the scenario and compares the result with Expect, when given.
// The frame is returned even on a mismatch.
func (sc Scenario) Check() (Frame, error) {
	frame, err := sc.Run()
	if err != nil {
		return nil, err
	}
	if sc.Expect != nil && !slices.Equal(frame.Rows(), sc.Expect) {
		return frame, errors.WithMessagef(ErrExpectationMismatch,
			"scenario %q: got %q, want %q", sc.Name, frame.Rows(), sc.Expect)
	}
	return frame, nil
}
