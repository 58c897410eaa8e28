package arraystesting

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named sequence of list operations with expected outcomes,
// loaded from a YAML fixture.
type Scenario struct {
	Name            string `yaml:"name"`
	InitialCapacity int    `yaml:"initialCapacity"` // 0 means the default constructor
	Steps           []Step `yaml:"steps"`
}

// Step is one operation. Op is one of add, insert, set, get, remove,
// removeLast, indexOf, search, copy or clear. Fields an operation does not use
// are ignored.
type Step struct {
	Op    string `yaml:"op"`
	Index int    `yaml:"index"`
	Value int    `yaml:"value"`
	Want  Want   `yaml:"want"`
}

// Want holds the expectations checked after a step. Nil fields are not
// checked.
type Want struct {
	Size     *int  `yaml:"size"`
	Capacity *int  `yaml:"capacity"`
	Value    *int  `yaml:"value"`  // returned by get, remove and removeLast
	Result   *int  `yaml:"result"` // returned by indexOf and search
	Values   []int `yaml:"values"`
	Err      bool  `yaml:"err"` // the operation must fail with an out of range error
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads every scenario from the YAML fixture at path.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: scenario %d has no name", path, i)
		}
	}
	return f.Scenarios, nil
}

// Bytes converts fixture values to bytes, panicking on values outside
// [0, 255] so a malformed fixture fails loudly.
func Bytes(values []int) []byte {
	b := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			panic(fmt.Sprintf("fixture value %d out of byte range", v))
		}
		b[i] = byte(v)
	}
	return b
}
