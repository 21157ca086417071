package script

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ScriptConfig represents the top-level configuration structure
type ScriptConfig struct {
	Name        string       `yaml:"name,omitempty"`
	Description string       `yaml:"description,omitempty"`
	Lists       []ListConfig `yaml:"lists,omitempty"`
	Steps       []StepConfig `yaml:"steps"`
}

// ListConfig declares a named list and how it is constructed. With neither
// values nor sized set the list starts empty.
type ListConfig struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values,omitempty"`
	Sized  *int     `yaml:"sized,omitempty"`
}

// StepConfig is a single operation against one list. Exactly one operation
// field must be set.
type StepConfig struct {
	Name        string             `yaml:"name,omitempty"`
	List        string             `yaml:"list"`
	PushFront   *string            `yaml:"pushFront,omitempty"`
	PopFront    bool               `yaml:"popFront,omitempty"`
	SetFront    *string            `yaml:"setFront,omitempty"`
	InsertAfter *InsertAfterConfig `yaml:"insertAfter,omitempty"`
	EraseAfter  *EraseAfterConfig  `yaml:"eraseAfter,omitempty"`
	Clear       bool               `yaml:"clear,omitempty"`
	SwapWith    *string            `yaml:"swapWith,omitempty"`
	CopyTo      *string            `yaml:"copyTo,omitempty"`
	Expect      *ExpectConfig      `yaml:"expect,omitempty"`
	ExpectError string             `yaml:"expectError,omitempty"`
}

type InsertAfterConfig struct {
	At    PositionConfig `yaml:"at"`
	Value string         `yaml:"value"`
}

type EraseAfterConfig struct {
	At PositionConfig `yaml:"at"`
}

// PositionConfig selects an iterator position. Exactly one field must be set.
type PositionConfig struct {
	Begin bool    `yaml:"begin,omitempty"`
	End   bool    `yaml:"end,omitempty"`
	Find  *string `yaml:"find,omitempty"`
	Index *int    `yaml:"index,omitempty"`
}

// ExpectConfig lists assertions about a list; every field that is set must
// hold.
type ExpectConfig struct {
	Size     *int     `yaml:"size,omitempty"`
	Empty    *bool    `yaml:"empty,omitempty"`
	Front    *string  `yaml:"front,omitempty"`
	Values   []string `yaml:"values,omitempty"`
	Contains *string  `yaml:"contains,omitempty"`
	Missing  *string  `yaml:"missing,omitempty"`
}

const ExpectErrorEmpty = "empty"

func (lc ListConfig) Validate() error {
	if lc.Name == "" {
		return errors.New("list declaration has no name")
	}
	if lc.Sized != nil {
		if len(lc.Values) > 0 {
			return errors.Errorf("list %q: 'values' and 'sized' are mutually exclusive", lc.Name)
		}
		if *lc.Sized < 0 {
			return errors.Errorf("list %q: 'sized' must not be negative, got %d", lc.Name, *lc.Sized)
		}
	}
	return nil
}

func (pc PositionConfig) Validate() error {
	// Options are mutually exclusive; only one should be set.
	count := 0
	if pc.Begin {
		count++
	}
	if pc.End {
		count++
	}
	if pc.Find != nil {
		count++
	}
	if pc.Index != nil {
		if *pc.Index < 0 {
			return errors.Errorf("invalid position: 'index' must not be negative, got %d", *pc.Index)
		}
		count++
	}
	if count != 1 {
		return errors.Errorf("position must set exactly one of 'begin', 'end', 'find' or 'index': %+v", pc)
	}
	return nil
}

// ToPosition converts a PositionConfig into a Position.
func (pc PositionConfig) ToPosition() (Position, error) {
	if err := pc.Validate(); err != nil {
		return Position{}, err
	}
	switch {
	case pc.Begin:
		return Position{Kind: PositionBegin}, nil
	case pc.End:
		return Position{Kind: PositionEnd}, nil
	case pc.Find != nil:
		return Position{Kind: PositionFind, Value: *pc.Find}, nil
	default:
		return Position{Kind: PositionIndex, Index: *pc.Index}, nil
	}
}

func (sc StepConfig) Validate() error {
	if sc.List == "" {
		return errors.New("step has no 'list'")
	}
	count := 0
	if sc.PushFront != nil {
		count++
	}
	if sc.PopFront {
		count++
	}
	if sc.SetFront != nil {
		count++
	}
	if sc.InsertAfter != nil {
		count++
	}
	if sc.EraseAfter != nil {
		count++
	}
	if sc.Clear {
		count++
	}
	if sc.SwapWith != nil {
		count++
	}
	if sc.CopyTo != nil {
		count++
	}
	if sc.Expect != nil {
		count++
	}
	if count == 0 {
		return errors.Errorf("no operation specified in step: %+v", sc)
	}
	if count > 1 {
		return errors.Errorf("multiple operations specified in step; only one allowed: %+v", sc)
	}
	if sc.ExpectError != "" && sc.ExpectError != ExpectErrorEmpty {
		return errors.Errorf("unknown expectError %q; only %q is supported", sc.ExpectError, ExpectErrorEmpty)
	}
	return nil
}

// ToOp converts a StepConfig to a concrete Op implementation
func (sc StepConfig) ToOp() (Op, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if sc.PushFront != nil {
		return &PushFrontOp{Value: *sc.PushFront}, nil
	}
	if sc.PopFront {
		return &PopFrontOp{}, nil
	}
	if sc.SetFront != nil {
		return &SetFrontOp{Value: *sc.SetFront}, nil
	}
	if sc.InsertAfter != nil {
		at, err := sc.InsertAfter.At.ToPosition()
		if err != nil {
			return nil, errors.Wrap(err, "insertAfter")
		}
		return &InsertAfterOp{At: at, Value: sc.InsertAfter.Value}, nil
	}
	if sc.EraseAfter != nil {
		at, err := sc.EraseAfter.At.ToPosition()
		if err != nil {
			return nil, errors.Wrap(err, "eraseAfter")
		}
		return &EraseAfterOp{At: at}, nil
	}
	if sc.Clear {
		return &ClearOp{}, nil
	}
	if sc.SwapWith != nil {
		if *sc.SwapWith == "" {
			return nil, errors.New("swapWith: list name must not be empty")
		}
		return &SwapOp{With: *sc.SwapWith}, nil
	}
	if sc.CopyTo != nil {
		if *sc.CopyTo == "" {
			return nil, errors.New("copyTo: list name must not be empty")
		}
		return &CopyToOp{To: *sc.CopyTo}, nil
	}
	if sc.Expect != nil {
		return &ExpectOp{Expect: *sc.Expect}, nil
	}
	return nil, errors.Errorf("no valid operation found in step: %+v", sc)
}

// LoadScriptConfig loads a script from a YAML file
func LoadScriptConfig(filename string) (*ScriptConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var scriptConfig ScriptConfig
	err = yaml.Unmarshal(data, &scriptConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", filename)
	}

	return &scriptConfig, nil
}

// LoadScriptConfigFromString loads a ScriptConfig from a YAML string.
func LoadScriptConfigFromString(yamlContent string) (*ScriptConfig, error) {
	var scriptConfig ScriptConfig
	err := yaml.Unmarshal([]byte(yamlContent), &scriptConfig)
	if err != nil {
		return nil, err
	}

	return &scriptConfig, nil
}
