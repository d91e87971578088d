// Package config provides YAML scenario parsing for the reflux CLI.
//
// A scenario describes a store walkthrough to run offline: which built-in
// reducer to use and the sequence of actions to dispatch through it. This
// enables exercising the store as a standalone binary, as an alternative
// to the programmatic SDK approach.
//
// Example scenario:
//
//	name: counter walkthrough
//	reducer: counter
//	repeat: 3
//	actions:
//	  - type: INCREASE_COUNT
//	  - type: DECREASE_COUNT   # unhandled, state unchanged
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// maxRepeat caps scenario repetition to keep runs bounded.
const maxRepeat = 10000

// Reducer names accepted in scenario files. These select the built-in
// lesson reducers shipped with the CLI.
const (
	ReducerCounter      = "counter"
	ReducerShoppingList = "shopping_list"
)

// Scenario is the root structure of a scenario file.
//
// It maps directly to the YAML file structure. Use [Load] or [Parse] to
// create a Scenario from YAML.
type Scenario struct {
	// Name is a display name for the run. Defaults to the reducer name.
	Name string `yaml:"name"`

	// Reducer selects the built-in reducer: "counter" or "shopping_list".
	Reducer string `yaml:"reducer"`

	// Actions is the sequence of actions dispatched, in order.
	Actions []ActionConfig `yaml:"actions"`

	// Repeat runs the whole action sequence this many times. Defaults to 1.
	Repeat int `yaml:"repeat"`

	// HistoryLimit bounds the devtools recorder attached to the run.
	// Zero uses the recorder's default.
	HistoryLimit int `yaml:"history_limit"`

	// LogLevel sets the CLI log level: "debug", "info", "warn", "error".
	// Defaults to "info".
	LogLevel string `yaml:"log_level"`
}

// ActionConfig is one action in a scenario.
type ActionConfig struct {
	// Type is the action's discriminator tag, e.g. "ADD_ITEM".
	Type string `yaml:"type"`

	// Payload is optional action data. String payloads support environment
	// variable substitution: ${VAR} or ${VAR:-default}.
	Payload any `yaml:"payload"`
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with
// environment values. Referencing an unset variable without a default is
// an error.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML scenario file.
//
// Environment variables in string payloads are expanded after parsing.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML scenario data.
//
// Defaults are applied for Name (reducer name), Repeat (1), and LogLevel
// ("info"); the result is then validated.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if sc.Repeat == 0 {
		sc.Repeat = 1
	}
	if sc.LogLevel == "" {
		sc.LogLevel = "info"
	}
	if sc.Name == "" {
		sc.Name = sc.Reducer
	}

	if err := sc.expandAndValidate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// expandAndValidate expands environment variables and validates the
// scenario.
func (s *Scenario) expandAndValidate() error {
	switch s.Reducer {
	case ReducerCounter, ReducerShoppingList:
	case "":
		return errors.New("reducer is required")
	default:
		return fmt.Errorf("unknown reducer %q (expected %q or %q)",
			s.Reducer, ReducerCounter, ReducerShoppingList)
	}

	if len(s.Actions) == 0 {
		return errors.New("at least one action must be defined")
	}

	for i := range s.Actions {
		a := &s.Actions[i]

		if strings.TrimSpace(a.Type) == "" {
			return fmt.Errorf("actions[%d]: type is required", i)
		}

		if payload, ok := a.Payload.(string); ok {
			expanded, err := expandEnvVars(payload)
			if err != nil {
				return fmt.Errorf("actions[%d] (%s): payload: %w", i, a.Type, err)
			}
			a.Payload = expanded
		}
	}

	if s.Repeat < 0 {
		return fmt.Errorf("repeat cannot be negative, got %d", s.Repeat)
	}
	if s.Repeat > maxRepeat {
		return fmt.Errorf("repeat must not exceed %d, got %d", maxRepeat, s.Repeat)
	}

	if s.HistoryLimit < 0 {
		return fmt.Errorf("history_limit cannot be negative, got %d", s.HistoryLimit)
	}

	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (expected debug, info, warn, or error)", s.LogLevel)
	}

	return nil
}

// TotalDispatches reports how many actions a run of the scenario will
// dispatch (actions × repeat).
func (s *Scenario) TotalDispatches() int {
	return len(s.Actions) * s.Repeat
}
