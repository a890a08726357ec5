package bridge

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"serialization-bridge/internal/diagnostic"
)

// State is the persisted form of one node: four parallel sequences with one
// entry per saved target.
type State struct {
	SerializedData []string `yaml:"serialized_data"`
	Fields         []string `yaml:"fields"`          // slash-joined field paths
	ComponentNames []string `yaml:"component_names"` // declaring root type names
	IsCollection   []bool   `yaml:"is_collection"`

	// Diagnostics collected while saving. Never persisted.
	Diagnostics diagnostic.Diagnostics `yaml:"-"`
}

// Len is the number of saved targets.
func (s *State) Len() int {
	return len(s.SerializedData)
}

// Valid reports whether all four sequences have the same length.
func (s *State) Valid() bool {
	n := len(s.SerializedData)
	return len(s.Fields) == n && len(s.ComponentNames) == n && len(s.IsCollection) == n
}

// Reset clears all four sequences.
func (s *State) Reset() {
	s.SerializedData = s.SerializedData[:0]
	s.Fields = s.Fields[:0]
	s.ComponentNames = s.ComponentNames[:0]
	s.IsCollection = s.IsCollection[:0]
}

func (s *State) add(data, field, component string, isCollection bool) {
	s.SerializedData = append(s.SerializedData, data)
	s.Fields = append(s.Fields, field)
	s.ComponentNames = append(s.ComponentNames, component)
	s.IsCollection = append(s.IsCollection, isCollection)
}

// MarshalState writes s as a YAML document.
func MarshalState(s *State) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	return data, nil
}

// UnmarshalState reads a state written by MarshalState.
func UnmarshalState(data []byte) (*State, error) {
	var s State
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state: %w", err)
	}

	return &s, nil
}
