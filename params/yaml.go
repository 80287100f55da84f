// Copyright (c) 2026 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

package params

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML creates a Registry from YAML preset data, a flat document of
// named values.
func FromYAML(data []byte) (*Registry, error) {
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("error parsing parameter preset: %v", err)
	}
	return New(values), nil
}

// FromYAMLFile loads a YAML preset from path.
func FromYAMLFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromYAML(data)
}
