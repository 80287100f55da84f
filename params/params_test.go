// Copyright (c) 2026 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the chainkit library.

package params_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pk910/chainkit/params"
)

const testPreset = `
PRESET_BASE: devnet
HASH_SIZE: 32
MAX_TRANSACTIONS: 1024
BLOCK_HEADER_BYTES: 80
`

func TestValueLookup(t *testing.T) {
	reg := params.New(map[string]any{
		"HASH_SIZE": 32,
		"PRESET":    "devnet",
	})

	v, ok := reg.Value("HASH_SIZE")
	require.True(t, ok)
	require.Equal(t, 32, v)

	_, ok = reg.Value("MISSING")
	require.False(t, ok)

	_, ok = params.New(nil).Value("HASH_SIZE")
	require.False(t, ok)
}

func TestResolveUint(t *testing.T) {
	reg := params.New(map[string]any{
		"HASH_SIZE":        32,
		"MAX_TRANSACTIONS": 1024,
		"LABEL":            "devnet",
	})

	tests := []struct {
		name     string
		expr     string
		resolved bool
		want     uint64
	}{
		{"plain name", "HASH_SIZE", true, 32},
		{"product", "HASH_SIZE*2", true, 64},
		{"mixed expression", "MAX_TRANSACTIONS/HASH_SIZE", true, 32},
		{"unknown name", "MISSING_VALUE*2", false, 0},
		{"non numeric value", "LABEL", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved, value, err := reg.ResolveUint(tt.expr)
			require.NoError(t, err)
			require.Equal(t, tt.resolved, resolved)
			require.Equal(t, tt.want, value)
		})
	}
}

func TestResolveUintRoundsUp(t *testing.T) {
	reg := params.New(map[string]any{"SMALL": 7})

	resolved, value, err := reg.ResolveUint("SMALL/2")
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, uint64(4), value)
}

func TestResolveUintParseError(t *testing.T) {
	reg := params.New(map[string]any{"HASH_SIZE": 32})

	_, _, err := reg.ResolveUint("((HASH_SIZE")
	require.Error(t, err)
}

func TestResolveCacheAndMerge(t *testing.T) {
	values := map[string]any{"HASH_SIZE": 32}
	reg := params.New(values)

	resolved, value, err := reg.ResolveUint("HASH_SIZE*2")
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, uint64(64), value)

	// mutating the value map directly leaves the cached result in place
	values["HASH_SIZE"] = 64
	_, value, err = reg.ResolveUint("HASH_SIZE*2")
	require.NoError(t, err)
	require.Equal(t, uint64(64), value)

	// Merge drops the cache and the expression re-resolves
	reg.Merge(map[string]any{})
	resolved, value, err = reg.ResolveUint("HASH_SIZE*2")
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, uint64(128), value)
}

func TestMergeOverrides(t *testing.T) {
	reg := params.New(map[string]any{
		"HASH_SIZE":        32,
		"MAX_TRANSACTIONS": 1024,
	})
	reg.Merge(map[string]any{"HASH_SIZE": 20})

	v, ok := reg.Value("HASH_SIZE")
	require.True(t, ok)
	require.Equal(t, 20, v)

	v, ok = reg.Value("MAX_TRANSACTIONS")
	require.True(t, ok)
	require.Equal(t, 1024, v)
}

func TestFromYAML(t *testing.T) {
	reg, err := params.FromYAML([]byte(testPreset))
	require.NoError(t, err)

	v, ok := reg.Value("PRESET_BASE")
	require.True(t, ok)
	require.Equal(t, "devnet", v)

	resolved, value, err := reg.ResolveUint("BLOCK_HEADER_BYTES + HASH_SIZE")
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, uint64(112), value)
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := params.FromYAML([]byte("{invalid"))
	require.Error(t, err)
}

func TestFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testPreset), 0o644))

	reg, err := params.FromYAMLFile(path)
	require.NoError(t, err)

	resolved, value, err := reg.ResolveUint("MAX_TRANSACTIONS")
	require.NoError(t, err)
	require.True(t, resolved)
	require.Equal(t, uint64(1024), value)

	_, err = params.FromYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
