// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzav

import "github.com/BurntSushi/toml"

// CLIConfig holds cmd/lzav's file-based defaults.
type CLIConfig struct {
	// Hi selects the high-ratio compressor; cmd/lzav uses it when either this
	// or the -hi flag is set, so the flag cannot turn it off.
	Hi bool `toml:"hi"`
	// PoolBuffers is decoded from the config file but not read by cmd/lzav;
	// compression always uses the package's pooled hash tables.
	PoolBuffers bool `toml:"pool_buffers"`
}

// DefaultCLIConfig returns the CLI's built-in defaults.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{Hi: false, PoolBuffers: true}
}

// LoadCLIConfig reads a TOML config file into a copy of DefaultCLIConfig.
// An empty path returns the defaults without error; a path to a file that
// does not exist or cannot be decoded is an error.
func LoadCLIConfig(path string) (*CLIConfig, error) {
	cfg := DefaultCLIConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
