// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".avltree.yaml"

type DemoConfig struct {
	Values []int `yaml:"values"`
	Search int   `yaml:"search"`
}

type StressConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

type IndexConfig struct {
	BloomSize   uint          `yaml:"bloom_size"`
	BloomHashes uint          `yaml:"bloom_hashes"`
	CacheTTL    time.Duration `yaml:"cache_ttl"`
}

type Config struct {
	Demo   DemoConfig   `yaml:"demo"`
	Stress StressConfig `yaml:"stress"`
	Index  IndexConfig  `yaml:"index"`
}

func defaultConfig() Config {
	return Config{
		Demo: DemoConfig{
			Values: []int{10, 20, 30, 40, 50, 25},
			Search: 25,
		},
		Stress: StressConfig{
			Count: 5000,
			Seed:  1,
		},
		Index: IndexConfig{
			BloomSize:   1 << 16,
			BloomHashes: 5,
			CacheTTL:    5 * time.Minute,
		},
	}
}

// normalize replaces unusable values with their defaults.
func (c *Config) normalize() {
	def := defaultConfig()
	if len(c.Demo.Values) == 0 {
		c.Demo.Values = def.Demo.Values
	}
	if c.Stress.Count <= 0 {
		c.Stress.Count = def.Stress.Count
	}
	if c.Index.BloomSize == 0 {
		c.Index.BloomSize = def.Index.BloomSize
	}
	if c.Index.BloomHashes == 0 {
		c.Index.BloomHashes = def.Index.BloomHashes
	}
	if c.Index.CacheTTL <= 0 {
		c.Index.CacheTTL = def.Index.CacheTTL
	}
}

// LoadConfig reads ~/.avltree.yaml. The defaults are returned when the file
// is missing; on a broken file they are returned together with the error.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		def := defaultConfig()
		return &def, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return &config, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		def := defaultConfig()
		return &def, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	config.normalize()

	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func writeDefaultConfig(configPath string) error {
	def := defaultConfig()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// displaySettings prints the active configuration, creating the default
// file first when there is none.
func displaySettings(w io.Writer, configPath string) error {
	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		return err
	}

	styles := GetStyles()
	fmt.Fprintln(w, styles.Title.Render("AVL Tree Configuration Settings"))
	fmt.Fprintln(w)
	if created {
		fmt.Fprintf(w, "Config file: %s (newly created)\n\n", configPath)
	} else {
		fmt.Fprintf(w, "Config file: %s\n\n", configPath)
	}

	fmt.Fprintf(w, "  demo.values:        %v\n", config.Demo.Values)
	fmt.Fprintf(w, "  demo.search:        %d\n", config.Demo.Search)
	fmt.Fprintf(w, "  stress.count:       %d\n", config.Stress.Count)
	fmt.Fprintf(w, "  stress.seed:        %d\n", config.Stress.Seed)
	fmt.Fprintf(w, "  index.bloom_size:   %d\n", config.Index.BloomSize)
	fmt.Fprintf(w, "  index.bloom_hashes: %d\n", config.Index.BloomHashes)
	fmt.Fprintf(w, "  index.cache_ttl:    %s\n", config.Index.CacheTTL)
	return nil
}
