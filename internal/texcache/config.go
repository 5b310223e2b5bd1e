package texcache

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CacheDir      string   `yaml:"cache_dir"`
	ResourcePacks []string `yaml:"resource_packs"`
	Blocks        []string `yaml:"blocks"`
	BlocksFile    string   `yaml:"blocks_file"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "cache"
	}
	if len(cfg.ResourcePacks) == 0 {
		return nil, fmt.Errorf("resource_packs list is empty")
	}
	if len(cfg.Blocks) == 0 && cfg.BlocksFile == "" {
		return nil, fmt.Errorf("either blocks or blocks_file is required")
	}
	return &cfg, nil
}

// BlockNames returns the deduplicated, sorted block set from the
// inline list plus the blocks file, if one is configured. Names are
// normalized by dropping the minecraft: prefix; air and comment lines
// are skipped.
func (cfg *Config) BlockNames() ([]string, error) {
	seen := make(map[string]struct{})
	add := func(raw string) {
		name := strings.TrimPrefix(strings.TrimSpace(raw), "minecraft:")
		if name == "" || name == "air" || strings.HasPrefix(name, "#") {
			return
		}
		seen[name] = struct{}{}
	}

	for _, b := range cfg.Blocks {
		add(b)
	}
	if cfg.BlocksFile != "" {
		data, err := os.ReadFile(cfg.BlocksFile)
		if err != nil {
			return nil, fmt.Errorf("read blocks file: %w", err)
		}
		for _, line := range strings.Split(string(data), "\n") {
			add(line)
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
