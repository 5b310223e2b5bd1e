package texcache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "texcache.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
cache_dir: out/cache
resource_packs:
  - vanilla.zip
  - override.zip
blocks:
  - stone
  - grass_block
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.CacheDir != "out/cache" {
		t.Errorf("CacheDir = %q", cfg.CacheDir)
	}
	if len(cfg.ResourcePacks) != 2 || cfg.ResourcePacks[0] != "vanilla.zip" {
		t.Errorf("ResourcePacks = %v", cfg.ResourcePacks)
	}
}

func TestLoadConfigDefaultsCacheDir(t *testing.T) {
	path := writeConfig(t, `
resource_packs: [vanilla.zip]
blocks: [stone]
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.CacheDir != "cache" {
		t.Errorf("CacheDir = %q, want default cache", cfg.CacheDir)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no packs",
			content: "blocks: [stone]",
			wantErr: "resource_packs",
		},
		{
			name:    "no blocks",
			content: "resource_packs: [vanilla.zip]",
			wantErr: "blocks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestBlockNames(t *testing.T) {
	blocksFile := filepath.Join(t.TempDir(), "blocks.txt")
	err := os.WriteFile(blocksFile, []byte(`
minecraft:stone
# a comment
grass_block
air
stone
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cfg := &Config{
		Blocks:     []string{"minecraft:oak_planks", "stone"},
		BlocksFile: blocksFile,
	}

	names, err := cfg.BlockNames()
	if err != nil {
		t.Fatalf("BlockNames error: %v", err)
	}

	want := []string{"grass_block", "oak_planks", "stone"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("BlockNames = %v, want %v", names, want)
	}
}
