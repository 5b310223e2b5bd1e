package texcache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mholt/archiver"
)

// pack is one extracted resource pack. assetRoot points at
// <extracted>/.../assets/minecraft; tmpDir is the extraction directory,
// owned by the build that extracted it and removed on cleanup.
type pack struct {
	assetRoot string
	tmpDir    string
}

// extractPack unpacks a single resource pack ZIP into a fresh temp
// directory and locates its asset root.
func extractPack(packPath string) (pack, error) {
	if filepath.Ext(packPath) != ".zip" {
		return pack{}, fmt.Errorf("%w: %s", ErrUnsupportedPackFormat, packPath)
	}

	tmpDir, err := os.MkdirTemp("", "texcache-pack-")
	if err != nil {
		return pack{}, fmt.Errorf("create temp dir: %w", err)
	}

	if err := archiver.Unarchive(packPath, tmpDir); err != nil {
		os.RemoveAll(tmpDir)
		return pack{}, fmt.Errorf("unarchive %s: %w", packPath, err)
	}

	assetRoot, err := findAssetRoot(tmpDir)
	if err != nil {
		os.RemoveAll(tmpDir)
		return pack{}, fmt.Errorf("%s: %w", packPath, err)
	}

	return pack{assetRoot: assetRoot, tmpDir: tmpDir}, nil
}

// findAssetRoot locates assets/minecraft inside an extracted pack.
// Some zips wrap their content in a single top-level directory, so a
// one-level descent is tried before giving up.
func findAssetRoot(base string) (string, error) {
	direct := filepath.Join(base, "assets", "minecraft")
	if info, err := os.Stat(direct); err == nil && info.IsDir() {
		return direct, nil
	}

	entries, err := os.ReadDir(base)
	if err != nil {
		return "", fmt.Errorf("read extracted pack: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		child := filepath.Join(base, e.Name())
		if info, err := os.Stat(filepath.Join(child, "assets")); err == nil && info.IsDir() {
			return filepath.Join(child, "assets", "minecraft"), nil
		}
	}

	return "", ErrAssetRootNotFound
}
