package texcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// copyTexture copies one referenced PNG from the first pack that has
// it into the cache's textures/ tree, keeping the relative path.
// Copies happen at most once per reference; a texture absent from
// every pack is skipped silently.
func (s *buildState) copyTexture(texRef string) error {
	if _, ok := s.copiedTextures[texRef]; ok {
		return nil
	}

	for _, p := range s.packs {
		src := filepath.Join(p.assetRoot, "textures", filepath.FromSlash(texRef)+".png")
		if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return fmt.Errorf("stat %s: %w", src, err)
		}

		dst := filepath.Join(s.CacheDir, "textures", filepath.FromSlash(texRef)+".png")
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("create texture dir: %w", err)
		}
		if err := copyFile(src, dst); err != nil {
			return fmt.Errorf("copy texture %s: %w", texRef, err)
		}

		s.copiedTextures[texRef] = struct{}{}
		return nil
	}

	s.log.Debugf("texture %s not found in any pack", texRef)
	return nil
}
