package texcache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// stripNamespace removes a "namespace:" prefix from a model or texture
// reference, leaving a path relative to the pack's models/ or
// textures/ root.
func stripNamespace(ref string) string {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// shortKey derives the lookup key for a resolved model: the final path
// segment of the namespace-stripped reference. Distinct full paths
// sharing a final segment collide, and the first resolution wins.
func shortKey(ref string) string {
	return path.Base(stripNamespace(ref))
}

// resolveModel resolves one model reference and, recursively, its
// parent chain. Parents resolve first, so a stored model always has
// its resolvable ancestors stored too. Resolution is memoized by short
// key for the duration of the build. A model absent from every pack is
// skipped silently.
func (s *buildState) resolveModel(ref string) error {
	relPath := stripNamespace(ref)
	short := path.Base(relPath)

	if _, ok := s.models[short]; ok {
		return nil // already resolved
	}

	for _, p := range s.packs {
		modelFile := filepath.Join(p.assetRoot, "models", filepath.FromSlash(relPath)+".json")
		raw, err := os.ReadFile(modelFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", modelFile, err)
		}

		var header struct {
			Parent string `json:"parent"`
		}
		if err := json.Unmarshal(raw, &header); err != nil {
			return fmt.Errorf("unmarshal %s: %w", modelFile, err)
		}
		if header.Parent != "" {
			if err := s.resolveModel(header.Parent); err != nil {
				return err
			}
		}

		// The whole raw document is stripped of "minecraft:" before the
		// clean copy is parsed. This is deliberately textual, not
		// field-aware: any string value containing the prefix is
		// altered too, and downstream consumers depend on exactly this.
		cleaned := bytes.ReplaceAll(raw, []byte("minecraft:"), nil)
		var model map[string]any
		if err := json.Unmarshal(cleaned, &model); err != nil {
			return fmt.Errorf("unmarshal cleaned %s: %w", modelFile, err)
		}

		if textures, ok := model["textures"].(map[string]any); ok {
			for _, v := range textures {
				texRef, ok := v.(string)
				if !ok || strings.HasPrefix(texRef, "#") {
					continue // variable alias, passed through verbatim
				}
				if err := s.copyTexture(texRef); err != nil {
					return err
				}
			}
		}

		if patch, ok := modelPatches[short]; ok {
			patch(model)
		}

		s.models[short] = model
		return nil // found in this pack
	}

	s.log.Debugf("model %s not found in any pack", ref)
	return nil
}

// modelPatches fixes known-broken vanilla models after cleaning, keyed
// by short key.
var modelPatches = map[string]func(model map[string]any){
	"sculk_sensor": patchSculkSensorUV,
}

// patchSculkSensorUV forces the UV rectangle of every horizontal face
// to (0,0,16,8). The vanilla asset ships with UVs that map the tendril
// texture upside down.
func patchSculkSensorUV(model map[string]any) {
	elements, ok := model["elements"].([]any)
	if !ok {
		return
	}
	for _, e := range elements {
		elem, ok := e.(map[string]any)
		if !ok {
			continue
		}
		faces, ok := elem["faces"].(map[string]any)
		if !ok {
			continue
		}
		for _, side := range []string{"north", "east", "south", "west"} {
			if face, ok := faces[side].(map[string]any); ok {
				face["uv"] = []any{float64(0), float64(0), float64(16), float64(8)}
			}
		}
	}
}
