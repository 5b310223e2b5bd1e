package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cache is a loaded texture cache directory.
type Cache struct {
	// Dir is the cache root, holding textures.json and textures/.
	Dir string
	// Models maps short model names to their flattened documents.
	Models map[string]Model
	// Blocks maps block names to their blockstate entries.
	Blocks map[string]BlockState
}

// Load reads textures.json from a cache directory. The document has a
// "models" mapping plus one top-level key per block.
func Load(dir string) (*Cache, error) {
	path := filepath.Join(dir, "textures.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}

	c := &Cache{
		Dir:    dir,
		Models: make(map[string]Model),
		Blocks: make(map[string]BlockState),
	}

	if models, ok := raw["models"]; ok {
		if err := json.Unmarshal(models, &c.Models); err != nil {
			return nil, fmt.Errorf("unmarshal models: %w", err)
		}
	}
	for name, msg := range raw {
		if name == "models" {
			continue
		}
		var bs BlockState
		if err := json.Unmarshal(msg, &bs); err != nil {
			return nil, fmt.Errorf("unmarshal block %s: %w", name, err)
		}
		c.Blocks[name] = bs
	}

	return c, nil
}

// TexturePath returns the on-disk path of a referenced texture.
func (c *Cache) TexturePath(texRef string) string {
	return filepath.Join(c.Dir, "textures", filepath.FromSlash(texRef)+".png")
}

// maxParentDepth bounds inheritance walks so that a malformed cache
// with a parent cycle cannot loop forever.
const maxParentDepth = 32

// Textures returns the effective texture variables of a model with its
// inheritance chain applied: child entries override parent entries,
// and "#name" aliases are followed until they reach a concrete path or
// an unresolved variable.
func (c *Cache) Textures(model string) map[string]string {
	// Collect the chain child-first, then apply root-first so children
	// win.
	var chain []Model
	for name, depth := model, 0; name != "" && depth < maxParentDepth; depth++ {
		m, ok := c.Models[name]
		if !ok {
			break
		}
		chain = append(chain, m)
		name = shortName(m.Parent)
	}

	out := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Textures {
			out[k] = v
		}
	}

	for k, v := range out {
		for depth := 0; strings.HasPrefix(v, "#") && depth < maxParentDepth; depth++ {
			next, ok := out[strings.TrimPrefix(v, "#")]
			if !ok {
				break
			}
			v = next
		}
		out[k] = v
	}
	return out
}

func shortName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
