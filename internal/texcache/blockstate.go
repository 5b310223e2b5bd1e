package texcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// resolveBlock finds the blockstate document for one block in the
// first pack that has it, resolves every model it references and
// stores the document with its model references shortened. A block
// absent from every pack is skipped silently.
func (s *buildState) resolveBlock(name string) error {
	for _, p := range s.packs {
		stateFile := filepath.Join(p.assetRoot, "blockstates", name+".json")
		data, err := os.ReadFile(stateFile)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", stateFile, err)
		}

		var blockstate map[string]any
		if err := json.Unmarshal(data, &blockstate); err != nil {
			return fmt.Errorf("unmarshal %s: %w", stateFile, err)
		}

		// Sorted so that short-key collisions resolve the same way on
		// every build.
		refs := modelRefs(blockstate)
		sort.Strings(refs)
		for _, ref := range refs {
			if err := s.resolveModel(ref); err != nil {
				return err
			}
		}

		shortenModelRefs(blockstate)
		s.blocks[name] = blockstate
		return nil // found in this pack, stop searching
	}

	s.log.Debugf("block %s not found in any pack", name)
	return nil
}

// forEachModelEntry visits every object in a blockstate document that
// carries a "model" field: the values of "variants" and the "apply" of
// each "multipart" entry, both in their direct-object and list forms.
func forEachModelEntry(blockstate map[string]any, fn func(entry map[string]any)) {
	visit := func(v any) {
		switch t := v.(type) {
		case map[string]any:
			fn(t)
		case []any:
			for _, e := range t {
				if m, ok := e.(map[string]any); ok {
					fn(m)
				}
			}
		}
	}

	if variants, ok := blockstate["variants"].(map[string]any); ok {
		for _, v := range variants {
			visit(v)
		}
	}
	if multipart, ok := blockstate["multipart"].([]any); ok {
		for _, p := range multipart {
			if part, ok := p.(map[string]any); ok {
				visit(part["apply"])
			}
		}
	}
}

// modelRefs collects the distinct model references of a blockstate.
func modelRefs(blockstate map[string]any) []string {
	seen := make(map[string]struct{})
	forEachModelEntry(blockstate, func(entry map[string]any) {
		if ref, ok := entry["model"].(string); ok {
			seen[ref] = struct{}{}
		}
	})

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	return refs
}

// shortenModelRefs rewrites every model reference in place to its
// short key, matching the keys of the "models" mapping.
func shortenModelRefs(blockstate map[string]any) {
	forEachModelEntry(blockstate, func(entry map[string]any) {
		if ref, ok := entry["model"].(string); ok {
			entry["model"] = shortKey(ref)
		}
	})
}
