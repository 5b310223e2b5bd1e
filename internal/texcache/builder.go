package texcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"
)

// Builder produces a filtered texture cache from resource packs for a
// specific set of blocks.
//
// The cache directory ends up with:
//   - textures.json: combined blockstate + model data for the needed
//     blocks only, with model references shortened to their final path
//     segment.
//   - textures/: PNG files keeping their original relative paths.
//
// When multiple resource packs are given, the left-most takes
// precedence; a blockstate document is taken whole from the first pack
// that has it, never merged across packs.
type Builder struct {
	// BlockNames is the deduplicated set of block names to resolve,
	// without the minecraft: prefix. Processed in sorted order.
	BlockNames []string

	// PackPaths are the resource pack ZIPs, index 0 highest priority.
	PackPaths []string

	// CacheDir is the destination. Any previous content is removed.
	CacheDir string

	// Log receives per-block progress at debug level. Optional.
	Log *logrus.Logger

	// OnProgress, if set, is called once per processed block name. It
	// is a pure side channel and has no effect on resolution.
	OnProgress func(done, total int, block string)
}

// buildState holds the mutable state of one Build call. Memoization
// lives here rather than on Builder so that independent builds cannot
// see each other's resolved keys.
type buildState struct {
	*Builder

	log            *logrus.Logger
	packs          []pack
	models         map[string]map[string]any
	blocks         map[string]map[string]any
	copiedTextures map[string]struct{}
}

// Build extracts the packs, resolves every requested block and writes
// textures.json plus the textures/ tree into CacheDir. Temporary
// extraction directories are removed on every exit path.
func (b *Builder) Build() error {
	log := b.Log
	if log == nil {
		log = logrus.New()
	}

	if err := os.RemoveAll(b.CacheDir); err != nil {
		return fmt.Errorf("remove old cache dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(b.CacheDir, "textures"), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	s := &buildState{
		Builder:        b,
		log:            log,
		models:         make(map[string]map[string]any),
		blocks:         make(map[string]map[string]any),
		copiedTextures: make(map[string]struct{}),
	}
	defer s.cleanup()

	if err := s.extractPacks(); err != nil {
		return err
	}
	if err := s.resolveBlocks(); err != nil {
		return err
	}
	return s.writeResult()
}

func (s *buildState) extractPacks() error {
	for _, packPath := range s.PackPaths {
		p, err := extractPack(packPath)
		if err != nil {
			return err
		}
		s.packs = append(s.packs, p)
		s.log.Debugf("extracted %s (asset root %s)", packPath, p.assetRoot)
	}
	return nil
}

func (s *buildState) resolveBlocks() error {
	names := append([]string(nil), s.BlockNames...)
	sort.Strings(names)

	for i, name := range names {
		if err := s.resolveBlock(name); err != nil {
			return fmt.Errorf("resolve block %s: %w", name, err)
		}
		if s.OnProgress != nil {
			s.OnProgress(i+1, len(names), name)
		}
	}

	s.log.Infof("resolved %d of %d requested blocks, %d models, %d textures",
		len(s.blocks), len(names), len(s.models), len(s.copiedTextures))
	return nil
}

// writeResult serializes the aggregate document: a "models" mapping
// plus one top-level key per resolved block. Map keys marshal sorted,
// so the output is byte-stable across builds.
func (s *buildState) writeResult() error {
	out := make(map[string]any, len(s.blocks)+1)
	out["models"] = s.models
	for name, doc := range s.blocks {
		out[name] = doc
	}

	buf, err := json.MarshalIndent(out, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	outFile := filepath.Join(s.CacheDir, "textures.json")
	if err := os.WriteFile(outFile, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	return nil
}

func (s *buildState) cleanup() {
	for _, p := range s.packs {
		if p.tmpDir != "" {
			os.RemoveAll(p.tmpDir)
		}
	}
	s.packs = nil
}
