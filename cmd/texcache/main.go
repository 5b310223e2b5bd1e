package main

import (
	"flag"

	"github.com/RayZh-hs/3Dlitematica/internal/texcache"
	"github.com/sirupsen/logrus"
)

func main() {
	configPath := flag.String("config", "texcache.yaml", "path to config file (YAML)")
	verbose := flag.Bool("verbose", false, "enable per-block progress output")
	flag.Parse()

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	if *verbose {
		log.Level = logrus.DebugLevel
	}

	cfg, err := texcache.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	blocks, err := cfg.BlockNames()
	if err != nil {
		log.Fatalf("collect block names: %v", err)
	}

	log.Infof("building texture cache for %d blocks from %d resource packs", len(blocks), len(cfg.ResourcePacks))

	builder := &texcache.Builder{
		BlockNames: blocks,
		PackPaths:  cfg.ResourcePacks,
		CacheDir:   cfg.CacheDir,
		Log:        log,
	}
	if *verbose {
		builder.OnProgress = func(done, total int, block string) {
			log.Debugf("[%d/%d] %s", done, total, block)
		}
	}

	if err := builder.Build(); err != nil {
		log.Fatalf("build texture cache: %v", err)
	}
	log.Infof("texture cache written to %s", cfg.CacheDir)
}
