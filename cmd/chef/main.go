// Command chef converts per-language source content trees into channel
// trees ready for packaging. Each language is converted independently and
// written to <trees-dir>/ricecooker_json_tree_<lang>.json.
//
// Flags:
//
//	--lang               comma-separated target languages (required)
//	--variant            curation variant applied on top of the language rules
//	--english-subtitles  add an English-audio clone next to every dubbed video
//	--video-source       youtube or cdn (overrides config)
//	--curation           path to curation YAML file (overrides config)
//	--common-core        path to common-core tag CSV file (overrides config)
//	--source-dir         directory holding <lang>.json source trees (overrides config)
//	--trees-dir          output directory (overrides config)
//	--config             path to YAML config file (default: CONFIG_PATH or ./config.yaml)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/heartmarshall/contentchef/internal/app"
	"github.com/heartmarshall/contentchef/internal/app/chef"
	"github.com/heartmarshall/contentchef/internal/commoncore"
	"github.com/heartmarshall/contentchef/internal/config"
	"github.com/heartmarshall/contentchef/internal/convert"
	"github.com/heartmarshall/contentchef/internal/curation"
	"github.com/heartmarshall/contentchef/internal/export"
	"github.com/heartmarshall/contentchef/internal/lang"
	"github.com/heartmarshall/contentchef/internal/source"
)

// Compile-time interface assertions.
var (
	_ chef.TreeProvider       = (*source.Provider)(nil)
	_ chef.Curation           = (*curation.File)(nil)
	_ convert.LanguageService = (*lang.Service)(nil)
)

func main() {
	langFlag := flag.String("lang", "", "comma-separated target languages (required)")
	variantFlag := flag.String("variant", "", "curation variant")
	englishSubsFlag := flag.Bool("english-subtitles", false, "add an English-audio clone next to every dubbed video")
	videoSourceFlag := flag.String("video-source", "", "video file source: youtube or cdn")
	curationFlag := flag.String("curation", "", "path to curation YAML file")
	commonCoreFlag := flag.String("common-core", "", "path to common-core tag CSV file")
	sourceDirFlag := flag.String("source-dir", "", "directory holding <lang>.json source trees")
	treesDirFlag := flag.String("trees-dir", "", "output directory for channel trees")
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *videoSourceFlag != "" {
		cfg.Chef.VideoSource = *videoSourceFlag
	}
	if *curationFlag != "" {
		cfg.Chef.CurationPath = *curationFlag
	}
	if *commonCoreFlag != "" {
		cfg.Chef.CommonCorePath = *commonCoreFlag
	}
	if *sourceDirFlag != "" {
		cfg.Chef.SourceDir = *sourceDirFlag
	}
	if *treesDirFlag != "" {
		cfg.Chef.TreesDir = *treesDirFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting chef", slog.String("version", app.BuildVersion()))

	var langs []string
	for _, code := range strings.Split(*langFlag, ",") {
		if code = strings.TrimSpace(code); code != "" {
			langs = append(langs, code)
		}
	}
	if len(langs) == 0 {
		logger.Error("--lang is required")
		os.Exit(1)
	}

	rules, err := curation.Load(cfg.Chef.CurationPath)
	if err != nil {
		logger.Error("load curation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tags, err := commoncore.Load(cfg.Chef.CommonCorePath)
	if err != nil {
		logger.Error("load common core tags", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pipeline := chef.NewPipeline(logger, source.NewProvider(cfg.Chef.SourceDir), rules, lang.New(), chef.Options{
		Variant:          *variantFlag,
		EnglishSubtitles: *englishSubsFlag,
		VideoSource:      convert.VideoSource(cfg.Chef.VideoSource),
		TreesDir:         cfg.Chef.TreesDir,
		Channel: export.ChannelConfig{
			SourceDomain: cfg.Chef.SourceDomain,
			Thumbnail:    cfg.Chef.ChannelThumbnail,
		},
		CommonCoreTags: tags,
		Concurrency:    cfg.Chef.Concurrency,
	})

	_, runErr := pipeline.RunAll(ctx, langs)

	results := pipeline.Results()
	for _, code := range slices.Sorted(maps.Keys(results)) {
		r := results[code]
		logger.Info("tree written",
			slog.String("lang", r.Language),
			slog.String("path", r.Path),
			slog.Bool("empty", r.Empty),
			slog.Int("rejected", r.Stats.Rejected()),
		)
	}

	if runErr != nil {
		logger.Error("chef failed", slog.String("error", runErr.Error()))
		os.Exit(1)
	}
	logger.Info("chef completed successfully", slog.Int("languages", len(results)))
}
