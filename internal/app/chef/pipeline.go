// Package chef runs per-language conversions: load the source tree, apply
// curation, convert, and write the channel tree for packaging.
package chef

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/contentchef/internal/convert"
	"github.com/heartmarshall/contentchef/internal/domain"
	"github.com/heartmarshall/contentchef/internal/export"
	"github.com/heartmarshall/contentchef/internal/source"
	"github.com/heartmarshall/contentchef/pkg/ctxutil"
)

// TreeProvider supplies source trees and their slug index per language.
type TreeProvider interface {
	Tree(lang string) (*domain.Topic, map[string]domain.Node, error)
}

// Curation supplies editorial rules per language and variant.
type Curation interface {
	SlugBlacklist(lang, variant string) map[string]bool
	TopicReplacements(lang, variant string) map[string][]domain.Replacement
}

// Options holds settings shared by every language run.
type Options struct {
	Variant string
	// EnglishSubtitles adds an English-audio clone next to every dubbed video.
	EnglishSubtitles bool
	VideoSource      convert.VideoSource
	TreesDir         string
	Channel          export.ChannelConfig
	CommonCoreTags   map[string]string
	Concurrency      int
}

// Result is the outcome of one language run.
type Result struct {
	RunID    uuid.UUID
	Language string
	Path     string
	Empty    bool
	Stats    convert.Stats
	Duration time.Duration
}

// Pipeline converts source trees into channel trees.
type Pipeline struct {
	log      *slog.Logger
	trees    TreeProvider
	curation Curation
	langs    convert.LanguageService
	opts     Options

	mu      sync.Mutex
	results map[string]Result
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, trees TreeProvider, curation Curation, langs convert.LanguageService, opts Options) *Pipeline {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	return &Pipeline{
		log:      log,
		trees:    trees,
		curation: curation,
		langs:    langs,
		opts:     opts,
		results:  make(map[string]Result),
	}
}

// Results returns per-language results of completed runs keyed by canonical code.
func (p *Pipeline) Results() map[string]Result {
	p.mu.Lock()
	defer p.mu.Unlock()
	return maps.Clone(p.results)
}

// Run converts the tree of a single language and writes it to the trees
// directory. An unrecognized language code is returned wrapped around
// domain.ErrUnknownLanguage.
func (p *Pipeline) Run(ctx context.Context, code string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	target, err := p.langs.Lookup(code)
	if err != nil {
		return Result{}, fmt.Errorf("run %q: %w", code, err)
	}

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	convLog := ctxutil.Logger(ctx, p.log)
	ctx = ctxutil.WithLanguage(ctx, target.Code)
	log := ctxutil.Logger(ctx, p.log)

	log.Info("starting conversion",
		slog.String("variant", p.opts.Variant),
		slog.Bool("english_subtitles", p.opts.EnglishSubtitles),
		slog.String("video_source", string(p.opts.VideoSource)),
	)

	root, index, err := p.trees.Tree(target.Code)
	if err != nil {
		return Result{}, fmt.Errorf("run %s: load source tree: %w", target.Code, err)
	}

	if p.opts.EnglishSubtitles {
		root = convert.DuplicateDubbed(root)
		index = reindex(root, index)
	}

	tables := convert.Tables{
		SlugBlacklist:     p.curation.SlugBlacklist(target.Code, p.opts.Variant),
		TopicsBySlug:      index,
		TopicReplacements: p.curation.TopicReplacements(target.Code, p.opts.Variant),
		CommonCoreTags:    p.opts.CommonCoreTags,
	}

	conv, err := convert.New(convLog, p.langs, tables, target.Code, convert.Options{VideoSource: p.opts.VideoSource})
	if err != nil {
		return Result{}, fmt.Errorf("run %s: %w", target.Code, err)
	}

	out, ok := conv.ConvertRoot(root)
	if !ok {
		log.Warn("nothing left after conversion")
	}

	channelLang := conv.Target()
	path := export.TreePath(p.opts.TreesDir, channelLang.Code)
	if err := export.WriteTree(path, export.Channel(channelLang, p.opts.Channel, out)); err != nil {
		return Result{}, fmt.Errorf("run %s: write tree: %w", target.Code, err)
	}

	res := Result{
		RunID:    runID,
		Language: target.Code,
		Path:     path,
		Empty:    !ok,
		Stats:    conv.Stats(),
		Duration: time.Since(start),
	}

	p.mu.Lock()
	p.results[target.Code] = res
	p.mu.Unlock()

	log.Info("conversion completed",
		slog.String("path", path),
		slog.Any("stats", res.Stats),
		slog.Int("rejected", res.Stats.Rejected()),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// RunAll runs every language concurrently, at most Options.Concurrency at a
// time. All codes are resolved before any run starts, so an unknown code
// fails the whole batch without writing anything. The first failing run
// cancels runs that have not started yet. Results are returned in input order.
func (p *Pipeline) RunAll(ctx context.Context, codes []string) ([]Result, error) {
	for _, code := range codes {
		if _, err := p.langs.Lookup(code); err != nil {
			return nil, fmt.Errorf("language %q: %w", code, err)
		}
	}

	results := make([]Result, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for i, code := range codes {
		g.Go(func() error {
			res, err := p.Run(gctx, code)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	p.log.Info("all conversions completed", slog.Int("languages", len(codes)))
	return results, nil
}

// reindex indexes the duplicated tree and keeps entries from the original
// index that the new tree no longer reaches.
func reindex(root *domain.Topic, old map[string]domain.Node) map[string]domain.Node {
	idx := source.Index(root)
	for slug, node := range old {
		if _, ok := idx[slug]; !ok {
			idx[slug] = node
		}
	}
	return idx
}
