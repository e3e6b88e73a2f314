// Package convert turns a source content tree into the normalized output
// tree. Conversion is pure: it performs no I/O and never mutates its input.
package convert

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/contentchef/internal/domain"
	"github.com/heartmarshall/contentchef/internal/lang"
)

// LanguageService resolves language codes.
type LanguageService interface {
	Lookup(code string) (lang.Language, error)
	SubtitleLanguage(code string) (lang.Language, bool)
	SubtitleSupported(code string) bool
}

// Tables holds the lookup tables of one conversion run. They are read-only
// while the run is in progress and may be shared between runs.
type Tables struct {
	// SlugBlacklist excludes nodes, and their subtrees, by slug.
	SlugBlacklist map[string]bool
	// TopicsBySlug resolves slugs referenced by replacement descriptors.
	TopicsBySlug map[string]domain.Node
	// TopicReplacements maps a topic slug to the topics spliced in its place.
	TopicReplacements map[string][]domain.Replacement
	// CommonCoreTags maps an exercise slug to its common-core tag.
	CommonCoreTags map[string]string
}

// VideoSource selects where packaged video files are fetched from.
type VideoSource string

const (
	VideoSourceYouTube VideoSource = "youtube"
	VideoSourceCDN     VideoSource = "cdn"
)

func (s VideoSource) IsValid() bool {
	switch s {
	case VideoSourceYouTube, VideoSourceCDN:
		return true
	}
	return false
}

// Options tunes conversion output.
type Options struct {
	VideoSource VideoSource
}

// Converter converts source nodes for a single target language.
// A Converter accumulates Stats and must not be shared between goroutines;
// create one per run.
type Converter struct {
	log    *slog.Logger
	langs  LanguageService
	tables Tables
	target lang.Language
	opts   Options
	stats  Stats
}

// New creates a Converter for targetLang. An unrecognized target language is
// a configuration error and is returned wrapped around domain.ErrUnknownLanguage.
func New(log *slog.Logger, langs LanguageService, tables Tables, targetLang string, opts Options) (*Converter, error) {
	target, err := langs.Lookup(targetLang)
	if err != nil {
		return nil, fmt.Errorf("target language: %w", err)
	}
	if opts.VideoSource == "" {
		opts.VideoSource = VideoSourceYouTube
	}
	if !opts.VideoSource.IsValid() {
		return nil, fmt.Errorf("video source %q: %w", opts.VideoSource, domain.ErrValidation)
	}
	return &Converter{
		log:    log.With(slog.String("lang", target.Code)),
		langs:  langs,
		tables: tables,
		target: target,
		opts:   opts,
	}, nil
}

// Target returns the resolved target language.
func (c *Converter) Target() lang.Language {
	return c.target
}

// Stats returns the counters accumulated so far.
func (c *Converter) Stats() Stats {
	return c.stats
}

// Convert converts node and its subtree. It reports false when the node is
// blacklisted, rejected, or has nothing left after pruning.
func (c *Converter) Convert(node domain.Node) (domain.ContentNode, bool) {
	if node == nil {
		return nil, false
	}

	slug := node.Base().Slug
	if c.tables.SlugBlacklist[slug] {
		c.stats.Blacklisted++
		c.log.Debug("skipping blacklisted node", slog.String("slug", slug))
		return nil, false
	}

	switch n := node.(type) {
	case *domain.Topic:
		return c.convertTopic(n)
	case *domain.Exercise:
		return c.convertExercise(n)
	case *domain.Video:
		return c.convertVideo(n)
	case *domain.Article:
		c.stats.Articles++
		c.log.Debug("skipping article", slog.String("slug", slug))
		return nil, false
	default:
		c.log.Error("unsupported node type", slog.String("slug", slug), slog.String("type", fmt.Sprintf("%T", node)))
		return nil, false
	}
}

// ConvertRoot converts the root topic of a source tree. It reports false
// when every branch of the tree was pruned.
func (c *Converter) ConvertRoot(root *domain.Topic) (*domain.TopicNode, bool) {
	out, ok := c.Convert(root)
	if !ok {
		return nil, false
	}
	topic, ok := out.(*domain.TopicNode)
	return topic, ok
}
