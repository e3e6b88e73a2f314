package domain

import (
	"iter"
	"maps"
	"slices"
)

// Node is a node of the source content tree.
// The set of implementations is closed: *Topic, *Exercise, *Video and *Article.
type Node interface {
	// Base returns the fields shared by every source node.
	Base() *NodeBase
	sourceNode()
}

// NodeBase holds the fields common to all source nodes.
// An empty Description means the source carried none.
type NodeBase struct {
	ID          string
	Slug        string
	Title       string
	Description string
}

func (b *NodeBase) Base() *NodeBase { return b }

// Topic is an interior node of the source tree.
type Topic struct {
	NodeBase
	Children []Node
}

func (*Topic) sourceNode() {}

// AssessmentItem is one question of a source exercise.
// Data is the opaque question payload; it may be empty or the literal "null".
type AssessmentItem struct {
	ID        string
	Data      string
	SourceURL string
}

// Exercise is a source exercise with its assessment items.
type Exercise struct {
	NodeBase
	MasteryModel string
	Thumbnail    string
	Items        []AssessmentItem

	// LoadItems, when set, produces the assessment items on demand and
	// takes precedence over Items.
	LoadItems func() []AssessmentItem
}

func (*Exercise) sourceNode() {}

// AssessmentItems yields the exercise's items in source order.
func (e *Exercise) AssessmentItems() iter.Seq[AssessmentItem] {
	return func(yield func(AssessmentItem) bool) {
		items := e.Items
		if e.LoadItems != nil {
			items = e.LoadItems()
		}
		for _, it := range items {
			if !yield(it) {
				return
			}
		}
	}
}

// Video is a source video. TranslatedYoutubeID equals YoutubeID unless a
// dubbed asset exists for the tree's language.
type Video struct {
	NodeBase
	YoutubeID           string
	TranslatedYoutubeID string
	Lang                string
	License             string
	Thumbnail           string
	DownloadURLs        map[string]string
	SubtitleLangs       []string

	// Dubbed marks an original video that received an English clone
	// during dub duplication. The clone itself is never marked.
	Dubbed bool
}

func (*Video) sourceNode() {}

// SubtitleLanguages returns the languages with an available subtitle
// track, in the order the source listed them.
func (v *Video) SubtitleLanguages() []string {
	return slices.Clone(v.SubtitleLangs)
}

// Clone returns a deep copy of the video.
func (v *Video) Clone() *Video {
	c := *v
	c.DownloadURLs = maps.Clone(v.DownloadURLs)
	c.SubtitleLangs = slices.Clone(v.SubtitleLangs)
	return &c
}

// Article is a source article. Articles are not convertible yet.
type Article struct {
	NodeBase
}

func (*Article) sourceNode() {}
