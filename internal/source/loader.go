// Package source reads externally sourced content trees into domain nodes.
package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/heartmarshall/contentchef/internal/domain"
)

// Node kinds as they appear in source tree documents.
const (
	KindTopic    = "Topic"
	KindExercise = "Exercise"
	KindVideo    = "Video"
	KindArticle  = "Article"
)

type jsonNode struct {
	Kind        string     `json:"kind"`
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Children    []jsonNode `json:"children"`

	MasteryModel    string     `json:"mastery_model"`
	Thumbnail       string     `json:"thumbnail"`
	AssessmentItems []jsonItem `json:"assessment_items"`

	YoutubeID           string            `json:"youtube_id"`
	TranslatedYoutubeID string            `json:"translated_youtube_id"`
	Lang                string            `json:"lang"`
	License             string            `json:"license"`
	DownloadURLs        map[string]string `json:"download_urls"`
	SubtitleLanguages   []string          `json:"subtitle_languages"`
}

type jsonItem struct {
	ID        string  `json:"id"`
	ItemData  *string `json:"item_data"`
	SourceURL string  `json:"source_url"`
}

// LoadTree reads a source tree document from path.
func LoadTree(path string) (*domain.Topic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source tree: %w", err)
	}
	defer f.Close()

	root, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("source tree %s: %w", path, err)
	}
	return root, nil
}

// Decode reads a source tree document. The root node must be a topic.
func Decode(r io.Reader) (*domain.Topic, error) {
	var doc jsonNode
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	node, err := toDomain(doc, "root")
	if err != nil {
		return nil, err
	}
	root, ok := node.(*domain.Topic)
	if !ok {
		return nil, domain.NewValidationError("root", fmt.Sprintf("must be a %s, got %s", KindTopic, doc.Kind))
	}
	return root, nil
}

func toDomain(n jsonNode, path string) (domain.Node, error) {
	if n.Slug == "" {
		return nil, domain.NewValidationError(path+".slug", "required")
	}

	base := domain.NodeBase{
		ID:    n.ID,
		Slug:  n.Slug,
		Title: n.Title,
	}
	if n.Description != nil {
		base.Description = *n.Description
	}

	switch n.Kind {
	case KindTopic:
		t := &domain.Topic{NodeBase: base, Children: make([]domain.Node, 0, len(n.Children))}
		for i, c := range n.Children {
			child, err := toDomain(c, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			t.Children = append(t.Children, child)
		}
		return t, nil

	case KindExercise:
		items := make([]domain.AssessmentItem, 0, len(n.AssessmentItems))
		for _, it := range n.AssessmentItems {
			item := domain.AssessmentItem{ID: it.ID, SourceURL: it.SourceURL}
			if it.ItemData != nil {
				item.Data = *it.ItemData
			}
			items = append(items, item)
		}
		return &domain.Exercise{
			NodeBase:     base,
			MasteryModel: n.MasteryModel,
			Thumbnail:    n.Thumbnail,
			Items:        items,
		}, nil

	case KindVideo:
		translated := n.TranslatedYoutubeID
		if translated == "" {
			translated = n.YoutubeID
		}
		return &domain.Video{
			NodeBase:            base,
			YoutubeID:           n.YoutubeID,
			TranslatedYoutubeID: translated,
			Lang:                n.Lang,
			License:             n.License,
			Thumbnail:           n.Thumbnail,
			DownloadURLs:        n.DownloadURLs,
			SubtitleLangs:       n.SubtitleLanguages,
		}, nil

	case KindArticle:
		return &domain.Article{NodeBase: base}, nil
	}

	return nil, domain.NewValidationError(path+".kind", fmt.Sprintf("unknown kind %q", n.Kind))
}
