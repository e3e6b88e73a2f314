// Package export wraps converted trees into channel documents and writes
// them for the packaging step.
package export

import (
	"fmt"

	"github.com/heartmarshall/contentchef/internal/domain"
	"github.com/heartmarshall/contentchef/internal/lang"
	"github.com/heartmarshall/contentchef/internal/mapping"
)

// ChannelConfig holds the channel fields that do not depend on the language.
type ChannelConfig struct {
	SourceDomain string
	Thumbnail    string
}

// ChannelNode is the root document handed to packaging.
type ChannelNode struct {
	SourceDomain string               `json:"source_domain"`
	SourceID     string               `json:"source_id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Thumbnail    string               `json:"thumbnail,omitempty"`
	Language     string               `json:"language"`
	Children     []domain.ContentNode `json:"children"`
}

// Channel builds the channel document for language l around the converted
// root. A nil root yields a channel with no children.
func Channel(l lang.Language, cfg ChannelConfig, root *domain.TopicNode) ChannelNode {
	description, ok := mapping.ChannelDescription(l.Code)
	if !ok {
		description = fmt.Sprintf("Khan Academy content for %s.", l.Name)
	}

	children := []domain.ContentNode{}
	if root != nil {
		children = root.Children
	}

	return ChannelNode{
		SourceDomain: cfg.SourceDomain,
		SourceID:     fmt.Sprintf("KA (%s)", l.Code),
		Title:        fmt.Sprintf("Khan Academy (%s)", l.NativeName),
		Description:  domain.TruncateDescription(description),
		Thumbnail:    cfg.Thumbnail,
		Language:     l.Code,
		Children:     children,
	}
}
