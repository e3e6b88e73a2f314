package convert

import (
	"log/slog"

	"github.com/heartmarshall/contentchef/internal/domain"
)

func (c *Converter) convertTopic(t *domain.Topic) (domain.ContentNode, bool) {
	c.log.Debug("converting topic", slog.String("slug", t.Slug))

	topic := domain.NewTopicNode(t.ID, t.Slug, t.Title, t.Description)
	for _, child := range t.Children {
		if ct, ok := child.(*domain.Topic); ok {
			if replacements, ok := c.tables.TopicReplacements[ct.Slug]; ok {
				c.log.Debug("replacing topic",
					slog.String("slug", ct.Slug),
					slog.String("parent", t.Slug),
					slog.Int("replacements", len(replacements)),
				)
				topic.Children = append(topic.Children, c.splice(replacements)...)
				continue
			}
		}
		if out, ok := c.Convert(child); ok {
			topic.Children = append(topic.Children, out)
		}
	}

	if len(topic.Children) == 0 {
		c.stats.EmptyTopics++
		c.log.Debug("pruning empty topic", slog.String("slug", t.Slug))
		return nil, false
	}
	c.stats.Topics++
	return topic, true
}

// splice builds the replacement topics in descriptor order. A replacement
// topic, or an intermediate topic of a three-level replacement, is kept only
// if at least one referenced node converted.
func (c *Converter) splice(replacements []domain.Replacement) []domain.ContentNode {
	var out []domain.ContentNode
	for _, r := range replacements {
		rtopic := domain.NewTopicNode(r.Slug, r.Slug, r.TranslatedTitle, r.Description)

		for _, rc := range r.Children {
			if !rc.IsNested() {
				if n, ok := c.convertBySlug(rc.Slug); ok {
					rtopic.Children = append(rtopic.Children, n)
				}
				continue
			}

			inter := domain.NewTopicNode(rc.Slug, rc.Slug, rc.TranslatedTitle, rc.Description)
			for _, slug := range rc.Children {
				if n, ok := c.convertBySlug(slug); ok {
					inter.Children = append(inter.Children, n)
				}
			}
			if len(inter.Children) > 0 {
				c.stats.Topics++
				rtopic.Children = append(rtopic.Children, inter)
			}
		}

		if len(rtopic.Children) > 0 {
			c.stats.Topics++
			out = append(out, rtopic)
		} else {
			c.log.Debug("dropping empty replacement topic", slog.String("slug", r.Slug))
		}
	}
	return out
}

func (c *Converter) convertBySlug(slug string) (domain.ContentNode, bool) {
	node, ok := c.tables.TopicsBySlug[slug]
	if !ok {
		c.stats.UnresolvedReplacements++
		c.log.Error("replacement references unknown slug", slog.String("slug", slug))
		return nil, false
	}
	return c.Convert(node)
}
