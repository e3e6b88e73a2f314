package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideo_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := &Video{
		NodeBase:            NodeBase{ID: "v1", Slug: "intro", Title: "Intro"},
		YoutubeID:           "abc",
		TranslatedYoutubeID: "xyz",
		Lang:                "fr",
		DownloadURLs:        map[string]string{"mp4": "https://cdn/abc.mp4"},
		SubtitleLangs:       []string{"fr", "en"},
	}

	clone := orig.Clone()
	clone.DownloadURLs["mp4"] = "changed"
	clone.SubtitleLangs[0] = "de"
	clone.Title = "Other"

	assert.Equal(t, "https://cdn/abc.mp4", orig.DownloadURLs["mp4"])
	assert.Equal(t, []string{"fr", "en"}, orig.SubtitleLangs)
	assert.Equal(t, "Intro", orig.Title)
}

func TestVideo_SubtitleLanguagesPreservesOrder(t *testing.T) {
	t.Parallel()

	v := &Video{SubtitleLangs: []string{"pt-BR", "en", "pt"}}
	langs := v.SubtitleLanguages()
	assert.Equal(t, []string{"pt-BR", "en", "pt"}, langs)

	langs[0] = "xx"
	assert.Equal(t, "pt-BR", v.SubtitleLangs[0], "accessor must return a copy")
}

func TestExercise_AssessmentItems(t *testing.T) {
	t.Parallel()

	t.Run("static items", func(t *testing.T) {
		t.Parallel()
		e := &Exercise{Items: []AssessmentItem{{ID: "1"}, {ID: "2"}}}

		var ids []string
		for it := range e.AssessmentItems() {
			ids = append(ids, it.ID)
		}
		assert.Equal(t, []string{"1", "2"}, ids)
	})

	t.Run("loader takes precedence and is lazy", func(t *testing.T) {
		t.Parallel()
		calls := 0
		e := &Exercise{
			Items: []AssessmentItem{{ID: "static"}},
			LoadItems: func() []AssessmentItem {
				calls++
				return []AssessmentItem{{ID: "loaded"}}
			},
		}
		require.Equal(t, 0, calls)

		var ids []string
		for it := range e.AssessmentItems() {
			ids = append(ids, it.ID)
		}
		assert.Equal(t, []string{"loaded"}, ids)
		assert.Equal(t, 1, calls)
	})

	t.Run("early break", func(t *testing.T) {
		t.Parallel()
		e := &Exercise{Items: []AssessmentItem{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
		n := 0
		for range e.AssessmentItems() {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})
}

func TestNodeBase_SharedAccess(t *testing.T) {
	t.Parallel()

	nodes := []Node{
		&Topic{NodeBase: NodeBase{Slug: "t"}},
		&Exercise{NodeBase: NodeBase{Slug: "e"}},
		&Video{NodeBase: NodeBase{Slug: "v"}},
		&Article{NodeBase: NodeBase{Slug: "a"}},
	}
	var slugs []string
	for _, n := range nodes {
		slugs = append(slugs, n.Base().Slug)
	}
	assert.Equal(t, []string{"t", "e", "v", "a"}, slugs)
}

func TestNewTopicNode(t *testing.T) {
	t.Parallel()

	n := NewTopicNode("id-1", "math", "Math", "")
	assert.Equal(t, KindTopic, n.NodeKind())
	assert.Equal(t, "", n.Description)
	assert.NotNil(t, n.Children)
	assert.Empty(t, n.Children)
}
