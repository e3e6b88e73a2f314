package convert

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/contentchef/internal/domain"
	"github.com/heartmarshall/contentchef/internal/lang"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConverter(t *testing.T, tables Tables, target string) *Converter {
	t.Helper()
	c, err := New(discardLogger(), lang.New(), tables, target, Options{})
	require.NoError(t, err)
	return c
}

func newCDNConverter(t *testing.T, tables Tables, target string) *Converter {
	t.Helper()
	c, err := New(discardLogger(), lang.New(), tables, target, Options{VideoSource: VideoSourceCDN})
	require.NoError(t, err)
	return c
}

func topic(slug string, children ...domain.Node) *domain.Topic {
	return &domain.Topic{
		NodeBase: domain.NodeBase{ID: "id-" + slug, Slug: slug, Title: "Topic " + slug},
		Children: children,
	}
}

func exercise(slug string, items ...domain.AssessmentItem) *domain.Exercise {
	return &domain.Exercise{
		NodeBase:     domain.NodeBase{ID: "id-" + slug, Slug: slug, Title: "Exercise " + slug},
		MasteryModel: "do-all",
		Items:        items,
	}
}

// validExercise returns an exercise with two usable questions.
func validExercise(slug string) *domain.Exercise {
	return exercise(slug,
		domain.AssessmentItem{ID: slug + "-q1", Data: `{"question":1}`, SourceURL: "https://example.org/q1"},
		domain.AssessmentItem{ID: slug + "-q2", Data: `{"question":2}`, SourceURL: "https://example.org/q2"},
	)
}

func video(slug, videoLang string, mods ...func(*domain.Video)) *domain.Video {
	ytID := "yt-" + slug
	v := &domain.Video{
		NodeBase:            domain.NodeBase{ID: "id-" + slug, Slug: slug, Title: "Video " + slug},
		YoutubeID:           ytID,
		TranslatedYoutubeID: ytID,
		Lang:                videoLang,
		License:             "CC BY",
		DownloadURLs:        map[string]string{"mp4": "https://cdn.example.org/videos/" + ytID + ".mp4"},
	}
	for _, m := range mods {
		m(v)
	}
	return v
}

func withSubtitles(langs ...string) func(*domain.Video) {
	return func(v *domain.Video) { v.SubtitleLangs = langs }
}

func withTranslation(translatedID string) func(*domain.Video) {
	return func(v *domain.Video) { v.TranslatedYoutubeID = translatedID }
}

func childSlugs(t *testing.T, n domain.ContentNode) []string {
	t.Helper()
	tn, ok := n.(*domain.TopicNode)
	require.True(t, ok, "expected *domain.TopicNode, got %T", n)
	slugs := make([]string, 0, len(tn.Children))
	for _, c := range tn.Children {
		switch cn := c.(type) {
		case *domain.TopicNode:
			slugs = append(slugs, cn.Slug)
		case *domain.ExerciseNode:
			slugs = append(slugs, cn.Slug)
		case *domain.VideoNode:
			slugs = append(slugs, cn.Slug)
		}
	}
	return slugs
}

func testLangs() LanguageService {
	return lang.New()
}
