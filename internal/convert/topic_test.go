package convert

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/contentchef/internal/domain"
)

func TestConvertTopic_PrunesDeadBranches(t *testing.T) {
	t.Parallel()

	tables := Tables{SlugBlacklist: map[string]bool{"banned": true}}
	c := newTestConverter(t, tables, "es")

	root := topic("root",
		topic("t1", &domain.Article{NodeBase: domain.NodeBase{Slug: "art"}}),
		topic("t2", exercise("null-only", domain.AssessmentItem{ID: "q", Data: "null"})),
		video("banned", "es"),
	)

	out, ok := c.Convert(root)
	assert.False(t, ok)
	assert.Nil(t, out)
	assert.Equal(t, 3, c.Stats().EmptyTopics)
}

func TestConvertTopic_KeepsSingleAdmissiblePath(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t, Tables{}, "es")
	root := topic("root",
		topic("unit",
			topic("lesson", video("ok", "es")),
			topic("dead", video("fr-only", "fr")),
		),
		&domain.Article{NodeBase: domain.NodeBase{Slug: "art"}},
	)

	out, ok := c.Convert(root)
	require.True(t, ok)
	assert.Equal(t, []string{"unit"}, childSlugs(t, out))

	unit := out.(*domain.TopicNode).Children[0]
	assert.Equal(t, []string{"lesson"}, childSlugs(t, unit))

	lesson := unit.(*domain.TopicNode).Children[0]
	assert.Equal(t, []string{"ok"}, childSlugs(t, lesson))
}

func TestConvertTopic_DescriptionTruncated(t *testing.T) {
	t.Parallel()

	c := newTestConverter(t, Tables{}, "es")
	root := topic("root", validExercise("ex"))
	root.Description = string(bytes.Repeat([]byte("d"), 500))

	out, ok := c.Convert(root)
	require.True(t, ok)
	assert.Len(t, out.(*domain.TopicNode).Description, domain.MaxDescriptionLength)
}

func TestConvertTopic_TwoLevelReplacementOrder(t *testing.T) {
	t.Parallel()

	tables := Tables{
		TopicsBySlug: map[string]domain.Node{
			"a": validExercise("a"),
			"b": validExercise("b"),
			"c": validExercise("c"),
		},
		TopicReplacements: map[string][]domain.Replacement{
			"old": {
				{Slug: "r1", TranslatedTitle: "Uno", Children: []domain.ReplacementChild{{Slug: "c"}, {Slug: "a"}}},
				{Slug: "r2", TranslatedTitle: "Dos", Description: "segunda", Children: []domain.ReplacementChild{{Slug: "b"}}},
			},
		},
	}
	c := newTestConverter(t, tables, "es")

	root := topic("root",
		validExercise("first"),
		topic("old", video("ignored", "es")),
		validExercise("last"),
	)

	out, ok := c.Convert(root)
	require.True(t, ok)
	assert.Equal(t, []string{"first", "r1", "r2", "last"}, childSlugs(t, out))

	children := out.(*domain.TopicNode).Children
	r1 := children[1].(*domain.TopicNode)
	assert.Equal(t, "Uno", r1.Title)
	assert.Equal(t, "r1", r1.SourceID)
	assert.Equal(t, []string{"c", "a"}, childSlugs(t, r1))

	r2 := children[2].(*domain.TopicNode)
	assert.Equal(t, "segunda", r2.Description)
	assert.Equal(t, []string{"b"}, childSlugs(t, r2))

	assert.Equal(t, 0, c.Stats().Videos, "the replaced topic's own children are not converted")
}

func TestConvertTopic_ThreeLevelReplacement(t *testing.T) {
	t.Parallel()

	tables := Tables{
		TopicsBySlug: map[string]domain.Node{
			"a": validExercise("a"),
			"b": validExercise("b"),
			"c": video("c", "es"),
		},
		TopicReplacements: map[string][]domain.Replacement{
			"old": {{
				Slug:            "r1",
				TranslatedTitle: "Uno",
				Children: []domain.ReplacementChild{
					{Slug: "g1", TranslatedTitle: "Grupo", Children: []string{"b", "a"}},
					{Slug: "c"},
				},
			}},
		},
	}
	c := newTestConverter(t, tables, "es")

	out, ok := c.Convert(topic("root", topic("old")))
	require.True(t, ok)
	assert.Equal(t, []string{"r1"}, childSlugs(t, out))

	r1 := out.(*domain.TopicNode).Children[0]
	assert.Equal(t, []string{"g1", "c"}, childSlugs(t, r1))

	g1 := r1.(*domain.TopicNode).Children[0].(*domain.TopicNode)
	assert.Equal(t, "Grupo", g1.Title)
	assert.Equal(t, []string{"b", "a"}, childSlugs(t, g1))
}

func TestConvertTopic_NestedChildWithoutGrandchildren(t *testing.T) {
	t.Parallel()

	tables := Tables{
		TopicsBySlug: map[string]domain.Node{
			"grp": validExercise("grp"),
			"a":   validExercise("a"),
		},
		TopicReplacements: map[string][]domain.Replacement{
			"old": {
				{Slug: "r1", TranslatedTitle: "Uno", Children: []domain.ReplacementChild{
					{Slug: "grp", TranslatedTitle: "Group", Children: []string{}},
				}},
				{Slug: "r2", TranslatedTitle: "Dos", Children: []domain.ReplacementChild{
					{Slug: "grp", TranslatedTitle: "Group", Children: []string{}},
					{Slug: "a"},
				}},
			},
		},
	}
	c := newTestConverter(t, tables, "es")

	out, ok := c.Convert(topic("root", topic("old")))
	require.True(t, ok)
	assert.Equal(t, []string{"r2"}, childSlugs(t, out))

	r2 := out.(*domain.TopicNode).Children[0]
	assert.Equal(t, []string{"a"}, childSlugs(t, r2))
	assert.Equal(t, 1, c.Stats().Exercises, "grp is not resolved through the slug index")
}

func TestConvertTopic_EmptyReplacementsDropped(t *testing.T) {
	t.Parallel()

	tables := Tables{
		SlugBlacklist: map[string]bool{"banned": true},
		TopicsBySlug: map[string]domain.Node{
			"art":    &domain.Article{NodeBase: domain.NodeBase{Slug: "art"}},
			"banned": validExercise("banned"),
			"ok":     validExercise("ok"),
		},
		TopicReplacements: map[string][]domain.Replacement{
			"old": {
				{
					Slug: "r1", TranslatedTitle: "Uno",
					Children: []domain.ReplacementChild{
						{Slug: "g1", TranslatedTitle: "Vacío", Children: []string{"art", "missing"}},
						{Slug: "ok"},
					},
				},
				{Slug: "r2", TranslatedTitle: "Dos", Children: []domain.ReplacementChild{{Slug: "banned"}}},
			},
		},
	}
	c := newTestConverter(t, tables, "es")

	out, ok := c.Convert(topic("root", topic("old")))
	require.True(t, ok)
	assert.Equal(t, []string{"r1"}, childSlugs(t, out))

	r1 := out.(*domain.TopicNode).Children[0]
	assert.Equal(t, []string{"ok"}, childSlugs(t, r1))

	stats := c.Stats()
	assert.Equal(t, 1, stats.UnresolvedReplacements)
	assert.Equal(t, 1, stats.Blacklisted)
}

func TestConvertTopic_AllReplacementsEmptyPrunesParent(t *testing.T) {
	t.Parallel()

	tables := Tables{
		TopicReplacements: map[string][]domain.Replacement{
			"old": {{Slug: "r1", TranslatedTitle: "Uno", Children: []domain.ReplacementChild{{Slug: "missing"}}}},
		},
	}
	c := newTestConverter(t, tables, "es")

	_, ok := c.Convert(topic("root", topic("old")))
	assert.False(t, ok)
}

func TestConvertTopic_UnresolvedSlugIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tables := Tables{
		TopicReplacements: map[string][]domain.Replacement{
			"old": {{Slug: "r1", TranslatedTitle: "Uno", Children: []domain.ReplacementChild{{Slug: "missing"}}}},
		},
	}
	c, err := New(bufferLogger(&buf), testLangs(), tables, "es", Options{})
	require.NoError(t, err)

	c.Convert(topic("root", topic("old"), validExercise("ex")))
	assert.Contains(t, buf.String(), "replacement references unknown slug")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestConvertTopic_ReplacementOnlyAppliesToTopics(t *testing.T) {
	t.Parallel()

	tables := Tables{
		TopicReplacements: map[string][]domain.Replacement{
			"ex": {{Slug: "r1", TranslatedTitle: "Uno", Children: []domain.ReplacementChild{{Slug: "missing"}}}},
		},
	}
	c := newTestConverter(t, tables, "es")

	out, ok := c.Convert(topic("root", validExercise("ex")))
	require.True(t, ok)
	assert.Equal(t, []string{"ex"}, childSlugs(t, out))
	assert.Equal(t, 0, c.Stats().UnresolvedReplacements)
}
