package convert

import (
	"iter"
	"log/slog"

	"github.com/heartmarshall/contentchef/internal/domain"
	"github.com/heartmarshall/contentchef/internal/mapping"
)

func (c *Converter) convertExercise(e *domain.Exercise) (domain.ContentNode, bool) {
	mastery, ok := mapping.MasteryModel(e.MasteryModel)
	if !ok {
		c.stats.MasteryFallbacks++
		c.log.Warn("unknown mastery model",
			slog.String("mastery_model", e.MasteryModel),
			slog.String("exercise_id", e.ID),
		)
		mastery = mapping.DefaultMasteryModel
	}

	tags := []string{}
	if tag, ok := c.tables.CommonCoreTags[e.Slug]; ok {
		tags = append(tags, tag)
	}

	exercise := &domain.ExerciseNode{
		ContentBase: domain.ContentBase{
			Kind:        domain.KindExercise,
			SourceID:    e.ID,
			Title:       e.Title,
			Description: domain.TruncateDescription(e.Description),
			Slug:        e.Slug,
			Thumbnail:   e.Thumbnail,
		},
		ExerciseData: mastery,
		License:      mapping.ExerciseLicense(),
		Questions:    FilterQuestions(e.AssessmentItems()),
		Tags:         tags,
	}

	if len(exercise.Questions) == 0 {
		c.stats.EmptyExercises++
		c.log.Debug("skipping exercise without questions", slog.String("slug", e.Slug))
		return nil, false
	}
	c.stats.Exercises++
	return exercise, true
}

// FilterQuestions keeps the items whose payload is present and not the
// literal "null", in source order.
func FilterQuestions(items iter.Seq[domain.AssessmentItem]) []domain.Question {
	questions := []domain.Question{}
	for it := range items {
		if !usablePayload(it.Data) {
			continue
		}
		questions = append(questions, domain.Question{
			Type:      domain.QuestionTypePerseus,
			ID:        it.ID,
			ItemData:  it.Data,
			SourceURL: it.SourceURL,
		})
	}
	return questions
}

func usablePayload(data string) bool {
	return data != "" && data != "null"
}
