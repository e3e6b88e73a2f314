package convert

import "log/slog"

// Stats counts conversion outcomes of one run.
type Stats struct {
	Topics    int
	Exercises int
	Videos    int

	Blacklisted              int
	Articles                 int
	EmptyTopics              int
	EmptyExercises           int
	InconsistentTranslations int
	MissingDownloads         int
	Untranslated             int
	UnknownLicenses          int
	UnresolvedReplacements   int

	MasteryFallbacks  int
	SubtitlesAttached int
	SubtitlesSkipped  int
}

// Rejected returns the number of nodes dropped because of bad or
// inadmissible source data.
func (s Stats) Rejected() int {
	return s.InconsistentTranslations + s.MissingDownloads + s.Untranslated +
		s.UnknownLicenses + s.UnresolvedReplacements
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("topics", s.Topics),
		slog.Int("exercises", s.Exercises),
		slog.Int("videos", s.Videos),
		slog.Int("blacklisted", s.Blacklisted),
		slog.Int("articles", s.Articles),
		slog.Int("empty_topics", s.EmptyTopics),
		slog.Int("empty_exercises", s.EmptyExercises),
		slog.Int("inconsistent_translations", s.InconsistentTranslations),
		slog.Int("missing_downloads", s.MissingDownloads),
		slog.Int("untranslated", s.Untranslated),
		slog.Int("unknown_licenses", s.UnknownLicenses),
		slog.Int("unresolved_replacements", s.UnresolvedReplacements),
		slog.Int("mastery_fallbacks", s.MasteryFallbacks),
		slog.Int("subtitles_attached", s.SubtitlesAttached),
		slog.Int("subtitles_skipped", s.SubtitlesSkipped),
	)
}
