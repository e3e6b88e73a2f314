package convert

// ShouldIncludeSubtitle reports whether a subtitle track in language
// candidate belongs in a channel for language target. Regional variants of
// the same base language match.
func ShouldIncludeSubtitle(langs LanguageService, candidate, target string) bool {
	cl, ok := langs.SubtitleLanguage(candidate)
	if !ok {
		return false
	}
	tl, err := langs.Lookup(target)
	if err != nil {
		return false
	}
	return cl.PrimaryCode == tl.PrimaryCode
}

// ShouldIncludeSubtitle applies the subtitle admission policy with the
// converter's language service.
func (c *Converter) ShouldIncludeSubtitle(candidate, target string) bool {
	return ShouldIncludeSubtitle(c.langs, candidate, target)
}
