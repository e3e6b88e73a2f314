package convert

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/contentchef/internal/domain"
	"github.com/heartmarshall/contentchef/internal/mapping"
)

const (
	formatMP4    = "mp4"
	formatMP4Low = "mp4-low"

	englishCode = "en"
)

var errNoDownloadURL = errors.New("no mp4 download url")

func (c *Converter) convertVideo(v *domain.Video) (domain.ContentNode, bool) {
	log := c.log.With(
		slog.String("youtube_id", v.YoutubeID),
		slog.String("translated_youtube_id", v.TranslatedYoutubeID),
	)
	target := mapping.VideoLanguage(c.target.Code)

	if v.TranslatedYoutubeID != v.YoutubeID && !sameLanguage(v.Lang, target) {
		c.stats.InconsistentTranslations++
		log.Error("translated video has wrong language",
			slog.String("video_lang", v.Lang),
			slog.String("target", target),
		)
		return nil, false
	}

	downloadURL, err := ResolveDownloadURL(v.DownloadURLs, v.YoutubeID, v.TranslatedYoutubeID)
	if err != nil {
		c.stats.MissingDownloads++
		log.Error("no usable download url", slog.String("error", err.Error()))
		return nil, false
	}

	files := []domain.File{c.videoFile(v, downloadURL)}

	var subtitleLangs []string
	if !mapping.IsUnsubtitled(c.target.Code) {
		subtitleLangs = v.SubtitleLanguages()
	}

	if !sameLanguage(v.Lang, target) && !containsLanguage(subtitleLangs, target) {
		c.stats.Untranslated++
		log.Error("video not translated and no subtitles available", slog.String("target", target))
		return nil, false
	}

	for _, code := range subtitleLangs {
		if !c.langs.SubtitleSupported(code) {
			continue
		}
		if sameLanguage(target, englishCode) || c.ShouldIncludeSubtitle(code, c.target.Code) {
			c.stats.SubtitlesAttached++
			files = append(files, domain.File{
				Type:      domain.FileTypeSubtitles,
				YoutubeID: v.TranslatedYoutubeID,
				Language:  code,
			})
			continue
		}
		c.stats.SubtitlesSkipped++
		log.Debug("skipping subtitles", slog.String("subtitle_lang", code))
	}

	license, ok := mapping.License(v.License)
	if !ok {
		c.stats.UnknownLicenses++
		log.Error("unknown license", slog.String("license", v.License))
		return nil, false
	}

	// Dubbed originals and their English clones share the youtube id, so
	// the original is identified by its dubbed asset instead.
	sourceID := v.YoutubeID
	if v.Dubbed {
		sourceID = v.TranslatedYoutubeID
	}

	c.stats.Videos++
	return &domain.VideoNode{
		ContentBase: domain.ContentBase{
			Kind:        domain.KindVideo,
			SourceID:    sourceID,
			Title:       v.Title,
			Description: domain.TruncateDescription(v.Description),
			Slug:        v.Slug,
			Thumbnail:   v.Thumbnail,
		},
		License: license,
		Files:   files,
	}, true
}

func (c *Converter) videoFile(v *domain.Video, downloadURL string) domain.File {
	highResolution := false
	f := domain.File{
		Type:           domain.FileTypeVideo,
		HighResolution: &highResolution,
	}
	if c.opts.VideoSource == VideoSourceCDN {
		f.Path = downloadURL
	} else {
		f.YoutubeID = v.TranslatedYoutubeID
	}
	return f
}

// ResolveDownloadURL picks the download URL of a video, preferring the
// low-bitrate rendition. When a translated asset exists but the chosen URL
// still points at the original, every occurrence of the original id in the
// "mp4" URL is replaced by the translated id. A URL that does not reference
// the original id is returned as is. Only a video without any mp4 rendition
// is an error.
func ResolveDownloadURL(urls map[string]string, youtubeID, translatedID string) (string, error) {
	url := urls[formatMP4Low]
	if url == "" {
		url = urls[formatMP4]
	}
	if url == "" {
		return "", errNoDownloadURL
	}

	if translatedID == "" || translatedID == youtubeID || strings.Contains(url, translatedID) {
		return url, nil
	}

	mp4 := urls[formatMP4]
	if mp4 == "" || youtubeID == "" {
		return url, nil
	}
	return strings.ReplaceAll(mp4, youtubeID, translatedID), nil
}

func sameLanguage(a, b string) bool {
	return strings.EqualFold(a, b)
}

func containsLanguage(codes []string, code string) bool {
	return slices.ContainsFunc(codes, func(c string) bool {
		return sameLanguage(c, code)
	})
}
