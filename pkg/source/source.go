// Package source acquires posts and normalizes provider records into the
// canonical PostRecord shape.
//
// Two sources exist: a fixture-backed one for mock runs and a
// provider-backed one that scrapes public profile pages. Both feed the
// same normalizer, so the rest of the pipeline never sees provider
// differences.
package source

import (
	"context"

	"igpulse/models"
	"igpulse/pkg/hashtag"
)

// PostSource fetches up to maxPosts recent posts for an account. A
// private or nonexistent account yields an empty batch, not an error;
// errors are reserved for transport-level diagnostics the caller may log
// before degrading.
type PostSource interface {
	FetchPosts(ctx context.Context, account string, maxPosts int) ([]models.PostRecord, error)
}

// RawPost is a loosely-typed provider record. Field names follow the
// canonical key set; provider-specific sources remap their keys before
// normalization.
type RawPost map[string]any

// Normalize converts a raw record into a PostRecord, defaulting every
// missing or malformed field instead of failing. Hashtags supplied by the
// provider are preserved as-is (duplicates included); when absent they are
// derived from the caption.
func Normalize(raw RawPost) models.PostRecord {
	rec := models.PostRecord{
		ID:            stringField(raw, "id"),
		Shortcode:     stringField(raw, "shortcode"),
		Caption:       stringField(raw, "caption"),
		Likes:         intField(raw, "likes"),
		CommentsCount: intField(raw, "comments_count"),
		IsVideo:       boolField(raw, "is_video"),
		DisplayURL:    stringField(raw, "display_url"),
		Timestamp:     stringField(raw, "timestamp"),
		Location:      stringField(raw, "location"),
		MusicTitle:    stringField(raw, "music_title"),
		Shares:        optionalIntField(raw, "shares"),
		Saves:         optionalIntField(raw, "saves"),
	}

	if rec.IsVideo {
		rec.VideoURL = stringField(raw, "video_url")
	}

	rec.Hashtags = stringSliceField(raw, "hashtags")
	if rec.Hashtags == nil {
		rec.Hashtags = hashtag.Extract(rec.Caption)
	}

	rec.Comments = commentsField(raw, "comments")
	return rec
}

func stringField(raw RawPost, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

func intField(raw RawPost, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func optionalIntField(raw RawPost, key string) *int {
	switch v := raw[key].(type) {
	case float64:
		n := int(v)
		return &n
	case int:
		n := v
		return &n
	}
	return nil
}

func boolField(raw RawPost, key string) bool {
	v, _ := raw[key].(bool)
	return v
}

func stringSliceField(raw RawPost, key string) []string {
	list, ok := raw[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func commentsField(raw RawPost, key string) []models.Comment {
	list, ok := raw[key].([]any)
	if !ok {
		return []models.Comment{}
	}
	out := make([]models.Comment, 0, len(list))
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		c := models.Comment{}
		if text, ok := entry["text"].(string); ok {
			c.Text = text
		}
		if owner, ok := entry["owner"].(string); ok {
			c.Owner = owner
		}
		out = append(out, c)
	}
	return out
}
