// Package models defines the shared data structures for the analysis pipeline.
package models

// Comment is a single comment on a post. Both fields are optional: some
// providers omit the author, and empty comment bodies exist in the wild.
type Comment struct {
	Text  string `json:"text"`
	Owner string `json:"owner,omitempty"`
}

// PostRecord is the canonical, provider-neutral shape of a post. Every
// source (fixture or live) normalizes into this before annotation.
type PostRecord struct {
	ID            string    `json:"id"`
	Shortcode     string    `json:"shortcode"`
	Caption       string    `json:"caption"`
	Hashtags      []string  `json:"hashtags"`
	Likes         int       `json:"likes"`
	CommentsCount int       `json:"comments_count"`
	IsVideo       bool      `json:"is_video"`
	DisplayURL    string    `json:"display_url,omitempty"`
	VideoURL      string    `json:"video_url,omitempty"`
	Timestamp     string    `json:"timestamp"`
	Location      string    `json:"location,omitempty"`
	MusicTitle    string    `json:"music_title,omitempty"`
	Shares        *int      `json:"shares"`
	Saves         *int      `json:"saves"`
	Comments      []Comment `json:"comments"`
}

// Annotation holds the per-post derived data computed during a run.
// A zero Annotation is valid: it means every collaborator degraded.
type Annotation struct {
	// Mood is one of the configured mood labels, or empty when the
	// caption was blank or classification was impossible.
	Mood string
	// CommentTone maps a sentiment label to its occurrence count across
	// the post's comments. Empty when the post has no usable comments.
	CommentTone map[string]int
	// VideoDuration is the probed media duration in seconds. Nil for
	// non-videos and for any probe failure.
	VideoDuration *float64
	// HookRatio is min(3, duration)/duration, in (0, 1]. Nil whenever
	// VideoDuration is nil.
	HookRatio *float64
	// Language is the detected caption language (best effort, may be
	// empty). Informational only; it never affects classification.
	Language string
}

// AnnotatedPost pairs a record with its annotation for aggregation and
// report rendering.
type AnnotatedPost struct {
	Post       PostRecord
	Annotation Annotation
}
