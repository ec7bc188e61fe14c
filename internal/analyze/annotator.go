package analyze

import (
	"context"

	"igpulse/models"
	"igpulse/pkg/language"
	"igpulse/pkg/media"
	"igpulse/pkg/mood"
	"igpulse/pkg/sentiment"
)

// Annotator derives per-post data. Each collaborator applies its own
// degrade policy, so Annotate always returns a usable Annotation.
type Annotator struct {
	mood     *mood.Classifier
	tone     *sentiment.Aggregator
	hook     *media.Estimator
	language *language.Detector
}

// NewAnnotator wires the per-post collaborators. language may be nil to
// skip detection.
func NewAnnotator(m *mood.Classifier, t *sentiment.Aggregator, h *media.Estimator, l *language.Detector) *Annotator {
	return &Annotator{mood: m, tone: t, hook: h, language: l}
}

// Annotate computes the full annotation for one post.
func (a *Annotator) Annotate(ctx context.Context, post models.PostRecord) models.Annotation {
	ann := models.Annotation{}

	if moodLabel, ok := a.mood.Classify(ctx, post.Caption); ok {
		ann.Mood = moodLabel
	}

	texts := make([]string, 0, len(post.Comments))
	for _, c := range post.Comments {
		texts = append(texts, c.Text)
	}
	ann.CommentTone = a.tone.Tone(ctx, texts)

	ann.VideoDuration, ann.HookRatio = a.hook.Estimate(ctx, post.IsVideo, post.VideoURL)

	if a.language != nil {
		ann.Language = a.language.Detect(post.Caption)
	}

	return ann
}
