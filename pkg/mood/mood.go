// Package mood classifies caption text into a fixed mood label set.
//
// The primary path delegates to a hosted zero-shot classifier. When that
// collaborator is unavailable (no token, network failure, bad response)
// classification degrades to a deterministic keyword match. The fallback
// is lower fidelity by design: it only checks whether a label name appears
// in the text and is not expected to agree with the model path. It exists
// so the pipeline keeps producing annotations instead of failing.
package mood

import (
	"context"
	"strings"
)

// ZeroShotClassifier ranks candidate labels for a piece of text. Rank
// returns labels ordered best-first.
type ZeroShotClassifier interface {
	Rank(ctx context.Context, text string, labels []string) ([]string, error)
}

// Classifier resolves a single mood label for a caption. Construct with
// New; the zero-value is not usable.
type Classifier struct {
	labels   []string
	zeroShot ZeroShotClassifier
}

// New builds a Classifier over the given closed label set. zeroShot may be
// nil, in which case every classification takes the keyword path.
func New(labels []string, zeroShot ZeroShotClassifier) *Classifier {
	return &Classifier{
		labels:   append([]string(nil), labels...),
		zeroShot: zeroShot,
	}
}

// Classify returns the mood label for text, or ("", false) when the text
// is empty or whitespace-only. Collaborator failures never propagate; the
// keyword fallback answers instead.
func (c *Classifier) Classify(ctx context.Context, text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	if c.zeroShot != nil {
		ranked, err := c.zeroShot.Rank(ctx, text, c.labels)
		if err == nil && len(ranked) > 0 {
			return ranked[0], true
		}
	}

	return c.keywordFallback(text), true
}

// keywordFallback picks the first label whose name appears as a
// case-insensitive substring of the text, defaulting to the first
// configured label when none match.
func (c *Classifier) keywordFallback(text string) string {
	lower := strings.ToLower(text)
	for _, label := range c.labels {
		if strings.Contains(lower, strings.ToLower(label)) {
			return label
		}
	}
	return c.labels[0]
}
