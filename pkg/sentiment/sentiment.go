// Package sentiment counts sentiment labels across a post's comments.
package sentiment

import "context"

// BatchClassifier labels a batch of texts, one label per input, in input
// order.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, texts []string) ([]string, error)
}

// Aggregator turns raw comment texts into a tone mapping.
type Aggregator struct {
	classifier BatchClassifier
}

// NewAggregator builds an Aggregator. classifier may be nil; tone counting
// then degrades to an empty mapping for every post.
func NewAggregator(classifier BatchClassifier) *Aggregator {
	return &Aggregator{classifier: classifier}
}

// Tone filters out empty comment texts, classifies the remainder, and
// returns counts per sentiment label. Classifier failure or an empty
// filtered batch yields an empty map, never an error: comment tone is
// supplementary and must not abort the batch.
func (a *Aggregator) Tone(ctx context.Context, texts []string) map[string]int {
	filtered := make([]string, 0, len(texts))
	for _, t := range texts {
		if t != "" {
			filtered = append(filtered, t)
		}
	}

	counts := map[string]int{}
	if len(filtered) == 0 || a.classifier == nil {
		return counts
	}

	labels, err := a.classifier.ClassifyBatch(ctx, filtered)
	if err != nil {
		return counts
	}
	for _, label := range labels {
		counts[label]++
	}
	return counts
}
