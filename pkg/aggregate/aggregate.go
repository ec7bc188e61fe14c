// Package aggregate derives batch-level statistics from annotated posts.
//
// Ordering is an input here, not an accident: ties in mood and hashtag
// ranking resolve to whichever value was encountered first in the batch,
// so the same batch always produces the same report.
package aggregate

import (
	"math"
	"sort"

	"igpulse/models"
)

// TopHashtagLimit caps the hashtag ranking length.
const TopHashtagLimit = 5

// Build produces the AggregateReport for a batch. An empty batch yields
// the no-data sentinel and no statistics.
func Build(batch []models.AnnotatedPost) models.AggregateReport {
	if len(batch) == 0 {
		return models.AggregateReport{NoData: true, TopHashtags: []string{}}
	}

	moods := newCounter()
	hashtags := newCounter()
	var likesSum, commentsSum float64
	var hookSum float64
	hookCount := 0

	for _, ap := range batch {
		if ap.Annotation.Mood != "" {
			moods.Add(ap.Annotation.Mood)
		}
		for _, tag := range ap.Post.Hashtags {
			hashtags.Add(tag)
		}
		likesSum += float64(ap.Post.Likes)
		commentsSum += float64(ap.Post.CommentsCount)
		if ap.Annotation.HookRatio != nil {
			hookSum += *ap.Annotation.HookRatio
			hookCount++
		}
	}

	report := models.AggregateReport{
		TopHashtags:     hashtags.TopN(TopHashtagLimit),
		AverageLikes:    round2(likesSum / float64(len(batch))),
		AverageComments: round2(commentsSum / float64(len(batch))),
	}

	if top, ok := moods.Top(); ok {
		report.MostCommonMood = &top
	}
	if hookCount > 0 {
		avg := hookSum / float64(hookCount)
		report.AverageHookRatio = &avg
	}

	return report
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// counter tallies occurrences while remembering first-seen order, so
// ranking ties break deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// TopN returns up to n keys ranked by count descending, first-seen order
// breaking ties. Ranking walks the first-seen slice rather than the map
// so iteration order never leaks into results.
func (c *counter) TopN(n int) []string {
	ranked := append([]string(nil), c.order...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return c.counts[ranked[i]] > c.counts[ranked[j]]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []string{}
	}
	return ranked
}

// Top returns the single highest-count key, or false when nothing was
// counted.
func (c *counter) Top() (string, bool) {
	top := c.TopN(1)
	if len(top) == 0 {
		return "", false
	}
	return top[0], true
}
