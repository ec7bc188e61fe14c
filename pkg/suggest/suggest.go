// Package suggest maps an aggregate report to heuristic recommendations.
package suggest

import (
	"fmt"
	"strings"

	"igpulse/models"
)

// lowHookThreshold is the average hook ratio below which the extra
// hook-strengthening warning is emitted.
const lowHookThreshold = 0.2

// Generate returns human-readable suggestion lines for a report. It is a
// pure function; the caller decides how to present the lines. The two
// operational tips at the end are always emitted.
func Generate(report models.AggregateReport) []string {
	var lines []string

	if report.MostCommonMood != nil {
		lines = append(lines, fmt.Sprintf("Most frequent mood detected: %s", *report.MostCommonMood))
	}
	if len(report.TopHashtags) > 0 {
		lines = append(lines, fmt.Sprintf("Top hashtags to refine around: %s", strings.Join(report.TopHashtags, ", ")))
	}
	if report.AverageHookRatio != nil {
		lines = append(lines, fmt.Sprintf("Average first-3-seconds hook ratio: %.2f", *report.AverageHookRatio))
		if *report.AverageHookRatio < lowHookThreshold {
			lines = append(lines, "Consider stronger hooks or A/B thumbnails.")
		}
	}

	lines = append(lines,
		"Post when your audience is most active (use IG Insights to get actual active hours).",
		"Tailor colour palette & fonts to the dominant mood for stronger branding.",
	)
	return lines
}
