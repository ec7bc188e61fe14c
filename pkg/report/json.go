package report

import (
	"encoding/json"
	"fmt"

	"igpulse/models"
)

// RenderSummary produces the JSON output for a run. An empty batch is
// reported with the no-posts message envelope; anything else gets the
// success envelope wrapping the aggregate statistics.
func RenderSummary(report models.AggregateReport) ([]byte, error) {
	var payload any
	if report.NoData {
		payload = models.NoDataEnvelope{Message: models.NoPostsMessage}
	} else {
		payload = models.SummaryEnvelope{Status: "success", Data: report}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode summary: %w", err)
	}
	return data, nil
}
