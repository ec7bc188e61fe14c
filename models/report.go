package models

// AggregateReport is the batch-level summary produced by the aggregation
// engine. Optional statistics are pointers so "absent" is distinguishable
// from zero.
type AggregateReport struct {
	MostCommonMood   *string  `json:"most_common_mood"`
	TopHashtags      []string `json:"top_hashtags"`
	AverageLikes     float64  `json:"average_likes"`
	AverageComments  float64  `json:"average_comments"`
	AverageHookRatio *float64 `json:"-"`

	// NoData is set when the batch was empty. A NoData report carries no
	// statistics; consumers must emit the no-posts message instead.
	NoData bool `json:"-"`
}

// SummaryEnvelope is the JSON output wrapper for a successful run.
type SummaryEnvelope struct {
	Status string          `json:"status"`
	Data   AggregateReport `json:"data"`
}

// NoDataEnvelope is the JSON output for an empty batch. The message text
// is part of the output contract.
type NoDataEnvelope struct {
	Message string `json:"message"`
}

// NoPostsMessage is emitted when acquisition yields an empty batch.
const NoPostsMessage = "No posts found or account is private/non-existent."
